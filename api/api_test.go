package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Hackeries/Mock-E-Com-Cart/api"
	"github.com/Hackeries/Mock-E-Com-Cart/core/cart"
	"github.com/Hackeries/Mock-E-Com-Cart/core/checkout"
	"github.com/Hackeries/Mock-E-Com-Cart/core/product"
	"github.com/Hackeries/Mock-E-Com-Cart/database/dbtest"
	"github.com/Hackeries/Mock-E-Com-Cart/lock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type testEnv struct {
	URL      string
	Products []product.Product
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := dbtest.New(t)
	products := dbtest.Seed(t, db)

	log := logrus.New()
	log.SetOutput(io.Discard)

	mux := api.APIMux(api.APIConfig{
		CorsOrigin: "http://localhost:3000",
		Log:        log,
		DB:         db,
		Locks:      lock.NewKeyed(),
		Scope:      "default",
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &testEnv{URL: srv.URL, Products: products}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, want int) []byte {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	r, err := http.NewRequest(method, e.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	w, err := http.DefaultClient.Do(r)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Body.Close()

	out, err := io.ReadAll(w.Body)
	if err != nil {
		t.Fatal(err)
	}

	if w.StatusCode != want {
		t.Fatalf("%s %s: status %s, want %d (body %s)", method, path, w.Status, want, out)
	}

	return out
}

func (e *testEnv) addToCart(t *testing.T, productID int64, quantity int) cart.Item {
	t.Helper()

	in := cart.ItemNew{ProductID: productID, Quantity: quantity}
	out := e.do(t, http.MethodPost, "/cart/items", in, http.StatusCreated)

	var item cart.Item
	if err := json.Unmarshal(out, &item); err != nil {
		t.Fatalf("unmarshaling cart item: %v", err)
	}
	return item
}

func (e *testEnv) showCart(t *testing.T) cart.Cart {
	t.Helper()

	out := e.do(t, http.MethodGet, "/cart", nil, http.StatusOK)

	var c cart.Cart
	if err := json.Unmarshal(out, &c); err != nil {
		t.Fatalf("unmarshaling cart: %v", err)
	}
	return c
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/health", nil, http.StatusOK)
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)

	out := env.do(t, http.MethodGet, "/products", nil, http.StatusOK)

	var products []product.Product
	if err := json.Unmarshal(out, &products); err != nil {
		t.Fatalf("unmarshaling products: %v", err)
	}

	if diff := cmp.Diff(env.Products, products); diff != "" {
		t.Fatalf("product list mismatch (-want +got):\n%s", diff)
	}
}

func TestCartFlow(t *testing.T) {
	env := newTestEnv(t)

	first := env.addToCart(t, env.Products[0].ID, 2)
	if first.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", first.Quantity)
	}

	// Re-adding the same product merges rather than duplicating.
	merged := env.addToCart(t, env.Products[0].ID, 3)
	if merged.ID != first.ID || merged.Quantity != 5 {
		t.Fatalf("expected item %d with quantity 5, got item %d with quantity %d", first.ID, merged.ID, merged.Quantity)
	}

	second := env.addToCart(t, env.Products[1].ID, 1)

	c := env.showCart(t)
	if len(c.Items) != 2 {
		t.Fatalf("expected 2 cart items, got %d", len(c.Items))
	}

	// 5 x 79.99 + 1 x 199.99
	wantTotal := decimal.RequireFromString("599.94")
	if !c.Total.Equal(wantTotal) {
		t.Fatalf("expected total %s, got %s", wantTotal, c.Total)
	}

	env.do(t, http.MethodPut, fmt.Sprintf("/cart/items/%d", first.ID), cart.ItemUp{Quantity: 1}, http.StatusNoContent)

	c = env.showCart(t)
	if c.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1 after update, got %d", c.Items[0].Quantity)
	}

	env.do(t, http.MethodDelete, fmt.Sprintf("/cart/items/%d", second.ID), nil, http.StatusNoContent)
	env.do(t, http.MethodDelete, fmt.Sprintf("/cart/items/%d", second.ID), nil, http.StatusNotFound)

	env.do(t, http.MethodDelete, "/cart", nil, http.StatusNoContent)

	c = env.showCart(t)
	if len(c.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(c.Items))
	}
}

func TestCartErrors(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/cart/items", cart.ItemNew{ProductID: 99999, Quantity: 1}, http.StatusNotFound)
	env.do(t, http.MethodPost, "/cart/items", cart.ItemNew{ProductID: env.Products[0].ID, Quantity: 100}, http.StatusBadRequest)
	env.do(t, http.MethodPut, "/cart/items/99999", cart.ItemUp{Quantity: 5}, http.StatusNotFound)
}

func TestCheckoutFlow(t *testing.T) {
	env := newTestEnv(t)

	env.addToCart(t, env.Products[0].ID, 2)
	env.addToCart(t, env.Products[7].ID, 1)

	c := env.showCart(t)

	req := checkout.Request{
		Items:         c.Items,
		CustomerName:  "Jo Doe",
		CustomerEmail: "jo@example.com",
	}

	out := env.do(t, http.MethodPost, "/checkout", req, http.StatusOK)

	var rc checkout.Receipt
	if err := json.Unmarshal(out, &rc); err != nil {
		t.Fatalf("unmarshaling receipt: %v", err)
	}

	if !strings.HasPrefix(rc.ReceiptID, "REC-") {
		t.Fatalf("unexpected receipt id %q", rc.ReceiptID)
	}
	if !rc.Total.Equal(c.Total) {
		t.Fatalf("expected total %s, got %s", c.Total, rc.Total)
	}
	if rc.Status != checkout.StatusCompleted {
		t.Fatalf("expected status %q, got %q", checkout.StatusCompleted, rc.Status)
	}

	after := env.showCart(t)
	if len(after.Items) != 0 {
		t.Fatalf("expected empty cart after checkout, got %d items", len(after.Items))
	}

	out = env.do(t, http.MethodGet, "/receipts/"+rc.ReceiptID, nil, http.StatusOK)

	var stored checkout.Receipt
	if err := json.Unmarshal(out, &stored); err != nil {
		t.Fatalf("unmarshaling stored receipt: %v", err)
	}
	if stored.ReceiptID != rc.ReceiptID || len(stored.Items) != 2 {
		t.Fatalf("stored receipt mismatch: %+v", stored)
	}
}

func TestCheckoutValidation(t *testing.T) {
	env := newTestEnv(t)

	env.addToCart(t, env.Products[0].ID, 1)
	snapshot := env.showCart(t).Items

	tests := []struct {
		name string
		req  checkout.Request
		want int
	}{
		{
			name: "empty cart",
			req:  checkout.Request{CustomerName: "Jo Doe", CustomerEmail: "jo@example.com"},
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "missing name",
			req:  checkout.Request{Items: snapshot, CustomerEmail: "jo@example.com"},
			want: http.StatusBadRequest,
		},
		{
			name: "invalid email",
			req:  checkout.Request{Items: snapshot, CustomerName: "Jo Doe", CustomerEmail: "invalid-email"},
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env.do(t, http.MethodPost, "/checkout", tt.req, tt.want)

			c := env.showCart(t)
			if len(c.Items) != 1 {
				t.Fatalf("failed checkout must leave the cart alone, got %d items", len(c.Items))
			}
		})
	}
}

func TestUnknownReceipt(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/receipts/REC-nope", nil, http.StatusNotFound)
}

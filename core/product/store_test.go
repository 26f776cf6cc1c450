package product_test

import (
	"context"
	"testing"

	"github.com/Hackeries/Mock-E-Com-Cart/core/product"
	"github.com/Hackeries/Mock-E-Com-Cart/database/dbtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIdempotent(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)

	require.NoError(t, product.Seed(ctx, db, product.Catalog()))
	require.NoError(t, product.Seed(ctx, db, product.Catalog()))

	products, err := product.List(ctx, db)
	require.NoError(t, err)
	assert.Len(t, products, len(product.Catalog()))
}

func TestList(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	dbtest.Seed(t, db)

	products, err := product.List(ctx, db)
	require.NoError(t, err)
	require.NotEmpty(t, products)

	for i := 1; i < len(products); i++ {
		assert.Greater(t, products[i].ID, products[i-1].ID, "products must come back in id order")
	}

	assert.Equal(t, "Wireless Headphones", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("79.99")), "price %s", products[0].Price)
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	products := dbtest.Seed(t, db)

	p, err := product.Fetch(ctx, db, products[2].ID)
	require.NoError(t, err)
	assert.Equal(t, products[2].Name, p.Name)

	_, err = product.Fetch(ctx, db, 99999)
	assert.ErrorIs(t, err, product.ErrNotFound)
}

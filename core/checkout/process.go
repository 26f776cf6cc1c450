package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Hackeries/Mock-E-Com-Cart/core/cart"
	"github.com/Hackeries/Mock-E-Com-Cart/database"
	"github.com/Hackeries/Mock-E-Com-Cart/lock"
	"github.com/Hackeries/Mock-E-Com-Cart/random"
	"github.com/Hackeries/Mock-E-Com-Cart/validate"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrMissingCustomer = errors.New("customer name and email are required")
	ErrInvalidEmail    = errors.New("invalid email format")
)

const receiptTokenLength = 20

// Process validates the checkout request, recomputes the total from the
// snapshot's subtotals, mints and persists a receipt, and clears the cart
// scope. Validation failures abort before any mutation. A receipt insert
// failure is logged and swallowed: the cart is still cleared and the
// receipt still returned, trading audit durability for checkout
// availability as the storefront always has.
func Process(ctx context.Context, log logrus.FieldLogger, db *sqlx.DB, locks *lock.Keyed, scope string, req Request) (Receipt, error) {
	if len(req.Items) == 0 {
		return Receipt{}, ErrEmptyCart
	}

	if req.CustomerName == "" || req.CustomerEmail == "" {
		return Receipt{}, ErrMissingCustomer
	}

	if err := validate.Email(req.CustomerEmail); err != nil {
		return Receipt{}, ErrInvalidEmail
	}

	total := decimal.Zero
	for _, line := range req.Items {
		total = total.Add(line.Subtotal)
	}

	rc := Receipt{
		ReceiptID:     "REC-" + random.String(receiptTokenLength),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         req.Items,
		Total:         total.Round(2),
		Timestamp:     time.Now().UTC(),
		Status:        StatusCompleted,
	}

	locks.Lock(scope)
	defer locks.Unlock(scope)

	if err := store(ctx, db, scope, rc); err != nil {
		log.WithFields(logrus.Fields{
			"receipt_id": rc.ReceiptID,
			"message":    err,
		}).Error("storing receipt")
	}

	if err := cart.Delete(ctx, db, scope); err != nil {
		return Receipt{}, fmt.Errorf("clearing cart after checkout: %w", err)
	}

	return rc, nil
}

func store(ctx context.Context, db *sqlx.DB, scope string, rc Receipt) error {
	return database.Transaction(db, func(tx sqlx.ExtContext) error {
		const ins = `
		INSERT INTO receipts (receipt_id, scope, customer_name, customer_email, total, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

		_, err := tx.ExecContext(ctx, ins,
			rc.ReceiptID, scope, rc.CustomerName, rc.CustomerEmail, rc.Total, rc.Status, rc.Timestamp)
		if err != nil {
			return fmt.Errorf("inserting receipt: %w", err)
		}

		const insItem = `
		INSERT INTO receipt_items (receipt_id, product_id, name, price, quantity, subtotal)
		VALUES (?, ?, ?, ?, ?, ?)`

		for _, line := range rc.Items {
			_, err := tx.ExecContext(ctx, insItem,
				rc.ReceiptID, line.ProductID, line.Name, line.Price, line.Quantity, line.Subtotal)
			if err != nil {
				return fmt.Errorf("inserting receipt item for product[%d]: %w", line.ProductID, err)
			}
		}

		return nil
	})
}

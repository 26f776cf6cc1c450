package checkout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Hackeries/Mock-E-Com-Cart/core/cart"
	"github.com/jmoiron/sqlx"
)

var ErrReceiptNotFound = errors.New("receipt not found")

// Fetch reads a persisted receipt back, items included.
func Fetch(ctx context.Context, db sqlx.ExtContext, receiptID string) (Receipt, error) {
	const q = `
	SELECT receipt_id, customer_name, customer_email, total, status, created_at
	FROM receipts WHERE receipt_id = ?`

	var rc Receipt
	if err := sqlx.GetContext(ctx, db, &rc, q, receiptID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Receipt{}, ErrReceiptNotFound
		}
		return Receipt{}, fmt.Errorf("selecting receipt[%s]: %w", receiptID, err)
	}

	const qi = `
	SELECT product_id, name, price, quantity, subtotal
	FROM receipt_items WHERE receipt_id = ? ORDER BY rowid`

	rows, err := db.QueryxContext(ctx, qi, receiptID)
	if err != nil {
		return Receipt{}, fmt.Errorf("selecting receipt items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line cart.Line
		if err := rows.Scan(&line.ProductID, &line.Name, &line.Price, &line.Quantity, &line.Subtotal); err != nil {
			return Receipt{}, fmt.Errorf("scanning receipt item: %w", err)
		}
		rc.Items = append(rc.Items, line)
	}
	if err := rows.Err(); err != nil {
		return Receipt{}, fmt.Errorf("iterating receipt items: %w", err)
	}

	return rc, nil
}

package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Hackeries/Mock-E-Com-Cart/core/product"
	"github.com/Hackeries/Mock-E-Com-Cart/database"
	"github.com/Hackeries/Mock-E-Com-Cart/lock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound  = errors.New("cart item not found")
	ErrQuantityRange = fmt.Errorf("quantity must be between %d and %d", MinQuantity, MaxQuantity)
)

// AddItem merges quantity into the scope's existing item for the product,
// or creates a new item. The read-merge-write runs in one transaction under
// the scope lock, so two concurrent adds cannot both observe the old
// quantity. A merge that would push the quantity above MaxQuantity fails
// and leaves the stored item untouched.
func AddItem(ctx context.Context, db *sqlx.DB, locks *lock.Keyed, scope string, productID int64, quantity int) (Item, error) {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return Item{}, ErrQuantityRange
	}

	locks.Lock(scope)
	defer locks.Unlock(scope)

	var out Item
	err := database.Transaction(db, func(tx sqlx.ExtContext) error {
		if _, err := product.Fetch(ctx, tx, productID); err != nil {
			return err
		}

		const sel = `SELECT id, scope, product_id, quantity FROM cart_items WHERE scope = ? AND product_id = ?`

		var existing Item
		err := sqlx.GetContext(ctx, tx, &existing, sel, scope, productID)
		switch {
		case err == nil:
			merged := existing.Quantity + quantity
			if merged > MaxQuantity {
				return ErrQuantityRange
			}

			const up = `UPDATE cart_items SET quantity = ? WHERE id = ?`
			if _, err := tx.ExecContext(ctx, up, merged, existing.ID); err != nil {
				return fmt.Errorf("updating cart item[%d]: %w", existing.ID, err)
			}

			out = Item{ID: existing.ID, Scope: scope, ProductID: productID, Quantity: merged}
			return nil

		case errors.Is(err, sql.ErrNoRows):
			const ins = `INSERT INTO cart_items (scope, product_id, quantity) VALUES (?, ?, ?)`
			res, err := tx.ExecContext(ctx, ins, scope, productID, quantity)
			if err != nil {
				return fmt.Errorf("inserting cart item: %w", err)
			}

			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("reading cart item id: %w", err)
			}

			out = Item{ID: id, Scope: scope, ProductID: productID, Quantity: quantity}
			return nil

		default:
			return fmt.Errorf("selecting cart item for product[%d]: %w", productID, err)
		}
	})
	if err != nil {
		return Item{}, err
	}

	return out, nil
}

// UpdateQuantity overwrites the item's quantity. It does not add.
func UpdateQuantity(ctx context.Context, db *sqlx.DB, locks *lock.Keyed, scope string, itemID int64, quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return ErrQuantityRange
	}

	locks.Lock(scope)
	defer locks.Unlock(scope)

	const q = `UPDATE cart_items SET quantity = ? WHERE scope = ? AND id = ?`

	res, err := db.ExecContext(ctx, q, quantity, scope, itemID)
	if err != nil {
		return fmt.Errorf("updating cart item[%d]: %w", itemID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return ErrItemNotFound
	}

	return nil
}

func RemoveItem(ctx context.Context, db *sqlx.DB, locks *lock.Keyed, scope string, itemID int64) error {
	locks.Lock(scope)
	defer locks.Unlock(scope)

	const q = `DELETE FROM cart_items WHERE scope = ? AND id = ?`

	res, err := db.ExecContext(ctx, q, scope, itemID)
	if err != nil {
		return fmt.Errorf("deleting cart item[%d]: %w", itemID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Fetch returns the scope's items joined with their products, in insertion
// order, with per-line subtotals and the rounded total.
func Fetch(ctx context.Context, db sqlx.ExtContext, scope string) (Cart, error) {
	const q = `
	SELECT
		cart_items.id,
		cart_items.product_id,
		cart_items.quantity,
		products.name,
		products.price,
		products.image
	FROM cart_items
	JOIN products ON cart_items.product_id = products.id
	WHERE cart_items.scope = ?
	ORDER BY cart_items.id`

	lines := []Line{}
	if err := sqlx.SelectContext(ctx, db, &lines, q, scope); err != nil {
		return Cart{}, fmt.Errorf("selecting cart items: %w", err)
	}

	total := decimal.Zero
	for i := range lines {
		lines[i].Subtotal = lines[i].Price.Mul(decimal.NewFromInt(int64(lines[i].Quantity)))
		total = total.Add(lines[i].Subtotal)
	}

	return Cart{Items: lines, Total: total.Round(2)}, nil
}

// Delete removes every item in the scope. It is idempotent and takes no
// lock: checkout calls it while already holding the scope lock.
func Delete(ctx context.Context, db sqlx.ExtContext, scope string) error {
	const q = `DELETE FROM cart_items WHERE scope = ?`

	if _, err := db.ExecContext(ctx, q, scope); err != nil {
		return fmt.Errorf("deleting cart items: %w", err)
	}

	return nil
}

// Clear is the locked form of Delete, used by the cart handlers.
func Clear(ctx context.Context, db *sqlx.DB, locks *lock.Keyed, scope string) error {
	locks.Lock(scope)
	defer locks.Unlock(scope)

	return Delete(ctx, db, scope)
}

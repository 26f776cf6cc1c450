package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("product not found")

func List(ctx context.Context, db sqlx.ExtContext) ([]Product, error) {
	const q = `SELECT id, name, price, description, image FROM products ORDER BY id`

	products := []Product{}
	if err := sqlx.SelectContext(ctx, db, &products, q); err != nil {
		return nil, fmt.Errorf("selecting products: %w", err)
	}

	return products, nil
}

func Fetch(ctx context.Context, db sqlx.ExtContext, id int64) (Product, error) {
	const q = `SELECT id, name, price, description, image FROM products WHERE id = ?`

	var p Product
	if err := sqlx.GetContext(ctx, db, &p, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("selecting product[%d]: %w", id, err)
	}

	return p, nil
}

// Seed inserts the supplier's catalog only when the table is still empty,
// so restarting the server does not duplicate products.
func Seed(ctx context.Context, db *sqlx.DB, products []Product) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`); err != nil {
		return fmt.Errorf("counting products: %w", err)
	}

	if count > 0 {
		return nil
	}

	const q = `INSERT INTO products (name, price, description, image) VALUES (?, ?, ?, ?)`
	for _, p := range products {
		if _, err := db.ExecContext(ctx, q, p.Name, p.Price, p.Description, p.Image); err != nil {
			return fmt.Errorf("inserting product %q: %w", p.Name, err)
		}
	}

	return nil
}

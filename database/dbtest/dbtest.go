// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/Hackeries/Mock-E-Com-Cart/core/product"
	"github.com/Hackeries/Mock-E-Com-Cart/database"
	"github.com/Hackeries/Mock-E-Com-Cart/random"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// New returns a migrated in-memory database that is torn down with the
// test. Each call gets its own database, so tests cannot see each other's
// state.
func New(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:dbtest_%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		random.String(12),
	)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	// A single connection keeps the shared-cache memory database alive
	// and serializes statements the way a file database would.
	db.SetMaxOpenConns(1)

	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}

// Seed loads the supplier catalog into the test database.
func Seed(t *testing.T, db *sqlx.DB) []product.Product {
	t.Helper()

	if err := product.Seed(context.Background(), db, product.Catalog()); err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}

	products, err := product.List(context.Background(), db)
	if err != nil {
		t.Fatalf("listing products: %v", err)
	}

	return products
}

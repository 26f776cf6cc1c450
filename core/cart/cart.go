package cart

import "github.com/shopspring/decimal"

const (
	MinQuantity = 1
	MaxQuantity = 99
)

type Item struct {
	ID        int64  `json:"id" db:"id"`
	Scope     string `json:"-" db:"scope"`
	ProductID int64  `json:"productId" db:"product_id"`
	Quantity  int    `json:"quantity" db:"quantity"`
}

// Line is a cart item joined with its product, as returned by Fetch and
// consumed by checkout.
type Line struct {
	ID        int64           `json:"id" db:"id"`
	ProductID int64           `json:"productId" db:"product_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Name      string          `json:"name" db:"name"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Image     string          `json:"image" db:"image"`
	Subtotal  decimal.Decimal `json:"subtotal" db:"-"`
}

type Cart struct {
	Items []Line          `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type ItemNew struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required"`
}

type ItemUp struct {
	Quantity int `json:"quantity" validate:"required"`
}

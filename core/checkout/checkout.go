package checkout

import (
	"time"

	"github.com/Hackeries/Mock-E-Com-Cart/core/cart"
	"github.com/shopspring/decimal"
)

const StatusCompleted = "completed"

// Receipt is the durable record of a completed checkout. It is immutable
// once written and survives independently of the cart that produced it.
type Receipt struct {
	ReceiptID     string          `json:"receiptId" db:"receipt_id"`
	CustomerName  string          `json:"customerName" db:"customer_name"`
	CustomerEmail string          `json:"customerEmail" db:"customer_email"`
	Items         []cart.Line     `json:"items" db:"-"`
	Total         decimal.Decimal `json:"total" db:"total"`
	Timestamp     time.Time       `json:"timestamp" db:"created_at"`
	Status        string          `json:"status" db:"status"`
}

// Request carries the cart snapshot and customer identity submitted for
// checkout. The snapshot is server-sourced cart data passed through by the
// client; its subtotals are summed into the authoritative total, so a
// client-supplied total figure is never trusted.
type Request struct {
	Items         []cart.Line `json:"cartItems"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
}

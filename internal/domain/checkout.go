package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutStatus string

const (
	CheckoutStatusIdle       CheckoutStatus = "IDLE"
	CheckoutStatusInProgress CheckoutStatus = "IN_PROGRESS"
)

// String representation (for logging)
func (s CheckoutStatus) String() string {
	return string(s)
}

// OrderPlacedMessage is the acknowledgment shown to the user after checkout.
const OrderPlacedMessage = "Order placed successfully! 🎉"

// OrderPlaced is emitted exactly once per completed checkout.
type OrderPlaced struct {
	CheckoutID  string          `json:"checkout_id"`
	Message     string          `json:"message"`
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalItems  int             `json:"total_items"`
	Currency    string          `json:"currency"`
	StartedAt   time.Time       `json:"started_at"`
	CompletedAt time.Time       `json:"completed_at"`
}

type OrderItem struct {
	ItemID    int64           `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// NewOrderItems converts cart lines into order items, keeping line order.
func NewOrderItems(lines []CartLine) []OrderItem {
	items := make([]OrderItem, len(lines))
	for i, l := range lines {
		items[i] = OrderItem{
			ItemID:    l.Item.ID,
			Name:      l.Item.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Item.Price,
			Subtotal:  l.Subtotal(),
		}
	}
	return items
}

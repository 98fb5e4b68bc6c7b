package domain

import "github.com/shopspring/decimal"

// CartLine is one menu item paired with its quantity. Quantity is always >= 1.
type CartLine struct {
	Item     MenuItem
	Quantity int
}

// Subtotal returns unit price times quantity
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSnapshot represents the full cart state at a point in time
type CartSnapshot struct {
	Lines      []CartLine
	TotalPrice decimal.Decimal
	TotalItems int
	Visible    bool
}

// IsEmpty reports whether the snapshot has no lines
func (s CartSnapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}

package cart

import (
	"errors"
	"sync"

	"github.com/fjod/vistara/internal/domain"
	"github.com/shopspring/decimal"
)

var ErrQuantityLimit = errors.New("line quantity limit reached")

// Store is the in-memory cart of one session.
//
// Lines keep the order in which distinct items were first added; quantity
// changes never reorder them. A line never has a quantity below 1 and no two
// lines share an item id. Totals are computed from the current lines on every
// read, so they cannot go stale.
type Store struct {
	mu      sync.RWMutex
	lines   []domain.CartLine
	visible bool
}

// NewStore creates an empty, hidden cart
func NewStore() *Store {
	return &Store{}
}

// AddItem increments the quantity of the item's line, or appends a new line with quantity 1.
func (s *Store) AddItem(item domain.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(item.ID); i >= 0 {
		s.lines[i].Quantity++
		return
	}
	s.lines = append(s.lines, domain.CartLine{Item: item, Quantity: 1})
}

// AddItemUpTo is AddItem for callers that cap a line's quantity.
// It returns ErrQuantityLimit and leaves the cart unchanged when the line is already at limit.
func (s *Store) AddItemUpTo(item domain.MenuItem, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(item.ID)
	if i < 0 {
		if limit < 1 {
			return ErrQuantityLimit
		}
		s.lines = append(s.lines, domain.CartLine{Item: item, Quantity: 1})
		return nil
	}
	if s.lines[i].Quantity >= limit {
		return ErrQuantityLimit
	}
	s.lines[i].Quantity++
	return nil
}

// RemoveItem deletes the line for id. Absent ids are ignored.
func (s *Store) RemoveItem(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

// SetQuantity replaces the quantity of an existing line.
// A quantity <= 0 removes the line. An id that is not in the cart is ignored:
// no line is created.
func (s *Store) SetQuantity(id int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(id)
		return
	}
	if i := s.indexOf(id); i >= 0 {
		s.lines[i].Quantity = quantity
	}
}

// TotalPrice is the sum of unit price times quantity over all lines
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totalPrice(s.lines)
}

// TotalItemCount is the sum of quantities over all lines
func (s *Store) TotalItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totalItems(s.lines)
}

func (s *Store) SetVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = visible
}

func (s *Store) Visible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible
}

// Lines returns a copy of the lines in insertion order
func (s *Store) Lines() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CartLine(nil), s.lines...)
}

// Snapshot returns lines, totals and visibility read under one lock
func (s *Store) Snapshot() domain.CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CartSnapshot{
		Lines:      append([]domain.CartLine(nil), s.lines...),
		TotalPrice: totalPrice(s.lines),
		TotalItems: totalItems(s.lines),
		Visible:    s.visible,
	}
}

// Clear drops every line and hides the cart
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.visible = false
}

func (s *Store) indexOf(id int64) int {
	for i := range s.lines {
		if s.lines[i].Item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) removeLocked(id int64) {
	if i := s.indexOf(id); i >= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	}
}

func totalPrice(lines []domain.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func totalItems(lines []domain.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

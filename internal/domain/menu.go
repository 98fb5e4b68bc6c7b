package domain

import "github.com/shopspring/decimal"

// Category groups menu items into sections of the menu.
type Category string

const (
	CategoryAppetizers Category = "appetizers"
	CategoryMains      Category = "mains"
	CategoryDesserts   Category = "desserts"
)

// Title returns the section heading shown for the category.
func (c Category) Title() string {
	switch c {
	case CategoryAppetizers:
		return "Appetizers"
	case CategoryMains:
		return "Main Courses"
	case CategoryDesserts:
		return "Desserts"
	default:
		return string(c)
	}
}

// MenuItem is an orderable dish. Items are created once at startup and never mutated.
type MenuItem struct {
	ID          int64
	Name        string
	Description string
	ImageGlyph  string
	Price       decimal.Decimal
	Rating      float64 // 0..5
	PrepTime    string  // display only
}

// Restaurant holds the static venue details shown in the header and footer.
type Restaurant struct {
	Name    string
	Tagline string
	City    string
	Phone   string
	Hours   string
}

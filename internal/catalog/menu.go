package catalog

import (
	"github.com/fjod/vistara/internal/domain"
	"github.com/shopspring/decimal"
)

// Section is a menu category with its items in display order
type Section struct {
	Category domain.Category
	Items    []domain.MenuItem
}

func item(id int64, name string, price int64, description, glyph string, rating float64, prep string) domain.MenuItem {
	return domain.MenuItem{
		ID:          id,
		Name:        name,
		Description: description,
		ImageGlyph:  glyph,
		Price:       decimal.NewFromInt(price),
		Rating:      rating,
		PrepTime:    prep,
	}
}

// VistaraMenu is the vegetarian menu served by the restaurant
var VistaraMenu = []Section{
	{
		Category: domain.CategoryAppetizers,
		Items: []domain.MenuItem{
			item(1, "Paneer Tikka", 299, "Grilled cottage cheese with mint chutney", "🧀", 4.5, "10-15 min"),
			item(2, "Vegetable Spring Rolls", 249, "Crispy rolls with mixed vegetables and sweet chili sauce", "🥟", 4.7, "8-12 min"),
			item(3, "Stuffed Mushrooms", 279, "Button mushrooms stuffed with herbs and cheese", "🍄", 4.3, "12-15 min"),
			item(4, "Aloo Chat", 199, "Spiced potato chat with tamarind and mint chutney", "🥔", 4.6, "5-8 min"),
		},
	},
	{
		Category: domain.CategoryMains,
		Items: []domain.MenuItem{
			item(5, "Paneer Butter Masala", 449, "Creamy tomato curry with cottage cheese", "🍛", 4.8, "15-20 min"),
			item(6, "Dal Makhani", 399, "Rich black lentils cooked with butter and cream", "🫘", 4.9, "20-25 min"),
			item(7, "Vegetable Biryani", 379, "Fragrant basmati rice with mixed vegetables and spices", "🍚", 4.6, "25-30 min"),
			item(8, "Palak Paneer", 429, "Cottage cheese in creamy spinach gravy", "🥬", 4.7, "15-18 min"),
			item(9, "Chole Bhature", 329, "Spiced chickpeas with fluffy fried bread", "🫓", 4.5, "12-15 min"),
			item(10, "Vegetable Korma", 399, "Mixed vegetables in coconut and cashew gravy", "🥥", 4.4, "18-22 min"),
		},
	},
	{
		Category: domain.CategoryDesserts,
		Items: []domain.MenuItem{
			item(11, "Gulab Jamun", 149, "Sweet milk dumplings in rose syrup", "🍯", 4.7, "Ready to serve"),
			item(12, "Ras Malai", 179, "Soft cottage cheese dumplings in sweet milk", "🥛", 4.8, "Ready to serve"),
			item(13, "Kulfi", 129, "Traditional Indian ice cream with cardamom", "🍦", 4.5, "Ready to serve"),
			item(14, "Gajar Halwa", 159, "Sweet carrot pudding with nuts and ghee", "🥕", 4.6, "Ready to serve"),
		},
	},
}

// VistaraInfo is the venue shown in the header and footer
var VistaraInfo = domain.Restaurant{
	Name:    "Vistara",
	Tagline: "Authentic Indian cuisine",
	City:    "Mumbai",
	Phone:   "02225631199",
	Hours:   "Mon-Sun: 11AM - 11PM",
}

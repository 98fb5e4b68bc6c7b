package catalog

import (
	"errors"
	"fmt"

	"github.com/fjod/vistara/internal/domain"
)

var (
	ErrItemNotFound    = errors.New("menu item not found")
	ErrUnknownCategory = errors.New("unknown menu category")
	ErrDuplicateItem   = errors.New("duplicate menu item id")
	ErrInvalidItem     = errors.New("invalid menu item")
)

// Catalog is the read-only menu. It is safe for concurrent use because
// nothing mutates it after New returns.
type Catalog struct {
	restaurant domain.Restaurant
	sections   []Section
	byID       map[int64]domain.MenuItem
}

// New validates the sections and builds a catalog from them.
// Items must have unique positive ids, a name, a positive price and a rating in [0,5].
func New(restaurant domain.Restaurant, sections []Section) (*Catalog, error) {
	c := &Catalog{
		restaurant: restaurant,
		sections:   make([]Section, 0, len(sections)),
		byID:       make(map[int64]domain.MenuItem),
	}

	for _, s := range sections {
		items := make([]domain.MenuItem, len(s.Items))
		for i, it := range s.Items {
			if err := validate(it); err != nil {
				return nil, err
			}
			if _, exists := c.byID[it.ID]; exists {
				return nil, fmt.Errorf("%w: %d", ErrDuplicateItem, it.ID)
			}
			c.byID[it.ID] = it
			items[i] = it
		}
		c.sections = append(c.sections, Section{Category: s.Category, Items: items})
	}

	return c, nil
}

// Default returns the Vistara menu. The seed data is static, so a failure is a programming error.
func Default() *Catalog {
	c, err := New(VistaraInfo, VistaraMenu)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in menu: %v", err))
	}
	return c
}

func validate(it domain.MenuItem) error {
	switch {
	case it.ID <= 0:
		return fmt.Errorf("%w: id must be positive", ErrInvalidItem)
	case it.Name == "":
		return fmt.Errorf("%w: item %d has no name", ErrInvalidItem, it.ID)
	case !it.Price.IsPositive():
		return fmt.Errorf("%w: item %d price must be positive", ErrInvalidItem, it.ID)
	case it.Rating < 0 || it.Rating > 5:
		return fmt.Errorf("%w: item %d rating out of range", ErrInvalidItem, it.ID)
	}
	return nil
}

func (c *Catalog) Restaurant() domain.Restaurant {
	return c.restaurant
}

// Categories returns the menu categories in display order
func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.sections))
	for i, s := range c.sections {
		out[i] = s.Category
	}
	return out
}

// Sections returns every section with a copy of its items
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	for i, s := range c.sections {
		out[i] = Section{Category: s.Category, Items: append([]domain.MenuItem(nil), s.Items...)}
	}
	return out
}

// ListByCategory returns a fresh copy of the items in the category.
// An unknown category yields an empty slice.
func (c *Catalog) ListByCategory(category domain.Category) []domain.MenuItem {
	for _, s := range c.sections {
		if s.Category == category {
			return append([]domain.MenuItem(nil), s.Items...)
		}
	}
	return []domain.MenuItem{}
}

// HasCategory reports whether the category is part of the menu
func (c *Catalog) HasCategory(category domain.Category) bool {
	for _, s := range c.sections {
		if s.Category == category {
			return true
		}
	}
	return false
}

func (c *Catalog) Get(id int64) (domain.MenuItem, error) {
	it, ok := c.byID[id]
	if !ok {
		return domain.MenuItem{}, ErrItemNotFound
	}
	return it, nil
}

package http

import (
	"fmt"
	"net/http"

	"github.com/fjod/vistara/internal/catalog"
	"github.com/fjod/vistara/internal/domain"
	"github.com/go-chi/chi/v5"
)

type MenuHandler struct {
	catalog *catalog.Catalog
}

func NewMenuHandler(c *catalog.Catalog) *MenuHandler {
	return &MenuHandler{catalog: c}
}

type MenuItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       string  `json:"price"`
	Rating      float64 `json:"rating"`
	PrepTime    string  `json:"prep_time"`
}

type SectionResponse struct {
	Category string             `json:"category"`
	Title    string             `json:"title"`
	Items    []MenuItemResponse `json:"items"`
}

type MenuResponse struct {
	Sections []SectionResponse `json:"sections"`
}

type RestaurantResponse struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Hours   string `json:"hours"`
}

func toMenuItemResponse(it domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Image:       it.ImageGlyph,
		Price:       it.Price.StringFixed(2),
		Rating:      it.Rating,
		PrepTime:    it.PrepTime,
	}
}

func toSectionResponse(category domain.Category, items []domain.MenuItem) SectionResponse {
	out := SectionResponse{
		Category: string(category),
		Title:    category.Title(),
		Items:    make([]MenuItemResponse, len(items)),
	}
	for i, it := range items {
		out.Items[i] = toMenuItemResponse(it)
	}
	return out
}

// GET /api/v1/restaurant
func (h *MenuHandler) GetRestaurant(w http.ResponseWriter, _ *http.Request) {
	r := h.catalog.Restaurant()
	respondJSON(w, http.StatusOK, RestaurantResponse{
		Name:    r.Name,
		Tagline: r.Tagline,
		City:    r.City,
		Phone:   r.Phone,
		Hours:   r.Hours,
	})
}

// GET /api/v1/menu
func (h *MenuHandler) GetMenu(w http.ResponseWriter, _ *http.Request) {
	sections := h.catalog.Sections()
	resp := MenuResponse{Sections: make([]SectionResponse, len(sections))}
	for i, s := range sections {
		resp.Sections[i] = toSectionResponse(s.Category, s.Items)
	}
	respondJSON(w, http.StatusOK, resp)
}

// GET /api/v1/menu/{category}
func (h *MenuHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(chi.URLParam(r, "category"))
	if !h.catalog.HasCategory(category) {
		handleDomainError(w, fmt.Errorf("%w: %s", catalog.ErrUnknownCategory, category))
		return
	}
	respondJSON(w, http.StatusOK, toSectionResponse(category, h.catalog.ListByCategory(category)))
}

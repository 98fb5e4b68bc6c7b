package http

import (
	"net/http"
	"strconv"

	"github.com/fjod/vistara/internal/catalog"
	"github.com/fjod/vistara/internal/domain"
	"github.com/fjod/vistara/internal/logger"
	"github.com/fjod/vistara/internal/session"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MaxQuantity is the largest quantity accepted for a single line
const MaxQuantity = 99

type CartHandler struct {
	session *session.Session
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewCartHandler(s *session.Session, c *catalog.Catalog, l *zap.Logger) *CartHandler {
	return &CartHandler{
		session: s,
		catalog: c,
		logger:  l,
	}
}

type AddItemRequestDTO struct {
	ItemID int64 `json:"item_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity *int `json:"quantity"`
}

type SetVisibilityRequestDTO struct {
	Visible *bool `json:"visible"`
}

type CartLineResponse struct {
	ItemID    int64  `json:"item_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type CartResponse struct {
	Lines          []CartLineResponse `json:"lines"`
	TotalPrice     string             `json:"total_price"`
	TotalItems     int                `json:"total_items"`
	Visible        bool               `json:"visible"`
	CheckoutStatus string             `json:"checkout_status"`
	IsCheckingOut  bool               `json:"is_checking_out"`
}

func (h *CartHandler) cartResponse() CartResponse {
	snap := h.session.Cart.Snapshot()
	status := h.session.Checkout.Status()
	resp := CartResponse{
		Lines:          make([]CartLineResponse, len(snap.Lines)),
		TotalPrice:     snap.TotalPrice.StringFixed(2),
		TotalItems:     snap.TotalItems,
		Visible:        snap.Visible,
		CheckoutStatus: status.String(),
		IsCheckingOut:  status == domain.CheckoutStatusInProgress,
	}
	for i, l := range snap.Lines {
		resp.Lines[i] = CartLineResponse{
			ItemID:    l.Item.ID,
			Name:      l.Item.Name,
			Image:     l.Item.ImageGlyph,
			UnitPrice: l.Item.Price.StringFixed(2),
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal().StringFixed(2),
		}
	}
	return resp
}

// GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ItemID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id must be positive")
		return
	}

	item, err := h.catalog.Get(req.ItemID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	if err := h.session.Cart.AddItemUpTo(item, MaxQuantity); err != nil {
		handleDomainError(w, err)
		return
	}
	logger.WithContext(r.Context(), h.logger).Info("item added",
		zap.Int64("item_id", item.ID),
		zap.String("name", item.Name))

	respondJSON(w, http.StatusCreated, h.cartResponse())
}

// PUT /api/v1/cart/items/{item_id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, ok := parseItemID(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Quantity == nil {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity is required")
		return
	}
	if *req.Quantity > MaxQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not exceed 99")
		return
	}

	// quantity <= 0 removes the line; unknown ids are ignored
	h.session.Cart.SetQuantity(itemID, *req.Quantity)
	logger.WithContext(r.Context(), h.logger).Info("quantity updated",
		zap.Int64("item_id", itemID),
		zap.Int("quantity", *req.Quantity))

	respondJSON(w, http.StatusOK, h.cartResponse())
}

// DELETE /api/v1/cart/items/{item_id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := parseItemID(w, r)
	if !ok {
		return
	}

	h.session.Cart.RemoveItem(itemID)
	logger.WithContext(r.Context(), h.logger).Info("item removed", zap.Int64("item_id", itemID))

	respondJSON(w, http.StatusOK, h.cartResponse())
}

// PUT /api/v1/cart/visibility
func (h *CartHandler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	var req SetVisibilityRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Visible == nil {
		respondError(w, http.StatusBadRequest, "invalid_visibility", "visible is required")
		return
	}

	h.session.Cart.SetVisible(*req.Visible)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func parseItemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
	if err != nil || itemID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id must be a positive integer")
		return 0, false
	}
	return itemID, true
}

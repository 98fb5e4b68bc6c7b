package http

import (
	"net/http"
	"time"

	"github.com/fjod/vistara/internal/domain"
	"github.com/fjod/vistara/internal/logger"
	"github.com/fjod/vistara/internal/session"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	session *session.Session
	logger  *zap.Logger
}

func NewCheckoutHandler(s *session.Session, l *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		session: s,
		logger:  l,
	}
}

type CheckoutStartedResponse struct {
	CheckoutID string    `json:"checkout_id"`
	Status     string    `json:"status"`
	StartedAt  time.Time `json:"started_at"`
}

type NotificationResponse struct {
	CheckoutID  string    `json:"checkout_id"`
	Message     string    `json:"message"`
	TotalAmount string    `json:"total_amount"`
	TotalItems  int       `json:"total_items"`
	Currency    string    `json:"currency"`
	CompletedAt time.Time `json:"completed_at"`
}

type CheckoutStatusResponse struct {
	Status            string                `json:"status"`
	CheckoutID        string                `json:"checkout_id,omitempty"`
	LastNotification  *NotificationResponse `json:"last_notification,omitempty"`
	NotificationCount int                   `json:"notification_count"`
}

// POST /api/v1/checkout
func (h *CheckoutHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	if h.session.Cart.Snapshot().IsEmpty() {
		respondError(w, http.StatusUnprocessableEntity, "empty_cart", "cart is empty, nothing to checkout")
		return
	}

	attempt, err := h.session.Checkout.Start(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	logger.WithContext(r.Context(), h.logger).Info("checkout requested", zap.String("checkout_id", attempt.ID))
	respondJSON(w, http.StatusAccepted, CheckoutStartedResponse{
		CheckoutID: attempt.ID,
		Status:     domain.CheckoutStatusInProgress.String(),
		StartedAt:  attempt.StartedAt,
	})
}

// GET /api/v1/checkout
func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, _ *http.Request) {
	sim := h.session.Checkout
	resp := CheckoutStatusResponse{
		Status:            sim.Status().String(),
		NotificationCount: sim.NotificationCount(),
	}
	if a := sim.InProgress(); a != nil {
		resp.CheckoutID = a.ID
	}
	if n, ok := sim.LastNotification(); ok {
		resp.LastNotification = &NotificationResponse{
			CheckoutID:  n.CheckoutID,
			Message:     n.Message,
			TotalAmount: n.TotalAmount.StringFixed(2),
			TotalItems:  n.TotalItems,
			Currency:    n.Currency,
			CompletedAt: n.CompletedAt,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// POST /api/v1/session/reset
func (h *CheckoutHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Reset(); err != nil {
		handleDomainError(w, err)
		return
	}
	logger.WithContext(r.Context(), h.logger).Info("session reset requested")
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fjod/vistara/internal/cart"
	"github.com/fjod/vistara/internal/catalog"
	"github.com/fjod/vistara/internal/checkout"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleDomainError converts package errors to HTTP status codes
func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "item_not_found", "menu item not found")
	case errors.Is(err, catalog.ErrUnknownCategory):
		respondError(w, http.StatusNotFound, "category_not_found", "menu category not found")
	case errors.Is(err, cart.ErrQuantityLimit):
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not exceed 99")
	case errors.Is(err, checkout.ErrCheckoutInProgress):
		respondError(w, http.StatusConflict, "checkout_in_progress", "checkout already in progress")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// decodeJSON reads the request body into v. On failure it writes the error
// response and returns false: 413 when LimitBody cut the body off, 400 otherwise.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondError(w, http.StatusRequestEntityTooLarge, "request_too_large",
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		return false
	}
	respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
	return false
}

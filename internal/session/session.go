package session

import (
	"errors"

	"github.com/fjod/vistara/internal/cart"
	"github.com/fjod/vistara/internal/checkout"
	"go.uber.org/zap"
)

var ErrNotInitialized = errors.New("cart session is not initialized")

// Session is the state of one page view: a cart and its checkout.
// It is created once and handed to whatever needs it.
type Session struct {
	Cart     *cart.Store
	Checkout *checkout.Simulator
	logger   *zap.Logger
}

// New creates an empty session. The simulator options are applied on top of
// the session's own logger.
func New(logger *zap.Logger, opts ...checkout.Option) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	store := cart.NewStore()
	opts = append([]checkout.Option{checkout.WithLogger(logger)}, opts...)
	return &Session{
		Cart:     store,
		Checkout: checkout.NewSimulator(store, opts...),
		logger:   logger,
	}
}

// Validate fails when s was not built with New
func (s *Session) Validate() error {
	if s == nil || s.Cart == nil || s.Checkout == nil {
		return ErrNotInitialized
	}
	return nil
}

// Reset empties the cart and forgets the last notification, as a page reload would.
// It is refused while a checkout is in flight.
func (s *Session) Reset() error {
	if s.Checkout.InProgress() != nil {
		return checkout.ErrCheckoutInProgress
	}
	s.Cart.Clear()
	s.Checkout.Forget()
	s.logger.Info("session reset")
	return nil
}

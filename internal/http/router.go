package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/fjod/vistara/internal/catalog"
	"github.com/fjod/vistara/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

var ErrNoCatalog = errors.New("router requires a catalog")

type RouterConfig struct {
	Session            *session.Session
	Catalog            *catalog.Catalog
	Logger             *zap.Logger
	RequestTimeout     time.Duration
	MaxRequestBodySize int64
}

// NewRouter wires the handlers. It fails when the session or catalog is missing
// rather than serving requests against undefined state.
func NewRouter(cfg RouterConfig) (http.Handler, error) {
	if err := cfg.Session.Validate(); err != nil {
		return nil, err
	}
	if cfg.Catalog == nil {
		return nil, ErrNoCatalog
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.MaxRequestBodySize <= 0 {
		cfg.MaxRequestBodySize = 1 << 20
	}

	menuHandler := NewMenuHandler(cfg.Catalog)
	cartHandler := NewCartHandler(cfg.Session, cfg.Catalog, cfg.Logger)
	checkoutHandler := NewCheckoutHandler(cfg.Session, cfg.Logger)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(AccessLog(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(LimitBody(cfg.MaxRequestBodySize))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/restaurant", menuHandler.GetRestaurant)

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", menuHandler.GetMenu)
			r.Get("/{category}", menuHandler.GetCategory)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{item_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{item_id}", cartHandler.RemoveItem)
			r.Put("/visibility", cartHandler.SetVisibility)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", checkoutHandler.GetCheckout)
			r.Post("/", checkoutHandler.StartCheckout)
		})

		r.Post("/session/reset", checkoutHandler.ResetSession)
	})

	return r, nil
}

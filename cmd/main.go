package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjod/vistara/internal/catalog"
	"github.com/fjod/vistara/internal/checkout"
	"github.com/fjod/vistara/internal/config"
	h "github.com/fjod/vistara/internal/http"
	"github.com/fjod/vistara/internal/logger"
	"github.com/fjod/vistara/internal/publisher"
	"github.com/fjod/vistara/internal/session"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	l, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	menu := catalog.Default()
	l.Info("menu loaded", zap.Int("categories", len(menu.Categories())))

	opts := []checkout.Option{
		checkout.WithDelay(cfg.Checkout.Delay),
		checkout.WithCurrency(cfg.Checkout.Currency),
	}

	var orders *publisher.OrderPublisher
	if cfg.Kafka.Enabled() {
		orders = publisher.NewOrderPublisher(publisher.NewKafkaWriter(cfg.Kafka.Topic, cfg.Kafka.Brokers...), l)
		opts = append(opts, checkout.WithNotifier(orders))
		l.Info("publishing orders to kafka",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic))
	}

	sess := session.New(l, opts...)

	router, err := h.NewRouter(h.RouterConfig{
		Session:            sess,
		Catalog:            menu,
		Logger:             l,
		RequestTimeout:     cfg.RequestTimeout,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	})
	if err != nil {
		l.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "vistara"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		l.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		l.Error("server forced to shutdown", zap.Error(err))
	}

	// let an in-flight checkout finish so its notification is not lost
	if err := sess.Checkout.Wait(ctx); err != nil {
		l.Warn("checkout still in progress at shutdown", zap.Error(err))
	}

	if orders != nil {
		if err := orders.Close(); err != nil {
			l.Error("failed to close order publisher", zap.Error(err))
		}
	}

	l.Info("server exited")
}

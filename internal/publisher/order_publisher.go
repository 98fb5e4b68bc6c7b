package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fjod/vistara/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const (
	DefaultTopic   = "orders-placed"
	eventTypeOrder = "order_placed"
)

// MessageWriter is the subset of *kafka.Writer used by the publisher
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderPublisher publishes order-placed events to Kafka behind a circuit breaker
type OrderPublisher struct {
	writer  MessageWriter
	breaker *gobreaker.CircuitBreaker[struct{}]
	timeout time.Duration
	logger  *zap.Logger
}

func NewKafkaWriter(topic string, brokers ...string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

func NewOrderPublisher(writer MessageWriter, logger *zap.Logger) *OrderPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "order-publisher",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return &OrderPublisher{
		writer:  writer,
		breaker: breaker,
		timeout: 5 * time.Second,
		logger:  logger,
	}
}

// Notify implements checkout.Notifier
func (p *OrderPublisher) Notify(ctx context.Context, event domain.OrderPlaced) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order placed event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.CheckoutID), // checkout_id for ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventTypeOrder)},
		},
	}

	_, err = p.breaker.Execute(func() (struct{}, error) {
		writeCtx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()
		return struct{}{}, p.writer.WriteMessages(writeCtx, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to publish order placed event: %w", err)
	}

	p.logger.Debug("order placed event published", zap.String("checkout_id", event.CheckoutID))
	return nil
}

func (p *OrderPublisher) Close() error {
	return p.writer.Close()
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           string
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	MaxRequestBodySize int64
	LogLevel           string
	Checkout           CheckoutConfig
	Kafka              KafkaConfig
}

type CheckoutConfig struct {
	Delay    time.Duration
	Currency string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether order-placed events should be published
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	requestTimeout, err := getDuration("REQUEST_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	checkoutDelay, err := getDuration("CHECKOUT_DELAY", 2*time.Second)
	if err != nil {
		return nil, err
	}
	if checkoutDelay < 0 {
		return nil, fmt.Errorf("CHECKOUT_DELAY must not be negative, got %s", checkoutDelay)
	}

	return &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		RequestTimeout:     requestTimeout,
		ShutdownTimeout:    shutdownTimeout,
		MaxRequestBodySize: 1 << 20, // 1MB
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Checkout: CheckoutConfig{
			Delay:    checkoutDelay,
			Currency: getEnv("CURRENCY", "INR"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "orders-placed"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

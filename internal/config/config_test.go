package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // no .env here
	for _, key := range []string{"HTTP_PORT", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "CHECKOUT_DELAY", "LOG_LEVEL", "CURRENCY", "KAFKA_BROKERS", "KAFKA_TOPIC"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 2*time.Second, cfg.Checkout.Delay)
	assert.Equal(t, "INR", cfg.Checkout.Currency)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, "orders-placed", cfg.Kafka.Topic)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CHECKOUT_DELAY", "500ms")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 500*time.Millisecond, cfg.Checkout.Delay)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
}

func TestLoad_InvalidDuration(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CHECKOUT_DELAY", "two seconds")

	_, err := Load()
	require.ErrorContains(t, err, "invalid CHECKOUT_DELAY")
}

func TestLoad_NegativeDelay(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CHECKOUT_DELAY", "-1s")

	_, err := Load()
	require.ErrorContains(t, err, "must not be negative")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}

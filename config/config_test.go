package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		check     func(t *testing.T, cfg Config)
		wantError bool
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, ":8084", cfg.HTTPAddr)
				assert.Equal(t, "orders.txt", cfg.OrdersFile)
				assert.Equal(t, "salida.txt", cfg.SortedOutputFile)
				assert.Zero(t, cfg.MaxOrders)
				assert.Equal(t, 24*time.Hour, cfg.RedisTTL)
				assert.Empty(t, cfg.PostgresDSN)
				assert.Empty(t, cfg.RedisAddr)
				assert.Empty(t, cfg.KafkaBroker)
			},
		},
		{
			name: "backends enabled",
			env: map[string]string{
				"DB_HOST":      "db",
				"DB_USER":      "app",
				"DB_NAME":      "overcooked",
				"REDIS_HOST":   "cache",
				"REDIS_TTL":    "5m",
				"KAFKA_BROKER": "kafka:9092",
				"MAX_ORDERS":   "500",
				"MAX_VERTICES": "40",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "host=db port=5432 user=app password= dbname=overcooked sslmode=disable", cfg.PostgresDSN)
				assert.Equal(t, "cache:6379", cfg.RedisAddr)
				assert.Equal(t, 5*time.Minute, cfg.RedisTTL)
				assert.Equal(t, "kafka:9092", cfg.KafkaBroker)
				assert.Equal(t, 500, cfg.MaxOrders)
				assert.Equal(t, 40, cfg.MaxVertices)
			},
		},
		{
			name:      "bad integer",
			env:       map[string]string{"MAX_ORDERS": "lots"},
			wantError: true,
		},
		{
			name:      "bad duration",
			env:       map[string]string{"REDIS_TTL": "soon"},
			wantError: true,
		},
	}

	keys := []string{
		"HTTP_ADDR", "ORDERS_FILE", "SORTED_OUTPUT_FILE", "MAX_ORDERS", "MAX_VERTICES", "QR_BASE_URL",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_ORDER_LIMIT",
		"REDIS_HOST", "REDIS_PORT", "REDIS_TTL", "KAFKA_BROKER",
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			for _, k := range keys {
				t.Setenv(k, "")
			}
			for k, v := range testCase.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if testCase.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			testCase.check(t, cfg)
		})
	}
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter("kafka:9092", "analytics-snapshots")
	assert.Equal(t, "analytics-snapshots", w.Topic)
	assert.Equal(t, "kafka:9092", w.Addr.String())
}

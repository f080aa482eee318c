package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Config is read from the environment. Optional backends stay disabled while their
// address is empty.
type Config struct {
	HTTPAddr         string
	OrdersFile       string
	SortedOutputFile string
	MaxOrders        int
	MaxVertices      int
	QRBaseURL        string

	PostgresDSN   string
	PostgresLimit int

	RedisAddr string
	RedisTTL  time.Duration

	KafkaBroker        string
	KafkaOrdersTopic   string
	KafkaSnapshotTopic string
	KafkaGroupID       string
}

func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:           getEnv("HTTP_ADDR", ":8084"),
		OrdersFile:         getEnv("ORDERS_FILE", "orders.txt"),
		SortedOutputFile:   getEnv("SORTED_OUTPUT_FILE", "salida.txt"),
		QRBaseURL:          getEnv("QR_BASE_URL", "http://localhost:8084"),
		KafkaBroker:        os.Getenv("KAFKA_BROKER"),
		KafkaOrdersTopic:   getEnv("KAFKA_ORDERS_TOPIC", "order-lines"),
		KafkaSnapshotTopic: getEnv("KAFKA_SNAPSHOT_TOPIC", "analytics-snapshots"),
		KafkaGroupID:       getEnv("KAFKA_GROUP_ID", "analytics-svc"),
	}

	var err error
	if cfg.MaxOrders, err = intEnv("MAX_ORDERS", 0); err != nil {
		return Config{}, err
	}
	if cfg.MaxVertices, err = intEnv("MAX_VERTICES", 0); err != nil {
		return Config{}, err
	}
	if cfg.PostgresLimit, err = intEnv("DB_ORDER_LIMIT", 11000); err != nil {
		return Config{}, err
	}

	ttl := getEnv("REDIS_TTL", "24h")
	if cfg.RedisTTL, err = time.ParseDuration(ttl); err != nil {
		return Config{}, fmt.Errorf("REDIS_TTL: %w", err)
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.PostgresDSN = "host=" + host + " port=" + getEnv("DB_PORT", "5432") +
			" user=" + os.Getenv("DB_USER") + " password=" + os.Getenv("DB_PASSWORD") +
			" dbname=" + os.Getenv("DB_NAME") + " sslmode=disable"
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + getEnv("REDIS_PORT", "6379")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func MustInitPostgres(dsn string) *sql.DB {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

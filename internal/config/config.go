package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Addr is the listen address for the HTTP API.
func Addr() string {
	return getenv("POS_ADDR", ":8080")
}

// StorageDriver selects the blob-store backend: redis (default),
// postgres or memory.
func StorageDriver() string {
	return getenv("STORAGE_DRIVER", "redis")
}

// KafkaBroker is empty when order events are disabled.
func KafkaBroker() string {
	return os.Getenv("KAFKA_BROKER")
}

func KafkaTopic() string {
	return getenv("KAFKA_TOPIC", "pos-orders")
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: getenv("REDIS_HOST", "localhost") + ":" + getenv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func MustInitPostgres() *sql.DB {
	connStr := "host=" + getenv("DB_HOST", "localhost") +
		" port=" + getenv("DB_PORT", "5432") +
		" user=" + getenv("DB_USER", "pos") +
		" password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + getenv("DB_NAME", "pos") +
		" sslmode=disable"

	db, err := sql.Open("postgres", connStr)
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

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(KafkaBroker()),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

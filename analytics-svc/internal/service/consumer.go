package service

import (
	"context"
	"encoding/json"
	"log"

	"overcooked-analytics/analytics-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer feeds order lines published on the orders topic into the analytics store.
type Consumer struct {
	Reader   *kafka.Reader
	Ingester OrderIngester
}

func NewConsumer(reader *kafka.Reader, ingester OrderIngester) *Consumer {
	return &Consumer{
		Reader:   reader,
		Ingester: ingester,
	}
}

// Start reads until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order line consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Order line consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessMessage(ctx, msg)
	}
}

func (c *Consumer) ProcessMessage(ctx context.Context, msg domain.KafkaMessage) {
	if msg.Type != domain.MessageTypeOrderLine {
		return
	}

	if err := c.Ingester.IngestLine(ctx, "kafka", msg.Line); err != nil {
		log.Printf("Error ingesting order line %q: %v", msg.Line, err)
		return
	}
}

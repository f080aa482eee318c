package storage

import (
	"context"
	"encoding/json"

	"overcooked-analytics/analytics-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishSnapshot(ctx context.Context, msg domain.KafkaMessage) error {
	m, err := EncodeMessage(msg)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, m)
}

// EncodeMessage keys the message by its type so that all snapshots land on the same
// partition and stay ordered.
func EncodeMessage(msg domain.KafkaMessage) (kafka.Message, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(msg.Type),
		Value: payload,
	}, nil
}

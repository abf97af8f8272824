package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"eatery-pos/internal/domain"
)

// OrderEvent is the message published when a checkout completes.
type OrderEvent struct {
	Type      string  `json:"type"`
	Date      string  `json:"date"`
	ItemCount int     `json:"item_count"`
	Total     float64 `json:"total"`
}

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrder(ctx context.Context, order domain.Order) error {
	event := OrderEvent{
		Type:      "order_completed",
		Date:      order.Date.Format(time.RFC3339),
		ItemCount: len(order.Items),
		Total:     order.Total,
	}
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Date),
		Value: payload,
	})
}

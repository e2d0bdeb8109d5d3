package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"pickup-market/order-svc/internal/domain"
)

// KafkaPublisher fans order changes out to sync-svc. Messages are keyed by
// shop id so one shop's events stay on one partition, in commit order.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ShopID),
		Value: payload,
	})
}

package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"orderiq/order-svc/internal/notify"
)

// KafkaPublisher queues notification events for notify-svc to drain. Delivery
// to the relay is at-least-once and fully decoupled from the caller.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) Notify(ctx context.Context, event notify.Event) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.To),
		Value: payload,
	})
}

var _ notify.Notifier = (*KafkaPublisher)(nil)

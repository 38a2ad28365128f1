package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"orderiq/notify-svc/internal/domain"
)

// MessageReader is the read side of the notifications topic; satisfied by
// *kafka.Reader.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Consumer drains the notifications topic and forwards each event to the
// email relay. Delivery is best-effort: every failure is logged and the loop
// moves on.
type Consumer struct {
	Reader MessageReader
	Relay  RelayClient
}

func NewConsumer(reader MessageReader, relay RelayClient) *Consumer {
	return &Consumer{
		Reader: reader,
		Relay:  relay,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Notification Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Printf("Consumer stopping: %v", ctx.Err())
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.Event) {
	if event.Type == "" || event.To == "" {
		log.Printf("Dropping malformed notification event: %+v", event)
		return
	}

	log.Printf("Forwarding notification: type=%s to=%s", event.Type, event.To)
	if err := c.Relay.Send(ctx, event); err != nil {
		log.Printf("Error forwarding %s to %s: %v", event.Type, event.To, err)
		return
	}
	log.Printf("Successfully forwarded %s to %s", event.Type, event.To)
}

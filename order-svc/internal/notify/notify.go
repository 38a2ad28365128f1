// Package notify is the outbound boundary for best-effort notifications.
// Emitting an event never blocks or fails the primary operation; every
// implementation swallows delivery errors after logging them.
package notify

import (
	"context"
	"log"
)

// EventType matches the relay's accepted types.
type EventType string

const (
	OrderConfirmation  EventType = "orderConfirmation"
	OrderStatusUpdate  EventType = "orderStatusUpdate"
	RestaurantApproval EventType = "restaurantApproval"
	WelcomeCustomer    EventType = "welcomeCustomer"
	WelcomeRestaurant  EventType = "welcomeRestaurant"
	OTPVerification    EventType = "otpVerification"
)

// Event is the wire shape the relay accepts: {type, to, details}.
type Event struct {
	Type    EventType              `json:"type"`
	To      string                 `json:"to"`
	Details map[string]interface{} `json:"details"`
}

// Notifier delivers an event somewhere downstream: straight to the relay, or
// onto a queue another process drains.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// Sender is anything that can deliver one event end to end.
type Sender interface {
	Send(ctx context.Context, event Event) error
}

// Direct sends events straight to the relay through a Sender.
type Direct struct {
	Sender Sender
}

func NewDirect(sender Sender) *Direct {
	return &Direct{Sender: sender}
}

func (d *Direct) Notify(ctx context.Context, event Event) error {
	return d.Sender.Send(ctx, event)
}

var _ Notifier = (*Direct)(nil)

// Emit fires an event through the notifier and logs any failure. This is the
// call sites' single entry point; a nil notifier is a no-op.
func Emit(ctx context.Context, n Notifier, event Event) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, event); err != nil {
		log.Printf("notify: failed to deliver %s to %s: %v", event.Type, event.To, err)
	}
}

package service

import (
	"context"

	"orderiq/notify-svc/internal/domain"
)

// RelayClient forwards one event to the email relay.
type RelayClient interface {
	Send(ctx context.Context, event domain.Event) error
}

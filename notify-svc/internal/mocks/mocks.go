// Package mocks holds testify mocks for the consumer's collaborator interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"orderiq/notify-svc/internal/domain"
)

type RelayClient struct {
	mock.Mock
}

func (m *RelayClient) Send(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

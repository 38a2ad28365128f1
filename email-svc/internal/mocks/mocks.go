// Package mocks holds testify mocks for the relay's collaborator interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"orderiq/email-svc/internal/domain"
)

type Sender struct {
	mock.Mock
}

func (m *Sender) Send(msg domain.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

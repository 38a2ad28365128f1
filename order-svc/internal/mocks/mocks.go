// Package mocks holds testify mocks for the interfaces the tests exercise.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"orderiq/order-svc/internal/notify"
	"orderiq/order-svc/internal/storage"
)

type Notifier struct {
	mock.Mock
}

func (m *Notifier) Notify(ctx context.Context, event notify.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type Sender struct {
	mock.Mock
}

func (m *Sender) Send(ctx context.Context, event notify.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) InsertProfile(rec *storage.ProfileRecord) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *ProfileRepository) GetProfile(id string) (*storage.ProfileRecord, error) {
	args := m.Called(id)
	if rec := args.Get(0); rec != nil {
		return rec.(*storage.ProfileRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

type KV struct {
	mock.Mock
}

func (m *KV) Get(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *KV) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *KV) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

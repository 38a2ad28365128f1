package httpapi

import (
	"context"

	"orderiq/order-svc/internal/storage"
)

// ProfileRepository is the relational collaborator surface the handlers need:
// insert and point-lookup only.
type ProfileRepository interface {
	InsertProfile(rec *storage.ProfileRecord) error
	GetProfile(id string) (*storage.ProfileRecord, error)
}

// QRStore caches rendered QR PNGs.
type QRStore interface {
	QRKey(restaurantID string) string
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, png []byte) error
}

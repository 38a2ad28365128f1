package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// QRCache keeps rendered deep-link QR images so repeat scans of the same
// restaurant page don't re-encode.
type QRCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewQRCache(client *redis.Client, ttl time.Duration) *QRCache {
	return &QRCache{Client: client, TTL: ttl}
}

func (c *QRCache) QRKey(restaurantID string) string {
	return "qr:restaurant:" + restaurantID
}

func (c *QRCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (c *QRCache) Set(ctx context.Context, key string, png []byte) error {
	return c.Client.Set(ctx, key, png, c.TTL).Err()
}

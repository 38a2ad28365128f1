package session

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisKV backs the session blob with Redis. No TTL: the entry lives until
// logout removes it.
type RedisKV struct {
	Client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{Client: client}
}

func (r *RedisKV) Get(key string) (string, error) {
	val, err := r.Client.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (r *RedisKV) Set(key, value string) error {
	return r.Client.Set(context.Background(), key, value, 0).Err()
}

func (r *RedisKV) Delete(key string) error {
	return r.Client.Del(context.Background(), key).Err()
}

var _ KV = (*RedisKV)(nil)

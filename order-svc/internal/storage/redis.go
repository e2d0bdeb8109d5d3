package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore removes the customer's persisted cart after a confirmed
// payment. The key format matches cart-svc's storage layout.
type RedisCartStore struct {
	Client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{Client: client}
}

func (s *RedisCartStore) Clear(ctx context.Context, customerID string) error {
	return s.Client.Del(ctx, "cart-storage:"+customerID).Err()
}

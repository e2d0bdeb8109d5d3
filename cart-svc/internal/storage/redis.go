package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"pickup-market/cart-svc/internal/domain"
)

// RedisCartStore persists carts under a fixed key per customer, with no TTL:
// the cart must survive reloads and new sessions until checkout clears it.
type RedisCartStore struct {
	Client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{Client: client}
}

func (s *RedisCartStore) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	data, err := s.Client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return &cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, userID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := s.Client.Set(ctx, cartKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, userID string) error {
	if err := s.Client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(userID string) string {
	return "cart-storage:" + userID
}

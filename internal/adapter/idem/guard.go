package idem

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	checkoutKeyPrefix = "idem:order:create:"
	checkoutKeyTTL    = 24 * time.Hour
)

// Guard reserves idempotency keys. Reserve returns false when the key has
// already been used, which means the request is a duplicate.
type Guard interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Close() error
}

// redisCmdable is the subset of redis.Client the guard relies on.
type redisCmdable interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Close() error
}

// RedisGuard backs idempotency keys with Redis SETNX and a TTL.
type RedisGuard struct {
	client redisCmdable
}

// NewRedisGuard connects to Redis at the given address.
func NewRedisGuard(address string) *RedisGuard {
	client := redis.NewClient(&redis.Options{Addr: address})
	return &RedisGuard{client: client}
}

// Reserve atomically claims the key for this request.
func (g *RedisGuard) Reserve(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, checkoutKeyPrefix+key, 1, checkoutKeyTTL).Result()
	if err != nil {
		return false, fmt.Errorf("reserve idempotency key: %w", err)
	}
	return ok, nil
}

// Close releases the Redis connection.
func (g *RedisGuard) Close() error {
	return g.client.Close()
}

// NopGuard accepts every key; used when Redis is not configured.
type NopGuard struct{}

func (NopGuard) Reserve(context.Context, string) (bool, error) { return true, nil }

func (NopGuard) Close() error { return nil }

package idem

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisStub struct {
	keys   map[string]bool
	err    error
	closed bool
}

func (s *redisStub) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
		return cmd
	}
	if s.keys == nil {
		s.keys = make(map[string]bool)
	}
	if s.keys[key] {
		cmd.SetVal(false)
		return cmd
	}
	s.keys[key] = true
	cmd.SetVal(true)
	return cmd
}

func (s *redisStub) Close() error {
	s.closed = true
	return nil
}

func TestRedisGuardReserve(t *testing.T) {
	stub := &redisStub{}
	guard := &RedisGuard{client: stub}
	ctx := context.Background()

	fresh, err := guard.Reserve(ctx, "key-1")
	if err != nil || !fresh {
		t.Fatalf("expected fresh key, got fresh=%v err=%v", fresh, err)
	}
	if !stub.keys[checkoutKeyPrefix+"key-1"] {
		t.Fatalf("expected prefixed key, got %v", stub.keys)
	}

	fresh, err = guard.Reserve(ctx, "key-1")
	if err != nil || fresh {
		t.Fatalf("expected duplicate key, got fresh=%v err=%v", fresh, err)
	}
}

func TestRedisGuardReserveError(t *testing.T) {
	guard := &RedisGuard{client: &redisStub{err: errors.New("connection refused")}}

	if _, err := guard.Reserve(context.Background(), "key-1"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRedisGuardClose(t *testing.T) {
	stub := &redisStub{}
	guard := &RedisGuard{client: stub}

	if err := guard.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stub.closed {
		t.Fatal("expected client to be closed")
	}
}

func TestNopGuard(t *testing.T) {
	var guard Guard = NopGuard{}
	fresh, err := guard.Reserve(context.Background(), "any")
	if err != nil || !fresh {
		t.Fatalf("expected fresh, got fresh=%v err=%v", fresh, err)
	}
	if err := guard.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

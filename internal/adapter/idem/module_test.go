package idem

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rbxmart/rbxmart/internal/config"
)

func TestNewGuardWithoutRedis(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	guard := newGuard(guardParams{Config: &config.Config{}, Logger: logger})
	if _, ok := guard.(NopGuard); !ok {
		t.Fatalf("expected nop guard, got %T", guard)
	}
}

func TestNewGuardWithRedis(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	guard := newGuard(guardParams{Config: &config.Config{RedisAddress: "localhost:6379"}, Logger: logger})
	rg, ok := guard.(*RedisGuard)
	if !ok {
		t.Fatalf("expected redis guard, got %T", guard)
	}
	t.Cleanup(func() { _ = rg.Close() })
}

package idem

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/rbxmart/rbxmart/internal/config"
)

// Module exposes the idempotency guard to fx graph.
var Module = fx.Options(
	fx.Provide(newGuard),
	fx.Invoke(registerLifecycle),
)

type guardParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newGuard(p guardParams) Guard {
	if p.Config.RedisAddress == "" {
		p.Logger.Info("redis not configured, idempotency keys disabled")
		return NopGuard{}
	}
	return NewRedisGuard(p.Config.RedisAddress)
}

func registerLifecycle(lc fx.Lifecycle, guard Guard) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return guard.Close()
		},
	})
}

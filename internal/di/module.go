package di

import (
	"go.uber.org/fx"

	"github.com/rbxmart/rbxmart/internal/adapter/idem"
	"github.com/rbxmart/rbxmart/internal/adapter/payment"
	"github.com/rbxmart/rbxmart/internal/adapter/stream"
	"github.com/rbxmart/rbxmart/internal/app"
	"github.com/rbxmart/rbxmart/internal/config"
	"github.com/rbxmart/rbxmart/internal/logger"
	"github.com/rbxmart/rbxmart/internal/pkg/auth"
	"github.com/rbxmart/rbxmart/internal/server/http/handlers"
	"github.com/rbxmart/rbxmart/internal/server/http/router"
	"github.com/rbxmart/rbxmart/internal/storage/postgres"
	"github.com/rbxmart/rbxmart/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payment.Module,
		stream.Module,
		idem.Module,
		usecase.Module,
		fx.Provide(
			func(client payment.Client) usecase.PaymentGateway { return client },
			func(publisher stream.Publisher) usecase.EventPublisher { return publisher },
			func(guard idem.Guard) usecase.IdempotencyGuard { return guard },
			func(facade *app.StoreFacade) handlers.StoreFacade { return facade },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

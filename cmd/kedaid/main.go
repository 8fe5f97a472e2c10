package main

import (
	"context"
	"log/slog"
	"os"

	"kedai/config"
	"kedai/internal/delivery"
	"kedai/internal/delivery/api"
	apimiddleware "kedai/internal/delivery/api/middleware"
	"kedai/internal/delivery/api/router/handler"
	infraapi "kedai/internal/infra/api"
	"kedai/internal/infra/auth"
	"kedai/internal/infra/geocode"
	logs "kedai/internal/infra/log"
	"kedai/internal/infra/qrcode"
	"kedai/internal/infra/session"
	"kedai/internal/infra/storage"
	"kedai/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			infraapi.NewClient,
			infraapi.NewAddressRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTInspector,
			session.NewProvider,
			geocode.New,
			qrcode.New,
			newNavigator,
		),
	)
}

// newNavigator drops navigations: bridge clients route themselves.
func newNavigator(cfg *config.Config, logger *slog.Logger) *impl.DelayedNavigator {
	return impl.NewDelayedNavigator(nil, cfg.Address.NavigateDelay, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressService,
			impl.NewLocationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAddressHandler,
			handler.NewLocationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

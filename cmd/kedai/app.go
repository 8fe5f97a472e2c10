package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"kedai/config"
	"kedai/internal/domain/entity"
	"kedai/internal/domain/service"
	"kedai/internal/infra/api"
	"kedai/internal/infra/auth"
	"kedai/internal/infra/geocode"
	logs "kedai/internal/infra/log"
	"kedai/internal/infra/qrcode"
	"kedai/internal/infra/session"
	"kedai/internal/infra/storage"
	"kedai/internal/usecase"
	"kedai/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deps is everything a subcommand may need from the container.
type deps struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Sessions  service.SessionProvider
	Inspector service.TokenInspector
	Addresses usecase.AddressUsecase
	Locations usecase.LocationUsecase
	QRCode    service.QRCodeService
	Navigator *impl.DelayedNavigator
}

// newApp builds the client container. Logs go to stderr so stdout only
// carries command output.
func newApp(target *deps) *fx.App {
	return fx.New(
		fx.NopLogger,
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Populate(target),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		fx.Annotate(
			func() io.Writer { return os.Stderr },
			fx.ResultTags(`name:"logOutput"`),
		),
		logs.New,
		context.Background,
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewClient,
			api.NewAddressRepository,
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

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressService,
			impl.NewLocationService,
		),
	)
}

// newNavigator prints the screen the app would move to after a mutation.
func newNavigator(cfg *config.Config, logger *slog.Logger) *impl.DelayedNavigator {
	printer := service.NavigatorFunc(func(route entity.Route) {
		printf("-> %s\n", route)
	})

	return impl.NewDelayedNavigator(printer, cfg.Address.NavigateDelay, logger)
}

// withApp starts the container, runs fn and waits for pending navigations
// before stopping it.
func withApp(ctx context.Context, fn func(ctx context.Context, d *deps) error) error {
	var d deps
	app := newApp(&d)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}

	runErr := fn(ctx, &d)

	waitCtx, cancel := context.WithTimeout(ctx, d.Config.Address.NavigateDelay+app.StopTimeout())
	defer cancel()
	if err := d.Navigator.Wait(waitCtx); err != nil {
		d.Logger.Warn("Pending navigation abandoned", slog.Any("error", err))
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop")
	}

	return runErr
}

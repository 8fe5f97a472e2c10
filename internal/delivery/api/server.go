// Package api serves the address workflow over HTTP for clients that cannot
// embed the Go module.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"kedai/config"
	"kedai/internal/delivery"
	apimiddleware "kedai/internal/delivery/api/middleware"
	"kedai/internal/delivery/api/router"
	"kedai/internal/delivery/api/validator"
	"kedai/internal/delivery/middleware"
	"kedai/internal/domain/lifecycle"
	"kedai/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the bridge server and stops it with the application.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params.Cfg, params.Logger, router.NewRouter(params.RouterParams)),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// routeRegistrar is satisfied by the router.
type routeRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

func newEcho(cfg *config.Config, logger *slog.Logger, routes routeRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so panics in any later middleware are caught
	e.Use(echomiddleware.Recover())

	// Request ID before the logger so every line carries it
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	if len(cfg.HTTP.AllowOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: cfg.HTTP.AllowOrigins,
			AllowHeaders: []string{
				echo.HeaderAuthorization,
				echo.HeaderContentType,
				apimiddleware.HeaderCustomerID,
			},
		}))
	}
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	routes.RegisterRoutes(e)

	return e
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort(s.cfg.HTTP.Host, strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting address bridge server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down address bridge server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

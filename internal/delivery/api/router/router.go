// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kedai/internal/delivery/api/middleware"
	"kedai/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler    *handler.AddressHandler
	LocationHandler   *handler.LocationHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler    *handler.AddressHandler
	locationHandler   *handler.LocationHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler:    params.AddressHandler,
		locationHandler:   params.LocationHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Address routes act on behalf of the caller's bearer token
	addressGroup := e.Group("/addresses")
	addressGroup.Use(r.sessionMiddleware.Forward)
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.GET("/selected", r.addressHandler.SelectedAddress)
		addressGroup.GET("/:id", r.addressHandler.GetAddress)
		addressGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressGroup.POST("/:id/select", r.addressHandler.SelectAddress)
		addressGroup.GET("/:id/qr", r.addressHandler.AddressQR)
	}

	// Map lookups need no session
	locationGroup := e.Group("/location")
	{
		locationGroup.GET("/reverse", r.locationHandler.ReverseGeocode)
		locationGroup.GET("/search", r.locationHandler.SearchPlaces)
		locationGroup.GET("/place/:placeId", r.locationHandler.ResolvePlace)
	}
}

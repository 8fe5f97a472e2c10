package handler

import (
	"log/slog"
	"net/http"

	"kedai/internal/delivery/api/response"
	"kedai/internal/domain/entity"
	"kedai/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for map lookups
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// SearchRequest holds the query of a place search
type SearchRequest struct {
	Query string `query:"q" json:"q" validate:"required"`
}

// ReverseGeocode handles resolving a coordinate into an address
func (h *LocationHandler) ReverseGeocode(c echo.Context) error {
	var coord entity.Coordinate
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &coord.Latitude).
		MustFloat64("lng", &coord.Longitude).
		BindError()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "lat and lng are required numbers")
	}

	location, err := h.locationUC.ReverseGeocode(c.Request().Context(), coord)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, location)
}

// SearchPlaces handles place autocomplete
func (h *LocationHandler) SearchPlaces(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	predictions, err := h.locationUC.SearchPlaces(c.Request().Context(), req.Query)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, predictions)
}

// ResolvePlace handles turning a place suggestion into a location
func (h *LocationHandler) ResolvePlace(c echo.Context) error {
	location, err := h.locationUC.ResolvePlace(c.Request().Context(), c.Param("placeId"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, location)
}

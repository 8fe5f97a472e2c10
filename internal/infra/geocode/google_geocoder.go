// Package geocode implements the map provider boundary on top of the Google Maps APIs.
package geocode

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"kedai/config"
	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"googlemaps.github.io/maps"
)

const routeComponentType = "route"

// Params holds dependencies for the geocoder, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type googleGeocoder struct {
	client   *maps.Client
	language string
	region   string
	logger   *slog.Logger
}

// New creates the configured geocoder: Google Maps behind a result cache.
// Without an API key every lookup fails with ErrGeocodeFailed, so address
// management keeps working while the map is unavailable.
func New(params Params) (service.Geocoder, error) {
	if strings.TrimSpace(params.Config.Maps.APIKey) == "" {
		params.Logger.Warn("Maps API key not configured, location lookups are disabled")

		return unavailableGeocoder{}, nil
	}

	google, err := NewGoogleGeocoder(params.Config.Maps, params.Logger)
	if err != nil {
		return nil, err
	}

	return NewCachedGeocoder(google, params.Config.Maps.CacheTTL), nil
}

// NewGoogleGeocoder creates a geocoder backed by the Google Maps web services.
func NewGoogleGeocoder(cfg *config.MapsConfig, logger *slog.Logger) (service.Geocoder, error) {
	if cfg == nil || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("maps api key is required")
	}

	opts := []maps.ClientOption{
		maps.WithAPIKey(cfg.APIKey),
		maps.WithHTTPClient(&http.Client{Timeout: cfg.GeocodeTimeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, maps.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create maps client")
	}

	return &googleGeocoder{
		client:   client,
		language: cfg.Language,
		region:   cfg.Region,
		logger:   logger,
	}, nil
}

// ReverseGeocode returns the first result's formatted address and its route component.
func (g *googleGeocoder) ReverseGeocode(ctx context.Context, coord entity.Coordinate) (*service.GeocodeResult, error) {
	if !coord.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(coord.String())
	}

	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: coord.Latitude, Lng: coord.Longitude},
		Language: g.language,
	})
	if err != nil {
		return nil, domainerrors.ErrGeocodeFailed.WithCause(err)
	}
	if len(results) == 0 || results[0].FormattedAddress == "" {
		return nil, domainerrors.ErrGeocodeFailed.WithDetails("no result for " + coord.String())
	}

	first := results[0]
	result := &service.GeocodeResult{FormattedAddress: first.FormattedAddress}
	for _, component := range first.AddressComponents {
		if slices.Contains(component.Types, routeComponentType) {
			result.StreetName = component.LongName

			break
		}
	}

	g.logger.Debug("Reverse geocoded",
		slog.String("coordinate", coord.String()),
		slog.String("address", result.FormattedAddress),
	)

	return result, nil
}

// Autocomplete returns place predictions for free text, restricted to the configured region.
func (g *googleGeocoder) Autocomplete(ctx context.Context, input string) ([]entity.PlacePrediction, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	req := &maps.PlaceAutocompleteRequest{
		Input:    input,
		Language: g.language,
	}
	if g.region != "" {
		req.Components = map[maps.Component][]string{
			maps.ComponentCountry: {g.region},
		}
	}

	resp, err := g.client.PlaceAutocomplete(ctx, req)
	if err != nil {
		return nil, domainerrors.ErrGeocodeFailed.WithCause(err)
	}

	predictions := make([]entity.PlacePrediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		predictions = append(predictions, entity.PlacePrediction{
			PlaceID:     p.PlaceID,
			Description: p.Description,
		})
	}

	return predictions, nil
}

// PlaceDetails resolves a place id into a location without street name.
func (g *googleGeocoder) PlaceDetails(ctx context.Context, placeID string) (*entity.Location, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, domainerrors.ErrPlaceNotFound
	}

	details, err := g.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID:  placeID,
		Language: g.language,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskFormattedAddress,
			maps.PlaceDetailsFieldMaskGeometryLocation,
		},
	})
	if err != nil {
		return nil, domainerrors.ErrGeocodeFailed.WithCause(err)
	}
	if details.FormattedAddress == "" {
		return nil, domainerrors.ErrPlaceNotFound.WithDetails(placeID)
	}

	return &entity.Location{
		Latitude:  details.Geometry.Location.Lat,
		Longitude: details.Geometry.Location.Lng,
		Address:   details.FormattedAddress,
	}, nil
}

type unavailableGeocoder struct{}

var errMapsDisabled = domainerrors.ErrGeocodeFailed.WithDetails("maps api key not configured")

func (unavailableGeocoder) ReverseGeocode(context.Context, entity.Coordinate) (*service.GeocodeResult, error) {
	return nil, errMapsDisabled
}

func (unavailableGeocoder) Autocomplete(context.Context, string) ([]entity.PlacePrediction, error) {
	return nil, errMapsDisabled
}

func (unavailableGeocoder) PlaceDetails(context.Context, string) (*entity.Location, error) {
	return nil, errMapsDisabled
}

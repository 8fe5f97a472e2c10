package service

import (
	"context"

	"kedai/internal/domain/entity"
)

// GeocodeResult is the outcome of reverse geocoding a coordinate.
type GeocodeResult struct {
	FormattedAddress string
	StreetName       string
	CacheHit         bool
}

// Geocoder is the map provider boundary: reverse geocoding and place search.
type Geocoder interface {
	// ReverseGeocode converts a coordinate into a postal address.
	ReverseGeocode(ctx context.Context, coord entity.Coordinate) (*GeocodeResult, error)

	// Autocomplete returns place suggestions for free text.
	Autocomplete(ctx context.Context, input string) ([]entity.PlacePrediction, error)

	// PlaceDetails resolves a suggestion into a position and formatted address.
	PlaceDetails(ctx context.Context, placeID string) (*entity.Location, error)
}

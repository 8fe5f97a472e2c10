package usecase

import (
	"context"

	"kedai/internal/domain/entity"
)

// LocationUsecase defines map lookups bounded by the geocoding timeout.
type LocationUsecase interface {
	// ReverseGeocode resolves a coordinate into a location with its street name.
	ReverseGeocode(ctx context.Context, coord entity.Coordinate) (*entity.Location, error)

	// SearchPlaces returns autocomplete suggestions for free text.
	SearchPlaces(ctx context.Context, text string) ([]entity.PlacePrediction, error)

	// ResolvePlace turns a suggestion into a location. StreetName is left nil.
	ResolvePlace(ctx context.Context, placeID string) (*entity.Location, error)
}

package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"kedai/config"
	deliverycontext "kedai/internal/delivery/context"
	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/domain/service"
	"kedai/internal/errors"
	"kedai/internal/usecase"
)

type locationService struct {
	geocoder service.Geocoder
	timeout  time.Duration
	logger   *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(geocoder service.Geocoder, cfg *config.Config, logger *slog.Logger) usecase.LocationUsecase {
	if cfg.Maps == nil {
		cfg.ApplyDefaults()
	}

	return &locationService{
		geocoder: geocoder,
		timeout:  cfg.Maps.GeocodeTimeout,
		logger:   logger,
	}
}

// ReverseGeocode resolves a coordinate within the geocoding timeout.
func (s *locationService) ReverseGeocode(ctx context.Context, coord entity.Coordinate) (*entity.Location, error) {
	if !coord.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(coord.String())
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.geocoder.ReverseGeocode(ctx, coord)
	if err != nil {
		return nil, s.geocodeError(ctx, err)
	}

	location := &entity.Location{
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		Address:   result.FormattedAddress,
	}
	if result.StreetName != "" {
		street := result.StreetName
		location.StreetName = &street
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Location resolved",
		slog.String("coordinate", coord.String()),
		slog.Bool("cache_hit", result.CacheHit),
	)

	return location, nil
}

// SearchPlaces returns autocomplete predictions. Blank text yields no predictions.
func (s *locationService) SearchPlaces(ctx context.Context, text string) ([]entity.PlacePrediction, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []entity.PlacePrediction{}, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	predictions, err := s.geocoder.Autocomplete(ctx, text)
	if err != nil {
		return nil, s.geocodeError(ctx, err)
	}

	return predictions, nil
}

// ResolvePlace resolves a place id. Place results carry no street name.
func (s *locationService) ResolvePlace(ctx context.Context, placeID string) (*entity.Location, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, domainerrors.ErrPlaceNotFound
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	location, err := s.geocoder.PlaceDetails(ctx, placeID)
	if err != nil {
		return nil, s.geocodeError(ctx, err)
	}

	location.StreetName = nil

	return location, nil
}

func (s *locationService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.timeout)
}

// geocodeError reports a deadline hit as ErrTimeout, keeping caller cancellation as is.
func (s *locationService) geocodeError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domainerrors.ErrTimeout.WithCause(err)
	}

	if errors.Is(err, context.Canceled) {
		return errors.WithStack(err)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.ErrGeocodeFailed.WithCause(err)
}

package impl

import (
	"context"
	"testing"
	"time"

	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/domain/service"
	mockService "kedai/internal/mocks/service"
	"kedai/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLocationService(t *testing.T, timeout time.Duration) (usecase.LocationUsecase, *mockService.MockGeocoder) {
	t.Helper()

	geocoder := mockService.NewMockGeocoder(t)
	cfg := newTestConfig()
	cfg.Maps.GeocodeTimeout = timeout

	return NewLocationService(geocoder, cfg, newDiscardLogger()), geocoder
}

func TestLocationService_ReverseGeocode(t *testing.T) {
	svc, geocoder := createTestLocationService(t, time.Second)
	coord := entity.Coordinate{Latitude: 3.139, Longitude: 101.6869}

	geocoder.EXPECT().ReverseGeocode(mock.Anything, coord).Return(&service.GeocodeResult{
		FormattedAddress: "Jalan Ampang, Kuala Lumpur",
		StreetName:       "Jalan Ampang",
	}, nil)

	location, err := svc.ReverseGeocode(context.Background(), coord)
	require.NoError(t, err)
	assert.Equal(t, 3.139, location.Latitude)
	assert.Equal(t, 101.6869, location.Longitude)
	assert.Equal(t, "Jalan Ampang, Kuala Lumpur", location.Address)
	require.NotNil(t, location.StreetName)
	assert.Equal(t, "Jalan Ampang", *location.StreetName)
}

func TestLocationService_ReverseGeocode_NoStreet(t *testing.T) {
	svc, geocoder := createTestLocationService(t, time.Second)

	geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything).Return(&service.GeocodeResult{
		FormattedAddress: "Kuala Lumpur",
	}, nil)

	location, err := svc.ReverseGeocode(context.Background(), entity.Coordinate{Latitude: 3.1, Longitude: 101.6})
	require.NoError(t, err)
	assert.Nil(t, location.StreetName)
}

func TestLocationService_ReverseGeocode_InvalidCoordinate(t *testing.T) {
	svc, _ := createTestLocationService(t, time.Second)

	_, err := svc.ReverseGeocode(context.Background(), entity.Coordinate{Latitude: 95})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestLocationService_ReverseGeocode_Timeout(t *testing.T) {
	svc, geocoder := createTestLocationService(t, 20*time.Millisecond)

	geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ entity.Coordinate) (*service.GeocodeResult, error) {
			<-ctx.Done()

			return nil, domainerrors.ErrGeocodeFailed.WithCause(ctx.Err())
		})

	_, err := svc.ReverseGeocode(context.Background(), entity.Coordinate{Latitude: 3.1, Longitude: 101.6})
	assert.ErrorIs(t, err, domainerrors.ErrTimeout)
	assert.True(t, domainerrors.IsRetryable(err))
}

func TestLocationService_ReverseGeocode_ProviderError(t *testing.T) {
	svc, geocoder := createTestLocationService(t, time.Second)

	geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything).Return(nil, assert.AnError)

	_, err := svc.ReverseGeocode(context.Background(), entity.Coordinate{Latitude: 3.1, Longitude: 101.6})
	assert.ErrorIs(t, err, domainerrors.ErrGeocodeFailed)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLocationService_SearchPlaces(t *testing.T) {
	svc, geocoder := createTestLocationService(t, time.Second)

	predictions, err := svc.SearchPlaces(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, predictions)

	geocoder.EXPECT().Autocomplete(mock.Anything, "klcc").Return([]entity.PlacePrediction{
		{PlaceID: "p1", Description: "KLCC"},
	}, nil)

	predictions, err = svc.SearchPlaces(context.Background(), " klcc ")
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, "p1", predictions[0].PlaceID)
}

func TestLocationService_ResolvePlace_DropsStreetName(t *testing.T) {
	svc, geocoder := createTestLocationService(t, time.Second)
	street := "Jalan Ampang"

	geocoder.EXPECT().PlaceDetails(mock.Anything, "p1").Return(&entity.Location{
		Latitude:   3.1579,
		Longitude:  101.7116,
		Address:    "KLCC",
		StreetName: &street,
	}, nil)

	location, err := svc.ResolvePlace(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "KLCC", location.Address)
	assert.Nil(t, location.StreetName)

	_, err = svc.ResolvePlace(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
}

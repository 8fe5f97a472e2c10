package geocode

import (
	"context"
	"fmt"
	"time"

	"kedai/internal/domain/entity"
	"kedai/internal/domain/service"

	"github.com/patrickmn/go-cache"
)

// cachedGeocoder reuses reverse geocode results for the same coordinate
// (rounded to ~0.1 m). Place search is never cached.
type cachedGeocoder struct {
	next  service.Geocoder
	cache *cache.Cache
}

// NewCachedGeocoder wraps next with a TTL cache. A zero ttl disables caching.
func NewCachedGeocoder(next service.Geocoder, ttl time.Duration) service.Geocoder {
	if ttl <= 0 {
		return next
	}

	return &cachedGeocoder{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func cacheKey(coord entity.Coordinate) string {
	return fmt.Sprintf("%.6f:%.6f", coord.Latitude, coord.Longitude)
}

func (c *cachedGeocoder) ReverseGeocode(ctx context.Context, coord entity.Coordinate) (*service.GeocodeResult, error) {
	key := cacheKey(coord)
	if x, found := c.cache.Get(key); found {
		hit := *x.(*service.GeocodeResult)
		hit.CacheHit = true

		return &hit, nil
	}

	result, err := c.next.ReverseGeocode(ctx, coord)
	if err != nil {
		return nil, err
	}

	stored := *result
	c.cache.Set(key, &stored, cache.DefaultExpiration)

	return result, nil
}

func (c *cachedGeocoder) Autocomplete(ctx context.Context, input string) ([]entity.PlacePrediction, error) {
	return c.next.Autocomplete(ctx, input)
}

func (c *cachedGeocoder) PlaceDetails(ctx context.Context, placeID string) (*entity.Location, error) {
	return c.next.PlaceDetails(ctx, placeID)
}

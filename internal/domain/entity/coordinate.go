package entity

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate is within WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// Point converts the coordinate to an orb point (lng, lat).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Latitude, c.Longitude)
}

// Location is what the location picker reports: a position with its geocoded address.
// StreetName is nil when the location came from a place search.
type Location struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address"`
	StreetName *string `json:"street_name,omitempty"`
}

// Coordinate returns the location position.
func (l Location) Coordinate() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// PlacePrediction is a single places-autocomplete suggestion.
type PlacePrediction struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
}

// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"
)

// Address is a customer's delivery address as known to the client.
// The copy is transient: it is only valid for the lifetime of the screen that fetched it.
type Address struct {
	ID         string    `json:"id"`          // Opaque, server-assigned identifier.
	CustomerID string    `json:"customer_id"` // The customer owning this address.
	Name       string    `json:"name"`        // Recipient name.
	Phone      string    `json:"phone"`       // Recipient phone, digits only, without the country code.
	Unit       string    `json:"unit"`        // Unit, floor or house number.
	Address    string    `json:"address"`     // The full, human-readable street address.
	Note       string    `json:"note"`        // Free-text instructions for the rider.
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	IsDefault  bool      `json:"is_default"` // Pre-fills delivery flows. The server keeps one per customer.
	UpdatedAt  time.Time `json:"updated_at,omitzero"`
}

// Coordinate returns the address position.
func (a *Address) Coordinate() Coordinate {
	return Coordinate{Latitude: a.Latitude, Longitude: a.Longitude}
}

// SortDefaultFirst orders addresses so default ones come first,
// keeping the server order otherwise.
func SortDefaultFirst(addresses []*Address) {
	slices.SortStableFunc(addresses, func(a, b *Address) int {
		switch {
		case a.IsDefault == b.IsDefault:
			return 0
		case a.IsDefault:
			return -1
		default:
			return 1
		}
	})
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"kedai/internal/domain/entity"
)

// AddressRepository defines the address operations offered by the remote backend.
// Every call is authenticated with the current session's bearer token.
type AddressRepository interface {
	// List retrieves every address of a customer in server order.
	List(ctx context.Context, customerID string) ([]*entity.Address, error)

	// Get retrieves a single address by its ID.
	// Returns domain ErrAddressNotFound if the backend does not know it.
	Get(ctx context.Context, addressID string) (*entity.Address, error)

	// Create persists a new address and returns the server copy.
	Create(ctx context.Context, address *entity.Address) (*entity.Address, error)

	// Update overwrites the whole record. Last write wins.
	Update(ctx context.Context, addressID string, address *entity.Address) (*entity.Address, error)

	// SetDefault marks the address as the customer's default one.
	SetDefault(ctx context.Context, addressID, customerID string) error

	// Delete removes an address.
	Delete(ctx context.Context, addressID string) error
}

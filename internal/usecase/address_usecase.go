package usecase

import (
	"context"

	"kedai/internal/domain/entity"
)

// AddressInput represents the editable fields of an address form.
// Phone holds the digits typed after the fixed country-code prefix.
type AddressInput struct {
	Address   string  `json:"address" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Phone     string  `json:"phone" validate:"required,phone_digits"`
	Unit      string  `json:"unit" validate:"required"`
	Note      string  `json:"note"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	IsDefault bool    `json:"is_default"`
}

// Coordinate returns the input position.
func (in *AddressInput) Coordinate() entity.Coordinate {
	return entity.Coordinate{Latitude: in.Latitude, Longitude: in.Longitude}
}

// InputFromAddress builds form input from a fetched address.
func InputFromAddress(a *entity.Address) *AddressInput {
	return &AddressInput{
		Address:   a.Address,
		Name:      a.Name,
		Phone:     a.Phone,
		Unit:      a.Unit,
		Note:      a.Note,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		IsDefault: a.IsDefault,
	}
}

// UpdateResult is the aggregated outcome of the update-then-set-default saga.
// The update itself succeeded whenever an UpdateResult is returned.
type UpdateResult struct {
	Address *entity.Address `json:"address"`

	// DefaultRequested is true when the input asked for the address to become default.
	DefaultRequested bool `json:"default_requested"`

	// DefaultApplied is true when the set-default call succeeded.
	DefaultApplied bool `json:"default_applied"`

	// DefaultErr holds the set-default failure, if any.
	DefaultErr error `json:"-"`
}

// AddressUsecase defines the delivery address workflow of the signed-in customer.
type AddressUsecase interface {
	// ListAddresses returns the customer's addresses, default first.
	ListAddresses(ctx context.Context) ([]*entity.Address, error)

	GetAddress(ctx context.Context, addressID string) (*entity.Address, error)

	// ValidateAddress checks the required fields without touching the network.
	ValidateAddress(input *AddressInput) error

	// CreateAddress validates and creates an address, then navigates to the address picker.
	CreateAddress(ctx context.Context, input *AddressInput) (*entity.Address, error)

	// UpdateAddress overwrites the address and, when requested, makes it the default one.
	UpdateAddress(ctx context.Context, addressID string, input *AddressInput) (*UpdateResult, error)

	// DeleteAddress removes the address, then navigates back to the address list.
	// Callers must have obtained the user's confirmation.
	DeleteAddress(ctx context.Context, addressID string) error

	// SelectAddress persists the address as the delivery address of the next order.
	SelectAddress(ctx context.Context, addressID string) (*entity.DeliveryAddressDetails, error)

	// SelectedAddress returns the persisted delivery address snapshot.
	SelectedAddress(ctx context.Context) (*entity.DeliveryAddressDetails, error)

	// DisplayPhone prefixes stored digits with the country code.
	DisplayPhone(phone string) string

	// NormalizePhone strips the country code and separators from user input.
	NormalizePhone(input string) string
}

package repository

import (
	"context"

	"kedai/internal/domain/entity"
	"kedai/internal/errors"
)

// Keys persisted on the device.
const (
	KeyAuthToken              = "authToken"
	KeyCustomerData           = "customerData"
	KeyDeliveryAddressDetails = "deliveryAddressDetails"
)

// DeliveryAddressKey is the key holding the selected delivery address for s.
// The device's own session uses KeyDeliveryAddressDetails; forwarded sessions
// get one key per customer so bridge callers never see each other's selection.
func DeliveryAddressKey(s *entity.Session) string {
	if s != nil && s.Forwarded {
		return KeyDeliveryAddressDetails + ":" + s.CustomerID()
	}

	return KeyDeliveryAddressDetails
}

// ErrKeyNotFound is returned when a key has never been written or was deleted.
var ErrKeyNotFound = errors.New("key not found")

// KeyStore is the local persisted key/value storage of the client.
type KeyStore interface {
	// Get returns the raw value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

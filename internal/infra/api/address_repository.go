package api

import (
	"context"
	"net/http"

	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/domain/repository"
	"kedai/internal/errors"
)

// Backend address endpoints, relative to the API base URL.
const (
	pathListAddresses = "customers/address/"
	pathGetAddress    = "customer/address/detail/"
	pathCreateAddress = "customer/address/create"
	pathUpdateAddress = "customer/address/update/"
	pathSetDefault    = "customer/address/default/"
	pathDeleteAddress = "customer/address/delete/"
)

type addressRepository struct {
	client *Client
}

// NewAddressRepository creates the REST-backed address repository.
func NewAddressRepository(client *Client) repository.AddressRepository {
	return &addressRepository{client: client}
}

// List retrieves every address of a customer, in server order.
func (r *addressRepository) List(ctx context.Context, customerID string) ([]*entity.Address, error) {
	var dtos []addressDTO
	if err := r.client.Do(ctx, http.MethodGet, pathListAddresses+customerID, nil, &dtos); err != nil {
		return nil, errors.Wrapf(err, "list addresses of customer %s", customerID)
	}

	addresses := make([]*entity.Address, 0, len(dtos))
	for i := range dtos {
		addresses = append(addresses, dtos[i].toEntity())
	}

	return addresses, nil
}

// Get retrieves one address.
func (r *addressRepository) Get(ctx context.Context, addressID string) (*entity.Address, error) {
	var dto addressDTO
	if err := r.client.Do(ctx, http.MethodGet, pathGetAddress+addressID, nil, &dto); err != nil {
		return nil, notFoundAsAddress(err, addressID)
	}

	if dto.ID == "" {
		return nil, domainerrors.ErrAddressNotFound.WithDetails("address " + addressID)
	}

	return dto.toEntity(), nil
}

// Create persists a new address. When the backend does not echo the record back,
// the submitted fields are returned with IsDefault cleared, since the create
// request carries no default flag.
func (r *addressRepository) Create(ctx context.Context, address *entity.Address) (*entity.Address, error) {
	var echo echoedAddress
	if err := r.client.Do(ctx, http.MethodPost, pathCreateAddress, newAddressRequest(address), &echo); err != nil {
		return nil, errors.Wrap(err, "create address")
	}

	return mergeEcho(&echo.addressDTO, address), nil
}

// Update overwrites the whole record.
func (r *addressRepository) Update(ctx context.Context, addressID string, address *entity.Address) (*entity.Address, error) {
	var echo echoedAddress
	if err := r.client.Do(ctx, http.MethodPost, pathUpdateAddress+addressID, newAddressRequest(address), &echo); err != nil {
		return nil, notFoundAsAddress(err, addressID)
	}

	updated := mergeEcho(&echo.addressDTO, address)
	updated.ID = addressID

	return updated, nil
}

// SetDefault marks the address as the customer's default.
func (r *addressRepository) SetDefault(ctx context.Context, addressID, customerID string) error {
	if err := r.client.Do(ctx, http.MethodPost, pathSetDefault+addressID, &setDefaultRequest{CustomerID: customerID}, nil); err != nil {
		return notFoundAsAddress(err, addressID)
	}

	return nil
}

// Delete removes an address. The endpoint takes a null body.
func (r *addressRepository) Delete(ctx context.Context, addressID string) error {
	if err := r.client.Do(ctx, http.MethodPost, pathDeleteAddress+addressID, nil, nil); err != nil {
		return notFoundAsAddress(err, addressID)
	}

	return nil
}

func notFoundAsAddress(err error, addressID string) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.ErrAddressNotFound.WithDetails("address " + addressID)
	}

	return errors.Wrapf(err, "address %s", addressID)
}

// mergeEcho prefers the server copy and falls back to what was sent.
func mergeEcho(dto *addressDTO, sent *entity.Address) *entity.Address {
	if dto.ID == "" {
		c := *sent
		c.IsDefault = false

		return &c
	}

	got := dto.toEntity()
	if got.CustomerID == "" {
		got.CustomerID = sent.CustomerID
	}
	if got.Address == "" {
		got.Address = sent.Address
		got.Name = sent.Name
		got.Phone = sent.Phone
		got.Unit = sent.Unit
		got.Note = sent.Note
		got.Latitude = sent.Latitude
		got.Longitude = sent.Longitude
	}

	return got
}

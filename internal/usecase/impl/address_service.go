// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"kedai/config"
	deliverycontext "kedai/internal/delivery/context"
	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/domain/repository"
	"kedai/internal/domain/service"
	"kedai/internal/errors"
	"kedai/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// AddressServiceParams holds dependencies for the address service, injected by Fx.
type AddressServiceParams struct {
	fx.In

	Addresses repository.AddressRepository
	Sessions  service.SessionProvider
	Store     repository.KeyStore
	Navigator *DelayedNavigator
	Config    *config.Config
	Logger    *slog.Logger
}

// addressService implements the AddressUsecase interface.
type addressService struct {
	addresses   repository.AddressRepository
	sessions    service.SessionProvider
	store       repository.KeyStore
	navigator   *DelayedNavigator
	validate    *validator.Validate
	countryCode string
	maxDigits   int
	logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	if params.Config.Address == nil {
		params.Config.ApplyDefaults()
	}
	cfg := params.Config.Address

	return &addressService{
		addresses:   params.Addresses,
		sessions:    params.Sessions,
		store:       params.Store,
		navigator:   params.Navigator,
		validate:    newAddressValidator(cfg.PhoneMaxDigits),
		countryCode: cfg.PhoneCountryCode,
		maxDigits:   cfg.PhoneMaxDigits,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses fetches the customer's addresses and puts default ones first.
func (srv *addressService) ListAddresses(ctx context.Context) ([]*entity.Address, error) {
	session, err := srv.sessions.RequireSession(ctx)
	if err != nil {
		return nil, err
	}

	addresses, err := srv.addresses.List(ctx, session.CustomerID())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	entity.SortDefaultFirst(addresses)
	srv.log(ctx).Debug("Listed addresses", slog.Int("count", len(addresses)))

	return addresses, nil
}

// GetAddress fetches one address.
func (srv *addressService) GetAddress(ctx context.Context, addressID string) (*entity.Address, error) {
	if strings.TrimSpace(addressID) == "" {
		return nil, domainerrors.ErrAddressNotFound
	}

	if _, err := srv.sessions.RequireSession(ctx); err != nil {
		return nil, err
	}

	address, err := srv.addresses.Get(ctx, addressID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get address")
	}

	return address, nil
}

// ValidateAddress checks required fields and the phone length.
func (srv *addressService) ValidateAddress(input *usecase.AddressInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithMessage("Please fill in address, name, phone, unit")
	}

	if err := srv.validate.Struct(input); err != nil {
		return toValidationError(err, srv.maxDigits)
	}

	return nil
}

// CreateAddress validates the input before any network call, creates the
// address for the signed-in customer and navigates to the address picker.
// When a default is requested it is applied with a second call once the new
// id is known; a failing set-default is logged and leaves IsDefault false.
func (srv *addressService) CreateAddress(ctx context.Context, input *usecase.AddressInput) (*entity.Address, error) {
	input = srv.normalize(input)
	if err := srv.ValidateAddress(input); err != nil {
		return nil, err
	}

	session, err := srv.sessions.RequireSession(ctx)
	if err != nil {
		return nil, err
	}

	customerID := session.CustomerID()
	address := srv.toAddress(input, customerID)

	created, err := srv.addresses.Create(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	if input.IsDefault && created.ID != "" {
		if err := srv.addresses.SetDefault(ctx, created.ID, customerID); err != nil {
			srv.log(ctx).Warn("Address created but set default failed",
				slog.String("address_id", created.ID),
				slog.Any("error", err),
			)
			created.IsDefault = false
		} else {
			created.IsDefault = true
		}
	}

	srv.log(ctx).Info("Address created",
		slog.String("address_id", created.ID),
		slog.Bool("is_default", created.IsDefault),
	)
	srv.navigator.NavigateAfterDelay(ctx, entity.RouteAddressSelect)

	return created, nil
}

// UpdateAddress overwrites the address, then sets it as default when requested.
// Only a failing update is returned as an error; the set-default outcome is
// reported in the result.
func (srv *addressService) UpdateAddress(ctx context.Context, addressID string, input *usecase.AddressInput) (*usecase.UpdateResult, error) {
	if strings.TrimSpace(addressID) == "" {
		return nil, domainerrors.ErrAddressNotFound
	}

	input = srv.normalize(input)
	if err := srv.ValidateAddress(input); err != nil {
		return nil, err
	}

	session, err := srv.sessions.RequireSession(ctx)
	if err != nil {
		return nil, err
	}

	customerID := session.CustomerID()
	address := srv.toAddress(input, customerID)
	address.ID = addressID

	updated, err := srv.addresses.Update(ctx, addressID, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	result := &usecase.UpdateResult{
		Address:          updated,
		DefaultRequested: input.IsDefault,
	}

	if input.IsDefault {
		if err := srv.addresses.SetDefault(ctx, addressID, customerID); err != nil {
			srv.log(ctx).Warn("Address updated but set default failed",
				slog.String("address_id", addressID),
				slog.Any("error", err),
			)
			result.DefaultErr = err
		} else {
			result.DefaultApplied = true
			updated.IsDefault = true
		}
	}

	srv.log(ctx).Info("Address updated",
		slog.String("address_id", addressID),
		slog.Bool("default_applied", result.DefaultApplied),
	)
	srv.navigator.NavigateAfterDelay(ctx, entity.RouteAddressList)

	return result, nil
}

// DeleteAddress removes the address and navigates back to the list, which refetches.
func (srv *addressService) DeleteAddress(ctx context.Context, addressID string) error {
	if strings.TrimSpace(addressID) == "" {
		return domainerrors.ErrAddressNotFound
	}

	if _, err := srv.sessions.RequireSession(ctx); err != nil {
		return err
	}

	if err := srv.addresses.Delete(ctx, addressID); err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	srv.clearSelectionOf(ctx, addressID)

	srv.log(ctx).Info("Address deleted", slog.String("address_id", addressID))
	srv.navigator.NavigateAfterDelay(ctx, entity.RouteAddressList)

	return nil
}

// SelectAddress persists the deliveryAddressDetails snapshot for the order flow.
func (srv *addressService) SelectAddress(ctx context.Context, addressID string) (*entity.DeliveryAddressDetails, error) {
	address, err := srv.GetAddress(ctx, addressID)
	if err != nil {
		return nil, err
	}

	details := &entity.DeliveryAddressDetails{
		AddressID: address.ID,
		Address:   address.Address,
		Latitude:  address.Latitude,
		Longitude: address.Longitude,
	}
	if details.AddressID == "" {
		details.AddressID = addressID
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode delivery address")
	}

	if err := srv.store.Set(ctx, srv.selectionKey(ctx), raw); err != nil {
		return nil, errors.Wrap(err, "failed to save delivery address")
	}

	srv.log(ctx).Debug("Delivery address selected", slog.String("address_id", details.AddressID))

	return details, nil
}

// SelectedAddress reads the persisted snapshot.
func (srv *addressService) SelectedAddress(ctx context.Context) (*entity.DeliveryAddressDetails, error) {
	raw, err := srv.store.Get(ctx, srv.selectionKey(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, domainerrors.ErrNoSelectedAddress
		}

		return nil, errors.Wrap(err, "failed to read delivery address")
	}

	var details entity.DeliveryAddressDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, errors.Wrap(err, "failed to decode delivery address")
	}

	return &details, nil
}

// DisplayPhone renders stored digits behind the country code.
func (srv *addressService) DisplayPhone(phone string) string {
	if phone == "" {
		return ""
	}

	return srv.countryCode + " " + phone
}

// NormalizePhone keeps digits only and drops a leading country code.
func (srv *addressService) NormalizePhone(input string) string {
	trimmed := strings.TrimSpace(input)
	digits := onlyDigits(trimmed)

	code := strings.TrimPrefix(srv.countryCode, "+")
	if code == "" || !strings.HasPrefix(digits, code) {
		return digits
	}

	// "+60..." is always the country code; a bare "60..." only when too long to be a local number.
	if strings.HasPrefix(trimmed, "+") || (srv.maxDigits > 0 && len(digits) > srv.maxDigits) {
		return digits[len(code):]
	}

	return digits
}

// normalize returns a trimmed copy of the input with the phone normalized.
func (srv *addressService) normalize(input *usecase.AddressInput) *usecase.AddressInput {
	if input == nil {
		return nil
	}

	out := *input
	out.Address = strings.TrimSpace(out.Address)
	out.Name = strings.TrimSpace(out.Name)
	out.Unit = strings.TrimSpace(out.Unit)
	out.Note = strings.TrimSpace(out.Note)
	out.Phone = srv.NormalizePhone(out.Phone)

	return &out
}

func (srv *addressService) toAddress(input *usecase.AddressInput, customerID string) *entity.Address {
	return &entity.Address{
		CustomerID: customerID,
		Name:       input.Name,
		Phone:      input.Phone,
		Unit:       input.Unit,
		Address:    input.Address,
		Note:       input.Note,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		IsDefault:  input.IsDefault,
	}
}

// clearSelectionOf forgets the delivery address snapshot when it points at a deleted address.
func (srv *addressService) clearSelectionOf(ctx context.Context, addressID string) {
	selected, err := srv.SelectedAddress(ctx)
	if err != nil || selected.AddressID != addressID {
		return
	}

	if err := srv.store.Delete(ctx, srv.selectionKey(ctx)); err != nil {
		srv.log(ctx).Warn("Failed to clear delivery address", slog.Any("error", err))
	}
}

// selectionKey picks the store key of the current session's delivery address.
func (srv *addressService) selectionKey(ctx context.Context) string {
	s, err := srv.sessions.GetSession(ctx)
	if err != nil {
		return repository.KeyDeliveryAddressDetails
	}

	return repository.DeliveryAddressKey(s)
}

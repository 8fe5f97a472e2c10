package impl

import (
	"sync"

	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/errors"
	"kedai/internal/usecase"
)

// AddressListView is what the address list screen renders.
type AddressListView struct {
	Addresses []*entity.Address              `json:"addresses"`
	Selected  *entity.DeliveryAddressDetails `json:"selected,omitempty"`
}

// AddressList is the address list and selection screen.
type AddressList struct {
	screen    *Screen
	addresses usecase.AddressUsecase
}

// NewAddressList creates the list screen on screen.
func NewAddressList(screen *Screen, addresses usecase.AddressUsecase) *AddressList {
	return &AddressList{screen: screen, addresses: addresses}
}

// Refresh fetches the addresses and the current selection in parallel.
// A missing selection is not an error.
func (l *AddressList) Refresh() (*AddressListView, error) {
	ctx := l.screen.Context()

	var (
		wg          sync.WaitGroup
		view        AddressListView
		listErr     error
		selectedErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		view.Addresses, listErr = l.addresses.ListAddresses(ctx)
	}()
	go func() {
		defer wg.Done()
		view.Selected, selectedErr = l.addresses.SelectedAddress(ctx)
	}()
	wg.Wait()

	if l.screen.Closed() {
		return nil, ErrScreenClosed
	}
	if listErr != nil {
		return nil, listErr
	}
	if selectedErr != nil && !errors.Is(selectedErr, domainerrors.ErrNoSelectedAddress) {
		return nil, selectedErr
	}

	return &view, nil
}

// Select persists the address as the delivery address of the next order.
func (l *AddressList) Select(addressID string) (*entity.DeliveryAddressDetails, error) {
	details, err := l.addresses.SelectAddress(l.screen.Context(), addressID)
	if l.screen.Closed() {
		return nil, ErrScreenClosed
	}

	return details, err
}

// Delete removes the address once confirm approves.
func (l *AddressList) Delete(address *entity.Address, confirm ConfirmFunc) (bool, error) {
	if address == nil {
		return false, domainerrors.ErrAddressNotFound
	}

	ctx := l.screen.Context()
	if confirm == nil || !confirm(ctx, "Delete address "+address.Address+"?") {
		return false, nil
	}

	err := l.addresses.DeleteAddress(ctx, address.ID)
	if l.screen.Closed() {
		return false, ErrScreenClosed
	}
	if err != nil {
		return false, err
	}

	return true, nil
}


package impl

import (
	"context"
	"sync"

	"kedai/internal/domain/entity"
	"kedai/internal/errors"
	"kedai/internal/usecase"
)

var (
	// ErrFormNotEditable is returned when the form is loading, submitting or already done.
	ErrFormNotEditable = errors.New("address form is not editable in its current state")
	// ErrScreenClosed is returned when the form's screen closed before the operation finished.
	ErrScreenClosed = errors.New("screen closed")
	// ErrNotEditForm is returned when an edit-only operation runs on an add form.
	ErrNotEditForm = errors.New("operation requires an existing address")
)

// ConfirmFunc asks the user to confirm a destructive action.
type ConfirmFunc func(ctx context.Context, prompt string) bool

// AddressForm is the state of an add or edit address screen:
// Idle -> Loading (edit only) -> Editing -> Submitting -> Success, or back to Editing on failure.
type AddressForm struct {
	screen    *Screen
	addresses usecase.AddressUsecase
	addressID string

	mu      sync.Mutex
	state   entity.FormState
	input   usecase.AddressInput
	lastErr error
	saved   *entity.Address
	update  *usecase.UpdateResult
}

// NewAddForm opens an add form at coord. It starts in Editing with empty fields.
func NewAddForm(screen *Screen, addresses usecase.AddressUsecase, coord entity.Coordinate) *AddressForm {
	return &AddressForm{
		screen:    screen,
		addresses: addresses,
		state:     entity.FormStateEditing,
		input: usecase.AddressInput{
			Latitude:  coord.Latitude,
			Longitude: coord.Longitude,
		},
	}
}

// NewEditForm opens an edit form for addressID. It starts Idle until Load.
func NewEditForm(screen *Screen, addresses usecase.AddressUsecase, addressID string) *AddressForm {
	return &AddressForm{
		screen:    screen,
		addresses: addresses,
		addressID: addressID,
		state:     entity.FormStateIdle,
	}
}

// IsEdit reports whether the form edits an existing address.
func (f *AddressForm) IsEdit() bool {
	return f.addressID != ""
}

// State returns the current state.
func (f *AddressForm) State() entity.FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Input returns a copy of the current field values.
func (f *AddressForm) Input() usecase.AddressInput {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.input
}

// LastError returns the error of the last failed load or submit, cleared on the next attempt.
func (f *AddressForm) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastErr
}

// Saved returns the address returned by the last successful submit.
func (f *AddressForm) Saved() *entity.Address {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.saved
}

// UpdateResult returns the saga outcome of the last successful edit submit.
func (f *AddressForm) UpdateResult() *usecase.UpdateResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.update
}

// DisplayPhone returns the phone with its country code prefix.
func (f *AddressForm) DisplayPhone() string {
	return f.addresses.DisplayPhone(f.Input().Phone)
}

// Load fetches the existing address of an edit form and moves to Editing.
// A failed load returns to Idle so it can be retried.
func (f *AddressForm) Load() error {
	if !f.IsEdit() {
		return ErrNotEditForm
	}

	f.mu.Lock()
	if f.state != entity.FormStateIdle {
		f.mu.Unlock()

		return ErrFormNotEditable
	}
	f.state = entity.FormStateLoading
	f.lastErr = nil
	f.mu.Unlock()

	address, err := f.addresses.GetAddress(f.screen.Context(), f.addressID)
	if f.screen.Closed() {
		return ErrScreenClosed
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = entity.FormStateIdle
		f.lastErr = err

		return err
	}

	f.input = *usecase.InputFromAddress(address)
	f.state = entity.FormStateEditing

	return nil
}

// Edit applies fn to the field values. Phone is normalized afterwards.
func (f *AddressForm) Edit(fn func(input *usecase.AddressInput)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != entity.FormStateEditing {
		return ErrFormNotEditable
	}

	fn(&f.input)
	f.input.Phone = f.addresses.NormalizePhone(f.input.Phone)

	return nil
}

// SetLocation takes a location reported by the picker.
func (f *AddressForm) SetLocation(loc entity.Location) error {
	return f.Edit(func(input *usecase.AddressInput) {
		input.Latitude = loc.Latitude
		input.Longitude = loc.Longitude
		if loc.Address != "" {
			input.Address = loc.Address
		}
	})
}

// Submit validates the fields, then creates or updates the address.
// Validation failures never leave Editing and never reach the network.
func (f *AddressForm) Submit() error {
	f.mu.Lock()
	if f.state != entity.FormStateEditing {
		f.mu.Unlock()

		return ErrFormNotEditable
	}

	input := f.input
	if err := f.addresses.ValidateAddress(&input); err != nil {
		f.lastErr = err
		f.mu.Unlock()

		return err
	}

	f.state = entity.FormStateSubmitting
	f.lastErr = nil
	f.mu.Unlock()

	ctx := f.screen.Context()

	var (
		saved  *entity.Address
		update *usecase.UpdateResult
		err    error
	)
	if f.IsEdit() {
		update, err = f.addresses.UpdateAddress(ctx, f.addressID, &input)
		if update != nil {
			saved = update.Address
		}
	} else {
		saved, err = f.addresses.CreateAddress(ctx, &input)
	}

	if f.screen.Closed() {
		return ErrScreenClosed
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = entity.FormStateEditing
		f.lastErr = err

		return err
	}

	f.state = entity.FormStateSuccess
	f.saved = saved
	f.update = update

	return nil
}

// Delete removes the edited address once confirm approves.
// It returns false without any network call when the user declines.
func (f *AddressForm) Delete(confirm ConfirmFunc) (bool, error) {
	if !f.IsEdit() {
		return false, ErrNotEditForm
	}

	f.mu.Lock()
	if f.state != entity.FormStateEditing {
		f.mu.Unlock()

		return false, ErrFormNotEditable
	}
	name := f.input.Address
	f.mu.Unlock()

	ctx := f.screen.Context()
	if confirm == nil || !confirm(ctx, "Delete address "+name+"?") {
		return false, nil
	}

	f.mu.Lock()
	f.state = entity.FormStateSubmitting
	f.lastErr = nil
	f.mu.Unlock()

	err := f.addresses.DeleteAddress(ctx, f.addressID)
	if f.screen.Closed() {
		return false, ErrScreenClosed
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = entity.FormStateEditing
		f.lastErr = err

		return false, err
	}

	f.state = entity.FormStateSuccess

	return true, nil
}

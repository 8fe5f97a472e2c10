package impl

import (
	"context"
	"testing"

	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	mockRepo "kedai/internal/mocks/repository"
	"kedai/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fillForm(t *testing.T, form *AddressForm) {
	t.Helper()

	require.NoError(t, form.Edit(func(in *usecase.AddressInput) {
		in.Address = "1 Jalan Test"
		in.Name = "Ali"
		in.Phone = "+60 12-345 6789"
		in.Unit = "A-1"
	}))
}

func TestAddressForm_AddFlow(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)
	screen := NewScreen(context.Background())
	defer screen.Close()

	form := NewAddForm(screen, fx.service, entity.Coordinate{Latitude: 3.1, Longitude: 101.6})
	assert.Equal(t, entity.FormStateEditing, form.State())
	assert.False(t, form.IsEdit())
	assert.Empty(t, form.Input().Name)

	fillForm(t, form)
	assert.Equal(t, "123456789", form.Input().Phone)
	assert.Equal(t, "+60 123456789", form.DisplayPhone())

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *entity.Address) bool {
		return a.CustomerID == "cust-1" && a.Latitude == 3.1 && a.Longitude == 101.6
	})).Return(&entity.Address{ID: "new-1"}, nil).Once()

	require.NoError(t, form.Submit())
	assert.Equal(t, entity.FormStateSuccess, form.State())
	assert.Equal(t, "new-1", form.Saved().ID)
	assert.Equal(t, entity.RouteAddressSelect, fx.navigator.waitRoute(t))

	assert.ErrorIs(t, form.Edit(func(*usecase.AddressInput) {}), ErrFormNotEditable)
}

func TestAddressForm_ValidationKeepsEditing(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)
	screen := NewScreen(context.Background())
	defer screen.Close()

	form := NewAddForm(screen, fx.service, entity.Coordinate{Latitude: 3.1, Longitude: 101.6})
	require.NoError(t, form.Edit(func(in *usecase.AddressInput) {
		in.Name = "Ali"
	}))

	err := form.Submit()
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
	assert.Equal(t, entity.FormStateEditing, form.State())
	assert.Equal(t, err, form.LastError())
}

func TestAddressForm_FailureReturnsToEditing(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)
	screen := NewScreen(context.Background())
	defer screen.Close()

	form := NewAddForm(screen, fx.service, entity.Coordinate{Latitude: 3.1, Longitude: 101.6})
	fillForm(t, form)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNetwork).Once()

	err := form.Submit()
	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
	assert.Equal(t, entity.FormStateEditing, form.State())
	assert.True(t, domainerrors.IsRetryable(form.LastError()))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(&entity.Address{ID: "new-2"}, nil).Once()

	require.NoError(t, form.Submit())
	assert.Equal(t, entity.FormStateSuccess, form.State())
	assert.NoError(t, form.LastError())
}

func TestAddressForm_EditFlow(t *testing.T) {
	backend := newFakeBackend(
		&entity.Address{ID: "a1", CustomerID: "cust-1", Address: "Old", Name: "Ali", Phone: "0123456789", Unit: "A-1", Latitude: 3.1, Longitude: 101.6, IsDefault: true},
		&entity.Address{ID: "a2", CustomerID: "cust-1", Address: "Office", Name: "Ali", Phone: "0123456789", Unit: "B-2", Latitude: 3.2, Longitude: 101.7},
	)
	fx := createTestAddressService(t, backend)
	screen := NewScreen(context.Background())
	defer screen.Close()

	form := NewEditForm(screen, fx.service, "a2")
	assert.Equal(t, entity.FormStateIdle, form.State())
	assert.ErrorIs(t, form.Submit(), ErrFormNotEditable)

	require.NoError(t, form.Load())
	assert.Equal(t, entity.FormStateEditing, form.State())
	assert.Equal(t, "Office", form.Input().Address)

	require.NoError(t, form.SetLocation(entity.Location{Latitude: 3.25, Longitude: 101.75, Address: "New Office"}))
	require.NoError(t, form.Edit(func(in *usecase.AddressInput) { in.IsDefault = true }))

	require.NoError(t, form.Submit())
	assert.Equal(t, entity.FormStateSuccess, form.State())
	assert.True(t, form.UpdateResult().DefaultApplied)

	stored, err := backend.Get(context.Background(), "a2")
	require.NoError(t, err)
	assert.Equal(t, "New Office", stored.Address)
	assert.Equal(t, 3.25, stored.Latitude)
	assert.True(t, stored.IsDefault)

	other, err := backend.Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.False(t, other.IsDefault)
}

func TestAddressForm_LoadFailureIsRetryable(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)
	screen := NewScreen(context.Background())
	defer screen.Close()

	form := NewEditForm(screen, fx.service, "a1")

	repo.EXPECT().Get(mock.Anything, "a1").Return(nil, domainerrors.ErrTimeout).Once()
	assert.ErrorIs(t, form.Load(), domainerrors.ErrTimeout)
	assert.Equal(t, entity.FormStateIdle, form.State())

	repo.EXPECT().Get(mock.Anything, "a1").Return(&entity.Address{ID: "a1", Address: "Home"}, nil).Once()
	require.NoError(t, form.Load())
	assert.Equal(t, entity.FormStateEditing, form.State())
}

func TestAddressForm_DeleteRequiresConfirmation(t *testing.T) {
	backend := newFakeBackend(
		&entity.Address{ID: "a1", CustomerID: "cust-1", Address: "Home"},
		&entity.Address{ID: "a2", CustomerID: "cust-1", Address: "Office"},
	)
	fx := createTestAddressService(t, backend)
	screen := NewScreen(context.Background())
	defer screen.Close()

	form := NewEditForm(screen, fx.service, "a1")
	require.NoError(t, form.Load())

	var prompts []string
	deny := func(_ context.Context, prompt string) bool {
		prompts = append(prompts, prompt)

		return false
	}

	deleted, err := form.Delete(deny)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 0, backend.count("Delete"))
	assert.Equal(t, []string{"Delete address Home?"}, prompts)

	deleted, err = form.Delete(func(context.Context, string) bool { return true })
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 1, backend.count("Delete"))
	assert.Equal(t, entity.FormStateSuccess, form.State())
	assert.Equal(t, entity.RouteAddressList, fx.navigator.waitRoute(t))
}

func TestAddressForm_DeleteOnAddForm(t *testing.T) {
	fx := createTestAddressService(t, mockRepo.NewMockAddressRepository(t))
	screen := NewScreen(context.Background())
	defer screen.Close()

	form := NewAddForm(screen, fx.service, entity.Coordinate{})
	_, err := form.Delete(func(context.Context, string) bool { return true })
	assert.ErrorIs(t, err, ErrNotEditForm)
}

func TestAddressForm_ResultAfterCloseIsDropped(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)
	screen := NewScreen(context.Background())

	form := NewAddForm(screen, fx.service, entity.Coordinate{Latitude: 3.1, Longitude: 101.6})
	fillForm(t, form)

	repo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *entity.Address) (*entity.Address, error) {
			screen.Close()

			return &entity.Address{ID: "late"}, nil
		})

	assert.ErrorIs(t, form.Submit(), ErrScreenClosed)
	assert.Equal(t, entity.FormStateSubmitting, form.State())
	assert.Nil(t, form.Saved())

	select {
	case route := <-fx.navigator.routes:
		t.Fatalf("unexpected navigation to %s", route)
	default:
	}
}

package impl

import (
	"context"
	"testing"

	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/domain/repository"
	mockRepo "kedai/internal/mocks/repository"
	mockService "kedai/internal/mocks/service"
	"kedai/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixture struct {
	service   usecase.AddressUsecase
	repo      repository.AddressRepository
	sessions  *mockService.MockSessionProvider
	store     repository.KeyStore
	navigator *recordingNavigator
}

func createTestAddressService(t *testing.T, repo repository.AddressRepository) *addressServiceFixture {
	t.Helper()

	sessions := mockService.NewMockSessionProvider(t)
	sessions.EXPECT().RequireSession(mock.Anything).Return(testSession(), nil).Maybe()
	sessions.EXPECT().GetSession(mock.Anything).Return(testSession(), nil).Maybe()

	store := newMemStore(t)
	navigator := newRecordingNavigator()
	cfg := newTestConfig()

	svc := NewAddressService(AddressServiceParams{
		Addresses: repo,
		Sessions:  sessions,
		Store:     store,
		Navigator: NewDelayedNavigator(navigator, cfg.Address.NavigateDelay, newDiscardLogger()),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return &addressServiceFixture{
		service:   svc,
		repo:      repo,
		sessions:  sessions,
		store:     store,
		navigator: navigator,
	}
}

func validInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Address:   "1 Jalan Test",
		Name:      "Ali",
		Phone:     "0123456789",
		Unit:      "A-1",
		Latitude:  3.1,
		Longitude: 101.6,
	}
}

func TestAddressService_ListAddresses_DefaultFirst(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)
	ctx := context.Background()

	repo.EXPECT().List(ctx, "cust-1").Return([]*entity.Address{
		{ID: "a1"},
		{ID: "a2"},
		{ID: "a3", IsDefault: true},
	}, nil)

	addresses, err := fx.service.ListAddresses(ctx)
	require.NoError(t, err)
	require.Len(t, addresses, 3)
	assert.Equal(t, "a3", addresses[0].ID)
	assert.True(t, addresses[0].IsDefault)
	assert.Equal(t, "a1", addresses[1].ID)
	assert.Equal(t, "a2", addresses[2].ID)
}

func TestAddressService_ListAddresses_NoSession(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	sessions := mockService.NewMockSessionProvider(t)
	sessions.EXPECT().RequireSession(mock.Anything).Return(nil, domainerrors.ErrSessionMissing)

	svc := NewAddressService(AddressServiceParams{
		Addresses: repo,
		Sessions:  sessions,
		Store:     newMemStore(t),
		Navigator: NewDelayedNavigator(nil, 0, newDiscardLogger()),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	addresses, err := svc.ListAddresses(context.Background())
	assert.Nil(t, addresses)
	assert.True(t, domainerrors.IsAuth(err))
}

func TestAddressService_CreateAddress_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.AddressInput)
		field  string
	}{
		{"missing address", func(in *usecase.AddressInput) { in.Address = "" }, "address"},
		{"missing name", func(in *usecase.AddressInput) { in.Name = "  " }, "name"},
		{"missing phone", func(in *usecase.AddressInput) { in.Phone = "" }, "phone"},
		{"missing unit", func(in *usecase.AddressInput) { in.Unit = "" }, "unit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any repository call fails the test.
			repo := mockRepo.NewMockAddressRepository(t)
			fx := createTestAddressService(t, repo)

			input := validInput()
			tt.mutate(input)

			address, err := fx.service.CreateAddress(context.Background(), input)
			assert.Nil(t, address)
			require.Error(t, err)
			assert.True(t, domainerrors.IsValidation(err))
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Message(), tt.field)
			assert.Contains(t, appErr.Details(), tt.field)
		})
	}
}

func TestAddressService_CreateAddress_PhoneTooLong(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)

	input := validInput()
	input.Phone = "012345678901"

	_, err := fx.service.CreateAddress(context.Background(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Phone number must be at most 10 digits", appErr.Message())
}

func TestAddressService_CreateAddress_Scenario(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, &entity.Address{
			CustomerID: "cust-1",
			Name:       "Ali",
			Phone:      "0123456789",
			Unit:       "A-1",
			Address:    "1 Jalan Test",
			Latitude:   3.1,
			Longitude:  101.6,
		}).
		Return(&entity.Address{ID: "addr-9", CustomerID: "cust-1", Address: "1 Jalan Test"}, nil).
		Once()

	created, err := fx.service.CreateAddress(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, "addr-9", created.ID)
	assert.Equal(t, entity.RouteAddressSelect, fx.navigator.waitRoute(t))
}

func TestAddressService_CreateAddress_RepositoryError(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)

	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Address")).
		Return(nil, domainerrors.ErrNetwork)

	_, err := fx.service.CreateAddress(context.Background(), validInput())
	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
	assert.True(t, domainerrors.IsRetryable(err))
	assert.Empty(t, fx.navigator.routes)
}

func TestAddressService_CreateAddress_SetsDefaultAfterCreate(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)
	ctx := context.Background()

	input := validInput()
	input.IsDefault = true

	createCall := repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Address) bool {
			return a.CustomerID == "cust-1" && a.Name == "Ali"
		})).
		Return(&entity.Address{ID: "addr-9", CustomerID: "cust-1", IsDefault: false}, nil)
	repo.EXPECT().SetDefault(ctx, "addr-9", "cust-1").Return(nil).NotBefore(createCall.Call)

	created, err := fx.service.CreateAddress(ctx, input)
	require.NoError(t, err)
	assert.True(t, created.IsDefault)
	assert.Equal(t, entity.RouteAddressSelect, fx.navigator.waitRoute(t))
}

func TestAddressService_CreateAddress_SetDefaultFailureKeepsAddress(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)
	ctx := context.Background()

	input := validInput()
	input.IsDefault = true

	repo.EXPECT().Create(ctx, mock.Anything).Return(&entity.Address{ID: "addr-9", IsDefault: true}, nil)
	repo.EXPECT().SetDefault(ctx, "addr-9", "cust-1").Return(domainerrors.ErrServer)

	created, err := fx.service.CreateAddress(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "addr-9", created.ID)
	assert.False(t, created.IsDefault)
}

func TestAddressService_CreateAddress_DefaultReachesBackend(t *testing.T) {
	backend := newFakeBackend(
		&entity.Address{ID: "a1", CustomerID: "cust-1", Address: "Old", IsDefault: true},
	)
	fx := createTestAddressService(t, backend)
	ctx := context.Background()

	input := validInput()
	input.IsDefault = true

	created, err := fx.service.CreateAddress(ctx, input)
	require.NoError(t, err)
	assert.True(t, created.IsDefault)
	assert.Equal(t, 1, backend.count("SetDefault"))

	addresses, err := fx.service.ListAddresses(ctx)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, created.ID, addresses[0].ID)
	assert.True(t, addresses[0].IsDefault)
	assert.False(t, addresses[1].IsDefault)
}

func TestAddressService_CreateAddress_NoDefaultNoSecondCall(t *testing.T) {
	backend := newFakeBackend()
	fx := createTestAddressService(t, backend)

	created, err := fx.service.CreateAddress(context.Background(), validInput())
	require.NoError(t, err)
	assert.False(t, created.IsDefault)
	assert.Equal(t, 0, backend.count("SetDefault"))
}

func TestAddressService_UpdateAddress_SetsDefaultAfterUpdate(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)
	ctx := context.Background()

	input := validInput()
	input.IsDefault = true

	updateCall := repo.EXPECT().
		Update(ctx, "addr-1", mock.MatchedBy(func(a *entity.Address) bool {
			return a.ID == "addr-1" && a.CustomerID == "cust-1" && a.Name == "Ali"
		})).
		Return(&entity.Address{ID: "addr-1", Name: "Ali"}, nil)
	repo.EXPECT().SetDefault(ctx, "addr-1", "cust-1").Return(nil).NotBefore(updateCall.Call)

	result, err := fx.service.UpdateAddress(ctx, "addr-1", input)
	require.NoError(t, err)
	assert.True(t, result.DefaultRequested)
	assert.True(t, result.DefaultApplied)
	assert.NoError(t, result.DefaultErr)
	assert.True(t, result.Address.IsDefault)
	assert.Equal(t, entity.RouteAddressList, fx.navigator.waitRoute(t))
}

func TestAddressService_UpdateAddress_SetDefaultFailureIsReported(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)
	ctx := context.Background()

	input := validInput()
	input.IsDefault = true

	repo.EXPECT().Update(ctx, "addr-1", mock.Anything).Return(&entity.Address{ID: "addr-1"}, nil)
	repo.EXPECT().SetDefault(ctx, "addr-1", "cust-1").Return(domainerrors.ErrServer)

	result, err := fx.service.UpdateAddress(ctx, "addr-1", input)
	require.NoError(t, err)
	assert.True(t, result.DefaultRequested)
	assert.False(t, result.DefaultApplied)
	assert.ErrorIs(t, result.DefaultErr, domainerrors.ErrServer)
	assert.False(t, result.Address.IsDefault)
}

func TestAddressService_UpdateAddress_NoDefaultNoSecondCall(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)
	ctx := context.Background()

	repo.EXPECT().Update(ctx, "addr-1", mock.Anything).Return(&entity.Address{ID: "addr-1"}, nil)

	result, err := fx.service.UpdateAddress(ctx, "addr-1", validInput())
	require.NoError(t, err)
	assert.False(t, result.DefaultRequested)
	assert.False(t, result.DefaultApplied)
}

func TestAddressService_UpdateAddress_UpdateFailureSkipsDefault(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	fx := createTestAddressService(t, repo)
	ctx := context.Background()

	input := validInput()
	input.IsDefault = true

	repo.EXPECT().Update(ctx, "addr-1", mock.Anything).Return(nil, domainerrors.ErrTimeout)

	result, err := fx.service.UpdateAddress(ctx, "addr-1", input)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrTimeout)
}

func TestAddressService_UpdateAddress_LeavesSingleDefault(t *testing.T) {
	backend := newFakeBackend(
		&entity.Address{ID: "a1", CustomerID: "cust-1", Address: "Old", IsDefault: true},
		&entity.Address{ID: "a2", CustomerID: "cust-1", Address: "Other"},
		&entity.Address{ID: "a3", CustomerID: "cust-1", Address: "Third"},
	)
	fx := createTestAddressService(t, backend)
	ctx := context.Background()

	input := validInput()
	input.IsDefault = true

	result, err := fx.service.UpdateAddress(ctx, "a2", input)
	require.NoError(t, err)
	require.True(t, result.DefaultApplied)

	addresses, err := fx.service.ListAddresses(ctx)
	require.NoError(t, err)

	defaults := 0
	for _, a := range addresses {
		if a.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
	assert.Equal(t, "a2", addresses[0].ID)
	assert.Equal(t, 1, backend.count("Update"))
	assert.Equal(t, 1, backend.count("SetDefault"))
}

func TestAddressService_DeleteAddress_RemovesExactlyThatAddress(t *testing.T) {
	backend := newFakeBackend(
		&entity.Address{ID: "a1", CustomerID: "cust-1", IsDefault: true},
		&entity.Address{ID: "a2", CustomerID: "cust-1"},
		&entity.Address{ID: "a3", CustomerID: "cust-1"},
	)
	fx := createTestAddressService(t, backend)
	ctx := context.Background()

	require.NoError(t, fx.service.DeleteAddress(ctx, "a2"))
	assert.Equal(t, entity.RouteAddressList, fx.navigator.waitRoute(t))

	addresses, err := fx.service.ListAddresses(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(addresses))
	for _, a := range addresses {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a1", "a3"}, ids)
}

func TestAddressService_SelectAddress(t *testing.T) {
	backend := newFakeBackend(
		&entity.Address{ID: "a1", CustomerID: "cust-1", Address: "1 Jalan Test", Latitude: 3.1, Longitude: 101.6},
	)
	fx := createTestAddressService(t, backend)
	ctx := context.Background()

	_, err := fx.service.SelectedAddress(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNoSelectedAddress)

	details, err := fx.service.SelectAddress(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, &entity.DeliveryAddressDetails{
		AddressID: "a1",
		Address:   "1 Jalan Test",
		Latitude:  3.1,
		Longitude: 101.6,
	}, details)

	raw, err := fx.store.Get(ctx, repository.KeyDeliveryAddressDetails)
	require.NoError(t, err)
	assert.JSONEq(t, `{"addressId":"a1","address":"1 Jalan Test","latitude":3.1,"longitude":101.6}`, string(raw))

	selected, err := fx.service.SelectedAddress(ctx)
	require.NoError(t, err)
	assert.Equal(t, details, selected)
}

type forwardedCustomerKey struct{}

func TestAddressService_SelectAddress_ForwardedCustomersAreScoped(t *testing.T) {
	backend := newFakeBackend(
		&entity.Address{ID: "a1", CustomerID: "cust-1", Address: "Home"},
		&entity.Address{ID: "b1", CustomerID: "cust-2", Address: "Office"},
	)

	forwarded := func(ctx context.Context) (*entity.Session, error) {
		id, _ := ctx.Value(forwardedCustomerKey{}).(string)

		return &entity.Session{Token: "tok-" + id, Customer: &entity.Customer{ID: id}, Forwarded: true}, nil
	}
	sessions := mockService.NewMockSessionProvider(t)
	sessions.EXPECT().RequireSession(mock.Anything).RunAndReturn(forwarded).Maybe()
	sessions.EXPECT().GetSession(mock.Anything).RunAndReturn(forwarded).Maybe()

	store := newMemStore(t)
	svc := NewAddressService(AddressServiceParams{
		Addresses: backend,
		Sessions:  sessions,
		Store:     store,
		Navigator: NewDelayedNavigator(nil, 0, newDiscardLogger()),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	first := context.WithValue(context.Background(), forwardedCustomerKey{}, "cust-1")
	second := context.WithValue(context.Background(), forwardedCustomerKey{}, "cust-2")

	_, err := svc.SelectAddress(first, "a1")
	require.NoError(t, err)

	_, err = svc.SelectedAddress(second)
	assert.ErrorIs(t, err, domainerrors.ErrNoSelectedAddress)

	_, err = svc.SelectAddress(second, "b1")
	require.NoError(t, err)

	selected, err := svc.SelectedAddress(first)
	require.NoError(t, err)
	assert.Equal(t, "a1", selected.AddressID)

	selected, err = svc.SelectedAddress(second)
	require.NoError(t, err)
	assert.Equal(t, "b1", selected.AddressID)

	_, err = store.Get(context.Background(), repository.KeyDeliveryAddressDetails)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestAddressService_DeleteAddress_ClearsSelection(t *testing.T) {
	backend := newFakeBackend(&entity.Address{ID: "a1", CustomerID: "cust-1", Address: "X"})
	fx := createTestAddressService(t, backend)
	ctx := context.Background()

	_, err := fx.service.SelectAddress(ctx, "a1")
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteAddress(ctx, "a1"))

	_, err = fx.service.SelectedAddress(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNoSelectedAddress)
}

func TestAddressService_Phone(t *testing.T) {
	fx := createTestAddressService(t, mockRepo.NewMockAddressRepository(t))

	tests := []struct {
		input string
		want  string
	}{
		{"0123456789", "0123456789"},
		{"012-345 6789", "0123456789"},
		{"+60 12-345 6789", "123456789"},
		{"60123456789", "123456789"},
		{"6012345678", "6012345678"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, fx.service.NormalizePhone(tt.input))
		})
	}

	assert.Equal(t, "+60 123456789", fx.service.DisplayPhone("123456789"))
	assert.Empty(t, fx.service.DisplayPhone(""))
}

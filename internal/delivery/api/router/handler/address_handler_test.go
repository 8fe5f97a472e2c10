package handler

import (
	"bytes"
	"net/http"
	"testing"

	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/infra/qrcode"
	mockusecase "kedai/internal/mocks/usecase"
	"kedai/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAddressHandler(t *testing.T) (*AddressHandler, *mockusecase.MockAddressUsecase) {
	t.Helper()

	addressUC := mockusecase.NewMockAddressUsecase(t)
	addressUC.EXPECT().DisplayPhone(mock.Anything).RunAndReturn(func(phone string) string {
		return "+60 " + phone
	}).Maybe()

	return NewAddressHandler(AddressHandlerParams{
		AddressUC: addressUC,
		QRCode:    qrcode.NewQRCodeService(128, "M"),
		Logger:    newDiscardLogger(),
	}), addressUC
}

func testAddress(id string, isDefault bool) *entity.Address {
	return &entity.Address{
		ID:         id,
		CustomerID: "cust-1",
		Name:       "Ali",
		Phone:      "123456789",
		Unit:       "A-1",
		Address:    "1 Jalan Test",
		Latitude:   3.139,
		Longitude:  101.6869,
		IsDefault:  isDefault,
	}
}

func TestAddressHandler_ListAddresses(t *testing.T) {
	h, addressUC := createTestAddressHandler(t)
	addressUC.EXPECT().ListAddresses(mock.Anything).
		Return([]*entity.Address{testAddress("a2", true), testAddress("a1", false)}, nil)

	c, rec := newTestContext(http.MethodGet, "/addresses", "")
	require.NoError(t, h.ListAddresses(c))
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[[]map[string]any](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, "a2", got[0]["id"])
	assert.Equal(t, true, got[0]["is_default"])
	assert.Equal(t, "+60 123456789", got[0]["display_phone"])
}

func TestAddressHandler_ListAddresses_Error(t *testing.T) {
	h, addressUC := createTestAddressHandler(t)
	addressUC.EXPECT().ListAddresses(mock.Anything).Return(nil, domainerrors.ErrSessionMissing)

	c, _ := newTestContext(http.MethodGet, "/addresses", "")
	err := h.ListAddresses(c)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionMissing))
}

func TestAddressHandler_CreateAddress(t *testing.T) {
	h, addressUC := createTestAddressHandler(t)
	addressUC.EXPECT().CreateAddress(mock.Anything, mock.MatchedBy(func(in *usecase.AddressInput) bool {
		return in.Address == "1 Jalan Test" && in.Name == "Ali" && in.Phone == "123456789" &&
			in.Unit == "A-1" && in.Latitude == 3.139 && in.Longitude == 101.6869
	})).Return(testAddress("a1", false), nil)

	body := `{"address":"1 Jalan Test","name":"Ali","phone":"123456789","unit":"A-1","latitude":3.139,"longitude":101.6869}`
	c, rec := newTestContext(http.MethodPost, "/addresses", body)
	require.NoError(t, h.CreateAddress(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "a1", decodeData[map[string]any](t, rec)["id"])
}

func TestAddressHandler_CreateAddress_ValidationError(t *testing.T) {
	h, addressUC := createTestAddressHandler(t)
	validationErr := domainerrors.ErrValidationFailed.WithMessage("Please fill in name").WithDetails("name")
	addressUC.EXPECT().CreateAddress(mock.Anything, mock.Anything).Return(nil, validationErr)

	c, _ := newTestContext(http.MethodPost, "/addresses", `{"address":"1 Jalan Test"}`)
	err := h.CreateAddress(c)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAddressHandler_CreateAddress_BadBody(t *testing.T) {
	h, _ := createTestAddressHandler(t)

	c, rec := newTestContext(http.MethodPost, "/addresses", `{"address":`)
	require.NoError(t, h.CreateAddress(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddressHandler_UpdateAddress_DefaultNotApplied(t *testing.T) {
	h, addressUC := createTestAddressHandler(t)
	addressUC.EXPECT().UpdateAddress(mock.Anything, "a1", mock.MatchedBy(func(in *usecase.AddressInput) bool {
		return in.IsDefault
	})).Return(&usecase.UpdateResult{
		Address:          testAddress("a1", false),
		DefaultRequested: true,
		DefaultApplied:   false,
		DefaultErr:       domainerrors.ErrServer,
	}, nil)

	body := `{"address":"1 Jalan Test","name":"Ali","phone":"123456789","unit":"A-1","is_default":true}`
	c, rec := newTestContext(http.MethodPut, "/addresses/a1", body)
	require.NoError(t, h.UpdateAddress(withParam(c, "id", "a1")))
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[UpdateAddressResponse](t, rec)
	assert.True(t, got.DefaultRequested)
	assert.False(t, got.DefaultApplied)
	assert.NotEmpty(t, got.DefaultError)
	assert.Equal(t, "+60 123456789", got.Address.DisplayPhone)
}

func TestAddressHandler_DeleteAddress(t *testing.T) {
	h, addressUC := createTestAddressHandler(t)
	addressUC.EXPECT().DeleteAddress(mock.Anything, "a2").Return(nil).Once()

	c, rec := newTestContext(http.MethodDelete, "/addresses/a2", "")
	require.NoError(t, h.DeleteAddress(withParam(c, "id", "a2")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a2", decodeData[map[string]string](t, rec)["id"])
}

func TestAddressHandler_SelectAddress(t *testing.T) {
	h, addressUC := createTestAddressHandler(t)
	addressUC.EXPECT().SelectAddress(mock.Anything, "a1").Return(&entity.DeliveryAddressDetails{
		AddressID: "a1",
		Address:   "1 Jalan Test",
		Latitude:  3.139,
		Longitude: 101.6869,
	}, nil)

	c, rec := newTestContext(http.MethodPost, "/addresses/a1/select", "")
	require.NoError(t, h.SelectAddress(withParam(c, "id", "a1")))

	got := decodeData[entity.DeliveryAddressDetails](t, rec)
	assert.Equal(t, "a1", got.AddressID)
	assert.Equal(t, 101.6869, got.Longitude)
}

func TestAddressHandler_SelectedAddress_None(t *testing.T) {
	h, addressUC := createTestAddressHandler(t)
	addressUC.EXPECT().SelectedAddress(mock.Anything).Return(nil, domainerrors.ErrNoSelectedAddress)

	c, _ := newTestContext(http.MethodGet, "/addresses/selected", "")
	err := h.SelectedAddress(c)
	assert.True(t, errors.Is(err, domainerrors.ErrNoSelectedAddress))
}

func TestAddressHandler_AddressQR(t *testing.T) {
	h, addressUC := createTestAddressHandler(t)
	addressUC.EXPECT().GetAddress(mock.Anything, "a1").Return(testAddress("a1", true), nil)

	c, rec := newTestContext(http.MethodGet, "/addresses/a1/qr", "")
	require.NoError(t, h.AddressQR(withParam(c, "id", "a1")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

// Package handler contains the echo handlers of the bridge server.
package handler

import (
	"log/slog"
	"net/http"

	"kedai/internal/delivery/api/response"
	deliverycontext "kedai/internal/delivery/context"
	"kedai/internal/domain/entity"
	"kedai/internal/domain/service"
	"kedai/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	qrCode    service.QRCodeService
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		qrCode:    params.QRCode,
		logger:    params.Logger,
	}
}

// AddressRequest represents the request body for creating or updating an address.
// Required fields are checked by the usecase so the message matches the app's.
type AddressRequest struct {
	Address   string  `json:"address"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Unit      string  `json:"unit"`
	Note      string  `json:"note"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsDefault bool    `json:"is_default"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Address:   r.Address,
		Name:      r.Name,
		Phone:     r.Phone,
		Unit:      r.Unit,
		Note:      r.Note,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		IsDefault: r.IsDefault,
	}
}

// AddressResponse is an address with its phone ready for display.
type AddressResponse struct {
	*entity.Address
	DisplayPhone string `json:"display_phone"`
}

// UpdateAddressResponse reports both steps of an update.
type UpdateAddressResponse struct {
	Address          AddressResponse `json:"address"`
	DefaultRequested bool            `json:"default_requested"`
	DefaultApplied   bool            `json:"default_applied"`
	DefaultError     string          `json:"default_error,omitempty"`
}

func (h *AddressHandler) toResponse(a *entity.Address) AddressResponse {
	return AddressResponse{Address: a, DisplayPhone: h.addressUC.DisplayPhone(a.Phone)}
}

// ListAddresses handles listing the customer's addresses, default first
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.addressUC.ListAddresses(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, h.toResponse(a))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetAddress handles fetching one address
func (h *AddressHandler) GetAddress(c echo.Context) error {
	address, err := h.addressUC.GetAddress(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.toResponse(address))
}

// CreateAddress handles creating a new address
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, h.toResponse(address))
}

// UpdateAddress handles overwriting an address and optionally making it default
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	ctx := c.Request().Context()
	result, err := h.addressUC.UpdateAddress(ctx, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	out := UpdateAddressResponse{
		Address:          h.toResponse(result.Address),
		DefaultRequested: result.DefaultRequested,
		DefaultApplied:   result.DefaultApplied,
	}
	if result.DefaultErr != nil {
		out.DefaultError = result.DefaultErr.Error()
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Default address not applied",
			slog.String("address_id", c.Param("id")),
			slog.Any("error", result.DefaultErr),
		)
	}

	return response.Success(c, http.StatusOK, out)
}

// DeleteAddress handles deleting an address. The caller has already confirmed.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	id := c.Param("id")
	if err := h.addressUC.DeleteAddress(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id})
}

// SelectAddress handles choosing the delivery address of the next order
func (h *AddressHandler) SelectAddress(c echo.Context) error {
	details, err := h.addressUC.SelectAddress(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, details)
}

// SelectedAddress handles reading the current delivery address
func (h *AddressHandler) SelectedAddress(c echo.Context) error {
	details, err := h.addressUC.SelectedAddress(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, details)
}

// AddressQR handles rendering an address location as a PNG QR code
func (h *AddressHandler) AddressQR(c echo.Context) error {
	address, err := h.addressUC.GetAddress(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	png, err := h.qrCode.GenerateLocationQR(&entity.DeliveryAddressDetails{
		AddressID: address.ID,
		Address:   address.Address,
		Latitude:  address.Latitude,
		Longitude: address.Longitude,
	})
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Package response shapes every body the bridge server writes.
package response

import (
	"net/http"

	deliverycontext "kedai/internal/delivery/context"
	domainerrors "kedai/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code      string `json:"code"`                // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message   string `json:"message"`             // User-friendly error message
	Details   any    `json:"details,omitempty"`   // Additional error context (only for 4xx errors)
	Retryable bool   `json:"retryable,omitempty"` // The same request may succeed later
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: newMeta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return writeError(c, statusCode, &ErrorInfo{
		Code:    errorCode,
		Message: message,
		Details: details,
	})
}

// AppError writes a domain error with its own status, code and retry hint.
func AppError(c echo.Context, err domainerrors.AppError) error {
	var details any
	if err.Details() != "" {
		details = err.Details()
	}

	return writeError(c, err.HTTPCode(), &ErrorInfo{
		Code:      err.ErrorCode(),
		Message:   err.Message(),
		Details:   details,
		Retryable: domainerrors.IsRetryable(err),
	})
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

func writeError(c echo.Context, statusCode int, info *ErrorInfo) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		info.Details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: info,
		Meta:  newMeta(c),
	})
}

func newMeta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}

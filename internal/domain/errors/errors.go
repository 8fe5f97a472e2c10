// Package errors defines the application error taxonomy shared by the client,
// the CLI and the bridge server.
package errors

import (
	"net/http"

	"kedai/internal/errors"
)

// Kind classifies an application error by how a screen should react to it.
type Kind int

const (
	// KindInternal is an unexpected failure.
	KindInternal Kind = iota
	// KindValidation is a missing or malformed field, caught before any network call. Not retried.
	KindValidation
	// KindAuth is a missing or expired token. The caller redirects to login.
	KindAuth
	// KindNetwork is a transport failure or timeout. Retryable.
	KindNetwork
	// KindServer is a non-success payload returned by the backend.
	KindServer
	// KindNotFound is a missing resource.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Unwrap returns the underlying cause, if any
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches errors of the same business code, so derived errors
// (WithDetails, WithCause) still satisfy errors.Is against the predefined ones.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	c := *e
	c.details = details

	return &c
}

// WithMessage replaces the user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	c := *e
	c.message = message

	return &c
}

// WithCause attaches the underlying error
func (e *BaseError) WithCause(cause error) *BaseError {
	c := *e
	c.cause = cause
	if c.details == "" && cause != nil {
		c.details = cause.Error()
	}

	return &c
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please fill in all required fields",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"The selected location is not valid",
		"",
	)

	// Authentication-related errors
	ErrSessionMissing = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"SESSION_MISSING",
		"Please log in to continue",
		"",
	)

	ErrSessionExpired = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please log in again",
		"",
	)

	// Transport errors
	ErrNetwork = NewBaseError(
		KindNetwork,
		http.StatusBadGateway,
		"NETWORK_ERROR",
		"Unable to reach the server, please try again",
		"",
	)

	ErrTimeout = NewBaseError(
		KindNetwork,
		http.StatusGatewayTimeout,
		"TIMEOUT",
		"The request timed out, please try again",
		"",
	)

	// Backend errors
	ErrServer = NewBaseError(
		KindServer,
		http.StatusBadGateway,
		"SERVER_ERROR",
		"The server could not complete the request",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found",
		"",
	)

	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Address not found",
		"",
	)

	ErrNoSelectedAddress = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NO_SELECTED_ADDRESS",
		"No delivery address has been selected",
		"",
	)

	// Geocoding errors
	ErrGeocodeFailed = NewBaseError(
		KindNetwork,
		http.StatusBadGateway,
		"GEOCODE_FAILED",
		"Unable to resolve the location",
		"",
	)

	ErrPlaceNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PLACE_NOT_FOUND",
		"Place not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)
)

// KindOf returns the kind of err, KindInternal when err is not an AppError.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	return err != nil && KindOf(err) == KindValidation
}

// IsAuth reports whether err requires the user to authenticate again.
func IsAuth(err error) bool {
	return err != nil && KindOf(err) == KindAuth
}

// IsRetryable reports whether the operation may succeed when retried.
func IsRetryable(err error) bool {
	return err != nil && KindOf(err) == KindNetwork
}

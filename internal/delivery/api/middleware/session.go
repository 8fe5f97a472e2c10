package middleware

import (
	"strings"

	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/domain/service"
	"kedai/internal/infra/session"

	"github.com/labstack/echo/v4"
)

// HeaderCustomerID names the customer when the bearer token does not carry it.
const HeaderCustomerID = "X-Customer-Id"

// SessionMiddleware forwards the caller's bearer token to the backend.
type SessionMiddleware struct {
	inspector service.TokenInspector
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(inspector service.TokenInspector) *SessionMiddleware {
	return &SessionMiddleware{inspector: inspector}
}

// Forward puts the request's own session in the request context. Requests
// without an Authorization header use the locally persisted session, unless
// they come from a browser page (Origin set): those must bring their own token.
func (m *SessionMiddleware) Forward(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			if c.Request().Header.Get(echo.HeaderOrigin) != "" {
				return domainerrors.ErrSessionMissing.WithDetails("cross-origin requests must send a Bearer token")
			}

			return next(c)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || strings.TrimSpace(token) == "" {
			return domainerrors.ErrSessionMissing.WithDetails("Authorization must be a Bearer token")
		}

		if err := m.inspector.CheckToken(token); err != nil {
			return err
		}

		customerID := strings.TrimSpace(c.Request().Header.Get(HeaderCustomerID))
		if customerID == "" {
			customerID = m.inspector.CustomerID(token)
		}

		s := &entity.Session{Token: token, Forwarded: true}
		if customerID != "" {
			s.Customer = &entity.Customer{ID: customerID}
		}

		ctx := session.WithSession(c.Request().Context(), s)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

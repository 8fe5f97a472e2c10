package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"kedai/config"
	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/infra/auth"
	"kedai/internal/infra/session"
	"kedai/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runForward(t *testing.T, headers map[string]string) (*entity.Session, error) {
	t.Helper()

	store, err := storage.Open(t.Context(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	inspector := auth.NewJWTInspector(&config.Config{})
	provider := session.NewProvider(session.Params{Store: store, Inspector: inspector, Logger: newDiscardLogger()})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/addresses", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var got *entity.Session
	handler := NewSessionMiddleware(inspector).Forward(func(c echo.Context) error {
		s, err := provider.GetSession(c.Request().Context())
		got = s

		return err
	})

	err = handler(c)

	return got, err
}

func TestSessionMiddleware_ForwardsBearerToken(t *testing.T) {
	s, err := runForward(t, map[string]string{
		echo.HeaderAuthorization: "Bearer opaque-token",
		HeaderCustomerID:         "cust-1",
	})
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "opaque-token", s.Token)
	assert.Equal(t, "cust-1", s.CustomerID())
	assert.True(t, s.Forwarded)
}

func TestSessionMiddleware_NoHeaderUsesPersistedSession(t *testing.T) {
	s, err := runForward(t, nil)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSessionMiddleware_RejectsNonBearer(t *testing.T) {
	_, err := runForward(t, map[string]string{echo.HeaderAuthorization: "Basic dXNlcjpwYXNz"})
	assert.ErrorIs(t, err, domainerrors.ErrSessionMissing)
}

func TestSessionMiddleware_CrossOriginNeedsBearer(t *testing.T) {
	s, err := runForward(t, map[string]string{echo.HeaderOrigin: "https://evil.example"})
	assert.Nil(t, s)
	assert.ErrorIs(t, err, domainerrors.ErrSessionMissing)
}

func TestSessionMiddleware_CrossOriginWithBearer(t *testing.T) {
	s, err := runForward(t, map[string]string{
		echo.HeaderOrigin:        "https://shop.example",
		echo.HeaderAuthorization: "Bearer opaque-token",
		HeaderCustomerID:         "cust-1",
	})
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "opaque-token", s.Token)
}

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kedai/config"
	deliverycontext "kedai/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	var fromContext string
	e.GET("/addresses", func(c echo.Context) error {
		fromContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/addresses", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", fromContext)
	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Empty(t, buf.String())
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)
	e.GET("/addresses", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/addresses", nil))

	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_LogsRouteInDebug(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, true)
	e.GET("/addresses/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/addresses/a1", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Bridge request", line["msg"])
	assert.Equal(t, "/addresses/:id", line["route"])
	assert.Equal(t, "WARN", line["level"])
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("req-1"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("has space"))
	assert.False(t, validRequestID(strings.Repeat("a", maxRequestIDLength+1)))
}

func TestLoggerMiddleware_LogsStatusOfReturnedError(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, true)
	e.GET("/addresses", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/addresses", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, float64(http.StatusBadGateway), line["status"])
	assert.Equal(t, "ERROR", line["level"])
}

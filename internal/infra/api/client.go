// Package api is the HTTP client of the remote food-ordering backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"kedai/config"
	deliverycontext "kedai/internal/delivery/context"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxErrorBody = 4 << 10

// ClientParams holds dependencies for Client, injected by Fx.
type ClientParams struct {
	fx.In

	Config   *config.Config
	Sessions service.SessionProvider
	Logger   *slog.Logger
}

// Client sends authenticated JSON requests to the backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	sessions   service.SessionProvider
	logger     *slog.Logger
}

// NewClient creates a new backend client.
func NewClient(params ClientParams) (*Client, error) {
	raw := strings.TrimSpace(params.Config.API.BaseURL)
	if raw == "" {
		return nil, errors.New("api base url is required")
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}

	base, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parse api base url %q", raw)
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: params.Config.API.Timeout,
		},
		sessions: params.Sessions,
		logger:   params.Logger,
	}, nil
}

// Do sends one request and decodes the envelope's data into out (if non-nil).
// A missing or expired session fails before anything is sent.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	session, err := c.sessions.RequireSession(ctx)
	if err != nil {
		return err
	}

	endpoint := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+session.Token)
	req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger).With(
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportError(ctx, logger, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportError(ctx, logger, err)
	}

	if err := c.checkResponse(resp.StatusCode, raw); err != nil {
		logger.Warn("Backend request failed", slog.Int("status", resp.StatusCode), slog.Any("error", err))

		return err
	}

	logger.Debug("Backend request succeeded", slog.Int("status", resp.StatusCode))

	if out == nil {
		return nil
	}

	return decodeData(raw, out)
}

func (c *Client) transportError(ctx context.Context, logger *slog.Logger, err error) error {
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.Canceled) {
		return errors.WithStack(ctxErr)
	}

	logger.Warn("Backend unreachable", slog.Any("error", err))

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domainerrors.ErrTimeout.WithCause(err)
	}

	return domainerrors.ErrNetwork.WithCause(err)
}

func (c *Client) checkResponse(statusCode int, raw []byte) error {
	switch {
	case statusCode == http.StatusUnauthorized:
		return domainerrors.ErrSessionExpired.WithDetails(snippet(raw))
	case statusCode == http.StatusForbidden:
		return domainerrors.ErrSessionMissing.WithDetails(snippet(raw))
	case statusCode == http.StatusNotFound:
		return domainerrors.ErrNotFound.WithDetails(snippet(raw))
	case statusCode < 200 || statusCode >= 300:
		return serverError(raw, "http status "+http.StatusText(statusCode))
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return domainerrors.ErrServer.WithCause(errors.Wrap(err, "decode response envelope"))
	}
	if env.Status.present && !env.Status.ok {
		return serverError(raw, "status "+env.Status.raw)
	}

	return nil
}

func serverError(raw []byte, details string) error {
	err := domainerrors.ErrServer.WithDetails(details)

	var env envelope
	if json.Unmarshal(raw, &env) == nil && strings.TrimSpace(env.Message) != "" {
		err = err.WithMessage(env.Message)
	}

	return err
}

// decodeData accepts either an envelope with a data field or a bare payload.
// An envelope whose data is null or absent leaves out at its zero value.
func decodeData(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err == nil {
			data, hasData := fields["data"]
			_, hasStatus := fields["status"]

			if hasData || hasStatus {
				data = bytes.TrimSpace(data)
				if len(data) == 0 || bytes.Equal(data, []byte("null")) {
					return nil
				}
				trimmed = data
			}
		}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return domainerrors.ErrServer.WithCause(errors.Wrap(err, "decode response data"))
	}

	return nil
}

func snippet(raw []byte) string {
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody]
	}

	return strings.TrimSpace(string(raw))
}

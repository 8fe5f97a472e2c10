// Package auth provides client-side checks of the bearer token before it is sent.
package auth

import (
	"strconv"
	"strings"
	"time"

	"kedai/config"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtInspector reads the expiry of JWT bearer tokens without verifying the
// signature: the backend verifies, the client only avoids sending dead tokens.
// Opaque (non-JWT) tokens are accepted as-is.
type jwtInspector struct {
	parser *jwt.Parser
	leeway time.Duration
	now    func() time.Time
}

// NewJWTInspector is the constructor for the token inspector.
func NewJWTInspector(cfg *config.Config) service.TokenInspector {
	var leeway time.Duration
	if cfg.Session != nil {
		leeway = cfg.Session.ExpiryLeeway
	}

	return &jwtInspector{
		parser: jwt.NewParser(),
		leeway: leeway,
		now:    time.Now,
	}
}

// CheckToken returns ErrSessionMissing for an empty token and ErrSessionExpired
// when the token's exp claim is within the configured leeway.
func (i *jwtInspector) CheckToken(token string) error {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return domainerrors.ErrSessionMissing
	}

	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil
		}

		return domainerrors.ErrSessionExpired.WithCause(err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return domainerrors.ErrSessionExpired.WithCause(err)
	}
	if exp == nil {
		return nil
	}

	if !i.now().Add(i.leeway).Before(exp.Time) {
		return domainerrors.ErrSessionExpired.WithDetails("token expired at " + exp.Time.UTC().Format(time.RFC3339))
	}

	return nil
}

// customerClaims are checked in order for the customer id.
var customerClaims = []string{"customer_id", "sub"}

// CustomerID reads the customer id from the unverified claims.
func (i *jwtInspector) CustomerID(token string) string {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return ""
	}

	for _, name := range customerClaims {
		switch v := claims[name].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	return ""
}

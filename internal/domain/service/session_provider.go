package service

import (
	"context"

	"kedai/internal/domain/entity"
)

// SessionProvider is the single access point to the locally persisted identity.
type SessionProvider interface {
	// GetSession returns the current session, or nil when nobody is signed in.
	GetSession(ctx context.Context) (*entity.Session, error)

	// RequireSession returns the current session or an auth error when the token
	// is missing or expired.
	RequireSession(ctx context.Context) (*entity.Session, error)

	// SaveSession persists the session and notifies listeners.
	SaveSession(ctx context.Context, session *entity.Session) error

	// ClearSession removes the session and notifies listeners with nil.
	ClearSession(ctx context.Context) error

	// OnSessionChange registers a listener and returns its unsubscribe function.
	OnSessionChange(fn func(*entity.Session)) (unsubscribe func())
}

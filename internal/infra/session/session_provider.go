// Package session keeps the signed-in customer's token and profile in the local key store.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/domain/repository"
	"kedai/internal/domain/service"
	"kedai/internal/errors"

	"go.uber.org/fx"
)

type contextKey struct{}

// WithSession returns a context carrying a request-scoped session. It takes
// precedence over the persisted one; the bridge server uses it to forward the
// caller's own token.
func WithSession(ctx context.Context, s *entity.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func fromContext(ctx context.Context) (*entity.Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*entity.Session)

	return s, ok && s != nil
}

// Params holds dependencies for the session provider, injected by Fx.
type Params struct {
	fx.In

	Store     repository.KeyStore
	Inspector service.TokenInspector
	Logger    *slog.Logger
}

type provider struct {
	store     repository.KeyStore
	inspector service.TokenInspector
	logger    *slog.Logger

	mu        sync.Mutex
	nextID    int
	listeners map[int]func(*entity.Session)
}

// NewProvider creates the store-backed session provider.
func NewProvider(params Params) service.SessionProvider {
	return &provider{
		store:     params.Store,
		inspector: params.Inspector,
		logger:    params.Logger,
		listeners: make(map[int]func(*entity.Session)),
	}
}

// GetSession reads authToken and customerData. A missing token means no session.
func (p *provider) GetSession(ctx context.Context) (*entity.Session, error) {
	if s, ok := fromContext(ctx); ok {
		return s, nil
	}

	token, err := p.store.Get(ctx, repository.KeyAuthToken)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "read auth token")
	}

	s := &entity.Session{Token: string(token)}

	raw, err := p.store.Get(ctx, repository.KeyCustomerData)
	switch {
	case err == nil:
		var customer entity.Customer
		if err := json.Unmarshal(raw, &customer); err != nil {
			p.logger.Warn("Discarding unreadable customer data", slog.Any("error", err))
		} else {
			s.Customer = &customer
		}
	case !errors.Is(err, repository.ErrKeyNotFound):
		return nil, errors.Wrap(err, "read customer data")
	}

	return s, nil
}

// RequireSession returns the session only when it can authenticate a request.
func (p *provider) RequireSession(ctx context.Context) (*entity.Session, error) {
	s, err := p.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domainerrors.ErrSessionMissing
	}

	if err := p.inspector.CheckToken(s.Token); err != nil {
		return nil, err
	}

	if s.CustomerID() == "" {
		return nil, domainerrors.ErrSessionMissing.WithDetails("customer profile missing")
	}

	return s, nil
}

// SaveSession writes token and profile, then notifies listeners.
func (p *provider) SaveSession(ctx context.Context, s *entity.Session) error {
	if s == nil || s.Token == "" {
		return domainerrors.ErrSessionMissing
	}

	if err := p.store.Set(ctx, repository.KeyAuthToken, []byte(s.Token)); err != nil {
		return err
	}

	if s.Customer != nil {
		raw, err := json.Marshal(s.Customer)
		if err != nil {
			return errors.Wrap(err, "encode customer data")
		}
		if err := p.store.Set(ctx, repository.KeyCustomerData, raw); err != nil {
			return err
		}
	} else if err := p.store.Delete(ctx, repository.KeyCustomerData); err != nil {
		return err
	}

	p.notify(s)

	return nil
}

// ClearSession signs out: token, profile and the selected delivery address are removed.
func (p *provider) ClearSession(ctx context.Context) error {
	for _, key := range []string{repository.KeyAuthToken, repository.KeyCustomerData, repository.KeyDeliveryAddressDetails} {
		if err := p.store.Delete(ctx, key); err != nil {
			return err
		}
	}

	p.notify(nil)

	return nil
}

// OnSessionChange registers fn; the returned function removes it.
func (p *provider) OnSessionChange(fn func(*entity.Session)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

func (p *provider) notify(s *entity.Session) {
	p.mu.Lock()
	fns := make([]func(*entity.Session), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"kedai/config"
	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/infra/storage"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Address: &config.AddressConfig{
			PhoneCountryCode: "+60",
			PhoneMaxDigits:   10,
			NavigateDelay:    -1,
		},
	}
	cfg.ApplyDefaults()

	return cfg
}

func newMemStore(t *testing.T) *storage.BlobStore {
	t.Helper()

	store, err := storage.Open(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func testSession() *entity.Session {
	return &entity.Session{
		Token:    "opaque-token",
		Customer: &entity.Customer{ID: "cust-1", Name: "Ali"},
	}
}

// recordingNavigator collects navigations on a channel.
type recordingNavigator struct {
	routes chan entity.Route
}

func newRecordingNavigator() *recordingNavigator {
	return &recordingNavigator{routes: make(chan entity.Route, 8)}
}

func (n *recordingNavigator) Navigate(route entity.Route) {
	n.routes <- route
}

func (n *recordingNavigator) waitRoute(t *testing.T) entity.Route {
	t.Helper()

	select {
	case route := <-n.routes:
		return route
	case <-time.After(2 * time.Second):
		t.Fatal("no navigation happened")

		return ""
	}
}

// fakeBackend is an in-memory address backend that keeps one default per customer,
// like the real server does.
type fakeBackend struct {
	mu        sync.Mutex
	nextID    int
	addresses []*entity.Address
	calls     map[string]int
}

func newFakeBackend(seed ...*entity.Address) *fakeBackend {
	b := &fakeBackend{calls: map[string]int{}}
	for _, a := range seed {
		copied := *a
		b.addresses = append(b.addresses, &copied)
	}

	return b
}

func (b *fakeBackend) count(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.calls[op]
}

func (b *fakeBackend) find(id string) int {
	for i, a := range b.addresses {
		if a.ID == id {
			return i
		}
	}

	return -1
}

func (b *fakeBackend) List(_ context.Context, customerID string) ([]*entity.Address, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["List"]++

	var out []*entity.Address
	for _, a := range b.addresses {
		if a.CustomerID == customerID {
			copied := *a
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (b *fakeBackend) Get(_ context.Context, addressID string) (*entity.Address, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["Get"]++

	i := b.find(addressID)
	if i < 0 {
		return nil, domainerrors.ErrAddressNotFound
	}
	copied := *b.addresses[i]

	return &copied, nil
}

func (b *fakeBackend) Create(_ context.Context, address *entity.Address) (*entity.Address, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["Create"]++

	b.nextID++
	created := *address
	created.ID = "new-" + strconv.Itoa(b.nextID)
	created.IsDefault = false
	b.addresses = append(b.addresses, &created)
	out := created

	return &out, nil
}

func (b *fakeBackend) Update(_ context.Context, addressID string, address *entity.Address) (*entity.Address, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["Update"]++

	i := b.find(addressID)
	if i < 0 {
		return nil, domainerrors.ErrAddressNotFound
	}
	updated := *address
	updated.ID = addressID
	updated.IsDefault = b.addresses[i].IsDefault
	b.addresses[i] = &updated
	out := updated

	return &out, nil
}

func (b *fakeBackend) SetDefault(_ context.Context, addressID, customerID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["SetDefault"]++

	if b.find(addressID) < 0 {
		return domainerrors.ErrAddressNotFound
	}
	for _, a := range b.addresses {
		if a.CustomerID == customerID {
			a.IsDefault = a.ID == addressID
		}
	}

	return nil
}

func (b *fakeBackend) Delete(_ context.Context, addressID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["Delete"]++

	i := b.find(addressID)
	if i < 0 {
		return domainerrors.ErrAddressNotFound
	}
	b.addresses = append(b.addresses[:i], b.addresses[i+1:]...)

	return nil
}

// Package storage persists the client's local keys (session, selected address)
// in a gocloud.dev blob bucket: a directory on the device, or memory in tests.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"os"

	"kedai/config"
	"kedai/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// Params holds dependencies for the key store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// BlobStore implements repository.KeyStore on top of a blob bucket.
type BlobStore struct {
	bucket *blob.Bucket
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (repository.KeyStore, error) {
	store, err := Open(params.Ctx, params.Config.Storage.URL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Local key store opened", slog.String("url", params.Config.Storage.URL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens a bucket URL such as "file:///var/lib/kedai" or "mem://".
// Local directories are created when missing.
func Open(ctx context.Context, bucketURL string) (*BlobStore, error) {
	u, err := url.Parse(bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse storage url %q", bucketURL)
	}

	if u.Scheme == "file" && u.Path != "" {
		if err := os.MkdirAll(u.Path, 0o700); err != nil {
			return nil, errors.Wrapf(err, "create storage dir %s", u.Path)
		}
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %q", bucketURL)
	}

	return &BlobStore{bucket: bucket}, nil
}

// Get returns the value stored under key.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "read key %s", key)
	}

	return data, nil
}

// Set stores value under key.
func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrapf(err, "write key %s", key)
	}

	return nil
}

// Delete removes key, ignoring keys that do not exist.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete key %s", key)
	}

	return nil
}

// Close releases the bucket.
func (s *BlobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

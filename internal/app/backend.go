package app

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/redisstore"
	"github.com/thenoetrevino/todos/internal/storage"
)

// OpenBackend opens the key-value backend selected by cfg
func OpenBackend(ctx context.Context, cfg config.StorageConfig) (storage.Backend, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		kv, err := database.Open(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return kv, nil
	case config.BackendRedis:
		backend, err := redisstore.Dial(ctx, redisstore.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open redis store: %w", err)
		}
		return backend, nil
	case config.BackendMemory:
		return storage.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
}

// Open opens the configured backend and builds an App over it.
// The backend is closed again if the App cannot be built.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	backend, err := OpenBackend(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	a, err := New(backend, cfg.Storage.Namespace, opts...)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return a, nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todos/internal/events"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
	"github.com/thenoetrevino/todos/internal/storage"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Key-value backend the store writes through
	backend storage.Backend

	// Persistence adapter over the backend
	store *storage.LocalStorage

	// Event bus the collection publishes to and the TUI listens on
	Bus *events.Bus

	// Service layer
	Todos *todoservice.Collection

	logger *slog.Logger
}

// New creates a new App over backend with todos kept under namespace.
// The collection starts empty; call Load to read the store.
func New(backend storage.Backend, namespace string, opts ...Option) (*App, error) {
	if backend == nil {
		return nil, errors.New("app: nil storage backend")
	}

	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.bus == nil {
		cfg.bus = events.NewBus()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	store := storage.NewLocalStorage(backend, namespace)
	todos, err := todoservice.NewCollection(store, cfg.bus)
	if err != nil {
		return nil, err
	}

	return &App{
		backend: backend,
		store:   store,
		Bus:     cfg.bus,
		Todos:   todos,
		logger:  cfg.logger,
	}, nil
}

// Load fetches every persisted todo into the collection
func (a *App) Load(ctx context.Context) error {
	if err := a.Todos.Fetch(ctx); err != nil {
		return err
	}
	a.logger.Debug("todos loaded", "namespace", a.store.Namespace(), "count", a.Todos.Len())
	return nil
}

// Store returns the persistence adapter backing the collection
func (a *App) Store() *storage.LocalStorage {
	return a.store
}

// Close releases the storage backend
func (a *App) Close() error {
	if err := a.backend.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}

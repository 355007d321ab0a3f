// Package storage persists todos in a namespaced key-value layout
package storage

import (
	"context"
	"errors"

	"github.com/thenoetrevino/todos/internal/models"
)

// DefaultNamespace is the application key every entry is stored under
const DefaultNamespace = "todos-backbone"

// ErrNotFound is returned by a Backend when a key has no value
var ErrNotFound = errors.New("key not found")

// Store is the persistence contract consumed by the todo collection.
// Calls are independent; there are no transactional guarantees across them.
type Store interface {
	// Load returns every persisted todo, in no particular order
	Load(ctx context.Context) ([]*models.Todo, error)

	// Save writes t, assigning t.ID first if it has never been saved
	Save(ctx context.Context, t *models.Todo) error

	// Delete removes t from the store
	Delete(ctx context.Context, t *models.Todo) error
}

// Backend is a flat string key-value store (SQLite, Redis, or memory)
type Backend interface {
	// Get returns ErrNotFound when key is absent
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/todos/internal/storage"
)

// KV is a storage.Backend over the kv table
type KV struct {
	db *sql.DB
}

// Compile-time verification that *KV implements storage.Backend
var _ storage.Backend = (*KV)(nil)

// NewKV wraps an initialized database
func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

// Open initializes the database at path and wraps it
func Open(ctx context.Context, path string) (*KV, error) {
	db, err := InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewKV(db), nil
}

// Get returns the value stored at key, or storage.ErrNotFound
func (r *KV) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

// Set inserts or replaces the value at key
func (r *KV) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting a missing key is not an error
func (r *KV) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database
func (r *KV) Close() error {
	return r.db.Close()
}

// Package redisstore provides a storage.Backend on top of Redis
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/thenoetrevino/todos/internal/storage"
)

// DefaultPrefix is prepended to every key unless configured otherwise
const DefaultPrefix = "todos:"

// Options configures a Backend
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Backend stores entries as plain Redis strings under a key prefix
type Backend struct {
	client *redis.Client
	prefix string
	owned  bool // whether Close should close the client
}

// Compile-time verification that *Backend implements storage.Backend
var _ storage.Backend = (*Backend)(nil)

// New wraps an existing client. The caller keeps ownership of it.
func New(client *redis.Client, prefix string) *Backend {
	if client == nil {
		panic("redisstore.New: client is nil")
	}
	return &Backend{client: client, prefix: prefix}
}

// Dial connects to Redis and verifies the connection with a PING
func Dial(ctx context.Context, opts Options) (*Backend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", opts.Addr, err)
	}

	b := New(client, opts.Prefix)
	b.owned = true
	return b, nil
}

func (b *Backend) key(k string) string {
	return b.prefix + k
}

// Get returns the value at key, or storage.ErrNotFound
func (b *Backend) Get(ctx context.Context, key string) (string, error) {
	value, err := b.client.Get(ctx, b.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

// Set stores value at key without expiry
func (b *Backend) Set(ctx context.Context, key, value string) error {
	if err := b.client.Set(ctx, b.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting a missing key is not an error
func (b *Backend) Delete(ctx context.Context, key string) error {
	if err := b.client.Del(ctx, b.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// Close closes the client when it was opened by Dial
func (b *Backend) Close() error {
	if !b.owned {
		return nil
	}
	return b.client.Close()
}

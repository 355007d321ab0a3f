package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryBackend keeps entries in a map. It backs tests and --ephemeral runs.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]string

	// Fail, when set, is returned by every call. Tests use it to simulate an
	// unavailable store.
	Fail error
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string]string)}
}

// Get returns the value stored at key
func (m *MemoryBackend) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Fail != nil {
		return "", m.Fail
	}
	v, ok := m.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value at key
func (m *MemoryBackend) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	m.entries[key] = value
	return nil
}

// Delete removes key; deleting a missing key is not an error
func (m *MemoryBackend) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	delete(m.entries, key)
	return nil
}

// Keys returns every stored key, sorted
func (m *MemoryBackend) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Close is a no-op
func (m *MemoryBackend) Close() error {
	return nil
}

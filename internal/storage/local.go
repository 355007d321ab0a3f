package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/thenoetrevino/todos/internal/models"
)

// LocalStorage stores todos in a Backend using a browser local-storage layout:
//
//	<namespace>       comma-separated ids of every saved todo
//	<namespace>-<id>  the todo as a JSON object
type LocalStorage struct {
	backend   Backend
	namespace string
	newID     func() string
}

// Compile-time verification that *LocalStorage implements Store
var _ Store = (*LocalStorage)(nil)

// NewLocalStorage creates a Store over backend. An empty namespace uses DefaultNamespace.
func NewLocalStorage(backend Backend, namespace string) *LocalStorage {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &LocalStorage{
		backend:   backend,
		namespace: namespace,
		newID:     func() string { return uuid.NewString() },
	}
}

// Namespace returns the application key entries live under
func (s *LocalStorage) Namespace() string {
	return s.namespace
}

// RecordKey returns the backend key holding the todo with the given id
func (s *LocalStorage) RecordKey(id string) string {
	return s.namespace + "-" + id
}

// Load reads the index and then every record it names.
// Index entries whose record is missing are skipped.
func (s *LocalStorage) Load(ctx context.Context) ([]*models.Todo, error) {
	ids, err := s.readIndex(ctx)
	if err != nil {
		return nil, err
	}

	todos := make([]*models.Todo, 0, len(ids))
	for _, id := range ids {
		raw, err := s.backend.Get(ctx, s.RecordKey(id))
		if errors.Is(err, ErrNotFound) {
			slog.Warn("index references missing todo", "namespace", s.namespace, "id", id)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read todo %s: %w", id, err)
		}

		var t models.Todo
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return nil, fmt.Errorf("failed to decode todo %s: %w", id, err)
		}
		if t.ID == "" {
			t.ID = id
		}
		todos = append(todos, &t)
	}

	return todos, nil
}

// Save writes the record and, for a todo saved for the first time, assigns an
// id and appends it to the index.
func (s *LocalStorage) Save(ctx context.Context, t *models.Todo) error {
	isNew := t.IsNew()
	id := t.ID
	if isNew {
		id = s.newID()
	}

	record := *t
	record.ID = id
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode todo: %w", err)
	}

	if err := s.backend.Set(ctx, s.RecordKey(id), string(data)); err != nil {
		return fmt.Errorf("failed to write todo %s: %w", id, err)
	}

	if isNew {
		ids, err := s.readIndex(ctx)
		if err != nil {
			return err
		}
		if err := s.writeIndex(ctx, append(ids, id)); err != nil {
			return err
		}
	}

	t.ID = id
	return nil
}

// Delete removes the record and its index entry
func (s *LocalStorage) Delete(ctx context.Context, t *models.Todo) error {
	if t.IsNew() {
		return nil
	}

	if err := s.backend.Delete(ctx, s.RecordKey(t.ID)); err != nil {
		return fmt.Errorf("failed to delete todo %s: %w", t.ID, err)
	}

	ids, err := s.readIndex(ctx)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != t.ID {
			kept = append(kept, id)
		}
	}
	return s.writeIndex(ctx, kept)
}

func (s *LocalStorage) readIndex(ctx context.Context) ([]string, error) {
	raw, err := s.backend.Get(ctx, s.namespace)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read index %s: %w", s.namespace, err)
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *LocalStorage) writeIndex(ctx context.Context, ids []string) error {
	if err := s.backend.Set(ctx, s.namespace, strings.Join(ids, ",")); err != nil {
		return fmt.Errorf("failed to write index %s: %w", s.namespace, err)
	}
	return nil
}

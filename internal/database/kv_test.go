package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todos/internal/models"
	"github.com/thenoetrevino/todos/internal/storage"
)

// setupTestKV creates an in-memory database with the kv schema
func setupTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestKVGetSetDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := setupTestKV(t)

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, kv.Set(ctx, "k", "v1"))
	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	require.NoError(t, kv.Set(ctx, "k", "v2"))
	got, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got, "Set must overwrite an existing key")

	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, kv.Delete(ctx, "k"), "deleting a missing key is not an error")
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := setupTestKV(t)

	require.NoError(t, runMigrations(ctx, kv.db))
	require.NoError(t, kv.Set(ctx, "still", "here"))
	require.NoError(t, runMigrations(ctx, kv.db))

	got, err := kv.Get(ctx, "still")
	require.NoError(t, err)
	assert.Equal(t, "here", got)
}

// Todos saved through LocalStorage survive closing and reopening the file
func TestTodoPersistenceAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "todos.db")

	kv, err := Open(ctx, path)
	require.NoError(t, err)

	store := storage.NewLocalStorage(kv, "")
	todo := models.NewTodo(1, models.WithTitle("Persist me"))
	require.NoError(t, store.Save(ctx, todo))
	require.NoError(t, kv.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	loaded, err := storage.NewLocalStorage(reopened, "").Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, todo, loaded[0])
}

package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/models"
	"github.com/thenoetrevino/todos/internal/testutil"
)

// SetupCLITest creates an in-memory SQLite store and an App over it.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*database.KV, *app.App) {
	t.Helper()
	kv := testutil.SetupTestKV(t)

	appInstance, err := app.New(kv, "todos-test")
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	return kv, appInstance
}

// CreateTestTodo creates a todo through the app's collection and returns it
func CreateTestTodo(t *testing.T, a *app.App, title string, done bool) *models.Todo {
	t.Helper()
	todo, err := a.Todos.Create(context.Background(), models.WithTitle(title), models.WithDone(done))
	if err != nil {
		t.Fatalf("Failed to create test todo: %v", err)
	}
	return todo
}

// ReloadTodos reads the store into a fresh App, the way a new process would
func ReloadTodos(t *testing.T, kv *database.KV) *app.App {
	t.Helper()
	fresh, err := app.New(kv, "todos-test")
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	if err := fresh.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load todos: %v", err)
	}
	return fresh
}

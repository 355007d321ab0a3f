package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/models"
	"github.com/thenoetrevino/todos/internal/storage"
)

var (
	enterKey = tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	escKey   = tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc})
	downKey  = tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
)

// keyPress builds the message for a single printable key
func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

// setupTestModel builds a loaded model over an in-memory backend
func setupTestModel(t *testing.T) (Model, *app.App, *storage.MemoryBackend) {
	t.Helper()

	backend := storage.NewMemoryBackend()
	a, err := app.New(backend, "")
	if err != nil {
		t.Fatalf("app.New() failed: %v", err)
	}

	m := New(context.Background(), a, config.Default())
	t.Cleanup(m.Close)

	if err := a.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return m, a, backend
}

// seed creates todos directly through the collection
func seed(t *testing.T, a *app.App, titles ...string) []*models.Todo {
	t.Helper()

	created := make([]*models.Todo, 0, len(titles))
	for _, title := range titles {
		todo, err := a.Todos.Create(context.Background(), models.WithTitle(title))
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", title, err)
		}
		created = append(created, todo)
	}
	return created
}

// send feeds msgs through Update in order
func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

// plainView renders the model without escape sequences
func plainView(m Model) string {
	return ansi.Strip(m.View().Content)
}

func titlesOf(todos []*models.Todo) []string {
	titles := make([]string, len(todos))
	for i, t := range todos {
		titles[i] = t.Title
	}
	return titles
}

package tui

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/tui/state"
	"github.com/thenoetrevino/todos/internal/tui/theme"
)

func setupStyles() theme.Styles {
	return theme.New(config.Default().ColorScheme)
}

func TestCreateFromInput(t *testing.T) {
	m, a, _ := setupTestModel(t)

	m = send(m, keyPress('n'))
	if m.uiState.Mode() != state.InputMode {
		t.Fatalf("Mode after 'n' = %v, want InputMode", m.uiState.Mode())
	}

	m.input.SetValue("  Buy milk  ")
	m = send(m, enterKey)

	todos := a.Todos.All()
	if len(todos) != 1 {
		t.Fatalf("todos = %d, want 1", len(todos))
	}
	if todos[0].Title != "Buy milk" {
		t.Errorf("Title = %q, want %q", todos[0].Title, "Buy milk")
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}
	if m.uiState.Mode() != state.InputMode {
		t.Errorf("Mode after create = %v, want InputMode", m.uiState.Mode())
	}
	if m.board.len() != 1 {
		t.Errorf("board rows = %d, want 1", m.board.len())
	}
}

func TestCreateIgnoresBlankInput(t *testing.T) {
	m, a, _ := setupTestModel(t)

	m = send(m, keyPress('n'))
	m.input.SetValue("   ")
	m = send(m, enterKey)

	if a.Todos.Len() != 0 {
		t.Errorf("blank input created %d todos", a.Todos.Len())
	}
	if m.notificationState.HasAny() {
		t.Errorf("blank input raised %v", m.notificationState.All())
	}
}

func TestInputEscReturnsToNormalMode(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = send(m, keyPress('n'))
	m.input.SetValue("draft")
	m = send(m, escKey)

	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after esc = %v, want NormalMode", m.uiState.Mode())
	}
	if m.input.Value() != "" {
		t.Errorf("input after esc = %q, want empty", m.input.Value())
	}
}

func TestTypingReachesInput(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = send(m, keyPress('n'), keyPress('h'), keyPress('i'))

	if m.input.Value() != "hi" {
		t.Errorf("input = %q, want %q", m.input.Value(), "hi")
	}
}

func TestToggleSelected(t *testing.T) {
	m, a, _ := setupTestModel(t)
	todos := seed(t, a, "A", "B")

	m = send(m, downKey, keyPress('x'))

	first, _ := a.Todos.Get(todos[0].ID)
	second, _ := a.Todos.Get(todos[1].ID)
	if first.Done {
		t.Error("first todo toggled, want untouched")
	}
	if !second.Done {
		t.Error("second todo not toggled")
	}
}

func TestNavigationStaysInBounds(t *testing.T) {
	m, a, _ := setupTestModel(t)
	seed(t, a, "A", "B")

	m = send(m, keyPress('j'), keyPress('j'), keyPress('j'))
	if m.uiState.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1", m.uiState.Cursor())
	}

	m = send(m, keyPress('k'), keyPress('k'))
	if m.uiState.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0", m.uiState.Cursor())
	}
}

func TestEditCommit(t *testing.T) {
	m, a, _ := setupTestModel(t)
	todos := seed(t, a, "Old title")

	m = send(m, keyPress('e'))
	if m.uiState.Mode() != state.EditMode {
		t.Fatalf("Mode after 'e' = %v, want EditMode", m.uiState.Mode())
	}
	if m.editor.Value() != "Old title" {
		t.Errorf("editor = %q, want current title", m.editor.Value())
	}

	m.editor.SetValue("New title ")
	m = send(m, enterKey)

	got, err := a.Todos.Get(todos[0].ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Title != "New title" {
		t.Errorf("Title = %q, want %q", got.Title, "New title")
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after commit = %v, want NormalMode", m.uiState.Mode())
	}
}

func TestEnterStartsEditInNormalMode(t *testing.T) {
	m, a, _ := setupTestModel(t)
	todos := seed(t, a, "A")

	m = send(m, enterKey)

	if m.uiState.Mode() != state.EditMode || m.uiState.EditingID() != todos[0].ID {
		t.Errorf("enter: mode %v editing %q", m.uiState.Mode(), m.uiState.EditingID())
	}
}

func TestEditEmptyDeletes(t *testing.T) {
	m, a, _ := setupTestModel(t)
	seed(t, a, "Doomed", "Kept")

	m = send(m, keyPress('e'))
	m.editor.SetValue("   ")
	m = send(m, enterKey)

	if got := titlesOf(a.Todos.All()); !reflect.DeepEqual(got, []string{"Kept"}) {
		t.Errorf("todos = %v, want [Kept]", got)
	}
	if m.board.len() != 1 {
		t.Errorf("board rows = %d, want 1", m.board.len())
	}
}

func TestEditEscCancels(t *testing.T) {
	m, a, _ := setupTestModel(t)
	todos := seed(t, a, "Keep me")

	m = send(m, keyPress('e'))
	m.editor.SetValue("Changed")
	m = send(m, escKey)

	got, _ := a.Todos.Get(todos[0].ID)
	if got.Title != "Keep me" {
		t.Errorf("Title = %q, want unchanged", got.Title)
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after esc = %v, want NormalMode", m.uiState.Mode())
	}
	if m.uiState.EditingID() != "" {
		t.Errorf("EditingID = %q, want empty", m.uiState.EditingID())
	}
}

func TestDeleteSelected(t *testing.T) {
	m, a, _ := setupTestModel(t)
	seed(t, a, "A", "B")

	m = send(m, downKey, keyPress('d'))

	if got := titlesOf(a.Todos.All()); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("todos = %v, want [A]", got)
	}
	if m.uiState.Cursor() != 0 {
		t.Errorf("Cursor after deleting last row = %d, want 0", m.uiState.Cursor())
	}
}

func TestDeleteOnEmptyListIsNoop(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = send(m, keyPress('d'), keyPress('x'), keyPress('e'))

	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode = %v, want NormalMode", m.uiState.Mode())
	}
	if m.notificationState.HasAny() {
		t.Errorf("notifications = %v, want none", m.notificationState.All())
	}
}

func TestClearCompleted(t *testing.T) {
	m, a, _ := setupTestModel(t)
	todos := seed(t, a, "A", "B", "C")
	if _, err := a.Todos.Toggle(context.Background(), todos[1].ID); err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}

	m = send(m, keyPress('C'))

	if got := titlesOf(a.Todos.All()); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Errorf("todos = %v, want [A C]", got)
	}
	if m.board.len() != 2 {
		t.Errorf("board rows = %d, want 2", m.board.len())
	}
}

func TestToggleAll(t *testing.T) {
	m, a, _ := setupTestModel(t)
	todos := seed(t, a, "A", "B")
	if _, err := a.Todos.Toggle(context.Background(), todos[0].ID); err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}

	m = send(m, keyPress('A'))
	if len(a.Todos.Remaining()) != 0 {
		t.Errorf("remaining after toggle all = %d, want 0", len(a.Todos.Remaining()))
	}

	send(m, keyPress('A'))
	if len(a.Todos.Done()) != 0 {
		t.Errorf("done after second toggle all = %d, want 0", len(a.Todos.Done()))
	}
}

func TestFilterCycleHidesRows(t *testing.T) {
	m, a, _ := setupTestModel(t)
	todos := seed(t, a, "Open", "Closed")
	if _, err := a.Todos.Toggle(context.Background(), todos[1].ID); err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}

	m = send(m, keyPress('f'))
	if m.uiState.Filter() != state.FilterActive {
		t.Fatalf("Filter = %v, want Active", m.uiState.Filter())
	}
	if got := m.visible(); len(got) != 1 || got[0] != todos[0].ID {
		t.Errorf("active rows = %v, want only %q", got, todos[0].ID)
	}

	m = send(m, keyPress('f'))
	if got := m.visible(); len(got) != 1 || got[0] != todos[1].ID {
		t.Errorf("completed rows = %v, want only %q", got, todos[1].ID)
	}

	// Toggling the only completed row moves it out of view
	m = send(m, keyPress('x'))
	if got := m.visible(); len(got) != 0 {
		t.Errorf("completed rows after toggle = %v, want none", got)
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := setupTestModel(t)

	_, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit command produced %T, want tea.QuitMsg", cmd())
	}
}

func TestStoreFailureShowsNotification(t *testing.T) {
	m, a, backend := setupTestModel(t)
	todos := seed(t, a, "A")

	backend.Fail = errors.New("disk full")
	m = send(m, keyPress('x'))
	backend.Fail = nil

	if !m.notificationState.HasAny() {
		t.Fatal("expected a notification")
	}
	if got, _ := a.Todos.Get(todos[0].ID); got.Done {
		t.Error("failed toggle changed the todo")
	}
	if !strings.Contains(plainView(m), "disk full") {
		t.Errorf("view does not show the error:\n%s", plainView(m))
	}

	m = send(m, keyPress('j'))
	if m.notificationState.HasAny() {
		t.Error("notification should clear on the next key")
	}
}

func TestWindowResize(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.uiState.Width() != 100 || m.uiState.Height() != 30 {
		t.Errorf("size = %dx%d, want 100x30", m.uiState.Width(), m.uiState.Height())
	}
}

func TestCtrlCQuitsInEveryMode(t *testing.T) {
	ctrlC := tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})

	tests := []struct {
		name  string
		enter []tea.Msg
	}{
		{"normal", nil},
		{"input", []tea.Msg{keyPress('n')}},
		{"edit", []tea.Msg{keyPress('e')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, a, _ := setupTestModel(t)
			seed(t, a, "A")
			m = send(m, tt.enter...)

			_, cmd := m.Update(ctrlC)
			if cmd == nil {
				t.Fatal("ctrl+c returned no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("ctrl+c produced %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

package tui

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todos/internal/models"
	"github.com/thenoetrevino/todos/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		switch m.uiState.Mode() {
		case state.InputMode:
			return m.handleInputMode(msg)
		case state.EditMode:
			return m.handleEditMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	return m, nil
}

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()

	km := m.keyMappings

	switch msg.String() {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.NewTodo:
		m.uiState.SetMode(state.InputMode)
		return m, m.input.Focus()
	case km.NextTodo, "down":
		m.uiState.MoveCursor(1, len(m.visible()))
	case km.PrevTodo, "up":
		m.uiState.MoveCursor(-1, len(m.visible()))
	case km.ToggleTodo:
		m.handleToggle()
	case km.EditTodo, km.Commit:
		return m.handleStartEdit()
	case km.DeleteTodo:
		m.handleDelete()
	case km.ClearCompleted:
		if _, err := m.todos.ClearCompleted(m.ctx); err != nil {
			m.fail("clear completed", err)
		}
	case km.ToggleAll:
		done := !m.todos.Stats().AllDone()
		if _, err := m.todos.ToggleAll(m.ctx, done); err != nil {
			m.fail("toggle all", err)
		}
	case km.CycleFilter:
		m.uiState.CycleFilter()
	}

	m.uiState.ClampCursor(len(m.visible()))
	return m, nil
}

func (m Model) handleToggle() {
	id := m.selected()
	if id == "" {
		return
	}
	if _, err := m.todos.Toggle(m.ctx, id); err != nil {
		m.fail("toggle", err)
	}
}

func (m Model) handleDelete() {
	id := m.selected()
	if id == "" {
		return
	}
	if err := m.todos.Destroy(m.ctx, id); err != nil {
		m.fail("delete", err)
	}
}

func (m Model) handleStartEdit() (tea.Model, tea.Cmd) {
	id := m.selected()
	t, ok := m.board.todo(id)
	if !ok {
		return m, nil
	}

	m.editor.SetValue(t.Title)
	m.editor.CursorEnd()
	m.uiState.StartEdit(id)
	return m, m.editor.Focus()
}

// ============================================================================
// INPUT MODE HANDLERS
// ============================================================================

// handleInputMode feeds keys to the new-todo input. Commit creates a todo and
// keeps the input open for the next one; blank input is ignored. ctrl+c quits
// in every mode.
func (m Model) handleInputMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.keyMappings.Commit:
		m.notificationState.Clear()
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			return m, nil
		}
		if _, err := m.todos.Create(m.ctx, models.WithTitle(title)); err != nil {
			m.fail("create", err)
			return m, nil
		}
		m.input.SetValue("")
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case m.keyMappings.Cancel:
		m.input.SetValue("")
		m.input.Blur()
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ============================================================================
// EDIT MODE HANDLERS
// ============================================================================

// handleEditMode feeds keys to the editor. Commit saves the new title, or
// deletes the todo when the title is blank; Cancel leaves it unchanged.
func (m Model) handleEditMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.keyMappings.Commit:
		id := m.uiState.EditingID()
		if _, err := m.todos.UpdateTitle(m.ctx, id, m.editor.Value()); err != nil {
			m.fail("edit", err)
		}
		m.closeEditor()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case m.keyMappings.Cancel:
		m.closeEditor()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) closeEditor() {
	m.editor.Blur()
	m.editor.SetValue("")
	m.uiState.SetMode(state.NormalMode)
	m.uiState.ClampCursor(len(m.visible()))
}

// fail logs err and shows it under the list
func (m Model) fail(action string, err error) {
	slog.Error("todo operation failed", "action", action, "error", err)
	m.notificationState.Add(state.LevelError, err.Error())
}

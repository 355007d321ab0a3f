// Package tui is the interactive todo list.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/models"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
	"github.com/thenoetrevino/todos/internal/tui/state"
	"github.com/thenoetrevino/todos/internal/tui/theme"
)

const inputPlaceholder = "What needs to be done?"

// Model represents the application state for the TUI
type Model struct {
	ctx         context.Context
	todos       *todoservice.Collection
	board       *board
	unsubscribe func()

	keyMappings config.KeyMappings
	keys        keyMap
	help        help.Model
	styles      theme.Styles

	input  textinput.Model // new todo
	editor textinput.Model // retitle selected todo

	uiState           *state.UIState
	notificationState *state.NotificationState
}

// New creates the TUI model and subscribes it to the application's events.
// Call Close once the program exits.
func New(ctx context.Context, a *app.App, cfg *config.Config) Model {
	styles := theme.New(cfg.ColorScheme)

	b := newBoard(styles, a.Todos.All)
	unsubscribe := a.Bus.Subscribe(b)

	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.CharLimit = models.MaxTitleLength
	input.Prompt = "> "

	editor := textinput.New()
	editor.CharLimit = models.MaxTitleLength
	editor.Prompt = "~ "

	uiState := state.NewUIState()

	return Model{
		ctx:               ctx,
		todos:             a.Todos,
		board:             b,
		unsubscribe:       unsubscribe,
		keyMappings:       cfg.KeyMappings,
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
		styles:            styles,
		input:             input,
		editor:            editor,
		uiState:           uiState,
		notificationState: state.NewNotificationState(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Close detaches the model from the event bus
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// selected returns the id under the cursor, or "" for an empty view
func (m Model) selected() string {
	ids := m.visible()
	if len(ids) == 0 {
		return ""
	}
	m.uiState.ClampCursor(len(ids))
	return ids[m.uiState.Cursor()]
}

func (m Model) visible() []string {
	return m.board.visible(m.uiState.Filter().Keep)
}

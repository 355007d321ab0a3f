package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/todos/internal/config"
)

// keyMap describes the normal-mode bindings for the help line
type keyMap struct {
	New            key.Binding
	Toggle         key.Binding
	Edit           key.Binding
	Delete         key.Binding
	ClearCompleted key.Binding
	ToggleAll      key.Binding
	Filter         key.Binding
	Up             key.Binding
	Down           key.Binding
	Quit           key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		New:            key.NewBinding(key.WithKeys(km.NewTodo), key.WithHelp(km.NewTodo, "new")),
		Toggle:         key.NewBinding(key.WithKeys(km.ToggleTodo), key.WithHelp(km.ToggleTodo, "toggle")),
		Edit:           key.NewBinding(key.WithKeys(km.EditTodo, km.Commit), key.WithHelp(km.EditTodo, "edit")),
		Delete:         key.NewBinding(key.WithKeys(km.DeleteTodo), key.WithHelp(km.DeleteTodo, "delete")),
		ClearCompleted: key.NewBinding(key.WithKeys(km.ClearCompleted), key.WithHelp(km.ClearCompleted, "clear done")),
		ToggleAll:      key.NewBinding(key.WithKeys(km.ToggleAll), key.WithHelp(km.ToggleAll, "toggle all")),
		Filter:         key.NewBinding(key.WithKeys(km.CycleFilter), key.WithHelp(km.CycleFilter, "filter")),
		Up:             key.NewBinding(key.WithKeys(km.PrevTodo, "up"), key.WithHelp(km.PrevTodo, "up")),
		Down:           key.NewBinding(key.WithKeys(km.NextTodo, "down"), key.WithHelp(km.NextTodo, "down")),
		Quit:           key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Toggle, k.Edit, k.Delete, k.Filter, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.New, k.Toggle, k.Edit, k.Delete},
		{k.ClearCompleted, k.ToggleAll, k.Filter, k.Quit},
	}
}

package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todos/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

func (m Model) render() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("todos"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	stats := m.todos.Stats()
	if stats.Total > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderToggleAll(stats.AllDone()))
		b.WriteString("\n")
		b.WriteString(m.renderRows())
		b.WriteString(m.renderFooter(stats.Remaining, stats.Done))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	for _, n := range m.notificationState.All() {
		b.WriteString("\n")
		if n.Level == state.LevelError {
			b.WriteString(m.styles.Error.Render("error: " + n.Message))
		} else {
			b.WriteString(m.styles.Info.Render(n.Message))
		}
	}

	return b.String()
}

func (m Model) renderToggleAll(allDone bool) string {
	if allDone {
		return m.styles.Check.Render("[x]") + " " + m.styles.Placeholder.Render("mark all as open")
	}
	return m.styles.Box.Render("[ ]") + " " + m.styles.Placeholder.Render("mark all as complete")
}

func (m Model) renderRows() string {
	var b strings.Builder
	ids := m.visible()
	m.uiState.ClampCursor(len(ids))
	normal := m.uiState.Mode() == state.NormalMode

	for i, id := range ids {
		switch {
		case m.uiState.Mode() == state.EditMode && m.uiState.EditingID() == id:
			b.WriteString("  ")
			b.WriteString(m.styles.Editing.Render(m.editor.View()))
		case normal && i == m.uiState.Cursor():
			b.WriteString(m.styles.Cursor.Render("> "))
			b.WriteString(m.styles.Selected.Render(m.board.row(id)))
		default:
			b.WriteString("  ")
			b.WriteString(m.board.row(id))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFooter(remaining, done int) string {
	item := "items"
	if remaining == 1 {
		item = "item"
	}
	parts := []string{fmt.Sprintf("%d %s left", remaining, item)}

	tabs := make([]string, 0, len(state.Filters))
	for _, f := range state.Filters {
		if f == m.uiState.Filter() {
			tabs = append(tabs, m.styles.ActiveTab.Render(f.String()))
		} else {
			tabs = append(tabs, f.String())
		}
	}
	parts = append(parts, strings.Join(tabs, " "))

	if done > 0 {
		parts = append(parts, fmt.Sprintf("clear completed (%d)", done))
	}

	return m.styles.Footer.Render(strings.Join(parts, "  |  "))
}

package theme

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todos/internal/config"
)

// Styles holds every lipgloss style the TUI renders with
type Styles struct {
	Header      lipgloss.Style
	Placeholder lipgloss.Style
	Open        lipgloss.Style // title of an open todo
	Done        lipgloss.Style // title of a completed todo
	Check       lipgloss.Style // the [x] of a completed todo
	Box         lipgloss.Style // the [ ] of an open todo
	Selected    lipgloss.Style
	Cursor      lipgloss.Style
	Editing     lipgloss.Style
	Footer      lipgloss.Style
	ActiveTab   lipgloss.Style
	Error       lipgloss.Style
	Info        lipgloss.Style
}

// New builds the TUI styles from a color scheme
func New(colors config.ColorScheme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)).
			MarginBottom(1),
		Placeholder: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(colors.Subtle)),
		Open: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Normal)),
		Done: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color(colors.Subtle)),
		Check: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Done)),
		Box: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(colors.Selected)),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Accent)),
		Editing: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Edit)),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)).
			MarginTop(1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color(colors.Accent)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.ErrorFg)),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Accent)),
	}
}

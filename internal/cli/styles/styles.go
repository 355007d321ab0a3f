package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/config/colors"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	OrderStyle    lipgloss.Style // the number a todo is addressed by
	ValueStyle    lipgloss.Style

	// Status styles
	DoneStyle    lipgloss.Style
	OpenStyle    lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	OrderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Done))

	OpenStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Done))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// Checkbox renders "[x]" or "[ ]"
func Checkbox(done bool) string {
	if done {
		return DoneStyle.Render("[x]")
	}
	return OpenStyle.Render("[ ]")
}

// RenderTodoLine renders a todo as "  3 [x] title". The title is left
// unstyled so it stays greppable.
func RenderTodoLine(order int, title string, done bool) string {
	return fmt.Sprintf("%s %s %s", OrderStyle.Render(fmt.Sprintf("%3d", order)), Checkbox(done), title)
}

// RenderCount renders a label and count such as "Remaining: 2"
func RenderCount(label string, n int) string {
	return SubtitleStyle.Render(label+":") + " " + ValueStyle.Render(fmt.Sprint(n))
}

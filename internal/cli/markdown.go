package cli

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/todos/internal/models"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// ChecklistMarkdown writes todos as a GitHub-style task list under heading
func ChecklistMarkdown(heading string, todos []*models.Todo) string {
	var b strings.Builder
	b.WriteString("# " + heading + "\n\n")
	if len(todos) == 0 {
		b.WriteString("_Nothing to do._\n")
		return b.String()
	}
	for _, t := range todos {
		box := "[ ]"
		if t.Done {
			box = "[x]"
		}
		b.WriteString("- " + box + " " + escapeMarkdown(t.Title) + "\n")
	}
	return b.String()
}

// RenderChecklist renders todos as a markdown checklist for the terminal.
// If rendering fails the raw markdown is returned.
func RenderChecklist(heading string, todos []*models.Todo, width int) string {
	md := ChecklistMarkdown(heading, todos)
	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(rendered)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "#", `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

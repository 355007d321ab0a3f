package tui

import (
	"sort"

	"github.com/thenoetrevino/todos/internal/events"
	"github.com/thenoetrevino/todos/internal/models"
	"github.com/thenoetrevino/todos/internal/tui/theme"
)

// board keeps one rendered row per todo, keyed by id.
// It listens to the collection's events and touches only the rows an event
// names: Added renders one row, Removed drops one, Changed re-renders one and
// Reset rebuilds everything from source.
type board struct {
	styles theme.Styles
	source func() []*models.Todo

	ids   []string // ascending by order
	todos map[string]models.Todo
	rows  map[string]string

	// renders counts row renders, for tests
	renders int
}

func newBoard(styles theme.Styles, source func() []*models.Todo) *board {
	b := &board{
		styles: styles,
		source: source,
	}
	b.rebuild()
	return b
}

// HandleEvent implements events.Listener
func (b *board) HandleEvent(event events.Event) {
	switch event.Kind {
	case events.Added:
		b.put(event.Todo)
		b.ids = append(b.ids, event.Todo.ID)
		b.sortIDs()
	case events.Removed:
		b.drop(event.Todo.ID)
	case events.Changed:
		if _, ok := b.todos[event.Todo.ID]; ok {
			b.put(event.Todo)
		}
	case events.Reset:
		b.rebuild()
	}
}

func (b *board) rebuild() {
	b.ids = nil
	b.todos = make(map[string]models.Todo)
	b.rows = make(map[string]string)
	if b.source == nil {
		return
	}
	for _, t := range b.source() {
		b.put(*t)
		b.ids = append(b.ids, t.ID)
	}
	b.sortIDs()
}

func (b *board) put(t models.Todo) {
	b.todos[t.ID] = t
	b.rows[t.ID] = b.render(t)
	b.renders++
}

func (b *board) drop(id string) {
	delete(b.todos, id)
	delete(b.rows, id)
	for i, existing := range b.ids {
		if existing == id {
			b.ids = append(b.ids[:i], b.ids[i+1:]...)
			return
		}
	}
}

func (b *board) sortIDs() {
	sort.SliceStable(b.ids, func(i, j int) bool {
		return b.todos[b.ids[i]].Order < b.todos[b.ids[j]].Order
	})
}

func (b *board) render(t models.Todo) string {
	if t.Done {
		return b.styles.Check.Render("[x]") + " " + b.styles.Done.Render(t.Title)
	}
	return b.styles.Box.Render("[ ]") + " " + b.styles.Open.Render(t.Title)
}

// visible returns the ids that pass keep, in display order
func (b *board) visible(keep func(done bool) bool) []string {
	ids := make([]string, 0, len(b.ids))
	for _, id := range b.ids {
		if keep(b.todos[id].Done) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (b *board) row(id string) string {
	return b.rows[id]
}

func (b *board) todo(id string) (models.Todo, bool) {
	t, ok := b.todos[id]
	return t, ok
}

func (b *board) len() int {
	return len(b.ids)
}

// Package todo holds the todo collection: the ordered, persisted set of todos
// that the presentation layer binds to.
package todo

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/thenoetrevino/todos/internal/events"
	"github.com/thenoetrevino/todos/internal/models"
	"github.com/thenoetrevino/todos/internal/storage"
)

// Collection is the authoritative, ordered set of todos.
//
// Every mutation writes to the store first and only then touches the
// in-memory set and publishes an event, so a store failure leaves the
// collection exactly as it was. A Collection has a single writer and is not
// safe for concurrent use.
type Collection struct {
	store     storage.Store
	publisher events.Publisher
	todos     []*models.Todo // sorted by Order

	// highest order handed out since the collection was created; Fetch keeps it
	issued int
}

// NewCollection creates an empty collection over store. publisher may be nil.
func NewCollection(store storage.Store, publisher events.Publisher) (*Collection, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	return &Collection{
		store:     store,
		publisher: publisher,
	}, nil
}

// NextOrder returns the order key for the next todo: one past the largest
// live order, or 1 for a collection that has held no todo in this process.
// An order destroyed in this process is never handed out again, even when it
// was the largest, so a collection emptied by Destroy continues from the
// highest order it issued.
func (c *Collection) NextOrder() int {
	top := c.issued
	if n := len(c.todos); n > 0 && c.todos[n-1].Order > top {
		top = c.todos[n-1].Order
	}
	if top < models.FirstOrder {
		return models.FirstOrder
	}
	return top + 1
}

// Create builds a todo at NextOrder, persists it and appends it
func (c *Collection) Create(ctx context.Context, opts ...models.Option) (*models.Todo, error) {
	t := models.NewTodo(c.NextOrder(), opts...)
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.Save(ctx, t); err != nil {
		slog.Error("failed to save new todo", "order", t.Order, "error", err)
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	c.insert(t)
	c.issued = max(c.issued, t.Order)
	slog.Debug("todo created", "id", t.ID, "order", t.Order)
	events.Publish(c.publisher, events.NewAdded(t))

	return t.Clone(), nil
}

// Fetch replaces the in-memory set with everything in the store and emits a
// single Reset rather than one event per todo.
func (c *Collection) Fetch(ctx context.Context) error {
	loaded, err := c.store.Load(ctx)
	if err != nil {
		slog.Error("failed to load todos", "error", err)
		return fmt.Errorf("failed to fetch todos: %w", err)
	}

	sort.SliceStable(loaded, func(i, j int) bool {
		return loaded[i].Order < loaded[j].Order
	})
	c.todos = loaded

	slog.Debug("todos fetched", "count", len(loaded))
	events.Publish(c.publisher, events.NewReset())

	return nil
}

// Toggle flips the done flag of the todo with the given id
func (c *Collection) Toggle(ctx context.Context, id string) (*models.Todo, error) {
	t, ok := c.find(id)
	if !ok {
		return nil, ErrTodoNotFound
	}

	updated := t.Clone()
	updated.Done = !t.Done
	if err := c.save(ctx, t, updated); err != nil {
		return nil, err
	}
	return t.Clone(), nil
}

// SetDone sets the done flag; a todo already in that state is left untouched
// and no event fires
func (c *Collection) SetDone(ctx context.Context, id string, done bool) (*models.Todo, error) {
	t, ok := c.find(id)
	if !ok {
		return nil, ErrTodoNotFound
	}
	if t.Done == done {
		return t.Clone(), nil
	}
	return c.Toggle(ctx, id)
}

// UpdateTitle retitles a todo. A title that is empty after trimming destroys
// the todo instead; the returned todo is then nil.
func (c *Collection) UpdateTitle(ctx context.Context, id, title string) (*models.Todo, error) {
	t, ok := c.find(id)
	if !ok {
		return nil, ErrTodoNotFound
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, c.Destroy(ctx, id)
	}
	if err := models.ValidateTitle(title); err != nil {
		return nil, err
	}
	if title == t.Title {
		return t.Clone(), nil
	}

	updated := t.Clone()
	updated.Title = title
	if err := c.save(ctx, t, updated); err != nil {
		return nil, err
	}
	return t.Clone(), nil
}

// Destroy removes the todo from the store and from the collection
func (c *Collection) Destroy(ctx context.Context, id string) error {
	i, ok := c.indexOf(id)
	if !ok {
		return ErrTodoNotFound
	}
	t := c.todos[i]

	if err := c.store.Delete(ctx, t); err != nil {
		slog.Error("failed to delete todo", "id", id, "error", err)
		return fmt.Errorf("failed to destroy todo: %w", err)
	}

	c.todos = append(c.todos[:i], c.todos[i+1:]...)
	slog.Debug("todo destroyed", "id", id, "order", t.Order)
	events.Publish(c.publisher, events.NewRemoved(t))

	return nil
}

// ClearCompleted destroys every done todo and returns how many went.
// It stops at the first store failure; todos destroyed before it stay destroyed.
func (c *Collection) ClearCompleted(ctx context.Context) (int, error) {
	cleared := 0
	for _, t := range c.Done() {
		if err := c.Destroy(ctx, t.ID); err != nil {
			return cleared, err
		}
		cleared++
	}
	return cleared, nil
}

// ToggleAll marks every todo done (or not done) and returns how many changed.
// It stops at the first store failure.
func (c *Collection) ToggleAll(ctx context.Context, done bool) (int, error) {
	changed := 0
	for _, t := range c.All() {
		if t.Done == done {
			continue
		}
		if _, err := c.Toggle(ctx, t.ID); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

// save persists updated and, on success, copies it over current and emits Changed
func (c *Collection) save(ctx context.Context, current, updated *models.Todo) error {
	if err := c.store.Save(ctx, updated); err != nil {
		slog.Error("failed to save todo", "id", current.ID, "error", err)
		return fmt.Errorf("failed to save todo: %w", err)
	}

	*current = *updated
	slog.Debug("todo changed", "id", current.ID, "done", current.Done)
	events.Publish(c.publisher, events.NewChanged(current))
	return nil
}

// insert places t by order. Creates always land at the end; the search only
// matters for records whose order was supplied from outside.
func (c *Collection) insert(t *models.Todo) {
	i := sort.Search(len(c.todos), func(i int) bool {
		return c.todos[i].Order > t.Order
	})
	c.todos = append(c.todos, nil)
	copy(c.todos[i+1:], c.todos[i:])
	c.todos[i] = t
}

func (c *Collection) indexOf(id string) (int, bool) {
	for i, t := range c.todos {
		if t.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (c *Collection) find(id string) (*models.Todo, bool) {
	i, ok := c.indexOf(id)
	if !ok {
		return nil, false
	}
	return c.todos[i], true
}

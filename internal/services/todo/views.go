package todo

import "github.com/thenoetrevino/todos/internal/models"

// All returns copies of every todo in ascending order
func (c *Collection) All() []*models.Todo {
	return c.where(func(*models.Todo) bool { return true })
}

// Done returns the completed todos in ascending order.
// Recomputed on every call.
func (c *Collection) Done() []*models.Todo {
	return c.where(func(t *models.Todo) bool { return t.Done })
}

// Remaining returns the open todos in ascending order.
// Recomputed on every call.
func (c *Collection) Remaining() []*models.Todo {
	return c.where(func(t *models.Todo) bool { return !t.Done })
}

// Len returns the number of todos
func (c *Collection) Len() int {
	return len(c.todos)
}

// Get returns a copy of the todo with the given id
func (c *Collection) Get(id string) (*models.Todo, error) {
	t, ok := c.find(id)
	if !ok {
		return nil, ErrTodoNotFound
	}
	return t.Clone(), nil
}

// ByOrder returns a copy of the todo holding the given order key.
// The CLI addresses todos this way because orders are small and stable.
func (c *Collection) ByOrder(order int) (*models.Todo, error) {
	for _, t := range c.todos {
		if t.Order == order {
			return t.Clone(), nil
		}
	}
	return nil, ErrTodoNotFound
}

// Stats counts total, done and remaining todos
func (c *Collection) Stats() models.Stats {
	s := models.Stats{Total: len(c.todos)}
	for _, t := range c.todos {
		if t.Done {
			s.Done++
		}
	}
	s.Remaining = s.Total - s.Done
	return s
}

func (c *Collection) where(keep func(*models.Todo) bool) []*models.Todo {
	out := make([]*models.Todo, 0, len(c.todos))
	for _, t := range c.todos {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}

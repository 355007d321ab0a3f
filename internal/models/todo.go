package models

// Todo is a single to-do item in a collection
type Todo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
	Order int    `json:"order"`
}

// Option sets an optional field on a Todo under construction
type Option func(*Todo)

// WithTitle overrides the placeholder title
func WithTitle(title string) Option {
	return func(t *Todo) {
		t.Title = title
	}
}

// WithDone overrides the default completion flag (false)
func WithDone(done bool) Option {
	return func(t *Todo) {
		t.Done = done
	}
}

// NewTodo builds an unsaved Todo at the given order.
// Defaults: Title is DefaultTitle, Done is false, ID is empty until the store saves it.
func NewTodo(order int, opts ...Option) *Todo {
	t := &Todo{
		Title: DefaultTitle,
		Order: order,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Clone returns a copy that shares no state with t
func (t *Todo) Clone() *Todo {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// IsNew reports whether the todo has never been persisted
func (t *Todo) IsNew() bool {
	return t.ID == ""
}

// Stats summarizes a collection for footers and the stats command
type Stats struct {
	Total     int `json:"total"`
	Done      int `json:"done"`
	Remaining int `json:"remaining"`
}

// AllDone reports whether every todo is complete (false for an empty list)
func (s Stats) AllDone() bool {
	return s.Total > 0 && s.Remaining == 0
}

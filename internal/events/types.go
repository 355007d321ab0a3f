package events

import "github.com/thenoetrevino/todos/internal/models"

// Kind indicates what happened to the collection
type Kind int

const (
	// Added fires once per created todo
	Added Kind = iota + 1
	// Removed fires once per destroyed todo
	Removed
	// Reset fires once after a bulk load replaces the whole collection
	Reset
	// Changed fires when a single todo's fields were updated
	Changed
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "add"
	case Removed:
		return "remove"
	case Reset:
		return "reset"
	case Changed:
		return "change"
	default:
		return "unknown"
	}
}

// Event is a collection change notification.
// Todo holds a snapshot of the affected record; it is the zero value for Reset.
type Event struct {
	Kind     Kind
	Todo     models.Todo
	Sequence int64 // Assigned by the bus, strictly increasing in delivery order
}

// TodoID returns the id of the affected record, or "" for Reset
func (e Event) TodoID() string {
	return e.Todo.ID
}

// NewAdded builds an Added event for t
func NewAdded(t *models.Todo) Event {
	return Event{Kind: Added, Todo: *t}
}

// NewRemoved builds a Removed event for t
func NewRemoved(t *models.Todo) Event {
	return Event{Kind: Removed, Todo: *t}
}

// NewChanged builds a Changed event for t
func NewChanged(t *models.Todo) Event {
	return Event{Kind: Changed, Todo: *t}
}

// NewReset builds a Reset event
func NewReset() Event {
	return Event{Kind: Reset}
}

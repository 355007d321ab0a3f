package events

import (
	"log/slog"
	"reflect"
)

// Publish sends event through p, skipping silently when there is no publisher
// (e.g. in tests or one-shot CLI runs that nobody listens to).
func Publish(p Publisher, event Event) {
	if isNil(p) {
		return
	}

	slog.Debug("publishing todo event",
		"kind", event.Kind.String(),
		"todo_id", event.TodoID(),
		"order", event.Todo.Order)

	p.Publish(event)
}

// isNil catches both a nil interface and a typed nil pointer stored in one
func isNil(p Publisher) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

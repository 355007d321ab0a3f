package todo

import "errors"

// Todo collection errors
var (
	// ErrTodoNotFound is returned for ids that are not in the collection,
	// including ids of todos that were already destroyed
	ErrTodoNotFound = errors.New("todo not found")

	// ErrNilStore is returned by NewCollection when no store is given
	ErrNilStore = errors.New("todo collection requires a store")
)

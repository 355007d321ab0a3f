package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todos/internal/models"
)

func TestBusDeliversInOrder(t *testing.T) {
	bus := NewBus()
	rec := NewRecorder()
	bus.Subscribe(rec)

	todo := &models.Todo{ID: "1", Title: "A", Order: 1}
	bus.Publish(NewAdded(todo))
	bus.Publish(NewChanged(todo))
	bus.Publish(NewRemoved(todo))
	bus.Publish(NewReset())

	assert.Equal(t, []Kind{Added, Changed, Removed, Reset}, rec.Kinds())

	got := rec.Events()
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i].Sequence, got[i-1].Sequence, "sequence must increase")
	}
}

func TestBusFansOutInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var calls []string
	bus.Subscribe(ListenerFunc(func(Event) { calls = append(calls, "first") }))
	bus.Subscribe(ListenerFunc(func(Event) { calls = append(calls, "second") }))

	bus.Publish(NewReset())

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	rec := NewRecorder()
	unsubscribe := bus.Subscribe(rec)
	require.Equal(t, 1, bus.Len())

	unsubscribe()
	unsubscribe() // second call is a no-op
	bus.Publish(NewReset())

	assert.Empty(t, rec.Events())
	assert.Equal(t, 0, bus.Len())
}

func TestBusUnsubscribeFromHandler(t *testing.T) {
	bus := NewBus()
	count := 0
	var unsubscribe func()
	unsubscribe = bus.Subscribe(ListenerFunc(func(Event) {
		count++
		unsubscribe()
	}))

	bus.Publish(NewReset())
	bus.Publish(NewReset())

	assert.Equal(t, 1, count)
}

func TestNilBusPublishIsNoop(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() { bus.Publish(NewReset()) })
}

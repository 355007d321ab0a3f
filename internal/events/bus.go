package events

import "sync"

type subscription struct {
	id       int
	listener Listener
}

// Bus fans events out to subscribed listeners.
// Publish runs every listener to completion before returning, so a listener
// always observes the collection as of the mutation that triggered it.
type Bus struct {
	mu       sync.Mutex
	subs     []subscription
	nextID   int
	sequence int64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers l and returns a function that removes it again.
// Calling the returned function more than once is a no-op.
func (b *Bus) Subscribe(l Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, listener: l})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish stamps the event with the next sequence number and delivers it
// to a snapshot of the current listeners, in subscription order.
// Listeners may subscribe or unsubscribe from inside HandleEvent.
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}

	b.mu.Lock()
	b.sequence++
	event.Sequence = b.sequence
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.listener.HandleEvent(event)
	}
}

// Len returns the number of subscribed listeners
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

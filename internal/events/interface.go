package events

// Publisher delivers collection events to whoever is listening.
// Depending on this instead of *Bus keeps the collection testable.
type Publisher interface {
	Publish(event Event)
}

// Listener receives events synchronously, in the order they were published
type Listener interface {
	HandleEvent(event Event)
}

// ListenerFunc adapts a plain function to the Listener interface
type ListenerFunc func(event Event)

// HandleEvent calls f(event)
func (f ListenerFunc) HandleEvent(event Event) {
	f(event)
}

// Compile-time verification that *Bus implements Publisher
var _ Publisher = (*Bus)(nil)

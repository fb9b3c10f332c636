package pubsub

import "github.com/google/uuid"

// Subscriber receives events of the categories it is registered under.
//
// The ID must be stable for the life of the subscriber and unique among
// the live registrations of any one category; the host supplies it, the
// bus never generates identifiers. OnEvent returns a Directive telling
// the bus how to continue the pass.
//
// Subscribers registered on the shared bus flavors must be safe to
// invoke from multiple goroutines.
type Subscriber[C comparable, E Event[C]] interface {
	// ID returns the subscriber's unique identifier.
	ID() uuid.UUID

	// OnEvent handles a dispatched event and returns a Directive.
	OnEvent(event E) Directive
}

// subscriberFunc adapts a plain function to the Subscriber interface.
type subscriberFunc[C comparable, E Event[C]] struct {
	id uuid.UUID
	fn func(event E) Directive
}

// SubscriberFunc wraps fn as a Subscriber with the given identifier.
func SubscriberFunc[C comparable, E Event[C]](id uuid.UUID, fn func(event E) Directive) Subscriber[C, E] {
	return &subscriberFunc[C, E]{id: id, fn: fn}
}

// ID returns the subscriber's unique identifier.
func (s *subscriberFunc[C, E]) ID() uuid.UUID {
	return s.id
}

// OnEvent invokes the wrapped function.
func (s *subscriberFunc[C, E]) OnEvent(event E) Directive {
	return s.fn(event)
}

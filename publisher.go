package pubsub

// Dispatcher is the publishing surface shared by all four bus flavors.
type Dispatcher[C comparable, E Event[C]] interface {
	Publish(event E) Summary
}

// Publisher submits events into a bus. Implementations may add
// cross-cutting behavior around the bus call — logging, metrics,
// filtering — but the dispatch algorithm itself belongs to the bus and
// is not overridable. See the observe package for ready-made wrappers.
type Publisher[C comparable, E Event[C]] interface {
	PublishEvent(event E, bus Dispatcher[C, E]) Summary
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc[C comparable, E Event[C]] func(event E, bus Dispatcher[C, E]) Summary

// PublishEvent invokes the wrapped function.
func (f PublisherFunc[C, E]) PublishEvent(event E, bus Dispatcher[C, E]) Summary {
	return f(event, bus)
}

// Forward is the default publisher: it hands the event straight to the
// bus. Wrapper publishers typically sit in front of a Forward.
type Forward[C comparable, E Event[C]] struct{}

// PublishEvent forwards event to bus.Publish.
func (Forward[C, E]) PublishEvent(event E, bus Dispatcher[C, E]) Summary {
	return bus.Publish(event)
}

package pubsub

import "github.com/google/uuid"

// PriorityBus is the exclusive-owner, priority-ordered bus flavor.
// Within one category, subscribers are invoked in descending priority
// order; equal priorities keep their subscription order. Like Bus, it
// performs no internal locking.
type PriorityBus[C comparable, E Event[C]] struct {
	reg registry[C, E]
	cfg config
}

// NewPriority creates an empty priority-ordered bus.
func NewPriority[C comparable, E Event[C]](opts ...Option) *PriorityBus[C, E] {
	return &PriorityBus[C, E]{
		reg: newRegistry[C, E](true),
		cfg: newConfig(opts),
	}
}

// Subscribe registers sub in the category's sequence at the position
// its priority dictates. Subscribing an identifier already present in
// the category is a no-op reported as ErrAlreadySubscribed; the
// existing priority is not updated.
func (b *PriorityBus[C, E]) Subscribe(sub Subscriber[C, E], category C, priority int) error {
	if sub == nil {
		return ErrNilSubscriber
	}
	return b.reg.add(Strong(sub), category, priority)
}

// SubscribeRef registers a caller-built Ref with the given priority.
func (b *PriorityBus[C, E]) SubscribeRef(ref Ref[C, E], category C, priority int) error {
	if ref == nil {
		return ErrNilSubscriber
	}
	return b.reg.add(ref, category, priority)
}

// Unsubscribe removes the registration for id in category. Removing an
// absent entry is a no-op; the return value reports whether an entry
// was present.
func (b *PriorityBus[C, E]) Unsubscribe(id uuid.UUID, category C) bool {
	return b.reg.remove(id, category)
}

// UnsubscribeAll removes id from every category, returning the number
// of registrations removed.
func (b *PriorityBus[C, E]) UnsubscribeAll(id uuid.UUID) int {
	return b.reg.removeAll(id)
}

// Clear drops every registration.
func (b *PriorityBus[C, E]) Clear() {
	b.reg.clear()
}

// ClearCategory drops every registration in category.
func (b *PriorityBus[C, E]) ClearCategory(category C) {
	b.reg.clearCategory(category)
}

// SubscriberCount returns the number of registrations in category.
func (b *PriorityBus[C, E]) SubscriberCount(category C) int {
	return b.reg.count(category)
}

// IsSubscribed reports whether id is registered in category.
func (b *PriorityBus[C, E]) IsSubscribed(id uuid.UUID, category C) bool {
	return b.reg.subscribed(id, category)
}

// Publish dispatches event to the subscribers of its category in
// descending priority order. Dispatch semantics are otherwise identical
// to Bus.Publish.
func (b *PriorityBus[C, E]) Publish(event E) Summary {
	category := event.Category()
	pass := b.reg.snapshot(category)
	if len(pass) == 0 {
		return Summary{}
	}
	return runPass(pass, event, category, func(id uuid.UUID, c C) {
		b.reg.remove(id, c)
	}, b.cfg.panicHandler)
}

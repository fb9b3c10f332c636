package pubsub

import "github.com/google/uuid"

// Bus is the exclusive-owner, insertion-ordered bus flavor. It performs
// no internal locking: the host must ensure only one logical owner uses
// the bus at a time. For concurrent hosts, use SharedBus.
//
// Within one category, subscribers are invoked in the order they
// subscribed.
type Bus[C comparable, E Event[C]] struct {
	reg registry[C, E]
	cfg config
}

// New creates an empty insertion-ordered bus.
func New[C comparable, E Event[C]](opts ...Option) *Bus[C, E] {
	return &Bus[C, E]{
		reg: newRegistry[C, E](false),
		cfg: newConfig(opts),
	}
}

// Subscribe registers sub at the end of the category's sequence. The
// bus shares ownership of sub until it is unsubscribed; use
// SubscribeRef with a Weak ref to avoid that. Subscribing an identifier
// already present in the category is a no-op reported as
// ErrAlreadySubscribed.
func (b *Bus[C, E]) Subscribe(sub Subscriber[C, E], category C) error {
	if sub == nil {
		return ErrNilSubscriber
	}
	return b.reg.add(Strong(sub), category, 0)
}

// SubscribeRef registers a caller-built Ref, giving the host control
// over whether the registration keeps the subscriber reachable.
func (b *Bus[C, E]) SubscribeRef(ref Ref[C, E], category C) error {
	if ref == nil {
		return ErrNilSubscriber
	}
	return b.reg.add(ref, category, 0)
}

// Unsubscribe removes the registration for id in category. Removing an
// absent entry is a no-op; the return value reports whether an entry
// was present.
func (b *Bus[C, E]) Unsubscribe(id uuid.UUID, category C) bool {
	return b.reg.remove(id, category)
}

// UnsubscribeAll removes id from every category, returning the number
// of registrations removed.
func (b *Bus[C, E]) UnsubscribeAll(id uuid.UUID) int {
	return b.reg.removeAll(id)
}

// Clear drops every registration. Subscribers themselves are owned by
// the host and are not affected.
func (b *Bus[C, E]) Clear() {
	b.reg.clear()
}

// ClearCategory drops every registration in category.
func (b *Bus[C, E]) ClearCategory(category C) {
	b.reg.clearCategory(category)
}

// SubscriberCount returns the number of registrations in category.
func (b *Bus[C, E]) SubscriberCount(category C) int {
	return b.reg.count(category)
}

// IsSubscribed reports whether id is registered in category.
func (b *Bus[C, E]) IsSubscribed(id uuid.UUID, category C) bool {
	return b.reg.subscribed(id, category)
}

// Publish dispatches event to the subscribers of its category, in
// order, applying each returned Directive before moving on. The
// sequence is snapshotted at the start of the pass, so mutations made
// during the pass (by directives or by handlers calling back into the
// bus) take effect on the next publish. Publishing to a category with
// no subscribers returns a zero Summary.
func (b *Bus[C, E]) Publish(event E) Summary {
	category := event.Category()
	pass := b.reg.snapshot(category)
	if len(pass) == 0 {
		return Summary{}
	}
	return runPass(pass, event, category, func(id uuid.UUID, c C) {
		b.reg.remove(id, c)
	}, b.cfg.panicHandler)
}

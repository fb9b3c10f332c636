package pubsub

import "weak"

// Ref is the bus's handle to a subscriber. The bus never takes
// exclusive ownership: the host keeps the authoritative reference and a
// Ref only resolves to the subscriber while the host still wants it
// delivered to.
type Ref[C comparable, E Event[C]] interface {
	// Resolve returns the live subscriber, or false if the host has
	// dropped it. Dead refs are lazily pruned during dispatch.
	Resolve() (Subscriber[C, E], bool)
}

// strongRef pins the subscriber for the life of the registration.
type strongRef[C comparable, E Event[C]] struct {
	sub Subscriber[C, E]
}

// Strong returns a Ref that shares ownership of sub. The registration
// keeps the subscriber reachable until it is unsubscribed.
func Strong[C comparable, E Event[C]](sub Subscriber[C, E]) Ref[C, E] {
	return strongRef[C, E]{sub: sub}
}

// Resolve returns the pinned subscriber.
func (r strongRef[C, E]) Resolve() (Subscriber[C, E], bool) {
	return r.sub, r.sub != nil
}

// weakRef tracks a subscriber without keeping it reachable.
type weakRef[C comparable, E Event[C], S any, PS interface {
	*S
	Subscriber[C, E]
}] struct {
	ptr weak.Pointer[S]
}

// Weak returns a Ref that does not keep sub reachable. Once the host
// drops its last strong reference and the subscriber is collected, the
// registration resolves to nothing and is pruned on the next dispatch
// pass touching its category. Preferred over Strong when the subscriber
// holds a reference back to the bus.
//
// The category and event type parameters usually cannot be inferred and
// are given explicitly: pubsub.Weak[MyCategory, MyEvent](sub).
func Weak[C comparable, E Event[C], S any, PS interface {
	*S
	Subscriber[C, E]
}](sub PS) Ref[C, E] {
	return weakRef[C, E, S, PS]{ptr: weak.Make((*S)(sub))}
}

// Resolve returns the subscriber if it is still reachable.
func (r weakRef[C, E, S, PS]) Resolve() (Subscriber[C, E], bool) {
	p := r.ptr.Value()
	if p == nil {
		return nil, false
	}
	return PS(p), true
}

package pubsub

import (
	"sync"

	"github.com/google/uuid"
)

// SharedBus is the synchronized, insertion-ordered bus flavor. Every
// operation is safe to call from multiple goroutines.
//
// Dispatch takes the lock only to snapshot the category's sequence and
// to apply mutations; handlers run outside the lock. A handler may
// therefore call Subscribe, Unsubscribe, or Publish on the same bus
// without deadlocking — such mutations never affect the pass already in
// flight, only later publishes. The flip side is that a subscriber
// unsubscribed concurrently with a publish may still receive that
// publish's event if the pass snapshot was taken first.
type SharedBus[C comparable, E Event[C]] struct {
	mu  sync.RWMutex
	reg registry[C, E]
	cfg config
}

// NewShared creates an empty synchronized insertion-ordered bus.
func NewShared[C comparable, E Event[C]](opts ...Option) *SharedBus[C, E] {
	return &SharedBus[C, E]{
		reg: newRegistry[C, E](false),
		cfg: newConfig(opts),
	}
}

// Subscribe registers sub at the end of the category's sequence.
// Subscribing an identifier already present in the category is a no-op
// reported as ErrAlreadySubscribed.
func (b *SharedBus[C, E]) Subscribe(sub Subscriber[C, E], category C) error {
	if sub == nil {
		return ErrNilSubscriber
	}
	return b.subscribeRef(Strong(sub), category)
}

// SubscribeRef registers a caller-built Ref.
func (b *SharedBus[C, E]) SubscribeRef(ref Ref[C, E], category C) error {
	if ref == nil {
		return ErrNilSubscriber
	}
	return b.subscribeRef(ref, category)
}

func (b *SharedBus[C, E]) subscribeRef(ref Ref[C, E], category C) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reg.add(ref, category, 0)
}

// Unsubscribe removes the registration for id in category. Removing an
// absent entry is a no-op; the return value reports whether an entry
// was present.
func (b *SharedBus[C, E]) Unsubscribe(id uuid.UUID, category C) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reg.remove(id, category)
}

// UnsubscribeAll removes id from every category, returning the number
// of registrations removed.
func (b *SharedBus[C, E]) UnsubscribeAll(id uuid.UUID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reg.removeAll(id)
}

// Clear drops every registration.
func (b *SharedBus[C, E]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reg.clear()
}

// ClearCategory drops every registration in category.
func (b *SharedBus[C, E]) ClearCategory(category C) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reg.clearCategory(category)
}

// SubscriberCount returns the number of registrations in category.
func (b *SharedBus[C, E]) SubscriberCount(category C) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.reg.count(category)
}

// IsSubscribed reports whether id is registered in category.
func (b *SharedBus[C, E]) IsSubscribed(id uuid.UUID, category C) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.reg.subscribed(id, category)
}

// Publish dispatches event to the subscribers of its category as of the
// start of the pass. Concurrent publishes to the same category run
// their handlers concurrently; only snapshotting and registry mutation
// are mutually exclusive.
func (b *SharedBus[C, E]) Publish(event E) Summary {
	category := event.Category()

	b.mu.RLock()
	pass := b.reg.snapshot(category)
	b.mu.RUnlock()

	if len(pass) == 0 {
		return Summary{}
	}
	return runPass(pass, event, category, func(id uuid.UUID, c C) {
		b.mu.Lock()
		b.reg.remove(id, c)
		b.mu.Unlock()
	}, b.cfg.panicHandler)
}

// SharedPriorityBus is the synchronized, priority-ordered bus flavor.
// It combines SharedBus's locking discipline with PriorityBus's
// descending-priority ordering.
type SharedPriorityBus[C comparable, E Event[C]] struct {
	mu  sync.RWMutex
	reg registry[C, E]
	cfg config
}

// NewSharedPriority creates an empty synchronized priority-ordered bus.
func NewSharedPriority[C comparable, E Event[C]](opts ...Option) *SharedPriorityBus[C, E] {
	return &SharedPriorityBus[C, E]{
		reg: newRegistry[C, E](true),
		cfg: newConfig(opts),
	}
}

// Subscribe registers sub in the category's sequence at the position
// its priority dictates. Subscribing an identifier already present in
// the category is a no-op reported as ErrAlreadySubscribed; the
// existing priority is not updated.
func (b *SharedPriorityBus[C, E]) Subscribe(sub Subscriber[C, E], category C, priority int) error {
	if sub == nil {
		return ErrNilSubscriber
	}
	return b.subscribeRef(Strong(sub), category, priority)
}

// SubscribeRef registers a caller-built Ref with the given priority.
func (b *SharedPriorityBus[C, E]) SubscribeRef(ref Ref[C, E], category C, priority int) error {
	if ref == nil {
		return ErrNilSubscriber
	}
	return b.subscribeRef(ref, category, priority)
}

func (b *SharedPriorityBus[C, E]) subscribeRef(ref Ref[C, E], category C, priority int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reg.add(ref, category, priority)
}

// Unsubscribe removes the registration for id in category. Removing an
// absent entry is a no-op; the return value reports whether an entry
// was present.
func (b *SharedPriorityBus[C, E]) Unsubscribe(id uuid.UUID, category C) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reg.remove(id, category)
}

// UnsubscribeAll removes id from every category, returning the number
// of registrations removed.
func (b *SharedPriorityBus[C, E]) UnsubscribeAll(id uuid.UUID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reg.removeAll(id)
}

// Clear drops every registration.
func (b *SharedPriorityBus[C, E]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reg.clear()
}

// ClearCategory drops every registration in category.
func (b *SharedPriorityBus[C, E]) ClearCategory(category C) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reg.clearCategory(category)
}

// SubscriberCount returns the number of registrations in category.
func (b *SharedPriorityBus[C, E]) SubscriberCount(category C) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.reg.count(category)
}

// IsSubscribed reports whether id is registered in category.
func (b *SharedPriorityBus[C, E]) IsSubscribed(id uuid.UUID, category C) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.reg.subscribed(id, category)
}

// Publish dispatches event to the subscribers of its category in
// descending priority order, with SharedBus's locking discipline.
func (b *SharedPriorityBus[C, E]) Publish(event E) Summary {
	category := event.Category()

	b.mu.RLock()
	pass := b.reg.snapshot(category)
	b.mu.RUnlock()

	if len(pass) == 0 {
		return Summary{}
	}
	return runPass(pass, event, category, func(id uuid.UUID, c C) {
		b.mu.Lock()
		b.reg.remove(id, c)
		b.mu.Unlock()
	}, b.cfg.panicHandler)
}

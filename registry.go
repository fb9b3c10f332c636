package pubsub

import (
	"slices"

	"github.com/google/uuid"
)

// entry is one registration in a category's subscriber sequence.
type entry[C comparable, E Event[C]] struct {
	id       uuid.UUID
	ref      Ref[C, E]
	priority int
}

// registry is the category-keyed subscriber table shared by every bus
// flavor. It performs no locking of its own; the exclusive-owner buses
// rely on the host's access discipline and the shared buses wrap each
// call in their own lock.
//
// Invariants: a category's sequence never holds two entries with the
// same identifier, and its order is insertion order (plain) or
// descending priority with ties in insertion order (byPriority).
// Categories with no entries are removed from the table.
type registry[C comparable, E Event[C]] struct {
	channels   map[C][]entry[C, E]
	byPriority bool
}

func newRegistry[C comparable, E Event[C]](byPriority bool) registry[C, E] {
	return registry[C, E]{
		channels:   make(map[C][]entry[C, E]),
		byPriority: byPriority,
	}
}

// add registers ref under category. Duplicate identifiers are a no-op
// reported as ErrAlreadySubscribed.
func (r *registry[C, E]) add(ref Ref[C, E], category C, priority int) error {
	sub, ok := ref.Resolve()
	if !ok {
		return ErrSubscriberGone
	}
	id := sub.ID()

	list := r.channels[category]
	for _, ent := range list {
		if ent.id == id {
			return ErrAlreadySubscribed
		}
	}

	ent := entry[C, E]{id: id, ref: ref, priority: priority}
	if r.byPriority {
		// Insert before the first lower-priority entry so that equal
		// priorities keep their subscription order.
		pos := len(list)
		for i := range list {
			if list[i].priority < priority {
				pos = i
				break
			}
		}
		list = slices.Insert(list, pos, ent)
	} else {
		list = append(list, ent)
	}
	r.channels[category] = list
	return nil
}

// remove drops the registration for id in category, reporting whether
// an entry was present. Removing an absent entry is a no-op.
func (r *registry[C, E]) remove(id uuid.UUID, category C) bool {
	list, ok := r.channels[category]
	if !ok {
		return false
	}
	for i := range list {
		if list[i].id == id {
			list = slices.Delete(list, i, i+1)
			if len(list) == 0 {
				delete(r.channels, category)
			} else {
				r.channels[category] = list
			}
			return true
		}
	}
	return false
}

// removeAll drops id from every category, returning the number of
// registrations removed.
func (r *registry[C, E]) removeAll(id uuid.UUID) int {
	removed := 0
	for category := range r.channels {
		if r.remove(id, category) {
			removed++
		}
	}
	return removed
}

// snapshot returns a copy of the category's sequence. Dispatch iterates
// the copy so that mutations during the pass cannot skip or repeat
// entries that existed when the pass began.
func (r *registry[C, E]) snapshot(category C) []entry[C, E] {
	return slices.Clone(r.channels[category])
}

// count returns the number of registrations in category.
func (r *registry[C, E]) count(category C) int {
	return len(r.channels[category])
}

// subscribed reports whether id is registered in category.
func (r *registry[C, E]) subscribed(id uuid.UUID, category C) bool {
	for _, ent := range r.channels[category] {
		if ent.id == id {
			return true
		}
	}
	return false
}

// clear drops every registration.
func (r *registry[C, E]) clear() {
	clear(r.channels)
}

// clearCategory drops every registration in category.
func (r *registry[C, E]) clearCategory(category C) {
	delete(r.channels, category)
}

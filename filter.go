package pubsub

// Predicate reports whether an event should be published.
type Predicate[C comparable, E Event[C]] func(event E) bool

// All combines predicates with AND. With no predicates it allows
// everything.
func All[C comparable, E Event[C]](preds ...Predicate[C, E]) Predicate[C, E] {
	return func(event E) bool {
		for _, p := range preds {
			if !p(event) {
				return false
			}
		}
		return true
	}
}

// Any combines predicates with OR. With no predicates it allows
// nothing.
func Any[C comparable, E Event[C]](preds ...Predicate[C, E]) Predicate[C, E] {
	return func(event E) bool {
		for _, p := range preds {
			if p(event) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not[C comparable, E Event[C]](pred Predicate[C, E]) Predicate[C, E] {
	return func(event E) bool {
		return !pred(event)
	}
}

// ByCategory allows only events whose category is in the given set.
func ByCategory[C comparable, E Event[C]](categories ...C) Predicate[C, E] {
	set := make(map[C]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return func(event E) bool {
		_, ok := set[event.Category()]
		return ok
	}
}

// FilteredPublisher gates events through a predicate before handing
// them to the next publisher. Filtered-out events return a zero
// Summary.
type FilteredPublisher[C comparable, E Event[C]] struct {
	next Publisher[C, E]
	pred Predicate[C, E]
}

// Filtered wraps next with a predicate gate. A nil predicate allows
// everything.
func Filtered[C comparable, E Event[C]](next Publisher[C, E], pred Predicate[C, E]) *FilteredPublisher[C, E] {
	return &FilteredPublisher[C, E]{next: next, pred: pred}
}

// PublishEvent forwards event only if the predicate allows it.
func (p *FilteredPublisher[C, E]) PublishEvent(event E, bus Dispatcher[C, E]) Summary {
	if p.pred != nil && !p.pred(event) {
		return Summary{}
	}
	return p.next.PublishEvent(event, bus)
}

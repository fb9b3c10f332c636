package pubsub

// Directive is the instruction a subscriber returns after handling an
// event. The bus applies it before moving to the next subscriber in the
// pass.
type Directive int

const (
	// NoActionNeeded continues the pass with no registry mutation.
	NoActionNeeded Directive = iota

	// UnsubscribeMe removes the subscriber from the category the event
	// was dispatched on. Registrations in other categories are untouched.
	UnsubscribeMe

	// StopPropagation ends the pass; remaining subscribers do not see
	// the event.
	StopPropagation

	// UnsubscribeMeAndStop combines UnsubscribeMe and StopPropagation.
	UnsubscribeMeAndStop

	// DispatchFailed reports that the subscriber could not handle the
	// event. The failure is counted in the pass Summary and the pass
	// continues.
	DispatchFailed
)

// String returns a human-readable directive name.
func (d Directive) String() string {
	switch d {
	case NoActionNeeded:
		return "no-action"
	case UnsubscribeMe:
		return "unsubscribe"
	case StopPropagation:
		return "stop"
	case UnsubscribeMeAndStop:
		return "unsubscribe-and-stop"
	case DispatchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

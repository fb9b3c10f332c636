package pubsub

import "errors"

// Sentinel errors for subscription management. Dispatch itself never
// errors: publishing to an empty category and unsubscribing an absent
// entry are both ordinary no-ops.
var (
	// ErrAlreadySubscribed is returned when the subscriber's identifier
	// is already registered in the target category. The existing
	// registration is left untouched; in particular its priority is not
	// updated.
	ErrAlreadySubscribed = errors.New("subscriber already subscribed to category")

	// ErrNilSubscriber is returned when a nil subscriber or ref is given
	// to Subscribe.
	ErrNilSubscriber = errors.New("subscriber cannot be nil")

	// ErrSubscriberGone is returned when a weak ref is already dead at
	// subscribe time.
	ErrSubscriberGone = errors.New("subscriber reference is no longer alive")
)

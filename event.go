package pubsub

import (
	"time"

	"github.com/google/uuid"
)

// timeNow is a variable to allow testing with fixed timestamps.
var timeNow = time.Now

// Event is anything that can report the category it belongs to.
// Categories partition the subscriber registry: a published event is
// only seen by subscribers of its category.
//
// Hosts define their own category and event types; the only requirement
// on a category is that it is comparable. Events should be treated as
// immutable for the duration of a dispatch pass.
type Event[C comparable] interface {
	Category() C
}

// Meta contains standard information attached to an Envelope.
type Meta struct {
	// ID is a unique identifier for this event instance.
	ID uuid.UUID

	// Source identifies where the event originated (e.g., "input", "net").
	Source string

	// Timestamp is when the envelope was created.
	Timestamp time.Time
}

// Envelope is a ready-made generic event carrying an arbitrary payload.
// Hosts with their own event hierarchy can ignore it; it exists so that
// simple integrations do not need to define an event type per category.
type Envelope[C comparable, P any] struct {
	// Kind is the category the envelope is published under.
	Kind C

	// Payload contains the event-specific data.
	Payload P

	// Meta contains standard event information.
	Meta Meta
}

// NewEnvelope creates an envelope with a fresh ID and timestamp.
func NewEnvelope[C comparable, P any](kind C, payload P, source string) Envelope[C, P] {
	return Envelope[C, P]{
		Kind:    kind,
		Payload: payload,
		Meta: Meta{
			ID:        uuid.New(),
			Source:    source,
			Timestamp: timeNow(),
		},
	}
}

// Category implements the Event interface.
func (e Envelope[C, P]) Category() C {
	return e.Kind
}

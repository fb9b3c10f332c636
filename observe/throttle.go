package observe

import (
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/dshills/pubsub"
)

// ThrottledPublisher drops events that exceed a rate limit. Dropped
// events return a zero Summary; delivery stays best-effort, there is no
// queuing or retry.
type ThrottledPublisher[C comparable, E pubsub.Event[C]] struct {
	next    pubsub.Publisher[C, E]
	limiter *rate.Limiter
	dropped atomic.Uint64
}

// Throttled wraps next with a token-bucket limiter allowing limit
// events per second with the given burst.
func Throttled[C comparable, E pubsub.Event[C]](next pubsub.Publisher[C, E], limit rate.Limit, burst int) *ThrottledPublisher[C, E] {
	return &ThrottledPublisher[C, E]{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// PublishEvent forwards event unless the limiter rejects it.
func (p *ThrottledPublisher[C, E]) PublishEvent(event E, bus pubsub.Dispatcher[C, E]) pubsub.Summary {
	if !p.limiter.Allow() {
		p.dropped.Add(1)
		return pubsub.Summary{}
	}
	return p.next.PublishEvent(event, bus)
}

// Dropped returns the number of events rejected by the limiter.
func (p *ThrottledPublisher[C, E]) Dropped() uint64 {
	return p.dropped.Load()
}

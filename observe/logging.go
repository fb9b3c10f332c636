package observe

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/pubsub"
)

// LoggedPublisher logs one line per dispatch pass.
type LoggedPublisher[C comparable, E pubsub.Event[C]] struct {
	next pubsub.Publisher[C, E]
	log  zerolog.Logger
}

// Logged wraps next so every pass outcome is logged at debug level,
// with pass failures escalated to warn.
func Logged[C comparable, E pubsub.Event[C]](next pubsub.Publisher[C, E], log zerolog.Logger) *LoggedPublisher[C, E] {
	return &LoggedPublisher[C, E]{next: next, log: log}
}

// PublishEvent forwards to the wrapped publisher and logs the Summary.
func (p *LoggedPublisher[C, E]) PublishEvent(event E, bus pubsub.Dispatcher[C, E]) pubsub.Summary {
	start := time.Now()
	sum := p.next.PublishEvent(event, bus)

	var evt *zerolog.Event
	if sum.Failures > 0 {
		evt = p.log.Warn()
	} else {
		evt = p.log.Debug()
	}
	evt.
		Str("category", fmt.Sprint(event.Category())).
		Int("invoked", sum.Invoked).
		Int("failures", sum.Failures).
		Int("pruned", sum.Pruned).
		Bool("stopped", sum.Stopped).
		Dur("elapsed", time.Since(start)).
		Msg("dispatch pass")

	return sum
}

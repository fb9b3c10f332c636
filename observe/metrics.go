package observe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dshills/pubsub"
)

// Collector bundles the Prometheus metrics for one instrumented
// publisher chain.
type Collector struct {
	published prometheus.Counter
	invoked   prometheus.Counter
	failures  prometheus.Counter
	pruned    prometheus.Counter
	stopped   prometheus.Counter
	passTime  prometheus.Histogram
}

// NewCollector creates the metric set under the given namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		published: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Count of events submitted through the publisher.",
		}),
		invoked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handlers_invoked_total",
			Help:      "Count of subscriber handlers invoked.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_failures_total",
			Help:      "Count of handlers that failed or panicked.",
		}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subscribers_pruned_total",
			Help:      "Count of dead subscriber references pruned during dispatch.",
		}),
		stopped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passes_stopped_total",
			Help:      "Count of dispatch passes halted by StopPropagation.",
		}),
		passTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pass_duration_seconds",
			Help:      "Duration of dispatch passes.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Register registers every metric with reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{
		c.published, c.invoked, c.failures, c.pruned, c.stopped, c.passTime,
	} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

// InstrumentedPublisher records pass metrics around the wrapped
// publisher.
type InstrumentedPublisher[C comparable, E pubsub.Event[C]] struct {
	next pubsub.Publisher[C, E]
	col  *Collector
}

// Instrumented wraps next so every pass updates col.
func Instrumented[C comparable, E pubsub.Event[C]](next pubsub.Publisher[C, E], col *Collector) *InstrumentedPublisher[C, E] {
	return &InstrumentedPublisher[C, E]{next: next, col: col}
}

// PublishEvent forwards to the wrapped publisher and records the
// Summary.
func (p *InstrumentedPublisher[C, E]) PublishEvent(event E, bus pubsub.Dispatcher[C, E]) pubsub.Summary {
	start := time.Now()
	sum := p.next.PublishEvent(event, bus)

	p.col.published.Inc()
	p.col.invoked.Add(float64(sum.Invoked))
	p.col.failures.Add(float64(sum.Failures))
	p.col.pruned.Add(float64(sum.Pruned))
	if sum.Stopped {
		p.col.stopped.Inc()
	}
	p.col.passTime.Observe(time.Since(start).Seconds())

	return sum
}

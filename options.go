package pubsub

// config holds settings shared by all bus flavors.
type config struct {
	panicHandler PanicHandler
}

// Option configures a bus at construction time.
type Option func(*config)

// WithPanicHandler installs a handler that observes recovered handler
// panics. Without one, panics are still recovered and counted as
// failures but are otherwise silent.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *config) {
		c.panicHandler = h
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Package observe provides publisher wrappers that add cross-cutting
// behavior around a bus call: structured logging, Prometheus metrics,
// and rate limiting. Wrappers compose; the innermost publisher is
// usually pubsub.Forward.
package observe

// Package pubsub provides a generic, in-process publish/subscribe core.
//
// Hosts define their own category and event types; the bus routes each
// published event to the subscribers registered under the event's
// category and applies the Directive each handler returns.
//
// # Architecture
//
//	               ┌─────────────────────────────────────────┐
//	 Publisher ──▶ │                 Bus                     │
//	               │  category ──▶ ordered subscriber list  │
//	               │  snapshot ──▶ walk ──▶ apply directive │
//	               └─────────────────────────────────────────┘
//	                                  │
//	                   Subscriber.OnEvent(event) ──▶ Directive
//
// # Bus flavors
//
// Four flavors share one registry and dispatch core:
//
//   - Bus: exclusive-owner, insertion order
//   - PriorityBus: exclusive-owner, descending priority
//   - SharedBus: synchronized, insertion order
//   - SharedPriorityBus: synchronized, descending priority
//
// The exclusive-owner flavors perform no locking; the host guarantees a
// single logical owner. The shared flavors wrap the registry in a
// read-write mutex and are safe for concurrent use.
//
// # Dispatch semantics
//
// A publish call resolves the event's category, snapshots that
// category's subscriber sequence, and walks the snapshot in order —
// insertion order or descending priority (ties keep subscription
// order). Each handler's Directive is applied before the next handler
// runs: UnsubscribeMe removes the subscriber from the current category,
// StopPropagation ends the pass, DispatchFailed counts a failure and
// continues. Handler panics are recovered and counted as failures.
// The caller gets back a Summary; dispatch itself never errors.
//
// Because the walk iterates a snapshot, mutations made during a pass —
// whether by directives or by handlers calling back into the bus —
// never skip or repeat entries that existed when the pass began. On the
// shared flavors, handlers run outside the registry lock, so re-entrant
// Subscribe/Unsubscribe/Publish calls from inside a handler are safe.
//
// # Subscriber lifetime
//
// The bus never owns a subscriber exclusively. Subscribe shares
// ownership; SubscribeRef with a Weak ref keeps the registration from
// holding the subscriber reachable at all, so a subscriber that also
// references its bus can be dropped by the host and is lazily pruned on
// the next pass that touches its category.
//
// # Publishing
//
// Bus methods can be called directly. The Publisher interface exists
// for hosts that want cross-cutting behavior around the bus call:
// Forward is the default pass-through, Filtered gates on a predicate,
// and the observe package adds logging (zerolog), metrics (prometheus),
// and rate limiting.
//
// All delivery is synchronous on the caller's goroutine: there is no
// internal queue, scheduler, or cancellation, and a handler that never
// returns blocks its pass.
package pubsub

package pubsub

import (
	"runtime/debug"

	"github.com/google/uuid"
)

// Summary describes the outcome of a single dispatch pass. It is
// informational: none of its fields indicate an error by themselves.
type Summary struct {
	// Invoked is the number of subscribers whose handler ran.
	Invoked int

	// Failures is the number of handlers that returned DispatchFailed
	// or panicked.
	Failures int

	// Pruned is the number of dead references removed during the pass.
	Pruned int

	// Stopped reports whether a subscriber halted propagation before
	// the end of the sequence.
	Stopped bool
}

// Finished reports whether the pass reached the end of the sequence.
func (s Summary) Finished() bool {
	return !s.Stopped
}

// PanicHandler observes a recovered handler panic. The panic is always
// converted into a failure in the pass Summary; the handler only gets a
// look at the panic value and stack.
type PanicHandler func(event any, panicValue any, stack []byte)

// runPass walks a snapshot in order, invoking each live subscriber and
// applying its directive through remove before moving on. Dead refs are
// skipped and pruned once the walk ends.
func runPass[C comparable, E Event[C]](pass []entry[C, E], event E, category C, remove func(id uuid.UUID, category C), onPanic PanicHandler) Summary {
	var sum Summary
	var dead []uuid.UUID

	for i := range pass {
		sub, ok := pass[i].ref.Resolve()
		if !ok {
			dead = append(dead, pass[i].id)
			continue
		}

		sum.Invoked++
		switch invoke(sub, event, onPanic) {
		case NoActionNeeded:
		case DispatchFailed:
			sum.Failures++
		case UnsubscribeMe:
			remove(pass[i].id, category)
		case StopPropagation:
			sum.Stopped = true
		case UnsubscribeMeAndStop:
			remove(pass[i].id, category)
			sum.Stopped = true
		}
		if sum.Stopped {
			break
		}
	}

	for _, id := range dead {
		remove(id, category)
		sum.Pruned++
	}
	return sum
}

// invoke runs a single handler with panic recovery. A panic is reported
// as DispatchFailed so the pass continues past a broken subscriber.
func invoke[C comparable, E Event[C]](sub Subscriber[C, E], event E, onPanic PanicHandler) (d Directive) {
	defer func() {
		if r := recover(); r != nil {
			d = DispatchFailed
			if onPanic != nil {
				stack := debug.Stack()
				func() {
					// Silently recover if the panic handler itself panics.
					defer func() { _ = recover() }()
					onPanic(event, r, stack)
				}()
			}
		}
	}()
	return sub.OnEvent(event)
}

// Package observe provides observability wrappers for lazy iterators:
// typed callbacks, OpenTelemetry metrics, and structured trace logging.
// All wrappers preserve the wrapped iterator's semantics exactly; they
// add no buffering, reordering, or extra pulls.
package observe

import (
	"github.com/lguimbarda/min-seq/seq/core"
)

// Hooks holds typed observation callbacks for an iterator.
// All fields are optional - nil means no observation for that event.
// Hooks are invoked synchronously during the pull, so they should be
// fast.
type Hooks[C, V any] struct {
	OnItem func(pos C, value V) // Element produced
	OnDone func()               // Iterator exhausted (invoked once)
}

// Observe wraps the iterator so that each produced element and the
// final exhaustion invoke the corresponding hook. Pulls after
// exhaustion do not re-invoke OnDone.
func Observe[C, V any](next core.Next[C, V], hooks Hooks[C, V]) core.Next[C, V] {
	notified := false
	return func() core.Result[C, V] {
		r := next()
		if r.IsDone() {
			if !notified {
				notified = true
				if hooks.OnDone != nil {
					hooks.OnDone()
				}
			}
			return r
		}
		if hooks.OnItem != nil {
			hooks.OnItem(r.Pair())
		}
		return r
	}
}

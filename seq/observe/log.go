package observe

import (
	"github.com/rs/zerolog"

	"github.com/lguimbarda/min-seq/seq/core"
)

// Log wraps the iterator so that each produced element is logged at
// trace level and exhaustion at debug level, tagged with the given
// iterator name. Intended for debugging combinator chains; at disabled
// levels zerolog makes the wrapper nearly free.
func Log[C, V any](logger zerolog.Logger, name string, next core.Next[C, V]) core.Next[C, V] {
	n := 0
	logged := false
	return func() core.Result[C, V] {
		r := next()
		if r.IsDone() {
			if !logged {
				logged = true
				logger.Debug().
					Str("iterator", name).
					Int("produced", n).
					Msg("iterator exhausted")
			}
			return r
		}
		n++
		logger.Trace().
			Str("iterator", name).
			Interface("pos", r.Pos()).
			Interface("value", r.Value()).
			Msg("element")
		return r
	}
}

package core

// Transform maps one element to an output value. Returning false
// suppresses the element: the owning combinator skips ahead to the next
// source element instead of emitting anything or terminating. This is
// what lets Map double as a filter.
type Transform[C, V, O any] func(pos C, value V) (O, bool)

// Map is the central lazy combinator. It returns a lazy iterator
// function over the source triple: each call pulls one source step,
// threads the position forward, and applies the transform to the
// element. Suppressed elements (transform returns false) are skipped
// transparently; the consumer never sees a gap or an early Done. Only
// true source exhaustion yields Done.
//
// The skip is an explicit loop, so any number of consecutive suppressed
// elements is handled in constant stack space. A transform that
// suppresses every remaining element drains the source and then yields
// Done.
//
// Nothing is evaluated until the returned function is invoked; each
// invocation advances exactly one logical element (skips consume source
// steps but do not count as returned elements).
func Map[S, C, V, O any](transform Transform[C, V, O], src Triple[S, C, V]) Next[C, O] {
	if transform == nil {
		panic("Map: transform cannot be nil")
	}
	if src.Step == nil {
		panic("Map: step cannot be nil")
	}
	pos := src.Pos
	done := false
	return func() Result[C, O] {
		if done {
			return Done[C, O]()
		}
		for {
			r := src.Step(src.State, pos)
			if r.IsDone() {
				done = true
				return Done[C, O]()
			}
			pos = r.Pos()
			out, ok := transform(r.Pair())
			if !ok {
				continue
			}
			return Item(pos, out)
		}
	}
}

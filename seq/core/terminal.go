package core

// Terminal functions are sinks that consume an iterator and produce a
// final result: a slice of remaining values, the first match, or a
// boolean over the whole sequence.

// Spread converts the iterator triple into a slice of all remaining
// values, preserving order. An exhausted source produces an empty
// (nil) slice.
//
// Accumulation is an explicit iterative loop with one append per
// element, so sequence length is bounded only by memory, not by stack
// depth.
func Spread[S, C, V any](src Triple[S, C, V]) []V {
	if src.Step == nil {
		panic("Spread: step cannot be nil")
	}
	pos := src.Pos
	var out []V
	for {
		r := src.Step(src.State, pos)
		if r.IsDone() {
			return out
		}
		pos = r.Pos()
		out = append(out, r.Value())
	}
}

// Find returns the first element for which the predicate holds, or
// Done if the source is exhausted first. It builds a Filter iterator
// and pulls exactly one step, so the source is never consumed beyond
// the matching element.
func Find[S, C, V any](pred Predicate[C, V], src Triple[S, C, V]) Result[C, V] {
	return Filter(pred, src)()
}

// Some reports whether any element satisfies the predicate. It maps
// matching elements to a marker and pulls one step: the pull stops at
// the first match, so no elements past it are consumed. An empty
// source gives false.
func Some[S, C, V any](pred func(pos C, value V) bool, src Triple[S, C, V]) bool {
	if pred == nil {
		panic("Some: predicate cannot be nil")
	}
	next := Map(func(pos C, v V) (struct{}, bool) {
		return struct{}{}, pred(pos, v)
	}, src)
	return !next().IsDone()
}

// Every reports whether all elements satisfy the predicate, true
// vacuously for an empty source. It maps counter-examples to a marker
// and checks that the single pull reports Done: exhaustion means no
// counter-example was found. The pull short-circuits at the first
// failing element, exactly like Some.
func Every[S, C, V any](pred func(pos C, value V) bool, src Triple[S, C, V]) bool {
	if pred == nil {
		panic("Every: predicate cannot be nil")
	}
	next := Map(func(pos C, v V) (struct{}, bool) {
		return struct{}{}, !pred(pos, v)
	}, src)
	return next().IsDone()
}

// Reduce folds all remaining elements of the iterator into a single
// value using the provided folder function and initial accumulator.
// Always returns a value; an empty iterator returns the initial
// accumulator unchanged.
func Reduce[C, V, A any](fn func(acc A, value V) A, init A, next Next[C, V]) A {
	if fn == nil {
		panic("Reduce: folder cannot be nil")
	}
	acc := init
	for r := next(); !r.IsDone(); r = next() {
		acc = fn(acc, r.Value())
	}
	return acc
}

// Count drains the iterator and returns the number of elements it
// produced.
func Count[C, V any](next Next[C, V]) int {
	n := 0
	for r := next(); !r.IsDone(); r = next() {
		n++
	}
	return n
}

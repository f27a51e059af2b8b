// Package core defines the iterator triple model and the lazy
// combinators built on it. It provides the foundational building blocks
// for pull-driven, single-threaded iteration over generic sequences.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other seq packages.
package core

// Step is the step function of an iterator triple. It advances the
// iteration by one element: given the read-only state (the invariant of
// the sequence, e.g. the container being walked) and the current
// position, it returns either the next element or Done.
//
// A Step must be free of side effects beyond those inherent to reading
// the underlying source. Calling a Step again after it returned Done
// for the terminal position is undefined; combinators latch on Done and
// never re-step an exhausted source.
type Step[S, C, V any] func(state S, pos C) Result[C, V]

// Triple bundles a step function with the state it reads and the
// position to resume from. It defines one resumable, single-pass
// sequence and is the sole input shape of every combinator. The state
// is passed unchanged to every step; the position threads forward from
// each step's result.
type Triple[S, C, V any] struct {
	Step  Step[S, C, V]
	State S
	Pos   C
}

// NewTriple bundles a step, state, and starting position.
func NewTriple[S, C, V any](step Step[S, C, V], state S, pos C) Triple[S, C, V] {
	return Triple[S, C, V]{Step: step, State: state, Pos: pos}
}

// Next is a lazy iterator function: a zero-argument callable that
// advances the underlying iterator by exactly one logical element per
// call and returns it, or Done once the sequence is exhausted.
//
// A Next owns no state beyond its closed-over position. It is
// single-pass and not restartable, and returns Done forever after
// exhaustion. Nothing is evaluated until the function is invoked.
type Next[C, V any] func() Result[C, V]

// Spread materializes all remaining elements of the iterator into a
// slice, preserving order. Accumulation is iterative, so arbitrarily
// long sequences are safe.
func (n Next[C, V]) Spread() []V {
	var out []V
	for r := n(); !r.IsDone(); r = n() {
		out = append(out, r.Value())
	}
	return out
}

// Triple lets a lazy iterator function stand in for an iterator
// triple, so that combinator output can feed combinator input. The
// step of the returned triple ignores its state and position
// arguments; advancement is driven entirely by the closure's own
// captured position.
func (n Next[C, V]) Triple() Triple[struct{}, C, V] {
	return Triple[struct{}, C, V]{
		Step: func(struct{}, C) Result[C, V] { return n() },
	}
}

// KeyValue is a key-leading element pair, the element shape of
// associative-container enumeration and the input shape of DropFirst.
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// DropFirst adapts a key-leading source into a value-only iterator.
// The source's elements are KeyValue pairs whose key doubles as the
// iteration control (an index or a container key); the returned
// iterator threads the key back into the step but exposes only the
// payload value to the consumer.
//
// This is how key-leading enumeration feeds combinators that want to
// operate on values alone.
func DropFirst[S, C, V any](src Triple[S, C, KeyValue[C, V]]) Next[C, V] {
	pos := src.Pos
	done := false
	return func() Result[C, V] {
		if done {
			return Done[C, V]()
		}
		r := src.Step(src.State, pos)
		if r.IsDone() {
			done = true
			return Done[C, V]()
		}
		pos = r.Pos()
		return Item(pos, r.Value().Value)
	}
}

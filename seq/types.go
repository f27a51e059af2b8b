// Package seq provides a pull-based toolkit for converting between
// tuples, associative containers, and stateless iterators, with lazy
// combinators built on a single iterator representation.
//
// This package is the primary user-facing API. Most users should only
// need to import this package. The seq/core subpackage contains the
// low-level model that is rarely needed directly.
package seq

import (
	"github.com/lguimbarda/min-seq/seq/core"
)

// Type aliases for core iterator abstractions.
// These allow users to work with the toolkit without importing core directly.
type (
	// Result is the outcome of a single step: Done or Item(pos, value).
	Result[C, V any] = core.Result[C, V]

	// Step advances an iterator triple by one element.
	Step[S, C, V any] = core.Step[S, C, V]

	// Triple bundles a step function, its read-only state, and the
	// position to resume from; it defines one resumable sequence.
	Triple[S, C, V any] = core.Triple[S, C, V]

	// Next is a lazy iterator function, advancing one element per call.
	Next[C, V any] = core.Next[C, V]

	// KeyValue is a key-leading element pair.
	KeyValue[K, V any] = core.KeyValue[K, V]

	// Verdict is a filtering predicate's decision for one element.
	Verdict[V any] = core.Verdict[V]

	// Transform maps one element to an output value, or suppresses it.
	Transform[C, V, O any] = core.Transform[C, V, O]

	// Predicate decides whether to keep, replace, or drop an element.
	Predicate[C, V any] = core.Predicate[C, V]
)

// Result constructors - wrappers around core functions.

// Item creates a Result for an element produced at the given position.
func Item[C, V any](pos C, value V) Result[C, V] {
	return core.Item(pos, value)
}

// Done creates a Result signaling that the sequence is exhausted.
func Done[C, V any]() Result[C, V] {
	return core.Done[C, V]()
}

// NewTriple bundles a step, state, and starting position.
func NewTriple[S, C, V any](step Step[S, C, V], state S, pos C) Triple[S, C, V] {
	return core.NewTriple(step, state, pos)
}

// Verdict constructors.

// Keep passes the element through unchanged.
func Keep[V any]() Verdict[V] { return core.Keep[V]() }

// Replace keeps the element but substitutes the given value.
func Replace[V any](v V) Verdict[V] { return core.Replace(v) }

// Drop discards the element.
func Drop[V any]() Verdict[V] { return core.Drop[V]() }

// Combinators.

// Map returns a lazy iterator applying transform to each source
// element; transforms returning false suppress their element.
func Map[S, C, V, O any](transform Transform[C, V, O], src Triple[S, C, V]) Next[C, O] {
	return core.Map(transform, src)
}

// Filter returns a lazy iterator over the elements for which the
// predicate holds, with any replacement values substituted.
func Filter[S, C, V any](pred Predicate[C, V], src Triple[S, C, V]) Next[C, V] {
	return core.Filter(pred, src)
}

// DropFirst adapts a key-leading source into a value-only iterator.
func DropFirst[S, C, V any](src Triple[S, C, KeyValue[C, V]]) Next[C, V] {
	return core.DropFirst(src)
}

// Take returns an iterator over only the first n elements of the source.
func Take[C, V any](n int, next Next[C, V]) Next[C, V] {
	return core.Take(n, next)
}

// TakeWhile returns an iterator over the leading elements for which the
// predicate holds.
func TakeWhile[C, V any](pred func(pos C, value V) bool, next Next[C, V]) Next[C, V] {
	return core.TakeWhile(pred, next)
}

// Chain concatenates iterators in order.
func Chain[C, V any](nexts ...Next[C, V]) Next[C, V] {
	return core.Chain(nexts...)
}

// Terminal operations.

// Spread converts the iterator triple into a slice of all remaining
// values, preserving order.
func Spread[S, C, V any](src Triple[S, C, V]) []V {
	return core.Spread(src)
}

// Find returns the first element for which the predicate holds, or
// Done if the source is exhausted first.
func Find[S, C, V any](pred Predicate[C, V], src Triple[S, C, V]) Result[C, V] {
	return core.Find(pred, src)
}

// Some reports whether any element satisfies the predicate.
func Some[S, C, V any](pred func(pos C, value V) bool, src Triple[S, C, V]) bool {
	return core.Some(pred, src)
}

// Every reports whether all elements satisfy the predicate.
func Every[S, C, V any](pred func(pos C, value V) bool, src Triple[S, C, V]) bool {
	return core.Every(pred, src)
}

// Reduce folds all remaining elements into a single value.
func Reduce[C, V, A any](fn func(acc A, value V) A, init A, next Next[C, V]) A {
	return core.Reduce(fn, init, next)
}

// Count drains the iterator and returns the number of elements.
func Count[C, V any](next Next[C, V]) int {
	return core.Count(next)
}

package core

import "fmt"

// Result represents the outcome of a single step of iteration.
// It exists in one of two states:
//   - Item: the step produced an element (IsDone() returns false)
//   - Done: the sequence is exhausted (IsDone() returns true)
//
// An Item carries both the new position and the element value. The
// position is threaded back into the next step call by whichever
// combinator owns the iterator; consumers normally only look at the
// value, unless they iterate a key-leading source directly.
type Result[C, V any] struct {
	pos   C
	value V
	done  bool
}

// Item creates a Result for an element produced at the given position.
// The position becomes the control state for the next step.
func Item[C, V any](pos C, value V) Result[C, V] {
	return Result[C, V]{pos: pos, value: value}
}

// Done creates a Result signaling that the sequence is exhausted.
// Done is normal termination, not an error.
func Done[C, V any]() Result[C, V] {
	return Result[C, V]{done: true}
}

// IsDone returns true if the sequence is exhausted.
func (r Result[C, V]) IsDone() bool {
	return r.done
}

// Pos returns the position of this element. Only meaningful when
// IsDone() is false; returns the zero value for a Done result.
func (r Result[C, V]) Pos() C {
	return r.pos
}

// Value returns the element value. Only meaningful when IsDone() is
// false; returns the zero value for a Done result.
func (r Result[C, V]) Value() V {
	return r.value
}

// Pair returns the position and value together. Useful when feeding
// both into a transform or predicate.
func (r Result[C, V]) Pair() (C, V) {
	return r.pos, r.value
}

// String implements fmt.Stringer for debugging and test output.
func (r Result[C, V]) String() string {
	if r.done {
		return "Done"
	}
	return fmt.Sprintf("Item(%v, %v)", r.pos, r.value)
}

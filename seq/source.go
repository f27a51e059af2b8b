package seq

import (
	"github.com/lguimbarda/min-seq/seq/core"
)

// Sources produce iterator triples that feed the combinators:
//
//	doubled := seq.Map(double, seq.Slice(xs))

// Values captures a fixed tuple of values and returns a lazy iterator
// function yielding each once, in order, then Done forever after.
func Values[V any](vs ...V) Next[int, V] {
	return core.Values(vs...)
}

// Slice returns an iterator triple over the elements of the given
// slice. The slice is the invariant; the control is the index of the
// element most recently produced, starting one before the first.
func Slice[V any](xs []V) Triple[[]V, int, V] {
	step := func(xs []V, pos int) Result[int, V] {
		i := pos + 1
		if i >= len(xs) {
			return core.Done[int, V]()
		}
		return core.Item(i, xs[i])
	}
	return core.NewTriple(step, xs, -1)
}

// Entries returns an iterator triple over index-leading elements of the
// given slice: each element is a KeyValue carrying the index and the
// value. Use DropFirst to strip the indices back off.
func Entries[V any](xs []V) Triple[[]V, int, KeyValue[int, V]] {
	step := func(xs []V, pos int) Result[int, KeyValue[int, V]] {
		i := pos + 1
		if i >= len(xs) {
			return core.Done[int, KeyValue[int, V]]()
		}
		return core.Item(i, KeyValue[int, V]{Key: i, Value: xs[i]})
	}
	return core.NewTriple(step, xs, -1)
}

// Span is the invariant of a stepped integer range: the exclusive
// bound and the stride.
type Span struct {
	End  int
	Step int
}

// Range returns an iterator triple over the integers from start
// (inclusive) to end (exclusive). If start >= end the iteration is
// empty.
func Range(start, end int) Triple[Span, int, int] {
	return RangeStep(start, end, 1)
}

// RangeStep returns an iterator triple over the integers from start to
// end with the given stride. A zero stride, or a stride pointing away
// from end, gives an empty iteration.
func RangeStep(start, end, stride int) Triple[Span, int, int] {
	step := func(sp Span, pos int) Result[int, int] {
		if sp.Step == 0 {
			return core.Done[int, int]()
		}
		next := pos + sp.Step
		if sp.Step > 0 && next >= sp.End {
			return core.Done[int, int]()
		}
		if sp.Step < 0 && next <= sp.End {
			return core.Done[int, int]()
		}
		return core.Item(next, next)
	}
	return core.NewTriple(step, Span{End: end, Step: stride}, start-stride)
}

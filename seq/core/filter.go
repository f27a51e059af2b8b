package core

// Verdict is a filtering predicate's decision about one element:
// keep it as is, keep it with a single replacement value, or drop it.
//
// Only one replacement value is honored; a predicate cannot replace an
// element with more than one derived value. This is an intentional
// simplification, not an omission.
type Verdict[V any] struct {
	keep     bool
	replaced bool
	value    V
}

// Keep passes the element through unchanged.
func Keep[V any]() Verdict[V] {
	return Verdict[V]{keep: true}
}

// Replace keeps the element but substitutes the given value for it.
func Replace[V any](v V) Verdict[V] {
	return Verdict[V]{keep: true, replaced: true, value: v}
}

// Drop discards the element.
func Drop[V any]() Verdict[V] {
	return Verdict[V]{}
}

// Predicate decides, for each element, whether to keep, replace, or
// drop it.
type Predicate[C, V any] func(pos C, value V) Verdict[V]

// Filter returns a lazy iterator function over the elements of the
// source triple for which the predicate holds, in original order, with
// any replacement values substituted. Dropped elements are skipped
// transparently via Map's suppression behavior.
//
// Filter is implemented strictly as a Map with an adapter transform;
// it adds no iteration machinery of its own.
func Filter[S, C, V any](pred Predicate[C, V], src Triple[S, C, V]) Next[C, V] {
	if pred == nil {
		panic("Filter: predicate cannot be nil")
	}
	return Map(func(pos C, v V) (V, bool) {
		verdict := pred(pos, v)
		if !verdict.keep {
			var zero V
			return zero, false
		}
		if verdict.replaced {
			return verdict.value, true
		}
		return v, true
	}, src)
}

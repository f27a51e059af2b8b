package core

// Values captures a fixed tuple of values and returns a lazy iterator
// function that yields each captured value once, in order, then Done
// forever after. The position is the zero-based index of the value,
// strictly increasing and never reset.
//
// Zero values at fixed positions are captured like any other value;
// the arity is fixed at call time.
func Values[V any](vs ...V) Next[int, V] {
	i := 0
	return func() Result[int, V] {
		if i >= len(vs) {
			return Done[int, V]()
		}
		v := vs[i]
		i++
		return Item(i-1, v)
	}
}

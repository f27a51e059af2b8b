package core

// Take returns an iterator over only the first n elements of the
// source. After n elements (or source exhaustion, whichever comes
// first) it reports Done without pulling further. If n <= 0 the source
// is never pulled at all.
func Take[C, V any](n int, next Next[C, V]) Next[C, V] {
	count := 0
	done := false
	return func() Result[C, V] {
		if done || count >= n {
			done = true
			return Done[C, V]()
		}
		r := next()
		if r.IsDone() {
			done = true
			return r
		}
		count++
		return r
	}
}

// TakeWhile returns an iterator over the leading elements of the
// source for which the predicate holds. Once the predicate fails, the
// iterator reports Done; the failing element is consumed from the
// source but not emitted, and no elements past it are pulled.
func TakeWhile[C, V any](pred func(pos C, value V) bool, next Next[C, V]) Next[C, V] {
	if pred == nil {
		panic("TakeWhile: predicate cannot be nil")
	}
	done := false
	return func() Result[C, V] {
		if done {
			return Done[C, V]()
		}
		r := next()
		if r.IsDone() || !pred(r.Pair()) {
			done = true
			return Done[C, V]()
		}
		return r
	}
}

// Chain concatenates iterators: all elements of the first, then all
// elements of the second, and so on. Each source is pulled only once
// its predecessors are exhausted.
func Chain[C, V any](nexts ...Next[C, V]) Next[C, V] {
	i := 0
	return func() Result[C, V] {
		for i < len(nexts) {
			r := nexts[i]()
			if !r.IsDone() {
				return r
			}
			i++
		}
		return Done[C, V]()
	}
}

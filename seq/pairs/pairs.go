// Package pairs provides adapters between associative containers and
// iterator triples: enumerating a map as a key-leading iterator, and
// rebuilding a map from a key/value iterator.
package pairs

import (
	"github.com/lguimbarda/min-seq/seq/core"
)

// MapSource is the invariant of a map enumeration: the container being
// walked plus a snapshot of its key set. The snapshot is taken once
// when the iteration is created, which gives the enumeration a stable
// (though unspecified) order for its whole lifetime.
type MapSource[K comparable, V any] struct {
	m    map[K]V
	keys []K
}

// Len returns the number of entries in the snapshot.
func (s MapSource[K, V]) Len() int {
	return len(s.keys)
}

// Pairs returns an iterator triple enumerating the key/value pairs of
// the given map. Elements are key-leading KeyValue pairs; the control
// is the index into the key snapshot. Entries added or removed after
// the call are not reflected in the iteration.
func Pairs[K comparable, V any](m map[K]V) core.Triple[MapSource[K, V], int, core.KeyValue[K, V]] {
	src := MapSource[K, V]{m: m, keys: make([]K, 0, len(m))}
	for k := range m {
		src.keys = append(src.keys, k)
	}
	step := func(src MapSource[K, V], pos int) core.Result[int, core.KeyValue[K, V]] {
		i := pos + 1
		if i >= len(src.keys) {
			return core.Done[int, core.KeyValue[K, V]]()
		}
		k := src.keys[i]
		return core.Item(i, core.KeyValue[K, V]{Key: k, Value: src.m[k]})
	}
	return core.NewTriple(step, src, -1)
}

// Unpairs consumes a key/value iterator and builds a fresh map from
// it. On key collision, later entries overwrite earlier ones.
func Unpairs[C any, K comparable, V any](next core.Next[C, core.KeyValue[K, V]]) map[K]V {
	out := make(map[K]V)
	for r := next(); !r.IsDone(); r = next() {
		kv := r.Value()
		out[kv.Key] = kv.Value
	}
	return out
}

// Keys returns a lazy iterator over the keys of the given map, in
// snapshot order.
func Keys[K comparable, V any](m map[K]V) core.Next[int, K] {
	return core.Map(func(pos int, kv core.KeyValue[K, V]) (K, bool) {
		return kv.Key, true
	}, Pairs(m))
}

// Values returns a lazy iterator over the values of the given map, in
// snapshot order.
func Values[K comparable, V any](m map[K]V) core.Next[int, V] {
	return core.Map(func(pos int, kv core.KeyValue[K, V]) (V, bool) {
		return kv.Value, true
	}, Pairs(m))
}

// Package collection provides generic operations over ordered sequences and
// key-value mappings.
//
// Both shapes satisfy Enumerable, which yields (key, value) pairs in a single
// pass. Each is the only traversal primitive; the other operations are
// derived from it, and Contains, Every and Some are further derived from
// Reduce:
//
//	evens := collection.Filter(collection.Seq[int]{1, 2, 3, 4}, func(n int) bool {
//	    return n%2 == 0
//	})
//	total := collection.Reduce(collection.Mapping[string, int]{"a": 1, "b": 2},
//	    func(acc, n int) int { return acc + n }, 0)
//
// Sequences are visited in index order. Mappings are visited in Go map order,
// which is unspecified but stable within one pass.
//
// No operation mutates its input; every result is a freshly allocated slice.
package collection

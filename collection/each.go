package collection

import (
	"math"
	"reflect"
)

// Each calls iterator(value, key, c) once per element of c, in iteration order.
// A nil iterator walks the collection without doing anything.
func Each[K comparable, V any](c Enumerable[K, V], iterator func(V, K, Enumerable[K, V])) {
	if iterator == nil {
		iterator = func(V, K, Enumerable[K, V]) {}
	}
	for k, v := range c.All() {
		iterator(v, k, c)
	}
}

// Identity returns its argument.
func Identity[V any](v V) V {
	return v
}

// Truthy reports whether v is a non-zero value. It is the default predicate
// of Filter, Reject, Every and Some. NaN is not truthy.
func Truthy[V any](v V) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return false
	}
	if k := rv.Kind(); (k == reflect.Float32 || k == reflect.Float64) && math.IsNaN(rv.Float()) {
		return false
	}
	return !rv.IsZero()
}

func negate[V any](predicate func(V) bool) func(V) bool {
	if predicate == nil {
		predicate = Truthy[V]
	}
	return func(v V) bool {
		return !predicate(v)
	}
}

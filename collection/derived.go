package collection

import (
	"fmt"

	"github.com/on-the-ground/underbar_go/record"
	"github.com/on-the-ground/underbar_go/shared/helper"
)

// IndexOf returns the index of the first element equal to target, or -1.
func IndexOf[V comparable](s Seq[V], target V) int {
	result := -1
	Each(s, func(v V, i int, _ Enumerable[int, V]) {
		if result == -1 && v == target {
			result = i
		}
	})
	return result
}

// Filter returns the elements for which predicate holds, in iteration order.
// A nil predicate keeps the Truthy elements.
func Filter[K comparable, V any](c Enumerable[K, V], predicate func(V) bool) []V {
	if predicate == nil {
		predicate = Truthy[V]
	}
	filtered := make([]V, 0)
	Each(c, func(v V, _ K, _ Enumerable[K, V]) {
		if predicate(v) {
			filtered = append(filtered, v)
		}
	})
	return filtered
}

// Reject is Filter with the predicate negated.
func Reject[K comparable, V any](c Enumerable[K, V], predicate func(V) bool) []V {
	return Filter(c, negate(predicate))
}

// Uniq returns s without repeated elements, keeping first occurrences.
func Uniq[V comparable](s Seq[V], isSorted bool) []V {
	return UniqBy(s, isSorted, Identity[V])
}

// UniqBy keeps the first element of s for every distinct keyFn(value).
//
// isSorted only lets adjacent duplicates skip the set lookup; the result is
// the same whether or not s really is sorted.
func UniqBy[V any, P comparable](s Seq[V], isSorted bool, keyFn func(V) P) []V {
	unique := make([]V, 0)
	seen := make(map[P]struct{})
	var (
		last    P
		hasLast bool
	)
	Each(s, func(v V, _ int, _ Enumerable[int, V]) {
		key := keyFn(v)
		if isSorted && hasLast && key == last {
			return
		}
		last, hasLast = key, true
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		unique = append(unique, v)
	})
	return unique
}

// Map returns iterator(value) for every element of c, in iteration order.
func Map[K comparable, V, R any](c Enumerable[K, V], iterator func(V) R) []R {
	mapped := make([]R, 0, c.Len())
	Each(c, func(v V, _ K, _ Enumerable[K, V]) {
		mapped = append(mapped, iterator(v))
	})
	return mapped
}

// Pluck reads field from every element of c.
// The first element lacking the field aborts with record.ErrUnknownField.
func Pluck[K comparable, V record.Fielder](c Enumerable[K, V], field string) ([]any, error) {
	var firstErr error
	plucked := Map(c, func(v V) any {
		if firstErr != nil {
			return nil
		}
		val, err := v.Field(field)
		if err != nil {
			firstErr = fmt.Errorf("pluck %q: %w", field, err)
		}
		return val
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return plucked, nil
}

// PluckAs is Pluck with every value asserted to T.
func PluckAs[T any, K comparable, V record.Fielder](c Enumerable[K, V], field string) ([]T, error) {
	plucked, err := Pluck(c, field)
	if err != nil {
		return nil, err
	}
	return helper.MapTyped[T](plucked)
}

// Reduce folds c from left to right starting at seed.
func Reduce[K comparable, V, A any](c Enumerable[K, V], iterator func(A, V) A, seed A) A {
	acc := seed
	Each(c, func(v V, _ K, _ Enumerable[K, V]) {
		acc = iterator(acc, v)
	})
	return acc
}

// ReduceFirst folds c using its first element as the seed. The seed element is
// not passed to iterator, so a single-element collection returns that element
// untouched. An empty collection yields ErrEmptyReduction.
func ReduceFirst[K comparable, V any](c Enumerable[K, V], iterator func(V, V) V) (V, error) {
	var (
		acc    V
		seeded bool
	)
	Each(c, func(v V, _ K, _ Enumerable[K, V]) {
		if !seeded {
			acc, seeded = v, true
			return
		}
		acc = iterator(acc, v)
	})
	if !seeded {
		return acc, ErrEmptyReduction
	}
	return acc, nil
}

// Contains reports whether any element of c equals target.
func Contains[K comparable, V comparable](c Enumerable[K, V], target V) bool {
	return Reduce(c, func(found bool, v V) bool {
		if found {
			return true
		}
		return v == target
	}, false)
}

// Every reports whether predicate holds for all elements. It is true for an
// empty collection, and predicate is not consulted again after the first miss.
// A nil predicate tests Truthy.
func Every[K comparable, V any](c Enumerable[K, V], predicate func(V) bool) bool {
	if predicate == nil {
		predicate = Truthy[V]
	}
	return Reduce(c, func(all bool, v V) bool {
		if !all {
			return false
		}
		return predicate(v)
	}, true)
}

// Some reports whether predicate holds for at least one element.
func Some[K comparable, V any](c Enumerable[K, V], predicate func(V) bool) bool {
	return !Every(c, negate(predicate))
}

// First returns the first element of s, or false when s is empty.
func First[V any](s Seq[V]) (V, bool) {
	var zero V
	if len(s) == 0 {
		return zero, false
	}
	return s[0], true
}

// FirstN returns a copy of the first n elements of s.
func FirstN[V any](s Seq[V], n int) []V {
	n = max(0, min(n, len(s)))
	return append(make([]V, 0, n), s[:n]...)
}

// Last returns the last element of s, or false when s is empty.
func Last[V any](s Seq[V]) (V, bool) {
	var zero V
	if len(s) == 0 {
		return zero, false
	}
	return s[len(s)-1], true
}

// LastN returns a copy of the last n elements of s.
func LastN[V any](s Seq[V], n int) []V {
	n = max(0, min(n, len(s)))
	return append(make([]V, 0, n), s[len(s)-n:]...)
}

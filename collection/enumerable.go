package collection

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
)

var (
	ErrNotCollection  = errors.New("value is neither a sequence nor a mapping")
	ErrEmptyReduction = errors.New("reduce of empty collection with no seed")
)

// Enumerable is the capability shared by both collection shapes.
type Enumerable[K comparable, V any] interface {
	// All yields every (key, value) pair once.
	All() iter.Seq2[K, V]
	Len() int
}

// Seq is an ordered sequence keyed by index.
type Seq[V any] []V

var _ Enumerable[int, string] = Seq[string]{}

func (s Seq[V]) All() iter.Seq2[int, V] { return slices.All(s) }
func (s Seq[V]) Len() int               { return len(s) }

// Mapping is an unordered key-value association.
type Mapping[K comparable, V any] map[K]V

var _ Enumerable[string, int] = Mapping[string, int]{}

func (m Mapping[K, V]) All() iter.Seq2[K, V] { return maps.All(m) }
func (m Mapping[K, V]) Len() int             { return len(m) }

// Of detects the shape of an arbitrary value. Slices and arrays become
// sequences keyed by int, maps become mappings keyed by their own keys.
// Anything else is rejected with ErrNotCollection.
func Of(v any) (Enumerable[any, any], error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return reflected{v: rv}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotCollection, v)
	}
}

type reflected struct {
	v reflect.Value
}

func (r reflected) Len() int { return r.v.Len() }

func (r reflected) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if r.v.Kind() == reflect.Map {
			it := r.v.MapRange()
			for it.Next() {
				if !yield(it.Key().Interface(), it.Value().Interface()) {
					return
				}
			}
			return
		}
		for i := 0; i < r.v.Len(); i++ {
			if !yield(i, r.v.Index(i).Interface()) {
				return
			}
		}
	}
}

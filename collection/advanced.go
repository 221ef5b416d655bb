package collection

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand/v2"
	"reflect"
	"slices"

	"github.com/on-the-ground/underbar_go/record"
)

var (
	ErrUnknownMethod = errors.New("unknown method")
	ErrBadArguments  = errors.New("arguments do not match method signature")
)

// Shuffle returns a uniformly random permutation of s. s is not modified.
func Shuffle[T any](s []T) []T {
	return ShuffleWith(s, nil)
}

// ShuffleWith is Shuffle drawing from r. A nil r uses the global source.
func ShuffleWith[T any](s []T, r *rand.Rand) []T {
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	source := slices.Clone(s)
	shuffled := make([]T, 0, len(s))
	for len(source) > 0 {
		i := intN(len(source))
		shuffled = append(shuffled, source[i])
		last := len(source) - 1
		source[i] = source[last]
		source = source[:last]
	}
	return shuffled
}

type keyed[O, V any] struct {
	key   O
	value V
}

// SortBy returns the elements of c ordered by iterator(value), ascending.
// Elements with equal keys keep their iteration order.
func SortBy[K comparable, V any, O cmp.Ordered](c Enumerable[K, V], iterator func(V) O) []V {
	pairs := Map(c, func(v V) keyed[O, V] {
		return keyed[O, V]{key: iterator(v), value: v}
	})
	slices.SortStableFunc(pairs, func(a, b keyed[O, V]) int {
		return cmp.Compare(a.key, b.key)
	})
	return values(pairs)
}

// SortByField is SortBy keyed by a named field, ordered with record.Compare.
func SortByField[K comparable, V record.Fielder](c Enumerable[K, V], field string) ([]V, error) {
	var firstErr error
	pairs := Map(c, func(v V) keyed[any, V] {
		key, err := v.Field(field)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("sort by %q: %w", field, err)
		}
		return keyed[any, V]{key: key, value: v}
	})
	if firstErr != nil {
		return nil, firstErr
	}
	slices.SortStableFunc(pairs, func(a, b keyed[any, V]) int {
		order, err := record.Compare(a.key, b.key)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("sort by %q: %w", field, err)
		}
		return order
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return values(pairs), nil
}

func values[O, V any](pairs []keyed[O, V]) []V {
	return Map(Seq[keyed[O, V]](pairs), func(p keyed[O, V]) V {
		return p.value
	})
}

type absent struct{}

func (absent) String() string { return "<absent>" }

// Absent fills the positions Zip finds no element for.
var Absent any = absent{}

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absent)
	return ok
}

// Zip groups the i-th elements of every sequence. The result is as long as the
// longest input; shorter inputs contribute Absent.
func Zip(seqs ...[]any) [][]any {
	return ZipWith(Absent, seqs...)
}

// ZipWith is Zip with a caller chosen fill value.
func ZipWith[T any](fill T, seqs ...[]T) [][]T {
	longest := 0
	for _, s := range seqs {
		longest = max(longest, len(s))
	}
	zipped := make([][]T, longest)
	for i := range zipped {
		row := make([]T, len(seqs))
		for j, s := range seqs {
			if i < len(s) {
				row[j] = s[i]
			} else {
				row[j] = fill
			}
		}
		zipped[i] = row
	}
	return zipped
}

// Flatten collapses nested sequences (any slice or array element) into one
// level. With shallow set only the outermost level of nesting is removed.
func Flatten(nested []any, shallow bool) []any {
	return flattenInto(make([]any, 0, len(nested)), reflect.ValueOf(nested), shallow, 0)
}

func flattenInto(flat []any, items reflect.Value, shallow bool, depth int) []any {
	for i := 0; i < items.Len(); i++ {
		item := items.Index(i).Interface()
		if inner, ok := asSequence(item); ok && (!shallow || depth == 0) {
			flat = flattenInto(flat, inner, shallow, depth+1)
			continue
		}
		flat = append(flat, item)
	}
	return flat
}

func asSequence(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return rv, false
	}
}

// Intersection returns the distinct elements of the first sequence that are
// present in every other sequence, in first-sequence order.
func Intersection[T comparable](seqs ...[]T) []T {
	if len(seqs) == 0 {
		return []T{}
	}
	sets := Map(Seq[[]T](seqs[1:]), setOf[T])
	return Filter(Seq[T](Uniq(Seq[T](seqs[0]), false)), func(v T) bool {
		return Every(Seq[map[T]struct{}](sets), func(set map[T]struct{}) bool {
			_, ok := set[v]
			return ok
		})
	})
}

// Difference returns the elements of s that appear in none of others.
func Difference[T comparable](s []T, others ...[]T) []T {
	exclude := setOf(slices.Concat(others...))
	return Reject(Seq[T](s), func(v T) bool {
		_, ok := exclude[v]
		return ok
	})
}

func setOf[T comparable](s []T) map[T]struct{} {
	set := make(map[T]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return set
}

// Invoke calls fn(value, args...) for every element, collecting the results.
func Invoke[K comparable, V, R any](c Enumerable[K, V], fn func(V, ...any) R, args ...any) []R {
	return Map(c, func(v V) R {
		return fn(v, args...)
	})
}

// InvokeMethod calls the method named method on every element with args.
// Each result is the method's only return value, nil for methods without
// results, or a []any when the method returns several values.
func InvokeMethod[K comparable, V any](c Enumerable[K, V], method string, args ...any) ([]any, error) {
	var firstErr error
	results := Map(c, func(v V) any {
		if firstErr != nil {
			return nil
		}
		res, err := callMethod(reflect.ValueOf(v), method, args)
		if err != nil {
			firstErr = err
		}
		return res
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func callMethod(recv reflect.Value, method string, args []any) (any, error) {
	if !recv.IsValid() {
		return nil, fmt.Errorf("%w: %s on nil", ErrUnknownMethod, method)
	}
	m := recv.MethodByName(method)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s on %s", ErrUnknownMethod, method, recv.Type())
	}
	in, err := methodArgs(m.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", recv.Type(), method, err)
	}
	out := m.Call(in)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		multi := make([]any, len(out))
		for i, o := range out {
			multi[i] = o.Interface()
		}
		return multi, nil
	}
}

func methodArgs(mt reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: want at least %d, got %d", ErrBadArguments, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrBadArguments, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		want := mt.In(min(i, mt.NumIn()-1))
		if i >= fixed {
			want = want.Elem()
		}
		if arg == nil {
			switch want.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
				in[i] = reflect.Zero(want)
				continue
			}
			return nil, fmt.Errorf("%w: nil for %s at %d", ErrBadArguments, want, i)
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(want) {
			return nil, fmt.Errorf("%w: %s for %s at %d", ErrBadArguments, av.Type(), want, i)
		}
		in[i] = av
	}
	return in, nil
}

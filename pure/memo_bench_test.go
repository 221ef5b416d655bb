package pure_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/underbar_go/pure"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkMemoizedFib20(b *testing.B) {
	var memoFib func(int) int
	memoFib = pure.MemoizeI1O1(func(n int) int {
		if n <= 1 {
			return n
		}
		return memoFib(n-1) + memoFib(n-2)
	})

	for i := 0; i < b.N; i++ {
		_ = memoFib(20)
	}
}

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func BenchmarkMemoizedLevenshtein(b *testing.B) {
	backends := map[string]pure.Backend{
		"map":       pure.BackendMap,
		"rotating":  pure.BackendRotating,
		"ristretto": pure.BackendRistretto,
	}
	for name, backend := range backends {
		for _, size := range []uint32{8, 32} {
			b.Run(fmt.Sprintf("%s_%d", name, size), func(b *testing.B) {
				var lev func(string, string) int
				lev = pure.MemoizeI2O1(func(a, b string) int {
					if len(a) == 0 {
						return len(b)
					}
					if len(b) == 0 {
						return len(a)
					}
					if a[0] == b[0] {
						return lev(a[1:], b[1:])
					}
					return 1 + min(
						lev(a[1:], b),
						lev(a, b[1:]),
						lev(a[1:], b[1:]),
					)
				}, pure.NewConfig(backend, size, nil))

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_ = lev("kitten", "sitting")
				}
			})
		}
	}
}

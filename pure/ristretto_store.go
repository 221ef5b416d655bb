package pure

import (
	"fmt"
	"io"

	ristretto "github.com/dgraph-io/ristretto/v2"
)

var (
	_ Store[int] = &RistrettoStore[int]{}
	_ io.Closer  = &RistrettoStore[int]{}
)

// RistrettoStore is a bounded store backed by a ristretto cache holding at
// most maxEntries results. ristretto's admission policy may refuse or evict
// any entry, so a memo over it can call the wrapped function again for
// arguments it has already seen.
type RistrettoStore[O any] struct {
	cache *ristretto.Cache[string, O]
}

func NewRistrettoStore[O any](maxEntries int64) (*RistrettoStore[O], error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("ristretto store: maxEntries must be positive, got %d", maxEntries)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, O]{
		NumCounters:        max(10*maxEntries, 100),
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("ristretto store: %w", err)
	}
	return &RistrettoStore[O]{cache: cache}, nil
}

func (r *RistrettoStore[O]) Load(key Key) (O, bool) {
	return r.cache.Get(string(key))
}

// Store waits for the write to be applied so that an immediate Load sees it.
func (r *RistrettoStore[O]) Store(key Key, value O) {
	r.cache.Set(string(key), value, 1)
	r.cache.Wait()
}

// Close stops the cache's background goroutines. Later loads miss and later
// stores are dropped.
func (r *RistrettoStore[O]) Close() error {
	r.cache.Close()
	return nil
}

package pure

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Store holds memoized results by key. Implementations must be safe for
// concurrent use.
type Store[O any] interface {
	Load(key Key) (O, bool)
	Store(key Key, value O)
}

var _ Store[int] = &MapStore[int]{}

// MapStore is an unbounded store split into independently locked shards.
type MapStore[O any] struct {
	shards []mapShard[O]
}

type mapShard[O any] struct {
	mu sync.RWMutex
	m  map[Key]O
}

// NewMapStore returns a MapStore with numShards shards (at least one).
func NewMapStore[O any](numShards int) *MapStore[O] {
	numShards = max(numShards, 1)
	shards := make([]mapShard[O], numShards)
	for i := range shards {
		shards[i].m = make(map[Key]O)
	}
	return &MapStore[O]{shards: shards}
}

func (s *MapStore[O]) Load(key Key) (O, bool) {
	shard := s.shardOf(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	v, ok := shard.m[key]
	return v, ok
}

func (s *MapStore[O]) Store(key Key, value O) {
	shard := s.shardOf(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	shard.m[key] = value
}

// Len returns the number of stored results.
func (s *MapStore[O]) Len() int {
	n := 0
	for i := range s.shards {
		s.shards[i].mu.RLock()
		n += len(s.shards[i].m)
		s.shards[i].mu.RUnlock()
	}
	return n
}

func (s *MapStore[O]) shardOf(key Key) *mapShard[O] {
	return &s.shards[shardIndex(key, len(s.shards))]
}

func shardIndex(key Key, numShards int) int {
	switch numShards {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(string(key)) % uint64(numShards))
	}
}

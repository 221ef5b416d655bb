package pure

import "sync"

var _ Store[int] = &RotatingStore[int]{}

// RotatingStore is a bounded store made of two generations. New results go
// into the head generation; once it holds maxSize entries the older
// generation is dropped and becomes the new, empty head. Lookups consult both
// generations, so between maxSize and 2*maxSize recent results stay cached.
type RotatingStore[O any] struct {
	mu          sync.RWMutex
	generations [2]map[Key]O
	headIdx     int
	maxSize     int
}

// NewRotatingStore panics if maxSize is 0.
func NewRotatingStore[O any](maxSize uint32) *RotatingStore[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &RotatingStore[O]{
		generations: [2]map[Key]O{{}, {}},
		maxSize:     int(maxSize),
	}
}

func (r *RotatingStore[O]) Load(key Key) (O, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.generations[r.headIdx][key]; ok {
		return v, true
	}
	v, ok := r.generations[1-r.headIdx][key]
	return v, ok
}

func (r *RotatingStore[O]) Store(key Key, value O) {
	r.mu.Lock()
	defer r.mu.Unlock()
	head := r.generations[r.headIdx]
	if _, ok := head[key]; !ok && len(head) >= r.maxSize {
		r.headIdx = 1 - r.headIdx
		clear(r.generations[r.headIdx])
	}
	r.generations[r.headIdx][key] = value
}

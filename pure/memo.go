package pure

import (
	"io"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/on-the-ground/underbar_go/shared/log"
	"go.uber.org/zap"
)

// Memo caches the results of fn by argument list.
//
// A Memo over BackendRistretto must be closed to stop the cache's goroutines.
// The MemoizeXxx helpers hide their Memo and never close it, so pass them only
// BackendMap or BackendRotating; use NewMemo and Close for BackendRistretto.
//
// Concurrent first calls with the same arguments may each run fn; every
// later call is served from the store. fn runs without any lock held, so it
// may call back into the same Memo recursively.
type Memo[O any] struct {
	id     string
	fn     func(...any) O
	store  Store[O]
	logger *zap.Logger

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMemo wraps fn. cfg is optional; at most one may be given.
func NewMemo[O any](fn func(...any) O, cfg ...Config) *Memo[O] {
	c := normalizeConfig(cfg)
	return NewMemoWithStore(fn, newStore[O](c), c.Logger)
}

// NewMemoWithStore wraps fn over a caller supplied store.
func NewMemoWithStore[O any](fn func(...any) O, store Store[O], logger *zap.Logger) *Memo[O] {
	m := &Memo[O]{
		id:     uuid.NewString(),
		fn:     fn,
		store:  store,
		logger: log.OrNop(logger),
	}
	m.logger.Debug("created memo", zap.String("memo", m.id))
	return m
}

func (m *Memo[O]) ID() string { return m.id }

// Invoke returns the cached result for args, computing it on a miss.
func (m *Memo[O]) Invoke(args ...any) O {
	return m.InvokeWithKey(KeyOf(args...), args...)
}

// InvokeWithKey is Invoke with the cache key supplied by the caller.
func (m *Memo[O]) InvokeWithKey(key Key, args ...any) O {
	if v, ok := m.store.Load(key); ok {
		m.hits.Add(1)
		m.logger.Debug("memo hit", zap.String("memo", m.id), zap.String("key", string(key)))
		return v
	}
	v := m.fn(args...)
	m.store.Store(key, v)
	m.misses.Add(1)
	m.logger.Debug("memo miss", zap.String("memo", m.id), zap.String("key", string(key)))
	return v
}

// Close releases the store when it implements io.Closer, as RistrettoStore
// does. Calls made after Close still return fn's result, computed anew.
func (m *Memo[O]) Close() error {
	if closer, ok := m.store.(io.Closer); ok {
		m.logger.Debug("closing memo store", zap.String("memo", m.id))
		return closer.Close()
	}
	return nil
}

// Stats reports how many calls were served from the store and how many ran fn.
func (m *Memo[O]) Stats() (hits, misses uint64) {
	return m.hits.Load(), m.misses.Load()
}

func MemoizeI1O1[I1 Primitive, O1 any](
	fn func(I1) O1,
	cfg ...Config,
) func(I1) O1 {
	m := NewMemo(func(args ...any) O1 {
		return fn(args[0].(I1))
	}, cfg...)
	return func(i1 I1) O1 {
		return m.Invoke(i1)
	}
}

func MemoizeI2O1[I1, I2 Primitive, O1 any](
	fn func(I1, I2) O1,
	cfg ...Config,
) func(I1, I2) O1 {
	m := NewMemo(func(args ...any) O1 {
		return fn(args[0].(I1), args[1].(I2))
	}, cfg...)
	return func(i1 I1, i2 I2) O1 {
		return m.Invoke(i1, i2)
	}
}

func MemoizeI3O1[I1, I2, I3 Primitive, O1 any](
	fn func(I1, I2, I3) O1,
	cfg ...Config,
) func(I1, I2, I3) O1 {
	m := NewMemo(func(args ...any) O1 {
		return fn(args[0].(I1), args[1].(I2), args[2].(I3))
	}, cfg...)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return m.Invoke(i1, i2, i3)
	}
}

func MemoizeI4O1[I1, I2, I3, I4 Primitive, O1 any](
	fn func(I1, I2, I3, I4) O1,
	cfg ...Config,
) func(I1, I2, I3, I4) O1 {
	m := NewMemo(func(args ...any) O1 {
		return fn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
	}, cfg...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return m.Invoke(i1, i2, i3, i4)
	}
}

// MemoizeBy memoizes a function of a structured argument, keyed by keyFn.
// keyFn must return equal strings exactly for arguments that fn treats alike.
func MemoizeBy[I, O any](
	fn func(I) O,
	keyFn func(I) string,
	cfg ...Config,
) func(I) O {
	m := NewMemo(func(args ...any) O {
		return fn(argAt[I](args, 0))
	}, cfg...)
	return func(i I) O {
		return m.InvokeWithKey(Key(keyFn(i)), i)
	}
}

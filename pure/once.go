package pure

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Once runs fn on its first Invoke and returns that result on every call,
// whatever arguments later calls pass. If fn panics, the panic propagates
// and later calls return the zero value.
//
// Unlike Memo, Once is not reentrant: fn must not call Invoke on the same
// Once, directly or through its wrapper, or that call deadlocks. Concurrent
// callers block until the first call returns. fn may invoke other Once values.
type Once[O any] struct {
	id     string
	once   sync.Once
	called atomic.Bool
	fn     func(...any) O
	result O
	logger *zap.Logger
}

// NewOnce wraps fn. Only cfg.Logger is consulted.
func NewOnce[O any](fn func(...any) O, cfg ...Config) *Once[O] {
	o := &Once[O]{
		id:     uuid.NewString(),
		fn:     fn,
		logger: normalizeConfig(cfg).Logger,
	}
	o.logger.Debug("created once", zap.String("once", o.id))
	return o
}

func (o *Once[O]) ID() string { return o.id }

func (o *Once[O]) Invoke(args ...any) O {
	o.once.Do(func() {
		o.called.Store(true)
		o.logger.Debug("once invoked", zap.String("once", o.id), zap.Int("args", len(args)))
		o.result = o.fn(args...)
	})
	return o.result
}

// Called reports whether fn has run.
func (o *Once[O]) Called() bool {
	return o.called.Load()
}

func OnceI0O1[O1 any](fn func() O1, cfg ...Config) func() O1 {
	o := NewOnce(func(...any) O1 {
		return fn()
	}, cfg...)
	return func() O1 {
		return o.Invoke()
	}
}

func OnceI1O1[I1, O1 any](fn func(I1) O1, cfg ...Config) func(I1) O1 {
	o := NewOnce(func(args ...any) O1 {
		return fn(argAt[I1](args, 0))
	}, cfg...)
	return func(i1 I1) O1 {
		return o.Invoke(i1)
	}
}

func OnceI2O1[I1, I2, O1 any](fn func(I1, I2) O1, cfg ...Config) func(I1, I2) O1 {
	o := NewOnce(func(args ...any) O1 {
		return fn(argAt[I1](args, 0), argAt[I2](args, 1))
	}, cfg...)
	return func(i1 I1, i2 I2) O1 {
		return o.Invoke(i1, i2)
	}
}

// argAt reads args[i] as T. A nil interface argument reads as the zero T.
func argAt[T any](args []any, i int) T {
	v, _ := args[i].(T)
	return v
}

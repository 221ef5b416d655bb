package timed

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/underbar_go/shared/log"
)

var ErrInvalidThrottleConfig = errors.New("invalid throttle config")

// ThrottleConfig controls a Throttle. Leading runs the first call of a window
// immediately; Trailing runs the latest suppressed call when the window ends.
type ThrottleConfig struct {
	Wait     time.Duration
	Leading  bool
	Trailing bool
	Logger   *zap.Logger
}

// NewThrottleConfig enables both edges.
func NewThrottleConfig(wait time.Duration) ThrottleConfig {
	return ThrottleConfig{
		Wait:     wait,
		Leading:  true,
		Trailing: true,
	}
}

func (c ThrottleConfig) Validate() error {
	if c.Wait <= 0 {
		return fmt.Errorf("%w: wait must be positive, got %s", ErrInvalidThrottleConfig, c.Wait)
	}
	if !c.Leading && !c.Trailing {
		return fmt.Errorf("%w: leading and trailing are both disabled", ErrInvalidThrottleConfig)
	}
	return nil
}

// Throttle runs fn at most once per cooldown window.
//
// The window is the half-open span [start, start+Wait). A call made outside
// any window opens a new one and, with Leading, runs fn at once. A call made
// inside the window becomes the pending trailing call, replacing any earlier
// pending arguments. With Trailing, the pending call runs when the window
// ends and opens the next window. A call landing exactly on the window end
// is outside it. A leading call supersedes a pending call that is overdue.
type Throttle[A, R any] struct {
	id        string
	fn        func(...A) R
	scheduler Scheduler
	cfg       ThrottleConfig
	logger    *zap.Logger

	mu          sync.Mutex
	window      TimeSpan
	hasWindow   bool
	pending     []A
	hasPending  bool
	timer       Handle
	timerSeq    uint64
	last        R
	invocations int
}

// NewThrottle validates cfg and wraps fn. A nil s uses NewScheduler.
func NewThrottle[A, R any](s Scheduler, fn func(...A) R, cfg ThrottleConfig) (*Throttle[A, R], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		s = NewScheduler()
	}
	return &Throttle[A, R]{
		id:        uuid.NewString(),
		fn:        fn,
		scheduler: s,
		cfg:       cfg,
		logger:    log.OrNop(cfg.Logger),
	}, nil
}

func (t *Throttle[A, R]) ID() string { return t.id }

// Func returns Invoke as a plain function value.
func (t *Throttle[A, R]) Func() func(...A) R { return t.Invoke }

// Invoke returns fn's result when it runs fn on the leading edge, otherwise
// the result of the most recent invocation.
func (t *Throttle[A, R]) Invoke(args ...A) R {
	t.mu.Lock()
	now := t.scheduler.Now()
	if t.hasWindow && t.window.Contains(now) {
		t.deferLocked(now, args)
		last := t.last
		t.mu.Unlock()
		return last
	}

	t.dropPendingLocked()
	t.window, t.hasWindow = windowOf(now, t.cfg.Wait), true
	if !t.cfg.Leading {
		t.deferLocked(now, args)
		last := t.last
		t.mu.Unlock()
		return last
	}
	t.mu.Unlock()
	return t.run(args, "leading")
}

// Cancel drops the pending trailing call. It reports whether one was pending.
func (t *Throttle[A, R]) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	had := t.hasPending
	t.dropPendingLocked()
	if had {
		t.logger.Debug("throttle cancelled", zap.String("throttle", t.id))
	}
	return had
}

// Invocations is the number of times fn has run.
func (t *Throttle[A, R]) Invocations() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.invocations
}

func (t *Throttle[A, R]) deferLocked(now time.Time, args []A) {
	if !t.cfg.Trailing {
		t.logger.Debug("throttle dropped call", zap.String("throttle", t.id))
		return
	}
	t.pending, t.hasPending = slices.Clone(args), true
	if t.timer != nil {
		return
	}
	t.timerSeq++
	seq := t.timerSeq
	t.timer = t.scheduler.Schedule(func() { t.fireTrailing(seq) }, t.window.End().Sub(now))
}

func (t *Throttle[A, R]) dropPendingLocked() {
	if t.timer != nil {
		t.timer.Cancel()
		t.timer = nil
	}
	t.timerSeq++
	t.pending, t.hasPending = nil, false
}

func (t *Throttle[A, R]) fireTrailing(seq uint64) {
	t.mu.Lock()
	if seq != t.timerSeq || !t.hasPending {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	args := t.pending
	t.pending, t.hasPending = nil, false
	if t.cfg.Leading {
		t.window = windowOf(t.scheduler.Now(), t.cfg.Wait)
	} else {
		t.hasWindow = false
	}
	t.mu.Unlock()
	t.run(args, "trailing")
}

func (t *Throttle[A, R]) run(args []A, edge string) R {
	t.logger.Debug("throttle invoke",
		zap.String("throttle", t.id),
		zap.String("edge", edge),
		zap.Int("args", len(args)),
	)
	r := t.fn(args...)
	t.mu.Lock()
	t.last = r
	t.invocations++
	t.mu.Unlock()
	return r
}

package timed

import (
	"slices"
	"time"
)

// Delay calls fn(args...) once, no earlier than wait from now. The returned
// Handle cancels the call if it has not happened yet. A nil s uses NewScheduler.
func Delay[A any](s Scheduler, wait time.Duration, fn func(...A), args ...A) Handle {
	if s == nil {
		s = NewScheduler()
	}
	args = slices.Clone(args)
	return s.Schedule(func() {
		fn(args...)
	}, wait)
}

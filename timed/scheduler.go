package timed

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// Handle cancels a scheduled callback.
type Handle interface {
	// Cancel stops the callback from running. It reports false if the
	// callback already ran or was already cancelled.
	Cancel() bool
}

// Scheduler is the clock and timer source used by Delay and Throttle.
type Scheduler interface {
	Now() time.Time
	// Schedule runs callback once, no earlier than delay from now.
	Schedule(callback func(), delay time.Duration) Handle
}

// NewScheduler returns a Scheduler backed by the system clock and time.AfterFunc.
func NewScheduler() Scheduler {
	return systemScheduler{}
}

type systemScheduler struct{}

func (systemScheduler) Now() time.Time { return time.Now() }

func (systemScheduler) Schedule(callback func(), delay time.Duration) Handle {
	return timerHandle{timer: time.AfterFunc(delay, callback)}
}

type timerHandle struct {
	timer *time.Timer
}

func (h timerHandle) Cancel() bool { return h.timer.Stop() }

type TimeSpan = timespan.TimeSpan

// windowOf is the half-open span [start, start+wait).
func windowOf(start time.Time, wait time.Duration) TimeSpan {
	return timespan.BetweenTimes(start, start.Add(wait))
}

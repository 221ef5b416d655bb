// Package timedtest provides a virtual-time Scheduler for tests.
package timedtest

import (
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/on-the-ground/underbar_go/timed"
)

// FakeScheduler only moves forward when Advance is called. Callbacks run on
// the goroutine calling Advance.
type FakeScheduler struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer // sorted by due time, then scheduling order
}

var _ timed.Scheduler = (*FakeScheduler)(nil)

func NewFakeScheduler(start time.Time) *FakeScheduler {
	return &FakeScheduler{now: start}
}

func (f *FakeScheduler) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *FakeScheduler) Schedule(callback func(), delay time.Duration) timed.Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTimer{
		owner:    f,
		due:      f.now.Add(delay),
		callback: callback,
	}
	f.insertLocked(t)
	return t
}

// Advance moves the clock forward by d, firing every callback that falls due
// on the way in due-time order. The clock reads each callback's due time
// while it runs.
func (f *FakeScheduler) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	for {
		next := f.popDueLocked(target)
		if next == nil {
			break
		}
		if next.due.After(f.now) {
			f.now = next.due
		}
		f.mu.Unlock()
		next.callback()
		f.mu.Lock()
	}
	if target.After(f.now) {
		f.now = target
	}
	f.mu.Unlock()
}

// Pending is the number of callbacks scheduled and not yet run or cancelled.
func (f *FakeScheduler) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

func (f *FakeScheduler) insertLocked(t *fakeTimer) {
	idx := sort.Search(len(f.timers), func(i int) bool {
		return t.due.Before(f.timers[i].due)
	})
	f.timers = append(f.timers, nil)
	copy(f.timers[idx+1:], f.timers[idx:])
	f.timers[idx] = t
}

func (f *FakeScheduler) popDueLocked(target time.Time) *fakeTimer {
	if len(f.timers) == 0 || f.timers[0].due.After(target) {
		return nil
	}
	t := f.timers[0]
	f.timers = f.timers[1:]
	t.done = true
	return t
}

type fakeTimer struct {
	owner    *FakeScheduler
	due      time.Time
	callback func()
	done     bool
}

func (t *fakeTimer) Cancel() bool {
	f := t.owner
	f.mu.Lock()
	defer f.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	f.timers = slices.DeleteFunc(f.timers, func(other *fakeTimer) bool { return other == t })
	return true
}

// Package timed provides decorators whose behaviour depends on time: Delay
// defers a call, Throttle rate-limits one.
//
// Neither reads the system clock or starts timers directly. Both go through a
// Scheduler, so tests can swap in timedtest.FakeScheduler and drive virtual
// time deterministically:
//
//	s := timedtest.NewFakeScheduler(time.Unix(0, 0))
//	th, _ := timed.NewThrottle(s, save, timed.NewThrottleConfig(100*time.Millisecond))
//	th.Invoke("a") // runs now
//	th.Invoke("b") // deferred to the end of the window
//	s.Advance(100 * time.Millisecond)
package timed

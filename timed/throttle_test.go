package timed_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/underbar_go/shared/log"
	"github.com/on-the-ground/underbar_go/timed"
	"github.com/on-the-ground/underbar_go/timed/timedtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type recorder struct {
	calls [][]int
}

func (r *recorder) sum(args ...int) int {
	r.calls = append(r.calls, args)
	total := 0
	for _, a := range args {
		total += a
	}
	return total
}

func newThrottle(t *testing.T, s timed.Scheduler, cfg timed.ThrottleConfig) (*timed.Throttle[int, int], *recorder) {
	t.Helper()
	rec := &recorder{}
	th, err := timed.NewThrottle(s, rec.sum, cfg)
	require.NoError(t, err)
	return th, rec
}

func TestThrottle_BurstRunsLeadingAndTrailing(t *testing.T) {
	s := timedtest.NewFakeScheduler(epoch)
	th, rec := newThrottle(t, s, timed.NewThrottleConfig(100*time.Millisecond))

	th.Invoke(1)
	for i := 2; i <= 5; i++ {
		s.Advance(2 * time.Millisecond)
		th.Invoke(i)
	}
	assert.Equal(t, [][]int{{1}}, rec.calls)
	assert.Equal(t, 1, s.Pending())

	s.Advance(200 * time.Millisecond)
	assert.Equal(t, [][]int{{1}, {5}}, rec.calls)
	assert.Equal(t, 2, th.Invocations())
}

func TestThrottle_CallOnWindowEndIsLeading(t *testing.T) {
	s := timedtest.NewFakeScheduler(epoch)
	th, rec := newThrottle(t, s, timed.NewThrottleConfig(100*time.Millisecond))

	th.Invoke(1)
	s.Advance(100 * time.Millisecond)
	th.Invoke(2)

	assert.Equal(t, [][]int{{1}, {2}}, rec.calls)
	assert.Equal(t, 0, s.Pending())
}

func TestThrottle_CallJustBeforeWindowEndIsDeferred(t *testing.T) {
	s := timedtest.NewFakeScheduler(epoch)
	th, rec := newThrottle(t, s, timed.NewThrottleConfig(100*time.Millisecond))

	th.Invoke(1)
	s.Advance(99 * time.Millisecond)
	th.Invoke(2)
	assert.Equal(t, [][]int{{1}}, rec.calls)

	s.Advance(time.Millisecond)
	assert.Equal(t, [][]int{{1}, {2}}, rec.calls)
}

func TestThrottle_TrailingCallOpensNextWindow(t *testing.T) {
	s := timedtest.NewFakeScheduler(epoch)
	th, rec := newThrottle(t, s, timed.NewThrottleConfig(100*time.Millisecond))

	th.Invoke(1)
	s.Advance(50 * time.Millisecond)
	th.Invoke(2)
	s.Advance(50 * time.Millisecond) // trailing at 100ms
	assert.Equal(t, [][]int{{1}, {2}}, rec.calls)

	s.Advance(10 * time.Millisecond)
	th.Invoke(3)
	assert.Equal(t, [][]int{{1}, {2}}, rec.calls)

	s.Advance(89 * time.Millisecond)
	assert.Len(t, rec.calls, 2)
	s.Advance(time.Millisecond) // trailing at 200ms
	assert.Equal(t, [][]int{{1}, {2}, {3}}, rec.calls)
}

func TestThrottle_ReturnsLastResultWhileSuppressed(t *testing.T) {
	s := timedtest.NewFakeScheduler(epoch)
	th, _ := newThrottle(t, s, timed.NewThrottleConfig(100*time.Millisecond))

	assert.Equal(t, 3, th.Invoke(1, 2))
	assert.Equal(t, 3, th.Invoke(10))

	s.Advance(100 * time.Millisecond)
	assert.Equal(t, 10, th.Invoke(5)) // still inside the window opened by the trailing call
}

func TestThrottle_Cancel(t *testing.T) {
	s := timedtest.NewFakeScheduler(epoch)
	th, rec := newThrottle(t, s, timed.NewThrottleConfig(100*time.Millisecond))

	th.Invoke(1)
	s.Advance(10 * time.Millisecond)
	th.Invoke(2)

	assert.True(t, th.Cancel())
	assert.Equal(t, 0, s.Pending())
	s.Advance(time.Second)
	assert.Equal(t, [][]int{{1}}, rec.calls)
	assert.False(t, th.Cancel())
}

func TestThrottle_CancelThenInvokeSchedulesAgain(t *testing.T) {
	s := timedtest.NewFakeScheduler(epoch)
	th, rec := newThrottle(t, s, timed.NewThrottleConfig(100*time.Millisecond))

	th.Invoke(1)
	s.Advance(10 * time.Millisecond)
	th.Invoke(2)
	th.Cancel()
	s.Advance(10 * time.Millisecond)
	th.Invoke(3)

	s.Advance(80 * time.Millisecond)
	assert.Equal(t, [][]int{{1}, {3}}, rec.calls)
}

func TestThrottle_LeadingDisabled(t *testing.T) {
	s := timedtest.NewFakeScheduler(epoch)
	cfg := timed.NewThrottleConfig(100 * time.Millisecond)
	cfg.Leading = false
	th, rec := newThrottle(t, s, cfg)

	assert.Equal(t, 0, th.Invoke(1))
	s.Advance(10 * time.Millisecond)
	th.Invoke(2)
	assert.Empty(t, rec.calls)

	s.Advance(90 * time.Millisecond)
	assert.Equal(t, [][]int{{2}}, rec.calls)

	s.Advance(5 * time.Millisecond)
	th.Invoke(3)
	s.Advance(99 * time.Millisecond)
	assert.Len(t, rec.calls, 1)
	s.Advance(time.Millisecond)
	assert.Equal(t, [][]int{{2}, {3}}, rec.calls)
}

func TestThrottle_TrailingDisabled(t *testing.T) {
	s := timedtest.NewFakeScheduler(epoch)
	cfg := timed.NewThrottleConfig(100 * time.Millisecond)
	cfg.Trailing = false
	th, rec := newThrottle(t, s, cfg)

	th.Invoke(1)
	s.Advance(10 * time.Millisecond)
	th.Invoke(2)
	assert.Equal(t, 0, s.Pending())

	s.Advance(200 * time.Millisecond)
	th.Invoke(3)
	assert.Equal(t, [][]int{{1}, {3}}, rec.calls)
}

func TestThrottle_InvalidConfig(t *testing.T) {
	cfg := timed.NewThrottleConfig(100 * time.Millisecond)
	cfg.Leading, cfg.Trailing = false, false
	_, err := timed.NewThrottle(nil, (&recorder{}).sum, cfg)
	assert.ErrorIs(t, err, timed.ErrInvalidThrottleConfig)

	_, err = timed.NewThrottle(nil, (&recorder{}).sum, timed.NewThrottleConfig(0))
	assert.ErrorIs(t, err, timed.ErrInvalidThrottleConfig)
}

func TestThrottle_PendingArgsAreCopied(t *testing.T) {
	s := timedtest.NewFakeScheduler(epoch)
	th, rec := newThrottle(t, s, timed.NewThrottleConfig(100*time.Millisecond))

	th.Invoke(0)
	args := []int{1, 2}
	th.Invoke(args...)
	args[0] = 100

	s.Advance(100 * time.Millisecond)
	assert.Equal(t, []int{1, 2}, rec.calls[1])
}

func TestThrottle_LogsEdges(t *testing.T) {
	logger, logs := log.NewObserved(zapcore.DebugLevel)
	s := timedtest.NewFakeScheduler(epoch)
	cfg := timed.NewThrottleConfig(100 * time.Millisecond)
	cfg.Logger = logger
	th, _ := newThrottle(t, s, cfg)

	th.Invoke(1)
	th.Invoke(2)
	s.Advance(100 * time.Millisecond)

	invokes := logs.FilterMessage("throttle invoke")
	assert.Equal(t, 2, invokes.Len())
	assert.Equal(t, 1, invokes.FilterField(zap.String("edge", "leading")).Len())
	assert.Equal(t, 1, invokes.FilterField(zap.String("edge", "trailing")).Len())
	assert.Equal(t, 2, invokes.FilterField(zap.String("throttle", th.ID())).Len())
}

func TestThrottle_Func(t *testing.T) {
	s := timedtest.NewFakeScheduler(epoch)
	th, rec := newThrottle(t, s, timed.NewThrottleConfig(time.Second))

	f := th.Func()
	f(7)
	f(8)
	assert.Equal(t, [][]int{{7}}, rec.calls)
}

func TestThrottle_NilSchedulerUsesSystemClock(t *testing.T) {
	th, err := timed.NewThrottle(nil, func(args ...int) int { return args[0] }, timed.NewThrottleConfig(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 9, th.Invoke(9))
	assert.Equal(t, 9, th.Invoke(10))
	assert.True(t, th.Cancel())
}

func TestThrottle_SystemScheduler(t *testing.T) {
	th, err := timed.NewThrottle(timed.NewScheduler(), func(args ...int) int {
		return len(args)
	}, timed.NewThrottleConfig(20*time.Millisecond))
	require.NoError(t, err)

	th.Invoke(1)
	th.Invoke(2)
	th.Invoke(3)

	assert.Eventually(t, func() bool {
		return th.Invocations() == 2
	}, time.Second, 5*time.Millisecond)
}

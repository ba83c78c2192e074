package toast_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testclock "k8s.io/utils/clock/testing"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

func TestTimerScheduler(t *testing.T) {
	t.Parallel()

	t.Run("fires once", func(t *testing.T) {
		t.Parallel()
		s := toast.NewTimerScheduler()
		fired := make(chan string, 2)
		s.Schedule("a", 10*time.Millisecond, func(id string) { fired <- id })

		select {
		case id := <-fired:
			assert.Equal(t, "a", id)
		case <-time.After(time.Second):
			t.Fatal("timer did not fire")
		}
		assert.Equal(t, 0, s.Pending())

		select {
		case <-fired:
			t.Fatal("timer fired twice")
		case <-time.After(30 * time.Millisecond):
		}
	})

	t.Run("cancel prevents firing", func(t *testing.T) {
		t.Parallel()
		s := toast.NewTimerScheduler()
		var calls atomic.Int32
		s.Schedule("a", 20*time.Millisecond, func(string) { calls.Add(1) })
		s.Cancel("a")
		s.Cancel("a")
		s.Cancel("unknown")

		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, int32(0), calls.Load())
		assert.Equal(t, 0, s.Pending())
	})

	t.Run("reschedule replaces prior timer", func(t *testing.T) {
		t.Parallel()
		s := toast.NewTimerScheduler()
		var calls atomic.Int32
		s.Schedule("a", 10*time.Millisecond, func(string) { calls.Add(10) })
		s.Schedule("a", 20*time.Millisecond, func(string) { calls.Add(1) })
		assert.Equal(t, 1, s.Pending())

		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("cancel all", func(t *testing.T) {
		t.Parallel()
		s := toast.NewTimerScheduler()
		var calls atomic.Int32
		for _, id := range []string{"a", "b", "c"} {
			s.Schedule(id, 20*time.Millisecond, func(string) { calls.Add(1) })
		}
		assert.Equal(t, 3, s.Pending())
		s.CancelAll()

		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("cancel racing with fire runs callback at most once", func(t *testing.T) {
		t.Parallel()
		s := toast.NewTimerScheduler()
		var calls atomic.Int32
		var wg sync.WaitGroup
		for range 100 {
			s.Schedule("a", 0, func(string) { calls.Add(1) })
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Cancel("a")
			}()
			wg.Wait()
			time.Sleep(time.Millisecond)
		}
		assert.LessOrEqual(t, calls.Load(), int32(100))
		assert.Equal(t, 0, s.Pending())
	})
}

func TestTimerScheduler_FakeClock(t *testing.T) {
	t.Parallel()

	clk := testclock.NewFakeClock(time.Now())
	s := toast.NewTimerSchedulerWithClock(clk)

	var mu sync.Mutex
	var fired []string
	record := func(id string) {
		mu.Lock()
		fired = append(fired, id)
		mu.Unlock()
	}
	firedIDs := func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), fired...)
	}

	s.Schedule("short", time.Second, record)
	s.Schedule("long", 5*time.Second, record)
	s.Schedule("cancelled", time.Second, record)
	s.Cancel("cancelled")
	assert.Equal(t, 2, s.Pending())

	clk.Step(999 * time.Millisecond)
	assert.Empty(t, firedIDs())

	clk.Step(time.Millisecond)
	require.Eventually(t, func() bool { return len(firedIDs()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, []string{"short"}, firedIDs())
	assert.Equal(t, 1, s.Pending())

	s.Schedule("long", 10*time.Second, record)
	clk.Step(5 * time.Second)
	assert.Never(t, func() bool { return len(firedIDs()) > 1 }, 20*time.Millisecond, time.Millisecond)

	clk.Step(5 * time.Second)
	require.Eventually(t, func() bool { return len(firedIDs()) == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, []string{"short", "long"}, firedIDs())
	assert.Zero(t, s.Pending())
}

func TestManualScheduler(t *testing.T) {
	t.Parallel()

	t.Run("fires when due", func(t *testing.T) {
		t.Parallel()
		s := toast.NewManualScheduler()
		var fired []string
		s.Schedule("a", time.Second, func(id string) { fired = append(fired, id) })

		s.Advance(999 * time.Millisecond)
		assert.Empty(t, fired)
		assert.True(t, s.Scheduled("a"))

		s.Advance(time.Millisecond)
		assert.Equal(t, []string{"a"}, fired)
		assert.False(t, s.Scheduled("a"))
		assert.Equal(t, time.Second, s.Elapsed())
	})

	t.Run("fires in deadline order", func(t *testing.T) {
		t.Parallel()
		s := toast.NewManualScheduler()
		var fired []string
		record := func(id string) { fired = append(fired, id) }
		s.Schedule("late", 3*time.Second, record)
		s.Schedule("early", time.Second, record)
		s.Schedule("tie-1", 2*time.Second, record)
		s.Schedule("tie-2", 2*time.Second, record)

		s.Advance(10 * time.Second)
		assert.Equal(t, []string{"early", "tie-1", "tie-2", "late"}, fired)
	})

	t.Run("callbacks may schedule more timers", func(t *testing.T) {
		t.Parallel()
		s := toast.NewManualScheduler()
		var fired []string
		s.Schedule("a", time.Second, func(id string) {
			fired = append(fired, id)
			s.Schedule("b", time.Second, func(id string) { fired = append(fired, id) })
		})

		s.Advance(3 * time.Second)
		assert.Equal(t, []string{"a", "b"}, fired)
	})

	t.Run("cancel", func(t *testing.T) {
		t.Parallel()
		s := toast.NewManualScheduler()
		called := false
		s.Schedule("a", time.Second, func(string) { called = true })
		s.Schedule("b", time.Second, func(string) { called = true })
		s.Cancel("a")
		assert.Equal(t, 1, s.Pending())
		s.CancelAll()
		assert.Equal(t, 0, s.Pending())

		s.Advance(time.Hour)
		assert.False(t, called)
	})
}

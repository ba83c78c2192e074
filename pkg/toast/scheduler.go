package toast

import (
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// Scheduler runs one cancellable timer per toast id.
//
// Implementations must not call onExpire while holding a lock that Cancel
// or Schedule need, and must never invoke onExpire synchronously from
// Schedule.
type Scheduler interface {
	// Schedule arranges for onExpire(id) after d. An existing timer for id
	// is cancelled first.
	Schedule(id string, d time.Duration, onExpire func(id string))
	// Cancel stops the timer for id. Unknown ids are ignored.
	Cancel(id string)
	// CancelAll stops every pending timer.
	CancelAll()
}

// TimerScheduler is the runtime Scheduler backed by the clock's AfterFunc.
// onExpire runs on the timer's goroutine, at most once per Schedule call.
type TimerScheduler struct {
	clock  clock.WithDelayedExecution
	mu     sync.Mutex
	timers map[string]*timerEntry
}

type timerEntry struct {
	timer clock.Timer
}

// NewTimerScheduler returns a scheduler on the wall clock.
func NewTimerScheduler() *TimerScheduler {
	return NewTimerSchedulerWithClock(clock.RealClock{})
}

// NewTimerSchedulerWithClock returns a scheduler on clk. Tests pass a
// k8s.io/utils/clock/testing.FakeClock to step real timers.
func NewTimerSchedulerWithClock(clk clock.WithDelayedExecution) *TimerScheduler {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &TimerScheduler{clock: clk, timers: make(map[string]*timerEntry)}
}

func (s *TimerScheduler) Schedule(id string, d time.Duration, onExpire func(id string)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.timers[id]; ok {
		prev.timer.Stop()
	}

	entry := &timerEntry{}
	// The callback needs s.mu, so even a zero delay cannot observe the map
	// before the entry is stored below.
	entry.timer = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		cur, ok := s.timers[id]
		if !ok || cur != entry {
			// Cancelled or rescheduled after the timer fired.
			s.mu.Unlock()
			return
		}
		delete(s.timers, id)
		s.mu.Unlock()

		onExpire(id)
	})
	s.timers[id] = entry
}

func (s *TimerScheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.timers[id]; ok {
		entry.timer.Stop()
		delete(s.timers, id)
	}
}

func (s *TimerScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.timers {
		entry.timer.Stop()
		delete(s.timers, id)
	}
}

// Pending returns the number of live timers.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

package toast

import (
	"sync"
	"time"
)

// ManualScheduler is a Scheduler driven by an explicit clock. Nothing fires
// until Advance is called, which makes timer behaviour deterministic in
// tests and dry runs.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers map[string]*manualTimer
}

type manualTimer struct {
	id       string
	deadline time.Duration
	seq      uint64
	onExpire func(string)
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{timers: make(map[string]*manualTimer)}
}

func (s *ManualScheduler) Schedule(id string, d time.Duration, onExpire func(id string)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.timers[id] = &manualTimer{
		id:       id,
		deadline: s.now + max(d, 0),
		seq:      s.seq,
		onExpire: onExpire,
	}
}

func (s *ManualScheduler) Cancel(id string) {
	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()
}

func (s *ManualScheduler) CancelAll() {
	s.mu.Lock()
	clear(s.timers)
	s.mu.Unlock()
}

// Advance moves the clock forward by d, firing due timers in deadline
// order. Timers scheduled by a callback fire in the same call if they fall
// due before the new time.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDue(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = next.deadline
		delete(s.timers, next.id)
		s.mu.Unlock()

		next.onExpire(next.id)
	}
}

func (s *ManualScheduler) nextDue(target time.Duration) *manualTimer {
	var next *manualTimer
	for _, t := range s.timers {
		if t.deadline > target {
			continue
		}
		if next == nil || t.deadline < next.deadline || (t.deadline == next.deadline && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

// Elapsed returns the total time advanced so far.
func (s *ManualScheduler) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of live timers.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Scheduled reports whether id has a live timer.
func (s *ManualScheduler) Scheduled(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[id]
	return ok
}

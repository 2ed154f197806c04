package testutil

import (
	"sync"
	"time"
)

// ManualScheduler records repeating callbacks and runs them only when the
// test calls Fire. Stopped handles stay recorded so tests can fire stale
// ticks on purpose.
type ManualScheduler struct {
	mu      sync.Mutex
	handles []*manualHandle
}

type manualHandle struct {
	interval time.Duration
	fn       func()
	stopped  bool
}

// NewManualScheduler returns an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Every registers fn and returns its stop function.
func (s *ManualScheduler) Every(interval time.Duration, fn func()) func() {
	handle := &manualHandle{interval: interval, fn: fn}
	s.mu.Lock()
	s.handles = append(s.handles, handle)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		handle.stopped = true
		s.mu.Unlock()
	}
}

// Fire runs every active callback once.
func (s *ManualScheduler) Fire() {
	for _, fn := range s.callbacks(false) {
		fn()
	}
}

// FireN calls Fire n times.
func (s *ManualScheduler) FireN(n int) {
	for i := 0; i < n; i++ {
		s.Fire()
	}
}

// FireStale runs callbacks whose handles were already stopped, simulating a
// tick that was in flight when stop was called.
func (s *ManualScheduler) FireStale() {
	for _, fn := range s.callbacks(true) {
		fn()
	}
}

// Active returns the number of handles not yet stopped.
func (s *ManualScheduler) Active() int {
	return len(s.callbacks(false))
}

// Registered returns the number of handles ever created.
func (s *ManualScheduler) Registered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// Interval returns the interval of the most recently registered handle.
func (s *ManualScheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.handles) == 0 {
		return 0
	}
	return s.handles[len(s.handles)-1].interval
}

func (s *ManualScheduler) callbacks(stopped bool) []func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var fns []func()
	for _, handle := range s.handles {
		if handle.stopped == stopped {
			fns = append(fns, handle.fn)
		}
	}
	return fns
}

package animation

import (
	"sync"
	"time"
)

// Scheduler is the frame source for tickers. The host calls Step once per
// frame (a display link, a terminal tick, or a test loop); every active
// ticker then receives the time elapsed since it started.
//
// Each Scheduler owns its clock, so two hosts in the same process never
// share animation time.
type Scheduler struct {
	clock Clock

	mu     sync.Mutex
	active []*Ticker
}

// NewScheduler creates a scheduler reading time from clock. A nil clock
// uses [SystemClock].
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// Now returns the current time from the scheduler's clock.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [IntAnimator].
// Most code should use an animator rather than a Ticker directly.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// NewTicker creates an inactive ticker bound to s.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

// Start activates the ticker. Elapsed time is measured from this call.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	s := t.scheduler
	s.mu.Lock()
	s.active = append(s.active, t)
	s.mu.Unlock()
}

// Stop deactivates the ticker. Stopping an inactive ticker does nothing.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	s := t.scheduler
	s.mu.Lock()
	for i, other := range s.active {
		if other == t {
			s.active = append(s.active[:i], s.active[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started, or 0 when inactive.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}

// Step advances all active tickers, in start order.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.active) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks may start or stop tickers.
	tickers := make([]*Ticker, len(s.active))
	copy(tickers, s.active)
	s.mu.Unlock()

	now := s.Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) > 0
}

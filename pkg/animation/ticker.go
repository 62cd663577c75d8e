// Package animation provides the timing primitives behind the progress ring:
// a frame [Scheduler] stepped by the host, [Ticker]s that report elapsed
// time, a [RepeatingController] that turns elapsed time into an endless
// sequence of 0..1 laps, and easing curves such as [FastOutSlowIn].
//
// Nothing in this package spawns goroutines or takes locks. The host owns
// the frame loop and calls [Scheduler.Step] once per frame from the same
// goroutine that starts and stops animations.
package animation

import "time"

// Scheduler delivers frame ticks to its active tickers. It is not safe for
// concurrent use: the host calls Step from the same goroutine that starts and
// stops tickers, once per frame.
type Scheduler struct {
	// Clock overrides the package clock when set.
	Clock Clock

	active []*Ticker
}

// NewScheduler creates a scheduler reading time from c, or from the package
// clock when c is nil.
func NewScheduler(c Clock) *Scheduler {
	return &Scheduler{Clock: c}
}

func (s *Scheduler) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return Now()
}

// NewTicker creates a stopped ticker bound to this scheduler.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

// Step advances all active tickers. Tickers started or stopped by a
// callback take effect from the next Step, except that a stopped ticker is
// never called again.
func (s *Scheduler) Step() {
	if len(s.active) == 0 {
		return
	}
	tickers := make([]*Ticker, len(s.active))
	copy(tickers, s.active)
	now := s.now()
	for _, t := range tickers {
		if t.isActive && t.callback != nil {
			t.callback(now.Sub(t.start))
		}
	}
}

// HasActiveTickers reports whether any ticker is running.
func (s *Scheduler) HasActiveTickers() bool {
	return len(s.active) > 0
}

func (s *Scheduler) add(t *Ticker) {
	s.active = append(s.active, t)
}

func (s *Scheduler) remove(t *Ticker) {
	for i, other := range s.active {
		if other == t {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}

// Ticker calls a callback on each scheduler step while active.
//
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker. Stopping an inactive ticker is a no-op.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.now().Sub(t.start)
}

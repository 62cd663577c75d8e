package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of a repeating animation.
//
//	          Start()
//	Stopped ──────────► Running ──┐
//	   ▲                   │  ▲   │ lap completes
//	   └──── Stop() ───────┘  └───┘
//
// Running has no terminal state: laps repeat until Stop is called.
type AnimationStatus int

const (
	// AnimationStopped means no ticks are delivered.
	AnimationStopped AnimationStatus = iota
	// AnimationRunning means the controller is cycling through laps.
	AnimationRunning
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationStopped:
		return "stopped"
	case AnimationRunning:
		return "running"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// RepeatingController produces a normalized lap position that runs from 0
// towards 1 over Duration and then restarts at 0, forever.
//
// On every tick the controller first fires repeat listeners once per lap
// boundary crossed since the previous tick, then updates Value and fires
// value listeners. Long gaps between ticks therefore still report every
// completed lap in order.
//
// Always call Dispose when done to stop the animation and release listeners.
type RepeatingController struct {
	// Value is the current eased position within the lap, in [0, 1).
	Value float64

	// Duration is the length of one lap.
	Duration time.Duration

	// Curve transforms linear lap progress (optional).
	Curve func(float64) float64

	scheduler       *Scheduler
	status          AnimationStatus
	ticker          *Ticker
	laps            int64
	listeners       map[int]func()
	repeatListeners map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewRepeatingController creates a stopped controller whose ticks come from
// scheduler.
func NewRepeatingController(scheduler *Scheduler, duration time.Duration) *RepeatingController {
	return &RepeatingController{
		Duration:        duration,
		Curve:           LinearCurve,
		scheduler:       scheduler,
		status:          AnimationStopped,
		listeners:       make(map[int]func()),
		repeatListeners: make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Start begins a fresh cycle at lap position 0. Any cycle already in flight
// is cancelled first, so calling Start while running never delivers
// duplicate ticks.
func (c *RepeatingController) Start() {
	c.cancelTicker()
	c.Value = 0
	c.laps = 0
	c.ticker = c.scheduler.NewTicker(c.tick)
	c.ticker.Start()
	c.setStatus(AnimationRunning)
}

// Stop cancels the cycle at the current value. No listener fires after
// Stop returns.
func (c *RepeatingController) Stop() {
	c.cancelTicker()
	c.setStatus(AnimationStopped)
}

func (c *RepeatingController) cancelTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

func (c *RepeatingController) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		return
	}
	if elapsed < 0 {
		elapsed = 0
	}
	current := c.ticker
	laps := int64(elapsed / c.Duration)
	for c.laps < laps {
		c.laps++
		c.notifyRepeat()
		// A repeat listener restarted or stopped the cycle.
		if c.ticker != current {
			return
		}
	}

	progress := float64(elapsed-time.Duration(laps)*c.Duration) / float64(c.Duration)
	if c.Curve != nil {
		progress = c.Curve(progress)
	}
	c.Value = progress
	c.notifyListeners()
}

// Status returns the current animation status.
func (c *RepeatingController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the controller is cycling.
func (c *RepeatingController) IsAnimating() bool {
	return c.status == AnimationRunning
}

// CompletedLaps returns the number of lap boundaries crossed since Start.
func (c *RepeatingController) CompletedLaps() int64 {
	return c.laps
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *RepeatingController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddRepeatListener adds a callback that fires each time a lap completes,
// before the value for the next lap is published.
// Returns an unsubscribe function.
func (c *RepeatingController) AddRepeatListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.repeatListeners[id] = fn
	return func() {
		delete(c.repeatListeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *RepeatingController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *RepeatingController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *RepeatingController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

func (c *RepeatingController) notifyRepeat() {
	for _, listener := range c.repeatListeners {
		listener()
	}
}

// Dispose cleans up resources used by the controller.
func (c *RepeatingController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.repeatListeners = nil
	c.statusListeners = nil
}

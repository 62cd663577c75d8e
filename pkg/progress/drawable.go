package progress

import (
	"math"
	"time"

	"github.com/luboganev/circular-progress-view/pkg/animation"
	"github.com/luboganev/circular-progress-view/pkg/rendering"
)

const (
	// LapDuration is how long one grow-and-shrink cycle takes.
	LapDuration = 1332 * time.Millisecond

	// shrinkOffset is the lap position where growing turns into shrinking.
	shrinkOffset = 0.5

	// ringRotation is how far the trims advance per lap on top of the arc
	// itself, so consecutive laps start further round the circle.
	ringRotation = 1 - (maxArc - minArc)

	// groupFullRotation is how far, in degrees, the whole drawing spins
	// during one lap.
	groupFullRotation = 1080.0 / 5.0
)

// Drawable animates a Ring. It owns the lap cycle, the whole-drawing group
// rotation and the bounds the ring is inscribed in.
//
// A Drawable is driven by the ticks of the scheduler it was created with and,
// like the scheduler, must only be used from the goroutine that steps it.
type Drawable struct {
	ring       *Ring
	controller *animation.RepeatingController
	ease       func(float64) float64

	bounds        rendering.Rect
	groupRotation float64
	lapCount      float64
	invalidate    func()
}

// NewDrawable creates a stopped drawable with a default ring, ticking from
// scheduler.
func NewDrawable(scheduler *animation.Scheduler) *Drawable {
	d := &Drawable{
		ring:       NewRing(),
		controller: animation.NewRepeatingController(scheduler, LapDuration),
		ease:       animation.FastOutSlowIn,
	}
	d.controller.Curve = animation.LinearCurve
	d.controller.AddListener(d.onTick)
	d.controller.AddRepeatListener(d.onLapComplete)
	return d
}

// SetInvalidateCallback registers fn to be called whenever the drawable
// needs to be redrawn. Pass nil to clear it.
func (d *Drawable) SetInvalidateCallback(fn func()) {
	d.invalidate = fn
}

func (d *Drawable) invalidateSelf() {
	if d.invalidate != nil {
		d.invalidate()
	}
}

// Ring exposes the animated geometry.
func (d *Drawable) Ring() *Ring { return d.ring }

// StrokeWidth returns the ring's stroke width in pixels.
func (d *Drawable) StrokeWidth() float64 { return d.ring.StrokeWidth() }

// SetStrokeWidth changes the ring's stroke width, keeping its outer edge
// fixed. See Ring.SetStrokeWidth for how unfit widths are handled.
func (d *Drawable) SetStrokeWidth(px float64) {
	d.ring.SetStrokeWidth(px)
	d.invalidateSelf()
}

// Tint returns the ring color.
func (d *Drawable) Tint() rendering.Color { return d.ring.Tint() }

// SetTint changes the ring color.
func (d *Drawable) SetTint(c rendering.Color) {
	d.ring.SetTint(c)
	d.invalidateSelf()
}

// Bounds returns the rectangle the ring is drawn in.
func (d *Drawable) Bounds() rendering.Rect { return d.bounds }

// SetBounds moves the drawable and refits the ring to the new size.
func (d *Drawable) SetBounds(bounds rendering.Rect) {
	d.bounds = bounds
	d.updateSize()
	d.invalidateSelf()
}

func (d *Drawable) updateSize() {
	minSize := math.Min(d.bounds.Width(), d.bounds.Height())
	d.ring.SetCenterRadius(minSize/2 - d.ring.StrokeWidth())
}

// GroupRotation returns the whole-drawing rotation in degrees.
func (d *Drawable) GroupRotation() float64 { return d.groupRotation }

// LapCount returns the number of laps completed since the last Start.
func (d *Drawable) LapCount() float64 { return d.lapCount }

// IsRunning reports whether the lap cycle is active.
func (d *Drawable) IsRunning() bool { return d.controller.IsAnimating() }

// Start begins a fresh cycle from a zeroed ring. Calling Start while running
// restarts the cycle.
func (d *Drawable) Start() {
	d.controller.Stop()
	d.ring.StoreOriginals()
	d.ring.ResetOriginals()
	d.lapCount = 0
	d.controller.Start()
}

// Stop ends the cycle and zeroes the ring. No tick changes the ring after
// Stop returns.
func (d *Drawable) Stop() {
	d.controller.Stop()
	d.groupRotation = 0
	d.ring.ResetOriginals()
	d.invalidateSelf()
}

func (d *Drawable) onTick() {
	d.ApplyTransformation(d.controller.Value, false)
	d.invalidateSelf()
}

func (d *Drawable) onLapComplete() {
	d.ApplyTransformation(1, true)
	d.ring.StoreOriginals()
	d.lapCount++
}

// ApplyTransformation moves the ring to lap position t in [0, 1]. The arc
// grows from its start trim during the first half of the lap and shrinks
// towards its end trim during the second half.
//
// A call with t == 1 is ignored unless lastFrame marks the completion of a
// lap. Values of t outside [0, 1] are clamped and NaN is ignored.
func (d *Drawable) ApplyTransformation(t float64, lastFrame bool) {
	if math.IsNaN(t) {
		return
	}
	t = min(max(t, 0), 1)
	if t == 1 && !lastFrame {
		return
	}

	r := d.ring
	var startTrim, endTrim float64
	if t < shrinkOffset {
		r.Growing = true
		scaled := t / shrinkOffset
		startTrim = r.StartingStartTrim
		endTrim = startTrim + (maxArc-minArc)*d.ease(scaled) + minArc
	} else {
		r.Growing = false
		scaled := (t - shrinkOffset) / (1 - shrinkOffset)
		endTrim = r.StartingStartTrim + (maxArc - minArc)
		startTrim = endTrim - ((maxArc-minArc)*(1-d.ease(scaled)) + minArc)
	}

	r.StartTrim = startTrim
	r.EndTrim = endTrim
	r.Rotation = r.StartingRotation + ringRotation*t
	d.groupRotation = groupFullRotation * (t + d.lapCount)
}

// Describe lays out the current frame inside the drawable's bounds.
func (d *Drawable) Describe() ArcDescription {
	return d.ring.Describe(d.bounds)
}

// Draw paints the current frame: the ring, spun by the group rotation about
// the center of the bounds.
func (d *Drawable) Draw(canvas rendering.Canvas) {
	canvas.Save()
	spin := math.Mod(d.groupRotation, 360)
	rendering.RotateAround(canvas, d.bounds.Center(), rendering.DegreesToRadians(spin))
	d.ring.Draw(canvas, d.bounds)
	canvas.Restore()
}

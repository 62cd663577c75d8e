package progress

import (
	"math"

	"github.com/luboganev/circular-progress-view/pkg/rendering"
)

const (
	// DefaultStrokeWidth is the stroke width of a new ring, and the width a
	// ring falls back to when a requested width cannot fit.
	DefaultStrokeWidth = 4.0

	// DefaultRadius is the center radius of a new ring.
	DefaultRadius = 24.0

	// maxArc is the widest fraction of the circle the arc ever covers. It is
	// also the length of the gradient tail.
	maxArc = 0.5

	// minArc is the shortest visible arc fraction.
	minArc = 0.0

	// gradientEdge separates the bright head of the tail from the
	// transparent remainder of the circle.
	gradientEdge = 0.0001
)

// DefaultTint is the tint of a new ring.
var DefaultTint = rendering.ColorBlack

// ArcDescription is everything a surface needs to draw one frame of the
// ring, before the group rotation is applied.
type ArcDescription struct {
	// ArcRect is the square the arc's center line is inscribed in.
	ArcRect rendering.Rect `yaml:"arc_rect"`

	// StartAngle is where the arc begins, in degrees clockwise from +x.
	// It is not reduced modulo 360.
	StartAngle float64 `yaml:"start_angle"`

	// SweepAngle is the arc length in degrees.
	SweepAngle float64 `yaml:"sweep_angle"`

	// Stops are the five sweep gradient stops fading the arc's tail.
	Stops []rendering.GradientStop `yaml:"stops"`
}

// Ring is the geometry of the progress arc: where its two ends sit on the
// circle, how far it is rotated, and how it is stroked.
//
// Trims and rotation are fractions of a full turn. They accumulate across
// laps and are only reduced modulo 1 when a frame is described.
type Ring struct {
	StartTrim float64
	EndTrim   float64
	Rotation  float64

	// Starting values are the trims and rotation captured at the last lap
	// boundary or restart. Each lap eases away from them.
	StartingStartTrim float64
	StartingEndTrim   float64
	StartingRotation  float64

	// Growing is true while the arc expands during the first half of a lap.
	Growing bool

	strokeWidth     float64
	centerRadius    float64
	tint            rendering.Color
	tintTransparent rendering.Color
}

// NewRing returns a ring with the default stroke width, radius and tint.
func NewRing() *Ring {
	r := &Ring{
		Growing:      true,
		strokeWidth:  DefaultStrokeWidth,
		centerRadius: DefaultRadius,
	}
	r.SetTint(DefaultTint)
	return r
}

// StrokeWidth returns the stroke width in pixels.
func (r *Ring) StrokeWidth() float64 { return r.strokeWidth }

// CenterRadius returns the radius of the circle the arc traces, measured to
// the inner edge of the stroke.
func (r *Ring) CenterRadius() float64 { return r.centerRadius }

// SetCenterRadius sets the center radius directly.
func (r *Ring) SetCenterRadius(radius float64) { r.centerRadius = radius }

// SetStrokeWidth changes the stroke width while keeping the outer edge of the
// ring in place. A width that would leave no room inside the ring, or is not
// a finite positive number, resets the width to DefaultStrokeWidth and
// leaves the radius alone.
func (r *Ring) SetStrokeWidth(px float64) {
	if px > 0 && !math.IsInf(px, 0) {
		newRadius := r.centerRadius - (px - r.strokeWidth)
		if newRadius > 0 {
			r.centerRadius = newRadius
			r.strokeWidth = px
			return
		}
	}
	r.strokeWidth = DefaultStrokeWidth
}

// Tint returns the ring color.
func (r *Ring) Tint() rendering.Color { return r.tint }

// SetTint sets the ring color and its fully transparent counterpart.
func (r *Ring) SetTint(c rendering.Color) {
	r.tint = c
	r.tintTransparent = c.WithAlpha(0)
}

// StoreOriginals snapshots the current trims and rotation as the baseline
// for the next lap.
func (r *Ring) StoreOriginals() {
	r.StartingStartTrim = r.StartTrim
	r.StartingEndTrim = r.EndTrim
	r.StartingRotation = r.Rotation
}

// ResetOriginals zeroes every trim, rotation and snapshot.
func (r *Ring) ResetOriginals() {
	r.StartingStartTrim = 0
	r.StartingEndTrim = 0
	r.StartingRotation = 0
	r.StartTrim = 0
	r.EndTrim = 0
	r.Rotation = 0
	r.Growing = true
}

// ArcLength returns the visible arc as a fraction of the circle.
func (r *Ring) ArcLength() float64 {
	return r.EndTrim - r.StartTrim
}

// Describe lays out the current frame inside bounds.
func (r *Ring) Describe(bounds rendering.Rect) ArcDescription {
	arcRadius := r.centerRadius + r.strokeWidth/2
	startAngle := (r.StartTrim + r.Rotation) * 360
	endAngle := (r.EndTrim + r.Rotation) * 360
	return ArcDescription{
		ArcRect:    rendering.RectFromCenter(bounds.Center(), arcRadius),
		StartAngle: startAngle,
		SweepAngle: endAngle - startAngle,
		Stops:      r.gradientStops(),
	}
}

// gradientStops places the fading tail so that it ends at the leading end of
// the arc. While growing the window opens at the start trim; while shrinking
// it closes at the end trim.
func (r *Ring) gradientStops() []rendering.GradientStop {
	var start, end float64
	if r.Growing {
		start = unitFraction(r.StartTrim + r.Rotation)
		end = start + maxArc
	} else {
		end = unitFraction(r.EndTrim + r.Rotation)
		start = end - maxArc
		if start < 0 {
			start++
			end++
		}
	}

	if end < 1 {
		head := math.Min(end+gradientEdge, 1)
		return []rendering.GradientStop{
			{Position: 0, Color: r.tintTransparent},
			{Position: start, Color: r.tintTransparent},
			{Position: end, Color: r.tint},
			{Position: head, Color: r.tintTransparent},
			{Position: 1, Color: r.tintTransparent},
		}
	}

	// The tail crosses the seam at 0/1. Both sides of the seam share the
	// color the tail has reached there.
	wrapped := end - 1
	alpha := int(((maxArc - wrapped) / maxArc) * 255)
	alpha = min(max(alpha, 0), 255)
	seam := r.tint.WithAlpha(uint8(alpha))
	return []rendering.GradientStop{
		{Position: 0, Color: seam},
		{Position: wrapped, Color: r.tint},
		{Position: math.Min(wrapped+gradientEdge, start), Color: r.tintTransparent},
		{Position: start, Color: r.tintTransparent},
		{Position: 1, Color: seam},
	}
}

// Draw strokes the arc inside bounds. Nothing is drawn when the ring does
// not fit or the arc is empty.
func (r *Ring) Draw(canvas rendering.Canvas, bounds rendering.Rect) {
	if bounds.IsEmpty() {
		return
	}
	desc := r.Describe(bounds)
	if desc.ArcRect.IsEmpty() || desc.SweepAngle == 0 || math.IsNaN(desc.SweepAngle) {
		return
	}
	paint := rendering.StrokePaint(rendering.NewSweepGradient(bounds.Center(), desc.Stops), r.strokeWidth, rendering.CapSquare)
	start := math.Mod(desc.StartAngle, 360)
	canvas.DrawArc(desc.ArcRect, rendering.DegreesToRadians(start), rendering.DegreesToRadians(desc.SweepAngle), paint)
}

// unitFraction reduces x into [0, 1).
func unitFraction(x float64) float64 {
	f := math.Mod(x, 1)
	if f < 0 {
		f++
	}
	if f >= 1 {
		f = 0
	}
	return f
}

package rendering

import "math"

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64 `yaml:"position"`
	Color    Color   `yaml:"color"`
}

// Gradient is an angular gradient around Center. Position 0 lies on the
// positive x axis and positions increase clockwise in screen coordinates,
// reaching 1 after a full turn.
type Gradient struct {
	Center Offset
	stops  []GradientStop
}

// NewSweepGradient constructs a sweep gradient. The stops are copied.
func NewSweepGradient(center Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Center: center,
		stops:  cloneGradientStops(stops),
	}
}

// Stops returns the gradient stops.
func (g *Gradient) Stops() []GradientStop {
	if g == nil {
		return nil
	}
	return g.stops
}

// IsValid reports whether the gradient has usable stops. Stop positions must
// lie in [0, 1] and never decrease.
func (g *Gradient) IsValid() bool {
	if g == nil || len(g.stops) < 2 {
		return false
	}
	prev := 0.0
	for _, stop := range g.stops {
		if stop.Position < 0 || stop.Position > 1 || stop.Position < prev {
			return false
		}
		prev = stop.Position
	}
	return true
}

// ColorAt returns the gradient color at position t, interpolating between
// neighbouring stops. Coincident stops produce a hard edge.
func ColorAt(stops []GradientStop, t float64) Color {
	if len(stops) == 0 {
		return ColorTransparent
	}
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		next := stops[i]
		if t > next.Position {
			continue
		}
		prev := stops[i-1]
		span := next.Position - prev.Position
		if span <= 0 {
			return next.Color
		}
		return LerpColor(prev.Color, next.Color, (t-prev.Position)/span)
	}
	return last.Color
}

// ColorAtPoint evaluates the gradient at a point in the gradient's own
// coordinate space.
func (g *Gradient) ColorAtPoint(p Offset) Color {
	if g == nil {
		return ColorTransparent
	}
	return ColorAt(g.stops, SweepPosition(g.Center, p))
}

// SweepPosition maps a point to its fractional angle around center in
// [0, 1). The center itself maps to 0.
func SweepPosition(center, p Offset) float64 {
	dx := p.X - center.X
	dy := p.Y - center.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	angle := math.Atan2(dy, dx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	t := angle / (2 * math.Pi)
	if t >= 1 {
		t = 0
	}
	return t
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}

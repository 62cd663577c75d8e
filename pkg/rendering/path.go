package rendering

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path is a vector outline filled with the nonzero winding rule.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpQuadTo, Args: []float64{x1, y1, x2, y2}})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// maxArcSegment is the largest sweep approximated by a single cubic.
const maxArcSegment = math.Pi / 2

// AddArc appends a circular arc around center as cubic bezier segments of at
// most 90 degrees. When moveTo is true the arc starts a new subpath,
// otherwise a line joins the current point to the arc start. Angles are in
// radians, clockwise in screen coordinates; sweep may be negative.
func (p *Path) AddArc(center Offset, radius, startAngle, sweepAngle float64, moveTo bool) {
	startX := center.X + radius*math.Cos(startAngle)
	startY := center.Y + radius*math.Sin(startAngle)
	if moveTo {
		p.MoveTo(startX, startY)
	} else {
		p.LineTo(startX, startY)
	}

	remaining := sweepAngle
	current := startAngle
	for math.Abs(remaining) > epsilon {
		segment := math.Max(-maxArcSegment, math.Min(maxArcSegment, remaining))

		// k = (4/3) * tan(angle/4) places the control points on the tangents.
		k := (4.0 / 3.0) * math.Tan(segment/4)
		end := current + segment

		cx, cy := center.X+radius*math.Cos(current), center.Y+radius*math.Sin(current)
		ex, ey := center.X+radius*math.Cos(end), center.Y+radius*math.Sin(end)

		p.CubicTo(
			cx-k*radius*math.Sin(current), cy+k*radius*math.Cos(current),
			ex+k*radius*math.Sin(end), ey-k*radius*math.Cos(end),
			ex, ey,
		)

		current = end
		remaining -= segment
	}
}

// StrokedArcOutline returns the closed outline of an arc stroked with the
// given width, so it can be filled. Square caps extend each end by half the
// stroke width measured along the center line. Sweeps of a full turn or more
// produce an annulus.
func StrokedArcOutline(center Offset, radius, startAngle, sweepAngle, strokeWidth float64, cap StrokeCap) *Path {
	path := NewPath()
	if radius <= 0 || strokeWidth <= 0 || sweepAngle == 0 {
		return path
	}
	half := strokeWidth / 2
	outer := radius + half
	inner := math.Max(radius-half, 0)

	if ext := cap.Extent(strokeWidth) / radius; ext > 0 {
		if sweepAngle < 0 {
			ext = -ext
		}
		startAngle -= ext
		sweepAngle += 2 * ext
	}

	if math.Abs(sweepAngle) >= 2*math.Pi {
		path.AddArc(center, outer, 0, 2*math.Pi, true)
		path.Close()
		if inner > 0 {
			path.AddArc(center, inner, 0, -2*math.Pi, true)
			path.Close()
		}
		return path
	}

	path.AddArc(center, outer, startAngle, sweepAngle, true)
	path.AddArc(center, inner, startAngle+sweepAngle, -sweepAngle, false)
	path.Close()
	return path
}

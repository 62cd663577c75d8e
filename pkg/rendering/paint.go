package rendering

import "fmt"

// PaintStyle selects whether a shape is filled or outlined.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws a band StrokeWidth wide centered on the outline.
	PaintStyleStroke
)

func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeCap describes how the open ends of a stroked arc are finished.
type StrokeCap int

const (
	CapButt   StrokeCap = iota // ends flush with the arc's endpoints
	CapSquare                  // ends extended by half the stroke width
)

func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapSquare:
		return "square"
	default:
		return fmt.Sprintf("StrokeCap(%d)", int(c))
	}
}

// Extent returns how far past each open end a stroke of the given width
// reaches, measured along the center line.
func (c StrokeCap) Extent(strokeWidth float64) float64 {
	if c == CapSquare {
		return strokeWidth / 2
	}
	return 0
}

// Paint describes how a shape is drawn. A non-nil Gradient replaces Color.
type Paint struct {
	Color       Color
	Gradient    *Gradient
	Style       PaintStyle
	StrokeWidth float64
	StrokeCap   StrokeCap
}

// StrokePaint returns a paint that strokes with g at the given width.
func StrokePaint(g *Gradient, width float64, cap StrokeCap) Paint {
	return Paint{
		Gradient:    g,
		Style:       PaintStyleStroke,
		StrokeWidth: width,
		StrokeCap:   cap,
	}
}

// SolidStroke returns a paint that strokes in a single color.
func SolidStroke(c Color, width float64, cap StrokeCap) Paint {
	return Paint{
		Color:       c,
		Style:       PaintStyleStroke,
		StrokeWidth: width,
		StrokeCap:   cap,
	}
}

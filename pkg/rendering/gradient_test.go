package rendering

import (
	"math"
	"testing"
)

func TestGradientIsValid(t *testing.T) {
	tests := []struct {
		name  string
		stops []GradientStop
		want  bool
	}{
		{"too few", []GradientStop{{Position: 0}}, false},
		{"increasing", []GradientStop{{Position: 0}, {Position: 0.5}, {Position: 1}}, true},
		{"coincident", []GradientStop{{Position: 0}, {Position: 0.5}, {Position: 0.5}, {Position: 1}}, true},
		{"decreasing", []GradientStop{{Position: 0}, {Position: 0.6}, {Position: 0.5}, {Position: 1}}, false},
		{"out of range", []GradientStop{{Position: 0}, {Position: 1.2}}, false},
		{"negative", []GradientStop{{Position: -0.1}, {Position: 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSweepGradient(Offset{}, tt.stops)
			if got := g.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGradientCopiesStops(t *testing.T) {
	stops := []GradientStop{{Position: 0, Color: ColorRed}, {Position: 1, Color: ColorBlue}}
	g := NewSweepGradient(Offset{}, stops)
	stops[0].Color = ColorGreen
	if g.Stops()[0].Color != ColorRed {
		t.Error("gradient should not alias the caller's stops")
	}
}

func TestColorAt(t *testing.T) {
	stops := []GradientStop{
		{Position: 0, Color: ColorTransparent},
		{Position: 0.25, Color: ColorTransparent},
		{Position: 0.75, Color: ColorBlack},
		{Position: 0.75, Color: ColorWhite},
		{Position: 1, Color: ColorWhite},
	}
	tests := []struct {
		t    float64
		want Color
	}{
		{-1, ColorTransparent},
		{0.1, ColorTransparent},
		{0.5, RGBA(0, 0, 0, 128)},
		{0.75, ColorBlack},
		{0.8, ColorWhite},
		{2, ColorWhite},
	}
	for _, tt := range tests {
		if got := ColorAt(stops, tt.t); got != tt.want {
			t.Errorf("ColorAt(%v) = %#08x, want %#08x", tt.t, uint32(got), uint32(tt.want))
		}
	}
}

func TestSweepPosition(t *testing.T) {
	center := Offset{X: 10, Y: 10}
	tests := []struct {
		name string
		p    Offset
		want float64
	}{
		{"center", center, 0},
		{"right", Offset{X: 20, Y: 10}, 0},
		{"below", Offset{X: 10, Y: 20}, 0.25},
		{"left", Offset{X: 0, Y: 10}, 0.5},
		{"above", Offset{X: 10, Y: 0}, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SweepPosition(center, tt.p); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SweepPosition = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGradientColorAtPoint(t *testing.T) {
	g := NewSweepGradient(Offset{X: 10, Y: 10}, []GradientStop{
		{Position: 0, Color: ColorTransparent},
		{Position: 0.5, Color: ColorBlack},
		{Position: 0.5, Color: ColorWhite},
		{Position: 1, Color: ColorWhite},
	})
	tests := []struct {
		name string
		p    Offset
		want Color
	}{
		{"start", Offset{X: 20, Y: 10}, ColorTransparent},
		{"quarter", Offset{X: 10, Y: 20}, RGBA(0, 0, 0, 128)},
		{"half", Offset{X: 0, Y: 10}, ColorBlack},
		{"past the edge", Offset{X: 10, Y: 0}, ColorWhite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ColorAtPoint(tt.p); got != tt.want {
				t.Errorf("ColorAtPoint = %#08x, want %#08x", uint32(got), uint32(tt.want))
			}
		})
	}

	var nilGradient *Gradient
	if got := nilGradient.ColorAtPoint(Offset{}); got != ColorTransparent {
		t.Errorf("nil gradient = %#08x, want transparent", uint32(got))
	}
}

func TestLerpColor(t *testing.T) {
	got := LerpColor(RGBA(0, 0, 0, 0), RGBA(200, 100, 50, 255), 0.5)
	want := RGBA(100, 50, 25, 128)
	if got != want {
		t.Errorf("LerpColor = %#08x, want %#08x", uint32(got), uint32(want))
	}
}

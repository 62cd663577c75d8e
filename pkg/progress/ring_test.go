package progress

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/luboganev/circular-progress-view/pkg/rendering"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestNewRing_Defaults(t *testing.T) {
	r := NewRing()
	if r.StrokeWidth() != 4 || r.CenterRadius() != 24 {
		t.Errorf("stroke=%v radius=%v, want 4 and 24", r.StrokeWidth(), r.CenterRadius())
	}
	if r.Tint() != rendering.ColorBlack {
		t.Errorf("tint = %v, want opaque black", r.Tint())
	}
	if !r.Growing {
		t.Error("new ring should be growing")
	}
}

func TestRing_SetStrokeWidth(t *testing.T) {
	r := NewRing()

	r.SetStrokeWidth(10)
	if r.StrokeWidth() != 10 || r.CenterRadius() != 18 {
		t.Fatalf("stroke=%v radius=%v, want 10 and 18", r.StrokeWidth(), r.CenterRadius())
	}

	r.SetStrokeWidth(50)
	if r.StrokeWidth() != DefaultStrokeWidth {
		t.Errorf("stroke = %v, want fallback %v", r.StrokeWidth(), DefaultStrokeWidth)
	}
	if r.CenterRadius() != 18 {
		t.Errorf("radius = %v, want it left at 18", r.CenterRadius())
	}
}

func TestRing_SetStrokeWidthRejectsInvalid(t *testing.T) {
	for _, px := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		r := NewRing()
		r.SetStrokeWidth(8)
		r.SetStrokeWidth(px)
		if r.StrokeWidth() != DefaultStrokeWidth || r.CenterRadius() != 20 {
			t.Errorf("SetStrokeWidth(%v): stroke=%v radius=%v, want %v and 20",
				px, r.StrokeWidth(), r.CenterRadius(), DefaultStrokeWidth)
		}
	}
}

func TestRing_RadiusStaysPositive(t *testing.T) {
	f := func(widths []float64) bool {
		r := NewRing()
		for _, w := range widths {
			r.SetStrokeWidth(w)
			if !(r.CenterRadius() > 0) || !(r.StrokeWidth() > 0) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestRing_SetTintUpdatesTransparent(t *testing.T) {
	r := NewRing()
	tint := rendering.RGB(0x3F, 0x51, 0xB5)
	r.SetTint(tint)

	stops := r.Describe(rendering.RectFromLTWH(0, 0, 48, 48)).Stops
	if stops[0].Color != tint.WithAlpha(0) {
		t.Errorf("transparent stop = %v, want %v", stops[0].Color, tint.WithAlpha(0))
	}
	if stops[2].Color != tint {
		t.Errorf("head stop = %v, want %v", stops[2].Color, tint)
	}
}

func TestRing_StoreAndResetOriginals(t *testing.T) {
	r := NewRing()
	r.StartTrim, r.EndTrim, r.Rotation = 0.25, 0.5, 0.75
	r.Growing = false

	r.StoreOriginals()
	if r.StartingStartTrim != 0.25 || r.StartingEndTrim != 0.5 || r.StartingRotation != 0.75 {
		t.Errorf("originals not stored: %+v", r)
	}

	r.ResetOriginals()
	zero := []float64{r.StartTrim, r.EndTrim, r.Rotation, r.StartingStartTrim, r.StartingEndTrim, r.StartingRotation}
	for i, v := range zero {
		if v != 0 {
			t.Errorf("field %d = %v after reset, want 0", i, v)
		}
	}
	if !r.Growing {
		t.Error("reset should leave the ring growing")
	}
}

func TestRing_DescribeGeometry(t *testing.T) {
	r := NewRing()
	r.StartTrim, r.EndTrim, r.Rotation = 0.1, 0.3, 0.2

	desc := r.Describe(rendering.RectFromLTWH(0, 0, 48, 48))
	want := rendering.Rect{Left: -2, Top: -2, Right: 50, Bottom: 50}
	if desc.ArcRect != want {
		t.Errorf("ArcRect = %+v, want %+v", desc.ArcRect, want)
	}
	if !approxEqual(desc.StartAngle, 108) {
		t.Errorf("StartAngle = %v, want 108", desc.StartAngle)
	}
	if !approxEqual(desc.SweepAngle, 72) {
		t.Errorf("SweepAngle = %v, want 72", desc.SweepAngle)
	}
}

func TestRing_GradientStops(t *testing.T) {
	tint := rendering.RGB(0x10, 0x20, 0x30)
	transparent := tint.WithAlpha(0)

	tests := []struct {
		name       string
		growing    bool
		start, end float64
		want       []rendering.GradientStop
	}{
		{
			name:    "growing without wrap",
			growing: true,
			start:   0.2,
			want: []rendering.GradientStop{
				{Position: 0, Color: transparent},
				{Position: 0.2, Color: transparent},
				{Position: 0.7, Color: tint},
				{Position: 0.7001, Color: transparent},
				{Position: 1, Color: transparent},
			},
		},
		{
			name:    "growing across the seam",
			growing: true,
			start:   0.7,
			want: []rendering.GradientStop{
				{Position: 0, Color: tint.WithAlpha(153)},
				{Position: 0.2, Color: tint},
				// The edge follows the head at wrapped+ε, not wrapped-ε,
				// so positions never decrease.
				{Position: 0.2001, Color: transparent},
				{Position: 0.7, Color: transparent},
				{Position: 1, Color: tint.WithAlpha(153)},
			},
		},
		{
			name:    "shrinking without wrap",
			growing: false,
			end:     0.9,
			want: []rendering.GradientStop{
				{Position: 0, Color: transparent},
				{Position: 0.4, Color: transparent},
				{Position: 0.9, Color: tint},
				{Position: 0.9001, Color: transparent},
				{Position: 1, Color: transparent},
			},
		},
		{
			name:    "shrinking shifted across the seam",
			growing: false,
			end:     0.3,
			want: []rendering.GradientStop{
				{Position: 0, Color: tint.WithAlpha(101)},
				{Position: 0.3, Color: tint},
				{Position: 0.3001, Color: transparent},
				{Position: 0.8, Color: transparent},
				{Position: 1, Color: tint.WithAlpha(101)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRing()
			r.SetTint(tint)
			r.Growing = tt.growing
			r.StartTrim, r.EndTrim = tt.start, tt.end

			got := r.Describe(rendering.RectFromLTWH(0, 0, 48, 48)).Stops
			if len(got) != len(tt.want) {
				t.Fatalf("got %d stops, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !approxEqual(got[i].Position, tt.want[i].Position) || got[i].Color != tt.want[i].Color {
					t.Errorf("stop %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRing_GradientStopsOrdered(t *testing.T) {
	f := func(start, end, rotation float64, growing bool) bool {
		r := NewRing()
		r.StartTrim = math.Mod(start, 1e6)
		r.EndTrim = math.Mod(end, 1e6)
		r.Rotation = math.Mod(rotation, 1e6)
		r.Growing = growing

		stops := r.Describe(rendering.RectFromLTWH(0, 0, 48, 48)).Stops
		if len(stops) != 5 || stops[0].Position != 0 || stops[4].Position != 1 {
			return false
		}
		for i := 1; i < len(stops); i++ {
			if stops[i].Position < stops[i-1].Position {
				return false
			}
		}
		return rendering.NewSweepGradient(rendering.Offset{}, stops).IsValid()
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 2000}); err != nil {
		t.Error(err)
	}
}

func TestRing_DrawSkipsEmptyArc(t *testing.T) {
	r := NewRing()
	canvas := rendering.NewRasterCanvas(48, 48)
	r.Draw(canvas, rendering.RectFromLTWH(0, 0, 48, 48))
	for _, px := range canvas.Image().Pix {
		if px != 0 {
			t.Fatal("a zero-length arc should draw nothing")
		}
	}
}

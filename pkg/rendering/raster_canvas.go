package rendering

import (
	stderrors "errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/luboganev/circular-progress-view/pkg/errors"
)

// ErrInvalidGradient is reported when a paint carries a gradient whose stops
// are unusable (fewer than two, out of range, or decreasing).
var ErrInvalidGradient = stderrors.New("invalid gradient stops")

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// RasterCanvas draws into an RGBA image using an anti-aliased scanline
// rasterizer. Strokes are converted to filled outlines before rasterizing.
type RasterCanvas struct {
	img       *image.RGBA
	transform f64.Aff3
	stack     []f64.Aff3
	raster    *vector.Rasterizer
}

// NewRasterCanvas creates a canvas backed by a new transparent image.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return NewRasterCanvasFor(image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))))
}

// NewRasterCanvasFor creates a canvas that draws into img.
func NewRasterCanvasFor(img *image.RGBA) *RasterCanvas {
	b := img.Bounds()
	return &RasterCanvas{
		img:       img,
		transform: identity,
		raster:    vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.transform)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.transform = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.transform = mulAff3(c.transform, f64.Aff3{1, 0, dx, 0, 1, dy})
}

func (c *RasterCanvas) Rotate(radians float64) {
	sin, cos := math.Sincos(radians)
	c.transform = mulAff3(c.transform, f64.Aff3{cos, -sin, 0, sin, cos, 0})
}

func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawArc(oval Rect, startAngle, sweepAngle float64, paint Paint) {
	if oval.IsEmpty() || sweepAngle == 0 {
		return
	}
	center := oval.Center()
	radius := math.Min(oval.Width(), oval.Height()) / 2

	var path *Path
	if paint.Style == PaintStyleStroke {
		path = StrokedArcOutline(center, radius, startAngle, sweepAngle, paint.StrokeWidth, paint.StrokeCap)
	} else {
		path = NewPath()
		path.MoveTo(center.X, center.Y)
		path.AddArc(center, radius, startAngle, sweepAngle, false)
		path.Close()
	}
	c.fill(path, paint)
}

// DrawPath fills path. Stroked generic paths are not supported by the
// rasterizer; use DrawArc for stroked arcs.
func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	c.fill(path, paint)
}

func (c *RasterCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *RasterCanvas) fill(path *Path, paint Paint) {
	src, ok := c.source(paint)
	if !ok {
		return
	}
	b := c.img.Bounds()
	if b.Empty() {
		return
	}
	z := c.raster
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	open := false
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case PathOpMoveTo:
			if open {
				z.ClosePath()
			}
			x, y := c.apply(a[0], a[1])
			z.MoveTo(x, y)
			open = true
		case PathOpLineTo:
			x, y := c.apply(a[0], a[1])
			z.LineTo(x, y)
		case PathOpQuadTo:
			x1, y1 := c.apply(a[0], a[1])
			x2, y2 := c.apply(a[2], a[3])
			z.QuadTo(x1, y1, x2, y2)
		case PathOpCubicTo:
			x1, y1 := c.apply(a[0], a[1])
			x2, y2 := c.apply(a[2], a[3])
			x3, y3 := c.apply(a[4], a[5])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case PathOpClose:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(c.img, b, src, b.Min)
}

func (c *RasterCanvas) source(paint Paint) (image.Image, bool) {
	if paint.Gradient == nil {
		return image.NewUniform(paint.Color.NRGBA()), true
	}
	if !paint.Gradient.IsValid() {
		errors.Report(&errors.ProgressError{
			Op:   "rendering.RasterCanvas.fill",
			Kind: errors.KindRender,
			Err:  ErrInvalidGradient,
		})
		return nil, false
	}
	inverse, ok := invertAff3(c.transform)
	if !ok {
		return nil, false
	}
	return &shaderImage{gradient: paint.Gradient, inverse: inverse, bounds: c.img.Bounds()}, true
}

func (c *RasterCanvas) apply(x, y float64) (float32, float32) {
	m := c.transform
	return float32(m[0]*x + m[1]*y + m[2]), float32(m[3]*x + m[4]*y + m[5])
}

// shaderImage evaluates a gradient per device pixel by mapping the pixel
// center back into the coordinate space the gradient was defined in.
type shaderImage struct {
	gradient *Gradient
	inverse  f64.Aff3
	bounds   image.Rectangle
}

func (s *shaderImage) ColorModel() color.Model { return color.NRGBAModel }

func (s *shaderImage) Bounds() image.Rectangle { return s.bounds }

func (s *shaderImage) At(x, y int) color.Color {
	px, py := float64(x)+0.5, float64(y)+0.5
	m := s.inverse
	local := Offset{X: m[0]*px + m[1]*py + m[2], Y: m[3]*px + m[4]*py + m[5]}
	return s.gradient.ColorAtPoint(local).NRGBA()
}

// mulAff3 returns the transform applying n first and then m.
func mulAff3(m, n f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

func invertAff3(m f64.Aff3) (f64.Aff3, bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 {
		return f64.Aff3{}, false
	}
	a := m[4] / det
	b := -m[1] / det
	d := -m[3] / det
	e := m[0] / det
	return f64.Aff3{
		a, b, -(a*m[2] + b*m[5]),
		d, e, -(d*m[2] + e*m[5]),
	}, true
}

// Package termview runs the progress ring live in a terminal. Each cell shows
// two vertically stacked pixels using the upper half block glyph.
package termview

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/luboganev/circular-progress-view/pkg/animation"
	"github.com/luboganev/circular-progress-view/pkg/errors"
	"github.com/luboganev/circular-progress-view/pkg/rendering"
	"github.com/luboganev/circular-progress-view/pkg/view"
)

const (
	frameInterval = 16 * time.Millisecond
	halfBlock     = '▀'
	minStroke     = 1
)

// Tints cycled through with the c key, after the configured tint.
var Tints = []rendering.Color{
	rendering.RGB(0x3F, 0x51, 0xB5),
	rendering.RGB(0xE9, 0x1E, 0x63),
	rendering.RGB(0x4C, 0xAF, 0x50),
	rendering.RGB(0xFF, 0x98, 0x00),
}

// Options configures an App.
type Options struct {
	// StrokeWidth is the initial stroke width. Zero keeps the ring default.
	StrokeWidth float64
	Tint        rendering.Color
	Background  rendering.Color

	// Clock drives the animation. Nil uses the animation package clock.
	Clock animation.Clock
}

// App hosts a CircularProgressView on a tcell screen.
type App struct {
	screen     tcell.Screen
	scheduler  *animation.Scheduler
	view       *view.CircularProgressView
	background rendering.Color
	tints      []rendering.Color
	tintIndex  int

	// canvas and its origin in cell coordinates.
	canvas      *rendering.RasterCanvas
	originX     int
	originY     int
	dirty       bool
	statusDirty bool
}

// New creates an App drawing on screen. The screen must already be
// initialized; the caller finalizes it after Run returns.
func New(screen tcell.Screen, opts Options) *App {
	scheduler := animation.NewScheduler(opts.Clock)
	attrs := view.StyleAttributes{Tint: &opts.Tint}
	if opts.StrokeWidth > 0 {
		attrs.StrokeWidth = &opts.StrokeWidth
	}

	a := &App{
		screen:     screen,
		scheduler:  scheduler,
		view:       view.NewCircularProgressView(scheduler, attrs),
		background: opts.Background.WithAlpha(0xFF),
		tints:      append([]rendering.Color{opts.Tint}, Tints...),
	}
	a.view.SetInvalidateCallback(func() { a.dirty = true })
	a.resize()
	return a
}

// View returns the hosted view.
func (a *App) View() *view.CircularProgressView { return a.view }

// Run attaches the view and animates it until the user quits or ctx is
// done. Run returns an error if the frame loop panics.
func (a *App) Run(ctx context.Context) (err error) {
	defer errors.RecoverWithCallback("termview.Run", func(r any) {
		err = &errors.ProgressError{
			Op:   "termview.Run",
			Kind: errors.KindTerminal,
			Err:  fmt.Errorf("frame loop panicked: %v", r),
		}
	})

	a.view.OnAttached()
	defer a.view.OnDetached()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		defer errors.Recover("termview.pollEvents")
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.Frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}

// HandleEvent applies a terminal event. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return a.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	d := a.view.Drawable()
	switch r {
	case 'q', 'Q':
		return false
	case '+', '=':
		a.view.SetStrokeWidth(d.StrokeWidth() + 1)
	case '-', '_':
		if d.StrokeWidth()-1 >= minStroke {
			a.view.SetStrokeWidth(d.StrokeWidth() - 1)
		}
	case 'c', 'C':
		a.tintIndex = (a.tintIndex + 1) % len(a.tints)
		a.view.SetTint(a.tints[a.tintIndex])
	case ' ':
		a.view.SetVisible(!a.view.IsVisible())
	}
	a.statusDirty = true
	return true
}

// Frame delivers one animation tick and redraws if anything changed.
func (a *App) Frame() {
	a.scheduler.Step()
	if !a.dirty && !a.statusDirty {
		return
	}
	a.draw()
	a.dirty = false
	a.statusDirty = false
}

// resize fits a square pixel canvas into the screen above the status line.
func (a *App) resize() {
	w, h := a.screen.Size()
	rows := max(h-1, 0)
	side := min(w, rows*2)
	side -= side % 2
	a.canvas = rendering.NewRasterCanvas(side, side)
	a.originX = (w - side) / 2
	a.originY = (rows - side/2) / 2
	a.view.SetBounds(rendering.RectFromLTWH(0, 0, float64(side), float64(side)))
	a.dirty = true
}

func (a *App) draw() {
	a.screen.Clear()
	a.canvas.Clear(rendering.ColorTransparent)
	if a.view.IsVisible() {
		a.view.Draw(a.canvas)
	}

	img := a.canvas.Image()
	side := img.Bounds().Dx()
	for y := 0; y < side/2; y++ {
		for x := 0; x < side; x++ {
			top, topHit := a.composite(img, x, 2*y)
			bottom, bottomHit := a.composite(img, x, 2*y+1)
			glyph := ' '
			if topHit || bottomHit {
				glyph = halfBlock
			}
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			a.screen.SetContent(a.originX+x, a.originY+y, glyph, nil, style)
		}
	}
	a.drawStatus()
	a.screen.Show()
}

// composite blends the premultiplied pixel at (x, y) over the background and
// reports whether the ring covered it at all.
func (a *App) composite(img *image.RGBA, x, y int) (rendering.Color, bool) {
	px := img.RGBAAt(x, y)
	if px.A == 0 {
		return a.background, false
	}
	inv := 255 - uint32(px.A)
	bg := a.background
	blend := func(src uint8, dst uint8) uint8 {
		return uint8(uint32(src) + (uint32(dst)*inv+127)/255)
	}
	return rendering.RGB(blend(px.R, bg.Red()), blend(px.G, bg.Green()), blend(px.B, bg.Blue())), true
}

func (a *App) drawStatus() {
	w, h := a.screen.Size()
	if h == 0 {
		return
	}
	d := a.view.Drawable()
	state := "running"
	if !a.view.IsVisible() {
		state = "hidden"
	}
	status := fmt.Sprintf(" %s  stroke %g  tint %s  [+/-] stroke  [c] tint  [space] show/hide  [q] quit",
		state, d.StrokeWidth(), d.Tint())
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range status {
		if x >= w {
			break
		}
		a.screen.SetContent(x, h-1, r, nil, style)
		x++
	}
}

func tcellColor(c rendering.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}

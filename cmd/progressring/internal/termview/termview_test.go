package termview

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/luboganev/circular-progress-view/pkg/rendering"
	progresstest "github.com/luboganev/circular-progress-view/pkg/testing"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen, *progresstest.FakeClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 21)

	clk := progresstest.NewFakeClock()
	app := New(screen, Options{
		Tint:       rendering.ColorBlack,
		Background: rendering.ColorWhite,
		Clock:      clk,
	})
	return app, screen, clk
}

func countHalfBlocks(screen tcell.SimulationScreen) int {
	w, h := screen.Size()
	n := 0
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r == halfBlock {
				n++
			}
		}
	}
	return n
}

func TestApp_DrawsRingWhileAttached(t *testing.T) {
	app, screen, clk := newTestApp(t)
	app.View().OnAttached()

	clk.Advance(400 * time.Millisecond)
	app.Frame()

	if countHalfBlocks(screen) == 0 {
		t.Fatal("expected ring cells on screen")
	}
	if got := app.canvas.Image().Bounds().Dx(); got != 40 {
		t.Errorf("canvas side = %d, want 40", got)
	}
}

func TestApp_SpaceTogglesVisibility(t *testing.T) {
	app, screen, clk := newTestApp(t)
	app.View().OnAttached()
	clk.Advance(400 * time.Millisecond)
	app.Frame()

	if !app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space should not quit")
	}
	app.Frame()
	if app.View().Drawable().IsRunning() {
		t.Error("hidden view should stop the ring")
	}
	if n := countHalfBlocks(screen); n != 0 {
		t.Errorf("hidden view left %d ring cells", n)
	}

	app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !app.View().Drawable().IsRunning() {
		t.Error("showing the view again should restart the ring")
	}
}

func TestApp_StrokeKeys(t *testing.T) {
	app, _, _ := newTestApp(t)
	d := app.View().Drawable()
	start := d.StrokeWidth()

	app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	if d.StrokeWidth() != start+1 {
		t.Errorf("after +: stroke = %v, want %v", d.StrokeWidth(), start+1)
	}
	for range 10 {
		app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	}
	if d.StrokeWidth() != minStroke {
		t.Errorf("stroke = %v, want floor of %v", d.StrokeWidth(), minStroke)
	}
}

func TestApp_CycleTint(t *testing.T) {
	app, _, _ := newTestApp(t)
	d := app.View().Drawable()

	app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	if d.Tint() != Tints[0] {
		t.Errorf("tint = %v, want %v", d.Tint(), Tints[0])
	}
	for range len(Tints) {
		app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	}
	if d.Tint() != rendering.ColorBlack {
		t.Errorf("tint = %v, want the configured tint after a full cycle", d.Tint())
	}
}

func TestApp_QuitKeys(t *testing.T) {
	app, _, _ := newTestApp(t)
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if app.HandleEvent(ev) {
			t.Errorf("key %v should quit", ev.Name())
		}
	}
}

func TestApp_Resize(t *testing.T) {
	app, screen, _ := newTestApp(t)
	screen.SetSize(60, 31)
	app.HandleEvent(tcell.NewEventResize(60, 31))

	if got := app.canvas.Image().Bounds().Dx(); got != 60 {
		t.Errorf("canvas side = %d, want 60", got)
	}
	if got := app.View().Drawable().Bounds().Width(); got != 60 {
		t.Errorf("view bounds width = %v, want 60", got)
	}
}

func TestApp_RunStopsOnQuit(t *testing.T) {
	app, screen, _ := newTestApp(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run should return on q before the deadline")
	}
	if app.View().IsAttached() || app.View().Drawable().IsRunning() {
		t.Error("Run should detach the view on exit")
	}
}

func TestApp_Composite(t *testing.T) {
	app, _, _ := newTestApp(t)
	canvas := rendering.NewRasterCanvas(2, 1)
	canvas.Image().Pix[3] = 255 // opaque black at (0, 0)

	c, hit := app.composite(canvas.Image(), 0, 0)
	if !hit || c != rendering.ColorBlack {
		t.Errorf("opaque pixel = %v hit=%v, want black", c, hit)
	}
	c, hit = app.composite(canvas.Image(), 1, 0)
	if hit || c != rendering.ColorWhite {
		t.Errorf("empty pixel = %v hit=%v, want background", c, hit)
	}
}

package cmd

import (
	"image"
	"time"

	"github.com/luboganev/circular-progress-view/cmd/progressring/internal/config"
	"github.com/luboganev/circular-progress-view/pkg/animation"
	"github.com/luboganev/circular-progress-view/pkg/progress"
	"github.com/luboganev/circular-progress-view/pkg/rendering"
)

// manualClock only moves when told to, so offline rendering is independent
// of how long encoding takes.
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

// frameSource runs a drawable on a manual clock and captures its frames.
type frameSource struct {
	clock      *manualClock
	scheduler  *animation.Scheduler
	drawable   *progress.Drawable
	size       int
	background rendering.Color
	recorder   rendering.PictureRecorder
	elapsed    time.Duration
}

func newFrameSource(res *config.Resolved) *frameSource {
	clock := &manualClock{now: time.Unix(0, 0)}
	scheduler := animation.NewScheduler(clock)
	d := progress.NewDrawable(scheduler)
	if res.StrokeWidth != nil {
		d.SetStrokeWidth(*res.StrokeWidth)
	}
	d.SetTint(res.Tint)
	d.SetBounds(rendering.RectFromLTWH(0, 0, float64(res.Size), float64(res.Size)))
	d.Start()

	return &frameSource{
		clock:      clock,
		scheduler:  scheduler,
		drawable:   d,
		size:       res.Size,
		background: res.Background,
	}
}

// advance moves the animation forward by dt and delivers one tick.
func (f *frameSource) advance(dt time.Duration) {
	f.clock.now = f.clock.now.Add(dt)
	f.elapsed += dt
	f.scheduler.Step()
}

// record captures the current frame over the background.
func (f *frameSource) record() *rendering.DisplayList {
	size := rendering.Size{Width: float64(f.size), Height: float64(f.size)}
	canvas := f.recorder.BeginRecording(size)
	canvas.Clear(f.background)
	f.drawable.Draw(canvas)
	return f.recorder.EndRecording()
}

// rasterize replays a recorded frame into a new image.
func (f *frameSource) rasterize(dl *rendering.DisplayList) *image.RGBA {
	canvas := rendering.NewRasterCanvas(f.size, f.size)
	dl.Paint(canvas)
	return canvas.Image()
}

func (f *frameSource) frame() *image.RGBA {
	return f.rasterize(f.record())
}

func frameInterval(fps int) time.Duration {
	return time.Second / time.Duration(fps)
}

// Package view hosts the progress ring the way a UI toolkit would: it owns
// the drawable, follows the attach and visibility lifecycle, and forwards
// style changes and bounds.
package view

import (
	"github.com/luboganev/circular-progress-view/pkg/animation"
	"github.com/luboganev/circular-progress-view/pkg/progress"
	"github.com/luboganev/circular-progress-view/pkg/rendering"
)

// StyleAttributes are the optional initial styles of a view. Nil means the
// ring default.
//
//	view.NewCircularProgressView(scheduler, view.StyleAttributes{
//	    StrokeWidth: &width,
//	    Tint:        &tint,
//	})
type StyleAttributes struct {
	// StrokeWidth is the ring thickness in pixels.
	StrokeWidth *float64

	// Tint is the ring color.
	Tint *rendering.Color
}

// CircularProgressView displays an indeterminate progress ring. The ring
// spins while the view is both attached and visible.
type CircularProgressView struct {
	drawable *progress.Drawable
	attached bool
	visible  bool
}

// NewCircularProgressView creates a detached, visible view whose ring ticks
// from scheduler. Styles are applied before any lifecycle callback can run.
func NewCircularProgressView(scheduler *animation.Scheduler, attrs StyleAttributes) *CircularProgressView {
	d := progress.NewDrawable(scheduler)
	if attrs.StrokeWidth != nil {
		d.SetStrokeWidth(*attrs.StrokeWidth)
	}
	if attrs.Tint != nil {
		d.SetTint(*attrs.Tint)
	}
	return &CircularProgressView{drawable: d, visible: true}
}

// Drawable returns the ring drawable backing the view.
func (v *CircularProgressView) Drawable() *progress.Drawable { return v.drawable }

// SetInvalidateCallback registers fn to be called when the view needs a
// redraw.
func (v *CircularProgressView) SetInvalidateCallback(fn func()) {
	v.drawable.SetInvalidateCallback(fn)
}

// IsAttached reports whether the view is attached to a window.
func (v *CircularProgressView) IsAttached() bool { return v.attached }

// IsVisible reports whether the view is visible.
func (v *CircularProgressView) IsVisible() bool { return v.visible }

// OnAttached starts the ring if the view is visible.
func (v *CircularProgressView) OnAttached() {
	v.attached = true
	if v.visible {
		v.drawable.Start()
	}
}

// OnDetached stops the ring.
func (v *CircularProgressView) OnDetached() {
	v.attached = false
	v.drawable.Stop()
}

// SetVisible shows or hides the view. The ring runs only when the view is
// visible and attached; every other combination stops it.
func (v *CircularProgressView) SetVisible(visible bool) {
	v.visible = visible
	if visible && v.attached {
		v.drawable.Start()
	} else {
		v.drawable.Stop()
	}
}

// SetTint changes the ring color.
func (v *CircularProgressView) SetTint(c rendering.Color) {
	v.drawable.SetTint(c)
}

// SetStrokeWidth changes the ring thickness in pixels.
func (v *CircularProgressView) SetStrokeWidth(px float64) {
	v.drawable.SetStrokeWidth(px)
}

// SetBounds lays the view out in bounds.
func (v *CircularProgressView) SetBounds(bounds rendering.Rect) {
	v.drawable.SetBounds(bounds)
}

// Draw paints the current frame of the ring.
func (v *CircularProgressView) Draw(canvas rendering.Canvas) {
	v.drawable.Draw(canvas)
}

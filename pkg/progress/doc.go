// Package progress implements the indeterminate circular progress ring.
//
// A [Ring] holds the arc geometry: two trims marking where the arc starts and
// ends on the circle, a rotation applied to both, and the stroke width, radius
// and tint. [Ring.Describe] turns that state into an [ArcDescription], the
// rectangle, angles and sweep gradient stops of one frame.
//
// A [Drawable] drives the ring through endless laps. During the first half of
// each lap the arc grows from its start trim, during the second half it
// shrinks towards its end trim, and every lap leaves the arc rotated further
// round the circle. The whole drawing additionally spins by a group rotation
// that accumulates across laps.
//
//	scheduler := animation.NewScheduler(nil)
//	d := progress.NewDrawable(scheduler)
//	d.SetBounds(rendering.RectFromLTWH(0, 0, 96, 96))
//	d.SetInvalidateCallback(requestFrame)
//	d.Start()
//
//	// once per frame
//	scheduler.Step()
//	d.Draw(canvas)
package progress

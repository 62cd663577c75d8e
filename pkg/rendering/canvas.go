package rendering

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform.
	Save()

	// Restore pops the most recent transform.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Rotate rotates the coordinate system by radians, clockwise in screen space.
	Rotate(radians float64)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawArc draws the arc of the oval inscribed in oval, starting at
	// startAngle and sweeping sweepAngle radians, with the provided paint.
	DrawArc(oval Rect, startAngle, sweepAngle float64, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}

// RotateAround rotates canvas by radians about pivot.
func RotateAround(canvas Canvas, pivot Offset, radians float64) {
	canvas.Translate(pivot.X, pivot.Y)
	canvas.Rotate(radians)
	canvas.Translate(-pivot.X, -pivot.Y)
}

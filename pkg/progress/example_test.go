package progress_test

import (
	"fmt"

	"github.com/luboganev/circular-progress-view/pkg/animation"
	"github.com/luboganev/circular-progress-view/pkg/progress"
	"github.com/luboganev/circular-progress-view/pkg/rendering"
)

func ExampleDrawable_ApplyTransformation() {
	d := progress.NewDrawable(animation.NewScheduler(nil))
	d.SetBounds(rendering.RectFromLTWH(0, 0, 56, 56))

	for _, t := range []float64{0, 0.5} {
		d.ApplyTransformation(t, false)
		desc := d.Describe()
		fmt.Printf("t=%.1f start=%.0f° sweep=%.0f°\n", t, desc.StartAngle, desc.SweepAngle)
	}
	d.ApplyTransformation(1, true)
	fmt.Printf("t=1.0 arc=%.2f group=%.0f°\n", d.Ring().ArcLength(), d.GroupRotation())

	// Output:
	// t=0.0 start=0° sweep=0°
	// t=0.5 start=90° sweep=180°
	// t=1.0 arc=0.00 group=216°
}

func ExampleRing_SetStrokeWidth() {
	r := progress.NewRing()
	r.SetStrokeWidth(10)
	fmt.Println(r.StrokeWidth(), r.CenterRadius())
	r.SetStrokeWidth(50)
	fmt.Println(r.StrokeWidth(), r.CenterRadius())

	// Output:
	// 10 18
	// 4 18
}

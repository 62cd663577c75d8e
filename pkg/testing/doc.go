// Package testing provides helpers for deterministic progress ring tests.
//
// # Animation Testing
//
// Control time by handing a FakeClock to the scheduler:
//
//	clk := progresstest.NewFakeClock()
//	scheduler := animation.NewScheduler(clk)
//	drawable := progress.NewDrawable(scheduler)
//	drawable.Start()
//
//	clk.Advance(666 * time.Millisecond)
//	scheduler.Step()
//
// # Frame Assertions
//
// Record a frame and compare the serialized operations:
//
//	ops := progresstest.Capture(rendering.Size{Width: 48, Height: 48}, drawable.Draw)
//	if ops[0].Op != "save" { ... }
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import progresstest "github.com/luboganev/circular-progress-view/pkg/testing"
package testing

package cmd

import (
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/luboganev/circular-progress-view/cmd/progressring/internal/config"
	"github.com/luboganev/circular-progress-view/pkg/errors"
	"github.com/luboganev/circular-progress-view/pkg/progress"
	"github.com/luboganev/circular-progress-view/pkg/rendering"
)

func testResolved(t *testing.T, overrides ...string) *config.Resolved {
	t.Helper()
	var cfg config.Config
	for i := 0; i+1 < len(overrides); i += 2 {
		if err := cfg.ApplyOverride(overrides[i], overrides[i+1]); err != nil {
			t.Fatal(err)
		}
	}
	res, err := config.Resolve(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestParseFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.yaml")
	if err := os.WriteFile(path, []byte("ring:\n  tint: \"#FF0000\"\nrender:\n  size: 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, values, err := parseFlags([]string{
		"--config", path,
		"--size=48",
		"--stroke", "6",
		"--out", "frame.png",
	}, "--out")
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if res.Tint != rendering.ColorRed {
		t.Errorf("Tint = %v, want red from the file", res.Tint)
	}
	if res.Size != 48 {
		t.Errorf("Size = %d, want the flag to win over the file", res.Size)
	}
	if res.StrokeWidth == nil || *res.StrokeWidth != 6 {
		t.Errorf("StrokeWidth = %v, want 6", res.StrokeWidth)
	}
	if values["--out"] != "frame.png" {
		t.Errorf("--out = %q", values["--out"])
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := [][]string{
		{"--bogus", "1"},
		{"--size"},
		{"stray"},
		{"--tint", "teal"},
		{"--config", filepath.Join(t.TempDir(), "missing.yaml")},
	}
	for _, args := range tests {
		if _, _, err := parseFlags(args); err == nil {
			t.Errorf("parseFlags(%q) should fail", args)
		}
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	if err := run([]string{"explode"}); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("run(explode) = %v, want unknown command error", err)
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"render", "gif", "describe", "term"} {
		if _, ok := commands[name]; !ok {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestFrameSource_RecordsAndRasterizes(t *testing.T) {
	src := newFrameSource(testResolved(t, "render.size", "48"))
	src.advance(progress.LapDuration / 4)

	dl := src.record()
	if dl.Len() == 0 {
		t.Fatal("expected recorded ops")
	}
	img := src.rasterize(dl)
	if got := img.RGBAAt(24, 24); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("center pixel = %v, want white background", got)
	}
	dark := 0
	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			if img.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("expected the ring to darken some pixels")
	}
}

func TestRenderGIF(t *testing.T) {
	res := testResolved(t, "render.size", "24", "render.fps", "10", "render.laps", "2")
	anim := renderGIF(newFrameSource(res), res.FPS, res.Laps, res.Tint)

	want := int(2 * progress.LapDuration / (100 * time.Millisecond))
	if len(anim.Image) != want || len(anim.Delay) != want {
		t.Fatalf("frames = %d delays = %d, want %d", len(anim.Image), len(anim.Delay), want)
	}
	if anim.Delay[0] != 10 {
		t.Errorf("delay = %d, want 10", anim.Delay[0])
	}

	path := filepath.Join(t.TempDir(), "ring.gif")
	if err := runGIF([]string{"--size", "16", "--fps", "5", "--out", path}); err != nil {
		t.Fatalf("runGIF: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(decoded.Image) == 0 {
		t.Error("decoded GIF has no frames")
	}
}

func TestRampPalette(t *testing.T) {
	p := rampPalette(rendering.ColorWhite, rendering.RGBA(0, 0, 0, 10))
	if len(p) != 256 {
		t.Fatalf("palette size = %d, want 256", len(p))
	}
	if p[0] != rendering.ColorWhite.NRGBA() || p[255] != rendering.ColorBlack.NRGBA() {
		t.Errorf("palette ends = %v, %v", p[0], p[255])
	}
}

func TestRunRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.png")
	if err := runRender([]string{"--size", "32", "--at", "1.5s", "--out", path}); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("image size = %v, want 32x32", b)
	}

	if err := runRender([]string{"--at", "soon"}); err == nil {
		t.Error("expected an error for an invalid --at")
	}
}

func TestDescribeFrames(t *testing.T) {
	res := testResolved(t, "render.fps", "4")
	frames := describeFrames(newFrameSource(res), 8, frameInterval(res.FPS))

	if len(frames) != 8 {
		t.Fatalf("got %d frames, want 8", len(frames))
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].GroupRotation <= frames[i-1].GroupRotation {
			t.Errorf("group rotation did not increase at frame %d", i)
		}
	}
	if frames[6].Lap != 1 {
		t.Errorf("frame 6 at %dms should be in lap 1, got %d", frames[6].TimeMS, frames[6].Lap)
	}

	out, err := yaml.Marshal(frames[:1])
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, want := range []string{"time_ms: 0", "arc_rect:", "sweep_angle: 0", "'#00000000'"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("YAML %q should contain %q", out, want)
		}
	}
}

func TestRunDescribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.yaml")
	if err := runDescribe([]string{"--frames", "3", "--out", path}); err != nil {
		t.Fatalf("runDescribe: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var frames []map[string]any
	if err := yaml.Unmarshal(data, &frames); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(frames) != 3 {
		t.Errorf("got %d frames, want 3", len(frames))
	}
}

func TestWriteOutput_PanickingEncoder(t *testing.T) {
	errors.SetHandler(&errors.LogHandler{Out: io.Discard})
	t.Cleanup(func() { errors.SetHandler(nil) })

	path := filepath.Join(t.TempDir(), "broken.png")
	err := writeOutput("render.png", path, func(io.Writer) error {
		panic("encoder exploded")
	})
	pe, ok := err.(*errors.ProgressError)
	if !ok {
		t.Fatalf("writeOutput error = %v, want *ProgressError", err)
	}
	if pe.Kind != errors.KindPanic || pe.Op != "render.png" {
		t.Errorf("got Kind=%v Op=%q, want a panic in render.png", pe.Kind, pe.Op)
	}
}

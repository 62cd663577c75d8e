package cmd

import (
	"fmt"
	"image/png"
	"io"
	"time"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a single frame as PNG",
		Long: `Render one frame of the ring as a PNG image.

The animation starts at time zero and is advanced to the requested offset
before the frame is captured. Offsets longer than a lap include the
rotation accumulated by every completed lap.

Flags:
  --at DURATION        Time offset of the frame (default: 333ms)
  --out FILE           Output file, or - for stdout (default: progress.png)

` + ringFlagsHelp,
		Usage: "progressring render [--at DURATION] [--out FILE] [ring flags]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	res, values, err := parseFlags(args, "--at", "--out")
	if err != nil {
		return err
	}

	at := 333 * time.Millisecond
	if v, ok := values["--at"]; ok {
		at, err = time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("--at: %w", err)
		}
		if at < 0 {
			return fmt.Errorf("--at must not be negative (got %s)", v)
		}
	}
	out := valueOr(values, "--out", "progress.png")

	src := newFrameSource(res)
	src.advance(at)
	img := src.frame()

	if err := writeOutput("render.png", out, func(w io.Writer) error {
		return png.Encode(w, img)
	}); err != nil {
		return err
	}
	if out != "-" {
		fmt.Printf("Wrote %s (%dx%d, t=%s)\n", out, res.Size, res.Size, at)
	}
	return nil
}

func valueOr(values map[string]string, name, def string) string {
	if v, ok := values[name]; ok && v != "" {
		return v
	}
	return def
}

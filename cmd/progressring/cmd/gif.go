package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/luboganev/circular-progress-view/pkg/progress"
	"github.com/luboganev/circular-progress-view/pkg/rendering"
)

func init() {
	RegisterCommand(&Command{
		Name:  "gif",
		Short: "Render laps as an animated GIF",
		Long: `Render whole laps of the ring as a looping animated GIF.

Frames are sampled at the configured rate starting from time zero. Colors
are quantized onto a ramp from the background to the tint.

Flags:
  --out FILE           Output file, or - for stdout (default: progress.gif)

` + ringFlagsHelp,
		Usage: "progressring gif [--out FILE] [ring flags]",
		Run:   runGIF,
	})
}

func runGIF(args []string) error {
	res, values, err := parseFlags(args, "--out")
	if err != nil {
		return err
	}
	out := valueOr(values, "--out", "progress.gif")

	anim := renderGIF(newFrameSource(res), res.FPS, res.Laps, res.Tint)
	if err := writeOutput("render.gif", out, func(w io.Writer) error {
		return gif.EncodeAll(w, anim)
	}); err != nil {
		return err
	}
	if out != "-" {
		fmt.Printf("Wrote %s (%d frames)\n", out, len(anim.Image))
	}
	return nil
}

func renderGIF(src *frameSource, fps, laps int, tint rendering.Color) *gif.GIF {
	interval := frameInterval(fps)
	total := time.Duration(laps) * progress.LapDuration
	count := max(int(total/interval), 1)
	delay := max(100/fps, 1)
	palette := rampPalette(src.background, tint)

	anim := &gif.GIF{LoopCount: 0}
	for i := 0; i < count; i++ {
		img := src.frame()
		frame := image.NewPaletted(img.Bounds(), palette)
		draw.Draw(frame, frame.Bounds(), img, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
		src.advance(interval)
	}
	return anim
}

// rampPalette spans every blend of the opaque tint over the background.
func rampPalette(background, tint rendering.Color) color.Palette {
	opaque := tint.WithAlpha(0xFF)
	background = background.WithAlpha(0xFF)
	palette := make(color.Palette, 256)
	for i := range palette {
		palette[i] = rendering.LerpColor(background, opaque, float64(i)/255).NRGBA()
	}
	return palette
}

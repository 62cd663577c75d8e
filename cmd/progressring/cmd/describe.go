package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/luboganev/circular-progress-view/pkg/progress"
)

func init() {
	RegisterCommand(&Command{
		Name:  "describe",
		Short: "Print per-frame arc descriptions as YAML",
		Long: `Print the geometry of each sampled frame as YAML: the arc rectangle,
start and sweep angles, the five sweep gradient stops, and the group
rotation applied to the whole drawing.

Flags:
  --frames N           Number of frames (default: all frames of the configured laps)
  --out FILE           Output file, or - for stdout (default: -)

` + ringFlagsHelp,
		Usage: "progressring describe [--frames N] [--out FILE] [ring flags]",
		Run:   runDescribe,
	})
}

// frameDescription is one sampled frame.
type frameDescription struct {
	Index         int                     `yaml:"index"`
	TimeMS        int64                   `yaml:"time_ms"`
	Lap           int                     `yaml:"lap"`
	Growing       bool                    `yaml:"growing"`
	GroupRotation float64                 `yaml:"group_rotation"`
	Arc           progress.ArcDescription `yaml:"arc"`
}

func runDescribe(args []string) error {
	res, values, err := parseFlags(args, "--frames", "--out")
	if err != nil {
		return err
	}

	interval := frameInterval(res.FPS)
	count := int(progress.LapDuration/interval) * res.Laps
	if v, ok := values["--frames"]; ok {
		count, err = strconv.Atoi(v)
		if err != nil || count < 1 {
			return fmt.Errorf("--frames must be a positive integer (got %q)", v)
		}
	}

	frames := describeFrames(newFrameSource(res), count, interval)
	return writeOutput("render.describe", valueOr(values, "--out", "-"), func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(frames); err != nil {
			return err
		}
		return enc.Close()
	})
}

func describeFrames(src *frameSource, count int, interval time.Duration) []frameDescription {
	frames := make([]frameDescription, 0, count)
	for i := 0; i < count; i++ {
		d := src.drawable
		frames = append(frames, frameDescription{
			Index:         i,
			TimeMS:        src.elapsed.Milliseconds(),
			Lap:           int(d.LapCount()),
			Growing:       d.Ring().Growing,
			GroupRotation: d.GroupRotation(),
			Arc:           d.Describe(),
		})
		src.advance(interval)
	}
	return frames
}

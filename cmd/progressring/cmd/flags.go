package cmd

import (
	"fmt"
	"strings"

	"github.com/luboganev/circular-progress-view/cmd/progressring/internal/config"
)

// ringFlags maps shared command-line flags to configuration keys.
var ringFlags = map[string]string{
	"--stroke":     "ring.stroke_width",
	"--tint":       "ring.tint",
	"--alpha":      "ring.alpha",
	"--size":       "render.size",
	"--fps":        "render.fps",
	"--laps":       "render.laps",
	"--background": "render.background",
}

const ringFlagsHelp = `Ring flags:
  --config FILE        Read settings from FILE (default: ./progress.yaml if present)
  --stroke PX          Stroke width in pixels
  --tint #RRGGBB       Ring color
  --alpha 0-255        Ring opacity
  --size PX            Output width and height
  --fps N              Frames per second
  --laps N             Number of laps (1-100)
  --background #RRGGBB Background color`

// parseFlags resolves the configuration from an optional file and the shared
// ring flags. Flags named in extra are returned by name instead.
func parseFlags(args []string, extra ...string) (*config.Resolved, map[string]string, error) {
	var (
		configPath string
		overrides  [][2]string
		values     = make(map[string]string)
	)

	for i := 0; i < len(args); i++ {
		name, value, hasValue := strings.Cut(args[i], "=")
		if !strings.HasPrefix(name, "--") {
			return nil, nil, fmt.Errorf("unexpected argument %q", args[i])
		}
		if !hasValue {
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("%s requires a value", name)
			}
			value = args[i+1]
			i++
		}

		switch key, ok := ringFlags[name]; {
		case name == "--config":
			configPath = value
		case ok:
			overrides = append(overrides, [2]string{key, value})
		case contains(extra, name):
			values[name] = value
		default:
			return nil, nil, fmt.Errorf("unknown flag %q", name)
		}
	}

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.LoadOptional(".")
	}
	if err != nil {
		return nil, nil, err
	}

	for _, o := range overrides {
		if err := cfg.ApplyOverride(o[0], o[1]); err != nil {
			return nil, nil, err
		}
	}

	resolved, err := config.Resolve(cfg)
	if err != nil {
		return nil, nil, err
	}
	return resolved, values, nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	progresserrors "github.com/luboganev/circular-progress-view/pkg/errors"
	"github.com/luboganev/circular-progress-view/pkg/rendering"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "progress.yaml"

// SupportedMajor is the only configuration schema major version understood.
const SupportedMajor = "v1"

// Defaults applied by Resolve.
const (
	DefaultSize       = 96
	DefaultFPS        = 30
	DefaultLaps       = 1
	DefaultTint       = "#000000"
	DefaultBackground = "#FFFFFF"

	maxSize = 4096
	maxFPS  = 100
	maxLaps = 100
)

var (
	// ErrUnsupportedVersion reports a version field that is not a v1 semver.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidColor reports a color that is not #RRGGBB.
	ErrInvalidColor = errors.New("invalid color")

	// ErrOutOfRange reports a numeric setting outside its allowed range.
	ErrOutOfRange = errors.New("value out of range")
)

// Config represents the optional progress.yaml configuration.
type Config struct {
	Version string       `yaml:"version,omitempty"`
	Ring    RingConfig   `yaml:"ring"`
	Render  RenderConfig `yaml:"render"`
}

// RingConfig contains the ring styles.
type RingConfig struct {
	StrokeWidth *float64 `yaml:"stroke_width,omitempty"`
	Tint        string   `yaml:"tint,omitempty"`
	Alpha       *int     `yaml:"alpha,omitempty"`
}

// RenderConfig contains output settings for the render, gif and describe
// commands.
type RenderConfig struct {
	Size       int    `yaml:"size,omitempty"`
	FPS        int    `yaml:"fps,omitempty"`
	Laps       int    `yaml:"laps,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Resolved contains validated configuration values with defaults applied.
type Resolved struct {
	// StrokeWidth is nil when the ring default applies.
	StrokeWidth *float64
	Tint        rendering.Color
	Background  rendering.Color
	Size        int
	FPS         int
	Laps        int
}

// LoadOptional reads progress.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// LoadFile reads the configuration at path. A missing file is an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &progresserrors.ProgressError{
			Op:   "config.LoadFile",
			Kind: progresserrors.KindConfig,
			Path: path,
			Err:  fmt.Errorf("failed to read config: %w", err),
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &progresserrors.ProgressError{
			Op:   "config.LoadFile",
			Kind: progresserrors.KindConfig,
			Path: path,
			Err:  fmt.Errorf("failed to parse config: %w", err),
		}
	}
	return &cfg, nil
}

// Resolve validates cfg and fills in defaults.
func Resolve(cfg *Config) (*Resolved, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := validateVersion(cfg.Version); err != nil {
		return nil, resolveError(err)
	}

	tint, err := ParseColor(orDefault(cfg.Ring.Tint, DefaultTint))
	if err != nil {
		return nil, resolveError(fmt.Errorf("ring.tint: %w", err))
	}
	if cfg.Ring.Alpha != nil {
		alpha := *cfg.Ring.Alpha
		if alpha < 0 || alpha > 255 {
			return nil, resolveError(fmt.Errorf("ring.alpha must be between 0 and 255 (got %d): %w", alpha, ErrOutOfRange))
		}
		tint = tint.WithAlpha(uint8(alpha))
	}

	background, err := ParseColor(orDefault(cfg.Render.Background, DefaultBackground))
	if err != nil {
		return nil, resolveError(fmt.Errorf("render.background: %w", err))
	}

	if w := cfg.Ring.StrokeWidth; w != nil && !(*w > 0) {
		return nil, resolveError(fmt.Errorf("ring.stroke_width must be positive (got %v): %w", *w, ErrOutOfRange))
	}

	size, err := intSetting("render.size", cfg.Render.Size, DefaultSize, maxSize)
	if err != nil {
		return nil, resolveError(err)
	}
	fps, err := intSetting("render.fps", cfg.Render.FPS, DefaultFPS, maxFPS)
	if err != nil {
		return nil, resolveError(err)
	}
	laps, err := intSetting("render.laps", cfg.Render.Laps, DefaultLaps, maxLaps)
	if err != nil {
		return nil, resolveError(err)
	}

	return &Resolved{
		StrokeWidth: cfg.Ring.StrokeWidth,
		Tint:        tint,
		Background:  background,
		Size:        size,
		FPS:         fps,
		Laps:        laps,
	}, nil
}

// ParseColor parses an opaque #RRGGBB or #RGB color.
func ParseColor(s string) (rendering.Color, error) {
	s = strings.TrimSpace(s)
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a #RRGGBB color: %w", s, ErrInvalidColor)
	}
	r, g, b := c.RGB255()
	return rendering.RGB(r, g, b), nil
}

// ApplyOverride sets the field named by a command-line flag. Keys use the
// same names as the YAML file, e.g. "ring.tint" or "render.fps".
func (c *Config) ApplyOverride(key, value string) error {
	switch key {
	case "ring.stroke_width":
		w, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.Ring.StrokeWidth = &w
	case "ring.tint":
		c.Ring.Tint = value
	case "ring.alpha":
		a, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.Ring.Alpha = &a
	case "render.size", "render.fps", "render.laps":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		switch key {
		case "render.size":
			c.Render.Size = n
		case "render.fps":
			c.Render.FPS = n
		default:
			c.Render.Laps = n
		}
	case "render.background":
		c.Render.Background = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func validateVersion(version string) error {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("version %q is not a semantic version: %w", version, ErrUnsupportedVersion)
	}
	if major := semver.Major(version); major != SupportedMajor {
		return fmt.Errorf("version %q has major %s, want %s: %w", version, major, SupportedMajor, ErrUnsupportedVersion)
	}
	return nil
}

func intSetting(name string, value, def, limit int) (int, error) {
	if value == 0 {
		return def, nil
	}
	if value < 0 || value > limit {
		return 0, fmt.Errorf("%s must be between 1 and %d (got %d): %w", name, limit, value, ErrOutOfRange)
	}
	return value, nil
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

func resolveError(err error) error {
	return &progresserrors.ProgressError{
		Op:   "config.Resolve",
		Kind: progresserrors.KindConfig,
		Err:  err,
	}
}

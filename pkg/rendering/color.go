package rendering

import (
	"fmt"
	"image/color"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// Alpha returns the alpha channel (0-255).
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel (0-255).
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel (0-255).
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel (0-255).
func (c Color) Blue() uint8 { return uint8(c) }

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(c.Red()) / maxByte,
		float64(c.Green()) / maxByte,
		float64(c.Blue()) / maxByte,
		float64(c.Alpha()) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// MarshalYAML encodes the color in its #AARRGGBB form.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// NRGBA converts the color to the non-premultiplied standard library form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// ColorFromNRGBA converts a standard library color into a Color.
func ColorFromNRGBA(c color.NRGBA) Color {
	return RGBA(c.R, c.G, c.B, c.A)
}

// LerpColor linearly interpolates each ARGB channel between a and b.
func LerpColor(a, b Color, t float64) Color {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGBA(
		lerp(a.Red(), b.Red()),
		lerp(a.Green(), b.Green()),
		lerp(a.Blue(), b.Blue()),
		lerp(a.Alpha(), b.Alpha()),
	)
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)

package core

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) RGBA color.
// It implements image/color.Color so window front-ends can use it directly.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Neon palette used by the built-in level and the HUD.
var (
	ColorNone    = Color{}
	ColorBlack   = RGB(0, 0, 0)
	ColorWhite   = RGB(255, 255, 255)
	ColorCyan    = RGB(0, 255, 255)
	ColorMagenta = RGB(255, 0, 200)
	ColorYellow  = RGB(255, 240, 0)
	ColorGreen   = RGB(50, 255, 160)
	ColorBlue    = RGB(60, 160, 255)
	ColorPurple  = RGB(170, 60, 255)
	ColorGray    = RGB(138, 138, 138)
)

var namedColors = map[string]Color{
	"black":   ColorBlack,
	"white":   ColorWhite,
	"cyan":    ColorCyan,
	"magenta": ColorMagenta,
	"yellow":  ColorYellow,
	"green":   ColorGreen,
	"blue":    ColorBlue,
	"purple":  ColorPurple,
	"gray":    ColorGray,
}

// ParseColor parses a palette name ("cyan") or a hex string ("#00ffff").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGB(r, g, b), nil
}

// IsZero reports whether the color is the fully transparent zero value.
func (c Color) IsZero() bool {
	return c == Color{}
}

// RGBA implements image/color.Color (alpha-premultiplied, 16 bits per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return r, g, b, a
}

// Fade returns the color with its alpha set to alpha (0..1) of full opacity.
func (c Color) Fade(alpha float64) Color {
	c.A = uint8(Clamp(alpha, 0, 1)*255 + 0.5)
	return c
}

// Alpha returns the opacity as a fraction in [0, 1].
func (c Color) Alpha() float64 {
	return float64(c.A) / 255
}

// Brighten adds per-channel offsets, saturating at 0 and 255.
func (c Color) Brighten(dr, dg, db int) Color {
	c.R = uint8(Clamp(int(c.R)+dr, 0, 255))
	c.G = uint8(Clamp(int(c.G)+dg, 0, 255))
	c.B = uint8(Clamp(int(c.B)+db, 0, 255))
	return c
}

// Blend interpolates towards other in RGB space; t=0 returns c, t=1 returns other.
// The result is opaque.
func (c Color) Blend(other Color, t float64) Color {
	r, g, b := c.colorful().BlendRgb(other.colorful(), Clamp(t, 0, 1)).Clamped().RGB255()
	return RGB(r, g, b)
}

// Over composites the color over an opaque background using its alpha.
func (c Color) Over(bg Color) Color {
	return bg.Blend(RGB(c.R, c.G, c.B), c.Alpha())
}

// Hex returns the "#rrggbb" form of the color, ignoring alpha.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

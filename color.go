package display2d

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	intcolor "github.com/gogpu/display2d/internal/color"
)

// RGBA represents a straight-alpha color with float32 components.
//
// Components are nominally in [0, 1]. Values above 1 are legal while
// shading (a tint of 2 doubles a channel); they are clamped only when a
// color is written to the framebuffer.
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Mul multiplies two colors component-wise.
func (c RGBA) Mul(o RGBA) RGBA {
	return RGBA{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Vec4 returns the color as an (r, g, b, a) vector.
func (c RGBA) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// Clamp restricts every component to [0, 1].
func (c RGBA) Clamp() RGBA {
	return fromColorF32(c.colorF32().Clamp())
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	u := intcolor.F32ToU8(c.colorF32())
	return color.NRGBA{R: u.R, G: u.G, B: u.B, A: u.A}
}

// FromColor converts a standard color.Color to straight-alpha RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float32(n.R) / 65535,
		G: float32(n.G) / 65535,
		B: float32(n.B) / 65535,
		A: float32(n.A) / 65535,
	}
}

func (c RGBA) colorF32() intcolor.ColorF32 {
	return intcolor.ColorF32{R: c.R, G: c.G, B: c.B, A: c.A}
}

func fromColorF32(c intcolor.ColorF32) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Malformed input returns opaque black; use ParseHex to detect
// it.
func Hex(hex string) RGBA {
	c, ok := ParseHex(hex)
	if !ok {
		return Black
	}
	return c
}

// ParseHex is like Hex but reports whether hex was well formed.
func ParseHex(hex string) (RGBA, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		return RGBA{}, false
	}
	if !ok {
		return RGBA{}, false
	}

	return RGBA{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}, true
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)

// Package color provides the float and 8-bit color representations shared by
// the display2d sampling, blending and framebuffer code.
package color

// ColorF32 represents a straight-alpha color with float32 components.
// Components are nominally in [0,1] but may exceed that range in the middle
// of shading (tints above 1.0 are legal until output).
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a straight-alpha color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// Mul multiplies two colors component-wise.
func (c ColorF32) Mul(o ColorF32) ColorF32 {
	return ColorF32{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Clamp restricts every component to [0,1], the range a UNORM render
// target can store.
func (c ColorF32) Clamp() ColorF32 {
	return ColorF32{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

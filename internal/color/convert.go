package color

// unorm8 holds v/255 for every 8-bit value so framebuffer reads are a
// table lookup.
var unorm8 = func() (t [256]float32) {
	for i := range t {
		t[i] = float32(i) / 255
	}
	return t
}()

// U8ToF32 maps each channel from [0,255] to [0,1].
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{R: unorm8[c.R], G: unorm8[c.G], B: unorm8[c.B], A: unorm8[c.A]}
}

// F32ToU8 clamps each channel to [0,1] and quantizes it to the nearest
// 8-bit value. NaN maps to 0.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B), A: quantize(c.A)}
}

func quantize(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	return uint8(min(v, 1)*255 + 0.5)
}

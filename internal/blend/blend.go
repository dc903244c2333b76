// Package blend composites shaded fragments onto the framebuffer.
//
// Colors are straight (non-premultiplied) alpha in [0,1], which is how the
// framebuffer stores them.
package blend

import "github.com/gogpu/display2d/internal/color"

// Mode represents a blending mode.
type Mode int

const (
	// ModeSourceOver is the default alpha blending mode.
	ModeSourceOver Mode = iota
	// ModeSourceCopy replaces the destination with the source.
	ModeSourceCopy
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSourceOver:
		return "SourceOver"
	case ModeSourceCopy:
		return "SourceCopy"
	default:
		return "Unknown"
	}
}

// Blend blends src onto dst using the specified mode.
// Unknown modes blend as ModeSourceOver.
func Blend(src, dst color.ColorF32, mode Mode) color.ColorF32 {
	if mode == ModeSourceCopy {
		return src
	}
	return sourceOver(src, dst)
}

// sourceOver blends source over destination using alpha compositing.
func sourceOver(src, dst color.ColorF32) color.ColorF32 {
	srcA := src.A
	dstA := dst.A
	invSrcA := 1 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return color.ColorF32{}
	}

	return color.ColorF32{
		R: (src.R*srcA + dst.R*dstA*invSrcA) / outA,
		G: (src.G*srcA + dst.G*dstA*invSrcA) / outA,
		B: (src.B*srcA + dst.B*dstA*invSrcA) / outA,
		A: outA,
	}
}

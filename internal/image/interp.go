package image

import (
	"math"

	"github.com/gogpu/display2d/internal/color"
)

// InterpolationMode defines how texture sampling is performed.
type InterpolationMode uint8

const (
	// InterpNearest selects the texel containing the coordinate.
	// This is the mode pixel-art cutout sprites are drawn with.
	InterpNearest InterpolationMode = iota

	// InterpBilinear performs linear interpolation between 4 neighboring texels.
	InterpBilinear
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// Sample samples the image at normalized coordinates (u, v).
// (0,0) is the top-left corner of the first texel and (1,1) the bottom-right
// corner of the last. Coordinates outside [0,1] are clamped to the edge.
func Sample(img *ImageBuf, u, v float32, mode InterpolationMode) color.ColorF32 {
	if mode == InterpBilinear {
		return SampleBilinear(img, u, v)
	}
	return SampleNearest(img, u, v)
}

// SampleNearest performs nearest-texel sampling at normalized coordinates.
func SampleNearest(img *ImageBuf, u, v float32) color.ColorF32 {
	w, h := img.Bounds()
	x := clamp(floorInt(u*float32(w)), 0, w-1)
	y := clamp(floorInt(v*float32(h)), 0, h-1)
	return img.At(x, y)
}

// SampleBilinear performs bilinear interpolation at normalized coordinates.
// Texel centers sit at half-integer positions, matching GPU samplers.
func SampleBilinear(img *ImageBuf, u, v float32) color.ColorF32 {
	w, h := img.Bounds()

	fx := u*float32(w) - 0.5
	fy := v*float32(h) - 0.5

	x0 := floorInt(fx)
	y0 := floorInt(fy)
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	x1 := clamp(x0+1, 0, w-1)
	y1 := clamp(y0+1, 0, h-1)
	x0 = clamp(x0, 0, w-1)
	y0 = clamp(y0, 0, h-1)

	c00 := img.At(x0, y0)
	c10 := img.At(x1, y0)
	c01 := img.At(x0, y1)
	c11 := img.At(x1, y1)

	return color.ColorF32{
		R: lerp2D(c00.R, c10.R, c01.R, c11.R, tx, ty),
		G: lerp2D(c00.G, c10.G, c01.G, c11.G, tx, ty),
		B: lerp2D(c00.B, c10.B, c01.B, c11.B, tx, ty),
		A: lerp2D(c00.A, c10.A, c01.A, c11.A, tx, ty),
	}
}

// floorInt floors v and converts to int. NaN maps to 0.
func floorInt(v float32) int {
	f := math.Floor(float64(v))
	if math.IsNaN(f) {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	if f < math.MinInt32 {
		return math.MinInt32
	}
	return int(f)
}

// clamp clamps an integer value to [minVal, maxVal].
//
//nolint:unparam // minVal is always 0 currently, but function is general-purpose
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float32) float32 {
	return lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
}

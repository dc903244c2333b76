// Package image provides the RGBA8 pixel storage used for textures and
// framebuffers in display2d.
//
// Pixels are stored as straight (non-premultiplied) RGBA, 4 bytes per pixel,
// row-major with an optional stride for alignment.
package image

import (
	"errors"

	"github.com/gogpu/display2d/internal/color"
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// ImageBuf is an RGBA8 image buffer.
//
// Thread safety: ImageBuf is safe for concurrent reads. Concurrent writes are
// safe only when the writers touch disjoint pixels, which is how the tile
// renderer uses it.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
}

// NewImageBuf creates a zeroed (transparent black) image buffer.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	stride := width * BytesPerPixel
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// FromRaw creates an ImageBuf from existing data without copying.
// The caller must ensure data remains valid for the lifetime of the ImageBuf.
func FromRaw(data []byte, width, height, stride int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width*BytesPerPixel {
		return nil, ErrInvalidStride
	}
	required := stride*(height-1) + width*BytesPerPixel
	if len(data) < required {
		return nil, ErrDataTooSmall
	}
	return &ImageBuf{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Clone creates a deep copy of the image buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return &ImageBuf{data: data, width: b.width, height: b.height, stride: b.stride}
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int { return b.width }

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int { return b.height }

// Stride returns the number of bytes per row (including padding).
func (b *ImageBuf) Stride() int { return b.stride }

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) { return b.width, b.height }

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte { return b.data }

// RowBytes returns the pixel bytes of row y without padding.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.width*BytesPerPixel]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*BytesPerPixel
}

// GetRGBA returns the color at (x, y) in 0-255 range.
// Returns (0,0,0,0) if coordinates are out of bounds.
func (b *ImageBuf) GetRGBA(x, y int) (r, g, bl, a uint8) {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}
	return b.data[off], b.data[off+1], b.data[off+2], b.data[off+3]
}

// SetRGBA sets the color at (x, y) from 0-255 components.
func (b *ImageBuf) SetRGBA(x, y int, r, g, bl, a uint8) error {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	b.data[off] = r
	b.data[off+1] = g
	b.data[off+2] = bl
	b.data[off+3] = a
	return nil
}

// At returns the pixel at (x, y) as a float color.
// The caller guarantees (x, y) is in bounds.
func (b *ImageBuf) At(x, y int) color.ColorF32 {
	off := y*b.stride + x*BytesPerPixel
	p := b.data[off : off+4 : off+4]
	return color.U8ToF32(color.ColorU8{R: p[0], G: p[1], B: p[2], A: p[3]})
}

// Store writes a float color to (x, y), clamping to [0,1].
// The caller guarantees (x, y) is in bounds.
func (b *ImageBuf) Store(x, y int, c color.ColorF32) {
	off := y*b.stride + x*BytesPerPixel
	u := color.F32ToU8(c)
	p := b.data[off : off+4 : off+4]
	p[0], p[1], p[2], p[3] = u.R, u.G, u.B, u.A
}

// Clear sets all pixels to transparent black.
func (b *ImageBuf) Clear() {
	clear(b.data)
}

// Fill sets all pixels to the given color.
func (b *ImageBuf) Fill(r, g, bl, a uint8) {
	for y := range b.height {
		row := b.RowBytes(y)
		for i := 0; i < len(row); i += BytesPerPixel {
			row[i], row[i+1], row[i+2], row[i+3] = r, g, bl, a
		}
	}
}

// SubImage returns a view into a rectangular region of the image.
// The returned ImageBuf shares pixel data with the original.
// Returns nil if the region is empty or not fully inside the image.
func (b *ImageBuf) SubImage(x, y, width, height int) *ImageBuf {
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil
	}
	if x+width > b.width || y+height > b.height {
		return nil
	}
	start := y*b.stride + x*BytesPerPixel
	end := (y+height-1)*b.stride + (x+width)*BytesPerPixel
	return &ImageBuf{
		data:   b.data[start:end],
		width:  width,
		height: height,
		stride: b.stride,
	}
}

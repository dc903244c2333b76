package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrEmptyData is returned when image data is empty.
var ErrEmptyData = errors.New("image: empty data")

// LoadImage loads an image file, detecting the format from its content.
// Supported formats: PNG, JPEG, BMP, WebP.
func LoadImage(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadImageFromBytes decodes an image from a byte slice.
func LoadImageFromBytes(data []byte) (*ImageBuf, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// FromStdImage copies a standard library image into a new RGBA8 ImageBuf.
func FromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()
	buf, err := NewImageBuf(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images: the layout is identical.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range buf.height {
			start := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), nrgba.Pix[start:start+buf.width*BytesPerPixel])
		}
		return buf, nil
	}

	// Everything else goes through x/image/draw, which un-premultiplies
	// into the NRGBA view of our buffer.
	xdraw.Draw(buf.nrgbaView(), buf.nrgbaView().Bounds(), img, bounds.Min, xdraw.Src)
	return buf, nil
}

// nrgbaView wraps the buffer memory as an *image.NRGBA without copying.
func (b *ImageBuf) nrgbaView() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.stride,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// ToStdImage copies the buffer into a new *image.NRGBA.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		copy(out.Pix[y*out.Stride:], b.RowBytes(y))
	}
	return out
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the image as a PNG file.
func (b *ImageBuf) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

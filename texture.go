package display2d

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	intImage "github.com/gogpu/display2d/internal/image"
)

// ErrNilImage is returned when a texture is created from a nil image.
var ErrNilImage = errors.New("display2d: nil image")

// Sampler reads a bound texture. The pixel programs only ever read through
// this interface, and implementations must be safe for concurrent reads.
type Sampler interface {
	Sample(uv mgl32.Vec2) RGBA
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func(uv mgl32.Vec2) RGBA

// Sample implements Sampler.
func (f SamplerFunc) Sample(uv mgl32.Vec2) RGBA { return f(uv) }

// Filter selects how a Texture is sampled between texels.
type Filter uint8

const (
	// FilterNearest picks the texel containing the coordinate.
	FilterNearest Filter = iota
	// FilterBilinear interpolates the four nearest texels.
	FilterBilinear
)

// String returns the filter name.
func (f Filter) String() string {
	return f.mode().String()
}

func (f Filter) mode() intImage.InterpolationMode {
	if f == FilterBilinear {
		return intImage.InterpBilinear
	}
	return intImage.InterpNearest
}

// Texture is an RGBA8 image sampled with clamp-to-edge addressing.
// A Texture is immutable after creation.
type Texture struct {
	buf    *intImage.ImageBuf
	filter Filter
}

// NewTexture copies img into a new texture.
func NewTexture(img image.Image, filter Filter) (*Texture, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	buf, err := intImage.FromStdImage(img)
	if err != nil {
		return nil, fmt.Errorf("display2d: texture: %w", err)
	}
	return &Texture{buf: buf, filter: filter}, nil
}

// LoadTexture decodes a PNG, JPEG, BMP or WebP file into a texture.
func LoadTexture(path string, filter Filter) (*Texture, error) {
	buf, err := intImage.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("display2d: load texture %q: %w", path, err)
	}
	return &Texture{buf: buf, filter: filter}, nil
}

// Sample implements Sampler.
func (t *Texture) Sample(uv mgl32.Vec2) RGBA {
	return fromColorF32(intImage.Sample(t.buf, uv[0], uv[1], t.filter.mode()))
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.buf.Width() }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.buf.Height() }

// Filter returns the sampling filter.
func (t *Texture) Filter() Filter { return t.filter }

// TexelSize returns the normalized size of one texel, the edge-fill
// neighbor offsets for this texture.
func (t *Texture) TexelSize() (w, h float32) {
	return 1 / float32(t.buf.Width()), 1 / float32(t.buf.Height())
}

// Pixels returns an RGBA8 copy of the texture, rows top to bottom, for
// uploading to a GPU texture.
func (t *Texture) Pixels() []byte {
	return t.buf.ToStdImage().Pix
}

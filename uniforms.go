package display2d

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/mobile/exp/f32"
)

// UniformBlockSize is the size in bytes of the packed uniform block:
// vec4 settings, vec4 texture factor, f32 desaturation, 12 bytes padding.
const UniformBlockSize = 48

// ErrUniformRange reports a uniform value outside its conventional range.
// Such values are still rendered; they only produce degenerate visuals.
var ErrUniformRange = errors.New("display2d: uniform outside conventional range")

// RenderSettings is the per-draw settings vector.
type RenderSettings struct {
	// TexelWidth and TexelHeight are the neighbor offsets used by edge
	// fill, conventionally 1/width and 1/height of the bound texture.
	TexelWidth  float32
	TexelHeight float32

	// FSAABlendFactor scales the alpha of synthesized edges.
	FSAABlendFactor float32

	// Transparency scales the final alpha of every variant.
	Transparency float32
}

// NewRenderSettings derives texel offsets from the texture size.
// Non-positive sizes yield a zero offset.
func NewRenderSettings(texWidth, texHeight int, fsaaBlend, transparency float32) RenderSettings {
	return RenderSettings{
		TexelWidth:      reciprocal(texWidth),
		TexelHeight:     reciprocal(texHeight),
		FSAABlendFactor: fsaaBlend,
		Transparency:    transparency,
	}
}

func reciprocal(n int) float32 {
	if n <= 0 {
		return 0
	}
	return 1 / float32(n)
}

// Vec4 returns the settings in shader order.
func (s RenderSettings) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{s.TexelWidth, s.TexelHeight, s.FSAABlendFactor, s.Transparency}
}

// Uniforms is the uniform block shared by all pixel variants for one batch.
// Fullbright ignores Desaturation.
type Uniforms struct {
	Settings      RenderSettings
	Desaturation  float32
	TextureFactor RGBA
}

// DefaultUniforms returns identity uniforms for a texture of the given size:
// full edge blend, opaque, no desaturation, white tint.
func DefaultUniforms(texWidth, texHeight int) Uniforms {
	return Uniforms{
		Settings:      NewRenderSettings(texWidth, texHeight, 1, 1),
		TextureFactor: White,
	}
}

// Check reports every value outside its conventional range, joined into one
// error wrapping ErrUniformRange. It returns nil for conventional uniforms.
func (u Uniforms) Check() error {
	var errs []error
	nonNegative := func(name string, v float32) {
		if isNaN(v) || v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s = %v, want >= 0", ErrUniformRange, name, v))
		}
	}
	unit := func(name string, v float32) {
		if isNaN(v) || v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%w: %s = %v, want [0,1]", ErrUniformRange, name, v))
		}
	}

	nonNegative("texel width", u.Settings.TexelWidth)
	nonNegative("texel height", u.Settings.TexelHeight)
	unit("fsaa blend factor", u.Settings.FSAABlendFactor)
	unit("transparency", u.Settings.Transparency)
	unit("desaturation", u.Desaturation)
	return errors.Join(errs...)
}

func isNaN(v float32) bool {
	return math.IsNaN(float64(v))
}

// Bytes packs the block in the WGSL/std140 uniform layout, little-endian.
func (u Uniforms) Bytes() []byte {
	s, f := u.Settings, u.TextureFactor
	return f32.Bytes(binary.LittleEndian,
		s.TexelWidth, s.TexelHeight, s.FSAABlendFactor, s.Transparency,
		f.R, f.G, f.B, f.A,
		u.Desaturation, 0, 0, 0,
	)
}

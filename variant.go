package display2d

// Variant identifies one of the three pixel programs.
type Variant int

const (
	// VariantFSAA synthesizes edge colors for alpha-cutout textures.
	VariantFSAA Variant = iota
	// VariantNormal desaturates, fades and tints.
	VariantNormal
	// VariantFullbright fades and tints only.
	VariantFullbright
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantFSAA:
		return "FSAA"
	case VariantNormal:
		return "Normal"
	case VariantFullbright:
		return "Fullbright"
	default:
		return "Unknown"
	}
}

// PixelShader is one compiled pixel program.
//
// Shade returns the final color for a fragment, or false when the fragment
// is discarded. Implementations are stateless and safe for concurrent use;
// u and tex must not be mutated while a batch is in flight.
type PixelShader interface {
	Shade(in Fragment, u *Uniforms, tex Sampler) (RGBA, bool)
	Variant() Variant
	AlphaTest() bool
	SupportsDesaturation() bool
}

// AlphaTest selects the alpha-test specialization of a pixel program.
type AlphaTest interface {
	AlphaTestOn | AlphaTestOff
	enabled() bool
}

// AlphaTestOn discards fragments whose final alpha is below
// AlphaTestThreshold.
type AlphaTestOn struct{}

// AlphaTestOff never discards.
type AlphaTestOff struct{}

func (AlphaTestOn) enabled() bool  { return true }
func (AlphaTestOff) enabled() bool { return false }

func alphaTestEnabled[T AlphaTest]() bool {
	var t T
	return t.enabled()
}

// finish applies the alpha test of T to a final color.
func finish[T AlphaTest](c RGBA) (RGBA, bool) {
	if alphaTestEnabled[T]() && c.A < AlphaTestThreshold {
		return RGBA{}, false
	}
	return c, true
}

// FSAA is the edge anti-aliasing program.
type FSAA[T AlphaTest] struct{}

// Shade implements PixelShader.
func (FSAA[T]) Shade(in Fragment, u *Uniforms, tex Sampler) (RGBA, bool) {
	c := tex.Sample(in.UV)

	var out RGBA
	if c.A < CutoutThreshold {
		// Synthesized edges are not modulated by vertex color.
		n := EdgeFill(tex, in.UV, u.Settings)
		out = Desaturate(n, u.Desaturation)
		out.A = n.A * u.Settings.FSAABlendFactor * u.Settings.Transparency
	} else {
		out = shadeDirect(c, in.Color, u)
	}
	return finish[T](out.Mul(u.TextureFactor))
}

func (FSAA[T]) Variant() Variant           { return VariantFSAA }
func (FSAA[T]) AlphaTest() bool            { return alphaTestEnabled[T]() }
func (FSAA[T]) SupportsDesaturation() bool { return true }

// Normal is the desaturate, fade and tint program.
type Normal[T AlphaTest] struct{}

// Shade implements PixelShader.
func (Normal[T]) Shade(in Fragment, u *Uniforms, tex Sampler) (RGBA, bool) {
	c := tex.Sample(in.UV)
	return finish[T](shadeDirect(c, in.Color, u).Mul(u.TextureFactor))
}

func (Normal[T]) Variant() Variant           { return VariantNormal }
func (Normal[T]) AlphaTest() bool            { return alphaTestEnabled[T]() }
func (Normal[T]) SupportsDesaturation() bool { return true }

// Fullbright ignores vertex color and desaturation.
type Fullbright[T AlphaTest] struct{}

// Shade implements PixelShader.
func (Fullbright[T]) Shade(in Fragment, u *Uniforms, tex Sampler) (RGBA, bool) {
	c := tex.Sample(in.UV)
	c.A *= u.Settings.Transparency
	return finish[T](c.Mul(u.TextureFactor))
}

func (Fullbright[T]) Variant() Variant           { return VariantFullbright }
func (Fullbright[T]) AlphaTest() bool            { return alphaTestEnabled[T]() }
func (Fullbright[T]) SupportsDesaturation() bool { return false }

// NewPixelShader returns the program for v with or without alpha test.
// Unknown variants fall back to Normal.
func NewPixelShader(v Variant, alphaTest bool) PixelShader {
	switch v {
	case VariantFSAA:
		if alphaTest {
			return FSAA[AlphaTestOn]{}
		}
		return FSAA[AlphaTestOff]{}
	case VariantFullbright:
		if alphaTest {
			return Fullbright[AlphaTestOn]{}
		}
		return Fullbright[AlphaTestOff]{}
	case VariantNormal:
	default:
		Logger().Warn("display2d: unknown pixel variant, using Normal", "variant", int(v))
	}
	if alphaTest {
		return Normal[AlphaTestOn]{}
	}
	return Normal[AlphaTestOff]{}
}

// RenderFlags are the per-batch render-mode switches the host derives its
// program choice from.
type RenderFlags struct {
	Antialias  bool // edge anti-aliasing for cutout textures
	Fullbright bool // no vertex color, no desaturation
	AlphaTest  bool
}

// Variant returns the program variant for f. Antialias takes precedence
// over Fullbright; with neither set the Normal variant is used.
func (f RenderFlags) Variant() Variant {
	switch {
	case f.Antialias:
		return VariantFSAA
	case f.Fullbright:
		return VariantFullbright
	default:
		return VariantNormal
	}
}

// SelectShader returns the pixel program for f.
func SelectShader(f RenderFlags) PixelShader {
	return NewPixelShader(f.Variant(), f.AlphaTest)
}

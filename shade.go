package display2d

import "github.com/go-gl/mathgl/mgl32"

// Alpha thresholds used by the pixel variants. The values match the
// reference visuals and are kept as named constants so they can be tuned.
const (
	// CutoutThreshold is the sample alpha below which FSAA synthesizes an
	// edge color from the texel neighbors (strict less-than).
	CutoutThreshold float32 = 0.1

	// AlphaTestThreshold is the final alpha below which alpha-tested
	// programs discard the fragment (strict less-than).
	AlphaTestThreshold float32 = 0.5
)

// Luma weights. Green-heavy on purpose; do not replace with Rec. 601/709.
const (
	lumaR float32 = 0.3
	lumaG float32 = 0.56
	lumaB float32 = 0.14
)

// Luminance returns 0.3*r + 0.56*g + 0.14*b.
func Luminance(c RGBA) float32 {
	return c.R*lumaR + c.G*lumaG + c.B*lumaB
}

// Desaturate mixes the rgb of c toward its luminance gray by amount.
// Alpha is left untouched. amount 0 returns c exactly and amount 1 returns
// exactly the luminance gray.
func Desaturate(c RGBA, amount float32) RGBA {
	gray := Luminance(c)
	return RGBA{
		R: mix(c.R, gray, amount),
		G: mix(c.G, gray, amount),
		B: mix(c.B, gray, amount),
		A: c.A,
	}
}

// mix is written as a*(1-t) + b*t so both endpoints are exact.
func mix(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// AddColor combines two edge samples: rgb takes the per-channel maximum,
// alpha accumulates c2 at half weight, clamped to [0, 1].
func AddColor(c1, c2 RGBA) RGBA {
	return RGBA{
		R: max(c1.R, c2.R),
		G: max(c1.G, c2.G),
		B: max(c1.B, c2.B),
		A: mgl32.Clamp(c1.A+c2.A*0.5, 0, 1),
	}
}

// EdgeFill synthesizes a border color for a transparent texel from its
// four neighbors at uv±(TexelWidth, 0) and uv±(0, TexelHeight), accumulated
// from transparent black in the order +x, -x, +y, -y.
func EdgeFill(tex Sampler, uv mgl32.Vec2, s RenderSettings) RGBA {
	dx := mgl32.Vec2{s.TexelWidth, 0}
	dy := mgl32.Vec2{0, s.TexelHeight}

	var n RGBA
	n = AddColor(n, tex.Sample(uv.Add(dx)))
	n = AddColor(n, tex.Sample(uv.Sub(dx)))
	n = AddColor(n, tex.Sample(uv.Add(dy)))
	n = AddColor(n, tex.Sample(uv.Sub(dy)))
	return n
}

// shadeDirect is the color path shared by Normal and the opaque branch of
// FSAA: desaturate, fade by transparency, modulate by vertex color.
func shadeDirect(c, vertexColor RGBA, u *Uniforms) RGBA {
	out := Desaturate(c, u.Desaturation)
	out.A = c.A * u.Settings.Transparency
	return out.Mul(vertexColor)
}

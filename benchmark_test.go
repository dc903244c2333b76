package display2d

import (
	"context"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// BenchmarkShade benchmarks one fragment through each pixel program.
func BenchmarkShade(b *testing.B) {
	tex := SamplerFunc(func(uv mgl32.Vec2) RGBA {
		if uv[0] < 0.5 {
			return Transparent
		}
		return RGBA{R: 1, G: 0.5, B: 0.25, A: 1}
	})
	u := DefaultUniforms(64, 64)
	u.Desaturation = 0.5

	fragments := []struct {
		name string
		uv   mgl32.Vec2
	}{
		{"opaque", mgl32.Vec2{0.75, 0.5}},
		{"cutout", mgl32.Vec2{0.25, 0.5}},
	}
	for _, v := range []Variant{VariantFSAA, VariantNormal, VariantFullbright} {
		s := NewPixelShader(v, true)
		for _, f := range fragments {
			b.Run(v.String()+"_"+f.name, func(b *testing.B) {
				in := Fragment{Color: White, UV: f.uv}
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					s.Shade(in, &u, tex)
				}
			})
		}
	}
}

// BenchmarkRenderer_Draw benchmarks a full-screen quad at various sizes.
func BenchmarkRenderer_Draw(b *testing.B) {
	sizes := []struct {
		name   string
		width  int
		height int
	}{
		{"256x256", 256, 256},
		{"1280x720", 1280, 720},
		{"1920x1080", 1920, 1080},
	}

	img := checker2x2()
	tex, err := NewTexture(img, FilterBilinear)
	if err != nil {
		b.Fatal(err)
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			r, err := NewRenderer(size.width, size.height)
			if err != nil {
				b.Fatal(err)
			}
			defer r.Close()

			batch := Batch{
				Shader:     FSAA[AlphaTestOff]{},
				Uniforms:   DefaultUniforms(tex.Width(), tex.Height()),
				Texture:    tex,
				Projection: Ortho2D(float32(size.width), float32(size.height)),
				Vertices:   Quad(Rect{W: float32(size.width), H: float32(size.height)}, FullUV, White),
			}
			ctx := context.Background()

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := r.Draw(ctx, batch); err != nil {
					b.Fatal(err)
				}
			}
			b.SetBytes(int64(size.width * size.height * 4))
		})
	}
}

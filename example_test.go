package display2d_test

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/display2d"
)

// ExampleRenderer_Draw draws a translucent white quad over black.
func ExampleRenderer_Draw() {
	r, err := display2d.NewRenderer(4, 4, display2d.WithClearColor(display2d.Black))
	if err != nil {
		fmt.Println("renderer:", err)
		return
	}
	defer r.Close()

	white := display2d.SamplerFunc(func(mgl32.Vec2) display2d.RGBA { return display2d.White })
	u := display2d.DefaultUniforms(1, 1)
	u.Settings.Transparency = 0.5

	stats, err := r.Draw(context.Background(), display2d.Batch{
		Shader:     display2d.NewPixelShader(display2d.VariantNormal, false),
		Uniforms:   u,
		Texture:    white,
		Projection: display2d.Ortho2D(4, 4),
		Vertices:   display2d.Quad(display2d.Rect{W: 2, H: 2}, display2d.FullUV, display2d.White),
	})
	if err != nil {
		fmt.Println("draw:", err)
		return
	}

	fmt.Println("fragments:", stats.Fragments)
	fmt.Println("inside:", r.At(0, 0).Color())
	fmt.Println("outside:", r.At(3, 3).Color())
	// Output:
	// fragments: 4
	// inside: {128 128 128 255}
	// outside: {0 0 0 255}
}

// ExampleSelectShader shows how render flags map to pixel programs.
func ExampleSelectShader() {
	for _, f := range []display2d.RenderFlags{
		{},
		{Antialias: true},
		{Fullbright: true, AlphaTest: true},
		{Antialias: true, Fullbright: true},
	} {
		s := display2d.SelectShader(f)
		fmt.Println(s.Variant(), s.AlphaTest())
	}
	// Output:
	// Normal false
	// FSAA false
	// Fullbright true
	// FSAA false
}

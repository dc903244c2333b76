// Package display2d provides a 2D sprite and quad compositing pipeline.
//
// # Overview
//
// display2d turns textured quads plus per-draw uniform state into
// framebuffer colors. It supports edge anti-aliasing for alpha-cutout
// sprites, optional desaturation, a global transparency factor and a
// per-draw color tint.
//
// The pipeline has a single vertex stage and three pixel variants:
//   - FSAA: synthesizes an edge color from the four texel neighbors of
//     near-transparent samples, then desaturates, fades and tints
//   - Normal: desaturates, fades and tints
//   - Fullbright: fades and tints only (UI glyphs, emissive overlays)
//
// Each variant exists with and without an alpha test, selected at compile
// time through a type parameter, giving six stateless programs.
//
// # Quick Start
//
//	tex, _ := display2d.LoadTexture("sprite.png", display2d.FilterNearest)
//	r, _ := display2d.NewRenderer(320, 200)
//	defer r.Close()
//
//	u := display2d.DefaultUniforms(tex.Width(), tex.Height())
//	_, err := r.Draw(ctx, display2d.Batch{
//	    Shader:     display2d.SelectShader(display2d.RenderFlags{Antialias: true}),
//	    Uniforms:   u,
//	    Texture:    tex,
//	    Projection: display2d.Ortho2D(320, 200),
//	    Vertices:   display2d.Quad(display2d.Rect{X: 10, Y: 10, W: 64, H: 64}, display2d.FullUV, display2d.White),
//	})
//	_ = r.SavePNG("out.png")
//
// # Coordinate System
//
// Ortho2D maps pixel coordinates with the origin at the top-left, X
// increasing right and Y increasing down. Texture coordinates put (0,0) at
// the top-left corner of the first texel. Matrices are column-major, as in
// mathgl and GLSL.
//
// # GPU Programs
//
// ShaderSource returns the WGSL for each of the six programs and
// PackVertices produces vertex data matching their buffer layout, so the
// same batches can be submitted to a WebGPU device.
package display2d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

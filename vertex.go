package display2d

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one corner of a sprite triangle as submitted by the host.
type Vertex struct {
	Position mgl32.Vec3 // model space
	Color    RGBA
	UV       mgl32.Vec2
}

// VertexOutput is the result of the vertex stage.
type VertexOutput struct {
	Position mgl32.Vec4 // clip space
	Color    RGBA
	UV       mgl32.Vec2
}

// Fragment is the interpolated input of the pixel stage.
type Fragment struct {
	Color RGBA
	UV    mgl32.Vec2
}

// TransformVertex runs the vertex stage: the clip-space position is
// projection × (position, 1) and color and UV pass through unchanged.
//
// projection is column-major, the mathgl convention. The stage is the same
// for every pixel variant.
func TransformVertex(projection mgl32.Mat4, v Vertex) VertexOutput {
	return VertexOutput{
		Position: projection.Mul4x1(v.Position.Vec4(1)),
		Color:    v.Color,
		UV:       v.UV,
	}
}

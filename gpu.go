package display2d

import (
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/mobile/exp/f32"

	"github.com/gogpu/display2d/internal/gpu"
)

// VertexStride is the byte size of one vertex produced by PackVertices.
const VertexStride = gpu.VertexStride

func (v Variant) program() gpu.Program {
	switch v {
	case VariantFSAA:
		return gpu.ProgramFSAA
	case VariantFullbright:
		return gpu.ProgramFullbright
	default:
		return gpu.ProgramNormal
	}
}

// ShaderSource returns the WGSL module of the program for v, with entry
// points vs_main and fs_main. Unknown variants return the Normal program.
//
// Bindings, all in group 0: the uniform block (Uniforms.Bytes) at 0, the
// sprite texture at 1, its sampler at 2 and the projection
// (PackProjection) at 3.
func ShaderSource(v Variant, alphaTest bool) string {
	src, _ := gpu.Source(v.program(), alphaTest) // every program() result is known
	return src
}

// PackVertices packs vertices into the interleaved little-endian layout
// of the GPU programs: position f32x3, color f32x4, uv f32x2.
func PackVertices(vertices []Vertex) []byte {
	values := make([]float32, 0, len(vertices)*9)
	for _, v := range vertices {
		values = append(values,
			v.Position[0], v.Position[1], v.Position[2],
			v.Color.R, v.Color.G, v.Color.B, v.Color.A,
			v.UV[0], v.UV[1],
		)
	}
	return f32.Bytes(binary.LittleEndian, values...)
}

// PackProjection packs a projection matrix for the projection binding.
// mgl32 matrices are column-major, matching WGSL mat4x4.
func PackProjection(m mgl32.Mat4) []byte {
	return f32.Bytes(binary.LittleEndian, m[:]...)
}

package gpu

import "github.com/gogpu/gputypes"

// Vertex buffer layout: position f32x3, color f32x4, uv f32x2.
const (
	positionOffset = 0
	colorOffset    = 12
	uvOffset       = 28

	// VertexStride is the byte size of one packed vertex.
	VertexStride = 36
)

// Uniform buffer sizes of the sprite bind group.
const (
	// UniformSize is the sprite uniform block: settings vec4, texture
	// factor vec4, desaturation f32, padded to 16 bytes.
	UniformSize = 48

	// ProjectionSize is one column-major mat4x4<f32>.
	ProjectionSize = 64
)

// Bind group slots shared by all sprite programs, group(0).
const (
	BindingUniforms   = 0
	BindingTexture    = 1
	BindingSampler    = 2
	BindingProjection = 3
)

// VertexBufferLayouts returns the single interleaved vertex buffer layout
// of the sprite programs.
func VertexBufferLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: positionOffset, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x4, Offset: colorOffset, ShaderLocation: 1},
				{Format: gputypes.VertexFormatFloat32x2, Offset: uvOffset, ShaderLocation: 2},
			},
		},
	}
}

// BindGroupLayoutEntries returns the group(0) layout: the uniform block and
// sprite texture/sampler for the fragment stage, the projection for the
// vertex stage.
func BindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    BindingUniforms,
			Visibility: gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
		{
			Binding:    BindingTexture,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    BindingSampler,
			Visibility: gputypes.ShaderStageFragment,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
		{
			Binding:    BindingProjection,
			Visibility: gputypes.ShaderStageVertex,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
	}
}

// AlphaBlend is straight-alpha source-over blending, the GPU equivalent of
// the software renderer's default blend mode.
func AlphaBlend() gputypes.BlendState {
	return gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

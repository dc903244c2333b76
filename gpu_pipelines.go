//go:build !nogpu

package display2d

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/display2d/internal/gpu"
)

// GPUPipelines holds the six sprite render pipelines on a WebGPU HAL
// device. Bind Uniforms.Bytes, the texture, a sampler and PackProjection
// according to BindGroupLayout; feed PackVertices as vertex buffer 0.
type GPUPipelines struct {
	sp *gpu.SpritePipelines
}

// NewGPUPipelines builds the pipelines for color targets of format.
func NewGPUPipelines(device hal.Device, format gputypes.TextureFormat) (*GPUPipelines, error) {
	sp, err := gpu.NewSpritePipelines(device, format)
	if err != nil {
		return nil, fmt.Errorf("display2d: gpu pipelines: %w", err)
	}
	return &GPUPipelines{sp: sp}, nil
}

// ErrPipelinesDestroyed is returned by Pipeline after Destroy.
var ErrPipelinesDestroyed = gpu.ErrDestroyed

// Pipeline returns the render pipeline for a pixel program, or
// ErrPipelinesDestroyed after Destroy.
func (g *GPUPipelines) Pipeline(s PixelShader) (hal.RenderPipeline, error) {
	p, err := g.sp.Pipeline(s.Variant().program(), s.AlphaTest())
	if err != nil {
		return nil, fmt.Errorf("display2d: pipeline %s: %w", s.Variant(), err)
	}
	return p, nil
}

// BindGroupLayout returns the group(0) layout shared by all pipelines.
func (g *GPUPipelines) BindGroupLayout() hal.BindGroupLayout {
	return g.sp.BindGroupLayout()
}

// Destroy releases the pipelines.
func (g *GPUPipelines) Destroy() {
	g.sp.Destroy()
}

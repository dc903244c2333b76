//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// ErrDestroyed is returned by Pipeline after Destroy.
var ErrDestroyed = errors.New("gpu: sprite pipelines destroyed")

// SpritePipelines owns the render pipelines of all six sprite programs on
// one device. All pipelines share one bind group layout and pipeline
// layout; each program has its own shader module containing vs_main and
// fs_main.
type SpritePipelines struct {
	device hal.Device
	format gputypes.TextureFormat

	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout

	modules   [programCount][2]hal.ShaderModule
	pipelines [programCount][2]hal.RenderPipeline
}

func alphaIndex(alphaTest bool) int {
	if alphaTest {
		return 1
	}
	return 0
}

// NewSpritePipelines compiles the sprite programs and creates their render
// pipelines for color targets of the given format. On failure every object
// created so far is released.
func NewSpritePipelines(device hal.Device, format gputypes.TextureFormat) (*SpritePipelines, error) {
	sp := &SpritePipelines{device: device, format: format}
	if err := sp.create(); err != nil {
		sp.Destroy()
		return nil, err
	}
	slogger().Debug("gpu: sprite pipelines created", "programs", len(Programs)*2, "format", fmt.Sprint(format))
	return sp, nil
}

func (sp *SpritePipelines) create() error {
	bindLayout, err := sp.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "sprite_bind_layout",
		Entries: BindGroupLayoutEntries(),
	})
	if err != nil {
		return fmt.Errorf("create sprite bind group layout: %w", err)
	}
	sp.bindLayout = bindLayout

	pipeLayout, err := sp.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "sprite_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{sp.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create sprite pipeline layout: %w", err)
	}
	sp.pipeLayout = pipeLayout

	buffers := VertexBufferLayouts()
	blend := AlphaBlend()

	for _, p := range Programs {
		for _, alphaTest := range []bool{false, true} {
			label := Label(p, alphaTest)
			src, err := Source(p, alphaTest)
			if err != nil {
				return err
			}

			module, err := sp.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
				Label:  label + "_shader",
				Source: hal.ShaderSource{WGSL: src},
			})
			if err != nil {
				return fmt.Errorf("compile %s shader: %w", label, err)
			}
			sp.modules[p][alphaIndex(alphaTest)] = module

			pipeline, err := sp.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
				Label:  label + "_pipeline",
				Layout: sp.pipeLayout,
				Vertex: hal.VertexState{
					Module:     module,
					EntryPoint: "vs_main",
					Buffers:    buffers,
				},
				Fragment: &hal.FragmentState{
					Module:     module,
					EntryPoint: "fs_main",
					Targets: []gputypes.ColorTargetState{
						{
							Format:    sp.format,
							Blend:     &blend,
							WriteMask: gputypes.ColorWriteMaskAll,
						},
					},
				},
				Multisample: gputypes.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
				Primitive: gputypes.PrimitiveState{
					Topology: gputypes.PrimitiveTopologyTriangleList,
					CullMode: gputypes.CullModeNone,
				},
			})
			if err != nil {
				return fmt.Errorf("create %s pipeline: %w", label, err)
			}
			sp.pipelines[p][alphaIndex(alphaTest)] = pipeline
		}
	}
	return nil
}

// Pipeline returns the render pipeline for p. It fails with
// ErrUnknownProgram for an invalid p and ErrDestroyed after Destroy.
func (sp *SpritePipelines) Pipeline(p Program, alphaTest bool) (hal.RenderPipeline, error) {
	if !p.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProgram, int(p))
	}
	pipeline := sp.pipelines[p][alphaIndex(alphaTest)]
	if pipeline == nil {
		return nil, ErrDestroyed
	}
	return pipeline, nil
}

// BindGroupLayout returns the group(0) layout shared by all pipelines.
func (sp *SpritePipelines) BindGroupLayout() hal.BindGroupLayout {
	return sp.bindLayout
}

// Format returns the color target format the pipelines were built for.
func (sp *SpritePipelines) Format() gputypes.TextureFormat {
	return sp.format
}

// Destroy releases all pipeline resources in reverse creation order.
// Safe to call more than once and on partially created pipelines.
func (sp *SpritePipelines) Destroy() {
	if sp.device == nil {
		return
	}
	for p := range sp.pipelines {
		for i := range sp.pipelines[p] {
			if sp.pipelines[p][i] != nil {
				sp.device.DestroyRenderPipeline(sp.pipelines[p][i])
				sp.pipelines[p][i] = nil
			}
			if sp.modules[p][i] != nil {
				sp.device.DestroyShaderModule(sp.modules[p][i])
				sp.modules[p][i] = nil
			}
		}
	}
	if sp.pipeLayout != nil {
		sp.device.DestroyPipelineLayout(sp.pipeLayout)
		sp.pipeLayout = nil
	}
	if sp.bindLayout != nil {
		sp.device.DestroyBindGroupLayout(sp.bindLayout)
		sp.bindLayout = nil
	}
}

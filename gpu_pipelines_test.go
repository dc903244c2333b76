//go:build !nogpu

package display2d

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"
)

func TestGPUPipelines(t *testing.T) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	defer instance.Destroy()

	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer openDev.Device.Destroy()

	gp, err := NewGPUPipelines(openDev.Device, gputypes.TextureFormatBGRA8Unorm)
	if err != nil {
		t.Fatalf("NewGPUPipelines: %v", err)
	}
	if gp.BindGroupLayout() == nil {
		t.Error("bind group layout is nil")
	}
	for _, v := range []Variant{VariantFSAA, VariantNormal, VariantFullbright} {
		for _, alphaTest := range []bool{false, true} {
			p, err := gp.Pipeline(NewPixelShader(v, alphaTest))
			if err != nil || p == nil {
				t.Errorf("Pipeline(%s, alphaTest=%v) = %v, %v", v, alphaTest, p, err)
			}
		}
	}

	gp.Destroy()
	gp.Destroy()
	if _, err := gp.Pipeline(Normal[AlphaTestOff]{}); !errors.Is(err, ErrPipelinesDestroyed) {
		t.Errorf("Pipeline after Destroy error = %v, want ErrPipelinesDestroyed", err)
	}
}

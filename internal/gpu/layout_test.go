package gpu

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestVertexBufferLayouts(t *testing.T) {
	layouts := VertexBufferLayouts()
	if len(layouts) != 1 {
		t.Fatalf("len(layouts) = %d, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != VertexStride || VertexStride != 36 {
		t.Errorf("ArrayStride = %d, want 36", l.ArrayStride)
	}

	want := []struct {
		format   gputypes.VertexFormat
		offset   int
		location int
	}{
		{gputypes.VertexFormatFloat32x3, 0, 0},
		{gputypes.VertexFormatFloat32x4, 12, 1},
		{gputypes.VertexFormatFloat32x2, 28, 2},
	}
	if len(l.Attributes) != len(want) {
		t.Fatalf("len(Attributes) = %d, want %d", len(l.Attributes), len(want))
	}
	for i, w := range want {
		a := l.Attributes[i]
		if a.Format != w.format || int(a.Offset) != w.offset || int(a.ShaderLocation) != w.location {
			t.Errorf("attribute %d = %+v, want %+v", i, a, w)
		}
	}
}

func TestBindGroupLayoutEntries(t *testing.T) {
	entries := BindGroupLayoutEntries()
	if len(entries) != 4 {
		t.Fatalf("len(entries) = %d, want 4", len(entries))
	}
	for i, e := range entries {
		if int(e.Binding) != i {
			t.Errorf("entry %d has binding %d", i, e.Binding)
		}
	}
	if entries[BindingUniforms].Buffer == nil || entries[BindingProjection].Buffer == nil {
		t.Error("uniform bindings must be buffers")
	}
	if entries[BindingTexture].Texture == nil {
		t.Error("texture binding missing texture layout")
	}
	if entries[BindingSampler].Sampler == nil {
		t.Error("sampler binding missing sampler layout")
	}
	if entries[BindingProjection].Visibility != gputypes.ShaderStageVertex {
		t.Error("projection must be visible to the vertex stage")
	}
}

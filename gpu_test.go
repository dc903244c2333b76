package display2d

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPackVertices(t *testing.T) {
	vs := []Vertex{
		{Position: mgl32.Vec3{1, 2, 3}, Color: RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}, UV: mgl32.Vec2{0.125, 0.875}},
		{Position: mgl32.Vec3{-4, 5, 0}, Color: White, UV: mgl32.Vec2{1, 0}},
	}
	b := PackVertices(vs)
	if len(b) != 2*VertexStride {
		t.Fatalf("len = %d, want %d", len(b), 2*VertexStride)
	}

	read := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
	}
	want := []float32{1, 2, 3, 0.25, 0.5, 0.75, 1, 0.125, 0.875, -4, 5, 0, 1, 1, 1, 1, 1, 0}
	for i, w := range want {
		if got := read(i * 4); got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}

	if len(PackVertices(nil)) != 0 {
		t.Error("PackVertices(nil) should be empty")
	}
}

func TestPackProjection(t *testing.T) {
	m := Ortho2D(640, 480)
	b := PackProjection(m)
	if len(b) != 64 {
		t.Fatalf("len = %d, want 64", len(b))
	}
	for i := range 16 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
		if got != m[i] {
			t.Errorf("element %d = %v, want %v (column-major)", i, got, m[i])
		}
	}
}

func TestShaderSource(t *testing.T) {
	for _, v := range []Variant{VariantFSAA, VariantNormal, VariantFullbright} {
		for _, alphaTest := range []bool{false, true} {
			src := ShaderSource(v, alphaTest)
			if !strings.Contains(src, "fn vs_main") || !strings.Contains(src, "fn fs_main") {
				t.Errorf("%s: missing entry points", v)
			}
			if got := strings.Contains(src, "discard"); got != alphaTest {
				t.Errorf("%s alphaTest=%v: discard present = %v", v, alphaTest, got)
			}
		}
	}

	if ShaderSource(Variant(42), false) != ShaderSource(VariantNormal, false) {
		t.Error("unknown variant should return the Normal program")
	}
	if strings.Contains(ShaderSource(VariantFullbright, false), "desaturate(c.rgb)") {
		t.Error("Fullbright program should not desaturate")
	}
	if !strings.Contains(ShaderSource(VariantNormal, false), "desaturate(c.rgb)") {
		t.Error("Normal program should desaturate")
	}
}

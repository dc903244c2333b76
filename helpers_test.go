package display2d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// solid returns a sampler that yields c everywhere.
func solid(c RGBA) Sampler {
	return SamplerFunc(func(mgl32.Vec2) RGBA { return c })
}

func near32(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func colorNear(a, b RGBA, eps float32) bool {
	return near32(a.R, b.R, eps) && near32(a.G, b.G, eps) &&
		near32(a.B, b.B, eps) && near32(a.A, b.A, eps)
}

func assertColor(t *testing.T, name string, got, want RGBA, eps float32) {
	t.Helper()
	if !colorNear(got, want, eps) {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

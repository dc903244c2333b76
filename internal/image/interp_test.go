package image

import (
	"math"
	"testing"

	"github.com/gogpu/display2d/internal/color"
)

func newGradient(t *testing.T) *ImageBuf {
	t.Helper()
	img, err := NewImageBuf(4, 4)
	if err != nil {
		t.Fatalf("NewImageBuf failed: %v", err)
	}
	for y := range 4 {
		for x := range 4 {
			_ = img.SetRGBA(x, y, byte(x*64), byte(y*64), 128, 255)
		}
	}
	return img
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestSampleNearest(t *testing.T) {
	img := newGradient(t)
	tests := []struct {
		name         string
		u, v         float32
		wantX, wantY int
	}{
		{"top-left corner", 0, 0, 0, 0},
		{"top-right corner", 1, 0, 3, 0},
		{"texel (1,1)", 0.375, 0.375, 1, 1},
		{"texel (2,2)", 0.625, 0.625, 2, 2},
		{"bottom-right corner", 1, 1, 3, 3},
		{"clamped negative", -0.5, -2, 0, 0},
		{"clamped beyond", 1.7, 3, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleNearest(img, tt.u, tt.v)
			want := img.At(tt.wantX, tt.wantY)
			if got != want {
				t.Errorf("SampleNearest(%v, %v) = %v, want %v", tt.u, tt.v, got, want)
			}
		})
	}
}

func TestSampleBilinear_TexelCenters(t *testing.T) {
	img := newGradient(t)
	for y := range 4 {
		for x := range 4 {
			u := (float32(x) + 0.5) / 4
			v := (float32(y) + 0.5) / 4
			got := SampleBilinear(img, u, v)
			want := img.At(x, y)
			if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) || !near(got.A, want.A) {
				t.Errorf("texel center (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSampleBilinear_Midpoint(t *testing.T) {
	img, _ := NewImageBuf(2, 1)
	_ = img.SetRGBA(0, 0, 0, 0, 0, 0)
	_ = img.SetRGBA(1, 0, 255, 255, 255, 255)

	got := SampleBilinear(img, 0.5, 0.5)
	want := color.ColorF32{R: 0.5, G: 0.5, B: 0.5, A: 0.5}
	if !near(got.R, want.R) || !near(got.A, want.A) {
		t.Errorf("midpoint = %v, want %v", got, want)
	}
}

func TestSampleDispatch(t *testing.T) {
	img := newGradient(t)
	if Sample(img, 0.3, 0.3, InterpNearest) != SampleNearest(img, 0.3, 0.3) {
		t.Error("Sample(InterpNearest) does not match SampleNearest")
	}
	if Sample(img, 0.3, 0.3, InterpBilinear) != SampleBilinear(img, 0.3, 0.3) {
		t.Error("Sample(InterpBilinear) does not match SampleBilinear")
	}
	if InterpNearest.String() != "Nearest" || InterpBilinear.String() != "Bilinear" {
		t.Error("unexpected InterpolationMode names")
	}
}

func TestSampleNaN(t *testing.T) {
	img := newGradient(t)
	nan := float32(math.NaN())
	if got := SampleNearest(img, nan, nan); got != img.At(0, 0) {
		t.Errorf("NaN coordinates = %v, want texel (0,0)", got)
	}
}

package display2d

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// checker2x2 returns a 2x2 image: red, green / blue, transparent.
func checker2x2() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	return img
}

func TestTexture_SampleNearest(t *testing.T) {
	tex, err := NewTexture(checker2x2(), FilterNearest)
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}
	if tex.Width() != 2 || tex.Height() != 2 || tex.Filter() != FilterNearest {
		t.Fatalf("texture = %dx%d %v", tex.Width(), tex.Height(), tex.Filter())
	}
	tests := []struct {
		uv   mgl32.Vec2
		want RGBA
	}{
		{mgl32.Vec2{0.25, 0.25}, RGBA{R: 1, A: 1}},
		{mgl32.Vec2{0.75, 0.25}, RGBA{G: 1, A: 1}},
		{mgl32.Vec2{0.25, 0.75}, RGBA{B: 1, A: 1}},
		{mgl32.Vec2{0.75, 0.75}, Transparent},
		{mgl32.Vec2{-1, -1}, RGBA{R: 1, A: 1}},
		{mgl32.Vec2{2, 0}, RGBA{G: 1, A: 1}},
	}
	for _, tt := range tests {
		if got := tex.Sample(tt.uv); got != tt.want {
			t.Errorf("Sample(%v) = %+v, want %+v", tt.uv, got, tt.want)
		}
	}
}

func TestTexture_SampleBilinear(t *testing.T) {
	tex, _ := NewTexture(checker2x2(), FilterBilinear)
	got := tex.Sample(mgl32.Vec2{0.5, 0.25})
	assertColor(t, "bilinear midpoint", got, RGBA{R: 0.5, G: 0.5, A: 1}, 1e-6)
	if FilterBilinear.String() != "Bilinear" || FilterNearest.String() != "Nearest" {
		t.Error("unexpected filter names")
	}
}

func TestTexture_TexelSize(t *testing.T) {
	tex, _ := NewTexture(image.NewNRGBA(image.Rect(0, 0, 4, 8)), FilterNearest)
	w, h := tex.TexelSize()
	if w != 0.25 || h != 0.125 {
		t.Errorf("TexelSize = (%v, %v), want (0.25, 0.125)", w, h)
	}
	if s := NewRenderSettings(tex.Width(), tex.Height(), 1, 1); s.TexelWidth != w || s.TexelHeight != h {
		t.Errorf("NewRenderSettings disagrees with TexelSize: %+v", s)
	}
}

func TestTexture_Errors(t *testing.T) {
	if _, err := NewTexture(nil, FilterNearest); !errors.Is(err, ErrNilImage) {
		t.Errorf("NewTexture(nil) error = %v", err)
	}
	if _, err := NewTexture(image.NewNRGBA(image.Rect(0, 0, 0, 0)), FilterNearest); err == nil {
		t.Error("expected error for empty image")
	}
	if _, err := LoadTexture(filepath.Join(t.TempDir(), "missing.png"), FilterNearest); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, checker2x2()); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	tex, err := LoadTexture(path, FilterNearest)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if got := tex.Sample(mgl32.Vec2{0.75, 0.25}); got != (RGBA{G: 1, A: 1}) {
		t.Errorf("loaded texel = %+v", got)
	}
	if px := tex.Pixels(); len(px) != 16 || px[4+1] != 255 {
		t.Errorf("Pixels = %v", px)
	}
}

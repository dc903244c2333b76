package display2d

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestNewRenderSettings(t *testing.T) {
	s := NewRenderSettings(4, 8, 0.75, 0.5)
	want := RenderSettings{TexelWidth: 0.25, TexelHeight: 0.125, FSAABlendFactor: 0.75, Transparency: 0.5}
	if s != want {
		t.Errorf("NewRenderSettings = %+v, want %+v", s, want)
	}
	if v := s.Vec4(); v[0] != 0.25 || v[1] != 0.125 || v[2] != 0.75 || v[3] != 0.5 {
		t.Errorf("Vec4 = %v", v)
	}

	z := NewRenderSettings(0, -3, 1, 1)
	if z.TexelWidth != 0 || z.TexelHeight != 0 {
		t.Errorf("non-positive sizes should give zero offsets, got %+v", z)
	}
}

func TestDefaultUniforms(t *testing.T) {
	u := DefaultUniforms(32, 16)
	if u.Settings.FSAABlendFactor != 1 || u.Settings.Transparency != 1 {
		t.Errorf("settings = %+v", u.Settings)
	}
	if u.Desaturation != 0 || u.TextureFactor != White {
		t.Errorf("uniforms = %+v", u)
	}
	if err := u.Check(); err != nil {
		t.Errorf("default uniforms failed Check: %v", err)
	}
}

func TestUniformsCheck(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name    string
		mutate  func(*Uniforms)
		wantErr []string
	}{
		{"negative texel", func(u *Uniforms) { u.Settings.TexelWidth = -0.1 }, []string{"texel width"}},
		{"transparency above one", func(u *Uniforms) { u.Settings.Transparency = 1.5 }, []string{"transparency"}},
		{"desaturation NaN", func(u *Uniforms) { u.Desaturation = nan }, []string{"desaturation"}},
		{"several", func(u *Uniforms) {
			u.Settings.FSAABlendFactor = -1
			u.Settings.TexelHeight = -1
		}, []string{"fsaa blend factor", "texel height"}},
		{"tint above one is fine", func(u *Uniforms) { u.TextureFactor = RGBA{R: 2, G: 2, B: 2, A: 1} }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := DefaultUniforms(8, 8)
			tt.mutate(&u)
			err := u.Check()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("Check() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrUniformRange) {
				t.Fatalf("Check() = %v, want ErrUniformRange", err)
			}
			for _, s := range tt.wantErr {
				if !strings.Contains(err.Error(), s) {
					t.Errorf("error %q does not mention %q", err, s)
				}
			}
		})
	}
}

func TestUniformsBytes(t *testing.T) {
	u := Uniforms{
		Settings:      RenderSettings{TexelWidth: 0.25, TexelHeight: 0.5, FSAABlendFactor: 0.75, Transparency: 1},
		Desaturation:  0.125,
		TextureFactor: RGBA{R: 2, G: 3, B: 4, A: 5},
	}
	b := u.Bytes()
	if len(b) != UniformBlockSize {
		t.Fatalf("len(Bytes) = %d, want %d", len(b), UniformBlockSize)
	}
	want := []float32{0.25, 0.5, 0.75, 1, 2, 3, 4, 5, 0.125, 0, 0, 0}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
		if got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}

// Package scenefile reads YAML descriptions of sprite compositing jobs.
//
// A scene names a canvas, a clear color and an ordered list of batches.
// Each batch binds one texture and one pixel program and draws a list of
// quads:
//
//	canvas: {width: 320, height: 200}
//	clear: "#202020"
//	batches:
//	  - texture: sprites/hero.png
//	    filter: nearest
//	    variant: fsaa
//	    alpha_test: true
//	    desaturation: 0.25
//	    quads:
//	      - {x: 10, y: 20, w: 64, h: 64, color: "#ffffffc0"}
//
// Texture paths are relative to the scene file.
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/display2d"
)

// ErrInvalidScene is wrapped by every validation error.
var ErrInvalidScene = errors.New("scenefile: invalid scene")

// Scene is a decoded scene file.
type Scene struct {
	Canvas  Canvas  `yaml:"canvas"`
	Clear   string  `yaml:"clear,omitempty"`
	Blend   string  `yaml:"blend,omitempty"`
	Batches []Batch `yaml:"batches"`

	// Dir is the directory texture paths are resolved against. Load sets
	// it to the scene file's directory.
	Dir string `yaml:"-"`
}

// Canvas is the framebuffer size in pixels.
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Flags mirror display2d.RenderFlags for scenes that select the program
// by render mode instead of by name.
type Flags struct {
	Antialias  bool `yaml:"antialias,omitempty"`
	Fullbright bool `yaml:"fullbright,omitempty"`
}

// Batch is one draw call.
type Batch struct {
	Texture string `yaml:"texture"`
	Filter  string `yaml:"filter,omitempty"`

	Variant   string `yaml:"variant,omitempty"`
	Flags     *Flags `yaml:"flags,omitempty"`
	AlphaTest bool   `yaml:"alpha_test,omitempty"`

	Desaturation  float32  `yaml:"desaturation,omitempty"`
	Transparency  *float32 `yaml:"transparency,omitempty"`
	FSAABlend     *float32 `yaml:"fsaa_blend,omitempty"`
	TextureFactor string   `yaml:"texture_factor,omitempty"`

	Quads []Quad `yaml:"quads"`
}

// Quad is one textured rectangle in canvas pixels.
type Quad struct {
	X     float32 `yaml:"x"`
	Y     float32 `yaml:"y"`
	W     float32 `yaml:"w"`
	H     float32 `yaml:"h"`
	Color string  `yaml:"color,omitempty"`

	// UV is the normalized source rectangle [u, v, w, h]; UVPixels is the
	// same in texels. At most one may be set; the default is the whole
	// texture.
	UV       []float32 `yaml:"uv,omitempty,flow"`
	UVPixels []float32 `yaml:"uv_px,omitempty,flow"`
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %s: %w", path, err)
	}
	sc.Dir = filepath.Dir(path)
	return sc, nil
}

// Parse decodes and validates a scene. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scene
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate reports every problem in the scene, joined into one error.
func (s *Scene) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidScene}, args...)...))
	}

	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		fail("canvas %dx%d must be positive", s.Canvas.Width, s.Canvas.Height)
	}
	if s.Clear != "" {
		if _, ok := display2d.ParseHex(s.Clear); !ok {
			fail("clear color %q", s.Clear)
		}
	}
	if _, err := parseBlend(s.Blend); err != nil {
		fail("%v", err)
	}

	for i := range s.Batches {
		b := &s.Batches[i]
		at := fmt.Sprintf("batch %d", i)

		if b.Texture == "" {
			fail("%s: texture is required", at)
		}
		if _, err := parseFilter(b.Filter); err != nil {
			fail("%s: %v", at, err)
		}
		if b.Variant != "" && b.Flags != nil {
			fail("%s: variant and flags are mutually exclusive", at)
		}
		if _, err := b.variant(); err != nil {
			fail("%s: %v", at, err)
		}
		if b.TextureFactor != "" {
			if _, ok := display2d.ParseHex(b.TextureFactor); !ok {
				fail("%s: texture_factor %q", at, b.TextureFactor)
			}
		}
		if len(b.Quads) == 0 {
			fail("%s: no quads", at)
		}

		for j, q := range b.Quads {
			qat := fmt.Sprintf("%s quad %d", at, j)
			if q.W < 0 || q.H < 0 {
				fail("%s: negative size %vx%v", qat, q.W, q.H)
			}
			if q.Color != "" {
				if _, ok := display2d.ParseHex(q.Color); !ok {
					fail("%s: color %q", qat, q.Color)
				}
			}
			if q.UV != nil && q.UVPixels != nil {
				fail("%s: uv and uv_px are mutually exclusive", qat)
			}
			if q.UV != nil && len(q.UV) != 4 {
				fail("%s: uv needs 4 values, got %d", qat, len(q.UV))
			}
			if q.UVPixels != nil && len(q.UVPixels) != 4 {
				fail("%s: uv_px needs 4 values, got %d", qat, len(q.UVPixels))
			}
		}
	}
	return errors.Join(errs...)
}

// variant resolves the batch's pixel program selection.
func (b *Batch) variant() (display2d.Variant, error) {
	if b.Flags != nil {
		return display2d.RenderFlags{
			Antialias:  b.Flags.Antialias,
			Fullbright: b.Flags.Fullbright,
		}.Variant(), nil
	}
	switch strings.ToLower(b.Variant) {
	case "", "normal":
		return display2d.VariantNormal, nil
	case "fsaa":
		return display2d.VariantFSAA, nil
	case "fullbright":
		return display2d.VariantFullbright, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", b.Variant)
	}
}

func parseFilter(s string) (display2d.Filter, error) {
	switch strings.ToLower(s) {
	case "", "nearest":
		return display2d.FilterNearest, nil
	case "bilinear", "linear":
		return display2d.FilterBilinear, nil
	default:
		return 0, fmt.Errorf("unknown filter %q", s)
	}
}

func parseBlend(s string) (display2d.BlendMode, error) {
	switch strings.ToLower(s) {
	case "", "source-over", "over":
		return display2d.BlendSourceOver, nil
	case "copy", "source-copy":
		return display2d.BlendCopy, nil
	default:
		return 0, fmt.Errorf("unknown blend mode %q", s)
	}
}

// colorOr parses hex, or returns def for an empty string. hex is already
// validated.
func colorOr(hex string, def display2d.RGBA) display2d.RGBA {
	if hex == "" {
		return def
	}
	return display2d.Hex(hex)
}

func floatOr(v *float32, def float32) float32 {
	if v == nil {
		return def
	}
	return *v
}

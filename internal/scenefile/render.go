package scenefile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gogpu/display2d"
	"github.com/gogpu/display2d/internal/cache"
)

// TextureLoader loads the texture named by a batch. name is the path as it
// appears in the scene file.
type TextureLoader func(name string, filter display2d.Filter) (*display2d.Texture, error)

// FileLoader returns a TextureLoader reading image files relative to dir.
func FileLoader(dir string) TextureLoader {
	return func(name string, filter display2d.Filter) (*display2d.Texture, error) {
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		return display2d.LoadTexture(name, filter)
	}
}

type textureKey struct {
	name   string
	filter display2d.Filter
}

// CachedLoader wraps load so that each (name, filter) pair is decoded once
// while it stays among the limit most recently used textures. A limit of 0
// keeps every texture.
func CachedLoader(load TextureLoader, limit int) TextureLoader {
	textures := cache.New[textureKey, *display2d.Texture](limit)
	return func(name string, filter display2d.Filter) (*display2d.Texture, error) {
		return textures.GetOrLoad(textureKey{name, filter}, func() (*display2d.Texture, error) {
			return load(name, filter)
		})
	}
}

// ToBatches converts the scene into renderer batches in file order. Each
// texture is loaded once per filter through CachedLoader. If load is nil,
// FileLoader(s.Dir) is used.
func (s *Scene) ToBatches(load TextureLoader) ([]display2d.Batch, error) {
	if load == nil {
		load = FileLoader(s.Dir)
	}
	load = CachedLoader(load, 0)
	projection := display2d.Ortho2D(float32(s.Canvas.Width), float32(s.Canvas.Height))

	out := make([]display2d.Batch, 0, len(s.Batches))
	for i := range s.Batches {
		b := &s.Batches[i]

		filter, err := parseFilter(b.Filter)
		if err != nil {
			return nil, fmt.Errorf("scenefile: batch %d: %w", i, err)
		}
		variant, err := b.variant()
		if err != nil {
			return nil, fmt.Errorf("scenefile: batch %d: %w", i, err)
		}

		tex, err := load(b.Texture, filter)
		if err != nil {
			return nil, fmt.Errorf("scenefile: batch %d: texture %q: %w", i, b.Texture, err)
		}

		u := display2d.Uniforms{
			Settings: display2d.NewRenderSettings(tex.Width(), tex.Height(),
				floatOr(b.FSAABlend, 1), floatOr(b.Transparency, 1)),
			Desaturation:  b.Desaturation,
			TextureFactor: colorOr(b.TextureFactor, display2d.White),
		}

		vertices := make([]display2d.Vertex, 0, 6*len(b.Quads))
		for _, q := range b.Quads {
			vertices = append(vertices, display2d.Quad(
				display2d.Rect{X: q.X, Y: q.Y, W: q.W, H: q.H},
				q.uvRect(tex),
				colorOr(q.Color, display2d.White),
			)...)
		}

		out = append(out, display2d.Batch{
			Shader:     display2d.NewPixelShader(variant, b.AlphaTest),
			Uniforms:   u,
			Texture:    tex,
			Projection: projection,
			Vertices:   vertices,
		})
	}
	return out, nil
}

func (q Quad) uvRect(tex *display2d.Texture) display2d.Rect {
	switch {
	case len(q.UV) == 4:
		return display2d.Rect{X: q.UV[0], Y: q.UV[1], W: q.UV[2], H: q.UV[3]}
	case len(q.UVPixels) == 4:
		px := display2d.Rect{X: q.UVPixels[0], Y: q.UVPixels[1], W: q.UVPixels[2], H: q.UVPixels[3]}
		return display2d.TexelRect(px, tex.Width(), tex.Height())
	default:
		return display2d.FullUV
	}
}

// Render draws the scene into a new renderer. The caller owns the returned
// renderer and must Close it. opts are applied after the scene's own clear
// color and blend mode.
func (s *Scene) Render(ctx context.Context, load TextureLoader, opts ...display2d.Option) (*display2d.Renderer, display2d.Stats, error) {
	var total display2d.Stats

	batches, err := s.ToBatches(load)
	if err != nil {
		return nil, total, err
	}
	mode, err := parseBlend(s.Blend)
	if err != nil {
		return nil, total, fmt.Errorf("scenefile: %w", err)
	}

	base := []display2d.Option{
		display2d.WithClearColor(colorOr(s.Clear, display2d.Transparent)),
		display2d.WithBlendMode(mode),
	}
	r, err := display2d.NewRenderer(s.Canvas.Width, s.Canvas.Height, append(base, opts...)...)
	if err != nil {
		return nil, total, err
	}

	for i, b := range batches {
		st, err := r.Draw(ctx, b)
		total.Triangles += st.Triangles
		total.Fragments += st.Fragments
		total.Discarded += st.Discarded
		if err != nil {
			r.Close()
			return nil, total, fmt.Errorf("scenefile: batch %d: %w", i, err)
		}
	}
	return r, total, nil
}

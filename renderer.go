package display2d

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	intcolor "github.com/gogpu/display2d/internal/color"
	intImage "github.com/gogpu/display2d/internal/image"
	"github.com/gogpu/display2d/internal/parallel"
)

// Batch precondition errors.
var (
	// ErrNoShader is returned when a batch has no pixel program.
	ErrNoShader = errors.New("display2d: batch has no shader")

	// ErrNoTexture is returned when a batch has no bound texture.
	ErrNoTexture = errors.New("display2d: batch has no texture")

	// ErrVertexCount is returned when the vertex count is not a multiple
	// of three.
	ErrVertexCount = errors.New("display2d: vertex count is not a multiple of 3")
)

// Batch is one draw: a triangle list rendered with a single pixel program,
// uniform block and texture.
type Batch struct {
	Shader     PixelShader
	Uniforms   Uniforms
	Texture    Sampler
	Projection mgl32.Mat4
	Vertices   []Vertex
}

// Stats describes the work done by one Draw.
type Stats struct {
	// Triangles is the number of triangles that reached rasterization.
	Triangles int
	// Fragments is the number of covered pixels that were shaded.
	Fragments int
	// Discarded is the number of fragments rejected by the alpha test.
	Discarded int
}

// Renderer is a tile-parallel software implementation of the sprite
// pipeline drawing into an RGBA8 framebuffer.
//
// Draw calls are serialized; within a Draw tiles are shaded concurrently
// and each tile walks triangles in submission order, so the output does not
// depend on the worker count.
type Renderer struct {
	mu sync.Mutex

	width, height int
	fb            *intImage.ImageBuf
	pool          *parallel.WorkerPool
	tiles         []parallel.Tile
	opts          rendererOptions
}

// NewRenderer creates a width x height renderer cleared to the clear color.
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fb, err := intImage.NewImageBuf(width, height)
	if err != nil {
		return nil, fmt.Errorf("display2d: new renderer %dx%d: %w", width, height, err)
	}

	r := &Renderer{
		width:  width,
		height: height,
		fb:     fb,
		pool:   parallel.NewWorkerPool(o.workers),
		tiles:  parallel.Split(width, height),
		opts:   o,
	}
	r.Clear()

	Logger().Debug("display2d: renderer created",
		"width", width, "height", height,
		"workers", r.pool.Workers(), "tiles", len(r.tiles),
		"blend", o.blendMode.String())
	return r, nil
}

// Width returns the framebuffer width in pixels.
func (r *Renderer) Width() int { return r.width }

// Height returns the framebuffer height in pixels.
func (r *Renderer) Height() int { return r.height }

// Draw renders one batch into the framebuffer.
//
// The uniforms are copied on entry and stay fixed for the whole batch.
// Values outside their conventional range are logged at Warn and rendered
// as given. If ctx is cancelled, tiles that have not started are skipped,
// the framebuffer keeps the tiles already shaded and ctx.Err() is returned.
func (r *Renderer) Draw(ctx context.Context, b Batch) (Stats, error) {
	switch {
	case b.Shader == nil:
		return Stats{}, ErrNoShader
	case b.Texture == nil:
		return Stats{}, ErrNoTexture
	case len(b.Vertices)%3 != 0:
		return Stats{}, fmt.Errorf("%w: got %d", ErrVertexCount, len(b.Vertices))
	}
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	u := b.Uniforms
	if err := u.Check(); err != nil {
		Logger().Warn("display2d: uniforms outside conventional range",
			"variant", b.Shader.Variant().String(), "err", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	job := &drawJob{
		shader:   b.Shader,
		uniforms: &u,
		texture:  b.Texture,
		tris:     setupTriangles(r.width, r.height, b.Projection, b.Vertices),
		mode:     r.opts.blendMode.mode(),
	}
	stats := Stats{Triangles: len(job.tris)}
	if len(job.tris) == 0 {
		return stats, nil
	}

	perTile := make([]tileStats, len(r.tiles))
	work := make([]func(), len(r.tiles))
	for i, tile := range r.tiles {
		work[i] = func() {
			perTile[i] = r.rasterTile(tile, job)
		}
	}
	err := r.pool.ExecuteAll(ctx, work)

	for _, st := range perTile {
		stats.Fragments += st.fragments
		stats.Discarded += st.discarded
	}

	Logger().Debug("display2d: batch drawn",
		"variant", b.Shader.Variant().String(),
		"alpha_test", b.Shader.AlphaTest(),
		"triangles", stats.Triangles,
		"fragments", stats.Fragments,
		"discarded", stats.Discarded)

	if err != nil {
		return stats, fmt.Errorf("display2d: draw aborted: %w", err)
	}
	return stats, nil
}

// Clear fills the framebuffer with the clear color.
func (r *Renderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := intcolor.F32ToU8(r.opts.clearColor.colorF32())
	r.fb.Fill(c.R, c.G, c.B, c.A)
}

// At returns the framebuffer color at (x, y), or Transparent outside the
// framebuffer.
func (r *Renderer) At(x, y int) RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return Transparent
	}
	return fromColorF32(r.fb.At(x, y))
}

// Image returns a copy of the framebuffer.
func (r *Renderer) Image() *image.NRGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fb.ToStdImage()
}

// SavePNG writes the framebuffer to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fb.SavePNG(path); err != nil {
		return fmt.Errorf("display2d: save %q: %w", path, err)
	}
	return nil
}

// Close stops the tile workers. A Draw in progress finishes first. Draw
// keeps working after Close, shading tiles on the calling goroutine.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pool.Close()
}

package display2d

import "github.com/gogpu/display2d/internal/blend"

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default: GOMAXPROCS workers, source-over blending, transparent clear
//	r, _ := display2d.NewRenderer(320, 200)
//
//	// Single-threaded, opaque black background
//	r, _ := display2d.NewRenderer(320, 200,
//	    display2d.WithWorkers(1),
//	    display2d.WithClearColor(display2d.Black))
type Option func(*rendererOptions)

type rendererOptions struct {
	workers    int
	blendMode  BlendMode
	clearColor RGBA
}

func defaultOptions() rendererOptions {
	return rendererOptions{
		workers:    0, // GOMAXPROCS
		blendMode:  BlendSourceOver,
		clearColor: Transparent,
	}
}

// WithWorkers sets the number of tile workers. Zero or negative uses
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithBlendMode sets how shaded fragments are written to the framebuffer.
func WithBlendMode(m BlendMode) Option {
	return func(o *rendererOptions) {
		o.blendMode = m
	}
}

// WithClearColor sets the color the framebuffer starts with and Clear
// restores.
func WithClearColor(c RGBA) Option {
	return func(o *rendererOptions) {
		o.clearColor = c
	}
}

// BlendMode selects the framebuffer write operation.
type BlendMode int

const (
	// BlendSourceOver composites fragments over the framebuffer using
	// their alpha. This is the default.
	BlendSourceOver BlendMode = iota
	// BlendCopy replaces framebuffer pixels with the fragment color.
	BlendCopy
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	return m.mode().String()
}

func (m BlendMode) mode() blend.Mode {
	if m == BlendCopy {
		return blend.ModeSourceCopy
	}
	return blend.ModeSourceOver
}

package display2d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/display2d/internal/blend"
	"github.com/gogpu/display2d/internal/parallel"
)

// subpixelSteps is the resolution of the sub-pixel grid screen positions
// are snapped to.
const subpixelSteps = 256

// screenVertex is a vertex after the viewport transform, snapped to the
// sub-pixel grid. Color and UV are pre-divided by w for perspective-correct
// interpolation.
type screenVertex struct {
	x, y  float64
	invW  float32
	color mgl32.Vec4
	uv    mgl32.Vec2
}

// triangle is a set-up triangle with positive area and its pixel bounding
// box, half open and clipped to the viewport.
type triangle struct {
	v       [3]screenVertex
	area    float64
	topLeft [3]bool // per edge, opposite vertex i

	minX, minY, maxX, maxY int
}

// setupTriangles runs the vertex stage and maps every triangle of vertices
// onto a width x height viewport. Triangles with zero area, a vertex with
// w <= 0 or no pixels inside the viewport are dropped. Submission order is
// kept.
func setupTriangles(width, height int, projection mgl32.Mat4, vertices []Vertex) []triangle {
	tris := make([]triangle, 0, len(vertices)/3)
	for i := 0; i+2 < len(vertices); i += 3 {
		var t triangle
		ok := true
		for k := range 3 {
			sv, visible := toScreen(width, height, TransformVertex(projection, vertices[i+k]))
			if !visible {
				ok = false
				break
			}
			t.v[k] = sv
		}
		if ok && t.setup(width, height) {
			tris = append(tris, t)
		}
	}
	return tris
}

func toScreen(width, height int, out VertexOutput) (screenVertex, bool) {
	w := out.Position.W()
	if !(w > 0) || math.IsInf(float64(w), 0) {
		return screenVertex{}, false
	}
	invW := 1 / w
	ndcX := out.Position.X() * invW
	ndcY := out.Position.Y() * invW

	sv := screenVertex{
		x:     snap((float64(ndcX) + 1) * 0.5 * float64(width)),
		y:     snap((1 - float64(ndcY)) * 0.5 * float64(height)),
		invW:  invW,
		color: out.Color.Vec4().Mul(invW),
		uv:    out.UV.Mul(invW),
	}
	if !finite(sv.x) || !finite(sv.y) {
		return screenVertex{}, false
	}
	return sv, true
}

// snap rounds v to the sub-pixel grid, absorbing the float32 error of the
// pixel -> NDC -> pixel round trip. On the grid, edge evaluates exactly for
// any on-screen coordinates, so edges shared by two triangles get exactly
// opposite values.
func snap(v float64) float64 {
	return math.Round(v*subpixelSteps) / subpixelSteps
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// edge is the signed doubled area of (a, b, p). It is positive when p lies
// to the right of a→b in y-down screen space.
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// isTopLeft reports whether a→b is a top or left edge of a triangle with
// positive area.
func isTopLeft(a, b screenVertex) bool {
	return (a.y == b.y && b.x > a.x) || b.y < a.y
}

func (t *triangle) setup(width, height int) bool {
	v := &t.v
	t.area = edge(v[0].x, v[0].y, v[1].x, v[1].y, v[2].x, v[2].y)
	if t.area == 0 || !finite(t.area) {
		return false
	}
	if t.area < 0 {
		v[1], v[2] = v[2], v[1]
		t.area = -t.area
	}

	t.topLeft[0] = isTopLeft(v[1], v[2])
	t.topLeft[1] = isTopLeft(v[2], v[0])
	t.topLeft[2] = isTopLeft(v[0], v[1])

	minX := min(v[0].x, v[1].x, v[2].x)
	maxX := max(v[0].x, v[1].x, v[2].x)
	minY := min(v[0].y, v[1].y, v[2].y)
	maxY := max(v[0].y, v[1].y, v[2].y)

	t.minX = clampInt(int(math.Floor(minX)), 0, width)
	t.maxX = clampInt(int(math.Ceil(maxX)), 0, width)
	t.minY = clampInt(int(math.Floor(minY)), 0, height)
	t.maxY = clampInt(int(math.Ceil(maxY)), 0, height)
	return t.minX < t.maxX && t.minY < t.maxY
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// covers reports whether the pixel center (px, py) is inside the triangle
// under the top-left fill rule, and returns its barycentric weights of
// vertices 1 and 2.
func (t *triangle) covers(px, py float64) (l1, l2 float32, ok bool) {
	v := &t.v
	w0 := edge(v[1].x, v[1].y, v[2].x, v[2].y, px, py)
	w1 := edge(v[2].x, v[2].y, v[0].x, v[0].y, px, py)
	w2 := edge(v[0].x, v[0].y, v[1].x, v[1].y, px, py)

	if !inside(w0, t.topLeft[0]) || !inside(w1, t.topLeft[1]) || !inside(w2, t.topLeft[2]) {
		return 0, 0, false
	}
	return float32(w1 / t.area), float32(w2 / t.area), true
}

func inside(w float64, topLeft bool) bool {
	return w > 0 || (w == 0 && topLeft)
}

// fragment interpolates color and UV at barycentric weights (1-l1-l2, l1, l2).
func (t *triangle) fragment(l1, l2 float32) Fragment {
	v := &t.v
	l0 := 1 - l1 - l2

	invW := l0*v[0].invW + l1*v[1].invW + l2*v[2].invW
	w := 1 / invW

	c := v[0].color.Mul(l0).Add(v[1].color.Mul(l1)).Add(v[2].color.Mul(l2)).Mul(w)
	uv := v[0].uv.Mul(l0).Add(v[1].uv.Mul(l1)).Add(v[2].uv.Mul(l2)).Mul(w)

	return Fragment{
		Color: RGBA{R: c[0], G: c[1], B: c[2], A: c[3]},
		UV:    uv,
	}
}

// drawJob is the immutable state of one batch shared by all tile workers.
type drawJob struct {
	shader   PixelShader
	uniforms *Uniforms
	texture  Sampler
	tris     []triangle
	mode     blend.Mode
}

type tileStats struct {
	fragments, discarded int
}

// rasterTile shades every pixel of tile covered by the job's triangles,
// walking triangles in submission order. Tiles are disjoint, so concurrent
// calls for different tiles write disjoint framebuffer pixels.
func (r *Renderer) rasterTile(tile parallel.Tile, job *drawJob) tileStats {
	var st tileStats
	for i := range job.tris {
		t := &job.tris[i]
		if !tile.Overlaps(t.minX, t.minY, t.maxX, t.maxY) {
			continue
		}
		x0, x1 := max(t.minX, tile.X), min(t.maxX, tile.MaxX())
		y0, y1 := max(t.minY, tile.Y), min(t.maxY, tile.MaxY())

		for py := y0; py < y1; py++ {
			cy := float64(py) + 0.5
			for px := x0; px < x1; px++ {
				l1, l2, ok := t.covers(float64(px)+0.5, cy)
				if !ok {
					continue
				}
				st.fragments++

				c, keep := job.shader.Shade(t.fragment(l1, l2), job.uniforms, job.texture)
				if !keep {
					st.discarded++
					continue
				}
				src := c.Clamp().colorF32()
				r.fb.Store(px, py, blend.Blend(src, r.fb.At(px, py), job.mode))
			}
		}
	}
	return st
}

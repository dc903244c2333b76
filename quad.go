package display2d

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned rectangle. In pixel space it describes a
// destination, in texture space a UV window.
type Rect struct {
	X, Y, W, H float32
}

// FullUV covers the whole texture.
var FullUV = Rect{X: 0, Y: 0, W: 1, H: 1}

// Quad returns the two triangles covering dst, mapped to the uv window and
// tinted with c. Both triangles are counter-clockwise as seen on screen and
// in clip space.
func Quad(dst, uv Rect, c RGBA) []Vertex {
	x0, y0 := dst.X, dst.Y
	x1, y1 := dst.X+dst.W, dst.Y+dst.H
	u0, v0 := uv.X, uv.Y
	u1, v1 := uv.X+uv.W, uv.Y+uv.H

	tl := Vertex{Position: mgl32.Vec3{x0, y0, 0}, Color: c, UV: mgl32.Vec2{u0, v0}}
	tr := Vertex{Position: mgl32.Vec3{x1, y0, 0}, Color: c, UV: mgl32.Vec2{u1, v0}}
	bl := Vertex{Position: mgl32.Vec3{x0, y1, 0}, Color: c, UV: mgl32.Vec2{u0, v1}}
	br := Vertex{Position: mgl32.Vec3{x1, y1, 0}, Color: c, UV: mgl32.Vec2{u1, v1}}

	return []Vertex{tl, bl, br, tl, br, tr}
}

// TexelRect returns the UV window of a pixel rectangle inside a texture of
// the given size, for drawing one frame of a sprite sheet.
func TexelRect(px Rect, texWidth, texHeight int) Rect {
	w, h := float32(texWidth), float32(texHeight)
	return Rect{X: px.X / w, Y: px.Y / h, W: px.W / w, H: px.H / h}
}

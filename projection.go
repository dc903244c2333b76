package display2d

import "github.com/go-gl/mathgl/mgl32"

// Ortho2D returns a pixel-space orthographic projection for a width x height
// target: (0,0) maps to the top-left corner, y grows downward and z in
// [-1, 1] is kept.
func Ortho2D(width, height float32) mgl32.Mat4 {
	return mgl32.Ortho(0, width, height, 0, -1, 1)
}

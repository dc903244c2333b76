package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/display2d"
	"github.com/gogpu/display2d/internal/scenefile"
)

const (
	demoSprite = "demo:sprite"
	demoSize   = 16
	demoCell   = 64
)

// demoImage is a diamond cutout with a two-tone fill and a fully
// transparent surround.
func demoImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, demoSize, demoSize))
	c := demoSize / 2
	for y := range demoSize {
		for x := range demoSize {
			d := abs(x-c) + abs(y-c)
			switch {
			case d < c/2:
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 210, B: 40, A: 255})
			case d < c:
				img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 40, B: 60, A: 255})
			}
		}
	}
	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func demoLoader(name string, filter display2d.Filter) (*display2d.Texture, error) {
	if name != demoSprite {
		return nil, fmt.Errorf("demo has no texture %q", name)
	}
	return display2d.NewTexture(demoImage(), filter)
}

// demoScene draws the sprite once per pixel program in the top row and
// with desaturation, fading and alpha test in the bottom row.
func demoScene() *scenefile.Scene {
	half := float32(0.5)
	quad := func(col, row int) scenefile.Quad {
		return scenefile.Quad{
			X: float32(col*demoCell + 8), Y: float32(row*demoCell + 8),
			W: demoCell - 16, H: demoCell - 16,
		}
	}

	return &scenefile.Scene{
		Canvas: scenefile.Canvas{Width: 3 * demoCell, Height: 2 * demoCell},
		Clear:  "#303040",
		Batches: []scenefile.Batch{
			{Texture: demoSprite, Variant: "fsaa", Quads: []scenefile.Quad{quad(0, 0)}},
			{Texture: demoSprite, Variant: "normal", Quads: []scenefile.Quad{quad(1, 0)}},
			{Texture: demoSprite, Variant: "fullbright", TextureFactor: "#80c0ff", Quads: []scenefile.Quad{quad(2, 0)}},
			{Texture: demoSprite, Variant: "fsaa", Desaturation: 1, Quads: []scenefile.Quad{quad(0, 1)}},
			{Texture: demoSprite, Variant: "normal", Transparency: &half, Quads: []scenefile.Quad{quad(1, 1)}},
			{Texture: demoSprite, Variant: "fsaa", AlphaTest: true, Filter: "bilinear", Quads: []scenefile.Quad{quad(2, 1)}},
		},
	}
}

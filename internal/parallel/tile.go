// Package parallel provides the tile-based parallel execution used by the
// display2d software renderer.
//
// The framebuffer is divided into 64x64 pixel tiles. A tile is rendered by a
// single worker and tiles never overlap, so workers write disjoint pixels
// without locking.
package parallel

const (
	// TileWidth is the width of a tile in pixels.
	TileWidth = 64

	// TileHeight is the height of a tile in pixels.
	TileHeight = 64
)

// Tile is a rectangular region of the framebuffer in pixel coordinates.
// Edge tiles may be smaller than TileWidth x TileHeight.
type Tile struct {
	X, Y          int
	Width, Height int
}

// MaxX returns the exclusive right edge of the tile.
func (t Tile) MaxX() int { return t.X + t.Width }

// MaxY returns the exclusive bottom edge of the tile.
func (t Tile) MaxY() int { return t.Y + t.Height }

// Contains reports whether the pixel (x, y) lies inside the tile.
func (t Tile) Contains(x, y int) bool {
	return x >= t.X && x < t.MaxX() && y >= t.Y && y < t.MaxY()
}

// Overlaps reports whether the tile intersects the half-open pixel box
// [minX,maxX) x [minY,maxY).
func (t Tile) Overlaps(minX, minY, maxX, maxY int) bool {
	return minX < t.MaxX() && maxX > t.X && minY < t.MaxY() && maxY > t.Y
}

// Split divides a width x height canvas into tiles in row-major order.
// Returns nil for an empty canvas.
func Split(width, height int) []Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	cols := (width + TileWidth - 1) / TileWidth
	rows := (height + TileHeight - 1) / TileHeight

	tiles := make([]Tile, 0, cols*rows)
	for ty := range rows {
		for tx := range cols {
			x, y := tx*TileWidth, ty*TileHeight
			tiles = append(tiles, Tile{
				X:      x,
				Y:      y,
				Width:  min(TileWidth, width-x),
				Height: min(TileHeight, height-y),
			})
		}
	}
	return tiles
}

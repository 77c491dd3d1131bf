package labyrinth

import "image"

// Vec2 is a fractional 2D vector, used for animated positions and scroll
// offsets measured in grid cells.
type Vec2 struct {
	X, Y float64
}

// Vec2i is an integer 2D vector, used for grid coordinates, board and view
// sizes, and window sizes in pixels.
type Vec2i struct {
	X, Y int
}

// Add returns v + o.
func (v Vec2i) Add(o Vec2i) Vec2i { return Vec2i{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2i) Sub(o Vec2i) Vec2i { return Vec2i{v.X - o.X, v.Y - o.Y} }

// Vec2 converts v to a fractional vector.
func (v Vec2i) Vec2() Vec2 { return Vec2{float64(v.X), float64(v.Y)} }

// Rect is an axis-aligned rectangle in screen pixels. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Image is an atlas image shared between tile descriptors. It is owned by the
// asset loader; the drawer only reads its bounds and hands it back to the
// Surface. *ebiten.Image and every image.Image satisfy it.
type Image interface {
	Bounds() image.Rectangle
}

// Surface receives the draw calls issued by a Drawer. src is the atlas
// sub-rectangle in image pixels, dst the destination in screen pixels.
type Surface interface {
	DrawTile(img Image, src image.Rectangle, dst Rect)
}

// Cell is a single board cell. Ground is always drawn; Layer is an optional
// overlay drawn on top of it (0 means none).
type Cell struct {
	Ground int
	Layer  int
}

// Board is the terrain consumed by a Drawer. Rows are drawn in ascending
// order and the cells of a row from left to right.
type Board interface {
	Size() Vec2i
	Height() int
	Row(y int) []Cell
}

// Actor is the single moving sprite composited into the board.
type Actor interface {
	// LogicalPosition is the last settled grid cell.
	LogicalPosition() Vec2i
	// LastPosition is the settled cell before LogicalPosition.
	LastPosition() Vec2i
	// AnimatedPosition is the interpolated position between the two.
	AnimatedPosition() Vec2
	TileID() int
}

package labyrinth

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ErrInvalidTile is returned by TileRegistry.SetTile for malformed
// descriptors. It indicates a corrupt asset definition.
var ErrInvalidTile = errors.New("labyrinth: invalid tile descriptor")

// Tile describes one tile id: where its frames live in the atlas and which
// frame is currently shown. Descriptors are validated by SetTile and are
// read-only afterwards; register the id again to change one.
type Tile struct {
	img      Image
	height   int
	row      int
	begin    int
	end      int
	duration float32

	current float32
	elapsed float32
	tween   *gween.Tween
}

// Image returns the atlas image holding the frames.
func (t *Tile) Image() Image { return t.img }

// Height returns the sprite height in atlas pixels. Sprites taller than one
// tile extend upward from the bottom of their row slot.
func (t *Tile) Height() int { return t.height }

// Row returns the atlas row holding the frames.
func (t *Tile) Row() int { return t.row }

// Frames returns the frame range [begin, end).
func (t *Tile) Frames() (begin, end int) { return t.begin, t.end }

// Duration returns the length of one full cycle in seconds.
func (t *Tile) Duration() float32 { return t.duration }

// Animated reports whether the tile cycles through more than one frame.
func (t *Tile) Animated() bool {
	return t.end > t.begin+1
}

// Frame returns the frame currently shown.
func (t *Tile) Frame() int {
	f := int(math.Floor(float64(t.current)))
	// Float rounding can land exactly on end for an instant.
	if f >= t.end {
		f = t.end - 1
	}
	if f < t.begin {
		f = t.begin
	}
	return f
}

// update advances a looping tile by dt seconds. The frame value rises
// linearly from begin to end and then restarts at begin.
func (t *Tile) update(dt float32) {
	if t.tween == nil || dt <= 0 {
		return
	}
	t.elapsed = float32(math.Mod(float64(t.elapsed+dt), float64(t.duration)))
	t.tween.Reset()
	t.current, _ = t.tween.Update(t.elapsed)
}

// TileRegistry owns the tile descriptors keyed by tile id and advances their
// frame loops on a shared clock.
//
// TileRegistry is not safe for concurrent use; confine it to the render
// loop.
type TileRegistry struct {
	tiles map[int]*Tile
}

// NewTileRegistry creates an empty registry.
func NewTileRegistry() *TileRegistry {
	return &TileRegistry{tiles: make(map[int]*Tile)}
}

// SetTile registers or replaces the descriptor for id and restarts its
// timeline. A range spanning more than one frame loops over duration
// seconds.
func (r *TileRegistry) SetTile(id int, img Image, height, row, begin, end int, duration float32) error {
	switch {
	case end <= begin:
		return fmt.Errorf("%w: tile %d: frame range [%d, %d) is empty", ErrInvalidTile, id, begin, end)
	case height < 1:
		return fmt.Errorf("%w: tile %d: height %d < 1", ErrInvalidTile, id, height)
	case row < 0 || begin < 0:
		return fmt.Errorf("%w: tile %d: negative row or frame", ErrInvalidTile, id)
	case end > begin+1 && !(duration > 0):
		return fmt.Errorf("%w: tile %d: duration %v must be positive for %d frames", ErrInvalidTile, id, duration, end-begin)
	}

	t := &Tile{
		img:      img,
		height:   height,
		row:      row,
		begin:    begin,
		end:      end,
		duration: duration,
		current:  float32(begin),
	}
	if t.Animated() {
		t.tween = gween.New(float32(begin), float32(end), duration, ease.Linear)
	}
	r.tiles[id] = t
	return nil
}

// Tile returns the descriptor for id, or nil if none is registered.
func (r *TileRegistry) Tile(id int) *Tile {
	return r.tiles[id]
}

// CurrentFrame returns the frame currently shown for id. ok is false for
// unknown ids; callers are expected to skip drawing rather than fail.
func (r *TileRegistry) CurrentFrame(id int) (frame int, ok bool) {
	t, ok := r.tiles[id]
	if !ok {
		return 0, false
	}
	return t.Frame(), true
}

// Len returns the number of registered tiles.
func (r *TileRegistry) Len() int {
	return len(r.tiles)
}

// Update advances every looping tile by dt seconds.
func (r *TileRegistry) Update(dt float32) {
	for _, t := range r.tiles {
		t.update(dt)
	}
}

// SourceRect returns the atlas rectangle for frame on the given atlas row.
// Frames wrap across the atlas width. The rectangle is one tile wide and
// tileHeight pixels tall, anchored at the bottom of the row slot.
func SourceRect(bounds image.Rectangle, tileWidth, tileHeight, row, frame int) image.Rectangle {
	cols := bounds.Dx() / tileWidth
	if cols > 0 {
		frame %= cols
	}
	return image.Rect(
		bounds.Min.X+frame*tileWidth, bounds.Min.Y+(row+1)*tileWidth-tileHeight,
		bounds.Min.X+(frame+1)*tileWidth, bounds.Min.Y+(row+1)*tileWidth,
	)
}

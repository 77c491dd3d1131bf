package labyrinth

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame draw metrics.
// Only populated when the drawer is in debug mode.
type debugStats struct {
	drawTime time.Duration
	scale    int
	view     Vec2i
	rows     int
	tiles    int
	skipped  int
}

// debugLog prints the last frame's stats to stderr.
func (d *Drawer) debugLog() {
	if !d.debug {
		return
	}
	s := d.stats
	_, _ = fmt.Fprintf(os.Stderr,
		"[labyrinth] scale: %d | view: %dx%d | scroll: %.2f,%.2f | draw: %v\n",
		s.scale, s.view.X, s.view.Y, d.scroller.X, d.scroller.Y, s.drawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[labyrinth] rows: %d | tiles: %d | skipped: %d\n",
		s.rows, s.tiles, s.skipped)
}

// debugCheckBoard panics when a row reports more cells than the board width.
// Only called in debug mode.
func debugCheckBoard(b Board) {
	size := b.Size()
	if b.Height() != size.Y {
		panic(fmt.Sprintf("labyrinth debug: board height %d does not match size %dx%d",
			b.Height(), size.X, size.Y))
	}
	for y := 0; y < size.Y; y++ {
		if n := len(b.Row(y)); n > size.X {
			panic(fmt.Sprintf("labyrinth debug: row %d has %d cells, board width is %d", y, n, size.X))
		}
	}
}

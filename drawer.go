package labyrinth

import (
	"log"
	"math"
	"time"
)

// Config holds the drawer's fixed geometry.
type Config struct {
	// TileSize is the width of one atlas tile in pixels. Tiles are square on
	// the board; taller sprites overflow upward.
	TileSize int
	// ViewSize is the desired number of cells visible along the shorter
	// window axis.
	ViewSize int
}

// DefaultConfig returns 32 pixel tiles and a 10 cell view.
func DefaultConfig() Config {
	return Config{TileSize: 32, ViewSize: 10}
}

// Drawer renders a Board and one Actor through a Surface. It owns the tile
// registry and the scroll state; call Update once per tick and Draw once per
// frame from the same goroutine.
type Drawer struct {
	cfg      Config
	tiles    *TileRegistry
	scroller Scroller
	window   Vec2i

	debug  bool
	warned map[int]bool
	stats  debugStats
}

// NewDrawer creates a Drawer with the given configuration.
func NewDrawer(cfg Config) *Drawer {
	if cfg.TileSize <= 0 || cfg.ViewSize <= 0 {
		def := DefaultConfig()
		if cfg.TileSize <= 0 {
			cfg.TileSize = def.TileSize
		}
		if cfg.ViewSize <= 0 {
			cfg.ViewSize = def.ViewSize
		}
	}
	return &Drawer{
		cfg:   cfg,
		tiles: NewTileRegistry(),
	}
}

// Config returns the drawer configuration.
func (d *Drawer) Config() Config {
	return d.cfg
}

// Tiles returns the drawer's tile registry.
func (d *Drawer) Tiles() *TileRegistry {
	return d.tiles
}

// SetTile registers the tile id. See [TileRegistry.SetTile].
func (d *Drawer) SetTile(id int, img Image, height, row, begin, end int, duration float32) error {
	if err := d.tiles.SetTile(id, img, height, row, begin, end, duration); err != nil {
		return err
	}
	delete(d.warned, id)
	return nil
}

// SetWindowSize sets the render target size in pixels.
func (d *Drawer) SetWindowSize(size Vec2i) {
	d.window = size
}

// WindowSize returns the render target size in pixels.
func (d *Drawer) WindowSize() Vec2i {
	return d.window
}

// Scrolling reports whether a scroll transition is in flight. Hosts use it
// to hold back movement input until the camera settles.
func (d *Drawer) Scrolling() bool {
	return d.scroller.Scrolling()
}

// ScrollOffset returns the displayed scroll offset in cells.
func (d *Drawer) ScrollOffset() Vec2 {
	return d.scroller.Offset()
}

// Update advances tile animations and the scroll transition by dt seconds.
func (d *Drawer) Update(dt float32) {
	d.tiles.Update(dt)
	d.scroller.Update(dt)
}

// SetDebugMode enables per-frame draw statistics on stderr and warnings for
// unknown tile ids.
func (d *Drawer) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// Draw issues the draw calls for one frame. Rows up to and including the
// actor's row are drawn first, then the actor, then the remaining rows, so
// terrain in front of the actor overlaps it. Nothing is drawn when the
// window cannot fit the view at scale 1.
func (d *Drawer) Draw(surface Surface, board Board, actor Actor) {
	scalei := ComputeScale(d.window, d.cfg.TileSize, d.cfg.ViewSize)
	if scalei == 0 {
		return
	}
	scale := float64(scalei)

	var t0 time.Time
	if d.debug {
		debugCheckBoard(board)
		d.stats = debugStats{}
		t0 = time.Now()
	}

	boardSize := board.Size()
	view := VisibleViewSize(d.window, d.cfg.ViewSize, boardSize)
	d.scroller.Follow(actor.LogicalPosition(), actor.LastPosition(), view, boardSize)

	unit := float64(d.cfg.TileSize) * scale
	scroll := d.scroller.Offset()
	offset := Vec2{
		X: (float64(d.window.X)-float64(view.X)*unit)*0.5 - scroll.X*unit,
		Y: (float64(d.window.Y)-float64(view.Y)*unit)*0.5 - scroll.Y*unit,
	}

	animated := actor.AnimatedPosition()
	actorRow := int(math.Ceil(animated.Y))
	height := board.Height()

	y := 0
	for ; y <= actorRow && y < height; y++ {
		d.drawRow(surface, board, y, offset, unit)
	}
	d.drawTile(surface, actor.TileID(), animated, offset, unit)
	for ; y < height; y++ {
		d.drawRow(surface, board, y, offset, unit)
	}

	if d.debug {
		d.stats.drawTime = time.Since(t0)
		d.stats.scale = scalei
		d.stats.view = view
		d.debugLog()
	}
}

func (d *Drawer) drawRow(surface Surface, board Board, y int, offset Vec2, unit float64) {
	if d.debug {
		d.stats.rows++
	}
	for x, cell := range board.Row(y) {
		pos := Vec2{float64(x), float64(y)}
		d.drawTile(surface, cell.Ground, pos, offset, unit)
		if cell.Layer != 0 {
			d.drawTile(surface, cell.Layer, pos, offset, unit)
		}
	}
}

// drawTile draws the current frame of id with its bottom edge on the bottom
// of the cell at pos. Unknown ids are skipped.
func (d *Drawer) drawTile(surface Surface, id int, pos, offset Vec2, unit float64) {
	t := d.tiles.Tile(id)
	if t == nil {
		d.missingTile(id)
		return
	}
	ts := d.cfg.TileSize
	src := SourceRect(t.Image().Bounds(), ts, t.Height(), t.Row(), t.Frame())

	top := pos.Y + 1 - float64(t.Height())/float64(ts)
	dst := Rect{
		X:      pos.X*unit + offset.X,
		Y:      top*unit + offset.Y,
		Width:  unit,
		Height: (pos.Y + 1 - top) * unit,
	}
	surface.DrawTile(t.Image(), src, dst)
	if d.debug {
		d.stats.tiles++
	}
}

func (d *Drawer) missingTile(id int) {
	if !d.debug {
		return
	}
	d.stats.skipped++
	if d.warned == nil {
		d.warned = make(map[int]bool)
	}
	if !d.warned[id] {
		d.warned[id] = true
		log.Printf("labyrinth: tile %d not registered, skipping", id)
	}
}

package labyrinth

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig holds window options for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// Debug enables the drawer's per-frame stats on stderr.
	Debug bool
}

// Game hosts a Drawer, a Grid and a player Mover as an [ebiten.Game].
//
// Arrow keys move the player; F toggles fullscreen. Movement input is held
// back while the camera scrolls.
type Game struct {
	Drawer *Drawer
	Board  *Grid
	Player *Mover
	// Walkable decides which cells the player may enter. When nil, cells
	// without an overlay are walkable.
	Walkable func(Cell) bool
	// ClearColor fills the screen before the board is drawn.
	ClearColor color.Color
	ShowFPS    bool

	script   *Script
	surface  EbitenSurface
	lastTick time.Time
}

// NewGame creates a Game. The drawer's window size follows the ebiten
// layout.
func NewGame(drawer *Drawer, board *Grid, player *Mover) *Game {
	return &Game{
		Drawer:     drawer,
		Board:      board,
		Player:     player,
		ClearColor: color.Black,
	}
}

// SetScript replaces keyboard input with a movement script. Pass nil to
// return control to the keyboard.
func (g *Game) SetScript(s *Script) {
	g.script = s
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	now := time.Now()
	var since time.Duration
	if !g.lastTick.IsZero() {
		since = now.Sub(g.lastTick)
	}
	g.lastTick = now
	g.step(tickDelta(ebiten.TPS(), since), keyDirection)
	return nil
}

// maxTickDelta caps the wall-clock step, in seconds.
const maxTickDelta = 0.25

// tickDelta returns the seconds one Update covers. With a fixed TPS that is
// 1/TPS; with ebiten.SyncWithFPS (TPS < 1) the wall-clock time since the
// previous tick is used instead.
func tickDelta(tps int, since time.Duration) float32 {
	if tps > 0 {
		return 1 / float32(tps)
	}
	return float32(min(max(since.Seconds(), 0), maxTickDelta))
}

// step applies one tick: input is read only while the player is idle and
// the camera is still, then every animation advances by dt.
func (g *Game) step(dt float32, input func() Direction) {
	if !g.Drawer.Scrolling() && !g.Player.Moving() {
		var dir Direction
		if g.script != nil {
			dir = g.script.step(g)
		} else if input != nil {
			dir = input()
		}
		if dir != DirNone {
			avail := g.Board.AvailableMoves(g.Player.LogicalPosition(), g.walkable)
			g.Player.Move(dir, avail)
		}
	}
	g.Player.Update(dt)
	g.Drawer.Update(dt)
}

func (g *Game) walkable(c Cell) bool {
	if g.Walkable != nil {
		return g.Walkable(c)
	}
	return c.Layer == 0
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.ClearColor != nil {
		screen.Fill(g.ClearColor)
	}
	g.surface.Target = screen
	g.Drawer.Draw(&g.surface, g.Board, g.Player)
	if g.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game. The drawer renders at the window's native
// resolution so its integer scale controls pixel size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Drawer.SetWindowSize(Vec2i{outsideWidth, outsideHeight})
	return outsideWidth, outsideHeight
}

// keyDirection maps the held arrow key to a direction.
func keyDirection() Direction {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		return DirUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		return DirDown
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		return DirLeft
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		return DirRight
	}
	return DirNone
}

// Run opens a window and runs g until the window is closed.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	g.ShowFPS = g.ShowFPS || cfg.ShowFPS
	g.Drawer.SetDebugMode(cfg.Debug)
	return ebiten.RunGame(g)
}

// Package labyrinth draws a tile board with animated tiles, a paging camera
// and one walking actor for [Ebitengine] or a terminal.
//
// # Quick start
//
//	drawer := labyrinth.NewDrawer(labyrinth.DefaultConfig())
//	drawer.SetTile(1, atlas, 32, 0, 0, 4, 1.0) // 4 frame water loop
//	drawer.SetTile(9, atlas, 48, 2, 0, 1, 0)   // static tree, 1.5 tiles tall
//
//	board := labyrinth.NewGrid(40, 30)
//	board.Fill(1)
//	player := labyrinth.NewMover(20, labyrinth.Vec2i{X: 1, Y: 1})
//
//	labyrinth.Run(labyrinth.NewGame(drawer, board, player), labyrinth.RunConfig{
//		Title: "Labyrinth", Width: 800, Height: 600,
//	})
//
// For full control, call [Drawer.Update] once per tick and [Drawer.Draw] once
// per frame with any [Surface]: [EbitenSurface] for a window,
// [TerminalSurface] for a tcell screen.
//
// # Tiles
//
// Every tile id maps to a row of frames in an atlas image. Frames are one
// tile wide; a sprite may be taller than a tile and then extends upward from
// the bottom of its cell. Ranges of more than one frame loop continuously.
// Ids that are not registered are skipped when drawn.
//
// # Scrolling
//
// The drawer picks the largest integer pixel scale that fits the configured
// view, widens the view to the window aspect ratio, and pages the camera so
// the actor keeps a one cell margin. The camera never shows area outside
// the board. Page changes animate at [ScrollDuration] per cell.
//
// # Depth
//
// Rows are drawn back to front. The actor is drawn right after the row it
// stands on, so rows in front of it overlap its sprite.
//
// [Ebitengine]: https://ebitengine.org
package labyrinth

package labyrinth

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScrollDuration is how long the camera takes to scroll one cell, in seconds.
const ScrollDuration float32 = 0.1

// scrollEpsilon is the squared distance below which a new scroll target is
// considered equal to the displayed offset.
const scrollEpsilon = 1e-6

// ComputeScale returns the largest integer pixel scale at which viewSize
// tiles of tileSize pixels fit the window on both axes. A result of 0 means
// the window is too small and the frame should not be drawn.
func ComputeScale(window Vec2i, tileSize, viewSize int) int {
	if tileSize <= 0 || viewSize <= 0 {
		return 0
	}
	sx := window.X / tileSize / viewSize
	sy := window.Y / tileSize / viewSize
	s := min(sx, sy)
	if s < 0 {
		return 0
	}
	return s
}

// VisibleViewSize widens the square desired view along the longer window
// axis to match the window aspect ratio, then clamps it to the board.
func VisibleViewSize(window Vec2i, desired int, board Vec2i) Vec2i {
	view := Vec2i{desired, desired}
	switch {
	case window.X > window.Y && window.Y > 0:
		view.X = view.X * window.X / window.Y
	case window.Y >= window.X && window.X > 0:
		view.Y = view.Y * window.Y / window.X
	}
	return Vec2i{min(view.X, board.X), min(view.Y, board.Y)}
}

// ScrollOffset returns the top-left cell of the view that shows pos. The
// view pages in steps of view-2 cells, keeping a one cell margin around the
// actor, and never shows area outside the board.
func ScrollOffset(pos, view, board Vec2i) Vec2i {
	return Vec2i{
		scrollAxis(pos.X, view.X, board.X),
		scrollAxis(pos.Y, view.Y, board.Y),
	}
}

func scrollAxis(pos, view, board int) int {
	limit := max(board-view, 0)
	page := view - 2
	if page < 1 {
		page = 1
	}
	p := pos - 1
	return max(min(limit, p-p%page), 0)
}

// Scroller animates the scroll offset between pages. A transition is only
// replaced once it has completed.
//
// Scroller is not safe for concurrent use.
type Scroller struct {
	// X and Y are the displayed offset in cells.
	X, Y float64

	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Offset returns the displayed scroll offset.
func (s *Scroller) Offset() Vec2 {
	return Vec2{s.X, s.Y}
}

// Scrolling reports whether a transition is in flight.
func (s *Scroller) Scrolling() bool {
	return s.tweenX != nil
}

// Follow recomputes the scroll target from the actor's logical position. If
// it differs from the displayed offset and no transition is running, a new
// transition starts at the offset of the actor's previous position. The
// duration is ScrollDuration per cell of the longest axis.
// It reports whether a transition was started.
func (s *Scroller) Follow(logical, last, view, board Vec2i) bool {
	if s.Scrolling() {
		return false
	}
	to := ScrollOffset(logical, view, board)
	dx, dy := float64(to.X)-s.X, float64(to.Y)-s.Y
	if dx*dx+dy*dy <= scrollEpsilon {
		return false
	}

	from := ScrollOffset(last, view, board)
	dist := max(abs(to.X-from.X), abs(to.Y-from.Y))
	s.X, s.Y = float64(from.X), float64(from.Y)
	if dist == 0 {
		s.X, s.Y = float64(to.X), float64(to.Y)
		return false
	}
	duration := float32(dist) * ScrollDuration
	s.tweenX = gween.New(float32(from.X), float32(to.X), duration, ease.Linear)
	s.tweenY = gween.New(float32(from.Y), float32(to.Y), duration, ease.Linear)
	s.doneX, s.doneY = false, false
	return true
}

// Update advances the running transition by dt seconds.
func (s *Scroller) Update(dt float32) {
	if !s.Scrolling() {
		return
	}
	if !s.doneX {
		val, done := s.tweenX.Update(dt)
		s.X = float64(val)
		s.doneX = done
	}
	if !s.doneY {
		val, done := s.tweenY.Update(dt)
		s.Y = float64(val)
		s.doneY = done
	}
	if s.doneX && s.doneY {
		s.tweenX, s.tweenY = nil, nil
	}
}

// Snap jumps to the offset for pos and cancels any transition.
func (s *Scroller) Snap(pos, view, board Vec2i) {
	to := ScrollOffset(pos, view, board)
	s.X, s.Y = float64(to.X), float64(to.Y)
	s.tweenX, s.tweenY = nil, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package labyrinth

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestComputeScale(t *testing.T) {
	tests := []struct {
		name     string
		window   Vec2i
		tile, vs int
		want     int
	}{
		{"landscape limited by height", Vec2i{800, 600}, 32, 10, 1},
		{"exact fit", Vec2i{640, 640}, 32, 10, 2},
		{"truncates toward zero", Vec2i{959, 959}, 32, 10, 2},
		{"too small", Vec2i{10, 10}, 32, 10, 0},
		{"one axis too small", Vec2i{1920, 100}, 32, 10, 0},
		{"large window", Vec2i{1920, 1080}, 16, 10, 6},
		{"zero window", Vec2i{}, 32, 10, 0},
		{"degenerate view", Vec2i{800, 600}, 32, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeScale(tt.window, tt.tile, tt.vs); got != tt.want {
				t.Errorf("ComputeScale(%v, %d, %d) = %d, want %d", tt.window, tt.tile, tt.vs, got, tt.want)
			}
		})
	}
}

func TestVisibleViewSize(t *testing.T) {
	big := Vec2i{100, 100}
	tests := []struct {
		name   string
		window Vec2i
		board  Vec2i
		want   Vec2i
	}{
		{"landscape widens x", Vec2i{800, 600}, big, Vec2i{13, 10}},
		{"portrait widens y", Vec2i{600, 800}, big, Vec2i{10, 13}},
		{"square", Vec2i{500, 500}, big, Vec2i{10, 10}},
		{"clamped to board", Vec2i{1600, 600}, Vec2i{20, 8}, Vec2i{20, 8}},
		{"narrow board", Vec2i{800, 600}, Vec2i{5, 40}, Vec2i{5, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleViewSize(tt.window, 10, tt.board); got != tt.want {
				t.Errorf("VisibleViewSize = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScrollOffsetClampsToBoard(t *testing.T) {
	board := Vec2i{20, 15}
	view := Vec2i{10, 8}
	limit := board.Sub(view)

	got := ScrollOffset(Vec2i{19, 14}, view, board)
	if got != limit {
		t.Errorf("ScrollOffset at far corner = %v, want %v", got, limit)
	}

	for y := 0; y < board.Y; y++ {
		for x := 0; x < board.X; x++ {
			o := ScrollOffset(Vec2i{x, y}, view, board)
			if o.X < 0 || o.Y < 0 || o.X > limit.X || o.Y > limit.Y {
				t.Fatalf("ScrollOffset(%d,%d) = %v outside [0, %v]", x, y, o, limit)
			}
			// The actor must be inside the view.
			if x < o.X || x >= o.X+view.X || y < o.Y || y >= o.Y+view.Y {
				t.Fatalf("actor (%d,%d) not visible with offset %v", x, y, o)
			}
		}
	}
}

func TestScrollOffsetAtOrigin(t *testing.T) {
	for _, view := range []Vec2i{{3, 3}, {10, 8}, {20, 15}} {
		if got := ScrollOffset(Vec2i{}, view, Vec2i{20, 15}); got != (Vec2i{}) {
			t.Errorf("ScrollOffset(0,0) with view %v = %v, want (0,0)", view, got)
		}
	}
}

func TestScrollOffsetPagesWithMargin(t *testing.T) {
	board := Vec2i{100, 100}
	view := Vec2i{10, 10}
	tests := []struct {
		pos  int
		want int
	}{
		{0, 0}, {1, 0}, {8, 0}, {9, 8}, {16, 8}, {17, 16},
	}
	for _, tt := range tests {
		got := ScrollOffset(Vec2i{tt.pos, tt.pos}, view, board)
		if got.X != tt.want || got.Y != tt.want {
			t.Errorf("ScrollOffset(%d) = %v, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestScrollOffsetTinyView(t *testing.T) {
	// Views of two cells or less have no page margin; they must not divide
	// by zero.
	board := Vec2i{10, 10}
	for _, v := range []int{1, 2} {
		o := ScrollOffset(Vec2i{5, 5}, Vec2i{v, v}, board)
		if o.X < 0 || o.X > board.X-v {
			t.Errorf("view %d: offset %v out of range", v, o)
		}
	}
}

func TestScrollerStartsTransition(t *testing.T) {
	var s Scroller
	board := Vec2i{40, 40}
	view := Vec2i{10, 10}

	if !s.Follow(Vec2i{9, 1}, Vec2i{8, 1}, view, board) {
		t.Fatal("expected a transition to start")
	}
	if !s.Scrolling() {
		t.Fatal("Scrolling() = false during transition")
	}
	if s.X != 0 || s.Y != 0 {
		t.Errorf("transition should start at the previous page, got %v", s.Offset())
	}

	// Eight cells at 0.1s per cell.
	s.Update(0.4)
	if !approxEqual(s.X, 4, 0.01) {
		t.Errorf("X at half time = %f, want ~4", s.X)
	}
	s.Update(0.5)
	if s.Scrolling() {
		t.Error("transition should be complete")
	}
	if !approxEqual(s.X, 8, 1e-6) || s.Y != 0 {
		t.Errorf("offset = %v, want (8,0)", s.Offset())
	}
}

func TestScrollerNotPreempted(t *testing.T) {
	var s Scroller
	board := Vec2i{40, 40}
	view := Vec2i{10, 10}

	s.Follow(Vec2i{9, 1}, Vec2i{8, 1}, view, board)
	s.Update(0.1)
	if s.Follow(Vec2i{17, 1}, Vec2i{16, 1}, view, board) {
		t.Fatal("transition was preempted")
	}
	s.Update(1)
	if !approxEqual(s.X, 8, 1e-6) {
		t.Errorf("X = %f, want 8", s.X)
	}

	// Once settled, the pending target is picked up.
	if !s.Follow(Vec2i{17, 1}, Vec2i{16, 1}, view, board) {
		t.Fatal("expected new transition after completion")
	}
}

func TestScrollerIdleWhenTargetUnchanged(t *testing.T) {
	var s Scroller
	if s.Follow(Vec2i{3, 3}, Vec2i{2, 3}, Vec2i{10, 10}, Vec2i{40, 40}) {
		t.Error("no transition expected inside the first page")
	}
	if s.Scrolling() {
		t.Error("Scrolling() = true")
	}
}

func TestScrollerSnapsWithoutDistance(t *testing.T) {
	var s Scroller
	// Teleport: last and logical share a page far from the displayed one.
	if s.Follow(Vec2i{20, 20}, Vec2i{20, 20}, Vec2i{10, 10}, Vec2i{40, 40}) {
		t.Error("zero-distance move should not animate")
	}
	want := ScrollOffset(Vec2i{20, 20}, Vec2i{10, 10}, Vec2i{40, 40})
	if s.Offset() != want.Vec2() {
		t.Errorf("offset = %v, want %v", s.Offset(), want)
	}
}

func TestScrollerDurationFollowsLongestAxis(t *testing.T) {
	var s Scroller
	board := Vec2i{100, 100}
	view := Vec2i{10, 10}
	// x moves 8 cells, y 16 cells: 1.6s total.
	s.Follow(Vec2i{9, 17}, Vec2i{8, 8}, view, board)
	s.Update(0.8)
	if !approxEqual(s.Y, 8, 0.01) || !approxEqual(s.X, 4, 0.01) {
		t.Errorf("offset at 0.8s = %v, want ~(4,8)", s.Offset())
	}
	s.Update(0.9)
	if s.Scrolling() {
		t.Error("transition should be complete after 1.6s")
	}
}

package labyrinth

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MoveDuration is how long an actor takes to walk one cell, in seconds.
const MoveDuration float32 = 0.5

// MoveEvent is emitted when a Mover starts a step.
type MoveEvent struct {
	Tile int
	From Vec2i
	To   Vec2i
	Dir  Direction
}

// EventSink is the interface for optional ECS integration. When set on a
// Mover, every accepted step is forwarded to it.
type EventSink interface {
	EmitMove(event MoveEvent)
}

// Mover is an Actor that walks one cell at a time. Its logical position
// changes as soon as a step is accepted; the animated position catches up
// over MoveDuration.
type Mover struct {
	Tile int
	// Duration overrides MoveDuration when positive.
	Duration float32

	logical Vec2i
	last    Vec2i
	x, y    float64

	tweenX *gween.Tween
	tweenY *gween.Tween
	sink   EventSink
}

// NewMover creates a Mover standing still on start.
func NewMover(tile int, start Vec2i) *Mover {
	m := &Mover{Tile: tile}
	m.SetStartPosition(start)
	return m
}

// SetStartPosition places the mover on p without animating and cancels any
// step in progress.
func (m *Mover) SetStartPosition(p Vec2i) {
	m.logical, m.last = p, p
	m.x, m.y = float64(p.X), float64(p.Y)
	m.tweenX, m.tweenY = nil, nil
}

// SetEventSink sets the optional ECS bridge.
func (m *Mover) SetEventSink(sink EventSink) {
	m.sink = sink
}

// LogicalPosition implements Actor.
func (m *Mover) LogicalPosition() Vec2i { return m.logical }

// LastPosition implements Actor.
func (m *Mover) LastPosition() Vec2i { return m.last }

// AnimatedPosition implements Actor.
func (m *Mover) AnimatedPosition() Vec2 { return Vec2{m.x, m.y} }

// TileID implements Actor.
func (m *Mover) TileID() int { return m.Tile }

// Moving reports whether a step is being animated.
func (m *Mover) Moving() bool {
	return m.tweenX != nil
}

// Move starts a step in dir if dir is a single direction contained in
// available and no step is in progress. It reports whether the step was
// accepted.
func (m *Mover) Move(dir, available Direction) bool {
	if m.Moving() || !dir.IsSingle() || !available.Has(dir) {
		return false
	}
	from := m.logical
	to := from.Add(dir.Delta())

	duration := m.Duration
	if duration <= 0 {
		duration = MoveDuration
	}
	m.last, m.logical = from, to
	m.tweenX = gween.New(float32(m.x), float32(to.X), duration, ease.Linear)
	m.tweenY = gween.New(float32(m.y), float32(to.Y), duration, ease.Linear)

	if m.sink != nil {
		m.sink.EmitMove(MoveEvent{Tile: m.Tile, From: from, To: to, Dir: dir})
	}
	return true
}

// Update advances the current step by dt seconds.
func (m *Mover) Update(dt float32) {
	if !m.Moving() {
		return
	}
	vx, doneX := m.tweenX.Update(dt)
	vy, doneY := m.tweenY.Update(dt)
	m.x, m.y = float64(vx), float64(vy)
	if doneX && doneY {
		m.x, m.y = float64(m.logical.X), float64(m.logical.Y)
		m.tweenX, m.tweenY = nil, nil
	}
}

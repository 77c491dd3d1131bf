package labyrinth

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a movement script.
type scriptStep struct {
	Action string `json:"action"`
	Dir    string `json:"dir,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Frames int    `json:"frames,omitempty"`

	dir Direction
}

// script is the top-level JSON structure for a movement script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Script replaces keyboard input with a fixed sequence of moves for demos
// and automated runs. Attach it to a Game via SetScript.
//
// Steps:
//
//	{"action": "move", "dir": "up"}     request one step
//	{"action": "wait", "frames": 30}   idle for a number of frames
//	{"action": "warp", "x": 3, "y": 4} place the player without animating
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON movement script.
func LoadScript(jsonData []byte) (*Script, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		switch st.Action {
		case "move":
			d, err := ParseDirection(st.Dir)
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			if !d.IsSingle() {
				return nil, fmt.Errorf("parse script: step %d: move needs a single direction, got %q", i, st.Dir)
			}
			st.dir = d
		case "wait", "warp":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: s.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame and returns the direction to move
// in, or DirNone. Called by Game only while the player is idle.
func (r *Script) step(g *Game) Direction {
	if r.done {
		return DirNone
	}
	if r.waitCount > 0 {
		r.waitCount--
		return DirNone
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return DirNone
	}

	st := r.steps[r.cursor]
	r.cursor++

	dir := DirNone
	switch st.Action {
	case "move":
		dir = st.dir
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "warp":
		g.Player.SetStartPosition(Vec2i{st.X, st.Y})
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	return dir
}

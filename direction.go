package labyrinth

import (
	"fmt"
	"strings"
)

// Direction is a bitmask of the four cardinal directions. A single bit is a
// chosen move; several bits together form an "available moves" mask.
type Direction uint8

const (
	DirNone  Direction = 0
	DirUp    Direction = 1 << (iota - 1) // toward row 0
	DirDown                              // toward the last row
	DirLeft                              // toward column 0
	DirRight                             // toward the last column
	DirMax                               // sentinel, not a valid direction
)

// DirAll is the mask of every cardinal direction.
const DirAll = DirUp | DirDown | DirLeft | DirRight

// Reverse swaps Up with Down and Left with Right. Each pair is swapped
// independently, so Reverse is involutive on masks as well as single bits.
func Reverse(d Direction) Direction {
	return (d&(DirUp|DirLeft))<<1 | (d&(DirDown|DirRight))>>1
}

// Reverse is the method form of [Reverse].
func (d Direction) Reverse() Direction {
	return Reverse(d)
}

// Has reports whether every bit of other is set in d.
func (d Direction) Has(other Direction) bool {
	return d&other == other
}

// IsSingle reports whether d is exactly one cardinal direction.
func (d Direction) IsSingle() bool {
	return d != DirNone && d < DirMax && d&(d-1) == 0
}

// Delta returns the grid step for a single direction, and the zero vector
// for DirNone or a multi-bit mask.
func (d Direction) Delta() Vec2i {
	switch d {
	case DirUp:
		return Vec2i{0, -1}
	case DirDown:
		return Vec2i{0, 1}
	case DirLeft:
		return Vec2i{-1, 0}
	case DirRight:
		return Vec2i{1, 0}
	default:
		return Vec2i{}
	}
}

var directionNames = [...]struct {
	d    Direction
	name string
}{
	{DirUp, "up"},
	{DirDown, "down"},
	{DirLeft, "left"},
	{DirRight, "right"},
}

// String returns "none", a single name such as "up", or a "|"-joined list
// for masks.
func (d Direction) String() string {
	if d == DirNone {
		return "none"
	}
	var parts []string
	for _, dn := range directionNames {
		if d&dn.d != 0 {
			parts = append(parts, dn.name)
		}
	}
	if rest := d &^ DirAll; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseDirection converts a name produced by String back into a Direction.
// Names are case-insensitive.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" || s == "" {
		return DirNone, nil
	}
	var d Direction
	for _, part := range strings.Split(s, "|") {
		found := false
		for _, dn := range directionNames {
			if part == dn.name {
				d |= dn.d
				found = true
				break
			}
		}
		if !found {
			return DirNone, fmt.Errorf("labyrinth: unknown direction %q", part)
		}
	}
	return d, nil
}

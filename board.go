package labyrinth

// Grid is a rectangular Board stored row-major.
type Grid struct {
	width, height int
	cells         []Cell
}

// NewGrid creates a width x height grid of zero cells.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() Vec2i { return Vec2i{g.width, g.height} }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Row returns the cells of row y, or nil if y is out of range. The returned
// slice aliases the grid.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.height {
		return nil
	}
	return g.cells[y*g.width : (y+1)*g.width]
}

// Contains reports whether p lies on the grid.
func (g *Grid) Contains(p Vec2i) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p. Out-of-range positions return the zero cell.
func (g *Grid) At(p Vec2i) Cell {
	if !g.Contains(p) {
		return Cell{}
	}
	return g.cells[p.Y*g.width+p.X]
}

// Set replaces the cell at p. Out-of-range positions are ignored.
func (g *Grid) Set(p Vec2i, c Cell) {
	if !g.Contains(p) {
		return
	}
	g.cells[p.Y*g.width+p.X] = c
}

// Fill sets the ground of every cell to ground and clears overlays.
func (g *Grid) Fill(ground int) {
	for i := range g.cells {
		g.cells[i] = Cell{Ground: ground}
	}
}

// AvailableMoves returns the mask of directions leading from p to a cell on
// the grid for which walkable returns true.
func (g *Grid) AvailableMoves(p Vec2i, walkable func(Cell) bool) Direction {
	var mask Direction
	for _, dn := range directionNames {
		next := p.Add(dn.d.Delta())
		if g.Contains(next) && walkable(g.At(next)) {
			mask |= dn.d
		}
	}
	return mask
}

package game

// Grid is a width x height board of booleans indexed by (x, y). Grids handed
// out by a State share storage with it: callers must Copy before calling Set.
type Grid struct {
	width  int
	height int
	cells  []bool
}

func NewGrid(width, height int) Grid {
	return Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At reports the cell at p; positions off the grid read as false
func (g Grid) At(p Position) bool {
	if !g.Contains(p) {
		return false
	}
	return g.cells[p.Y*g.width+p.X]
}

func (g Grid) Set(p Position, value bool) {
	if !g.Contains(p) {
		panic("position outside grid")
	}
	g.cells[p.Y*g.width+p.X] = value
}

func (g Grid) Copy() Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return Grid{width: g.width, height: g.height, cells: cells}
}

// Count returns the number of true cells
func (g Grid) Count() int {
	count := 0
	for _, c := range g.cells {
		if c {
			count++
		}
	}
	return count
}

// Positions lists the true cells column by column, matching the order food is
// reported in
func (g Grid) Positions() []Position {
	var positions []Position
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.cells[y*g.width+x] {
				positions = append(positions, Position{X: x, Y: y})
			}
		}
	}
	return positions
}

// Package engine implements the minesweeper game-state engine: the cell grid,
// deferred first-click-safe mine placement, the zero-reveal cascade, flagging,
// the game timer and win/loss detection.
//
// The engine is single-threaded and does no I/O of its own. A host drives it
// from one update loop and reads cell state back for rendering.
package engine

// UncomputedCount marks a cell whose neighbour mine count has not been
// calculated yet (mines are placed on the first open).
const UncomputedCount = -1

// Cell is one grid position.
type Cell struct {
	HasMine           bool
	IsOpened          bool
	IsFlagged         bool
	NeighborMineCount int
}

// reset returns the cell to its virgin state.
func (c *Cell) reset() {
	*c = Cell{NeighborMineCount: UncomputedCount}
}

// Coord is a cell position on the grid.
type Coord struct {
	X, Y int
}

// neighborOffsets scans the 3x3 block around a cell in row-major order,
// skipping the centre.
var neighborOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a dense row-major array of cells: index = y*width + x.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a width x height grid of virgin cells.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.Reset()
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Reset puts every cell back into the virgin state in place.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}

// IsValidIndex reports whether 0 <= i < width*height.
func (g *Grid) IsValidIndex(i int) bool {
	return i >= 0 && i < len(g.cells)
}

// IsValidCoord reports whether (x, y) lies inside the grid.
func (g *Grid) IsValidCoord(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CoordToIndex maps (x, y) to its linear index, or -1 when (x, y) is
// outside the grid.
func (g *Grid) CoordToIndex(x, y int) int {
	if !g.IsValidCoord(x, y) {
		return -1
	}
	return y*g.width + x
}

// IndexToCoord is the inverse of CoordToIndex. The result is meaningless
// for an invalid index.
func (g *Grid) IndexToCoord(i int) (x, y int) {
	return i % g.width, i / g.width
}

// NeighborsOf returns the in-bounds neighbours of (x, y) in row-major order
// of the surrounding 3x3 block.
func (g *Grid) NeighborsOf(x, y int) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		nx, ny := x+off.X, y+off.Y
		if g.IsValidCoord(nx, ny) {
			out = append(out, Coord{X: nx, Y: ny})
		}
	}
	return out
}

// neighborIndices appends the linear indices of i's neighbours to buf.
func (g *Grid) neighborIndices(i int, buf []int) []int {
	x, y := g.IndexToCoord(i)
	for _, off := range neighborOffsets {
		if idx := g.CoordToIndex(x+off.X, y+off.Y); idx >= 0 {
			buf = append(buf, idx)
		}
	}
	return buf
}

// cell returns a pointer to the cell at index i, or nil.
func (g *Grid) cell(i int) *Cell {
	if !g.IsValidIndex(i) {
		return nil
	}
	return &g.cells[i]
}

// Cell returns a copy of the cell at index i.
func (g *Grid) Cell(i int) (Cell, bool) {
	c := g.cell(i)
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

// countNeighborMines stores the neighbour mine count in every cell.
func (g *Grid) countNeighborMines() {
	buf := make([]int, 0, len(neighborOffsets))
	for i := range g.cells {
		count := 0
		buf = g.neighborIndices(i, buf[:0])
		for _, n := range buf {
			if g.cells[n].HasMine {
				count++
			}
		}
		g.cells[i].NeighborMineCount = count
	}
}

func (g *Grid) countFlagged() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].IsFlagged {
			n++
		}
	}
	return n
}

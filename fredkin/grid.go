// Package fredkin runs Fredkin's replicator: a cell is alive in the next
// generation when an odd number of its four von Neumann neighbors are alive
// now. Any pattern is copied outward in powers of two, which is what makes
// the pieces look like carpets.
package fredkin

const (
	alive   = 0b01
	pending = 0b10
)

// Cell is a position on the grid.
type Cell struct {
	Row, Col int
}

// Grid is a fixed size board. Each cell keeps two bits: bit 0 is the
// current state and bit 1 the state being computed for the next
// generation. Lookups past the edge see a dead cell; nothing wraps.
type Grid struct {
	rows, cols int
	cells      []uint8
}

// New returns an empty rows x cols grid.
func New(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
}

// Size returns the number of rows and columns.
func (g *Grid) Size() (int, int) {
	return g.rows, g.cols
}

func (g *Grid) inside(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Alive reports the current state of a cell. Cells off the grid are dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.inside(row, col) {
		return false
	}
	return g.cells[row*g.cols+col]&alive != 0
}

// Set makes a cell alive. Cells off the grid are ignored.
func (g *Grid) Set(row, col int) {
	if g.inside(row, col) {
		g.cells[row*g.cols+col] = alive
	}
}

// Stamp sets every cell of the pattern, offset so the pattern's origin
// lands on (row, col).
func (g *Grid) Stamp(p Pattern, row, col int) {
	for _, c := range p {
		g.Set(row+c.Row, col+c.Col)
	}
}

func (g *Grid) neighbors(row, col int) int {
	n := 0
	if g.Alive(row-1, col) {
		n++
	}
	if g.Alive(row+1, col) {
		n++
	}
	if g.Alive(row, col+1) {
		n++
	}
	if g.Alive(row, col-1) {
		n++
	}
	return n
}

// Step advances one generation. All pending bits are computed from the
// current generation before any cell is shifted over.
func (g *Grid) Step() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.neighbors(row, col)&1 == 1 {
				g.cells[row*g.cols+col] |= pending
			}
		}
	}
	for i := range g.cells {
		g.cells[i] >>= 1
	}
}

// Run advances n generations.
func (g *Grid) Run(n int) {
	for i := 0; i < n; i++ {
		g.Step()
	}
}

// LiveCount returns the number of live cells.
func (g *Grid) LiveCount() int {
	n := 0
	for _, c := range g.cells {
		if c&alive != 0 {
			n++
		}
	}
	return n
}

// Live returns the live cells in row major order.
func (g *Grid) Live() []Cell {
	var out []Cell
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row*g.cols+col]&alive != 0 {
				out = append(out, Cell{row, col})
			}
		}
	}
	return out
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]uint8, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

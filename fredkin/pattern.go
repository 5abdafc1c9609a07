package fredkin

// Pattern is a set of offsets from a center cell.
type Pattern []Cell

var (
	// Pants
	//   XXX
	//   XOX
	//   X X
	Pants = Pattern{
		{-1, 0},
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 1}, {0, 1}, {1, 1},
	}

	// Pentomino
	//    X
	//    O
	//   XXX
	Pentomino = Pattern{
		{-1, 0},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// Anchors returns the nine places a pattern is stamped: the center and two
// points in from each corner, one at the corner and one a quarter of the
// way in.
func Anchors(rows, cols int) []Cell {
	qr, qc := rows/4, cols/4
	return []Cell{
		{rows / 2, cols / 2},

		{1, 1},
		{1 + qr, 1 + qc},

		{1, cols - 2},
		{1 + qr, cols - 2 - qc},

		{rows - 2, 1},
		{rows - 2 - qr, 1 + qc},

		{rows - 2, cols - 2},
		{rows - 2 - qr, cols - 2 - qc},
	}
}

// Seed stamps p at every anchor.
func (g *Grid) Seed(p Pattern) {
	for _, a := range Anchors(g.rows, g.cols) {
		g.Stamp(p, a.Row, a.Col)
	}
}

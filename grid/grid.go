// Package grid holds the pieces that distort a regular grid: Schotter,
// Linien, Maze, Diamond and the two Moiré variants.
//
// Every generator is a pure function of the pool, the draw size and
// parameter A. Pieces that need random numbers open their own Stream on the
// pool so they never share a cursor with another piece.
package grid

const (
	// columns across for Schotter and Linien
	columns = 20
	// columns across for Maze
	mazeColumns = 25
)

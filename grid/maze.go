package grid

import (
	"math"

	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

// Maze draws a border and then, per cell, either its top or its left edge.
// Higher a means more top edges. There's no guarantee the result is
// solvable.
func Maze(pool *randompool.Pool, width, height, a float64) *geom.Scene {
	s := geom.NewScene(width, height)
	s.SegmentStyle.Width = 3

	rows := int(math.Ceil(mazeColumns * height / width))
	size := width / mazeColumns

	r := pool.Stream()
	for row := 0; row < rows; row++ {
		for col := 0; col < mazeColumns; col++ {
			random := r.Next()
			x, y := float64(col)*size, float64(row)*size

			if row == 0 {
				s.Line(x, y, x+size, y)
			} else if row == rows-1 {
				s.Line(x, y+size, x+size, y+size)
			}
			if col == 0 {
				s.Line(x, y, x, y+size)
			} else if col == mazeColumns-1 {
				s.Line(x+size, y, x+size, y+size)
			}

			if random < a/10 {
				s.Line(x, y, x+size, y)
			} else {
				s.Line(x, y, x, y+size)
			}
		}
	}
	return s
}

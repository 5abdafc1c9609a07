package grid

import (
	"math"

	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

// Linien is a mesh of horizontal lines whose vertices random walk down the
// page. The displacement is weighted by a tent over both row and column, so
// the middle of the page moves the most. The last row is nudged by at most
// half a pixel, which pulls the mesh back to a nearly straight line.
func Linien(pool *randompool.Pool, width, height, a float64) *geom.Scene {
	s := geom.NewScene(width, height)
	s.SegmentStyle.Width = 3

	rows := int(math.Floor(columns * height / width))
	if rows < 1 {
		rows = 1
	}
	rw := width / columns
	rh := height / float64(rows)

	// coords[col] is where the vertical from col starts on the current row.
	coords := make([]geom.Point, columns+1)
	for col := range coords {
		coords[col] = geom.Pt(float64(col)*rw, 0)
	}

	r := pool.Stream()
	rowPeak := float64(rows) / 2
	for row := 0; row < rows; row++ {
		rowWeight := float64(row)
		if rowWeight > rowPeak {
			rowWeight = float64(rows - row - 2)
		}
		coords[columns] = geom.Pt(rw*columns, float64(row)*rh)

		for col := 0; col < columns; col++ {
			colWeight := float64(col)
			if colWeight > columns/2 {
				colWeight = columns - colWeight - 0.5
			}
			scale := rowWeight * colWeight * a / 10
			if row == rows-1 {
				scale = 1
			}

			s.Line(coords[col].X, coords[col].Y, coords[col+1].X, coords[col+1].Y)

			next := geom.Pt(
				float64(col)*rw+(r.Next()-0.5)*scale,
				float64(row)*rh+rh+(r.Next()-0.5)*scale,
			)
			s.Line(coords[col].X, coords[col].Y, next.X, next.Y)
			coords[col] = next
		}

		// right edge
		s.Line(columns*rw, float64(row)*rh, columns*rw, float64(row+1)*rh)
	}

	coords[columns] = geom.Pt(rw*columns, rh*float64(rows))
	for col := 0; col < columns; col++ {
		s.Line(coords[col].X, coords[col].Y, coords[col+1].X, coords[col+1].Y)
	}
	return s
}

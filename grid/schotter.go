package grid

import (
	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

// Schotter is Georg Nees' "Gravel": square outlines that rotate and drift
// further the lower they sit. Each cell uses three draws, the rotation sign
// then the x and y offsets.
func Schotter(pool *randompool.Pool, width, height, a float64) *geom.Scene {
	s := geom.NewScene(width, height)

	perCol := columns * height / width
	rw := width / columns
	rh := height / perCol

	r := pool.Stream()
	for row := 0; float64(row) < perCol; row++ {
		scale := float64(row) * a / 7.5
		for col := 0; col < columns; col++ {
			x, y := float64(col)*rw, float64(row)*rh
			center := geom.Pt(x+rw/2, y+rh/2)

			angle := 0.01 * scale
			if r.Next() <= 0.5 {
				angle = -angle
			}
			offset := geom.Pt(r.Next()*scale, r.Next()*scale)

			corners := []geom.Point{
				geom.Pt(x, y),
				geom.Pt(x+rw, y),
				geom.Pt(x+rw, y+rh),
				geom.Pt(x, y+rh),
			}
			for i, c := range corners {
				corners[i] = c.Add(offset).RotateAround(center, angle)
			}
			s.Polygons = append(s.Polygons, geom.Polygon{Points: corners, Style: geom.Outline})
		}
	}
	return s
}

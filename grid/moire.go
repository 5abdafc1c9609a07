package grid

import (
	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

const (
	moireSquares = 6000
	moireSize    = 3
)

// moireLayer scatters the squares. Both layers of a Moiré piece call this
// with their own stream from index 0, so they hold the same points.
func moireLayer(r *randompool.Stream, width, height float64) *geom.Scene {
	s := geom.NewScene(width, height)
	s.Rects = make([]geom.Rect, 0, moireSquares)
	for i := 0; i < moireSquares; i++ {
		x := r.Next() * width
		y := r.Next() * height
		s.Rects = append(s.Rects, geom.Rect{X: x, Y: y, W: moireSize, H: moireSize})
	}
	return s
}

// Moire1 overlays the squares with a copy rotated by a*0.006 radians about
// the center.
func Moire1(pool *randompool.Pool, width, height, a float64) *geom.Scene {
	s := moireLayer(pool.Stream(), width, height)
	top := moireLayer(pool.Stream(), width, height)
	top.Pivot = geom.Pt(width/2, height/2)
	top.Rotate = a * 0.006
	s.Layers = append(s.Layers, top)
	return s
}

// Moire2 overlays the squares with a copy rotated by a fixed 0.03 radians
// and shifted sideways by (a-5)*2.
func Moire2(pool *randompool.Pool, width, height, a float64) *geom.Scene {
	s := moireLayer(pool.Stream(), width, height)
	top := moireLayer(pool.Stream(), width, height)
	top.Pivot = geom.Pt(width/2, height/2)
	top.Rotate = 0.03
	top.Translate = geom.Pt((a-5)*2, 0)
	s.Layers = append(s.Layers, top)
	return s
}

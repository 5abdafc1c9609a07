package curve

import (
	"math"

	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

const (
	sunRadius = 128
	sunEdges  = 256
	sunLines  = 4096
)

// Sun draws 256 short chords around a circle, none longer than a sixth of
// it, then 4096 chords across it. Parameter a slides which part of the
// pool the long chords come from.
func Sun(pool *randompool.Pool, width, height, a float64) *geom.Scene {
	s := geom.NewScene(width, height)
	s.SegmentStyle = geom.Style{Stroke: geom.RGBA(0, 0, 0, 0.3*255), Width: 0.25}

	center := geom.Pt(width/2, height/2)
	onCircle := func(rad float64) geom.Point {
		return geom.Pt(math.Cos(rad), math.Sin(rad)).Scale(sunRadius).Add(center)
	}

	r := pool.Stream()
	for line := 0; line < sunEdges; line++ {
		start := r.Next() * 2 * math.Pi
		end := start + r.Next()*math.Pi/3
		s.Segments = append(s.Segments, geom.Segment{A: onCircle(start), B: onCircle(end)})
	}

	// two draws per chord
	r = pool.StreamAt(int(math.Floor(a*1024)) * 2)
	for line := 0; line < sunLines; line++ {
		start := r.Next() * 2 * math.Pi
		end := r.Next() * 2 * math.Pi
		s.Segments = append(s.Segments, geom.Segment{A: onCircle(start), B: onCircle(end)})
	}
	return s
}

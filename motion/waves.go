// Package motion has the animations that don't build anything: circles
// riding waves and a grid of atoms being pulled out of line.
package motion

import (
	"math"

	"github.com/scottkirkwood/gart/geom"
)

const (
	waveCircles = 12
	waveRadius  = 5
)

var (
	circular     = geom.RGB(94, 215, 235)
	transverse   = geom.RGB(180, 165, 217)
	longitudinal = geom.RGB(181, 210, 75)
)

// Waves draws three rows of twelve circles. Each circle turns on its own
// small circle, a fifth of a half turn behind its left neighbor. The top row
// shows the full motion, the middle only the vertical part and the bottom
// only the horizontal part.
func Waves(width, height, elapsedMS float64) *geom.Scene {
	s := geom.NewScene(width, height)
	bg := geom.White
	s.Background = &bg

	spacing := width / waveCircles
	phase := elapsedMS / 100 / (2 * math.Pi)
	style := func(c geom.Color) geom.Style {
		return geom.Style{Fill: c, Stroke: geom.Black, Width: 1}
	}

	x := spacing/2 + waveRadius + 1
	for i := 0; i < waveCircles; i++ {
		sin, cos := math.Sincos(phase + float64(i)*math.Pi/5)
		dx := cos * spacing / 2
		dy := sin * spacing / 2

		s.Circles = append(s.Circles,
			geom.Circle{Center: geom.Pt(x+dx, height/4+dy), R: waveRadius, Style: style(circular)},
			geom.Circle{Center: geom.Pt(x, height/2+dy), R: waveRadius, Style: style(transverse)},
			geom.Circle{Center: geom.Pt(x+dx, height*3/4), R: waveRadius, Style: style(longitudinal)},
		)
		x += spacing
	}
	return s
}

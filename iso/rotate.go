package iso

import "github.com/scottkirkwood/gart/geom"

// radiansPerMS is scaled by a-4, so a below 4 turns the other way.
const radiansPerMS = 0.0005

// Rotating spins a single shape about its vertical axis.
type Rotating struct {
	shape         Shape
	width, height float64
	speed         float64
}

// NewRotating returns a spinning shape for parameter a.
func NewRotating(s Shape, width, height, a float64) *Rotating {
	return &Rotating{shape: s, width: width, height: height, speed: radiansPerMS * (a - 4)}
}

// Radians returns the angle at elapsedMS.
func (r *Rotating) Radians(elapsedMS float64) float64 {
	return elapsedMS * r.speed
}

// Frame paints the shape at elapsedMS, centered in the draw area.
func (r *Rotating) Frame(elapsedMS float64) *geom.Scene {
	placed := r.shape.Place(geom.Point{}, nil, r.Radians(elapsedMS))
	s := Paint(placed, 1, 1, r.width, r.height, nil)
	s.Translate = geom.Pt(0, (r.height-r.width)/2)
	bg := geom.White
	s.Background = &bg
	return s
}

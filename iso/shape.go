// Package iso builds small solids out of quads and paints them with an
// isometric projection, back to front.
package iso

import (
	"math"

	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

// Quad is one planar face of a solid. The path closes back to the first
// vertex.
type Quad [4]geom.Point

// Shape is a solid in object space.
type Shape []Quad

// Jitter nudges every vertex by up to Amount/20 in x and y, using three
// draws per vertex from its own stream.
type Jitter struct {
	R      *randompool.Stream
	Amount float64
}

const jitterScale = 20

func (j *Jitter) apply(p geom.Point) geom.Point {
	if j == nil || j.R == nil {
		return p
	}
	d := geom.Pt3(j.R.Next()*j.Amount/jitterScale, j.R.Next()*j.Amount/jitterScale, 0)
	if j.R.Next() > 0.5 {
		return p.Add(d)
	}
	return p.Sub(d)
}

// Place rotates the shape about the y axis, moves it to offset and jitters
// it. offset is given with y up and flipped here to match screen space.
func (s Shape) Place(offset geom.Point, j *Jitter, radians float64) Shape {
	offset.Y *= -1
	out := make(Shape, len(s))
	for i, q := range s {
		for k, p := range q {
			if radians != 0 {
				p = p.RotateXZ(radians)
			}
			out[i][k] = j.apply(p.Add(offset))
		}
	}
	return out
}

var unitCube = Shape{
	// top, ends up at the bottom after projection
	{geom.Pt3(0, 1, 0), geom.Pt3(1, 1, 0), geom.Pt3(1, 1, 1), geom.Pt3(0, 1, 1)},
	// front
	{geom.Pt3(0, 0, 0), geom.Pt3(1, 0, 0), geom.Pt3(1, 1, 0), geom.Pt3(0, 1, 0)},
	// left
	{geom.Pt3(0, 0, 0), geom.Pt3(0, 0, 1), geom.Pt3(0, 1, 1), geom.Pt3(0, 1, 0)},
	// back
	{geom.Pt3(0, 0, 1), geom.Pt3(1, 0, 1), geom.Pt3(1, 1, 1), geom.Pt3(0, 1, 1)},
	// right
	{geom.Pt3(1, 0, 0), geom.Pt3(1, 0, 1), geom.Pt3(1, 1, 1), geom.Pt3(1, 1, 0)},
	// bottom, ends up on top
	{geom.Pt3(0, 0, 0), geom.Pt3(1, 0, 0), geom.Pt3(1, 0, 1), geom.Pt3(0, 0, 1)},
}

// Cube returns a unit cube centered on the origin.
func Cube() Shape {
	half := geom.Pt3(0.5, 0.5, 0.5)
	out := make(Shape, len(unitCube))
	for i, q := range unitCube {
		for k, p := range q {
			out[i][k] = p.Sub(half)
		}
	}
	return out
}

const (
	carouselSides  = 9
	carouselWidth  = 2.0 / carouselSides
	carouselHeight = 0.25
)

// Carousel returns a ring of nine upright panels centered on the origin.
// Each panel starts where the previous one's bottom right corner ended.
func Carousel() Shape {
	side := Quad{
		geom.Pt3(0, 0, 0),
		geom.Pt3(carouselWidth, 0, 0),
		geom.Pt3(carouselWidth, carouselHeight, 0),
		geom.Pt3(0, carouselHeight, 0),
	}
	perSide := 2 * math.Pi / carouselSides

	out := make(Shape, 0, carouselSides)
	var lo, hi, corner geom.Point
	for i := 0; i < carouselSides; i++ {
		var q Quad
		for k, p := range side {
			p = p.RotateXZ(perSide * float64(i)).Add(corner)
			lo = lo.Min(p)
			hi = hi.Max(p)
			q[k] = p
		}
		corner = q[1]
		out = append(out, q)
	}

	half := hi.Sub(lo).Div(geom.Pt3(2, 2, 2))
	for i := range out {
		for k := range out[i] {
			out[i][k] = out[i][k].Sub(lo).Sub(half)
		}
	}
	return out
}

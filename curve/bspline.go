// Package curve has the pieces that trace a curve: a uniform B-spline, a
// Spirograph and the Sun's chords.
package curve

import (
	"errors"
	"fmt"

	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

// ErrOrder is returned for a spline that can't be evaluated.
var ErrOrder = errors.New("bad spline order")

// BSpline is a one dimensional B-spline over the uniform knot vector
// [0, 1, ..., n], so knot t_i is just i.
type BSpline struct {
	k      int
	points []float64
}

// NewBSpline returns a spline of order k. k must be at least 1 and there
// must be at least k control points.
func NewBSpline(k int, points []float64) (*BSpline, error) {
	if k < 1 {
		return nil, fmt.Errorf("order %d: %w", k, ErrOrder)
	}
	if len(points) < k {
		return nil, fmt.Errorf("order %d needs %d control points, got %d: %w", k, k, len(points), ErrOrder)
	}
	p := make([]float64, len(points))
	copy(p, points)
	return &BSpline{k: k, points: p}, nil
}

// N is the Cox-de Boor basis function.
//
//	N(i,1,t) = 1 if i <= t <= i+1, else 0
//	N(i,k,t) = N(i,k-1,t)(t-i)/(k-1) + N(i+1,k-1,t)(i+k-t)/(k-1)
//
// With uniform knots both spans in the denominators are k-1, which is never
// zero for k >= 2.
func N(i, k int, t float64) float64 {
	ti := float64(i)
	if k <= 1 {
		if t >= ti && t <= ti+1 {
			return 1
		}
		return 0
	}
	span := float64(k - 1)
	return N(i, k-1, t)*(t-ti)/span + N(i+1, k-1, t)*(ti+float64(k)-t)/span
}

// At evaluates the spline at t.
func (b *BSpline) At(t float64) float64 {
	sum := 0.0
	for i, p := range b.points {
		sum += N(i, b.k, t) * p
	}
	return sum
}

// Width is the largest control point index, the end of the useful range
// of t.
func (b *BSpline) Width() float64 {
	return float64(len(b.points) - 1)
}

const (
	splineOrder   = 3
	splinePoints  = 30
	splineSpacing = 8
	splineSamples = 1000
)

// ZigZag returns the control points of the B-spline piece: i*8 with every
// odd one negated. Each point is nudged by up to a*4 either way with a
// draw from r; a of 0 leaves the zigzag untouched.
func ZigZag(r *randompool.Stream, a float64) []float64 {
	p := make([]float64, splinePoints)
	for i := range p {
		x := float64(i * splineSpacing)
		if i%2 == 1 {
			x = -x
		}
		p[i] = x + (r.Next()-0.5)*a*splineSpacing
	}
	return p
}

// Spline samples the zigzag spline a thousand times across the page and
// draws each sample as a dot about the middle line.
func Spline(pool *randompool.Pool, width, height, a float64) (*geom.Scene, error) {
	b, err := NewBSpline(splineOrder, ZigZag(pool.Stream(), a))
	if err != nil {
		return nil, err
	}
	s := geom.NewScene(width, height)
	s.RectStyle = geom.Solid(geom.RGBA(0, 0, 0, 0.3*255))
	middle := height / 2
	for i := 0; i < splineSamples; i++ {
		f := float64(i) / splineSamples
		s.Rects = append(s.Rects, geom.Rect{X: f * width, Y: middle + b.At(f*b.Width()), W: 1, H: 1})
	}
	return s, nil
}

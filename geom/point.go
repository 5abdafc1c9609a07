// Package geom has the small value types the generators build scenes from:
// points, colors, gradients, faces and the scene graph handed to a Painter.
package geom

import "math"

const epsilon = 0.0000001

// Point is a 2D or 3D point. 2D pieces leave Z at zero.
type Point struct {
	X, Y, Z float64
}

// Pt returns a 2D point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pt3 returns a 3D point.
func Pt3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (p Point) combine(o Point, fn func(a, b float64) float64) Point {
	return Point{fn(p.X, o.X), fn(p.Y, o.Y), fn(p.Z, o.Z)}
}

// Add returns p+o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Sub returns p-o.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// Mul multiplies componentwise.
func (p Point) Mul(o Point) Point {
	return Point{p.X * o.X, p.Y * o.Y, p.Z * o.Z}
}

// Div divides componentwise.
func (p Point) Div(o Point) Point {
	return Point{p.X / o.X, p.Y / o.Y, p.Z / o.Z}
}

// Min returns the componentwise minimum.
func (p Point) Min(o Point) Point {
	return p.combine(o, math.Min)
}

// Max returns the componentwise maximum.
func (p Point) Max(o Point) Point {
	return p.combine(o, math.Max)
}

// Scale multiplies every component by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Map applies fn to every dimension.
func (p Point) Map(fn func(float64) float64) Point {
	return Point{fn(p.X), fn(p.Y), fn(p.Z)}
}

func rotate(a, b, radians float64) (float64, float64) {
	sin, cos := math.Sincos(radians)
	return a*cos - b*sin, a*sin + b*cos
}

// RotateXY rotates in the x-y plane.
func (p Point) RotateXY(radians float64) Point {
	p.X, p.Y = rotate(p.X, p.Y, radians)
	return p
}

// RotateXZ rotates in the x-z plane.
func (p Point) RotateXZ(radians float64) Point {
	p.X, p.Z = rotate(p.X, p.Z, radians)
	return p
}

// RotateYZ rotates in the y-z plane.
func (p Point) RotateYZ(radians float64) Point {
	p.Y, p.Z = rotate(p.Y, p.Z, radians)
	return p
}

// RotateAround rotates a 2D point around pivot.
func (p Point) RotateAround(pivot Point, radians float64) Point {
	return p.Sub(pivot).RotateXY(radians).Add(pivot)
}

// XY returns the first two components.
func (p Point) XY() (float64, float64) {
	return p.X, p.Y
}

// Equal reports whether both points are the same within a small tolerance.
func (p Point) Equal(o Point) bool {
	return AlmostEqual(p.X, o.X) && AlmostEqual(p.Y, o.Y) && AlmostEqual(p.Z, o.Z)
}

// AlmostEqual compares two floats with a fixed tolerance of 1e-7.
func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

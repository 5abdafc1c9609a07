// Package terrain generates the Perlin noise landscape: a height field
// colored in bands from snow down to water, with translucent cloud layers
// floating above it, flattened into a triangle list for a GL surface.
package terrain

import (
	"math"

	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

const (
	// gridCells * gridSize should be 1
	gridCells = 5
	gridSize  = 0.2
	// seeds are spread over this many pool indexes
	seedSpread = 9999
)

// halfRange is the largest magnitude 2D Perlin noise can reach with unit
// gradients.
var halfRange = math.Sqrt2 / 2

// Noise is a square field of Perlin samples remapped to [0,1].
type Noise struct {
	gradients [gridCells + 1][gridCells + 1]geom.Point
	samples   [][]float64
}

// NewNoise samples an n x n field. seed in [0,1) picks where in the pool the
// gradients are read from.
func NewNoise(pool *randompool.Pool, n int, seed float64) *Noise {
	p := &Noise{}
	offset := int(math.Floor(seed * seedSpread))
	for i := range p.gradients {
		for j := range p.gradients[i] {
			angle := pool.Get(i*gridCells+j+offset) * math.Pi * 2
			sin, cos := math.Sincos(angle)
			p.gradients[i][j] = geom.Pt(cos, sin)
		}
	}

	p.samples = make([][]float64, n)
	for row := range p.samples {
		p.samples[row] = make([]float64, n)
		for col := range p.samples[row] {
			s := p.At(float64(row)/float64(n), float64(col)/float64(n))
			p.samples[row][col] = (s + halfRange) / (2 * halfRange)
		}
	}
	return p
}

// Sample returns the remapped sample at row, col.
func (p *Noise) Sample(row, col int) float64 {
	return p.samples[row][col]
}

// Size returns the number of samples per row.
func (p *Noise) Size() int {
	return len(p.samples)
}

func fade(x float64) float64 {
	return 3*x*x - 2*x*x*x
}

func lerp(a, b, w float64) float64 {
	return (1-w)*a + w*b
}

func dot(dx, dy float64, g geom.Point) float64 {
	return dx*g.X + dy*g.Y
}

// At returns raw noise at x, y in [0,1), roughly in [-√2/2, √2/2].
func (p *Noise) At(x, y float64) float64 {
	x /= gridSize
	y /= gridSize

	x0 := math.Floor(x)
	y0 := math.Floor(y)
	x1, y1 := x0+1, y0+1
	ix0, iy0 := int(x0), int(y0)
	ix1, iy1 := ix0+1, iy0+1

	wx := fade(x - x0)
	wy := fade(y - y0)

	top := lerp(
		dot(x-x0, y-y0, p.gradients[iy0][ix0]),
		dot(x-x1, y-y0, p.gradients[iy0][ix1]),
		wx)
	bottom := lerp(
		dot(x-x0, y-y1, p.gradients[iy1][ix0]),
		dot(x-x1, y-y1, p.gradients[iy1][ix1]),
		wx)
	return lerp(top, bottom, wy)
}

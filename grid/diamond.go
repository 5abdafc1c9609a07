package grid

import (
	"math"

	"github.com/scottkirkwood/gart/geom"
)

const diamondScale = 200

// Diamond connects sin(i) on the x axis to sin(j) on the y axis for every
// pair i, j below 2a+2. No randomness, the pattern comes from sampling sin
// at whole radians.
func Diamond(width, height, a float64) *geom.Scene {
	s := geom.NewScene(width, height)
	cx, cy := width/2, height/2

	n := 2*a + 2
	for i := 0.0; i < n; i++ {
		for j := 0.0; j < n; j++ {
			s.Line(cx+math.Sin(i)*diamondScale, cy, cx, cy+math.Sin(j)*diamondScale)
		}
	}
	return s
}

package terrain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/scottkirkwood/gart/geom"
)

const (
	// radians per ms of map rotation
	spinRate   = 0.0002
	depthRange = 400
	mapFill    = 0.9

	cloudCycleMS = 15000
	cloudEdge    = 0.3
)

func fmtPoint(p geom.Point) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", p.X, p.Y, p.Z)
}

// projection maps pixels to clip space with y down.
func projection(width, height, depth float32) mgl32.Mat4 {
	return mgl32.Mat4{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, 2 / depth, 0,
		-1, 1, 0, 1,
	}
}

// Spin returns the map's rotation about the vertical axis at elapsedMS.
func Spin(elapsedMS float64) float64 {
	return elapsedMS * spinRate
}

// ViewMatrix tilts the unit map 45 degrees towards the viewer, spins it
// about its own center and scales it to 90% of the height, centered on a
// width x height surface.
func ViewMatrix(width, height float64, min, max geom.Point, radians float64) mgl32.Mat4 {
	mapSize := height * mapFill
	xOff := (width - mapSize) / 2
	yOff := mapSize * (1 - max.Y - min.Y) / 2
	yCenter := float32(-min.Y - (max.Y-min.Y)/2)

	m := projection(float32(width), float32(height), depthRange)
	m = m.Mul4(mgl32.Translate3D(float32(xOff), float32(yOff), 0))
	m = m.Mul4(mgl32.Scale3D(float32(mapSize), float32(mapSize), 0.1))
	m = m.Mul4(mgl32.Translate3D(0.5, -yCenter, 0.5))
	m = m.Mul4(mgl32.HomogRotate3DX(math.Pi / 4))
	m = m.Mul4(mgl32.HomogRotate3DY(float32(radians)))
	m = m.Mul4(mgl32.HomogRotate3DZ(0))
	return m.Mul4(mgl32.Translate3D(-0.5, yCenter, -0.5))
}

// CloudShift is how far the clouds have drifted across the map at
// elapsedMS, in [0,1). They go round once every 15 seconds.
func CloudShift(elapsedMS float64) float64 {
	return math.Mod(elapsedMS, cloudCycleMS) / cloudCycleMS
}

// ShadeClouds moves every translucent vertex along x by shift, wrapping
// past the far edge, and fades it to transparent white near either edge.
// Opaque vertices are copied as is. The inputs are not modified.
func ShadeClouds(vertices []float32, colors []uint8, shift float64) ([]float32, []uint8) {
	vs := make([]float32, len(vertices))
	copy(vs, vertices)
	cs := make([]uint8, len(colors))
	copy(cs, colors)

	for i := 0; i*4+3 < len(cs) && i*3+2 < len(vs); i++ {
		if cs[i*4+3] == 255 {
			continue
		}
		x := float64(vs[i*3]) + shift
		if x > 1 {
			x--
		}
		vs[i*3] = float32(x)

		w := 1.0
		if x < cloudEdge {
			w = x / cloudEdge
		} else if x > 1-cloudEdge {
			w = 1 - (x-(1-cloudEdge))/cloudEdge
		}
		w = math.Max(0, math.Min(1, w))
		for k := 0; k < 3; k++ {
			cs[i*4+k] = uint8(math.Round(255*(1-w) + float64(cs[i*4+k])*w))
		}
		cs[i*4+3] = uint8(math.Round(float64(cs[i*4+3]) * w))
	}
	return vs, cs
}

// Frame is one rendered frame of the landscape.
type Frame struct {
	Vertices []float32
	Colors   []uint8
	Matrix   mgl32.Mat4
}

// At returns the frame of mesh m at elapsedMS for a width x height surface.
func At(m *geom.Mesh, width, height, elapsedMS float64) Frame {
	vs, cs := ShadeClouds(m.Vertices, m.Colors, CloudShift(elapsedMS))
	return Frame{
		Vertices: vs,
		Colors:   cs,
		Matrix:   ViewMatrix(width, height, m.Min, m.Max, Spin(elapsedMS)),
	}
}

package iso

import (
	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

// Blocks is the number of cubes along each edge of the iso pieces.
const Blocks = 10

// Heights builds the column height map, depth (back to front) by column
// (right to left). A column starts at the height of the one behind it,
// drops by one with probability col/n and is never taller than the column
// before it.
func Heights(r *randompool.Stream, n int) [][]int {
	h := make([][]int, n)
	for row := range h {
		h[row] = make([]int, n)
		for col := range h[row] {
			prev := n
			if row > 0 {
				prev = h[row-1][col]
			}
			h[row][col] = prev
			if r.Next() < float64(col)/float64(n) {
				h[row][col]--
			}
			if col > 0 && h[row][col-1] < h[row][col] {
				h[row][col] = h[row][col-1]
			}
		}
	}
	return h
}

// Occluded reports whether the cube at (depth, i, height) is hidden. It
// takes a taller column both in front and to the right; either alone still
// leaves part of the cube showing.
func Occluded(h [][]int, depth, i, height int) bool {
	inFront := depth+1 < len(h) && h[depth+1][i] > height+1
	toTheRight := i+1 < len(h[depth]) && h[depth][i+1] > height+1
	return inFront && toTheRight
}

// Visible reports whether a cube is built at all.
func Visible(h [][]int, depth, i, height int) bool {
	return !Occluded(h, depth, i, height) && height <= h[depth][i]
}

// Stack returns the visible cubes of the height map as one shape.
func Stack(h [][]int, j *Jitter) Shape {
	var out Shape
	cube := Cube()
	for height := 0; height < len(h); height++ {
		for depth := range h {
			for i := range h[depth] {
				if Visible(h, depth, i, height) {
					out = append(out, cube.Place(geom.Pt3(float64(i), float64(height), float64(depth)), j, 0)...)
				}
			}
		}
	}
	return out
}

// jitterStart keeps the jitter draws clear of the height map's.
const jitterStart = Blocks * Blocks

// IsoCube is the white stack of cubes. Every vertex is jittered by a-5.
func IsoCube(pool *randompool.Pool, width, height, a float64) *geom.Scene {
	h := Heights(pool.Stream(), Blocks)
	j := &Jitter{R: pool.StreamAt(jitterStart), Amount: a - 5}
	return Paint(Stack(h, j), Blocks, Blocks, width, height, nil)
}

// IsoCubeColor is the stack without jitter, colored by a palette picked
// by a.
func IsoCubeColor(pool *randompool.Pool, width, height, a float64) *geom.Scene {
	h := Heights(pool.Stream(), Blocks)
	return Paint(Stack(h, nil), Blocks, Blocks, width, height, Palette(a))
}

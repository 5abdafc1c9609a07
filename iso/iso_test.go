package iso

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

func TestOccluded(t *testing.T) {
	tests := []struct {
		name                string
		h                   [][]int
		depth, i, height    int
		occluded, isVisible bool
	}{
		{"front and right taller", [][]int{{2, 2}, {2, 2}}, 0, 0, 0, true, false},
		{"front and right level", [][]int{{2, 2}, {2, 2}}, 0, 0, 1, false, true},
		{"only front taller", [][]int{{2, 1}, {2, 2}}, 0, 0, 0, false, true},
		{"only right taller", [][]int{{2, 2}, {1, 2}}, 0, 0, 0, false, true},
		{"front row never hidden", [][]int{{2, 2}, {2, 2}}, 1, 0, 0, false, true},
		{"right column never hidden", [][]int{{2, 2}, {2, 2}}, 0, 1, 0, false, true},
		{"above the column", [][]int{{1, 2}, {2, 2}}, 0, 0, 2, false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.occluded, Occluded(tt.h, tt.depth, tt.i, tt.height), tt.name)
		assert.Equal(t, tt.isVisible, Visible(tt.h, tt.depth, tt.i, tt.height), tt.name)
	}
}

func TestHeights(t *testing.T) {
	h := Heights(randompool.New("heights").Stream(), Blocks)
	require.Len(t, h, Blocks)
	for row := range h {
		require.Len(t, h[row], Blocks)
		assert.Equal(t, Blocks, h[row][0])
		for col := range h[row] {
			if col > 0 {
				assert.LessOrEqual(t, h[row][col], h[row][col-1])
			}
			if row > 0 {
				assert.LessOrEqual(t, h[row][col], h[row-1][col])
			}
			assert.GreaterOrEqual(t, h[row][col], 0)
		}
	}
}

func TestCube(t *testing.T) {
	c := Cube()
	require.Len(t, c, 6)
	for _, q := range c {
		for _, p := range q {
			for _, v := range []float64{p.X, p.Y, p.Z} {
				assert.Equal(t, 0.5, math.Abs(v))
			}
		}
	}
}

func TestCarousel(t *testing.T) {
	c := Carousel()
	require.Len(t, c, 9)

	lo := geom.Pt3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := geom.Pt3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, q := range c {
		for _, p := range q {
			lo = lo.Min(p)
			hi = hi.Max(p)
		}
	}
	assert.True(t, lo.Add(hi).Equal(geom.Point{}), "not centered: %v %v", lo, hi)
	assert.InDelta(t, 0.25, hi.Y-lo.Y, 1e-9)

	// Nine panels turning 40 degrees each close the ring.
	assert.True(t, c[8][1].Equal(c[0][0]), "%v != %v", c[8][1], c[0][0])
}

func TestPlace(t *testing.T) {
	c := Cube().Place(geom.Pt3(2, 3, 4), nil, 0)
	assert.True(t, c[0][0].Equal(geom.Pt3(1.5, -2.5, 3.5)), "%v", c[0][0])

	turned := Cube().Place(geom.Point{}, nil, math.Pi/2)
	assert.True(t, turned[1][0].Equal(geom.Pt3(0.5, -0.5, -0.5)), "%v", turned[1][0])

	still := Cube().Place(geom.Point{}, &Jitter{R: randompool.New("j").Stream(), Amount: 0}, 0)
	assert.Equal(t, Cube(), still)

	pool := randompool.New("j")
	moved := Cube().Place(geom.Point{}, &Jitter{R: pool.Stream(), Amount: 5}, 0)
	for i := range moved {
		for k := range moved[i] {
			d := moved[i][k].Sub(Cube()[i][k])
			assert.LessOrEqual(t, math.Abs(d.X), 0.25)
			assert.LessOrEqual(t, math.Abs(d.Y), 0.25)
			assert.Equal(t, 0.0, d.Z)
		}
	}
}

func TestToIso(t *testing.T) {
	p := ToIso(geom.Pt3(1, 1, 1))
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 4, p.Y, 1e-12)
	assert.InDelta(t, math.Sqrt2, p.Z, 1e-12)
}

func TestProjectSorted(t *testing.T) {
	faces := Project(Cube(), 1, 1, 200)
	require.Len(t, faces, 6)
	for i := 1; i < len(faces); i++ {
		assert.LessOrEqual(t, faces[i-1].Center.Z, faces[i].Center.Z)
	}
	// the origin lands in the middle of the draw width
	o := ToScreen(ToIso(geom.Point{}), 1, Scale(1, 1, 200))
	assert.InDelta(t, 100, o.X, 1e-9)
}

func TestPalette(t *testing.T) {
	assert.Equal(t, palettes[0], Palette(0))
	assert.Equal(t, palettes[1], Palette(1.9))
	assert.Equal(t, palettes[5], Palette(10))
	assert.Equal(t, palettes[5], Palette(12))
	assert.Equal(t, palettes[0], Palette(-1))
	assert.Equal(t, geom.RGB(0x61, 0x9b, 0x3d), Palette(0)[0])
}

func TestPaint(t *testing.T) {
	s := Paint(Cube(), 1, 1, 100, 100, nil)
	require.Len(t, s.Polygons, 6)
	for _, p := range s.Polygons {
		assert.Equal(t, geom.White, p.Style.Fill)
		assert.Len(t, p.Points, 4)
	}

	pal := Palette(3)
	s = Paint(Cube(), 1, 1, 100, 100, pal)
	for i, p := range s.Polygons {
		assert.Equal(t, pal[i%len(pal)], p.Style.Fill)
	}
}

func TestIsoCube(t *testing.T) {
	pool := randompool.New("iso")
	a := IsoCube(pool, 500, 500, 7)
	b := IsoCube(randompool.New("iso"), 500, 500, 7)
	assert.Equal(t, a.Polygons, b.Polygons)

	h := Heights(pool.Stream(), Blocks)
	visible := 0
	for height := 0; height < Blocks; height++ {
		for depth := 0; depth < Blocks; depth++ {
			for i := 0; i < Blocks; i++ {
				if Visible(h, depth, i, height) {
					visible++
				}
			}
		}
	}
	assert.Equal(t, visible*6, len(a.Polygons))

	c := IsoCubeColor(pool, 500, 500, 7)
	assert.Len(t, c.Polygons, visible*6)
}

func TestRotating(t *testing.T) {
	r := NewRotating(Carousel(), 400, 600, 6)
	assert.InDelta(t, 1.0, r.Radians(1000), 1e-12)

	s := r.Frame(0)
	assert.Len(t, s.Polygons, 9)
	assert.Equal(t, geom.Pt(0, 100), s.Translate)
	require.NotNil(t, s.Background)

	still := NewRotating(Cube(), 400, 400, 4)
	assert.Equal(t, still.Frame(0).Polygons, still.Frame(5000).Polygons)
}

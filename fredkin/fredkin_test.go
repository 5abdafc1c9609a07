package fredkin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPantsUnstepped(t *testing.T) {
	g := New(11, 11)
	g.Stamp(Pants, 5, 5)
	assert.Equal(t, 7, g.LiveCount())
	assert.False(t, g.Alive(5, 5))
	assert.False(t, g.Alive(6, 5))
	assert.True(t, g.Alive(4, 5))

	g.Run(0)
	assert.Equal(t, 7, g.LiveCount())
}

func TestSingleCell(t *testing.T) {
	g := New(9, 9)
	g.Set(4, 4)

	g.Step()
	assert.ElementsMatch(t, []Cell{{3, 4}, {5, 4}, {4, 3}, {4, 5}}, g.Live())

	g.Step()
	assert.ElementsMatch(t, []Cell{{2, 4}, {6, 4}, {4, 2}, {4, 6}}, g.Live())
}

func TestEdgesDoNotWrap(t *testing.T) {
	g := New(5, 5)
	g.Set(0, 0)
	g.Step()
	assert.ElementsMatch(t, []Cell{{1, 0}, {0, 1}}, g.Live())
	assert.False(t, g.Alive(4, 0))
	assert.False(t, g.Alive(0, 4))
	assert.False(t, g.Alive(-1, 0))
}

func TestStampClipped(t *testing.T) {
	g := New(3, 3)
	g.Stamp(Pants, 0, 0)
	// only (0,1), (1,1) land on the board
	assert.ElementsMatch(t, []Cell{{0, 1}, {1, 1}}, g.Live())
}

// The rule is linear over GF(2): running a union of disjoint patterns is the
// xor of running each alone.
func TestSuperposition(t *testing.T) {
	a := New(41, 41)
	a.Stamp(Pants, 12, 12)
	b := New(41, 41)
	b.Stamp(Pentomino, 28, 25)
	both := New(41, 41)
	both.Stamp(Pants, 12, 12)
	both.Stamp(Pentomino, 28, 25)

	for gen := 0; gen < 12; gen++ {
		a.Step()
		b.Step()
		both.Step()
		for row := 0; row < 41; row++ {
			for col := 0; col < 41; col++ {
				want := a.Alive(row, col) != b.Alive(row, col)
				require.Equal(t, want, both.Alive(row, col), "gen %d cell %d,%d", gen, row, col)
			}
		}
	}
}

func TestSeededBoardIsSymmetric(t *testing.T) {
	for _, p := range []Pattern{Pants, Pentomino} {
		g := New(Rows, Columns(100, 100))
		g.Seed(p)
		g.Run(Generations(3))
		rows, cols := g.Size()
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				require.Equal(t, g.Alive(row, col), g.Alive(row, cols-1-col), "cell %d,%d", row, col)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	a := Board(Pentomino, 800, 1000, 4)
	b := Board(Pentomino, 800, 1000, 4)
	assert.Equal(t, a.Live(), b.Live())
	assert.Equal(t, a.LiveCount(), b.LiveCount())
}

func TestColumns(t *testing.T) {
	tests := []struct {
		w, h float64
		want int
	}{
		{100, 100, 107},
		{800, 1000, 85},
		{1000, 800, 133},
		{1000, 900, 117},
		{0, 0, 107},
		{1, 1000, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Columns(tt.w, tt.h), "%vx%v", tt.w, tt.h)
	}
}

func TestGenerations(t *testing.T) {
	assert.Equal(t, 5, Generations(0))
	assert.Equal(t, 55, Generations(10))
	assert.Equal(t, 8, Generations(0.5))
}

func TestScene(t *testing.T) {
	g := New(Rows, 107)
	g.Set(0, 0)
	g.Set(2, 3)
	s := g.Scene(214, 214)
	require.Len(t, s.Rects, 2)
	assert.Equal(t, 0.5, s.Rects[0].X)
	assert.Equal(t, 6.5, s.Rects[1].X)
	assert.Equal(t, 4.5, s.Rects[1].Y)
	assert.Equal(t, 5.0, s.Rects[1].W)
}

func TestLive(t *testing.T) {
	l := NewLive(Pants, 100, 100, 0)
	assert.Equal(t, 5, l.Generation())

	l.Frame(0)
	assert.Equal(t, 5, l.Generation())
	l.Frame(250)
	assert.Equal(t, 7, l.Generation())
	l.Frame(100)
	assert.Equal(t, 7, l.Generation())

	want := Board(Pants, 100, 100, 0)
	want.Run(2)
	assert.Equal(t, len(want.Live()), l.Frame(250).Count())
}

package fredkin

import (
	"math"

	"github.com/scottkirkwood/gart/geom"
)

const (
	// Rows is odd so the seeded board is symmetric.
	Rows       = 107
	squareSize = 5
	// a new generation every stepMS in the live piece
	stepMS = 100
)

// Columns derives the column count from the draw size, forced odd.
func Columns(width, height float64) int {
	if width <= 0 || height <= 0 {
		return Rows
	}
	cols := int(math.Floor(Rows / (height / width)))
	if cols%2 == 0 {
		cols--
	}
	if cols < 3 {
		cols = 3
	}
	return cols
}

// Generations is how many steps the static pieces run for parameter a.
func Generations(a float64) int {
	return int(math.Ceil(a*5 + 5))
}

// Board builds a seeded board sized for the draw area and runs it for
// parameter a.
func Board(p Pattern, width, height, a float64) *Grid {
	g := New(Rows, Columns(width, height))
	g.Seed(p)
	g.Run(Generations(a))
	return g
}

// Scene paints each live cell as a small filled square.
func (g *Grid) Scene(width, height float64) *geom.Scene {
	s := geom.NewScene(width, height)
	scale := width / float64(g.cols)
	for _, c := range g.Live() {
		s.Rects = append(s.Rects, geom.Rect{
			X: float64(c.Col)*scale + 0.5,
			Y: float64(c.Row)*scale + 0.5,
			W: squareSize,
			H: squareSize,
		})
	}
	return s
}

// Fredkin1 is the board seeded with pants.
func Fredkin1(width, height, a float64) *geom.Scene {
	return Board(Pants, width, height, a).Scene(width, height)
}

// Fredkin2 is the board seeded with pentominoes.
func Fredkin2(width, height, a float64) *geom.Scene {
	return Board(Pentomino, width, height, a).Scene(width, height)
}

// Live keeps a board running after the initial generations, one
// generation per 100ms of elapsed time.
type Live struct {
	g             *Grid
	width, height float64
	start, gen    int
}

// NewLive returns a continuation of Board(p, width, height, a).
func NewLive(p Pattern, width, height, a float64) *Live {
	g := Board(p, width, height, a)
	n := Generations(a)
	return &Live{g: g, width: width, height: height, start: n, gen: n}
}

// Generation returns the generation currently on the board.
func (l *Live) Generation() int {
	return l.gen
}

// Frame catches the board up to elapsedMS and returns it. Time never runs
// backwards for a Live board; an earlier elapsedMS returns the current
// board unchanged.
func (l *Live) Frame(elapsedMS float64) *geom.Scene {
	if elapsedMS > 0 {
		target := l.start + int(elapsedMS/stepMS)
		for l.gen < target {
			l.g.Step()
			l.gen++
		}
	}
	return l.g.Scene(l.width, l.height)
}

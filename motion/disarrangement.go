package motion

import (
	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

const (
	atomsSide = 40
	// the row and column that slide
	movingLine = 10
	tickMS     = 300
)

type atom struct {
	x, y  int
	color geom.Color
}

// Disarrangement is a 40x40 grid of grey atoms with one dark row and one
// light column. Every 300ms the atoms on column 10 move down one and the
// atoms on row 10 move right one, wrapping at the edges. Which of the two
// moves first alternates, so the atom at the crossing gets carried off in
// both directions.
type Disarrangement struct {
	atoms         []atom
	width, height float64
	ticks         int
}

// NewDisarrangement lays the atoms out with greys from the pool.
func NewDisarrangement(pool *randompool.Pool, width, height float64) *Disarrangement {
	d := &Disarrangement{width: width, height: height}
	r := pool.Stream()
	for row := 0; row < atomsSide; row++ {
		for col := 0; col < atomsSide; col++ {
			grey := 150 + r.Next()*105
			if row == movingLine {
				grey = 10
			}
			if col == movingLine {
				grey = 240
			}
			d.atoms = append(d.atoms, atom{x: col, y: row, color: geom.RGB(grey, grey, grey)})
		}
	}
	return d
}

// Ticks returns the number of moves made so far.
func (d *Disarrangement) Ticks() int {
	return d.ticks
}

func (d *Disarrangement) step() {
	xFirst := d.ticks%2 == 0
	for i := range d.atoms {
		a := &d.atoms[i]
		if xFirst {
			if a.x == movingLine {
				a.y = (a.y + 1) % atomsSide
			}
			if a.y == movingLine {
				a.x = (a.x + 1) % atomsSide
			}
		} else {
			if a.y == movingLine {
				a.x = (a.x + 1) % atomsSide
			}
			if a.x == movingLine {
				a.y = (a.y + 1) % atomsSide
			}
		}
	}
	d.ticks++
}

// Frame catches up with elapsedMS and paints the atoms. The first move
// happens at 300ms.
func (d *Disarrangement) Frame(elapsedMS float64) *geom.Scene {
	for target := int(elapsedMS / tickMS); d.ticks < target; {
		d.step()
	}

	s := geom.NewScene(d.width, d.height)
	bg := geom.White
	s.Background = &bg
	size := d.width / atomsSide
	for _, a := range d.atoms {
		x := float64(a.x)*size + size/2
		y := float64(a.y)*size + size/2
		s.Polygons = append(s.Polygons, geom.Polygon{
			Points: []geom.Point{geom.Pt(x, y), geom.Pt(x+size, y), geom.Pt(x+size, y+size), geom.Pt(x, y+size)},
			Style:  geom.Solid(a.color),
		})
	}
	return s
}

package iso

import (
	"math"
	"sort"

	"github.com/scottkirkwood/gart/geom"
)

var (
	sqrt2 = math.Sqrt2
	sqrt3 = math.Sqrt(3)
)

// ToIso applies the isometric transform. X and Y are the screen axes, Z is
// the depth the faces are sorted on.
func ToIso(p geom.Point) geom.Point {
	return geom.Pt3(
		sqrt3*p.X-sqrt3*p.Z,
		p.X+2*p.Y+p.Z,
		sqrt2*p.X-sqrt2*p.Y+sqrt2*p.Z,
	)
}

// Scale is the screen units per iso unit that fits a horizontal x depth
// block into width.
func Scale(horizontal, depth int, width float64) float64 {
	return width / (float64(horizontal+depth) * sqrt3)
}

// ToScreen shifts an iso point so the block starts at 0 and scales it.
func ToScreen(p geom.Point, depth int, scale float64) geom.Point {
	shift := sqrt3 * float64(depth)
	return p.Map(func(c float64) float64 {
		return (c + shift) * scale
	})
}

// Projected is a quad in screen space with the mean of its iso vertices.
type Projected struct {
	Quad   Quad
	Center geom.Point
}

// Project transforms every quad and sorts them far to near.
func Project(s Shape, horizontal, depth int, width float64) []Projected {
	scale := Scale(horizontal, depth, width)
	out := make([]Projected, len(s))
	for i, q := range s {
		var sum geom.Point
		for k, p := range q {
			p = ToIso(p)
			sum = sum.Add(p)
			out[i].Quad[k] = ToScreen(p, depth, scale)
		}
		out[i].Center = sum.Scale(1.0 / float64(len(q)))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Center.Z < out[j].Center.Z
	})
	return out
}

// generated with https://colourco.de/
var palettes = [][]geom.Color{
	hexes("#619b3d", "#3e9eaa", "#8a3eba", "#c55243"),
	hexes("#c6a36c", "#75cd7f", "#7e9fd4", "#da88d1"),
	hexes("#42b87a", "#42bda1", "#44b7c0", "#4794c2", "#4972c5"),
	hexes("#35885c", "#373997", "#a63772", "#b6b238"),
	hexes("#cd7376", "#d08e76", "#d2ab79", "#d4c87c", "#c8d67f"),
	hexes("#3e9e55", "#3f5cad", "#bd3f9f", "#c6a445"),
}

func hexes(s ...string) []geom.Color {
	out := make([]geom.Color, len(s))
	for i, h := range s {
		out[i] = geom.MustHex(h)
	}
	return out
}

// Palette picks one of the color palettes by parameter a.
func Palette(a float64) []geom.Color {
	i := int(math.Floor(a / 11 * float64(len(palettes))))
	if i < 0 {
		i = 0
	}
	if i >= len(palettes) {
		i = len(palettes) - 1
	}
	return palettes[i]
}

// Paint projects s and fills the faces back to front, cycling through the
// palette. A nil palette paints every face white.
func Paint(s Shape, horizontal, depth int, width, height float64, palette []geom.Color) *geom.Scene {
	if len(palette) == 0 {
		palette = []geom.Color{geom.White}
	}
	scene := geom.NewScene(width, height)
	for i, f := range Project(s, horizontal, depth, width) {
		scene.Polygons = append(scene.Polygons, geom.Polygon{
			Points: f.Quad[:],
			Style:  geom.Style{Fill: palette[i%len(palette)], Stroke: geom.Black, Width: 1},
		})
	}
	return scene
}

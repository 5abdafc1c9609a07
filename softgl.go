package gart

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrBuffer is returned for vertex and color buffers that don't line up.
var ErrBuffer = errors.New("bad buffer")

// GLSurface is the 3D half of the rendering contract: upload a vertex and
// color buffer pair, then draw a triangle list under a projection matrix.
type GLSurface interface {
	Upload(vertices []float32, colors []uint8) error
	DrawTriangles(m mgl32.Mat4, count int) error
	Clear(col color.Color)
}

// polygonPainter is the subset of a 2D surface SoftGL paints through.
type polygonPainter interface {
	SetFillColor(col color.Color)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Close()
	Fill()
	Clear(col color.Color)
}

// SoftGL rasterizes triangle lists onto a 2D surface. There is no depth
// buffer and no culling; triangles are painted in buffer order, so callers
// upload them back to front.
type SoftGL struct {
	p             polygonPainter
	width, height float64

	vertices []float32
	colors   []uint8
}

// NewSoftGL returns a GL surface painting onto p, whose viewport is
// width x height.
func NewSoftGL(p polygonPainter, width, height float64) *SoftGL {
	return &SoftGL{p: p, width: width, height: height}
}

// Upload replaces the buffers. Three floats and four bytes per vertex.
func (g *SoftGL) Upload(vertices []float32, colors []uint8) error {
	if len(vertices)%3 != 0 {
		return fmt.Errorf("%d floats is not a multiple of 3: %w", len(vertices), ErrBuffer)
	}
	if len(colors) != len(vertices)/3*4 {
		return fmt.Errorf("%d color bytes for %d vertices: %w", len(colors), len(vertices)/3, ErrBuffer)
	}
	g.vertices = vertices
	g.colors = colors
	return nil
}

// Clear paints the viewport.
func (g *SoftGL) Clear(col color.Color) {
	g.p.Clear(col)
}

// toScreen maps a vertex through m into viewport pixels.
func (g *SoftGL) toScreen(m mgl32.Mat4, i int) (float64, float64) {
	v := m.Mul4x1(mgl32.Vec4{g.vertices[i*3], g.vertices[i*3+1], g.vertices[i*3+2], 1})
	w := v[3]
	if w == 0 {
		w = 1
	}
	x := float64(v[0] / w)
	y := float64(v[1] / w)
	return (x + 1) / 2 * g.width, (1 - y) / 2 * g.height
}

// DrawTriangles paints the first count vertices as triangles. Each triangle
// takes the color of its first vertex.
func (g *SoftGL) DrawTriangles(m mgl32.Mat4, count int) error {
	if count%3 != 0 {
		return fmt.Errorf("%d vertices is not a triangle list: %w", count, ErrBuffer)
	}
	if count > len(g.vertices)/3 {
		return fmt.Errorf("drawing %d vertices, %d uploaded: %w", count, len(g.vertices)/3, ErrBuffer)
	}
	for i := 0; i < count; i += 3 {
		c := g.colors[i*4 : i*4+4]
		if c[3] == 0 {
			continue
		}
		g.p.SetFillColor(color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]})
		g.p.MoveTo(g.toScreen(m, i))
		g.p.LineTo(g.toScreen(m, i+1))
		g.p.LineTo(g.toScreen(m, i+2))
		g.p.Close()
		g.p.Fill()
	}
	return nil
}

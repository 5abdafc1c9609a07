package gart

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// Context is my abstraction for Canvas (or gg).
// It keeps its own transform stack so the pieces can use a top-left origin
// with y going down, like an HTML canvas, while tdewolff/canvas has y up.
type Context struct {
	c   *canvas.Canvas
	ctx *canvas.Context

	width, height float64

	view  mgl64.Mat3   // flips y
	m     mgl64.Mat3   // current user transform
	stack []mgl64.Mat3 // pushed user transforms
}

func NewContext(width, height float64) *Context {
	ctx := &Context{
		c:      canvas.New(width, height),
		width:  width,
		height: height,
		view:   mgl64.Translate2D(0, height).Mul3(mgl64.Scale2D(1, -1)),
		m:      mgl64.Ident3(),
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// Size returns the width and height the context was created with.
func (ctx *Context) Size() (float64, float64) {
	return ctx.width, ctx.height
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(3.2))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

func (ctx *Context) project(x, y float64) (float64, float64) {
	v := ctx.view.Mul3(ctx.m).Mul3x1(mgl64.Vec3{x, y, 1})
	return v[0], v[1]
}

// Push saves the current transform.
func (ctx *Context) Push() {
	ctx.stack = append(ctx.stack, ctx.m)
	ctx.ctx.Push()
}

// Pop restores the last pushed draw state and uses that as the current draw state. If there are no
// states on the stack, this will do nothing.
func (ctx *Context) Pop() {
	if n := len(ctx.stack); n > 0 {
		ctx.m = ctx.stack[n-1]
		ctx.stack = ctx.stack[:n-1]
	}
	ctx.ctx.Pop()
}

// Translate moves the origin.
func (ctx *Context) Translate(x, y float64) {
	ctx.m = ctx.m.Mul3(mgl64.Translate2D(x, y))
}

// Rotate rotates clockwise on screen, as a canvas with y down does.
func (ctx *Context) Rotate(radians float64) {
	ctx.m = ctx.m.Mul3(mgl64.HomogRotate2D(radians))
}

// Reset empties the canvas.
func (ctx *Context) Reset() {
	ctx.c.Reset()
}

// Clear empties the canvas and paints it with col.
func (ctx *Context) Clear(col color.Color) {
	ctx.c.Reset()
	ctx.ctx.Push()
	ctx.ctx.SetFillColor(col)
	ctx.ctx.SetStrokeColor(color.Transparent)
	ctx.ctx.DrawPath(0, 0, canvas.Rectangle(ctx.width, ctx.height))
	ctx.ctx.Pop()
}

func (ctx *Context) SetFillColor(col color.Color) {
	ctx.ctx.SetFillColor(col)
}

func (ctx *Context) SetStrokeColor(col color.Color) {
	ctx.ctx.SetStrokeColor(col)
}

func (ctx *Context) SetStrokeWidth(width float64) {
	ctx.ctx.SetStrokeWidth(width)
}

// MoveTo moves the path to x,y without connecting the path. It starts a new independent subpath.
// Multiple subpaths can be useful when negating parts of a previous path by overlapping it with a
// path in the opposite direction. The behaviour for overlapping paths depend on the FillRule.
func (ctx *Context) MoveTo(x, y float64) {
	ctx.ctx.MoveTo(ctx.project(x, y))
}

// Point draws a 1 pixel rectangle at point
func (ctx *Context) Point(x, y float64) {
	ctx.FillRect(x, y, 1, 1)
}

// LineTo adds a linear path to x,y.
func (ctx *Context) LineTo(x, y float64) {
	ctx.ctx.LineTo(ctx.project(x, y))
}

// FillRect fills a rectangle, honoring the current transform.
func (ctx *Context) FillRect(x, y, w, h float64) {
	ctx.MoveTo(x, y)
	ctx.LineTo(x+w, y)
	ctx.LineTo(x+w, y+h)
	ctx.LineTo(x, y+h)
	ctx.Close()
	ctx.Fill()
}

// FillCircle draws a circle with the current fill and stroke.
func (ctx *Context) FillCircle(x, y, r float64) {
	px, py := ctx.project(x, y)
	ctx.ctx.DrawPath(px, py, canvas.Circle(r))
}

// Stroke strokes the current path and resets it.
func (ctx *Context) Stroke() {
	ctx.ctx.Stroke()
}

// Fill fills the current path and resets it.
func (ctx *Context) Fill() {
	ctx.ctx.Fill()
}

// FillStroke fills then strokes the current path and resets it.
func (ctx *Context) FillStroke() {
	ctx.ctx.FillStroke()
}

// Close closes the current path
func (ctx *Context) Close() {
	ctx.ctx.Close()
}

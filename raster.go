package gart

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// RasterContext paints into an in-memory image with fogleman/gg. It has the
// same drawing surface as Context but keeps separate fill and stroke colors
// the way gg does not.
type RasterContext struct {
	dc          *gg.Context
	fill        color.Color
	stroke      color.Color
	strokeWidth float64
}

// NewRasterContext returns a width x height pixel surface.
func NewRasterContext(width, height int) *RasterContext {
	return &RasterContext{
		dc:          gg.NewContext(width, height),
		fill:        color.Black,
		stroke:      color.Black,
		strokeWidth: 1,
	}
}

// Image returns the pixels painted so far.
func (r *RasterContext) Image() image.Image {
	return r.dc.Image()
}

// Size returns the width and height in pixels.
func (r *RasterContext) Size() (float64, float64) {
	return float64(r.dc.Width()), float64(r.dc.Height())
}

// WritePNG saves the image.
func (r *RasterContext) WritePNG(fname string) error {
	return r.dc.SavePNG(fname)
}

func (r *RasterContext) Push() { r.dc.Push() }
func (r *RasterContext) Pop()  { r.dc.Pop() }

func (r *RasterContext) Translate(x, y float64) { r.dc.Translate(x, y) }
func (r *RasterContext) Rotate(radians float64) { r.dc.Rotate(radians) }

// Clear paints the whole image with col, ignoring the transform.
func (r *RasterContext) Clear(col color.Color) {
	r.dc.SetColor(col)
	r.dc.Clear()
}

func (r *RasterContext) SetFillColor(col color.Color)   { r.fill = col }
func (r *RasterContext) SetStrokeColor(col color.Color) { r.stroke = col }

func (r *RasterContext) SetStrokeWidth(width float64) {
	r.strokeWidth = width
	r.dc.SetLineWidth(width)
}

func (r *RasterContext) MoveTo(x, y float64) { r.dc.MoveTo(x, y) }
func (r *RasterContext) LineTo(x, y float64) { r.dc.LineTo(x, y) }
func (r *RasterContext) Close()              { r.dc.ClosePath() }

func (r *RasterContext) Stroke() {
	r.dc.SetColor(r.stroke)
	r.dc.Stroke()
}

func (r *RasterContext) Fill() {
	r.dc.SetColor(r.fill)
	r.dc.Fill()
}

func (r *RasterContext) FillStroke() {
	r.dc.SetColor(r.fill)
	r.dc.FillPreserve()
	r.dc.SetColor(r.stroke)
	r.dc.Stroke()
}

func (r *RasterContext) FillRect(x, y, w, h float64) {
	r.dc.DrawRectangle(x, y, w, h)
	r.Fill()
}

func (r *RasterContext) FillCircle(x, y, radius float64) {
	r.dc.DrawCircle(x, y, radius)
	_, _, _, a := r.stroke.RGBA()
	if a > 0 && r.strokeWidth > 0 {
		r.FillStroke()
		return
	}
	r.Fill()
}

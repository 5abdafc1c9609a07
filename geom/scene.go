package geom

import "image/color"

// Painter is what a rendering surface has to offer a Scene. Colors and
// widths are state; MoveTo/LineTo/Close build a path that Stroke, Fill or
// FillStroke consume.
type Painter interface {
	SetFillColor(col color.Color)
	SetStrokeColor(col color.Color)
	SetStrokeWidth(width float64)

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(radians float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	Close()
	Stroke()
	Fill()
	FillStroke()

	FillRect(x, y, w, h float64)
	FillCircle(x, y, r float64)
	Clear(col color.Color)
}

// Style says how a shape is painted. A zero alpha channel skips that part.
type Style struct {
	Fill   Color
	Stroke Color
	Width  float64
}

// Outline is a thin black stroke with no fill.
var Outline = Style{Stroke: Black, Width: 1}

// Solid fills with c and does not stroke.
func Solid(c Color) Style {
	return Style{Fill: c}
}

// Segment is a straight line between two points.
type Segment struct {
	A, B Point
}

// Seg is shorthand for a 2D segment.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Pt(x1, y1), B: Pt(x2, y2)}
}

// Polygon is a closed path.
type Polygon struct {
	Points []Point
	Style  Style
}

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Circle is a filled, optionally stroked disc.
type Circle struct {
	Center Point
	R      float64
	Style  Style
}

// Scene is the 2D geometry a generator produces. Items are painted kind by
// kind (segments, polygons, rects, circles) and in order within a kind,
// followed by the layers. The transform (rotate around Pivot, then
// Translate) applies to the scene and all its layers.
type Scene struct {
	Width, Height float64

	Background *Color

	SegmentStyle Style
	Segments     []Segment

	Polygons []Polygon

	RectStyle Style
	Rects     []Rect

	Circles []Circle

	Pivot     Point
	Rotate    float64
	Translate Point

	Layers []*Scene
}

// NewScene returns an empty scene of the given draw size with thin black
// strokes and black rects.
func NewScene(width, height float64) *Scene {
	return &Scene{
		Width:        width,
		Height:       height,
		SegmentStyle: Outline,
		RectStyle:    Solid(Black),
	}
}

// Line appends a segment.
func (s *Scene) Line(x1, y1, x2, y2 float64) {
	s.Segments = append(s.Segments, Seg(x1, y1, x2, y2))
}

// Count returns the number of drawable items including layers.
func (s *Scene) Count() int {
	n := len(s.Segments) + len(s.Polygons) + len(s.Rects) + len(s.Circles)
	for _, l := range s.Layers {
		n += l.Count()
	}
	return n
}

func applyStyle(p Painter, st Style) {
	p.SetFillColor(st.Fill)
	p.SetStrokeColor(st.Stroke)
	p.SetStrokeWidth(st.Width)
}

func paintPath(p Painter, st Style) {
	switch {
	case st.Fill.A > 0 && st.Stroke.A > 0 && st.Width > 0:
		p.FillStroke()
	case st.Fill.A > 0:
		p.Fill()
	default:
		p.Stroke()
	}
}

// Draw paints the scene.
func (s *Scene) Draw(p Painter) {
	if s.Background != nil {
		p.Clear(*s.Background)
	}
	p.Push()
	defer p.Pop()
	if s.Rotate != 0 {
		p.Translate(s.Pivot.X, s.Pivot.Y)
		p.Rotate(s.Rotate)
		p.Translate(-s.Pivot.X, -s.Pivot.Y)
	}
	if s.Translate.X != 0 || s.Translate.Y != 0 {
		p.Translate(s.Translate.X, s.Translate.Y)
	}

	if len(s.Segments) > 0 {
		applyStyle(p, s.SegmentStyle)
		for _, seg := range s.Segments {
			p.MoveTo(seg.A.X, seg.A.Y)
			p.LineTo(seg.B.X, seg.B.Y)
		}
		p.Stroke()
	}

	for _, poly := range s.Polygons {
		if len(poly.Points) == 0 {
			continue
		}
		applyStyle(p, poly.Style)
		p.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, pt := range poly.Points[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		p.Close()
		paintPath(p, poly.Style)
	}

	if len(s.Rects) > 0 {
		applyStyle(p, s.RectStyle)
		for _, r := range s.Rects {
			p.FillRect(r.X, r.Y, r.W, r.H)
		}
	}

	for _, c := range s.Circles {
		applyStyle(p, c.Style)
		p.FillCircle(c.Center.X, c.Center.Y, c.R)
	}

	for _, l := range s.Layers {
		l.Draw(p)
	}
}

package geom

// Face is a planar quad in 3D. Height is the mean of the vertices' Y and is
// the key the terrain sorts on.
type Face struct {
	Vertices [4]Point
	Height   float64
	Color    Color
}

// NewFace builds a face and derives its height.
func NewFace(v [4]Point, c Color) Face {
	f := Face{Vertices: v, Color: c}
	f.UpdateHeight()
	return f
}

// UpdateHeight recomputes Height from the vertices.
func (f *Face) UpdateHeight() {
	sum := 0.0
	for _, v := range f.Vertices {
		sum += v.Y
	}
	f.Height = sum / float64(len(f.Vertices))
}

// Mesh is a flat triangle list ready for a GL surface: three floats per
// vertex, four bytes of color per vertex.
type Mesh struct {
	Vertices []float32
	Colors   []uint8
	Min, Max Point
}

// Count returns the number of vertices.
func (m *Mesh) Count() int {
	return len(m.Vertices) / 3
}

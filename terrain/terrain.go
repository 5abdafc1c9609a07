package terrain

import (
	"context"
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

const (
	// SamplesPerRow is the number of faces along each edge.
	SamplesPerRow = 91

	waterLevel = 0.68
	// vertices never rise above the water surface
	maxVertexY = waterLevel - 0.04

	cloudIntensity = 120
	cloudAlpha     = 100
	cloudTop       = 0.07
	cloudStep      = 0.005
	cloudThreshold = 0.5
	cloudDensity   = 0.05
)

var (
	snow  = geom.RGB(255, 255, 255)
	rock  = geom.RGB(170, 164, 157)
	grass = geom.RGB(96, 128, 56)
	sand  = geom.RGB(194, 178, 128)
	water = geom.RGB(0, 0, 230)
	cloud = geom.RGBA(cloudIntensity, cloudIntensity, cloudIntensity, cloudAlpha)
)

// Band picks the color for a face. Low samples are the tall mountains.
// A few of the highest faces, per random, show rock instead of snow.
func Band(height, random float64) geom.Color {
	switch {
	case height < 0.24 && random < 0.96:
		return snow
	case height < 0.5:
		return rock
	case height < 0.6:
		return grass
	case height < waterLevel:
		return sand
	}
	return water
}

// Landscape holds the two noise fields the faces are built from.
type Landscape struct {
	pool    *randompool.Pool
	a       float64
	terrain *Noise
	clouds  *Noise
}

// NewLandscape samples the terrain and cloud fields for a pool and
// parameter a. The +1 sample is the far edge of the last face.
func NewLandscape(pool *randompool.Pool, a float64) *Landscape {
	seed := pool.Get(0)
	return &Landscape{
		pool:    pool,
		a:       a,
		terrain: NewNoise(pool, SamplesPerRow+1, seed),
		clouds:  NewNoise(pool, SamplesPerRow+1, 1-seed),
	}
}

// TerrainFace builds the ground face at row, col. Its height is the mean
// raw sample; the vertices are then capped and scaled into the unit box.
func (l *Landscape) TerrainFace(row, col int) geom.Face {
	s := l.terrain.Sample
	r, c := float64(row), float64(col)
	f := geom.NewFace([4]geom.Point{
		geom.Pt3(c+1, s(row+1, col+1), r+1),
		geom.Pt3(c+1, s(row, col+1), r),
		geom.Pt3(c, s(row, col), r),
		geom.Pt3(c, s(row+1, col), r+1),
	}, geom.Color{})

	random := l.pool.Get(row * col)
	f.Color = Band(f.Height, random).Jitter(random)

	div := geom.Pt3(SamplesPerRow, 1.3+(10-l.a)/4, SamplesPerRow)
	for i, v := range f.Vertices {
		v.Y = math.Min(v.Y, maxVertexY)
		f.Vertices[i] = v.Div(div)
	}
	return f
}

// CloudFaces stacks cloud layers over row, col while the cloud sample is
// thin enough. Samples far from the center are pushed up so the clouds fade
// out towards the edge of the map.
func (l *Landscape) CloudFaces(row, col int) []geom.Face {
	center := float64(SamplesPerRow) / 2
	sample := l.clouds.Sample(row, col)
	dist := math.Hypot(float64(row)-center, float64(col)-center)
	if dist > center/1.2 {
		sample += dist / center * 0.3
	}

	var faces []geom.Face
	r, c := float64(row), float64(col)
	div := geom.Pt3(SamplesPerRow, 1, SamplesPerRow)
	for h := cloudTop; sample < cloudThreshold; sample += cloudDensity {
		f := geom.NewFace([4]geom.Point{
			geom.Pt3(c+1, h, r+1),
			geom.Pt3(c+1, h, r),
			geom.Pt3(c, h, r),
			geom.Pt3(c, h, r+1),
		}, cloud)
		for i, v := range f.Vertices {
			f.Vertices[i] = v.Div(div)
		}
		faces = append(faces, f)
		h -= cloudStep
	}
	return faces
}

// Faces returns every terrain and cloud face sorted by height, highest
// first, which paints the far (low sample) mountains last.
func (l *Landscape) Faces(ctx context.Context) ([]geom.Face, error) {
	faces := make([]geom.Face, 0, SamplesPerRow*SamplesPerRow*2)
	for row := 0; row < SamplesPerRow; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for col := 0; col < SamplesPerRow; col++ {
			faces = append(faces, l.TerrainFace(row, col))
			faces = append(faces, l.CloudFaces(row, col)...)
		}
	}
	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].Height > faces[j].Height
	})
	return faces, nil
}

// triangles is the vertex order that splits a face into two triangles.
var triangles = [...]int{0, 2, 1, 0, 3, 2}

// Flatten turns faces into GL buffers and their bounding box.
func Flatten(faces []geom.Face) *geom.Mesh {
	m := &geom.Mesh{
		Vertices: make([]float32, 0, len(faces)*len(triangles)*3),
		Colors:   make([]uint8, 0, len(faces)*len(triangles)*4),
		Min:      geom.Pt3(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max:      geom.Pt3(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
	for _, f := range faces {
		for _, v := range f.Vertices {
			m.Min = m.Min.Min(v)
			m.Max = m.Max.Max(v)
		}
		c := f.Color.Bytes()
		for _, i := range triangles {
			v := f.Vertices[i]
			m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			m.Colors = append(m.Colors, c[:]...)
		}
	}
	return m
}

// Generate builds the whole landscape mesh. It returns ctx.Err() if ctx is
// cancelled part way through.
func Generate(ctx context.Context, pool *randompool.Pool, a float64) (*geom.Mesh, error) {
	faces, err := NewLandscape(pool, a).Faces(ctx)
	if err != nil {
		return nil, err
	}
	m := Flatten(faces)
	log.Debug().
		Int("faces", len(faces)).
		Int("vertices", m.Count()).
		Str("min", fmtPoint(m.Min)).
		Str("max", fmtPoint(m.Max)).
		Msg("terrain generated")
	return m, nil
}

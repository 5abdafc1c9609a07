package gart

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type polyRecorder struct {
	fills  []color.Color
	points [][2]float64
	closed int
}

func (r *polyRecorder) SetFillColor(col color.Color) { r.fills = append(r.fills, col) }
func (r *polyRecorder) MoveTo(x, y float64)          { r.points = append(r.points, [2]float64{x, y}) }
func (r *polyRecorder) LineTo(x, y float64)          { r.points = append(r.points, [2]float64{x, y}) }
func (r *polyRecorder) Close()                       {}
func (r *polyRecorder) Fill()                        { r.closed++ }
func (r *polyRecorder) Clear(col color.Color)        {}

func TestSoftGLUpload(t *testing.T) {
	g := NewSoftGL(&polyRecorder{}, 10, 10)

	err := g.Upload([]float32{0, 0}, nil)
	assert.True(t, errors.Is(err, ErrBuffer))

	err = g.Upload([]float32{0, 0, 0}, []uint8{1, 2, 3})
	assert.True(t, errors.Is(err, ErrBuffer))

	require.NoError(t, g.Upload([]float32{0, 0, 0}, []uint8{1, 2, 3, 4}))
}

func TestSoftGLDrawTriangles(t *testing.T) {
	rec := &polyRecorder{}
	g := NewSoftGL(rec, 100, 50)
	vertices := []float32{
		-1, 1, 0, 1, 1, 0, 1, -1, 0,
		-1, 1, 0, 1, -1, 0, -1, -1, 0,
	}
	colors := []uint8{
		10, 20, 30, 255, 0, 0, 0, 0, 0, 0, 0, 0,
		1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	require.NoError(t, g.Upload(vertices, colors))

	assert.True(t, errors.Is(g.DrawTriangles(mgl32.Ident4(), 4), ErrBuffer))
	assert.True(t, errors.Is(g.DrawTriangles(mgl32.Ident4(), 9), ErrBuffer))

	require.NoError(t, g.DrawTriangles(mgl32.Ident4(), 6))
	// The second triangle is fully transparent and skipped.
	assert.Equal(t, 1, rec.closed)
	assert.Equal(t, []color.Color{color.NRGBA{10, 20, 30, 255}}, rec.fills)
	assert.Equal(t, [][2]float64{{0, 0}, {100, 0}, {100, 50}}, rec.points)
}

func TestRasterContextFillRect(t *testing.T) {
	r := NewRasterContext(10, 10)
	r.Clear(color.White)
	r.SetFillColor(color.RGBA{255, 0, 0, 255})
	r.FillRect(0, 0, 5, 5)

	img := r.Image()
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, color.RGBAModel.Convert(img.At(2, 2)))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, color.RGBAModel.Convert(img.At(7, 7)))

	w, h := r.Size()
	assert.Equal(t, 10.0, w)
	assert.Equal(t, 10.0, h)
}

func TestVpCenter(t *testing.T) {
	tests := []struct {
		bounds image.Rectangle
		w, h   int
		want   image.Point
	}{
		{image.Rect(0, 0, 10, 10), 10, 10, image.Point{0, 0}},
		{image.Rect(0, 0, 20, 20), 10, 10, image.Point{0, 0}},
		{image.Rect(0, 0, 4, 6), 10, 10, image.Point{3, 2}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VpCenter(tt.bounds, tt.w, tt.h))
	}
}

func TestFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			src.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Fit(dst, src)

	// 10x5 centered vertically, margin of 2 above and 3 below.
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(5, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, dst.RGBAAt(5, 4))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(5, 9))
}

func TestSafeWrite(t *testing.T) {
	dir := t.TempDir()
	r := NewRasterContext(4, 4)
	r.Clear(color.Black)

	fname := filepath.Join(dir, "out", "piece.png")
	require.NoError(t, safeWrite(r, fname))
	_, err := os.Stat(fname)
	assert.NoError(t, err)

	err = safeWrite(r, filepath.Join(dir, "piece.svg"))
	assert.True(t, errors.Is(err, ErrFormat))
	err = safeWrite(r, filepath.Join(dir, "piece.gif"))
	assert.True(t, errors.Is(err, ErrFormat))

	matches, _ := filepath.Glob(filepath.Join(dir, "gart.*"))
	assert.Empty(t, matches)
}

func TestSeed(t *testing.T) {
	s := Init("hello world")
	assert.Equal(t, "hello world", s.String())
	assert.Equal(t, s.Pool().Get(5), Init("hello world").Pool().Get(5))
	assert.Contains(t, s.GetFilename("piece-", ".png"), "hello_world.png")

	assert.NotEmpty(t, Init("").String())
}

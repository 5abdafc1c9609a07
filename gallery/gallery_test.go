package gallery

import (
	"context"
	"errors"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottkirkwood/gart"
	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
	"github.com/scottkirkwood/gart/terrain"
)

var errNoGL = errors.New("gl unavailable")

type recordingGL struct {
	gart.GLSurface
	clears, draws, count int
}

func (r *recordingGL) Clear(col color.Color) {
	r.clears++
	r.GLSurface.Clear(col)
}

func (r *recordingGL) DrawTriangles(m mgl32.Mat4, count int) error {
	r.draws++
	r.count = count
	return r.GLSurface.DrawTriangles(m, count)
}

type fakeSurfaces struct {
	canvas      *gart.RasterContext
	gl          *recordingGL
	noGL        bool
	canvasCalls int
}

func newFakeSurfaces(w, h int) *fakeSurfaces {
	c := gart.NewRasterContext(w, h)
	return &fakeSurfaces{
		canvas: c,
		gl:     &recordingGL{GLSurface: gart.NewSoftGL(c, float64(w), float64(h))},
	}
}

func (f *fakeSurfaces) Canvas(width, height float64) (geom.Painter, error) {
	f.canvasCalls++
	return f.canvas, nil
}

func (f *fakeSurfaces) GL(width, height float64) (gart.GLSurface, error) {
	if f.noGL {
		return nil, errNoGL
	}
	return f.gl, nil
}

func TestCatalog(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Catalog() {
		assert.False(t, seen[p.Name], "duplicate %s", p.Name)
		seen[p.Name] = true
		assert.True(t, (p.Draw == nil) != (p.Start == nil), "%s needs exactly one of Draw and Start", p.Name)
		if p.Surface == WebGL {
			assert.True(t, p.Animated(), p.Name)
		}
	}
	assert.Len(t, seen, 19)

	p, err := Find("terrain")
	require.NoError(t, err)
	assert.Equal(t, WebGL, p.Surface)
	assert.Equal(t, "gl", p.Surface.String())

	_, err = Find("mona-lisa")
	assert.True(t, errors.Is(err, ErrUnknownPiece))
}

func TestCatalogIsACopy(t *testing.T) {
	c := Catalog()
	c[0].Name = "changed"
	assert.Equal(t, DefaultPiece, Catalog()[0].Name)
}

func TestEveryPieceDraws(t *testing.T) {
	pool := randompool.New("every")
	for _, p := range Catalog() {
		in := Input{Pool: pool, A: 3, B: 7, Width: 300, Height: 200}
		if p.Animated() {
			f, err := p.Start(context.Background(), in)
			require.NoError(t, err, p.Name)
			for _, ms := range []float64{0, 16, 1000} {
				out, _ := f(ms)
				if p.Surface == WebGL {
					require.NotNil(t, out.GL, p.Name)
					assert.NotEmpty(t, out.GL.Vertices, p.Name)
				} else {
					require.NotNil(t, out.Scene, p.Name)
				}
			}
			continue
		}
		s, err := p.Draw(in)
		require.NoError(t, err, p.Name)
		assert.Greater(t, s.Count(), 0, p.Name)
	}
}

func TestStateClamped(t *testing.T) {
	tests := []struct {
		in, want State
	}{
		{State{ArtName: "maze", ParameterA: 3, ParameterB: 4, Seed: "x"}, State{ArtName: "maze", ParameterA: 3, ParameterB: 4, Seed: "x"}},
		{State{ArtName: "maze", ParameterA: -1, ParameterB: 11}, State{ArtName: "maze", ParameterA: 0, ParameterB: 10}},
		{State{ParameterA: 10, ParameterB: 0}, State{ArtName: DefaultPiece, ParameterA: 10, ParameterB: 0}},
		{State{ArtName: "sun", ParameterA: math.NaN(), ParameterB: math.Inf(1), Seed: "!!"}, State{ArtName: "sun", ParameterA: 5, ParameterB: 10, Seed: "!!"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Clamped())
	}
}

func TestAnimator(t *testing.T) {
	a := NewAnimator()
	assert.Equal(t, Idle, a.Phase())
	_, ok := a.Tick(0)
	assert.False(t, ok)

	var elapsed []float64
	a.Start(func(ms float64) (Output, bool) {
		elapsed = append(elapsed, ms)
		return Output{}, ms >= 100
	})
	assert.Equal(t, Animating, a.Phase())
	assert.Equal(t, "animating", a.Phase().String())

	for _, now := range []float64{1000, 1050, 1100, 1150} {
		a.Tick(now)
	}
	// the frame reporting done is the last one called
	assert.Equal(t, []float64{0, 50, 100}, elapsed)
	assert.Equal(t, Idle, a.Phase())
}

func TestAnimatorStop(t *testing.T) {
	a := NewAnimator()
	calls := 0
	a.Start(func(float64) (Output, bool) {
		calls++
		return Output{}, false
	})
	for i := 0; i < 5; i++ {
		a.Tick(float64(i) * 20)
	}
	assert.InDelta(t, 50, a.FPS(), 1e-9)

	a.Stop()
	assert.Equal(t, Idle, a.Phase())
	assert.Equal(t, 0.0, a.FPS())
	_, ok := a.Tick(200)
	assert.False(t, ok)
	assert.Equal(t, 5, calls)
}

func TestSelectStill(t *testing.T) {
	s := newFakeSurfaces(200, 200)
	g := New(s, 200, 200, nil)
	require.NoError(t, g.Select(context.Background(), State{ArtName: "maze", ParameterA: 20, Seed: "walls"}))
	assert.False(t, g.Animating())
	assert.Equal(t, 1, s.canvasCalls)
	assert.Equal(t, State{ArtName: "maze", ParameterA: 10, Seed: "walls"}, g.State())
	assert.Equal(t, "maze", g.Piece().Name)

	// an empty seed is replaced with one that can be shared
	require.NoError(t, g.Select(context.Background(), State{ArtName: "diamond"}))
	assert.NotEmpty(t, g.State().Seed)

	err := g.Select(context.Background(), State{ArtName: "nope"})
	assert.True(t, errors.Is(err, ErrUnknownPiece))
}

func TestSwitchingStopsAnimation(t *testing.T) {
	s := newFakeSurfaces(200, 200)
	g := New(s, 200, 200, nil)
	ctx := context.Background()

	require.NoError(t, g.Select(ctx, State{ArtName: "waves"}))
	assert.True(t, g.Animating())
	assert.Equal(t, 0, s.canvasCalls)
	require.NoError(t, g.Tick(0))
	require.NoError(t, g.Tick(16))
	assert.Equal(t, 2, s.canvasCalls)

	require.NoError(t, g.Select(ctx, State{ArtName: "schotter", Seed: "s"}))
	assert.False(t, g.Animating())
	assert.Equal(t, 3, s.canvasCalls)
	require.NoError(t, g.Tick(32))
	assert.Equal(t, 3, s.canvasCalls)
}

func TestSpirographFinishes(t *testing.T) {
	g := New(newFakeSurfaces(100, 100), 100, 100, nil)
	require.NoError(t, g.Select(context.Background(), State{ArtName: "spirograph", ParameterB: 5, Seed: "gears"}))
	require.NoError(t, g.Tick(0))
	assert.True(t, g.Animating())
	require.NoError(t, g.Tick(1e9))
	assert.False(t, g.Animating())
}

func TestNoSurface(t *testing.T) {
	s := newFakeSurfaces(100, 100)
	s.noGL = true
	g := New(s, 100, 100, nil)
	require.NoError(t, g.Select(context.Background(), State{ArtName: "terrain", Seed: "flat"}))
	err := g.Tick(0)
	assert.True(t, errors.Is(err, ErrNoSurface))
	assert.True(t, errors.Is(err, errNoGL))
	assert.False(t, g.Animating())

	// the gallery carries on with pieces that don't need GL
	require.NoError(t, g.Select(context.Background(), State{ArtName: "sun", Seed: "flat"}))
}

func TestTerrainThroughWorker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := terrain.NewWorker()
	go w.Run(ctx) //nolint:errcheck

	s := newFakeSurfaces(120, 90)
	g := New(s, 120, 90, w)
	require.NoError(t, g.Select(ctx, State{ArtName: "terrain", ParameterA: 4, Seed: "hills"}))

	deadline := time.Now().Add(30 * time.Second)
	now := 0.0
	for s.gl.draws == 0 && time.Now().Before(deadline) {
		require.NoError(t, g.Tick(now))
		now += 16
		time.Sleep(5 * time.Millisecond)
	}
	require.Equal(t, 1, s.gl.draws)
	assert.Greater(t, s.gl.clears, 0)

	want, err := terrain.Generate(ctx, randompool.New("hills"), 4)
	require.NoError(t, err)
	assert.Equal(t, want.Count(), s.gl.count)
	assert.True(t, g.Animating())
}

package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

func TestNFirstOrder(t *testing.T) {
	tests := []struct {
		i    int
		t    float64
		want float64
	}{
		{0, 0, 1},
		{0, 0.5, 1},
		{0, 1, 1},
		{0, 1.01, 0},
		{0, -0.01, 0},
		{3, 3, 1},
		{3, 3.7, 1},
		{3, 4, 1},
		{3, 2.99, 0},
		{3, 4.5, 0},
		{7, 0, 0},
		{7, 7.25, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, N(tt.i, 1, tt.t), "N(%d, 1, %v)", tt.i, tt.t)
	}
}

func TestNHigherOrder(t *testing.T) {
	// the quadratic uniform basis peaks at 3/4 in the middle of its support
	assert.InDelta(t, 0.75, N(0, 3, 1.5), 1e-12)
	assert.InDelta(t, 0.125, N(0, 3, 0.5), 1e-12)
	assert.InDelta(t, 0.5, N(0, 2, 0.5), 1e-12)
	assert.Equal(t, 0.0, N(0, 3, 3.5))

	// inside the fully covered span the bases sum to 1
	sum := 0.0
	for i := 0; i < 10; i++ {
		sum += N(i, 3, 5.3)
	}
	assert.InDelta(t, 1, sum, 1e-12)
}

func TestNewBSpline(t *testing.T) {
	_, err := NewBSpline(0, []float64{1, 2, 3})
	assert.True(t, errors.Is(err, ErrOrder))

	_, err = NewBSpline(3, []float64{1, 2})
	assert.True(t, errors.Is(err, ErrOrder))

	b, err := NewBSpline(3, []float64{5, 5, 5, 5, 5, 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, b.Width())
	assert.InDelta(t, 5, b.At(3.5), 1e-12)
}

func TestZigZag(t *testing.T) {
	p := ZigZag(randompool.New("zig").Stream(), 0)
	require.Len(t, p, 30)
	assert.Equal(t, 0.0, p[0])
	assert.Equal(t, -8.0, p[1])
	assert.Equal(t, 16.0, p[2])
	assert.Equal(t, -232.0, p[29])

	nudged := ZigZag(randompool.New("zig").Stream(), 10)
	for i := range p {
		assert.LessOrEqual(t, math.Abs(nudged[i]-p[i]), 40.0)
	}
}

func TestSpline(t *testing.T) {
	s, err := Spline(randompool.New("spline"), 1000, 400, 0)
	require.NoError(t, err)
	require.Len(t, s.Rects, 1000)
	assert.Equal(t, 0.0, s.Rects[0].X)
	assert.Equal(t, 200.0, s.Rects[0].Y)
	assert.InDelta(t, 999.0, s.Rects[999].X, 1e-9)
	assert.Equal(t, 1.0, s.Rects[10].W)
}

func TestGearsRotations(t *testing.T) {
	tests := []struct {
		g    Gears
		want int
	}{
		{Gears{Inner: 3, Outer: 9}, 1},
		{Gears{Inner: 24, Outer: 96}, 1},
		{Gears{Inner: 40, Outer: 96}, 5},
		{Gears{Inner: 84, Outer: 150}, 14},
		{Gears{Inner: 60, Outer: 144}, 5},
		{Gears{Inner: 45, Outer: 105}, 3},
	}
	for _, tt := range tests {
		got, err := tt.g.Rotations()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%+v", tt.g)
	}

	for _, g := range []Gears{{Inner: 9, Outer: 9}, {Inner: 10, Outer: 9}, {Inner: 0, Outer: 9}} {
		_, err := g.Rotations()
		assert.True(t, errors.Is(err, ErrGears), "%+v", g)
		assert.Equal(t, 0.0, g.Closure())
	}
}

func TestSpirographCloses(t *testing.T) {
	g := Gears{Inner: 3, Outer: 9}
	assert.InDelta(t, 2*math.Pi, g.Closure(), 1e-12)

	s := NewSpirograph(g, geom.Pt(100, 100), 90, 0.5)
	start := s.At(0)
	end := s.At(g.Closure())
	assert.InDelta(t, start.X, end.X, 1e-9)
	assert.InDelta(t, start.Y, end.Y, 1e-9)

	// wheel of radius 30 at 60 from the center, pen 15 further out
	assert.InDelta(t, 175, start.X, 1e-9)
	assert.InDelta(t, 100, start.Y, 1e-9)

	// half way round it is somewhere else
	mid := s.At(math.Pi)
	assert.False(t, mid.Equal(start))
}

func TestTraceStopsAtClosure(t *testing.T) {
	g := Gears{Inner: 40, Outer: 96}
	s := NewSpirograph(g, geom.Point{}, 100, 0.8)
	pts := s.Trace(1000)
	last := pts[len(pts)-1]
	assert.True(t, last.Equal(s.At(g.Closure())))
	assert.True(t, last.Equal(pts[0]), "%v != %v", last, pts[0])

	assert.Len(t, s.Trace(0), 1)
	assert.Len(t, s.Trace(-1), 1)
}

func TestPenClamped(t *testing.T) {
	assert.Equal(t, 0.1, NewSpirograph(FallbackGears, geom.Point{}, 1, 0).Pen)
	assert.Equal(t, 1.0, NewSpirograph(FallbackGears, geom.Point{}, 1, 3).Pen)
}

func TestPickGears(t *testing.T) {
	for _, seed := range []string{"a", "b", "c", "d", "e"} {
		g := PickGears(randompool.New(seed).Stream())
		n, err := g.Rotations()
		require.NoError(t, err)
		assert.LessOrEqual(t, n, maxRotations)
		assert.Contains(t, Rings, g.Outer)
		assert.Contains(t, Wheels, g.Inner)
	}
	again := PickGears(randompool.New("a").Stream())
	assert.Equal(t, PickGears(randompool.New("a").Stream()), again)
}

func TestTracer(t *testing.T) {
	tr := NewTracer(randompool.New("tracer"), 400, 300, 5)
	assert.Equal(t, geom.Pt(200, 150), tr.Spirograph().Center)
	assert.Equal(t, 150.0, tr.Spirograph().Radius)

	s, done := tr.Frame(0)
	assert.False(t, done)
	assert.Len(t, s.Circles, 1)
	assert.Empty(t, s.Segments)

	s, done = tr.Frame(1e9)
	assert.True(t, done)
	assert.NotEmpty(t, s.Segments)
}

func TestSun(t *testing.T) {
	pool := randompool.New("sun")
	s := Sun(pool, 400, 400, 2)
	require.Len(t, s.Segments, 256+4096)
	for _, seg := range s.Segments {
		assert.InDelta(t, 128, math.Hypot(seg.A.X-200, seg.A.Y-200), 1e-9)
		assert.InDelta(t, 128, math.Hypot(seg.B.X-200, seg.B.Y-200), 1e-9)
	}

	// the long chords of a=1 are the ones a=0 draws from index 1024 on
	zero := Sun(pool, 400, 400, 0)
	one := Sun(pool, 400, 400, 1)
	assert.Equal(t, zero.Segments[256+1024:], one.Segments[256:256+4096-1024])
}

package gallery

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/scottkirkwood/gart/curve"
	"github.com/scottkirkwood/gart/fredkin"
	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/grid"
	"github.com/scottkirkwood/gart/iso"
	"github.com/scottkirkwood/gart/motion"
	"github.com/scottkirkwood/gart/randompool"
	"github.com/scottkirkwood/gart/terrain"
)

// GL pieces clear to a light grey.
var glBackground = geom.RGB(230, 230, 230)

type poolFn func(pool *randompool.Pool, width, height, a float64) *geom.Scene

func withPool(fn poolFn) func(Input) (*geom.Scene, error) {
	return func(in Input) (*geom.Scene, error) {
		return fn(in.Pool, in.Width, in.Height, in.A), nil
	}
}

type plainFn func(width, height, a float64) *geom.Scene

func withoutPool(fn plainFn) func(Input) (*geom.Scene, error) {
	return func(in Input) (*geom.Scene, error) {
		return fn(in.Width, in.Height, in.A), nil
	}
}

// scenes adapts the animations that only produce 2D scenes and never end.
func scenes(frame func(elapsedMS float64) *geom.Scene) Frame {
	return func(elapsedMS float64) (Output, bool) {
		return Output{Scene: frame(elapsedMS)}, false
	}
}

var catalog = []Piece{
	{Name: "schotter", NeedsRandomPool: true, UsesParameterA: true, Draw: withPool(grid.Schotter)},
	{Name: "linien", NeedsRandomPool: true, UsesParameterA: true, Draw: withPool(grid.Linien)},
	{Name: "maze", NeedsRandomPool: true, UsesParameterA: true, Draw: withPool(grid.Maze)},
	{Name: "diamond", UsesParameterA: true, Draw: withoutPool(grid.Diamond)},
	{Name: "moire1", NeedsRandomPool: true, UsesParameterA: true, Draw: withPool(grid.Moire1)},
	{Name: "moire2", NeedsRandomPool: true, UsesParameterA: true, Draw: withPool(grid.Moire2)},
	{Name: "fredkin1", UsesParameterA: true, Draw: withoutPool(fredkin.Fredkin1)},
	{Name: "fredkin2", UsesParameterA: true, Draw: withoutPool(fredkin.Fredkin2)},
	{Name: "fredkin-live", UsesParameterA: true, Start: startFredkin},
	{Name: "iso-cube", NeedsRandomPool: true, UsesParameterA: true, Draw: withPool(iso.IsoCube)},
	{Name: "iso-cube-color", NeedsRandomPool: true, UsesParameterA: true, Draw: withPool(iso.IsoCubeColor)},
	{Name: "iso-cube-rotate", UsesParameterA: true, Start: startRotating(iso.Cube)},
	{Name: "iso-carousel-rotate", UsesParameterA: true, Start: startRotating(iso.Carousel)},
	{Name: "terrain", NeedsRandomPool: true, UsesParameterA: true, Surface: WebGL, Start: startTerrain},
	{Name: "bspline", NeedsRandomPool: true, UsesParameterA: true, Draw: drawSpline},
	{Name: "spirograph", NeedsRandomPool: true, UsesParameterB: true, Start: startSpirograph},
	{Name: "sun", NeedsRandomPool: true, UsesParameterA: true, Draw: withPool(curve.Sun)},
	{Name: "waves", Start: startWaves},
	{Name: "disarrangement", NeedsRandomPool: true, Start: startDisarrangement},
}

// Catalog returns every piece in display order.
func Catalog() []Piece {
	out := make([]Piece, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the piece called name.
func Find(name string) (Piece, error) {
	for _, p := range catalog {
		if p.Name == name {
			return p, nil
		}
	}
	return Piece{}, fmt.Errorf("%q: %w", name, ErrUnknownPiece)
}

func drawSpline(in Input) (*geom.Scene, error) {
	return curve.Spline(in.Pool, in.Width, in.Height, in.A)
}

func startFredkin(_ context.Context, in Input) (Frame, error) {
	return scenes(fredkin.NewLive(fredkin.Pants, in.Width, in.Height, in.A).Frame), nil
}

func startRotating(shape func() iso.Shape) func(context.Context, Input) (Frame, error) {
	return func(_ context.Context, in Input) (Frame, error) {
		return scenes(iso.NewRotating(shape(), in.Width, in.Height, in.A).Frame), nil
	}
}

func startSpirograph(_ context.Context, in Input) (Frame, error) {
	t := curve.NewTracer(in.Pool, in.Width, in.Height, in.B)
	return func(elapsedMS float64) (Output, bool) {
		s, done := t.Frame(elapsedMS)
		return Output{Scene: s}, done
	}, nil
}

func startWaves(_ context.Context, in Input) (Frame, error) {
	return scenes(func(elapsedMS float64) *geom.Scene {
		return motion.Waves(in.Width, in.Height, elapsedMS)
	}), nil
}

func startDisarrangement(_ context.Context, in Input) (Frame, error) {
	return scenes(motion.NewDisarrangement(in.Pool, in.Width, in.Height).Frame), nil
}

// landscape is a terrain animation. The mesh either comes from the worker
// or was generated up front.
type landscape struct {
	in     Input
	id     uint64
	mesh   *geom.Mesh
	failed bool
}

func startTerrain(ctx context.Context, in Input) (Frame, error) {
	l := &landscape{in: in}
	if in.Worker == nil {
		m, err := terrain.Generate(ctx, in.Pool, in.A)
		if err != nil {
			return nil, err
		}
		l.mesh = m
	} else {
		l.id = in.Worker.Submit(terrain.Request{Seed: in.Pool.Seed(), ParameterA: in.A})
	}
	return l.frame, nil
}

// receive picks up a finished generation without blocking.
func (l *landscape) receive() {
	w := l.in.Worker
	select {
	case r := <-w.Results():
		switch {
		case r.ID != l.id || !w.Current(r.ID):
			log.Debug().Uint64("id", r.ID).Uint64("want", l.id).Msg("ignoring stale terrain")
		case r.Err != nil:
			log.Error().Err(r.Err).Msg("generating terrain")
			l.failed = true
		default:
			l.mesh = r.Mesh
		}
	default:
	}
}

func (l *landscape) frame(elapsedMS float64) (Output, bool) {
	if l.mesh == nil && !l.failed {
		l.receive()
	}
	if l.failed {
		return Output{}, true
	}
	if l.mesh == nil {
		return Output{}, false
	}
	f := terrain.At(l.mesh, l.in.Width, l.in.Height, elapsedMS)
	return Output{GL: &f}, false
}

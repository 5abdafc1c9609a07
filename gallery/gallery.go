package gallery

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/scottkirkwood/gart"
	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/terrain"
)

// Surfaces hands out drawing surfaces of the given size. Either may fail,
// for instance when there is no GL on the host.
type Surfaces interface {
	Canvas(width, height float64) (geom.Painter, error)
	GL(width, height float64) (gart.GLSurface, error)
}

// Gallery shows one piece at a time. It is not safe for concurrent use; all
// calls belong on the render loop.
type Gallery struct {
	surfaces      Surfaces
	worker        *terrain.Worker
	width, height float64

	anim  *Animator
	piece Piece
	state State
}

// New returns a gallery painting width x height pictures. worker may be nil,
// in which case terrain is generated inside Select.
func New(s Surfaces, width, height float64, worker *terrain.Worker) *Gallery {
	return &Gallery{
		surfaces: s,
		worker:   worker,
		width:    width,
		height:   height,
		anim:     NewAnimator(),
		state:    DefaultState(),
	}
}

// State returns the state of the piece on show. The seed is filled in once a
// piece has been selected.
func (g *Gallery) State() State {
	return g.state
}

// Piece returns the piece on show.
func (g *Gallery) Piece() Piece {
	return g.piece
}

// Animating reports whether Tick has anything to draw.
func (g *Gallery) Animating() bool {
	return g.anim.Phase() == Animating
}

// FPS is the frame rate of the running animation.
func (g *Gallery) FPS() float64 {
	return g.anim.FPS()
}

// Stop ends the running animation, if any.
func (g *Gallery) Stop() {
	if g.Animating() {
		log.Debug().Str("art", g.piece.Name).Msg("stopping")
	}
	g.anim.Stop()
}

// Select switches to the piece st names. Whatever was running is stopped
// first. Still pieces are painted right away, animations start on the next
// Tick.
func (g *Gallery) Select(ctx context.Context, st State) error {
	g.Stop()

	st = st.Clamped()
	p, err := Find(st.ArtName)
	if err != nil {
		return err
	}
	seed := gart.Init(st.Seed)
	st.Seed = seed.String()
	g.piece, g.state = p, st

	in := Input{
		A:      st.ParameterA,
		B:      st.ParameterB,
		Width:  g.width,
		Height: g.height,
		Worker: g.worker,
	}
	if p.NeedsRandomPool {
		in.Pool = seed.Pool()
	}
	log.Info().Str("art", p.Name).Str("seed", st.Seed).
		Float64("a", st.ParameterA).Float64("b", st.ParameterB).Msg("selected")

	if p.Animated() {
		f, err := p.Start(ctx, in)
		if err != nil {
			return fmt.Errorf("starting %s: %w", p.Name, err)
		}
		g.anim.Start(f)
		return nil
	}
	scene, err := p.Draw(in)
	if err != nil {
		return fmt.Errorf("drawing %s: %w", p.Name, err)
	}
	return g.paint(Output{Scene: scene})
}

// Tick draws the next animation frame for the clock reading nowMS. A
// surface failure stops the animation.
func (g *Gallery) Tick(nowMS float64) error {
	out, ok := g.anim.Tick(nowMS)
	if !ok {
		return nil
	}
	if err := g.paint(out); err != nil {
		g.Stop()
		return err
	}
	return nil
}

func (g *Gallery) paint(out Output) error {
	if g.piece.Surface == WebGL {
		gl, err := g.surfaces.GL(g.width, g.height)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", g.piece.Name, ErrNoSurface, err)
		}
		gl.Clear(glBackground)
		if out.GL == nil {
			return nil
		}
		if err := gl.Upload(out.GL.Vertices, out.GL.Colors); err != nil {
			return err
		}
		return gl.DrawTriangles(out.GL.Matrix, len(out.GL.Vertices)/3)
	}

	p, err := g.surfaces.Canvas(g.width, g.height)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", g.piece.Name, ErrNoSurface, err)
	}
	if out.Scene == nil {
		return nil
	}
	if out.Scene.Background == nil {
		p.Clear(geom.White)
	}
	out.Scene.Draw(p)
	return nil
}

// Package gallery ties the generators together: a catalog of pieces
// described by what they need, the state a viewer persists, and the
// controller that draws one piece at a time.
package gallery

import (
	"context"
	"errors"

	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
	"github.com/scottkirkwood/gart/terrain"
)

var (
	// ErrNoSurface is returned when the surface a piece draws on can't be had.
	ErrNoSurface = errors.New("no drawing surface")
	// ErrUnknownPiece is returned for names not in the catalog.
	ErrUnknownPiece = errors.New("unknown art piece")
)

// Surface is the kind of surface a piece paints on.
type Surface int

const (
	Canvas2D Surface = iota
	WebGL
)

func (s Surface) String() string {
	switch s {
	case Canvas2D:
		return "2d"
	case WebGL:
		return "gl"
	}
	return "unknown"
}

// Input is what every generator is handed. Pool is read only.
type Input struct {
	Pool          *randompool.Pool
	A, B          float64
	Width, Height float64
	// Worker, when set, generates terrain off the render loop.
	Worker *terrain.Worker
}

// Output is one frame. A 2D piece fills Scene, a GL piece fills GL. Both
// may be nil while a GL piece waits for its geometry.
type Output struct {
	Scene *geom.Scene
	GL    *terrain.Frame
}

// Frame returns the picture elapsedMS after the animation started and
// whether the animation has finished.
type Frame func(elapsedMS float64) (Output, bool)

// Piece describes one entry of the catalog. Exactly one of Draw and Start
// is set: Draw for still pictures, Start for animations.
type Piece struct {
	Name            string
	NeedsRandomPool bool
	UsesParameterA  bool
	UsesParameterB  bool
	Surface         Surface

	Draw  func(in Input) (*geom.Scene, error)
	Start func(ctx context.Context, in Input) (Frame, error)
}

// Animated reports whether the piece runs over time.
func (p Piece) Animated() bool {
	return p.Start != nil
}

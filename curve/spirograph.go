package curve

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/scottkirkwood/gart"
	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

// Tooth counts of a classic Spirograph set. A gear's circumference is
// proportional to its teeth.
var (
	Rings  = []int{96, 105, 144, 150}
	Wheels = []int{24, 30, 32, 36, 40, 42, 45, 48, 52, 56, 60, 63, 64, 72, 75, 80, 84}
)

const (
	maxRotations = 4
	maxPicks     = 64
	// radians of wheel travel per ms
	traceSpeed = 0.004
	traceStep  = math.Pi / 180
)

// ErrGears is returned for a wheel that doesn't fit inside its ring.
var ErrGears = errors.New("wheel must be smaller than ring")

// FallbackGears is used when no acceptable pair turns up.
var FallbackGears = Gears{Inner: 24, Outer: 96}

// Gears is a wheel of Inner teeth rolling inside a ring of Outer teeth.
type Gears struct {
	Inner, Outer int
}

// Rotations is how many times the wheel goes round the ring before the
// pen is back where it started: lcm(inner, outer) / outer.
func (g Gears) Rotations() (int, error) {
	if g.Inner <= 0 || g.Outer <= g.Inner {
		return 0, fmt.Errorf("wheel %d inside ring %d: %w", g.Inner, g.Outer, ErrGears)
	}
	lcm, err := gart.LCM(g.Inner, g.Outer)
	if err != nil {
		return 0, err
	}
	return lcm / g.Outer, nil
}

// Closure is the angle around the ring at which the curve closes.
func (g Gears) Closure() float64 {
	n, err := g.Rotations()
	if err != nil {
		return 0
	}
	return 2 * math.Pi * float64(n)
}

// PickGears draws ring and wheel pairs until one closes within four trips
// round the ring. It gives up after 64 draws and returns FallbackGears.
func PickGears(r *randompool.Stream) Gears {
	for i := 0; i < maxPicks; i++ {
		g := Gears{
			Outer: Rings[int(r.Next()*float64(len(Rings)))],
			Inner: Wheels[int(r.Next()*float64(len(Wheels)))],
		}
		if n, err := g.Rotations(); err == nil && n <= maxRotations {
			return g
		}
	}
	log.Warn().Int("picks", maxPicks).Msg("no gears found, using the fallback pair")
	return FallbackGears
}

// Spirograph traces the pen of a wheel rolling inside a ring.
type Spirograph struct {
	Gears  Gears
	Center geom.Point
	// Radius of the ring
	Radius float64
	// Pen is the distance of the pen from the wheel's center as a fraction
	// of the wheel's radius.
	Pen float64
}

// NewSpirograph returns a spirograph whose ring fills radius around center.
// penRatio is clamped to [0.1, 1].
func NewSpirograph(g Gears, center geom.Point, radius, penRatio float64) *Spirograph {
	return &Spirograph{
		Gears:  g,
		Center: center,
		Radius: radius,
		Pen:    gart.Clamp(penRatio, 0.1, 1),
	}
}

// At returns the pen position once the wheel has rolled theta radians
// around the ring. Rolling without slipping means the wheel turns
// theta*outer/inner the other way about its own center.
func (s *Spirograph) At(theta float64) geom.Point {
	r := s.Radius * float64(s.Gears.Inner) / float64(s.Gears.Outer)
	wheel := geom.Pt(math.Cos(theta), math.Sin(theta)).Scale(s.Radius - r)
	spin := theta - theta*float64(s.Gears.Outer)/float64(s.Gears.Inner)
	pen := geom.Pt(math.Cos(spin), math.Sin(spin)).Scale(r * s.Pen)
	return s.Center.Add(wheel).Add(pen)
}

// Trace returns the curve from 0 up to theta, capped at the closure angle.
// The last point is exactly at theta.
func (s *Spirograph) Trace(theta float64) []geom.Point {
	if end := s.Gears.Closure(); theta > end {
		theta = end
	}
	if theta <= 0 {
		return []geom.Point{s.At(0)}
	}
	pts := make([]geom.Point, 0, int(theta/traceStep)+2)
	for t := 0.0; t < theta; t += traceStep {
		pts = append(pts, s.At(t))
	}
	return append(pts, s.At(theta))
}

// Tracer is the animated Spirograph piece.
type Tracer struct {
	s             *Spirograph
	width, height float64
}

// NewTracer picks gears from the pool and sets the pen by parameter b.
func NewTracer(pool *randompool.Pool, width, height, b float64) *Tracer {
	g := PickGears(pool.Stream())
	r := math.Min(width, height) / 2
	s := NewSpirograph(g, geom.Pt(width/2, height/2), r, b/10)
	log.Debug().Int("outer", g.Outer).Int("inner", g.Inner).Msg("spirograph gears")
	return &Tracer{s: s, width: width, height: height}
}

// Spirograph returns the underlying curve.
func (t *Tracer) Spirograph() *Spirograph {
	return t.s
}

// Frame draws the ring and the curve traced by elapsedMS. It reports done
// once the curve has closed.
func (t *Tracer) Frame(elapsedMS float64) (*geom.Scene, bool) {
	theta := math.Max(0, elapsedMS) * traceSpeed
	end := t.s.Gears.Closure()

	scene := geom.NewScene(t.width, t.height)
	scene.Circles = append(scene.Circles, geom.Circle{
		Center: t.s.Center,
		R:      t.s.Radius,
		Style:  geom.Outline,
	})
	pts := t.s.Trace(theta)
	for i := 1; i < len(pts); i++ {
		scene.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
	}
	return scene, theta >= end
}

package geom

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrOutOfRange is returned when a gradient is sampled outside its stops.
var ErrOutOfRange = errors.New("offset out of gradient range")

// jitterIntensity is the full width of the random perturbation of a channel.
const jitterIntensity = 32

// Color has four channels in [0,255]. Channels are kept as floats so
// interpolated values are exact until they are drawn.
type Color struct {
	R, G, B, A float64
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex parses a "#rrggbb" color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(float64(r), float64(g), float64(b)), nil
}

// MustHex is Hex for package level palettes.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clampChannel(x float64) float64 {
	return math.Min(255, math.Max(0, math.Floor(x)))
}

// Jitter perturbs R, G and B by random*32-16 and clamps the result. random is
// expected in [0,1).
func (c Color) Jitter(random float64) Color {
	d := random*jitterIntensity - jitterIntensity/2
	c.R = clampChannel(c.R + d)
	c.G = clampChannel(c.G + d)
	c.B = clampChannel(c.B + d)
	return c
}

// Scale multiplies all channels, alpha included.
func (c Color) Scale(x float64) Color {
	return Color{c.R * x, c.G * x, c.B * x, c.A * x}
}

// Mix returns (1-t)*c + t*o over all four channels.
func (c Color) Mix(o Color, t float64) Color {
	return Color{
		R: (1-t)*c.R + t*o.R,
		G: (1-t)*c.G + t*o.G,
		B: (1-t)*c.B + t*o.B,
		A: (1-t)*c.A + t*o.A,
	}
}

// Equal compares channels within a small tolerance.
func (c Color) Equal(o Color) bool {
	const eps = 0.000001
	return math.Abs(c.R-o.R) < eps && math.Abs(c.G-o.G) < eps &&
		math.Abs(c.B-o.B) < eps && math.Abs(c.A-o.A) < eps
}

// RGBA implements color.Color with premultiplied alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: uint8(clampChannel(c.R)),
		G: uint8(clampChannel(c.G)),
		B: uint8(clampChannel(c.B)),
		A: uint8(clampChannel(c.A)),
	}.RGBA()
}

// Bytes returns the channels as unsigned bytes, as uploaded to a GL buffer.
func (c Color) Bytes() [4]uint8 {
	return [4]uint8{
		uint8(clampChannel(c.R)),
		uint8(clampChannel(c.G)),
		uint8(clampChannel(c.B)),
		uint8(clampChannel(c.A)),
	}
}

// ColorStop is one entry of a Gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// Gradient interpolates linearly between stops. It is computed by hand
// because a canvas gradient would be affected by the current transform.
type Gradient struct {
	stops []ColorStop
}

// AddStop appends a stop. Offsets must be strictly increasing.
func (g *Gradient) AddStop(offset float64, c Color) error {
	if n := len(g.stops); n > 0 && offset <= g.stops[n-1].Offset {
		return fmt.Errorf("stop %v is not after %v", offset, g.stops[n-1].Offset)
	}
	g.stops = append(g.stops, ColorStop{Offset: offset, Color: c})
	return nil
}

// At returns the color at offset. Offsets outside the first and last stop
// fail with ErrOutOfRange, they are never clamped.
func (g *Gradient) At(offset float64) (Color, error) {
	switch len(g.stops) {
	case 0:
		return Black, nil
	case 1:
		if offset != g.stops[0].Offset {
			return Color{}, fmt.Errorf("%v not at single stop %v: %w", offset, g.stops[0].Offset, ErrOutOfRange)
		}
		return g.stops[0].Color, nil
	}
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if offset < first.Offset || offset > last.Offset {
		return Color{}, fmt.Errorf("%v not in (%v, %v): %w", offset, first.Offset, last.Offset, ErrOutOfRange)
	}
	for i, stop := range g.stops {
		if stop.Offset == offset {
			return stop.Color, nil
		}
		if stop.Offset > offset {
			start := g.stops[i-1]
			ratio := (offset - start.Offset) / (stop.Offset - start.Offset)
			c := start.Color.Mix(stop.Color, ratio)
			c.A = 255
			return c, nil
		}
	}
	return last.Color, nil
}

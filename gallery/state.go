package gallery

import (
	"math"

	"github.com/scottkirkwood/gart"
)

const (
	paramMin = 0
	paramMax = 10
	// DefaultPiece is shown when nothing else has been chosen.
	DefaultPiece = "schotter"
	// DefaultParameter is the middle of the slider.
	DefaultParameter = 5
)

// State is what a viewer remembers between sessions.
type State struct {
	ArtName    string  `mapstructure:"art_name" json:"art_name" yaml:"art_name"`
	ParameterA float64 `mapstructure:"parameter_a" json:"parameter_a" yaml:"parameter_a"`
	ParameterB float64 `mapstructure:"parameter_b" json:"parameter_b" yaml:"parameter_b"`
	Seed       string  `mapstructure:"seed" json:"seed" yaml:"seed"`
}

// DefaultState is the state of a fresh viewer.
func DefaultState() State {
	return State{
		ArtName:    DefaultPiece,
		ParameterA: DefaultParameter,
		ParameterB: DefaultParameter,
	}
}

func clampParameter(x float64) float64 {
	if math.IsNaN(x) {
		return DefaultParameter
	}
	return gart.Clamp(x, paramMin, paramMax)
}

// Clamped returns s with both parameters moved into [0,10] and an empty art
// name replaced by the default. Any seed is accepted as is.
func (s State) Clamped() State {
	s.ParameterA = clampParameter(s.ParameterA)
	s.ParameterB = clampParameter(s.ParameterB)
	if s.ArtName == "" {
		s.ArtName = DefaultPiece
	}
	return s
}

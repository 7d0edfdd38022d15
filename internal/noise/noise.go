// Package noise provides the coherent 2D noise fields that terrain is
// sampled from.
package noise

import (
	"errors"
	"fmt"
)

// Source is a deterministic, continuous scalar field. Outputs sit roughly in
// [0,1] but callers must not rely on hard bounds.
type Source interface {
	Noise2D(x, y float64) float64
}

// Func adapts a plain function to Source.
type Func func(x, y float64) float64

func (f Func) Noise2D(x, y float64) float64 { return f(x, y) }

// Constant returns a Source that yields v everywhere.
func Constant(v float64) Source {
	return Func(func(float64, float64) float64 { return v })
}

const (
	AlgorithmValue   = "value"
	AlgorithmPerlin  = "perlin"
	AlgorithmSimplex = "simplex"
)

var (
	ErrUnknownAlgorithm = errors.New("noise: unknown algorithm")
	ErrInvalidParams    = errors.New("noise: invalid params")
)

// Params configures a noise source.
type Params struct {
	Algorithm   string
	Seed        int64
	Octaves     int
	Persistence float64 // amplitude falloff per octave
	Lacunarity  float64 // frequency gain per octave
}

// DefaultParams matches ten octaves with a 0.5 falloff.
func DefaultParams() Params {
	return Params{
		Algorithm:   AlgorithmValue,
		Seed:        0,
		Octaves:     10,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// Validate checks that p can build a source.
func (p Params) Validate() error {
	if p.Octaves < 1 {
		return fmt.Errorf("%w: octaves %d < 1", ErrInvalidParams, p.Octaves)
	}
	if p.Persistence <= 0 {
		return fmt.Errorf("%w: persistence %g <= 0", ErrInvalidParams, p.Persistence)
	}
	if p.Lacunarity <= 0 {
		return fmt.Errorf("%w: lacunarity %g <= 0", ErrInvalidParams, p.Lacunarity)
	}
	switch p.Algorithm {
	case AlgorithmValue, AlgorithmPerlin, AlgorithmSimplex:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, p.Algorithm)
}

// New builds the source named by p.Algorithm.
func New(p Params) (Source, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	switch p.Algorithm {
	case AlgorithmPerlin:
		return NewPerlin(p), nil
	case AlgorithmSimplex:
		return NewSimplex(p), nil
	default:
		return NewOctave(p), nil
	}
}

// unit maps a signed [-1,1] sample onto [0,1].
func unit(v float64) float64 {
	return (v + 1) / 2
}

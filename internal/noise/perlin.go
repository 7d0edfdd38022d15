package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Perlin wraps classic gradient noise. The library sums its own octaves:
// alpha is the amplitude divisor per octave, beta the frequency multiplier.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin maps Persistence to alpha = 1/Persistence and Lacunarity to beta.
func NewPerlin(p Params) *Perlin {
	return &Perlin{
		p: perlin.NewPerlin(1/p.Persistence, p.Lacunarity, int32(p.Octaves), p.Seed),
	}
}

func (n *Perlin) Noise2D(x, y float64) float64 {
	return unit(n.p.Noise2D(x, y))
}

// Simplex sums OpenSimplex octaves and normalizes by total amplitude.
type Simplex struct {
	n           opensimplex.Noise
	octaves     int
	persistence float64
	lacunarity  float64
}

func NewSimplex(p Params) *Simplex {
	return &Simplex{
		n:           opensimplex.New(p.Seed),
		octaves:     p.Octaves,
		persistence: p.Persistence,
		lacunarity:  p.Lacunarity,
	}
}

func (s *Simplex) Noise2D(x, y float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < s.octaves; i++ {
		sum += s.n.Eval2(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= s.persistence
		frequency *= s.lacunarity
	}
	if norm == 0 {
		return 0.5
	}
	return unit(sum / norm)
}

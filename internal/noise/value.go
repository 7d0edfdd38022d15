package noise

import "math"

// Hashed lattice value noise. Lattice corners get a stable pseudo-random
// value from an integer hash; cells are blended with a quintic fade.

// fade is 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash2 is a SplitMix64 style mix of a lattice point and seed.
func hash2(x, y, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func latticeValue(x, y, seed int64) float64 {
	return float64(hash2(x, y, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

// valueNoise2D returns a value in [0,1].
func valueNoise2D(x, y float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	ix, iy := int64(x0), int64(y0)

	fx := fade(x - x0)
	fy := fade(y - y0)

	v00 := latticeValue(ix, iy, seed)
	v10 := latticeValue(ix+1, iy, seed)
	v01 := latticeValue(ix, iy+1, seed)
	v11 := latticeValue(ix+1, iy+1, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fy)
}

// Octave sums value noise over several octaves. Each octave halves in
// amplitude (by Persistence) and doubles in frequency (by Lacunarity). The
// sum is normalized by total amplitude, so the output stays in [0,1] with
// most samples well inside it.
type Octave struct {
	seed        int64
	octaves     int
	persistence float64
	lacunarity  float64
}

// NewOctave builds an Octave source from p. Algorithm is ignored.
func NewOctave(p Params) *Octave {
	return &Octave{
		seed:        p.Seed,
		octaves:     p.Octaves,
		persistence: p.Persistence,
		lacunarity:  p.Lacunarity,
	}
}

func (o *Octave) Noise2D(x, y float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < o.octaves; i++ {
		sum += valueNoise2D(x*frequency, y*frequency, o.seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= o.persistence
		frequency *= o.lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

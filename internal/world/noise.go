package world

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"cardboard/internal/config"
)

// Source is a coherent 3D noise function with values in [-1, 1].
type Source interface {
	Eval3(x, y, z float64) float64
}

// NewSource returns the noise selected by kind, seeded with seed.
func NewSource(kind config.NoiseSource, seed int64) Source {
	switch kind {
	case config.NoiseValue:
		return valueSource{seed: seed}
	default:
		return opensimplex.New(seed)
	}
}

// Brownian sums octaves of a Source, each at double the frequency and half
// the amplitude of the previous one.
type Brownian struct {
	Source      Source
	Octaves     int
	Wavelength  float64
	Persistence float64
	Lacunarity  float64
}

// NewBrownian returns fractal noise over src with the usual 0.5 persistence
// and 2.0 lacunarity.
func NewBrownian(src Source, octaves int, wavelength float64) Brownian {
	return Brownian{
		Source:      src,
		Octaves:     octaves,
		Wavelength:  wavelength,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// Eval3 returns the normalized octave sum, clamped to [-1, 1].
func (b Brownian) Eval3(x, y, z float64) float64 {
	amplitude := 1.0
	frequency := 1.0 / b.Wavelength
	sum := 0.0
	norm := 0.0
	for range b.Octaves {
		sum += b.Source.Eval3(x*frequency, y*frequency, z*frequency) * amplitude
		norm += amplitude
		amplitude *= b.Persistence
		frequency *= b.Lacunarity
	}
	if norm == 0 {
		return 0
	}
	return max(-1, min(1, sum/norm))
}

// valueSource is lattice value noise, kept as a cheaper alternative to simplex.
type valueSource struct {
	seed int64
}

func (v valueSource) Eval3(x, y, z float64) float64 {
	return valueNoise3D(x, y, z, v.seed)*2 - 1
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func hash3(x, y, z int64, seed int64) uint64 {
	// SplitMix64 with a separate odd multiplier per axis
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func latticeValue3D(x, y, z int64, seed int64) float64 {
	h := hash3(x, y, z, seed)
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

// valueNoise3D interpolates hashed lattice values, result in [0,1].
func valueNoise3D(x, y, z float64, seed int64) float64 {
	x0, y0, z0 := math.Floor(x), math.Floor(y), math.Floor(z)
	ix, iy, iz := int64(x0), int64(y0), int64(z0)

	fx := fade(x - x0)
	fy := fade(y - y0)
	fz := fade(z - z0)

	v000 := latticeValue3D(ix, iy, iz, seed)
	v100 := latticeValue3D(ix+1, iy, iz, seed)
	v010 := latticeValue3D(ix, iy+1, iz, seed)
	v110 := latticeValue3D(ix+1, iy+1, iz, seed)
	v001 := latticeValue3D(ix, iy, iz+1, seed)
	v101 := latticeValue3D(ix+1, iy, iz+1, seed)
	v011 := latticeValue3D(ix, iy+1, iz+1, seed)
	v111 := latticeValue3D(ix+1, iy+1, iz+1, seed)

	i0 := lerp(lerp(v000, v100, fx), lerp(v010, v110, fx), fy)
	i1 := lerp(lerp(v001, v101, fx), lerp(v011, v111, fx), fy)
	return lerp(i0, i1, fz)
}

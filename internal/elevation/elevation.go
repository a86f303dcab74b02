package elevation

import (
	"math"
	"math/rand/v2"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Settings control the ridged multifractal noise shaping the heightmap.
type Settings struct {
	Seed        int64   `json:"seed" yaml:"seed"`
	Octaves     int     `json:"octaves" yaml:"octaves"`
	Frequency   float64 `json:"frequency" yaml:"frequency"`
	Lacunarity  float64 `json:"lacunarity" yaml:"lacunarity"`
	Persistence float64 `json:"persistence" yaml:"persistence"`
	Attenuation float64 `json:"attenuation" yaml:"attenuation"`
}

// FromSeed returns the default noise parameters with the given seed.
func FromSeed(seed int64) Settings {
	return Settings{
		Seed:        seed,
		Octaves:     12,
		Frequency:   2.5,
		Lacunarity:  2.0,
		Persistence: 1.25,
		Attenuation: 2.5,
	}
}

// DefaultSettings returns the default parameters with a random 32-bit seed.
func DefaultSettings() Settings {
	return FromSeed(int64(rand.Uint32()))
}

// ridged layers OpenSimplex octaves into a ridged multifractal: each octave
// contributes its squared ridge (1 - |noise|)², weighted by the previous
// octave's attenuated signal so ridges sharpen where the terrain is high.
type ridged struct {
	base  opensimplex.Noise
	s     Settings
	scale float64
}

func newRidged(s Settings) *ridged {
	scale := 1.0
	cur := s.Persistence
	for i := 1; i < s.Octaves; i++ {
		scale += cur
		cur *= s.Persistence
	}
	return &ridged{base: opensimplex.New(s.Seed), s: s, scale: scale}
}

func (r *ridged) at(x, y float64) float64 {
	freq := r.s.Frequency
	weight := 1.0
	amp := 1.0
	var sum float64
	for o := 0; o < r.s.Octaves; o++ {
		signal := r.base.Eval2(x*freq, y*freq)
		signal = 1 - math.Abs(signal)
		signal *= signal
		signal *= weight
		weight = signal * r.s.Attenuation
		if weight > 1 {
			weight = 1
		} else if weight < 0 {
			weight = 0
		}
		sum += signal * amp
		amp *= r.s.Persistence
		freq *= r.s.Lacunarity
	}
	return sum*(2/r.scale) - 1
}

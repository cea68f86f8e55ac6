// Package noisefield wraps coherent noise primitives behind a narrow
// sampling interface, so generators don't care which algorithm sits
// underneath.
package noisefield

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	// perlin fractal parameters; smoothness falloff, harmonic scaling
	// & octave count
	fractalAlpha   = 2.0
	fractalBeta    = 2.0
	fractalOctaves = 3

	billowOctaves     = 3
	billowPersistence = 0.5
)

// Field yields a noise sample in [-1, 1] for a 2D co-ord.
// A Field is pure; for the seed & frequency fixed at construction the
// same co-ord always returns the same value.
type Field interface {
	Sample(x, y float64) float64
}

// fractal is multi-octave perlin noise, used for terrain elevation.
type fractal struct {
	noise     *perlin.Perlin
	frequency float64
}

// NewFractal returns a fractal noise Field with the given seed & frequency.
func NewFractal(seed int64, frequency float64) Field {
	return &fractal{
		noise:     perlin.NewPerlin(fractalAlpha, fractalBeta, fractalOctaves, seed),
		frequency: frequency,
	}
}

// Sample returns elevation noise at x,y
func (f *fractal) Sample(x, y float64) float64 {
	return clamp(f.noise.Noise2D(x*f.frequency, y*f.frequency))
}

// billow is always-positive ridged noise, used for soil layer thickness.
// Octaves of simplex noise are summed, normalised & absolute-valued.
type billow struct {
	noise     opensimplex.Noise
	frequency float64
}

// NewBillow returns a billowed noise Field with the given seed & frequency.
func NewBillow(seed int64, frequency float64) Field {
	return &billow{
		noise:     opensimplex.New(seed),
		frequency: frequency,
	}
}

// Sample returns layer noise at x,y; always in [0, 1]
func (b *billow) Sample(x, y float64) float64 {
	var total, maxAmp float64
	amp := 1.0
	freq := b.frequency

	for i := 0; i < billowOctaves; i++ {
		total += b.noise.Eval2(x*freq, y*freq) * amp
		maxAmp += amp
		amp *= billowPersistence
		freq *= 2
	}

	return math.Abs(clamp(total / maxAmp))
}

// clamp pins a sample to [-1, 1]; perlin octave sums can overshoot slightly
func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

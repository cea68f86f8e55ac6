package isoterra

import (
	"math/rand"
	"time"

	"github.com/voidshard/isoterra/internal/noisefield"
)

const (
	// default edge length for generated grids
	defaultLen = 64

	// default frequency parameter for the noise generator
	defaultFrequency = 0.05
)

// SimpleGen is a terrain generator that uses fractal noise for heightmap
// generation.
//
// SimpleGen is relatively simple & only fills the landscape with Rock.
//
// Example use:
//
//	grid := isoterra.NewSimpleGen().SetLen(32).Generate()
type SimpleGen struct {
	length    int
	frequency float64
	seed      int64
}

// NewSimpleGen returns a SimpleGen with all default settings
func NewSimpleGen() SimpleGen {
	return SimpleGen{
		length:    defaultLen,
		frequency: defaultFrequency,
	}
}

// SetLen sets the edge length of generated grids
func (s SimpleGen) SetLen(length int) SimpleGen {
	s.length = length
	return s
}

// SetFrequency sets the frequency parameter for the noise generator.
//
// Values of 0.05 and below are recommended. At 0.001 terrain will be
// mostly gentle slopes, at 0.005 there will be significant hills, at
// 0.05 the terrain features a lot of mountain peaks.
func (s SimpleGen) SetFrequency(freq float64) SimpleGen {
	s.frequency = freq
	return s
}

// SetSeed fixes the seed for noise generation. Two runs with the same
// seed produce identical grids (a random seed is chosen if not set).
func (s SimpleGen) SetSeed(seed int64) SimpleGen {
	s.seed = seed
	return s
}

// Generate builds a rock-only terrain grid.
func (s SimpleGen) Generate() *Grid {
	return s.generate(nil)
}

// GenerateSlices builds a grid, snapshotting it each time one slice in
// the x axis is completed.
//
// The snapshots can be fed to the renderer to produce a series of images
// showing even those blocks that are obscured in the final render, which
// can be useful for testing or diagnostics.
func (s SimpleGen) GenerateSlices() []*Grid {
	snaps := make([]*Grid, 0, s.length)
	s.generate(func(g *Grid) {
		snaps = append(snaps, g.Clone())
	})
	return snaps
}

// generate fills a fresh grid column by column, calling sliceDone (if
// given) after each completed x slice.
func (s SimpleGen) generate(sliceDone func(*Grid)) *Grid {
	rng := rand.New(rand.NewSource(pickSeed(s.seed)))
	height := noisefield.NewFractal(rng.Int63(), s.frequency)

	grid := NewGrid(s.length)
	half := float64(s.length) / 2.0

	for x := 0; x < grid.Len(); x++ {
		for y := 0; y < grid.Len(); y++ {
			h := int(half + height.Sample(float64(x), float64(y))*half)
			grid.Fill(x, y, 0, h, Rock)
		}

		if sliceDone != nil {
			sliceDone(grid)
		}
	}

	return grid
}

// pickSeed returns the configured seed, or a fresh one if unset
func pickSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

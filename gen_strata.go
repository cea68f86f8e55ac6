package isoterra

import (
	"math/rand"

	"github.com/voidshard/isoterra/internal/noisefield"
)

const (
	defaultLayerHeight   = 15
	defaultMinSoilCutoff = 45
	defaultMaxWaterLevel = 40
)

// StrataGen is a terrain generator that, unlike SimpleGen, uses all the
// available block types: it layers soil on top of rock, caps the soil
// with grass & floods low-lying terrain with water.
//
// Elevation against two per-run randomized lines (the water level & the
// soil line) splits columns into three bands: lowland lakes, grassy
// mid-elevation soil & bare mountain peaks.
//
// Example use:
//
//	grid := isoterra.NewStrataGen().SetLen(128).Generate()
type StrataGen struct {
	length        int
	frequency     float64
	layerHeight   int
	minSoilCutoff int
	maxWaterLevel int
	seed          int64
}

// NewStrataGen returns a StrataGen with all default settings
func NewStrataGen() StrataGen {
	return StrataGen{
		length:        defaultLen,
		frequency:     defaultFrequency,
		layerHeight:   defaultLayerHeight,
		minSoilCutoff: defaultMinSoilCutoff,
		maxWaterLevel: defaultMaxWaterLevel,
	}
}

// SetLen sets the edge length of generated grids
func (s StrataGen) SetLen(length int) StrataGen {
	s.length = length
	return s
}

// SetFrequency sets the frequency parameter for the noise generators.
//
// Values of 0.05 and below are recommended. At 0.001 terrain will be
// mostly gentle slopes, at 0.005 there will be significant hills, at
// 0.05 the terrain features a lot of mountain peaks.
func (s StrataGen) SetFrequency(freq float64) StrataGen {
	s.frequency = freq
	return s
}

// SetLayerHeight sets how deep the soil layer can be. The actual depth
// is subject to a noise function, so this is the maximum it can be.
func (s StrataGen) SetLayerHeight(layerHeight int) StrataGen {
	s.layerHeight = layerHeight
	return s
}

// SetMinSoilCutoff sets the minimum possible soil line. Terrain above
// the soil line has no soil, imitating the bare rock of a mountain; the
// actual line is randomized per run between this value & the edge length.
func (s StrataGen) SetMinSoilCutoff(minSoilCutoff int) StrataGen {
	s.minSoilCutoff = minSoilCutoff
	return s
}

// SetMaxWaterLevel sets the maximum possible water level. Empty space
// below the water level is filled with water; the actual level is
// randomized per run, up to this value.
func (s StrataGen) SetMaxWaterLevel(maxWaterLevel int) StrataGen {
	s.maxWaterLevel = maxWaterLevel
	return s
}

// SetSeed fixes the seed for noise & level randomization. Two runs with
// the same seed produce identical grids (a random seed is chosen if not
// set).
func (s StrataGen) SetSeed(seed int64) StrataGen {
	s.seed = seed
	return s
}

// Generate builds a stratified terrain grid.
func (s StrataGen) Generate() *Grid {
	if s.length < 1 {
		return NewGrid(0)
	}

	rng := rand.New(rand.NewSource(pickSeed(s.seed)))

	height := noisefield.NewFractal(rng.Int63(), s.frequency)
	layer := noisefield.NewBillow(rng.Int63(), s.frequency)

	waterLevel := s.waterLevel(rng)
	soilLevel := s.soilLevel(rng)

	grid := NewGrid(s.length)
	half := float64(s.length) / 2.0

	for x := 0; x < grid.Len(); x++ {
		for y := 0; y < grid.Len(); y++ {
			h := int(half + height.Sample(float64(x), float64(y))*half)
			depth := int(layer.Sample(float64(x), float64(y)) * float64(s.layerHeight))
			fillColumn(grid, x, y, h, depth, waterLevel, soilLevel)
		}
	}

	return grid
}

// fillColumn writes one (x,y) column of terrain. Elevation against the
// water & soil lines decides which of three bands the column falls in.
func fillColumn(grid *Grid, x, y, height, soilDepth, waterLevel, soilLevel int) {
	if height < waterLevel {
		// rock, then water up to just below the water level.
		// Zero height would underflow the band bounds; Fill clamps
		// them at the bottom of the grid.
		grid.Fill(x, y, 0, height-1, Rock)
		grid.Fill(x, y, height-1, waterLevel-1, Water)
	} else if height < soilLevel {
		// rock, then soil, then a single block of grass
		rockHeight := height - soilDepth
		if rockHeight < 0 {
			rockHeight = 0
		}

		grid.Fill(x, y, 0, rockHeight, Rock)

		if rockHeight < height-1 {
			grid.Fill(x, y, rockHeight, height-1, Soil)
		}

		if rockHeight < height {
			grid.Set(x, y, height-1, Grass)
		}
	} else {
		// just rock
		grid.Fill(x, y, 0, height, Rock)
	}
}

// waterLevel picks this run's water level, in [0, maxWaterLevel]
func (s StrataGen) waterLevel(rng *rand.Rand) int {
	max := s.maxWaterLevel
	if max < 0 {
		max = 0
	}
	return rng.Intn(max + 1)
}

// soilLevel picks this run's soil line, in [minSoilCutoff, length).
// The cutoff is clamped inside the grid so the range is always drawable.
func (s StrataGen) soilLevel(rng *rand.Rand) int {
	cutoff := s.minSoilCutoff
	if cutoff >= s.length {
		cutoff = s.length - 1
	}
	if cutoff < 0 {
		cutoff = 0
	}
	return cutoff + rng.Intn(s.length-cutoff)
}

package isoterra

import (
	"github.com/boljen/go-bitmap"
)

// Grid is a cubic map of voxels, indexed (x, y, z) with z pointing up.
// There is nothing inherently isometric about the data itself, it's
// simply intended to be rendered in an isometric perspective.
//
// A Grid is written by exactly one generator per generation pass &
// read-only afterwards; callers wanting to share one between goroutines
// should Clone() it.
type Grid struct {
	length int
	voxels []Block

	// bitmap of block IDs ever placed, so the renderer can check
	// atlas coverage without walking the whole cube
	seen bitmap.Bitmap
}

// NewGrid returns a Grid with the given edge length, filled with Empty.
func NewGrid(length int) *Grid {
	if length < 0 {
		length = 0
	}
	voxels := make([]Block, length*length*length)
	for i := range voxels {
		voxels[i] = Empty
	}
	return &Grid{
		length: length,
		voxels: voxels,
		seen:   bitmap.New(8),
	}
}

// Len returns the edge length of the cube. Every edge is the same.
func (g *Grid) Len() int {
	return g.length
}

// At returns the block at x,y,z. Out of bounds co-ords read as Empty.
func (g *Grid) At(x, y, z int) Block {
	if g.isOutOfBounds(x, y, z) {
		return Empty
	}
	return g.voxels[g.index(x, y, z)]
}

// Set places a block at x,y,z. Out of bounds co-ords are ignored.
func (g *Grid) Set(x, y, z int, b Block) {
	if g.isOutOfBounds(x, y, z) {
		return
	}
	g.voxels[g.index(x, y, z)] = b
	if b != Empty {
		g.seen.Set(b.ID(), true)
	}
}

// Fill sets the column at x,y to b for z in [zmin, zmax).
// The range is clamped to the cube, so callers may pass bounds that fall
// off either end without incident.
func (g *Grid) Fill(x, y, zmin, zmax int, b Block) {
	if zmin < 0 {
		zmin = 0
	}
	if zmax > g.length {
		zmax = g.length
	}
	for z := zmin; z < zmax; z++ {
		g.Set(x, y, z, b)
	}
}

// Blocks returns the distinct non-Empty blocks placed in the grid.
func (g *Grid) Blocks() []Block {
	found := []Block{}
	for _, b := range allBlocks {
		if b == Empty {
			continue
		}
		if g.seen.Get(b.ID()) {
			found = append(found, b)
		}
	}
	return found
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	voxels := make([]Block, len(g.voxels))
	copy(voxels, g.voxels)

	seen := bitmap.New(8)
	copy(seen, g.seen)

	return &Grid{length: g.length, voxels: voxels, seen: seen}
}

func (g *Grid) index(x, y, z int) int {
	return (x*g.length+y)*g.length + z
}

// isOutOfBounds determines if x,y,z is outside the cube
func (g *Grid) isOutOfBounds(x, y, z int) bool {
	return x < 0 || x >= g.length ||
		y < 0 || y >= g.length ||
		z < 0 || z >= g.length
}

package isoterra

// FixtureGen is a generator producing a small, mostly flat map: rock up
// to the halfway layer, with an inset plateau one layer above. It exists
// so tests & examples have a predictable grid to render.
//
// The minimum edge is 6; a smaller Dim is pegged to 6.
type FixtureGen struct {
	// Dim is the edge length to use
	Dim int
}

// Generate builds the fixture grid.
func (f FixtureGen) Generate() *Grid {
	dim := f.Dim
	if dim < 6 {
		dim = 6
	}

	grid := NewGrid(dim)
	halfway := dim / 2

	// a flat slab across the whole cube, up to halfway in the z axis
	for x := 0; x < dim; x++ {
		for y := 0; y < dim; y++ {
			grid.Fill(x, y, 0, halfway, Rock)
		}
	}

	// a smaller square on the level immediately above the slab
	for x := 2; x < dim-2; x++ {
		for y := 2; y < dim-2; y++ {
			grid.Set(x, y, halfway, Rock)
		}
	}

	return grid
}

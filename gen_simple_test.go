package isoterra

import (
	"testing"
)

// columnTop returns the z of the highest non-Empty voxel in column x,y
// or -1 if the column is empty.
func columnTop(grid *Grid, x, y int) int {
	for z := grid.Len() - 1; z >= 0; z-- {
		if grid.At(x, y, z) != Empty {
			return z
		}
	}
	return -1
}

func TestSimpleGenShape(t *testing.T) {
	for _, length := range []int{1, 2, 8, 16} {
		grid := NewSimpleGen().SetLen(length).SetSeed(1).Generate()

		if grid.Len() != length {
			t.Fatalf("expected edge length %d, got %d", length, grid.Len())
		}
	}
}

func TestSimpleGenColumnsContiguous(t *testing.T) {
	grid := NewSimpleGen().SetLen(16).SetSeed(42).Generate()

	for x := 0; x < grid.Len(); x++ {
		for y := 0; y < grid.Len(); y++ {
			top := columnTop(grid, x, y)

			for z := 0; z <= top; z++ {
				if grid.At(x, y, z) != Rock {
					t.Fatalf("gap in column %d,%d at z=%d", x, y, z)
				}
			}
			for z := top + 1; z < grid.Len(); z++ {
				if grid.At(x, y, z) != Empty {
					t.Fatalf("floating block in column %d,%d at z=%d", x, y, z)
				}
			}
		}
	}
}

func TestSimpleGenDeterministicWithSeed(t *testing.T) {
	gen := NewSimpleGen().SetLen(12).SetSeed(7)

	a := gen.Generate()
	b := gen.Generate()

	for x := 0; x < a.Len(); x++ {
		for y := 0; y < a.Len(); y++ {
			for z := 0; z < a.Len(); z++ {
				if a.At(x, y, z) != b.At(x, y, z) {
					t.Fatalf("grids diverge at %d,%d,%d", x, y, z)
				}
			}
		}
	}
}

func TestSimpleGenSlices(t *testing.T) {
	snaps := NewSimpleGen().SetLen(8).SetSeed(3).GenerateSlices()

	if len(snaps) != 8 {
		t.Fatalf("expected 8 snapshots, got %d", len(snaps))
	}

	// snapshot i holds terrain only in x slices 0..i
	for i, snap := range snaps {
		for x := i + 1; x < snap.Len(); x++ {
			for y := 0; y < snap.Len(); y++ {
				if columnTop(snap, x, y) != -1 {
					t.Fatalf("snapshot %d has blocks in unfinished slice x=%d", i, x)
				}
			}
		}
	}

	// snapshots are independent copies
	snaps[0].Set(7, 7, 7, Water)
	if snaps[1].At(7, 7, 7) == Water {
		t.Fatal("snapshots share underlying storage")
	}
}

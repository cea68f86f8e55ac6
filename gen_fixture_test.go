package isoterra

import (
	"testing"
)

func TestFixtureGenPegsToSix(t *testing.T) {
	grid := FixtureGen{Dim: 1}.Generate()

	if grid.Len() != 6 {
		t.Fatalf("expected edge length pegged to 6, got %d", grid.Len())
	}
}

func TestFixtureGenLayers(t *testing.T) {
	grid := FixtureGen{Dim: 6}.Generate()

	// the plane just below halfway is completely filled
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			if grid.At(x, y, 2) != Rock {
				t.Fatalf("expected Rock at %d,%d,2", x, y)
			}
		}
	}

	// the plane at halfway holds only the inset plateau
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			want := Empty
			if x >= 2 && x < 4 && y >= 2 && y < 4 {
				want = Rock
			}
			if grid.At(x, y, 3) != want {
				t.Fatalf("expected %q at %d,%d,3, got %q", want, x, y, grid.At(x, y, 3))
			}
		}
	}

	// nothing above the plateau
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			if grid.At(x, y, 4) != Empty {
				t.Fatalf("expected Empty at %d,%d,4", x, y)
			}
		}
	}
}

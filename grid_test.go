package isoterra

import (
	"testing"
)

func TestNewGridAllEmpty(t *testing.T) {
	grid := NewGrid(2)

	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				if grid.At(x, y, z) != Empty {
					t.Fatalf("expected Empty at %d,%d,%d", x, y, z)
				}
			}
		}
	}
}

func TestGridLen(t *testing.T) {
	grid := NewGrid(50)

	if grid.Len() != 50 {
		t.Fatalf("expected edge length 50, got %d", grid.Len())
	}
}

func TestGridOutOfBounds(t *testing.T) {
	grid := NewGrid(4)

	// reads outside the cube are Empty
	for _, c := range [][3]int{
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		{4, 0, 0}, {0, 4, 0}, {0, 0, 4},
	} {
		if grid.At(c[0], c[1], c[2]) != Empty {
			t.Fatalf("expected Empty read at %v", c)
		}
	}

	// writes outside the cube are dropped
	grid.Set(0, 0, -1, Rock)
	grid.Set(4, 0, 0, Rock)
	if len(grid.Blocks()) != 0 {
		t.Fatalf("expected no blocks placed, got %v", grid.Blocks())
	}
}

func TestGridFillClamps(t *testing.T) {
	grid := NewGrid(4)

	grid.Fill(1, 1, -3, 10, Rock)

	for z := 0; z < 4; z++ {
		if grid.At(1, 1, z) != Rock {
			t.Fatalf("expected Rock at z=%d", z)
		}
	}
}

func TestGridBlocks(t *testing.T) {
	grid := NewGrid(4)
	grid.Set(0, 0, 0, Rock)
	grid.Set(0, 0, 1, Soil)
	grid.Set(0, 0, 2, Grass)

	found := map[Block]bool{}
	for _, b := range grid.Blocks() {
		found[b] = true
	}

	if !found[Rock] || !found[Soil] || !found[Grass] {
		t.Fatalf("expected rock, soil & grass, got %v", grid.Blocks())
	}
	if found[Water] || found[Empty] {
		t.Fatalf("unexpected blocks in %v", grid.Blocks())
	}
}

func TestGridClone(t *testing.T) {
	grid := NewGrid(3)
	grid.Set(1, 1, 1, Rock)

	cp := grid.Clone()
	cp.Set(1, 1, 1, Water)
	cp.Set(0, 0, 0, Grass)

	if grid.At(1, 1, 1) != Rock {
		t.Fatal("clone write leaked into the original")
	}
	if grid.At(0, 0, 0) != Empty {
		t.Fatal("clone write leaked into the original")
	}
	if cp.At(1, 1, 1) != Water {
		t.Fatal("clone did not take the write")
	}

	for _, b := range grid.Blocks() {
		if b == Grass || b == Water {
			t.Fatal("clone seen-set leaked into the original")
		}
	}
}

package isoterra

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Block is the material a single voxel is made of.
// The set is closed; terrain is built from rock, soil, grass and water,
// and anything a generator doesn't fill in stays Empty.
type Block string

const (
	Empty Block = "empty" // nothing; never rendered
	Rock  Block = "rock"
	Grass Block = "grass"
	Soil  Block = "soil"
	Water Block = "water"
)

var (
	allBlocks = []Block{Empty, Rock, Grass, Soil, Water}

	blockindex = map[Block]int{
		Empty: 0,
		Rock:  1,
		Grass: 2,
		Soil:  3,
		Water: 4,
	}

	invBlockIndex = map[int]Block{}
)

func init() {
	for k, v := range blockindex {
		invBlockIndex[v] = k
	}
}

// ID returns the index of a block type
func (b Block) ID() int {
	v, ok := blockindex[b]
	if !ok {
		return 0
	}
	return v
}

// blockForID is the inversion of Block.ID()
func blockForID(i int) Block {
	b, ok := invBlockIndex[i]
	if !ok {
		return Empty
	}
	return b
}

// AllBlocks returns all known Block enums
func AllBlocks() []Block {
	return allBlocks
}

// ParseBlock maps a descriptor string ("Rock", "water", ..) to a Block
func ParseBlock(s string) (Block, error) {
	b := Block(strings.ToLower(s))
	_, ok := blockindex[b]
	if !ok {
		return Empty, fmt.Errorf("unknown block kind %q", s)
	}
	return b, nil
}

// UnmarshalText lets block kinds be read straight out of atlas descriptors
func (b *Block) UnmarshalText(text []byte) error {
	parsed, err := ParseBlock(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Colour returns a flat display colour for the block. The renderer draws
// sprites rather than these; they're used by the mesh export.
func (b Block) Colour() color.RGBA {
	switch b {
	case Rock:
		return colornames.Gray
	case Grass:
		return colornames.Lawngreen
	case Soil:
		return colornames.Saddlebrown
	case Water:
		return colornames.Deepskyblue
	}
	return color.RGBA{}
}

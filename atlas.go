package isoterra

import (
	"image"
	_ "image/png" // sprite sheets are expected to be png
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// atlasConfig is the deserialized tile descriptor (TOML).
//
// The descriptor names what tiles sit in what sprite sheets, eg:
//
//	# width & height of an individual tile in pixels
//	width = 24
//	height = 26
//	base_path = "assets"
//
//	[[files]]
//	filename = "cubes.png"
//
//	    [[files.tiles]]
//	    kind = "rock"
//
//	    # offsets are optional & assumed to be 0,0 (upper left)
//	    [[files.tiles]]
//	    kind = "rock"
//	    x = 25
type atlasConfig struct {
	Width    int         `toml:"width"`
	Height   int         `toml:"height"`
	BasePath string      `toml:"base_path"`
	Files    []atlasFile `toml:"files"`
}

type atlasFile struct {
	Filename string    `toml:"filename"`
	Tiles    []tileDef `toml:"tiles"`
}

type tileDef struct {
	Kind Block `toml:"kind"`
	X    int   `toml:"x"`
	Y    int   `toml:"y"`
}

// Tile is a single sprite used to draw one voxel; a rectangle within a
// (shared) sprite sheet.
//
// Copying tiles out of sheets into individual images would cost us on
// atlas load, so we keep the sheet reference & the source rectangle and
// copy out of the sheet at render time. Sheets are never duplicated, all
// tiles cut from one file share the same image.
type Tile struct {
	Sheet  image.Image
	Bounds image.Rectangle
}

// Atlas resolves blocks to the sprites that can draw them.
// An Atlas is immutable once built & safe to share between any number of
// concurrent renders.
type Atlas struct {
	tileWidth  int
	tileHeight int

	// each block can have several tiles; the renderer picks one at
	// random every time a block is drawn
	tiles map[Block][]Tile
}

// LoadAtlas builds an Atlas from the TOML descriptor in `s`.
// Sheets named by the descriptor are loaded relative to its base_path.
func LoadAtlas(s string) (*Atlas, error) {
	parsed := &atlasConfig{}
	err := toml.Unmarshal([]byte(s), parsed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse atlas descriptor")
	}

	tiles := map[Block][]Tile{}
	for _, f := range parsed.Files {
		fpath := filepath.Join(parsed.BasePath, f.Filename)
		sheet, err := loadImage(fpath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load sheet %s", fpath)
		}

		for _, t := range f.Tiles {
			tiles[t.Kind] = append(tiles[t.Kind], Tile{
				Sheet:  sheet,
				Bounds: image.Rect(t.X, t.Y, t.X+parsed.Width, t.Y+parsed.Height),
			})
		}
	}

	return NewAtlas(parsed.Width, parsed.Height, tiles)
}

// NewAtlas builds an Atlas from already loaded tiles, validating that
// every block bar Empty has at least one tile to draw it with.
func NewAtlas(tileWidth, tileHeight int, tiles map[Block][]Tile) (*Atlas, error) {
	for _, b := range AllBlocks() {
		if b == Empty {
			continue // we special-case empty since it needs no tiles
		}
		if len(tiles[b]) == 0 {
			return nil, MissingTileError{Block: b}
		}
	}

	return &Atlas{
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		tiles:      tiles,
	}, nil
}

// TileSize returns the pixel width & height shared by all tiles.
func (a *Atlas) TileSize() (int, int) {
	return a.tileWidth, a.tileHeight
}

// Tiles returns the tiles registered for the given block.
func (a *Atlas) Tiles(b Block) []Tile {
	return a.tiles[b]
}

// loadImage reads & decodes a sprite sheet from disk
func loadImage(fpath string) (image.Image, error) {
	fd, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	im, _, err := image.Decode(fd)
	return im, err
}

package isoterra

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// defaultBackground is the sky colour canvases are cleared to
var defaultBackground = color.RGBA{R: 154, G: 216, B: 224, A: 255}

// Renderer projects Grids onto 2:1 isometric raster images using
// sprites from an Atlas.
//
// Tiles are assumed to be a 2:1 isometric projection. They can represent
// a cube or a cuboid, in which case the top face should adjut against
// the top of the tile & take up the whole width - the rest of the cube
// sits below.
type Renderer struct {
	atlas      *Atlas
	background color.Color
	seed       int64
}

// NewRenderer returns a Renderer drawing with the given atlas.
func NewRenderer(atlas *Atlas) *Renderer {
	return &Renderer{
		atlas:      atlas,
		background: defaultBackground,
	}
}

// SetBackground overrides the default background colour
func (r *Renderer) SetBackground(c color.Color) *Renderer {
	r.background = c
	return r
}

// SetSeed fixes the seed used for random sprite selection (a random
// seed is chosen per render if not set)
func (r *Renderer) SetSeed(seed int64) *Renderer {
	r.seed = seed
	return r
}

// Render draws the grid & returns the finished raster.
//
// Floors are composited bottom-to-top; because higher floors are drawn
// after (on top of) lower ones, painter's-algorithm occlusion falls out
// without a z-buffer. Tiles within one floor never overlap, so the
// iteration order there doesn't matter.
func (r *Renderer) Render(grid *Grid) (image.Image, error) {
	// every block in the grid must be drawable before we start.
	// NewAtlas guarantees this for the builtin block set, so this
	// only fires on a hand-rolled atlas gone wrong.
	for _, b := range grid.Blocks() {
		if len(r.atlas.Tiles(b)) == 0 {
			return nil, errors.Wrap(MissingTileError{Block: b}, "cannot render grid")
		}
	}

	width, height := r.atlas.TileSize()
	topHeight := width / 2
	sidesHeight := height - topHeight

	// vertical pixels taken by a single floor; walking the diagonal
	// moves one topHeight per tile, plus the frontmost tile's visible
	// sides
	floorHeight := grid.Len()*topHeight + sidesHeight

	surfWidth, surfHeight := surfaceSize(width, height, grid.Len())

	ctx := gg.NewContext(surfWidth, surfHeight)
	ctx.SetColor(r.background)
	ctx.Clear()

	out, ok := ctx.Image().(*image.RGBA)
	if !ok {
		return nil, errors.New("failed to create render surface")
	}

	rng := rand.New(rand.NewSource(pickSeed(r.seed)))

	// x: centre the 0,0 tile on the midpoint, half a tile either side.
	// y: start from the bottom, going up past the margin & the height
	// of the first floor.
	origin := image.Pt(
		surfWidth/2-width/2,
		surfHeight-height-floorHeight,
	)

	for z := 0; z < grid.Len(); z++ {
		for y := 0; y < grid.Len(); y++ {
			for x := 0; x < grid.Len(); x++ {
				b := grid.At(x, y, z)
				if b == Empty {
					continue // blank, draw nothing
				}

				pos := tilePos(origin, x, y, width)
				sprite := pickTile(rng, r.atlas.Tiles(b))

				dst := image.Rect(pos.X, pos.Y, pos.X+width, pos.Y+height)
				draw.Draw(out, dst, sprite.Sheet, sprite.Bounds.Min, draw.Over)
			}
		}

		// shift to the floor above
		origin = origin.Sub(image.Pt(0, sidesHeight))
	}

	return out, nil
}

// surfaceSize returns the canvas dimensions needed to contain a grid of
// the given edge length at the given tile size, plus margins: a tile of
// width either side, a tile of height top & bottom.
func surfaceSize(tileWidth, tileHeight, gridLen int) (int, int) {
	topHeight := tileWidth / 2
	sidesHeight := tileHeight - topHeight
	floorHeight := gridLen*topHeight + sidesHeight

	w := tileWidth*gridLen + tileWidth*2
	h := floorHeight + sidesHeight*gridLen + tileHeight*2
	return w, h
}

// tilePos returns the pixel position for the tile at grid x,y assuming
// tile 0,0 sits at origin. Tile tops are 2:1, twice as wide as tall.
func tilePos(origin image.Point, x, y, tileWidth int) image.Point {
	return origin.Add(image.Pt(
		(x-y)*(tileWidth/2),
		(x+y)*(tileWidth/4),
	))
}

// pickTile chooses one of the registered tiles at random
func pickTile(rng *rand.Rand, tiles []Tile) Tile {
	return tiles[rng.Intn(len(tiles))]
}

package isoterra

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// faces describes the six cube faces: the neighbour offset that hides
// the face & the four quad corners (as offsets from the voxel origin).
var faces = []struct {
	dx, dy, dz int
	normal     [3]float32
	corners    [4][3]float32
}{
	{1, 0, 0, [3]float32{1, 0, 0}, [4][3]float32{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}},
	{-1, 0, 0, [3]float32{-1, 0, 0}, [4][3]float32{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}},
	{0, 1, 0, [3]float32{0, 1, 0}, [4][3]float32{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}},
	{0, -1, 0, [3]float32{0, -1, 0}, [4][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	{0, 0, 1, [3]float32{0, 0, 1}, [4][3]float32{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},
	{0, 0, -1, [3]float32{0, 0, -1}, [4][3]float32{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}},
}

// ExportGLB writes the grid as a binary glTF model: one quad per visible
// voxel face (faces against a non-Empty neighbour are culled) with flat
// per-block colours. Handy for eyeballing generated terrain in a proper
// 3D viewer.
func ExportGLB(grid *Grid, fpath string) error {
	positions, normals, colors, indices := buildMesh(grid)

	doc := gltf.NewDocument()
	doc.Asset.Generator = "isoterra"

	if len(positions) == 0 {
		// an all-Empty grid has no mesh; write an empty scene
		return gltf.SaveBinary(doc, fpath)
	}

	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: uint32(modeler.WritePosition(doc, positions)),
			gltf.NORMAL:   uint32(modeler.WriteNormal(doc, normals)),
			gltf.COLOR_0:  uint32(modeler.WriteColor(doc, colors)),
		},
		Indices:  gltf.Index(uint32(modeler.WriteIndices(doc, indices))),
		Material: gltf.Index(0),
	}

	doc.Materials = []*gltf.Material{{
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{1, 1, 1, 1},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
		AlphaMode:   gltf.AlphaOpaque,
		DoubleSided: true,
	}}
	doc.Meshes = []*gltf.Mesh{{Name: "terrain", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))

	return gltf.SaveBinary(doc, fpath)
}

// buildMesh walks the grid emitting quads for faces exposed to Empty
// space (or the outside of the cube).
func buildMesh(grid *Grid) ([][3]float32, [][3]float32, [][4]float32, []uint32) {
	positions := [][3]float32{}
	normals := [][3]float32{}
	colors := [][4]float32{}
	indices := []uint32{}

	for x := 0; x < grid.Len(); x++ {
		for y := 0; y < grid.Len(); y++ {
			for z := 0; z < grid.Len(); z++ {
				b := grid.At(x, y, z)
				if b == Empty {
					continue
				}

				rgba := b.Colour()
				col := [4]float32{
					float32(rgba.R) / 255,
					float32(rgba.G) / 255,
					float32(rgba.B) / 255,
					float32(rgba.A) / 255,
				}

				for _, f := range faces {
					if grid.At(x+f.dx, y+f.dy, z+f.dz) != Empty {
						continue // face is hidden by a neighbour
					}

					base := uint32(len(positions))
					for _, c := range f.corners {
						positions = append(positions, [3]float32{
							float32(x) + c[0],
							float32(y) + c[1],
							float32(z) + c[2],
						})
						normals = append(normals, f.normal)
						colors = append(colors, col)
					}
					indices = append(indices,
						base, base+1, base+2,
						base, base+2, base+3,
					)
				}
			}
		}
	}

	return positions, normals, colors, indices
}

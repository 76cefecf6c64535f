// Package mesh implements the face-emission algorithm that turns a Chunk's
// voxels into a GPU-ready indexed triangle mesh. Build is pure with respect
// to its inputs (a chunk's Voxels/ExtendedHeights and any loaded neighbor's
// Voxels, all read-only) and is safe to call concurrently for distinct
// chunks from any number of worker goroutines.
package mesh

import (
	"fmt"
	"math"

	"voxelgame/internal/world"
)

// faceOffsets holds the four corner offsets (relative to the cell's
// min-corner at integer (x,y,z)) for each of the six directions, wound
// counter-clockwise as seen from outside the cube so backface culling
// keeps the right side of every quad.
var faceOffsets = [6][4][3]float32{
	world.DirFront: {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	world.DirBack:  {{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
	world.DirRight: {{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
	world.DirLeft:  {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	world.DirTop:   {{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}},
	world.DirBottom: {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
}

var faceNormals = [6][3]float32{
	world.DirFront:  {0, 0, 1},
	world.DirBack:   {0, 0, -1},
	world.DirRight:  {1, 0, 0},
	world.DirLeft:   {-1, 0, 0},
	world.DirTop:    {0, 1, 0},
	world.DirBottom: {0, -1, 0},
}

var faceUVs = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Build emits the indexed mesh for c: one quad per visible solid/non-solid
// boundary, deciding visibility per the three block classes (water, other
// transparent blocks, opaque blocks) in emitFace.
func Build(c *world.Chunk) (*world.ChunkMesh, error) {
	solidCount := 0
	for _, v := range c.Voxels {
		if v != world.Air {
			solidCount++
		}
	}

	vertCap := 24 * solidCount
	if maxCap := (world.ChunkSize * world.ChunkHeight * world.ChunkSize) / 4; vertCap > maxCap {
		vertCap = maxCap
	}

	m := &world.ChunkMesh{
		Vertices: make([]world.Vertex, 0, vertCap),
		Indices:  make([]uint32, 0, vertCap/4*6),
	}

	for x := 0; x < world.ChunkSize; x++ {
		for y := 0; y < world.ChunkHeight; y++ {
			for z := 0; z < world.ChunkSize; z++ {
				v := c.Get(x, y, z)
				if v == world.Air {
					continue
				}
				for dir := world.Direction(0); dir < 6; dir++ {
					dx, dy, dz := dir.Offset()
					u := c.GetSafe(x+dx, y+dy, z+dz)
					if !emitFace(v, u) {
						continue
					}
					appendFace(m, x, y, z, dir, v)
				}
			}
		}
	}

	if len(m.Vertices) > math.MaxUint32 {
		return nil, fmt.Errorf("mesh: chunk %v produced too many vertices (%d)", c.Position, len(m.Vertices))
	}

	return m, nil
}

// emitFace decides whether the face of v facing u should be emitted: Water
// only shows a face against Air; other transparent blocks (Leaves, Glass)
// hide faces against their own type so adjacent identical blocks don't
// render an interior seam; opaque blocks show a face whenever the neighbor
// is any transparent block (including Air and Water).
func emitFace(v, u world.VoxelID) bool {
	if v == world.Water {
		return u == world.Air
	}
	if v.IsTransparent() {
		return u != v
	}
	return u.IsTransparent()
}

func appendFace(m *world.ChunkMesh, x, y, z int, dir world.Direction, block world.VoxelID) {
	base := uint32(len(m.Vertices))
	normal := faceNormals[dir]
	texID := textureFor(block, dir)

	var transparentFlag float32
	if block.IsTransparent() {
		transparentFlag = 1
	}

	offsets := faceOffsets[dir]
	for i, off := range offsets {
		uv := faceUVs[i]
		m.Vertices = append(m.Vertices, world.Vertex{
			PX: float32(x) + off[0],
			PY: float32(y) + off[1],
			PZ: float32(z) + off[2],
			NX: normal[0], NY: normal[1], NZ: normal[2],
			U: uv[0], V: uv[1],
			TextureID:       texID,
			TransparentFlag: transparentFlag,
		})
	}

	m.Indices = append(m.Indices,
		base+0, base+1, base+2,
		base+2, base+3, base+0,
	)
}

func textureFor(block world.VoxelID, dir world.Direction) float32 {
	if block == world.Water {
		return world.AnimatedWaterTile
	}
	props := block.Props()
	switch dir {
	case world.DirTop:
		return props.TexTop
	case world.DirBottom:
		return props.TexBottom
	default:
		return props.TexSides
	}
}

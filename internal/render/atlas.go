// Package render drives the GPU: shader compilation, the texture atlas, the
// two-pass opaque/transparent draw, and the worker pool that turns dirty
// chunks into uploaded meshes.
package render

// Atlas layout: a fixed AtlasColumns x AtlasRows grid of static tiles, one
// per block face, with the WaterFrameCount animated water frames appended
// below it (one frame per tile row, column 0), starting at WaterFrameRow.
const (
	AtlasColumns = 9
	AtlasRows    = 5
	TileSize     = 16

	WaterFrameRow   = AtlasRows
	WaterFrameCount = 32
)

// TileUV returns the atlas-space [0,1] origin and size of tile (col, row),
// in the composed atlas that is AtlasRows+WaterFrameCount tiles tall.
func TileUV(col, row int) (u0, v0, du, dv float32) {
	du = 1.0 / float32(AtlasColumns)
	dv = 1.0 / float32(AtlasRows+WaterFrameCount)
	return float32(col) * du, float32(row) * dv, du, dv
}

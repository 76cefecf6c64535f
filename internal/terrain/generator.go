// Package terrain implements the deterministic, seed-driven height and
// block-type rules. Every function here is a pure read of a *Generator
// built once per world seed, so it is safe to call concurrently from any
// number of meshing/generation goroutines.
package terrain

import (
	"math"

	"voxelgame/internal/noise"
	"voxelgame/internal/world"
)

// WaterLevel is the world-y at and below which Air becomes Water.
const WaterLevel = 55

// beachBand is how many blocks of Grass/Dirt around WaterLevel are
// replaced with Sand to avoid a hard cliff at the waterline.
const beachBand = 2

// Generator produces terrain height and block type from a fixed seed. It
// holds no mutable state after construction.
type Generator struct {
	noise       *noise.Noise
	continental *noise.Spline
	erosionCrv  *noise.Spline
}

// NewGenerator builds a Generator for the given world seed.
func NewGenerator(seed uint32) *Generator {
	return &Generator{
		noise: noise.New(seed),
		continental: noise.NewSpline(
			noise.Knot{Input: -1, Output: 30},
			noise.Knot{Input: -0.5, Output: 50},
			noise.Knot{Input: 0, Output: 80},
			noise.Knot{Input: 0.3, Output: 100},
			noise.Knot{Input: 0.6, Output: 130},
			noise.Knot{Input: 1, Output: 160},
		),
		erosionCrv: noise.NewSpline(
			noise.Knot{Input: -1, Output: 0},
			noise.Knot{Input: 0, Output: 10},
			noise.Knot{Input: 0.5, Output: 25},
			noise.Knot{Input: 1, Output: 40},
		),
	}
}

// Height returns the terrain height for a world-space column. Depends only
// on the generator's seed and (worldX, worldZ).
func (g *Generator) Height(worldX, worldZ int) int {
	fx, fz := float64(worldX)*0.005, float64(worldZ)*0.005

	c := noise.Clamp(g.noise.Continentalness(fx, fz), -1, 1)
	e := noise.Clamp(g.noise.Erosion(fx, fz), -1, 1)

	baseHeight := g.continental.Eval(c)
	erosionEffect := g.erosionCrv.Eval(e)
	h := baseHeight - erosionEffect

	if e < 0.3 {
		p := noise.Clamp(g.noise.PeaksAndValleys(fx, fz), -1, 1)
		m := math.Max(0, p-e)
		h += m * m * math.Sqrt(m) * 50
	}

	return int(math.Floor(h))
}

// BlockAt returns the block type for a world-y within a column of the given
// height, implementing the stone/dirt/grass/sand/water/air depth rule.
func (g *Generator) BlockAt(worldY, height int) world.VoxelID {
	switch {
	case worldY < height-3:
		return world.Stone
	case worldY < height-1:
		if inBeachBand(worldY, height) {
			return world.Sand
		}
		return world.Dirt
	case worldY < height:
		if inBeachBand(worldY, height) {
			return world.Sand
		}
		return world.Grass
	case worldY >= height && worldY <= WaterLevel:
		return world.Water
	default:
		return world.Air
	}
}

// inBeachBand reports whether a surface cell at worldY (for a column whose
// topmost solid cell is at height) falls within beachBand blocks of
// WaterLevel, turning shoreline columns to Sand instead of Grass.
func inBeachBand(worldY, height int) bool {
	return abs(height-WaterLevel) <= beachBand && worldY <= WaterLevel+beachBand
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ExtendedHeights computes Height for every (x, z) in the one-block apron
// around a chunk, in [-1, world.ChunkSize]^2 local coordinates, indexed
// (x+1)*(world.ChunkSize+2) + (z+1).
func (g *Generator) ExtendedHeights(chunkX, chunkZ int) [world.ExtendedSize * world.ExtendedSize]int32 {
	var heights [world.ExtendedSize * world.ExtendedSize]int32
	for lx := -1; lx <= world.ChunkSize; lx++ {
		for lz := -1; lz <= world.ChunkSize; lz++ {
			wx := chunkX*world.ChunkSize + lx
			wz := chunkZ*world.ChunkSize + lz
			idx := (lx+1)*world.ExtendedSize + (lz + 1)
			heights[idx] = int32(g.Height(wx, wz))
		}
	}
	return heights
}

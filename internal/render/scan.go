package render

import (
	"math"

	"voxelgame/internal/world"
)

// ScanAndEnqueue finds chunks that are mesh-dirty and not already being
// meshed, and pushes up to MaxEnqueuesPerFrame of them onto q ordered
// nearest-first, stopping early once the queue reaches MaxQueueLength. It
// is the main goroutine's half of the mesh pipeline; workers drain q.
func ScanAndEnqueue(q *MeshQueue, chunks []*world.Chunk, centerWX, centerWY, centerWZ float64) {
	if q.Len() >= MaxQueueLength {
		return
	}

	type candidate struct {
		chunk *world.Chunk
		dist  float64
	}
	var candidates []candidate
	for _, c := range chunks {
		if !c.IsMeshDirty() || c.IsMeshing() {
			continue
		}
		cx := float64(c.Position.X*world.ChunkSize) + float64(world.ChunkSize)/2
		cy := float64(c.Position.Y*world.ChunkHeight) + float64(world.ChunkHeight)/2
		cz := float64(c.Position.Z*world.ChunkSize) + float64(world.ChunkSize)/2
		dx, dy, dz := cx-centerWX, cy-centerWY, cz-centerWZ
		dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
		candidates = append(candidates, candidate{chunk: c, dist: dist})
	}

	// Partial selection sort for the nearest MaxEnqueuesPerFrame candidates;
	// the candidate set per frame is small enough that a full sort would be
	// overkill, and a min-heap would just duplicate container/heap's own
	// ordering work twice.
	budget := MaxEnqueuesPerFrame
	if room := MaxQueueLength - q.Len(); room < budget {
		budget = room
	}
	for i := 0; i < budget && i < len(candidates); i++ {
		min := i
		for j := i + 1; j < len(candidates); j++ {
			if candidates[j].dist < candidates[min].dist {
				min = j
			}
		}
		candidates[i], candidates[min] = candidates[min], candidates[i]

		candidates[i].chunk.SetMeshing(true)
		q.Enqueue(candidates[i].chunk, candidates[i].dist)
	}
}

package render

import (
	"testing"
	"time"

	"voxelgame/internal/world"
)

func newGeneratedChunk(pos world.ChunkPos) *world.Chunk {
	c := world.NewChunk(pos)
	var heights [world.ExtendedSize * world.ExtendedSize]int32
	for i := range heights {
		heights[i] = 40
	}
	var cols [world.ChunkSize * world.ChunkSize]int32
	for i := range cols {
		cols[i] = 40
	}
	c.Generate(1, cols, heights, func(lx, ly, lz, worldY, height int) world.VoxelID {
		if worldY < height {
			return world.Stone
		}
		return world.Air
	})
	return c
}

func TestMeshQueueBuildsAndUploads(t *testing.T) {
	q := NewMeshQueue(2)
	defer q.Close()

	c := newGeneratedChunk(world.ChunkPos{})
	c.SetMeshing(true)
	q.Enqueue(c, 0)

	deadline := time.After(2 * time.Second)
	for {
		got := false
		q.DrainUploads(func(chunk *world.Chunk, m *world.ChunkMesh) {
			got = true
			if len(m.Vertices) == 0 {
				t.Fatalf("expected a non-empty mesh for a chunk with solid blocks")
			}
		})
		if got {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for mesh build")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if c.IsMeshing() {
		t.Fatal("expected meshing flag cleared after upload")
	}
	if c.IsMeshDirty() {
		t.Fatal("expected mesh-dirty flag cleared after upload")
	}
}

func TestMeshQueueSkipsNoLongerDirtyChunk(t *testing.T) {
	q := NewMeshQueue(1)
	defer q.Close()

	c := newGeneratedChunk(world.ChunkPos{})
	c.ClearMeshDirty()
	c.SetMeshing(true)
	q.Enqueue(c, 0)

	time.Sleep(50 * time.Millisecond)
	if c.IsMeshing() {
		t.Fatal("expected meshing flag cleared for a chunk that was no longer dirty")
	}
}

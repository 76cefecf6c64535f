package world

import "testing"

// flatFiller is a minimal ColumnFiller for tests: every column has the same
// height, with Stone below it and Air above.
type flatFiller struct {
	height int32
}

func (f flatFiller) BlockAt(worldY, height int) VoxelID {
	if worldY < height {
		return Stone
	}
	return Air
}

func (f flatFiller) ExtendedHeights(chunkX, chunkZ int) [ExtendedSize * ExtendedSize]int32 {
	var out [ExtendedSize * ExtendedSize]int32
	for i := range out {
		out[i] = f.height
	}
	return out
}

func TestWorldGetSetRoundTrip(t *testing.T) {
	w := New(DefaultConfig(1), flatFiller{height: 70})
	w.Update(0, 70, 0)

	w.Set(5, 40, 5, Glass)
	if got := w.Get(5, 40, 5); got != Glass {
		t.Fatalf("expected Glass after Set, got %v", got)
	}
}

func TestWorldGetAbsentChunkIsAir(t *testing.T) {
	w := New(DefaultConfig(1), flatFiller{height: 70})
	if got := w.Get(100000, 0, 100000); got != Air {
		t.Fatalf("expected Air for an unloaded chunk, got %v", got)
	}
}

func TestWorldSetCreatesOwningChunk(t *testing.T) {
	w := New(DefaultConfig(1), flatFiller{height: 70})

	// No Update has been called yet, so no chunks are loaded; Set must
	// create-and-generate the owning chunk itself.
	w.Set(5, 10, 5, Iron)
	pos, _, _, _ := WorldToChunk(5, 10, 5)
	if w.ChunkAt(pos) == nil {
		t.Fatal("expected Set to create the owning chunk")
	}
	if got := w.Get(5, 10, 5); got != Iron {
		t.Fatalf("expected Iron, got %v", got)
	}
}

func TestWorldStreamsChunksAroundCenter(t *testing.T) {
	cfg := Config{Seed: 1, RenderDistance: 2, MaxVerticalChunks: 4}
	w := New(cfg, flatFiller{height: 70})

	for i := 0; i < 200 && len(w.chunks) == 0; i++ {
		w.Update(0, 70, 0)
	}
	if len(w.chunks) == 0 {
		t.Fatal("expected streaming to load at least one chunk around the center")
	}

	centerPos := ChunkPos{X: 0, Y: floorDiv(70, ChunkHeight), Z: 0}
	if w.ChunkAt(centerPos) == nil {
		t.Fatal("expected the center chunk to be loaded")
	}
}

func TestWorldUnloadsChunksPastHysteresis(t *testing.T) {
	cfg := Config{Seed: 1, RenderDistance: 1, MaxVerticalChunks: 4}
	w := New(cfg, flatFiller{height: 70})

	for i := 0; i < 400 && len(w.chunks) == 0; i++ {
		w.Update(0, 70, 0)
	}
	if len(w.chunks) == 0 {
		t.Fatal("expected some chunks loaded near the origin")
	}

	// Move the center far away; eventually the origin-area chunks must unload.
	far := float64(100 * ChunkSize)
	for i := 0; i < 400; i++ {
		w.Update(far, 70, far)
	}

	originPos := ChunkPos{X: 0, Y: floorDiv(70, ChunkHeight), Z: 0}
	if w.ChunkAt(originPos) != nil {
		t.Fatal("expected the origin chunk to have unloaded after the center moved far away")
	}
}

func TestWorldEditPropagatesToNeighborApron(t *testing.T) {
	cfg := Config{Seed: 1, RenderDistance: 3, MaxVerticalChunks: 4}
	w := New(cfg, flatFiller{height: 70})

	leftPos := ChunkPos{X: -1, Y: floorDiv(10, ChunkHeight), Z: floorDiv(5, ChunkSize)}

	// Update only streams 2 new chunks per call and no-ops entirely once the
	// center chunk repeats, so force it to recompute and keep loading each
	// iteration until the left neighbor of the edited chunk is in.
	for i := 0; i < 400 && w.ChunkAt(leftPos) == nil; i++ {
		w.haveCtr = false
		w.Update(0, 70, 0)
	}

	leftChunk := w.ChunkAt(leftPos)
	if leftChunk == nil {
		t.Fatal("expected the left neighbor chunk to have streamed in")
	}
	// Generation leaves every chunk mesh-dirty; clear it so only the edit
	// below can set it again.
	leftChunk.ClearMeshDirty()

	// Edit a block at x=0, the boundary between chunk (-1,*,*) and (0,*,*).
	w.Set(0, 10, 5, Glass)

	if !leftChunk.IsMeshDirty() {
		t.Fatal("expected the edit to mark the neighboring chunk's mesh dirty")
	}
}

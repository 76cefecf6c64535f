package mesh

import (
	"testing"

	"voxelgame/internal/world"
)

func newTestChunk() *world.Chunk {
	c := world.NewChunk(world.ChunkPos{})
	var heights [world.ExtendedSize * world.ExtendedSize]int32
	for i := range heights {
		heights[i] = 0
	}
	var cols [world.ChunkSize * world.ChunkSize]int32
	c.Generate(1, cols, heights, func(lx, ly, lz, worldY, height int) world.VoxelID {
		return world.Air
	})
	return c
}

func TestSingleStoneCubeSixFaces(t *testing.T) {
	c := newTestChunk()
	c.Set(5, 5, 5, world.Stone)

	m, err := Build(c)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(m.Vertices) / 4; got != 6 {
		t.Fatalf("expected 6 faces for an isolated stone cube, got %d", got)
	}
	if got := len(m.Indices); got != 36 {
		t.Fatalf("expected 36 indices, got %d", got)
	}
}

func TestNoInteriorFacesBetweenIdenticalSolids(t *testing.T) {
	c := newTestChunk()
	c.Set(5, 5, 5, world.Stone)
	c.Set(6, 5, 5, world.Stone)

	m, err := Build(c)
	if err != nil {
		t.Fatal(err)
	}
	// Two adjacent cubes: 12 faces total (6 each) minus the 2 touching faces = 10.
	if got := len(m.Vertices) / 4; got != 10 {
		t.Fatalf("expected 10 faces for two touching stone cubes, got %d", got)
	}
}

func TestWaterPlateFaceCounts(t *testing.T) {
	c := newTestChunk()
	// 3x3 plate of water at y=5 over air at y=4, kept away from chunk edges
	// so every neighbor query stays in-bounds (no apron prediction).
	for x := 5; x < 8; x++ {
		for z := 5; z < 8; z++ {
			c.Set(x, 5, z, world.Water)
		}
	}

	m, err := Build(c)
	if err != nil {
		t.Fatal(err)
	}

	var top, bottom, sides int
	for i := 0; i < len(m.Vertices); i += 4 {
		n := m.Vertices[i]
		switch {
		case n.NY == 1:
			top++
		case n.NY == -1:
			bottom++
		default:
			sides++
		}
	}

	if top != 9 {
		t.Errorf("expected 9 top faces, got %d", top)
	}
	if bottom != 9 {
		t.Errorf("expected 9 bottom faces, got %d", bottom)
	}
	if sides != 12 {
		t.Errorf("expected 12 side faces, got %d", sides)
	}
}

func TestWaterNeverFacesSolidOrWater(t *testing.T) {
	c := newTestChunk()
	c.Set(5, 5, 5, world.Water)
	c.Set(6, 5, 5, world.Stone)
	c.Set(5, 5, 6, world.Water)

	m, err := Build(c)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(m.Vertices); i += 4 {
		v := m.Vertices[i]
		if v.TextureID != world.AnimatedWaterTile {
			continue
		}
		minZ := v.PZ
		for _, w := range m.Vertices[i+1 : i+4] {
			if w.PZ < minZ {
				minZ = w.PZ
			}
		}
		// The water at (5,5,5) must not emit a +X face since (6,5,5) is
		// Stone. Its +X face would span z in [5,6]; the +X face of the water
		// at (5,5,6) spans z in [6,7] and faces Air, so it is allowed.
		if v.NX == 1 && minZ == 5 {
			t.Fatalf("water emitted a face against a solid neighbor")
		}
		// The two water cells touch across the plane z=6; neither may emit a
		// face there.
		if v.NZ != 0 && v.PZ == 6 {
			t.Fatalf("water emitted a face against a water neighbor")
		}
	}
}

func TestGlassRemovesInternalFacesBetweenSameType(t *testing.T) {
	c := newTestChunk()
	c.Set(5, 5, 5, world.Glass)
	c.Set(6, 5, 5, world.Glass)

	m, err := Build(c)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(m.Vertices) / 4; got != 10 {
		t.Fatalf("expected 10 faces for two touching glass cubes (no shared face), got %d", got)
	}
}

func TestOpaqueAgainstGlassEmitsFace(t *testing.T) {
	c := newTestChunk()
	c.Set(5, 5, 5, world.Stone)
	c.Set(6, 5, 5, world.Glass)

	m, err := Build(c)
	if err != nil {
		t.Fatal(err)
	}
	// Stone: 5 faces exposed to air + 1 face against glass (glass is transparent) = 6.
	// Glass: 5 faces exposed to air + 1 face against stone (stone != glass) = 6.
	if got := len(m.Vertices) / 4; got != 12 {
		t.Fatalf("expected 12 faces total, got %d", got)
	}
}

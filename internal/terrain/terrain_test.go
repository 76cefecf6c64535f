package terrain

import (
	"testing"

	"voxelgame/internal/world"
)

func TestHeightDeterministic(t *testing.T) {
	a := NewGenerator(42)
	b := NewGenerator(42)

	for _, p := range [][2]int{{0, 0}, {100, -50}, {-33, 17}} {
		ha := a.Height(p[0], p[1])
		hb := b.Height(p[0], p[1])
		if ha != hb {
			t.Fatalf("height not deterministic for seed at %v: got %d and %d", p, ha, hb)
		}
	}
}

func TestBlockAtLayering(t *testing.T) {
	g := NewGenerator(1)
	const height = 80

	if b := g.BlockAt(height-10, height); b != world.Stone {
		t.Fatalf("expected Stone deep below surface, got %v", b)
	}
	if b := g.BlockAt(height+10, height); b != world.Air {
		t.Fatalf("expected Air well above surface, got %v", b)
	}
}

func TestBlockAtBelowWaterLevelIsWater(t *testing.T) {
	g := NewGenerator(1)
	const height = 20 // well below WaterLevel, so the column's top is submerged

	b := g.BlockAt(height, height)
	if b != world.Water {
		t.Fatalf("expected Water for a submerged column top, got %v", b)
	}
}

func TestExtendedHeightsMatchesHeight(t *testing.T) {
	g := NewGenerator(7)
	chunkX, chunkZ := 3, -2

	extended := g.ExtendedHeights(chunkX, chunkZ)
	for lx := -1; lx <= world.ChunkSize; lx++ {
		for lz := -1; lz <= world.ChunkSize; lz++ {
			wx := chunkX*world.ChunkSize + lx
			wz := chunkZ*world.ChunkSize + lz
			idx := (lx+1)*world.ExtendedSize + (lz + 1)
			want := int32(g.Height(wx, wz))
			if got := extended[idx]; got != want {
				t.Fatalf("ExtendedHeights[%d,%d] = %d, want %d", lx, lz, got, want)
			}
		}
	}
}

package world

import (
	"math"
	"sort"
)

// Config holds the tunables that shape World streaming. MaxVerticalChunks
// makes the vertical chunk stack height (how many ChunkHeight-tall slabs
// cover the world's Y range) a configurable constant rather than a fixed
// cap, since different worlds reasonably want different build heights.
type Config struct {
	Seed              uint32
	RenderDistance    int
	MaxVerticalChunks int
}

// DefaultConfig returns an 8-chunk render distance over an 8-chunk-tall
// (512-block) world.
func DefaultConfig(seed uint32) Config {
	return Config{Seed: seed, RenderDistance: 8, MaxVerticalChunks: 8}
}

// ColumnFiller computes a chunk's per-column heights, its extended-border
// apron heights, and its per-cell block type. It is supplied by package
// terrain so that package world never imports it (keeping the dependency
// acyclic: terrain depends on world for VoxelID, not the reverse).
type ColumnFiller interface {
	BlockAt(worldY, height int) VoxelID
	ExtendedHeights(chunkX, chunkZ int) [ExtendedSize * ExtendedSize]int32
}

// World is the sparse, chunked voxel store. Its chunk map is mutated only
// by the goroutine that calls Update (by convention, the main/render
// goroutine); Get/Set may be called from that same goroutine for edits, and
// read-only chunk pointers may be handed to worker goroutines for meshing.
type World struct {
	cfg     Config
	filler  ColumnFiller
	chunks  map[ChunkPos]*Chunk
	lastCtr ChunkPos
	haveCtr bool

	pendingLoads   []ChunkPos
	pendingUnloads []ChunkPos
}

// New creates an empty World. Call Update at least once before rendering to
// populate chunks around an initial center.
func New(cfg Config, filler ColumnFiller) *World {
	return &World{
		cfg:    cfg,
		filler: filler,
		chunks: make(map[ChunkPos]*Chunk),
	}
}

// Config returns the world's streaming configuration.
func (w *World) Config() Config { return w.cfg }

// Chunks returns every currently loaded chunk. The returned slice is a
// snapshot; callers must not assume it stays valid across the next Update.
func (w *World) Chunks() []*Chunk {
	out := make([]*Chunk, 0, len(w.chunks))
	for _, c := range w.chunks {
		out = append(out, c)
	}
	return out
}

// ChunkAt returns the loaded chunk at pos, or nil.
func (w *World) ChunkAt(pos ChunkPos) *Chunk { return w.chunks[pos] }

// Get reads the block at world coordinates; absent chunks read as Air.
func (w *World) Get(wx, wy, wz int) VoxelID {
	pos, lx, ly, lz := WorldToChunk(wx, wy, wz)
	c, ok := w.chunks[pos]
	if !ok {
		return Air
	}
	return c.Get(lx, ly, lz)
}

// Set creates-and-generates the owning chunk if necessary, then delegates
// to Chunk.Set.
func (w *World) Set(wx, wy, wz int, block VoxelID) {
	pos, lx, ly, lz := WorldToChunk(wx, wy, wz)
	c, ok := w.chunks[pos]
	if !ok {
		c = w.createAndGenerate(pos)
		w.linkNeighbors(pos, c)
	}
	c.Set(lx, ly, lz, block)
}

type distPos struct {
	pos  ChunkPos
	dist float64
}

// Update recomputes the desired chunk set around center and processes
// streaming for this frame: at most 2 new loads (nearest-first), and all
// pending unloads past the hysteresis distance.
func (w *World) Update(centerWX, centerWY, centerWZ float64) {
	centerChunk := ChunkPos{
		X: floorDiv(int(math.Floor(centerWX)), ChunkSize),
		Y: floorDiv(int(math.Floor(centerWY)), ChunkHeight),
		Z: floorDiv(int(math.Floor(centerWZ)), ChunkSize),
	}

	if w.haveCtr && centerChunk == w.lastCtr {
		return
	}
	w.haveCtr = true
	w.lastCtr = centerChunk

	R := float64(w.cfg.RenderDistance)
	minY := centerChunk.Y - 2
	if minY < 0 {
		minY = 0
	}
	maxY := centerChunk.Y + 2
	if maxY > w.cfg.MaxVerticalChunks-1 {
		maxY = w.cfg.MaxVerticalChunks - 1
	}

	var desired []distPos
	for x := centerChunk.X - w.cfg.RenderDistance; x <= centerChunk.X+w.cfg.RenderDistance; x++ {
		for z := centerChunk.Z - w.cfg.RenderDistance; z <= centerChunk.Z+w.cfg.RenderDistance; z++ {
			for y := minY; y <= maxY; y++ {
				dx := float64(x - centerChunk.X)
				dy := float64(y - centerChunk.Y)
				dz := float64(z - centerChunk.Z)
				dist := math.Sqrt(dx*dx + 0.25*dy*dy + dz*dz)
				if dist > R {
					continue
				}
				desired = append(desired, distPos{pos: ChunkPos{X: x, Y: y, Z: z}, dist: dist})
			}
		}
	}
	sort.Slice(desired, func(i, j int) bool { return desired[i].dist < desired[j].dist })

	w.pendingLoads = w.pendingLoads[:0]
	for _, d := range desired {
		if _, ok := w.chunks[d.pos]; !ok {
			w.pendingLoads = append(w.pendingLoads, d.pos)
		}
	}

	const hysteresis = 1.5
	w.pendingUnloads = w.pendingUnloads[:0]
	for pos := range w.chunks {
		dx := float64(pos.X - centerChunk.X)
		dy := float64(pos.Y - centerChunk.Y)
		dz := float64(pos.Z - centerChunk.Z)
		dist := math.Sqrt(dx*dx + 0.25*dy*dy + dz*dz)
		if dist > R+hysteresis {
			w.pendingUnloads = append(w.pendingUnloads, pos)
		}
	}

	w.processLoads(2)
	w.processUnloads()
}

func (w *World) processLoads(maxLoads int) {
	n := maxLoads
	if n > len(w.pendingLoads) {
		n = len(w.pendingLoads)
	}
	for i := 0; i < n; i++ {
		pos := w.pendingLoads[i]
		c := w.createAndGenerate(pos)
		w.linkNeighbors(pos, c)
	}
	w.pendingLoads = w.pendingLoads[n:]
}

func (w *World) processUnloads() {
	for _, pos := range w.pendingUnloads {
		c, ok := w.chunks[pos]
		if !ok || c.IsMeshing() {
			continue
		}
		for dir := Direction(0); dir < 6; dir++ {
			if n := c.GetNeighbor(dir); n != nil {
				n.ClearNeighbor(dir.Opposite())
			}
		}
		delete(w.chunks, pos)
	}
}

func (w *World) createAndGenerate(pos ChunkPos) *Chunk {
	c := NewChunk(pos)
	w.chunks[pos] = c

	extended := w.filler.ExtendedHeights(pos.X, pos.Z)
	var columnHeights [ChunkSize * ChunkSize]int32
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			idx := (x+1)*ExtendedSize + (z + 1)
			columnHeights[x*ChunkSize+z] = extended[idx]
		}
	}

	c.Generate(w.cfg.Seed, columnHeights, extended, func(localX, localY, localZ, worldY, height int) VoxelID {
		return w.filler.BlockAt(worldY, height)
	})
	return c
}

func (w *World) linkNeighbors(pos ChunkPos, c *Chunk) {
	for dir := Direction(0); dir < 6; dir++ {
		dx, dy, dz := dir.Offset()
		nPos := ChunkPos{X: pos.X + dx, Y: pos.Y + dy, Z: pos.Z + dz}
		if n, ok := w.chunks[nPos]; ok {
			c.SetNeighbor(dir, n)
			n.SetNeighbor(dir.Opposite(), c)
		}
	}
}

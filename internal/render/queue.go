package render

import (
	"container/heap"
	"context"
	"log"
	"sync"
	"time"

	"voxelgame/internal/mesh"
	"voxelgame/internal/world"
)

// Per-frame budgets and queue limits, named so the scan (ScanAndEnqueue) and
// upload (DrainUploads) steps of the frame loop stay self-documenting.
const (
	MaxEnqueuesPerFrame = 8
	MaxQueueLength      = 10
	MaxUploadsPerFrame  = 1
	UploadBudget        = time.Millisecond
	MeshBuildTimeout    = 500 * time.Millisecond
)

// meshJob is one entry in the nearest-first build queue.
type meshJob struct {
	chunk    *world.Chunk
	distance float64
}

// jobHeap is a container/heap min-heap ordered by distance, giving the
// worker pool nearest-first dequeue.
type jobHeap []meshJob

func (h jobHeap) Len() int            { return len(h) }
func (h jobHeap) Less(i, j int) bool  { return h[i].distance < h[j].distance }
func (h jobHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *jobHeap) Push(x interface{}) { *h = append(*h, x.(meshJob)) }
func (h *jobHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// meshResult is handed from a worker to the main goroutine over the bounded
// upload channel.
type meshResult struct {
	chunk *world.Chunk
	built *world.ChunkMesh
}

// MeshQueue is the shared nearest-first build queue: the main goroutine
// pushes dirty chunks under Mutex/Cond, N worker goroutines pop and build,
// and successful builds are handed back over a bounded channel for the main
// goroutine to upload within its per-frame time budget.
type MeshQueue struct {
	mu   sync.Mutex
	cond *sync.Cond
	heap jobHeap

	uploads chan meshResult
	closed  bool
}

// NewMeshQueue starts workerCount build goroutines. Call Close when the
// engine shuts down to stop them.
func NewMeshQueue(workerCount int) *MeshQueue {
	q := &MeshQueue{uploads: make(chan meshResult, MaxQueueLength)}
	q.cond = sync.NewCond(&q.mu)
	for i := 0; i < workerCount; i++ {
		go q.worker()
	}
	return q
}

// Enqueue pushes a chunk for meshing at the given distance, capped at
// MaxEnqueuesPerFrame calls by the caller (the scan loop in ScanAndEnqueue).
// The caller must have already set chunk.SetMeshing(true).
func (q *MeshQueue) Enqueue(c *world.Chunk, distance float64) {
	q.mu.Lock()
	heap.Push(&q.heap, meshJob{chunk: c, distance: distance})
	q.mu.Unlock()
	q.cond.Signal()
}

// Len reports the current queue depth, for the debug HUD.
func (q *MeshQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.heap.Len()
}

// Close stops accepting new work and wakes every worker so they exit.
func (q *MeshQueue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

func (q *MeshQueue) worker() {
	for {
		q.mu.Lock()
		for q.heap.Len() == 0 && !q.closed {
			q.cond.Wait()
		}
		if q.closed && q.heap.Len() == 0 {
			q.mu.Unlock()
			return
		}
		job := heap.Pop(&q.heap).(meshJob)
		q.mu.Unlock()

		if !job.chunk.IsMeshDirty() {
			job.chunk.SetMeshing(false)
			continue
		}

		built, ok := q.buildWithTimeout(job.chunk)
		if !ok {
			job.chunk.SetMeshing(false)
			continue
		}

		select {
		case q.uploads <- meshResult{chunk: job.chunk, built: built}:
		default:
			// Upload channel is full; drop this build and let the next scan
			// re-enqueue the chunk (it is still mesh-dirty).
			job.chunk.SetMeshing(false)
		}
	}
}

// buildWithTimeout calls mesh.Build and measures wall-clock time against
// MeshBuildTimeout. mesh.Build itself never blocks or checks ctx: it is a
// bounded, allocation-only CPU loop, so the deadline only needs to be
// detected after the fact, not enforced during the call.
func (q *MeshQueue) buildWithTimeout(c *world.Chunk) (*world.ChunkMesh, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), MeshBuildTimeout)
	defer cancel()

	start := time.Now()
	built, err := mesh.Build(c)
	elapsed := time.Since(start)

	if err != nil {
		log.Printf("mesh build failed for chunk %v: %v", c.Position, err)
		return nil, false
	}
	if elapsed > MeshBuildTimeout || ctx.Err() != nil {
		log.Printf("mesh build timeout for chunk %v (%v)", c.Position, elapsed)
		return nil, false
	}
	return built, true
}

// DrainUploads performs at most MaxUploadsPerFrame GPU uploads, starting no
// new upload once UploadBudget has elapsed since the call began, and clears
// the source chunk's mesh-dirty flag and meshing flag on success. Call once
// per frame from the main (GL-context-owning) goroutine.
func (q *MeshQueue) DrainUploads(upload func(c *world.Chunk, m *world.ChunkMesh)) {
	start := time.Now()
	for i := 0; i < MaxUploadsPerFrame; i++ {
		if time.Since(start) >= UploadBudget {
			return
		}
		select {
		case res := <-q.uploads:
			upload(res.chunk, res.built)
			res.chunk.ClearMeshDirty()
			res.chunk.SetMeshing(false)
		default:
			return
		}
	}
}

package meshing

import (
	"context"
	"fmt"
	"sync"

	"cardboard/internal/world"
)

// MeshJob represents a meshing job request
type MeshJob struct {
	World  Occupancy
	Chunk  world.Chunk
	Blocks []world.Block
	// Result channel - will be sent the result when done
	ResultChan chan MeshResult
}

// MeshResult contains the result of a meshing operation
type MeshResult struct {
	Chunk    world.Chunk
	Vertices *Vertices
	Error    error
}

// WorkerPool manages goroutines for mesh generation
type WorkerPool struct {
	jobQueue chan MeshJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	once     sync.Once
}

// NewWorkerPool creates a new mesh worker pool
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
		workers:  max(1, workers),
		ctx:      ctx,
		cancel:   cancel,
	}

	for range pool.workers {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

// SubmitJob submits a mesh generation job to the pool
// Returns true if job was submitted successfully, false if queue is full
func (p *WorkerPool) SubmitJob(job MeshJob) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitJobBlocking submits a job and blocks until it's queued or the pool
// shuts down
func (p *WorkerPool) SubmitJobBlocking(job MeshJob) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	case <-p.ctx.Done():
		return false
	}
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			result := buildJob(job)
			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// buildJob turns a vertex overflow panic into an error on the result so the
// caller can treat it as fatal on its own goroutine.
func buildJob(job MeshJob) (result MeshResult) {
	result.Chunk = job.Chunk
	defer func() {
		if r := recover(); r != nil {
			result.Vertices = nil
			result.Error = fmt.Errorf("meshing %v: %v", job.Chunk, r)
		}
	}()
	result.Vertices = BuildChunkMesh(job.Blocks, job.World)
	return result
}

// Shutdown stops the workers and waits for them to exit. Queued jobs that
// have not started are dropped. Safe to call more than once.
func (p *WorkerPool) Shutdown() {
	p.once.Do(func() {
		p.cancel()
		p.wg.Wait()
	})
}

// BuildAll meshes every chunk of w on the pool and returns the results in
// the order of chunks. The first failure is returned as an error.
func (p *WorkerPool) BuildAll(w *world.World, chunks []world.Chunk) ([]*Vertices, error) {
	results := make(chan MeshResult, len(chunks))
	for _, c := range chunks {
		job := MeshJob{World: w, Chunk: c, Blocks: w.Blocks(c), ResultChan: results}
		if !p.SubmitJobBlocking(job) {
			return nil, fmt.Errorf("meshing: pool shut down before %v was queued", c)
		}
	}

	byChunk := make(map[world.Chunk]*Vertices, len(chunks))
	for range chunks {
		var r MeshResult
		select {
		case r = <-results:
		case <-p.ctx.Done():
			return nil, fmt.Errorf("meshing: pool shut down with %d chunks pending", len(chunks)-len(byChunk))
		}
		if r.Error != nil {
			return nil, r.Error
		}
		byChunk[r.Chunk] = r.Vertices
	}

	out := make([]*Vertices, len(chunks))
	for i, c := range chunks {
		out[i] = byChunk[c]
	}
	return out, nil
}

package core

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"coasterpaint/internal/mathutil"
)

// WorkerPool runs submitted jobs on a fixed set of goroutines
type WorkerPool struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
	completed  SafeCounter
}

// NewWorkerPool creates a pool with numWorkers goroutines, one per CPU when numWorkers is not positive
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// Start launches the workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
			wp.completed.Increment()
			wp.wg.Done()
		case <-wp.quit:
			return
		}
	}
}

// Submit queues a job. It blocks while the queue is full.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.jobQueue <- job
}

// Wait blocks until every queued job has finished
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Stop shuts the workers down. Jobs still queued are dropped.
func (wp *WorkerPool) Stop() {
	close(wp.quit)
}

// ParallelForWithContext calls fn for every index in [start, end) in chunks
// spread over the workers and waits for all of them. Indices not yet reached
// when ctx ends are skipped.
func (wp *WorkerPool) ParallelForWithContext(ctx context.Context, start, end int, fn func(int)) {
	if start >= end {
		return
	}

	chunkSize := mathutil.IntMax(1, (end-start)/wp.numWorkers)
	var wg sync.WaitGroup
	for i := start; i < end; i += chunkSize {
		chunkStart := i
		chunkEnd := mathutil.IntMin(i+chunkSize, end)
		wg.Add(1)
		wp.Submit(func() {
			defer wg.Done()
			for j := chunkStart; j < chunkEnd; j++ {
				if ctx.Err() != nil {
					return
				}
				fn(j)
			}
		})
	}
	wg.Wait()
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// CompletedJobs returns the number of jobs the pool has run
func (wp *WorkerPool) CompletedJobs() uint64 {
	return uint64(wp.completed.Get())
}

// SafeCounter is a lock-free counter
type SafeCounter struct {
	value atomic.Int64
}

// Increment adds one and returns the new value
func (c *SafeCounter) Increment() int64 {
	return c.value.Add(1)
}

func (c *SafeCounter) Get() int64 {
	return c.value.Load()
}

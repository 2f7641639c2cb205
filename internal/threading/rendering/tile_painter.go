package rendering

import (
	"context"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/threading/core"
)

// PaintedTile is a layout tile together with its recorded calls.
type PaintedTile struct {
	Key   TileKey
	Calls []paint.Call
}

// ParallelPainter paints layout tiles on a worker pool and caches the results.
type ParallelPainter struct {
	workerPool *core.WorkerPool
	cache      *TileCache
}

// NewParallelPainter creates a painter with its own worker pool. workers and
// cacheSize fall back to their defaults when not positive.
func NewParallelPainter(workers, cacheSize int) *ParallelPainter {
	pool := core.NewWorkerPool(workers)
	pool.Start()
	return &ParallelPainter{
		workerPool: pool,
		cache:      NewTileCache(cacheSize),
	}
}

// Cache returns the tile cache shared by every PaintTiles call.
func (pp *ParallelPainter) Cache() *TileCache {
	return pp.cache
}

// Pool returns the worker pool tiles are painted on.
func (pp *ParallelPainter) Pool() *core.WorkerPool {
	return pp.workerPool
}

// PaintTiles paints every tile with paintFunc, going through the cache. The
// results are in the order of jobs. Tiles skipped because ctx ended have no
// calls.
func (pp *ParallelPainter) PaintTiles(ctx context.Context, jobs []TileKey, paintFunc func(TileKey) []paint.Call) []PaintedTile {
	results := make([]PaintedTile, len(jobs))
	paintOne := func(i int) {
		key := jobs[i]
		results[i] = PaintedTile{
			Key:   key,
			Calls: pp.cache.GetOrPaint(key, func() []paint.Call { return paintFunc(key) }),
		}
	}

	pp.workerPool.ParallelForWithContext(ctx, 0, len(jobs), paintOne)
	return results
}

// Stop shuts down the worker pool.
func (pp *ParallelPainter) Stop() {
	pp.workerPool.Stop()
}

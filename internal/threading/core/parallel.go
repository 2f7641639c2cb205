package core

import (
	"context"
	"runtime"
	"sync"

	"coasterpaint/internal/mathutil"
)

// ParallelMapWithContext calls fn for each item, splitting the items into one
// chunk per CPU, and returns the results in item order. Cancellation is
// checked between items; results of skipped items are left at their zero value.
func ParallelMapWithContext[T any, R any](ctx context.Context, items []T, fn func(T) R) []R {
	if len(items) == 0 {
		return nil
	}

	numWorkers := mathutil.IntMin(runtime.NumCPU(), len(items))
	chunkSize := mathutil.IntMax(1, len(items)/numWorkers)

	results := make([]R, len(items))
	var wg sync.WaitGroup
	for i := 0; i < len(items); i += chunkSize {
		start := i
		end := mathutil.IntMin(i+chunkSize, len(items))

		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := start; j < end; j++ {
				if ctx.Err() != nil {
					return
				}
				results[j] = fn(items[j])
			}
		}()
	}
	wg.Wait()
	return results
}

package core

import (
	"context"
	"sync/atomic"
	"testing"
)

func TestWorkerPoolCreation(t *testing.T) {
	pool := NewWorkerPool(4)
	if pool.GetNumWorkers() != 4 {
		t.Errorf("Expected 4 workers, got %d", pool.GetNumWorkers())
	}
	if NewWorkerPool(0).GetNumWorkers() <= 0 {
		t.Error("Expected a positive default worker count")
	}
}

func TestWorkerPoolJobExecution(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	defer pool.Stop()

	var counter atomic.Int32
	for i := 0; i < 10; i++ {
		pool.Submit(func() { counter.Add(1) })
	}
	pool.Wait()

	if counter.Load() != 10 {
		t.Errorf("Expected 10 jobs to run, got %d", counter.Load())
	}
	if pool.CompletedJobs() != 10 {
		t.Errorf("Expected 10 completed jobs, got %d", pool.CompletedJobs())
	}
}

func TestWorkerPoolParallelFor(t *testing.T) {
	pool := NewWorkerPool(3)
	pool.Start()
	defer pool.Stop()

	seen := make([]int32, 100)
	pool.ParallelForWithContext(context.Background(), 0, len(seen), func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, n := range seen {
		if n != 1 {
			t.Fatalf("Expected index %d to be visited once, got %d", i, n)
		}
	}
	pool.ParallelForWithContext(context.Background(), 5, 5, func(int) {
		t.Error("Expected an empty range to run nothing")
	})
}

func TestWorkerPoolParallelForCancelled(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	defer pool.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var ran atomic.Int32
	pool.ParallelForWithContext(ctx, 0, 50, func(int) { ran.Add(1) })
	if ran.Load() != 0 {
		t.Errorf("Expected no indices after cancel, got %d", ran.Load())
	}
}

func TestParallelMapKeepsOrder(t *testing.T) {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}
	out := ParallelMapWithContext(context.Background(), items, func(v int) int { return v * 2 })
	if len(out) != len(items) {
		t.Fatalf("Expected %d results, got %d", len(items), len(out))
	}
	for i, v := range out {
		if v != i*2 {
			t.Fatalf("Expected result %d at %d, got %d", i*2, i, v)
		}
	}
	if ParallelMapWithContext(context.Background(), []int(nil), func(v int) int { return v }) != nil {
		t.Error("Expected nil result for no items")
	}
}

func TestParallelMapCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := ParallelMapWithContext(ctx, []int{1, 2, 3}, func(v int) int { return v })
	for i, v := range out {
		if v != 0 {
			t.Errorf("Expected zero result at %d after cancel, got %d", i, v)
		}
	}
}

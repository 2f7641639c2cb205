package threading

import (
	"coasterpaint/internal/config"
	"coasterpaint/internal/threading/monitoring"
	"coasterpaint/internal/threading/rendering"
)

// Components holds the concurrent helpers the viewer paints and draws with
type Components struct {
	Painter            *rendering.ParallelPainter
	Sprites            *rendering.SpriteBatch
	PerformanceMonitor *monitoring.PerformanceMonitor
}

// NewComponents creates the viewer's painter, sprite batch and monitor from cfg
func NewComponents(cfg *config.Config) *Components {
	return &Components{
		Painter:            rendering.NewParallelPainter(cfg.Viewer.Workers, cfg.Viewer.CacheSize),
		Sprites:            rendering.NewSpriteBatch(),
		PerformanceMonitor: monitoring.NewPerformanceMonitor(),
	}
}

// SyncMetrics copies the cache and pool counters into the monitor
func (tc *Components) SyncMetrics() {
	if tc.Painter == nil || tc.PerformanceMonitor == nil {
		return
	}
	hits, misses := tc.Painter.Cache().Stats()
	tc.PerformanceMonitor.UpdateCacheMetrics(hits, misses)
	pool := tc.Painter.Pool()
	tc.PerformanceMonitor.UpdateWorkerMetrics(int32(pool.GetNumWorkers()), pool.CompletedJobs())
}

// Shutdown stops the worker pool
func (tc *Components) Shutdown() {
	if tc.Painter != nil {
		tc.Painter.Stop()
	}
	if tc.Sprites != nil {
		tc.Sprites.Clear()
	}
	if tc.PerformanceMonitor != nil {
		tc.PerformanceMonitor.Reset()
	}
}

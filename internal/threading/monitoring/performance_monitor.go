package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// PerformanceMonitor tracks the frame and paint timings of the viewer
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds

	// Paint metrics
	paintTime    atomic.Uint64 // nanoseconds of the last layout paint
	tilesPainted atomic.Uint64
	callsDrawn   atomic.Uint64

	// Cache metrics, copied from the tile cache
	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64

	// Worker metrics
	activeWorkers atomic.Int32
	completedJobs atomic.Uint64

	mutex          sync.RWMutex
	avgFrameTime   float64
	avgPaintTime   float64
	paintSamples   uint64
	startTime      time.Time
	enableDetailed bool
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime:      time.Now(),
		enableDetailed: true,
	}
}

// FrameTimer measures one frame
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{monitor: pm, startTime: time.Now()}
}

// EndFrame completes frame timing and folds it into the running average
func (ft *FrameTimer) EndFrame() {
	pm := ft.monitor
	elapsed := uint64(time.Since(ft.startTime).Nanoseconds())
	pm.frameTime.Store(elapsed)
	count := pm.frameCount.Add(1)

	pm.mutex.Lock()
	if pm.enableDetailed {
		pm.avgFrameTime += (float64(elapsed) - pm.avgFrameTime) / float64(count)
	}
	pm.mutex.Unlock()
}

// PaintTimer measures one paint of the layout
type PaintTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartPaint begins paint timing
func (pm *PerformanceMonitor) StartPaint() *PaintTimer {
	return &PaintTimer{monitor: pm, startTime: time.Now()}
}

// EndPaint completes paint timing for a pass that produced tiles tiles and calls calls
func (pt *PaintTimer) EndPaint(tiles, calls int) {
	pm := pt.monitor
	elapsed := uint64(time.Since(pt.startTime).Nanoseconds())
	pm.paintTime.Store(elapsed)
	pm.tilesPainted.Add(uint64(tiles))
	pm.callsDrawn.Add(uint64(calls))

	pm.mutex.Lock()
	if pm.enableDetailed {
		pm.paintSamples++
		pm.avgPaintTime += (float64(elapsed) - pm.avgPaintTime) / float64(pm.paintSamples)
	}
	pm.mutex.Unlock()
}

// UpdateCacheMetrics records the tile cache counters
func (pm *PerformanceMonitor) UpdateCacheMetrics(hits, misses uint64) {
	pm.cacheHits.Store(hits)
	pm.cacheMisses.Store(misses)
}

// UpdateWorkerMetrics records the worker pool counters
func (pm *PerformanceMonitor) UpdateWorkerMetrics(active int32, completed uint64) {
	pm.activeWorkers.Store(active)
	pm.completedJobs.Store(completed)
}

// ViewerMetrics is a snapshot of the monitor
type ViewerMetrics struct {
	FramesPerSecond float64
	PaintTime       time.Duration
	AvgPaintTime    time.Duration
	TilesPainted    uint64
	CallsDrawn      uint64
	CacheHitRate    float64
	Workers         int32
	CompletedJobs   uint64
	MemoryUsageMB   uint64
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() ViewerMetrics {
	pm.mutex.RLock()
	avgPaint := pm.avgPaintTime
	pm.mutex.RUnlock()

	fps := 0.0
	if frameTime := pm.frameTime.Load(); frameTime > 0 {
		fps = float64(time.Second) / float64(frameTime)
	}

	hitRate := 0.0
	hits, misses := pm.cacheHits.Load(), pm.cacheMisses.Load()
	if hits+misses > 0 {
		hitRate = float64(hits) / float64(hits+misses)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return ViewerMetrics{
		FramesPerSecond: fps,
		PaintTime:       time.Duration(pm.paintTime.Load()),
		AvgPaintTime:    time.Duration(avgPaint),
		TilesPainted:    pm.tilesPainted.Load(),
		CallsDrawn:      pm.callsDrawn.Load(),
		CacheHitRate:    hitRate,
		Workers:         pm.activeWorkers.Load(),
		CompletedJobs:   pm.completedJobs.Load(),
		MemoryUsageMB:   memStats.Alloc / 1024 / 1024,
	}
}

// GetDetailedStats returns detailed performance statistics
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return map[string]interface{}{
		"uptime_seconds":    time.Since(pm.startTime).Seconds(),
		"frame_count":       pm.frameCount.Load(),
		"avg_frame_time_ms": pm.avgFrameTime / 1e6,
		"avg_paint_time_ms": pm.avgPaintTime / 1e6,
		"tiles_painted":     pm.tilesPainted.Load(),
		"calls_drawn":       pm.callsDrawn.Load(),
		"cache_hits":        pm.cacheHits.Load(),
		"cache_misses":      pm.cacheMisses.Load(),
		"active_workers":    pm.activeWorkers.Load(),
		"completed_jobs":    pm.completedJobs.Load(),
		"memory_alloc_mb":   memStats.Alloc / 1024 / 1024,
		"gc_cycles":         memStats.NumGC,
		"goroutines":        runtime.NumGoroutine(),
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts reports a low frame rate and slow paints
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)
	now := time.Now()

	if frameTime := pm.frameTime.Load(); frameTime > 0 {
		fps := float64(time.Second) / float64(frameTime)
		if fps < 30 {
			alerts = append(alerts, PerformanceAlert{
				Type:      "low_fps",
				Message:   "Frame rate is below 30 FPS",
				Value:     fps,
				Threshold: 30,
				Timestamp: now,
			})
		}
	}

	// A paint pass longer than one 60 FPS frame stalls the window
	paintMs := float64(pm.paintTime.Load()) / 1e6
	if paintMs > 16 {
		alerts = append(alerts, PerformanceAlert{
			Type:      "slow_paint",
			Message:   "Painting the layout took longer than a frame",
			Value:     paintMs,
			Threshold: 16,
			Timestamp: now,
		})
	}

	return alerts
}

// EnableDetailedLogging turns the running averages on or off
func (pm *PerformanceMonitor) EnableDetailedLogging(enabled bool) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.enableDetailed = enabled
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.paintTime.Store(0)
	pm.tilesPainted.Store(0)
	pm.callsDrawn.Store(0)
	pm.cacheHits.Store(0)
	pm.cacheMisses.Store(0)
	pm.activeWorkers.Store(0)
	pm.completedJobs.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.avgPaintTime = 0
	pm.paintSamples = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}

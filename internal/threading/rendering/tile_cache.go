package rendering

import (
	"sync"
	"sync/atomic"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

// tileCacheMaxSize is the default bound. A full cache evicts its oldest
// quarter in one go.
const tileCacheMaxSize = 512

// TileKey is everything that changes the paint output of a tile.
type TileKey struct {
	Ride     string
	Type     track.Type
	Dir      track.Direction
	Seq      uint8
	Height   int32
	Chain    bool
	Rotation uint8
	// Position is the map position the tile is painted at, after rotation.
	Position paint.CoordsXY
}

// TileCache keeps the recorded calls of painted tiles between frames.
type TileCache struct {
	cache      map[TileKey][]paint.Call
	mutex      sync.RWMutex
	cacheOrder []TileKey
	maxSize    int
	targetSize int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewTileCache creates a cache holding up to maxSize tiles, or the default
// when maxSize is not positive.
func NewTileCache(maxSize int) *TileCache {
	if maxSize <= 0 {
		maxSize = tileCacheMaxSize
	}
	return &TileCache{
		cache:      make(map[TileKey][]paint.Call, maxSize),
		cacheOrder: make([]TileKey, 0, maxSize),
		maxSize:    maxSize,
		targetSize: maxSize * 3 / 4,
	}
}

// GetOrPaint returns the cached calls of key, painting them with paintFunc on
// a miss. It is safe for concurrent use; paintFunc may run more than once for
// the same key when two goroutines miss together.
func (tc *TileCache) GetOrPaint(key TileKey, paintFunc func() []paint.Call) []paint.Call {
	tc.mutex.RLock()
	if calls, ok := tc.cache[key]; ok {
		tc.mutex.RUnlock()
		tc.hits.Add(1)
		return calls
	}
	tc.mutex.RUnlock()

	tc.misses.Add(1)
	calls := paintFunc()

	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	if cached, ok := tc.cache[key]; ok {
		return cached
	}

	if len(tc.cache) >= tc.maxSize {
		evictCount := len(tc.cacheOrder) - tc.targetSize
		if evictCount > 0 {
			for _, k := range tc.cacheOrder[:evictCount] {
				delete(tc.cache, k)
			}
			tc.cacheOrder = tc.cacheOrder[evictCount:]
		}
	}

	tc.cache[key] = calls
	tc.cacheOrder = append(tc.cacheOrder, key)
	return calls
}

// Len returns the number of cached tiles.
func (tc *TileCache) Len() int {
	tc.mutex.RLock()
	defer tc.mutex.RUnlock()
	return len(tc.cache)
}

// Stats returns the hit and miss counts since the cache was created.
func (tc *TileCache) Stats() (hits, misses uint64) {
	return tc.hits.Load(), tc.misses.Load()
}

// Clear drops every cached tile.
func (tc *TileCache) Clear() {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	clear(tc.cache)
	tc.cacheOrder = tc.cacheOrder[:0]
}

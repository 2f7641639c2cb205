package rendering

import (
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteJob is a sprite queued for drawing.
type SpriteJob struct {
	Image *ebiten.Image
	X, Y  float64
	Scale float64
	Alpha float32
	// Depth orders the sprites; lower depths are drawn first.
	Depth float64
}

// SpriteBatch collects the sprites of a frame and draws them back to front.
// Ebiten draws on one goroutine, so only the queueing is concurrent.
type SpriteBatch struct {
	sprites []SpriteJob
	mutex   sync.Mutex
}

func NewSpriteBatch() *SpriteBatch {
	return &SpriteBatch{sprites: make([]SpriteJob, 0, 256)}
}

// Add queues one sprite.
func (sb *SpriteBatch) Add(job SpriteJob) {
	sb.mutex.Lock()
	sb.sprites = append(sb.sprites, job)
	sb.mutex.Unlock()
}

// Len returns the number of queued sprites.
func (sb *SpriteBatch) Len() int {
	sb.mutex.Lock()
	defer sb.mutex.Unlock()
	return len(sb.sprites)
}

// sorted empties the queue and returns its sprites in drawing order.
func (sb *SpriteBatch) sorted() []SpriteJob {
	sb.mutex.Lock()
	sprites := make([]SpriteJob, len(sb.sprites))
	copy(sprites, sb.sprites)
	sb.sprites = sb.sprites[:0]
	sb.mutex.Unlock()

	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].Depth < sprites[j].Depth })
	return sprites
}

// RenderAll draws and clears the queue.
func (sb *SpriteBatch) RenderAll(screen *ebiten.Image) {
	for _, job := range sb.sorted() {
		opts := &ebiten.DrawImageOptions{}
		scale := job.Scale
		if scale == 0 {
			scale = 1
		}
		opts.GeoM.Scale(scale, scale)
		opts.GeoM.Translate(job.X, job.Y)
		if job.Alpha > 0 {
			opts.ColorScale.ScaleAlpha(job.Alpha)
		}
		screen.DrawImage(job.Image, opts)
	}
}

// Clear drops the queued sprites without drawing them.
func (sb *SpriteBatch) Clear() {
	sb.mutex.Lock()
	sb.sprites = sb.sprites[:0]
	sb.mutex.Unlock()
}

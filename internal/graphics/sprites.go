package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"coasterpaint/internal/paint"
)

// remapPalette stands in for the game's colour remaps. A placeholder takes
// the entry of its primary colour.
var remapPalette = []color.RGBA{
	colornames.Slategray,
	colornames.Steelblue,
	colornames.Crimson,
	colornames.Darkorange,
	colornames.Seagreen,
	colornames.Goldenrod,
	colornames.Mediumpurple,
	colornames.Teal,
	colornames.Sienna,
	colornames.Palevioletred,
}

// PlaceholderColor returns the fill colour of the placeholder for img.
// Ghost and highlight images are drawn see-through.
func PlaceholderColor(img paint.ImageId) color.RGBA {
	c := remapPalette[int(img.Primary)%len(remapPalette)]
	switch img.Transparency {
	case paint.FilterGhost, paint.FilterHighlight:
		c.A = 128
	case paint.FilterDarken1:
		c.R, c.G, c.B = c.R/2, c.G/2, c.B/2
	}
	return c
}

// SpriteManager hands out an image per sprite. Sprites found as
// <dir>/<index>.png are loaded; the rest get a labelled placeholder.
type SpriteManager struct {
	dir     string
	mutex   sync.Mutex
	sprites map[paint.ImageId]*ebiten.Image
	// missing remembers indices with no file so the disk is checked once
	missing map[uint32]bool
}

func NewSpriteManager(dir string) *SpriteManager {
	return &SpriteManager{
		dir:     dir,
		sprites: make(map[paint.ImageId]*ebiten.Image),
		missing: make(map[uint32]bool),
	}
}

// SpritePath is where the image file of a sprite index is looked for.
func (sm *SpriteManager) SpritePath(index uint32) string {
	return filepath.Join(sm.dir, fmt.Sprintf("%d.png", index))
}

func (sm *SpriteManager) GetSprite(img paint.ImageId) *ebiten.Image {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	if sprite, exists := sm.sprites[img]; exists {
		return sprite
	}

	sprite := sm.loadSpriteIfExists(img.Index)
	if sprite == nil {
		sprite = sm.createPlaceholder(img)
	}
	sm.sprites[img] = sprite
	return sprite
}

func (sm *SpriteManager) loadSpriteIfExists(index uint32) *ebiten.Image {
	if sm.dir == "" || sm.missing[index] {
		return nil
	}
	file, err := os.Open(sm.SpritePath(index))
	if err != nil {
		sm.missing[index] = true
		return nil
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		paint.Logger().Warn("sprite decode failed", "index", index, "err", err)
		sm.missing[index] = true
		return nil
	}
	return ebiten.NewImageFromImage(decoded)
}

func (sm *SpriteManager) createPlaceholder(img paint.ImageId) *ebiten.Image {
	label := fmt.Sprintf("%d", img.Index)
	face := basicfont.Face7x13
	width := len(label)*face.Advance + 4

	sprite := ebiten.NewImage(width, face.Height+2)
	sprite.Fill(PlaceholderColor(img))
	ebitext.Draw(sprite, label, face, 2, face.Ascent+1, colornames.White)
	return sprite
}

// Len returns the number of sprites handed out so far.
func (sm *SpriteManager) Len() int {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	return len(sm.sprites)
}

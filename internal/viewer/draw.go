package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.Color) {
	t := float32(thickness)
	fx, fy := float32(x), float32(y)
	fw, fh := float32(w), float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}

func strokeSegment(screen *ebiten.Image, a, b Point, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}

func strokeDiamond(screen *ebiten.Image, corners [4]Point, clr color.Color) {
	for i := range corners {
		strokeSegment(screen, corners[i], corners[(i+1)%4], 1, clr)
	}
}

func drawMarker(screen *ebiten.Image, p Point, size float32, clr color.Color) {
	vector.DrawFilledRect(screen, float32(p.X)-size/2, float32(p.Y)-size/2, size, size, clr, false)
}

package viewer

import (
	"fmt"

	"coasterpaint/internal/coaster"
	"coasterpaint/internal/coaster/bm"
	"coasterpaint/internal/config"
	"coasterpaint/internal/mathutil"
	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

// page is one screen of tiles. Tile positions are in tiles, not world units.
type page struct {
	Name  string
	Tiles []coaster.Tile
	Size  int32
}

// galleryRowGap leaves an empty row between the directions of a piece.
const galleryRowGap = 2

// galleryPage lays out every tile of t: one row per direction, sequences
// left to right.
func galleryPage(t track.Type, height int32) page {
	n := bm.SequenceCount(t)
	p := page{Name: t.String(), Size: int32(mathutil.IntMax(n, track.NumDirections*galleryRowGap))}
	for dir := track.Direction(0); dir < track.NumDirections; dir++ {
		for seq := 0; seq < n; seq++ {
			p.Tiles = append(p.Tiles, coaster.Tile{
				Type:     t,
				Dir:      dir,
				Seq:      uint8(seq),
				Height:   height,
				Position: paint.CoordsXY{X: int32(seq), Y: int32(dir) * galleryRowGap},
			})
		}
	}
	return p
}

// layoutPage places the configured tiles as they are.
func layoutPage(tiles []config.LayoutTile, height int32) (page, error) {
	p := page{Name: "layout"}
	for i, lt := range tiles {
		t, ok := track.ParseType(lt.Type)
		if !ok {
			return page{}, fmt.Errorf("layout tile %d: unknown piece %q", i, lt.Type)
		}
		h := lt.Height
		if h == 0 {
			h = height
		}
		p.Tiles = append(p.Tiles, coaster.Tile{
			Type:     t,
			Dir:      track.Direction(lt.Dir & 3),
			Seq:      lt.Seq,
			Height:   h,
			Position: paint.CoordsXY{X: lt.X, Y: lt.Y},
			Chain:    lt.Chain,
		})
		p.Size = max(p.Size, lt.X+1, lt.Y+1)
	}
	return p, nil
}

// buildPages returns the configured layout, when there is one, followed by a
// gallery page for every piece of the style.
func buildPages(cfg *config.Config) ([]page, error) {
	var pages []page
	if len(cfg.Viewer.Layout) > 0 {
		p, err := layoutPage(cfg.Viewer.Layout, cfg.GetPaintHeight())
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	for _, t := range bm.Types() {
		pages = append(pages, galleryPage(t, cfg.GetPaintHeight()))
	}
	return pages, nil
}

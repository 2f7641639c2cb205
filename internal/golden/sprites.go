package golden

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"coasterpaint/internal/coaster"
	"coasterpaint/internal/paint"
	"coasterpaint/internal/threading/core"
	"coasterpaint/internal/track"
)

// SpriteRow is a track sprite one tile is expected to draw. BoundBox is
// relative to the tile, before the element height is added.
type SpriteRow struct {
	Piece    string  `yaml:"piece"`
	Dir      uint8   `yaml:"dir"`
	Seq      uint8   `yaml:"seq"`
	Image    uint32  `yaml:"image"`
	BoundBox []int32 `yaml:"bbox"`

	typ track.Type
}

type spriteFile struct {
	Tiles []SpriteRow `yaml:"tiles"`
}

// LoadSprites reads a sprite fixture. Every row must name a known piece and
// carry a six value box.
func LoadSprites(path string) ([]SpriteRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i := range f.Tiles {
		r := &f.Tiles[i]
		t, ok := track.ParseType(r.Piece)
		if !ok {
			return nil, fmt.Errorf("%s: row %d: unknown piece %q", path, i, r.Piece)
		}
		if r.Dir >= track.NumDirections {
			return nil, fmt.Errorf("%s: row %d: direction %d out of range", path, i, r.Dir)
		}
		if len(r.BoundBox) != 6 {
			return nil, fmt.Errorf("%s: row %d: bbox needs 6 values, got %d", path, i, len(r.BoundBox))
		}
		r.typ = t
	}
	return f.Tiles, nil
}

func (r SpriteRow) box(height int32) paint.BoundBoxXYZ {
	b := r.BoundBox
	return paint.BoundBoxXYZ{
		Offset: paint.CoordsXYZ{X: b[0], Y: b[1], Z: b[2] + height},
		Length: paint.CoordsXYZ{X: b[3], Y: b[4], Z: b[5]},
	}
}

// SpriteMismatch is a fixture row the painted tile does not satisfy.
type SpriteMismatch struct {
	Row    SpriteRow
	Reason string
}

// VerifySprites paints the tile of every row and checks that it draws the
// row's image with the row's box. Rows are checked in parallel.
func VerifySprites(ctx context.Context, style coaster.Style, rows []SpriteRow, opts Options) ([]SpriteMismatch, error) {
	reasons := core.ParallelMapWithContext(ctx, rows, func(r SpriteRow) string {
		if style.Painter(r.typ) == nil {
			return "piece not painted"
		}
		return spriteReason(PaintTile(style, r.typ, track.Direction(r.Dir), r.Seq, opts), r, opts.Height)
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []SpriteMismatch
	for i, reason := range reasons {
		if reason != "" {
			out = append(out, SpriteMismatch{Row: rows[i], Reason: reason})
		}
	}
	paint.Logger().Info("sprites verified", "ride", style.Name, "rows", len(rows), "mismatches", len(out))
	return out, nil
}

func spriteReason(calls []paint.Call, r SpriteRow, height int32) string {
	want := r.box(height)
	var boxes []paint.BoundBoxXYZ
	for _, c := range calls {
		if c.Kind != paint.CallImage || c.Draw.Image.Index != r.Image {
			continue
		}
		if c.Draw.BoundBox == want {
			return ""
		}
		boxes = append(boxes, c.Draw.BoundBox)
	}
	if len(boxes) == 0 {
		return fmt.Sprintf("image %d not drawn", r.Image)
	}
	return fmt.Sprintf("image %d drawn with box %v, want %v", r.Image, boxes, want)
}

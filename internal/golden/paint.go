// Package golden keeps digests of painted tiles in a SQLite database so a
// later run can check that painting still produces the same output.
package golden

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"coasterpaint/internal/coaster"
	"coasterpaint/internal/coaster/bm"
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

// Entry is the recorded output of one tile.
type Entry struct {
	Ride   string
	Type   track.Type
	Dir    track.Direction
	Seq    uint8
	Calls  int
	Digest string
}

// Options control how tiles are painted for the store.
type Options struct {
	Height   int32
	Position paint.CoordsXY
	Colours  ride.TrackColour
	// Workers bounds the number of pieces painted at once. Zero uses one per CPU.
	Workers int
	// OnTile, when set, is called with the calls of every painted tile.
	// It may be called from several goroutines at once.
	OnTile func(t track.Type, dir track.Direction, seq uint8, calls []paint.Call) error
}

// DefaultOptions paints at 64 units on a checkerboard tile.
func DefaultOptions() Options {
	return Options{
		Height:  64,
		Colours: ride.TrackColour{Main: 1, Additional: 2, Supports: 3},
	}
}

// PaintTile paints one tile of t on a fresh session and returns its calls.
func PaintTile(style coaster.Style, t track.Type, dir track.Direction, seq uint8, opts Options) []paint.Call {
	return style.Paint(ride.New(style.Name, opts.Colours), coaster.Tile{
		Type:     t,
		Dir:      dir,
		Seq:      seq,
		Height:   opts.Height,
		Position: opts.Position,
	})
}

// Compute paints every tile of every piece of the style. Entries come back
// ordered by type, direction and sequence.
func Compute(ctx context.Context, style coaster.Style, opts Options) ([]Entry, error) {
	types := bm.Types()
	results := make([][]Entry, len(types))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, t := range types {
		g.Go(func() error {
			n := bm.SequenceCount(t)
			out := make([]Entry, 0, n*track.NumDirections)
			for dir := track.Direction(0); dir < track.NumDirections; dir++ {
				for seq := 0; seq < n; seq++ {
					if err := ctx.Err(); err != nil {
						return err
					}
					calls := PaintTile(style, t, dir, uint8(seq), opts)
					if opts.OnTile != nil {
						if err := opts.OnTile(t, dir, uint8(seq), calls); err != nil {
							return err
						}
					}
					out = append(out, Entry{
						Ride:   style.Name,
						Type:   t,
						Dir:    dir,
						Seq:    uint8(seq),
						Calls:  len(calls),
						Digest: paint.DigestCalls(calls),
					})
				}
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var entries []Entry
	for _, r := range results {
		entries = append(entries, r...)
	}
	return entries, nil
}

// Record paints the style and stores the result, replacing earlier entries.
func Record(ctx context.Context, st *Store, style coaster.Style, opts Options) (int, error) {
	entries, err := Compute(ctx, style, opts)
	if err != nil {
		return 0, err
	}
	if err := st.Put(ctx, entries); err != nil {
		return 0, err
	}
	paint.Logger().Info("golden recorded", "ride", style.Name, "tiles", len(entries))
	return len(entries), nil
}

// Mismatch is a tile whose output no longer matches the store.
type Mismatch struct {
	Got     Entry
	Want    Entry
	Missing bool
}

// Verify repaints the style and compares every tile against the store.
func Verify(ctx context.Context, st *Store, style coaster.Style, opts Options) ([]Mismatch, error) {
	entries, err := Compute(ctx, style, opts)
	if err != nil {
		return nil, err
	}
	var out []Mismatch
	for _, e := range entries {
		want, ok, err := st.Get(ctx, e.Ride, e.Type, e.Dir, e.Seq)
		if err != nil {
			return nil, err
		}
		if !ok {
			out = append(out, Mismatch{Got: e, Missing: true})
			continue
		}
		if want.Digest != e.Digest || want.Calls != e.Calls {
			out = append(out, Mismatch{Got: e, Want: want})
		}
	}
	paint.Logger().Info("golden verified", "ride", style.Name, "tiles", len(entries), "mismatches", len(out))
	return out, nil
}

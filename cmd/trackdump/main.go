package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"coasterpaint/internal/coaster"
	"coasterpaint/internal/coaster/bm"
	"coasterpaint/internal/config"
	"coasterpaint/internal/dump"
	"coasterpaint/internal/golden"
	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional config.yaml with paint, dump and golden defaults")
		rideName   = flag.String("ride", "", "ride style to paint ("+strings.Join(coaster.Names(), ", ")+")")
		outPath    = flag.String("out", "", "zstd compressed JSON lines file the calls are written to")
		goldenPath = flag.String("golden", "", "SQLite golden store")
		verify     = flag.Bool("verify", false, "compare against the golden store instead of recording")
		sprites    = flag.String("sprites", "", "YAML fixture of expected track sprites to check the ride against")
		typeName   = flag.String("type", "", "paint a single piece and print its calls")
		height     = flag.Int("height", 0, "element height, 0 for the configured default")
		workers    = flag.Int("workers", 0, "pieces painted at once, 0 for one per CPU")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		cfg = config.MustLoadConfig(*configPath)
	}
	if logger, err := cfg.NewLogger(os.Stderr); err != nil {
		log.Printf("Warning: %v", err)
	} else if logger != nil {
		paint.SetLogger(logger)
	}

	name := *rideName
	if name == "" {
		name = cfg.Viewer.Ride
	}
	style, ok := coaster.Lookup(name)
	if !ok {
		log.Fatalf("unknown ride %q, expected one of %s", name, strings.Join(coaster.Names(), ", "))
	}

	opts := golden.DefaultOptions()
	opts.Height = cfg.GetPaintHeight()
	if *height != 0 {
		opts.Height = int32(*height)
	}
	opts.Colours = cfg.Paint.Colours
	opts.Workers = cfg.Golden.Workers
	if *workers != 0 {
		opts.Workers = *workers
	}

	var w *dump.Writer
	if *outPath != "" {
		created, err := dump.Create(*outPath)
		if err != nil {
			log.Fatal(err)
		}
		w = created
		opts.OnTile = func(t track.Type, dir track.Direction, seq uint8, calls []paint.Call) error {
			return w.WriteTile(style.Name, t, dir, seq, opts.Height, calls)
		}
	}

	var err error
	switch {
	case *typeName != "":
		err = printPiece(style, *typeName, opts)
	case *sprites != "":
		err = checkSprites(context.Background(), style, *sprites, opts)
	default:
		err = run(context.Background(), style, *goldenPath, *verify, opts)
	}
	if w != nil {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
		log.Printf("wrote %d records to %s", w.Count(), *outPath)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, style coaster.Style, goldenPath string, verify bool, opts golden.Options) error {
	if goldenPath == "" {
		if verify {
			return fmt.Errorf("-verify needs -golden")
		}
		entries, err := golden.Compute(ctx, style, opts)
		if err != nil {
			return err
		}
		log.Printf("painted %d tiles of %s", len(entries), style.Name)
		return nil
	}

	store, err := golden.Open(goldenPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if !verify {
		n, err := golden.Record(ctx, store, style, opts)
		if err != nil {
			return err
		}
		log.Printf("recorded %d tiles of %s in %s", n, style.Name, goldenPath)
		return nil
	}

	mismatches, err := golden.Verify(ctx, store, style, opts)
	if err != nil {
		return err
	}
	for _, m := range mismatches {
		if m.Missing {
			log.Printf("missing %s dir %d seq %d", m.Got.Type, m.Got.Dir, m.Got.Seq)
			continue
		}
		log.Printf("changed %s dir %d seq %d: %d calls %s, want %d calls %s",
			m.Got.Type, m.Got.Dir, m.Got.Seq, m.Got.Calls, m.Got.Digest, m.Want.Calls, m.Want.Digest)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d tiles differ from %s", len(mismatches), goldenPath)
	}
	log.Printf("all tiles of %s match %s", style.Name, goldenPath)
	return nil
}

func checkSprites(ctx context.Context, style coaster.Style, path string, opts golden.Options) error {
	rows, err := golden.LoadSprites(path)
	if err != nil {
		return err
	}
	mismatches, err := golden.VerifySprites(ctx, style, rows, opts)
	if err != nil {
		return err
	}
	for _, m := range mismatches {
		log.Printf("%s dir %d seq %d: %s", m.Row.Piece, m.Row.Dir, m.Row.Seq, m.Reason)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d of %d sprites differ from %s", len(mismatches), len(rows), path)
	}
	log.Printf("all %d sprites of %s match %s", len(rows), style.Name, path)
	return nil
}

// printPiece writes every call of every tile of one piece to stdout.
func printPiece(style coaster.Style, name string, opts golden.Options) error {
	t, ok := track.ParseType(name)
	if !ok {
		return fmt.Errorf("unknown piece %q", name)
	}
	n := bm.SequenceCount(t)
	if n == 0 {
		return fmt.Errorf("%s does not paint %s", style.Name, t)
	}
	for dir := track.Direction(0); dir < track.NumDirections; dir++ {
		for seq := 0; seq < n; seq++ {
			calls := golden.PaintTile(style, t, dir, uint8(seq), opts)
			if opts.OnTile != nil {
				if err := opts.OnTile(t, dir, uint8(seq), calls); err != nil {
					return err
				}
			}
			fmt.Printf("%s dir=%d seq=%d digest=%s\n", t, dir, seq, paint.DigestCalls(calls))
			for _, c := range calls {
				fmt.Printf("  %s\n", c)
			}
		}
	}
	return nil
}

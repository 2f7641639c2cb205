package golden

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coasterpaint/internal/coaster"
	"coasterpaint/internal/coaster/bm"
	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "golden.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func twister(t *testing.T) coaster.Style {
	t.Helper()
	style, ok := coaster.Lookup("twister")
	if !ok {
		t.Fatalf("Expected twister style to be registered")
	}
	return style
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Errorf("Expected error for empty path")
	}
}

func TestComputeCoversEveryTile(t *testing.T) {
	opts := DefaultOptions()
	opts.Workers = 2
	entries, err := Compute(context.Background(), twister(t), opts)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	want := 0
	for _, ty := range bm.Types() {
		want += bm.SequenceCount(ty) * track.NumDirections
	}
	if len(entries) != want {
		t.Fatalf("Expected %d entries, got %d", want, len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Type > entries[i].Type {
			t.Fatalf("Expected entries ordered by type, %s came before %s", entries[i-1].Type, entries[i].Type)
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	opts := DefaultOptions()
	a, err := Compute(context.Background(), twister(t), opts)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	opts.Workers = 1
	b, err := Compute(context.Background(), twister(t), opts)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("Expected equal entry counts, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical entries at %d, got %+v and %+v", i, a[i], b[i])
		}
	}
}

func TestComputeCallsOnTile(t *testing.T) {
	opts := DefaultOptions()
	opts.Workers = 1
	tiles := 0
	opts.OnTile = func(ty track.Type, dir track.Direction, seq uint8, calls []paint.Call) error {
		tiles++
		return nil
	}
	entries, err := Compute(context.Background(), twister(t), opts)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if tiles != len(entries) {
		t.Errorf("Expected OnTile for each of %d tiles, got %d", len(entries), tiles)
	}
}

func TestComputeHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Compute(ctx, twister(t), DefaultOptions()); err == nil {
		t.Errorf("Expected error from cancelled context")
	}
}

func TestRecordThenVerify(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	style := twister(t)
	opts := DefaultOptions()

	n, err := Record(ctx, st, style, opts)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	count, err := st.Count(ctx, style.Name)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != n {
		t.Fatalf("Expected %d stored tiles, got %d", n, count)
	}

	mismatches, err := Verify(ctx, st, style, opts)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if len(mismatches) != 0 {
		t.Fatalf("Expected no mismatches, got %d (first %+v)", len(mismatches), mismatches[0])
	}
}

func TestVerifyReportsChangedTile(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	style := twister(t)
	opts := DefaultOptions()

	if _, err := Record(ctx, st, style, opts); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	stale := Entry{Ride: style.Name, Type: track.Flat, Dir: 1, Seq: 0, Calls: 1, Digest: "stale"}
	if err := st.Put(ctx, []Entry{stale}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	mismatches, err := Verify(ctx, st, style, opts)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if len(mismatches) != 1 {
		t.Fatalf("Expected 1 mismatch, got %d", len(mismatches))
	}
	m := mismatches[0]
	if m.Missing || m.Got.Type != track.Flat || m.Got.Dir != 1 || m.Want.Digest != "stale" {
		t.Errorf("Unexpected mismatch %+v", m)
	}
}

func TestVerifyReportsMissingRide(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	twisterStyle := twister(t)
	if _, err := Record(ctx, st, twisterStyle, DefaultOptions()); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	drop, ok := coaster.Lookup("verticaldrop")
	if !ok {
		t.Fatalf("Expected verticaldrop style to be registered")
	}
	mismatches, err := Verify(ctx, st, drop, DefaultOptions())
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if len(mismatches) == 0 {
		t.Fatalf("Expected mismatches for an unrecorded ride")
	}
	for _, m := range mismatches {
		if !m.Missing {
			t.Fatalf("Expected every mismatch to be missing, got %+v", m)
		}
	}
}

func TestGetUnknownTile(t *testing.T) {
	st := openTestStore(t)
	_, ok, err := st.Get(context.Background(), "twister", track.Flat, 0, 0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Errorf("Expected no entry in an empty store")
	}
}

func TestTrackSpritesMatchFixture(t *testing.T) {
	rows, err := LoadSprites(filepath.Join("testdata", "bm_sprites.yaml"))
	if err != nil {
		t.Fatalf("Failed to load fixture: %v", err)
	}
	if len(rows) == 0 {
		t.Fatalf("Expected fixture rows")
	}
	for _, name := range coaster.Names() {
		style, _ := coaster.Lookup(name)
		mismatches, err := VerifySprites(context.Background(), style, rows, DefaultOptions())
		if err != nil {
			t.Fatalf("VerifySprites failed: %v", err)
		}
		for _, m := range mismatches {
			t.Errorf("%s: %s dir %d seq %d: %s", name, m.Row.Piece, m.Row.Dir, m.Row.Seq, m.Reason)
		}
	}
}

func TestVerifySpritesReportsWrongBox(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.yaml")
	doc := `tiles:
  - {piece: Down60ToDown90, dir: 1, seq: 0, image: 17525, bbox: [6, 4, 8, 20, 2, 48]}
  - {piece: Flat, dir: 0, seq: 0, image: 1, bbox: [0, 6, 0, 32, 20, 3]}
  - {piece: Flat, dir: 0, seq: 0, image: 17146, bbox: [0, 6, 0, 32, 20, 3]}
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	rows, err := LoadSprites(path)
	if err != nil {
		t.Fatalf("Failed to load fixture: %v", err)
	}
	mismatches, err := VerifySprites(context.Background(), twister(t), rows, DefaultOptions())
	if err != nil {
		t.Fatalf("VerifySprites failed: %v", err)
	}
	if len(mismatches) != 2 {
		t.Fatalf("Expected 2 mismatches, got %+v", mismatches)
	}
	if !strings.Contains(mismatches[0].Reason, "drawn with box") {
		t.Errorf("Expected a box mismatch, got %q", mismatches[0].Reason)
	}
	if !strings.Contains(mismatches[1].Reason, "not drawn") {
		t.Errorf("Expected a missing image, got %q", mismatches[1].Reason)
	}
}

func TestLoadSpritesRejectsBadRows(t *testing.T) {
	docs := map[string]string{
		"unknown piece": "tiles:\n  - {piece: Nope, dir: 0, seq: 0, image: 1, bbox: [0, 0, 0, 1, 1, 1]}\n",
		"short box":     "tiles:\n  - {piece: Flat, dir: 0, seq: 0, image: 1, bbox: [0, 0, 0]}\n",
		"bad direction": "tiles:\n  - {piece: Flat, dir: 4, seq: 0, image: 1, bbox: [0, 0, 0, 1, 1, 1]}\n",
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sprites.yaml")
			if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
				t.Fatalf("Failed to write fixture: %v", err)
			}
			if _, err := LoadSprites(path); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}
}

func TestVerifySpritesHonoursCancel(t *testing.T) {
	rows, err := LoadSprites(filepath.Join("testdata", "bm_sprites.yaml"))
	if err != nil {
		t.Fatalf("Failed to load fixture: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := VerifySprites(ctx, twister(t), rows, DefaultOptions()); err == nil {
		t.Errorf("Expected error from cancelled context")
	}
}

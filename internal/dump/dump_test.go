package dump

import (
	"path/filepath"
	"sync"
	"testing"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

func sampleCalls() []paint.Call {
	s := paint.NewSession()
	s.AddImageAsParent(paint.NewImageId(17146, 1, 2), paint.CoordsXYZ{Z: 16},
		paint.BoundBoxXYZ{Offset: paint.CoordsXYZ{Y: 6, Z: 16}, Length: paint.CoordsXYZ{X: 32, Y: 20, Z: 3}})
	s.PushTunnelLeft(16, paint.TunnelGroupSquare, paint.TunnelFlat)
	s.SetSegmentSupportHeight(paint.StraightFlat, paint.HeightBlocked, 0)
	s.SetGeneralSupportHeight(48)
	return append([]paint.Call(nil), s.Calls()...)
}

func TestWriteAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "calls.jsonl.zst")
	w, err := Create(path)
	if err != nil {
		t.Fatalf("Failed to create dump: %v", err)
	}
	calls := sampleCalls()
	if err := w.WriteTile("twister", track.Flat, track.DirNW, 0, 16, calls); err != nil {
		t.Fatalf("Failed to write tile: %v", err)
	}
	if w.Count() != len(calls) {
		t.Errorf("Expected %d records, got %d", len(calls), w.Count())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close dump: %v", err)
	}

	recs, err := ReadAll(path)
	if err != nil {
		t.Fatalf("Failed to read dump: %v", err)
	}
	if len(recs) != len(calls) {
		t.Fatalf("Expected %d records, got %d", len(calls), len(recs))
	}
	got := make([]paint.Call, len(recs))
	for i, rec := range recs {
		if rec.Ride != "twister" || rec.Type != "Flat" || rec.Dir != 1 || rec.Index != i {
			t.Errorf("Unexpected record header %+v", rec)
		}
		got[i] = rec.Call
	}
	if paint.DigestCalls(got) != paint.DigestCalls(calls) {
		t.Error("Expected the calls to survive the round trip")
	}
}

func TestWriteRejectsInvalidRecord(t *testing.T) {
	w, err := Create(filepath.Join(t.TempDir(), "bad.jsonl.zst"))
	if err != nil {
		t.Fatalf("Failed to create dump: %v", err)
	}
	defer w.Close()

	rec := Record{Ride: "", Type: "Flat", Call: paint.Call{Kind: paint.CallGeneralHeight, Height: 32}}
	if err := w.Write(rec); err == nil {
		t.Error("Expected an empty ride name to fail validation")
	}
	rec = Record{Ride: "twister", Type: "Flat", Call: paint.Call{Kind: "teleport"}}
	if err := w.Write(rec); err == nil {
		t.Error("Expected an unknown call kind to fail validation")
	}
	if w.Count() != 0 {
		t.Errorf("Expected nothing written, got %d", w.Count())
	}
}

func TestWriteAfterClose(t *testing.T) {
	w, err := Create(filepath.Join(t.TempDir(), "closed.jsonl.zst"))
	if err != nil {
		t.Fatalf("Failed to create dump: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close dump: %v", err)
	}
	rec := Record{Ride: "twister", Type: "Flat", Call: paint.Call{Kind: paint.CallGeneralHeight, Height: 32}}
	if err := w.Write(rec); err == nil {
		t.Error("Expected writing to a closed dump to fail")
	}
}

func TestConcurrentTilesStayContiguous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiles.jsonl.zst")
	w, err := Create(path)
	if err != nil {
		t.Fatalf("Failed to create dump: %v", err)
	}
	calls := sampleCalls()
	const tiles = 32
	var wg sync.WaitGroup
	for seq := 0; seq < tiles; seq++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.WriteTile("twister", track.Flat, track.DirSW, uint8(seq), 16, calls); err != nil {
				t.Errorf("Failed to write tile %d: %v", seq, err)
			}
		}()
	}
	wg.Wait()
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close dump: %v", err)
	}

	recs, err := ReadAll(path)
	if err != nil {
		t.Fatalf("Failed to read dump: %v", err)
	}
	if len(recs) != tiles*len(calls) {
		t.Fatalf("Expected %d records, got %d", tiles*len(calls), len(recs))
	}
	seen := make(map[uint8]bool)
	for i := 0; i < len(recs); i += len(calls) {
		seq := recs[i].Seq
		if seen[seq] {
			t.Fatalf("Expected tile %d to be written once", seq)
		}
		seen[seq] = true
		for j, rec := range recs[i : i+len(calls)] {
			if rec.Seq != seq || rec.Index != j {
				t.Fatalf("Expected record %d of tile %d at %d, got tile %d record %d", j, seq, i+j, rec.Seq, rec.Index)
			}
		}
	}
}

func TestWriteTileRejectsWholeTile(t *testing.T) {
	w, err := Create(filepath.Join(t.TempDir(), "partial.jsonl.zst"))
	if err != nil {
		t.Fatalf("Failed to create dump: %v", err)
	}
	defer w.Close()

	calls := append(sampleCalls(), paint.Call{Kind: "teleport"})
	if err := w.WriteTile("twister", track.Flat, track.DirSW, 0, 16, calls); err == nil {
		t.Fatal("Expected an invalid call to fail the tile")
	}
	if w.Count() != 0 {
		t.Errorf("Expected no records of the failed tile, got %d", w.Count())
	}
}

package coaster

import (
	"testing"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/paint/support"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

func TestLookup(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "twister" || names[1] != "verticaldrop" {
		t.Fatalf("Expected [twister verticaldrop], got %v", names)
	}
	for _, n := range names {
		s, ok := Lookup(n)
		if !ok || s.Name != n || s.Painter == nil {
			t.Errorf("Expected %s to be registered", n)
		}
	}
	if s, _ := Lookup("twister"); s.Supports != support.Tubes {
		t.Errorf("Expected twister on tubes, got %s", s.Supports)
	}
	if s, _ := Lookup("verticaldrop"); s.Supports != support.Boxed {
		t.Errorf("Expected verticaldrop on boxed supports, got %s", s.Supports)
	}
	if _, ok := Lookup("wooden"); ok {
		t.Error("Expected unknown style to be missing")
	}
}

func TestStylePaint(t *testing.T) {
	s, _ := Lookup("twister")
	r := ride.New(s.Name, ride.TrackColour{Main: 1, Additional: 2, Supports: 3})
	calls := s.Paint(r, Tile{Type: track.Flat, Height: 64})
	if len(calls) == 0 {
		t.Fatal("Expected calls for a flat tile")
	}
	first := calls[0].Draw
	if first == nil || first.Image.Index != 17146 || first.Image.Primary != 1 || first.Offset.Z != 64 {
		t.Fatalf("Expected the flat sprite at z=64 in track colours, got %s", calls[0])
	}

	kinds := make(map[paint.CallKind]bool)
	for _, c := range calls {
		kinds[c.Kind] = true
	}
	for _, k := range []paint.CallKind{paint.CallTunnelLeft, paint.CallSegmentHeight, paint.CallGeneralHeight} {
		if !kinds[k] {
			t.Errorf("Expected a %s call", k)
		}
	}

	chained := s.Paint(r, Tile{Type: track.Flat, Height: 64, Chain: true})
	if chained[0].Draw.Image.Index != 17486 {
		t.Errorf("Expected the chain lift sprite, got %d", chained[0].Draw.Image.Index)
	}
}

func TestStylePaintUnknownPiece(t *testing.T) {
	s, _ := Lookup("twister")
	r := ride.New(s.Name, ride.TrackColour{})
	if calls := s.Paint(r, Tile{Type: track.Type(track.TypeCount)}); calls != nil {
		t.Errorf("Expected no calls for a piece the style lacks, got %d", len(calls))
	}
}

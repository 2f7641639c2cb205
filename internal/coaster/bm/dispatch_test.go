package bm

import (
	"testing"

	"coasterpaint/internal/track"
)

func TestGetTrackPaintFunctionCoversStyle(t *testing.T) {
	listed := make(map[track.Type]bool, len(bmPieces))
	for _, typ := range bmPieces {
		listed[typ] = true
		if GetTrackPaintFunction(typ) == nil {
			t.Errorf("%s: expected a painter", typ)
		}
	}
	for i := 0; i < track.TypeCount; i++ {
		typ := track.Type(i)
		if !listed[typ] && GetTrackPaintFunction(typ) != nil {
			t.Errorf("%s: expected no painter", typ)
		}
	}
	if GetTrackPaintFunction(track.Type(track.TypeCount)) != nil {
		t.Error("Expected no painter past the last type")
	}
	if got := len(Types()); got != len(bmPieces) {
		t.Errorf("Expected %d painted pieces, got %d", len(bmPieces), got)
	}
}

func TestSequenceCount(t *testing.T) {
	tests := []struct {
		typ  track.Type
		want int
	}{
		{track.Flat, 1},
		{track.LeftQuarterTurn5Tiles, 7},
		{track.RightQuarterTurn5Tiles, 7},
		{track.LeftVerticalLoop, 10},
		{track.LeftHalfBankedHelixDownSmall, 8},
		{track.RightHalfBankedHelixDownLarge, 14},
		{track.Down90ToDown60, 1},
		{track.Down60ToDown90, 2},
		{track.DiagDown25, 4},
		{track.LeftEighthToOrthogonal, 5},
		{track.InvertedFlatToDown90QuarterLoop, 3},
		{track.Type(track.TypeCount), 0},
	}
	for _, tt := range tests {
		if got := SequenceCount(tt.typ); got != tt.want {
			t.Errorf("SequenceCount(%s) = %d, want %d", tt.typ, got, tt.want)
		}
	}
	for _, typ := range bmPieces {
		if SequenceCount(typ) == 0 {
			t.Errorf("%s: expected at least one tile", typ)
		}
	}
}

package ride

import (
	"testing"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

func TestNewFillsAllSchemes(t *testing.T) {
	c := TrackColour{Main: 4, Additional: 5, Supports: 6}
	r := New("twister", c)
	for i, got := range r.Colours {
		if got != c {
			t.Errorf("Expected scheme %d to be %+v, got %+v", i, c, got)
		}
	}
}

func TestColourTemplates(t *testing.T) {
	r := New("twister", TrackColour{Main: 1, Additional: 2, Supports: 3})
	r.Colours[2] = TrackColour{Main: 9, Additional: 8, Supports: 7}
	el := track.NewElement(track.Flat, 0, 0, 0)

	if got := r.TrackColours(el); got.Primary != 1 || got.Secondary != 2 {
		t.Errorf("Expected track colours 1/2, got %+v", got)
	}
	if got := r.SupportColours(el); got.Primary != 3 {
		t.Errorf("Expected support colour 3, got %+v", got)
	}

	el.ColourScheme = 2
	if got := r.TrackColours(el); got.Primary != 9 || got.Secondary != 8 {
		t.Errorf("Expected the alternative scheme, got %+v", got)
	}

	el.Ghost = true
	if got := r.TrackColours(el); got.Transparency != paint.FilterGhost || got.IsRemap() {
		t.Errorf("Expected ghost elements to drop their remap, got %+v", got)
	}
}

func TestApply(t *testing.T) {
	r := New("twister", TrackColour{Main: 1, Additional: 2, Supports: 3})
	s := paint.NewSession()
	el := track.NewElement(track.Flat, 0, 0, 0)
	el.Highlighted = true
	r.Apply(s, el)
	if s.TrackColours.Transparency != paint.FilterHighlight || s.SupportColours.Transparency != paint.FilterHighlight {
		t.Errorf("Expected highlighted colours, got %+v and %+v", s.TrackColours, s.SupportColours)
	}
}

func TestHasFence(t *testing.T) {
	r := New("twister", TrackColour{})
	el := track.NewElement(track.MiddleStation, 0, 0, 0)
	pos := paint.CoordsXY{X: 64, Y: 64}

	if !r.HasFence(EdgeNE, pos, el, 0) {
		t.Error("Expected a fence when the ride has no stations")
	}

	r.Stations = []Station{{
		Entrance: &TileCoords{X: 1, Y: 2},
		Exit:     &TileCoords{X: 2, Y: 3},
	}}
	if r.HasFence(EdgeNE, pos, el, 0) {
		t.Error("Expected the entrance edge to stay open")
	}
	if !r.HasFence(EdgeSW, pos, el, 0) {
		t.Error("Expected a fence away from the entrance and exit")
	}
	if r.HasFence(EdgeSE, pos, el, 0) {
		t.Error("Expected the exit edge to stay open")
	}
	// A quarter turn of the view moves the entrance to another edge.
	if !r.HasFence(EdgeNE, pos, el, 1) {
		t.Error("Expected the rotated NE edge to be fenced")
	}
}

func TestStationAt(t *testing.T) {
	r := New("twister", TrackColour{})
	if r.StationAt(0) != nil {
		t.Error("Expected no station on an empty ride")
	}
	r.Stations = make([]Station, 2)
	if r.StationAt(1) != &r.Stations[1] {
		t.Error("Expected the second station")
	}
}

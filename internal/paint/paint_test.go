package paint

import "testing"

func TestRotateSegments(t *testing.T) {
	if RotateSegments(StraightFlat, 0) != StraightFlat {
		t.Error("Expected direction 0 to keep the segments")
	}
	for dir := uint8(0); dir < 4; dir++ {
		s := SegmentsOf(SegmentTop, SegmentTopLeft)
		if RotateSegments(RotateSegments(s, dir), 4-dir) != s {
			t.Errorf("Expected rotation by %d and back to keep the segments", dir)
		}
	}
	got := RotateSegments(SegmentsOf(SegmentTop), 1)
	if got != SegmentsOf(SegmentRight) {
		t.Errorf("Expected top to turn to right, got %03x", uint16(got))
	}
	if RotateSegments(SegmentsAll, 3) != SegmentsAll {
		t.Error("Expected the full tile to stay full")
	}
	if !RotateSegments(StraightFlat, 1).Has(SegmentCentre) {
		t.Error("Expected the centre to stay put")
	}
}

func TestNewSessionSurface(t *testing.T) {
	s := NewSession()
	if s.Flags&PassedSurface == 0 {
		t.Error("Expected a new session to have passed the surface")
	}
	for i, seg := range s.SupportSegments {
		if seg.Height != 0 || seg.Slope != 0 {
			t.Errorf("Expected flat surface at 0 on segment %d, got %+v", i, seg)
		}
	}
	if len(s.Calls()) != 0 {
		t.Errorf("Expected no calls, got %d", len(s.Calls()))
	}
}

func TestSessionRecordsCalls(t *testing.T) {
	s := NewSession()
	img := NewImageId(100, 1, 2)
	s.AddImageAsParent(img, CoordsXYZ{Z: 8}, BoundBoxXYZ{Length: CoordsXYZ{X: 32, Y: 20, Z: 3}})
	s.PushTunnelLeft(16, TunnelGroupSquare, TunnelFlat)
	s.SetSegmentSupportHeight(StraightFlat, HeightBlocked, 0)
	s.SetGeneralSupportHeight(48)

	calls := s.Calls()
	kinds := []CallKind{CallImage, CallTunnelLeft, CallSegmentHeight, CallGeneralHeight}
	if len(calls) != len(kinds) {
		t.Fatalf("Expected %d calls, got %d", len(kinds), len(calls))
	}
	for i, k := range kinds {
		if calls[i].Kind != k {
			t.Errorf("Expected call %d to be %s, got %s", i, k, calls[i].Kind)
		}
	}
	if calls[0].Draw.Image != img {
		t.Errorf("Expected image %+v, got %+v", img, calls[0].Draw.Image)
	}
	if len(s.LeftTunnels) != 1 || s.LeftTunnels[0].Height != 1 {
		t.Errorf("Unexpected left tunnels %+v", s.LeftTunnels)
	}
	if s.SupportSegments[SegmentCentre].Height != HeightBlocked {
		t.Error("Expected the centre segment to be blocked")
	}
	if s.SupportSegments[SegmentTop].Height == HeightBlocked {
		t.Error("Expected the top segment to stay clear")
	}

	d1 := s.Digest()
	s.Reset()
	if len(s.Calls()) != 0 || len(s.LeftTunnels) != 0 {
		t.Error("Expected Reset to clear calls and tunnels")
	}
	if d1 == s.Digest() {
		t.Error("Expected digest to change with the calls")
	}
}

func TestSetGeneralSupportHeightOnlyRaises(t *testing.T) {
	s := NewSession()
	s.SetGeneralSupportHeight(64)
	s.SetGeneralSupportHeight(32)
	if s.Support.Height != 64 {
		t.Errorf("Expected general height to stay at 64, got %d", s.Support.Height)
	}
	if s.Support.Slope != SlopeAboveTrackOrScenery {
		t.Errorf("Expected slope flag above track, got %x", s.Support.Slope)
	}
	if len(s.Calls()) != 2 {
		t.Errorf("Expected both calls to be recorded, got %d", len(s.Calls()))
	}
}

func TestDigestIsStable(t *testing.T) {
	build := func() []Call {
		s := NewSession()
		s.SetVerticalTunnel(80)
		s.SetGeneralSupportHeight(96)
		return s.Calls()
	}
	if DigestCalls(build()) != DigestCalls(build()) {
		t.Error("Expected equal call lists to hash alike")
	}
}

func TestShouldPaintSupports(t *testing.T) {
	tests := []struct {
		pos  CoordsXY
		want bool
	}{
		{CoordsXY{0, 0}, true},
		{CoordsXY{32, 0}, false},
		{CoordsXY{0, 32}, false},
		{CoordsXY{32, 32}, true},
		{CoordsXY{64, 0}, true},
	}
	for _, tt := range tests {
		if got := ShouldPaintSupports(tt.pos); got != tt.want {
			t.Errorf("ShouldPaintSupports(%+v): Expected %t, got %t", tt.pos, tt.want, got)
		}
	}
}

func TestImageId(t *testing.T) {
	img := NewImageId(5, 1, 2).WithIndex(9)
	if img.Index != 9 || img.Primary != 1 || img.Secondary != 2 {
		t.Errorf("Expected WithIndex to keep colours, got %+v", img)
	}
	ghost := img.WithTransparency(FilterGhost)
	if ghost.IsRemap() || ghost.Primary != 0 || ghost.Index != 9 {
		t.Errorf("Expected transparency to replace the remap, got %+v", ghost)
	}
}

package bm

import (
	"testing"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/paint/support"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

func testRide() *ride.Ride {
	return ride.New("test", ride.TrackColour{Main: 1, Additional: 2, Supports: 3})
}

// paintAt paints one tile on a fresh session at the given map position.
func paintAt(typ track.Type, seq uint8, dir track.Direction, height int32, el track.Element, pos paint.CoordsXY) []paint.Call {
	s := paint.NewSession()
	s.MapPosition = pos
	r := testRide()
	r.Apply(s, el)
	GetTrackPaintFunction(typ)(s, r, seq, dir, height, el, support.Tubes)
	return append([]paint.Call(nil), s.Calls()...)
}

func paintTile(typ track.Type, seq uint8, dir track.Direction, height int32) []paint.Call {
	return paintAt(typ, seq, dir, height, track.NewElement(typ, dir, seq, height), paint.CoordsXY{})
}

func callsOf(calls []paint.Call, kind paint.CallKind) []paint.Call {
	var out []paint.Call
	for _, c := range calls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func TestFlatTile(t *testing.T) {
	calls := paintTile(track.Flat, 0, track.DirSW, 48)
	if len(calls) == 0 {
		t.Fatal("Expected calls")
	}

	first := calls[0]
	if first.Kind != paint.CallImage || first.Draw.Image.Index != 17146 {
		t.Fatalf("Expected the track sprite first, got %s", first)
	}
	if first.Draw.Offset.Z != 48 || first.Draw.BoundBox.Offset.Z != 48 {
		t.Errorf("Expected sprite raised to the element height, got %s", first)
	}
	if first.Draw.Image.Primary != 1 || first.Draw.Image.Secondary != 2 {
		t.Errorf("Expected track colours on the sprite, got %s", first)
	}
	if len(callsOf(calls, paint.CallImage)) < 2 {
		t.Error("Expected a support under the flat piece on a checkerboard tile")
	}

	tunnels := callsOf(calls, paint.CallTunnelLeft)
	if len(tunnels) != 1 || tunnels[0].Tunnel.Height != 3 || tunnels[0].Tunnel.Group != paint.TunnelGroupSquare {
		t.Errorf("Expected one square tunnel on the left edge, got %v", tunnels)
	}

	segs := callsOf(calls, paint.CallSegmentHeight)
	if len(segs) != 1 || segs[0].Segments != paint.StraightFlat || segs[0].Height != int32(paint.HeightBlocked) {
		t.Errorf("Expected straight segments blocked, got %v", segs)
	}

	last := calls[len(calls)-1]
	if last.Kind != paint.CallGeneralHeight || last.Height != 80 {
		t.Errorf("Expected general height 80 last, got %s", last)
	}
}

func TestFlatTileRotatesSegmentsAndTunnels(t *testing.T) {
	calls := paintTile(track.Flat, 0, track.DirNW, 0)
	if len(callsOf(calls, paint.CallTunnelRight)) != 1 {
		t.Error("Expected the tunnel on the right edge for direction 1")
	}
	segs := callsOf(calls, paint.CallSegmentHeight)
	if len(segs) != 1 || segs[0].Segments != paint.RotateSegments(paint.StraightFlat, 1) {
		t.Errorf("Expected rotated straight segments, got %v", segs)
	}
}

func TestStraightSupportsFollowCheckerboard(t *testing.T) {
	el := track.NewElement(track.Flat, track.DirSW, 0, 32)
	calls := paintAt(track.Flat, 0, track.DirSW, 32, el, paint.CoordsXY{X: 32, Y: 0})
	if got := len(callsOf(calls, paint.CallImage)); got != 1 {
		t.Errorf("Expected only the track sprite off the checkerboard, got %d images", got)
	}
}

func TestChainLiftSprites(t *testing.T) {
	el := track.NewElement(track.Flat, track.DirSW, 0, 0)
	el.HasChain = true
	calls := paintAt(track.Flat, 0, track.DirSW, 0, el, paint.CoordsXY{})
	if calls[0].Draw.Image.Index != 17486 {
		t.Errorf("Expected chain sprite 17486, got %d", calls[0].Draw.Image.Index)
	}
}

func TestClosedBrakeSprites(t *testing.T) {
	el := track.NewElement(track.BlockBrakes, track.DirNE, 0, 0)
	el.BrakeClosed = true
	el.HasChain = false
	calls := paintAt(track.BlockBrakes, 0, track.DirNE, 0, el, paint.CoordsXY{})
	want := MustLoadCatalog().Piece(track.BlockBrakes).Layers(1, track.DirNE, 0)[0].Image
	if calls[0].Draw.Image.Index != want {
		t.Errorf("Expected closed brake sprite %d, got %d", want, calls[0].Draw.Image.Index)
	}
}

func TestSlopeTunnels(t *testing.T) {
	tests := []struct {
		name  string
		typ   track.Type
		dir   track.Direction
		kind  paint.CallKind
		tile  int32
		sub   paint.TunnelSubType
		total int32
	}{
		{"up25 start", track.Up25, track.DirSW, paint.CallTunnelLeft, 40, paint.TunnelSlopeStart, 104},
		{"up25 end", track.Up25, track.DirNW, paint.CallTunnelRight, 56, paint.TunnelSlopeEnd, 104},
		{"up60 end", track.Up60, track.DirNE, paint.CallTunnelLeft, 104, paint.TunnelSlopeEnd, 152},
		{"up25 to flat end", track.Up25ToFlat, track.DirNE, paint.CallTunnelLeft, 56, paint.TunnelFlatTo25Deg, 88},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := paintTile(tt.typ, 0, tt.dir, 48)
			tunnels := callsOf(calls, tt.kind)
			if len(tunnels) != 1 {
				t.Fatalf("Expected one %s tunnel, got %v", tt.kind, tunnels)
			}
			if got := tunnels[0].Tunnel; int32(got.Height) != tt.tile/16 || got.SubType != tt.sub {
				t.Errorf("Unexpected tunnel %+v", got)
			}
			if last := calls[len(calls)-1]; last.Height != tt.total {
				t.Errorf("Expected general height %d, got %d", tt.total, last.Height)
			}
		})
	}
}

func TestOutOfRangeTilePaintsNothing(t *testing.T) {
	if calls := paintTile(track.Flat, 3, track.DirSW, 0); len(calls) != 0 {
		t.Errorf("Expected nothing painted, got %v", calls)
	}
}

func TestVerticalPieces(t *testing.T) {
	calls := paintTile(track.Up90, 0, track.DirSW, 64)
	vt := callsOf(calls, paint.CallVerticalTunnel)
	if len(vt) != 1 || vt[0].Height != 96 {
		t.Errorf("Expected a vertical tunnel at 96, got %v", vt)
	}
	if calls := paintTile(track.Up90, 1, track.DirSW, 64); len(calls) != 0 {
		t.Errorf("Expected the upper tile of a vertical piece to paint nothing, got %v", calls)
	}
	if calls := paintTile(track.Down60ToDown90, 1, track.DirSW, 64); len(calls) != 0 {
		t.Errorf("Expected the second tile of Down60ToDown90 to paint nothing, got %v", calls)
	}
}

func TestDiagonalSupportsOnLastTile(t *testing.T) {
	for seq := uint8(0); seq < 3; seq++ {
		calls := paintTile(track.DiagFlat, seq, track.DirSW, 32)
		for _, c := range callsOf(calls, paint.CallImage) {
			if c.Draw.Image.Index < 17000 {
				t.Errorf("seq %d: unexpected support image %s", seq, c)
			}
		}
		segs := callsOf(calls, paint.CallSegmentHeight)
		if len(segs) != 1 || segs[0].Segments != paint.DiagStraightFlat[seq] {
			t.Errorf("seq %d: expected diagonal segments, got %v", seq, segs)
		}
	}
	calls := paintTile(track.DiagFlat, 3, track.DirSW, 32)
	var supports int
	for _, c := range callsOf(calls, paint.CallImage) {
		if c.Draw.Image.Index < 17000 {
			supports++
		}
	}
	if supports == 0 {
		t.Error("Expected a support under the last diagonal tile")
	}
}

func TestRightVerticalLoopSetsSegmentsLast(t *testing.T) {
	calls := paintTile(track.RightVerticalLoop, 4, track.DirSW, 0)
	last := calls[len(calls)-1]
	if last.Kind != paint.CallSegmentHeight || last.Segments != 0 {
		t.Errorf("Expected an empty segment update last, got %s", last)
	}
	left := paintTile(track.LeftVerticalLoop, 4, track.DirSW, 0)
	if len(callsOf(left, paint.CallSegmentHeight)) != 0 {
		t.Error("Expected the left loop to leave the segments of tile 4 alone")
	}
}

func TestBarrelRollExitsThroughInvertedTunnel(t *testing.T) {
	calls := paintTile(track.LeftBarrelRollUpToDown, 2, track.DirNW, 0)
	tunnels := callsOf(calls, paint.CallTunnelRight)
	if len(tunnels) != 1 || tunnels[0].Tunnel.Group != paint.TunnelGroupInvertedSquare {
		t.Errorf("Expected an inverted tunnel, got %v", tunnels)
	}
}

func TestStationFallsBackToSingleSupport(t *testing.T) {
	el := track.NewElement(track.MiddleStation, track.DirSW, 0, 48)

	s := paint.NewSession()
	r := testRide()
	r.Apply(s, el)
	GetTrackPaintFunction(track.MiddleStation)(s, r, 0, track.DirSW, 48, el, support.Tubes)
	withPlatforms := len(callsOf(s.Calls(), paint.CallImage))

	s = paint.NewSession()
	r.StationStyle = ride.StationPlatformless
	r.Apply(s, el)
	GetTrackPaintFunction(track.MiddleStation)(s, r, 0, track.DirSW, 48, el, support.Tubes)
	bare := s.Calls()

	if len(callsOf(bare, paint.CallImage)) >= withPlatforms {
		t.Errorf("Expected fewer images without platforms, got %d vs %d", len(callsOf(bare, paint.CallImage)), withPlatforms)
	}
	segs := callsOf(bare, paint.CallSegmentHeight)
	if len(segs) != 1 || segs[0].Segments != paint.SegmentsAll {
		t.Errorf("Expected the whole tile blocked, got %v", segs)
	}
	if len(callsOf(bare, paint.CallTunnelLeft)) != 1 {
		t.Error("Expected the station tunnel")
	}
}

func TestOnRidePhotoFlash(t *testing.T) {
	el := track.NewElement(track.OnRidePhoto, track.DirSW, 0, 16)
	idle := paintAt(track.OnRidePhoto, 0, track.DirSW, 16, el, paint.CoordsXY{})
	el.TakingPhoto = true
	flash := paintAt(track.OnRidePhoto, 0, track.DirSW, 16, el, paint.CoordsXY{})
	if len(idle) != len(flash) {
		t.Fatalf("Expected the same number of calls, got %d and %d", len(idle), len(flash))
	}
	if paint.DigestCalls(idle) == paint.DigestCalls(flash) {
		t.Error("Expected the camera sprite to change while taking a photo")
	}
	if last := flash[len(flash)-1]; last.Kind != paint.CallGeneralHeight || last.Height != 64 {
		t.Errorf("Expected general height 64, got %s", last)
	}
}

func TestPaintingIsDeterministic(t *testing.T) {
	for _, typ := range Types() {
		for dir := track.Direction(0); dir < track.NumDirections; dir++ {
			for seq := 0; seq < SequenceCount(typ); seq++ {
				a := paintTile(typ, uint8(seq), dir, 64)
				b := paintTile(typ, uint8(seq), dir, 64)
				if paint.DigestCalls(a) != paint.DigestCalls(b) {
					t.Fatalf("%s dir %d seq %d: output differs between runs", typ, dir, seq)
				}
			}
		}
	}
}

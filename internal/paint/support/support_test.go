package support

import (
	"testing"

	"coasterpaint/internal/paint"
)

var testColours = paint.NewImageId(0, 3, 0)

func drawnImages(s *paint.Session) []paint.Draw {
	var out []paint.Draw
	for _, c := range s.Calls() {
		if c.Draw != nil {
			out = append(out, *c.Draw)
		}
	}
	return out
}

func TestMetalAColumn(t *testing.T) {
	s := paint.NewSession()
	if !MetalA(s, Tubes, Centre, 0, 48, testColours) {
		t.Fatal("Expected a support to be drawn")
	}

	draws := drawnImages(s)
	if len(draws) != 4 {
		t.Fatalf("Expected base, filler and two beams, got %d images", len(draws))
	}
	wantIndex := []uint32{3243, 3218, 3224, 3224}
	wantZ := []int32{0, 6, 16, 32}
	for i, d := range draws {
		if d.Image.Index != wantIndex[i] || d.Offset.Z != wantZ[i] {
			t.Errorf("Image %d: Expected %d at z=%d, got %d at z=%d", i, wantIndex[i], wantZ[i], d.Image.Index, d.Offset.Z)
		}
		if d.Image.Primary != 3 {
			t.Errorf("Expected support colour 3, got %d", d.Image.Primary)
		}
	}

	centre := s.SupportSegments[paint.SegmentCentre]
	if centre.Height != paint.HeightBlocked || centre.Slope != paint.SlopeAboveTrackOrScenery {
		t.Errorf("Expected the centre segment to be blocked, got %+v", centre)
	}
}

func TestMetalASpecialExtension(t *testing.T) {
	s := paint.NewSession()
	MetalA(s, Tubes, Centre, 8, 48, testColours)
	draws := drawnImages(s)
	if len(draws) != 5 {
		t.Fatalf("Expected 5 images with the extension, got %d", len(draws))
	}
	last := draws[4]
	if last.Image.Index != 3226+7 || last.Offset.Z != 48 {
		t.Errorf("Expected an 8 unit extension at z=48, got %d at z=%d", last.Image.Index, last.Offset.Z)
	}
}

func TestMetalAHiddenBelowSurface(t *testing.T) {
	s := paint.NewSession()
	s.Flags = 0
	if MetalA(s, Tubes, Centre, 0, 48, testColours) {
		t.Error("Expected no support before the surface is painted")
	}
	if len(s.Calls()) != 0 {
		t.Errorf("Expected no calls, got %d", len(s.Calls()))
	}

	s = paint.NewSession()
	s.ViewFlags = paint.ViewHideSupports | paint.ViewInvisibleSupports
	if MetalA(s, Tubes, Centre, 0, 48, testColours) {
		t.Error("Expected invisible supports to be skipped")
	}
}

func TestMetalAHiddenSupportsAreDarkened(t *testing.T) {
	s := paint.NewSession()
	s.ViewFlags = paint.ViewHideSupports
	MetalA(s, Tubes, Centre, 0, 48, testColours)
	for _, d := range drawnImages(s) {
		if d.Image.Transparency != paint.FilterDarken1 || d.Image.Primary != 0 {
			t.Fatalf("Expected darkened images, got %+v", d.Image)
		}
	}
}

func TestMetalACrossbeam(t *testing.T) {
	s := paint.NewSession()
	s.SupportSegments[paint.SegmentCentre].Height = 200
	if !MetalA(s, Tubes, Centre, 0, 48, testColours) {
		t.Fatal("Expected the support to move to a neighbouring segment")
	}
	draws := drawnImages(s)
	if len(draws) == 0 || draws[0].BoundBox.Length.Z != 1 || draws[0].Offset.Z != 42 {
		t.Fatalf("Expected a crossbeam at z=42 first, got %+v", draws)
	}
	if s.SupportSegments[paint.SegmentCentre].Height != 200 {
		t.Error("Expected the occupied segment to keep its height")
	}

	blocked := paint.NewSession()
	for i := range blocked.SupportSegments {
		blocked.SupportSegments[i].Height = 200
	}
	if MetalA(blocked, Tubes, Centre, 0, 48, testColours) {
		t.Error("Expected no support when every segment is occupied")
	}
}

func TestMetalBReportsFailure(t *testing.T) {
	s := paint.NewSession()
	if MetalB(s, Boxed, Centre, 0, 48, testColours) {
		t.Error("Expected MetalB to report success as false")
	}
	if s.SupportSegments[paint.SegmentCentre].Height != paint.HeightBlocked {
		t.Error("Expected MetalB to block its segment")
	}
}

func TestRotation(t *testing.T) {
	for p := TopCorner; p <= BottomRightSide; p++ {
		if p.Rotate(0) != p {
			t.Errorf("Expected direction 0 to keep place %d", p)
		}
	}
	if Centre.Rotate(1) != Centre || Centre.Rotate(3) != Centre {
		t.Error("Expected the centre to stay put")
	}
	for mt := Tubes; mt < NumMetalTypes; mt++ {
		if mt.Rotate(0) != mt {
			t.Errorf("Expected direction 0 to keep style %s", mt)
		}
	}
}

func TestParseMetalType(t *testing.T) {
	for mt := Tubes; mt < NumMetalTypes; mt++ {
		got, ok := ParseMetalType(mt.String())
		if !ok || got != mt {
			t.Errorf("Expected %s to parse back to itself", mt)
		}
	}
	if _, ok := ParseMetalType("wood"); ok {
		t.Error("Expected unknown style to fail")
	}
	if MetalType(NumMetalTypes).String() != "unknown" {
		t.Error("Expected out of range style to be unknown")
	}
}

func TestDrawSupportsSideBySide(t *testing.T) {
	s := paint.NewSession()
	DrawSupportsSideBySide(s, 0, 48, testColours, Tubes, 0)
	if s.SupportSegments[paint.SegmentTopLeft].Height != paint.HeightBlocked ||
		s.SupportSegments[paint.SegmentBottomRight].Height != paint.HeightBlocked {
		t.Error("Expected both side segments to be blocked for direction 0")
	}

	s = paint.NewSession()
	DrawSupportsSideBySide(s, 1, 48, testColours, Tubes, 0)
	if s.SupportSegments[paint.SegmentTopRight].Height != paint.HeightBlocked ||
		s.SupportSegments[paint.SegmentBottomLeft].Height != paint.HeightBlocked {
		t.Error("Expected both side segments to be blocked for direction 1")
	}
}

package paint

// Segment is one of the nine support segments a tile is divided into.
// The order matches the support placement order, so a placement can index
// the segment table directly.
type Segment uint8

const (
	SegmentTop Segment = iota
	SegmentLeft
	SegmentRight
	SegmentBottom
	SegmentCentre
	SegmentTopLeft
	SegmentTopRight
	SegmentBottomLeft
	SegmentBottomRight
)

// NumSegments is the number of support segments per tile.
const NumSegments = 9

// Segments is a set of support segments.
type Segments uint16

// SegmentsAll covers the whole tile.
const SegmentsAll Segments = 1<<NumSegments - 1

// SegmentsOf builds a set from individual segments.
func SegmentsOf(segs ...Segment) Segments {
	var s Segments
	for _, seg := range segs {
		s |= 1 << seg
	}
	return s
}

// Has reports whether seg is part of the set.
func (s Segments) Has(seg Segment) bool {
	return s&(1<<seg) != 0
}

// rotateOnce maps each segment to the segment it occupies after a quarter
// turn clockwise.
var rotateOnce = [NumSegments]Segment{
	SegmentTop:         SegmentRight,
	SegmentLeft:        SegmentTop,
	SegmentRight:       SegmentBottom,
	SegmentBottom:      SegmentLeft,
	SegmentCentre:      SegmentCentre,
	SegmentTopLeft:     SegmentTopRight,
	SegmentTopRight:    SegmentBottomRight,
	SegmentBottomLeft:  SegmentTopLeft,
	SegmentBottomRight: SegmentBottomLeft,
}

// RotateSegments turns a set of segments defined for direction 0 to the given direction.
func RotateSegments(s Segments, dir uint8) Segments {
	for i := uint8(0); i < dir&3; i++ {
		var out Segments
		for seg := Segment(0); seg < NumSegments; seg++ {
			if s.Has(seg) {
				out |= 1 << rotateOnce[seg]
			}
		}
		s = out
	}
	return s
}

// Blocked segment sets shared by many pieces.
var (
	StraightFlat = SegmentsOf(SegmentCentre, SegmentTopRight, SegmentBottomLeft)

	// DiagStraightFlat is indexed by the sequence of a diagonal piece.
	DiagStraightFlat = [4]Segments{
		SegmentsOf(SegmentRight, SegmentCentre, SegmentTopRight, SegmentBottomRight),
		SegmentsOf(SegmentTop, SegmentCentre, SegmentTopLeft, SegmentTopRight),
		SegmentsOf(SegmentBottom, SegmentCentre, SegmentBottomLeft, SegmentBottomRight),
		SegmentsOf(SegmentLeft, SegmentCentre, SegmentTopLeft, SegmentBottomLeft),
	}
)

// SupportHeight is the lowest clear height of a segment and the slope of
// whatever occupies it.
type SupportHeight struct {
	Height uint16
	Slope  uint8
}

// Slope flags stored with support heights.
const (
	SlopeMask                uint8 = 0x1F
	SlopeAboveTrackOrScenery uint8 = 0x20
)

// HeightBlocked marks a segment whose supports must not pass.
const HeightBlocked uint16 = 0xFFFF

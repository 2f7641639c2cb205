package support

import "coasterpaint/internal/paint"

// Place is where on the tile a support column stands. The values index the
// tile's support segments.
type Place uint8

const (
	TopCorner Place = iota
	LeftCorner
	RightCorner
	BottomCorner
	Centre
	TopLeftSide
	TopRightSide
	BottomLeftSide
	BottomRightSide
)

// Segment returns the support segment the place stands on.
func (p Place) Segment() paint.Segment {
	return paint.Segment(p)
}

// MetalType is the structural style of a metal support.
type MetalType uint8

const (
	Tubes MetalType = iota
	Fork
	ForkAlt
	Boxed
	Stick
	StickAlt
	ThickCentred
	Thick
	ThickAlt
	ThickAltCentred
	Truss
	TubesInverted
	BoxedCoated
)

// NumMetalTypes is the number of metal support styles.
const NumMetalTypes = 13

var metalTypeNames = [NumMetalTypes]string{
	"tubes", "fork", "fork-alt", "boxed", "stick", "stick-alt", "thick-centred",
	"thick", "thick-alt", "thick-alt-centred", "truss", "tubes-inverted", "boxed-coated",
}

func (t MetalType) String() string {
	if int(t) < NumMetalTypes {
		return metalTypeNames[t]
	}
	return "unknown"
}

// ParseMetalType looks a support style up by its String form.
func ParseMetalType(name string) (MetalType, bool) {
	for i, n := range metalTypeNames {
		if n == name {
			return MetalType(i), true
		}
	}
	return 0, false
}

var placeRotated = [9][4]Place{
	{TopCorner, RightCorner, BottomCorner, LeftCorner},
	{LeftCorner, TopCorner, RightCorner, BottomCorner},
	{RightCorner, BottomCorner, LeftCorner, TopCorner},
	{BottomCorner, LeftCorner, TopCorner, RightCorner},
	{Centre, Centre, Centre, Centre},
	{TopLeftSide, TopRightSide, BottomRightSide, BottomLeftSide},
	{TopRightSide, BottomRightSide, BottomLeftSide, TopLeftSide},
	{BottomLeftSide, TopLeftSide, TopRightSide, BottomRightSide},
	{BottomRightSide, BottomLeftSide, TopLeftSide, TopRightSide},
}

var typeRotated = [NumMetalTypes][4]MetalType{
	{Tubes, Tubes, Tubes, Tubes},
	{Fork, ForkAlt, Fork, ForkAlt},
	{ForkAlt, Fork, ForkAlt, Fork},
	{Boxed, Boxed, Boxed, Boxed},
	{Stick, StickAlt, Stick, StickAlt},
	{StickAlt, Stick, StickAlt, Stick},
	{ThickCentred, ThickAltCentred, Thick, ThickAlt},
	{Thick, ThickAlt, ThickCentred, ThickAltCentred},
	{ThickAlt, ThickCentred, ThickAltCentred, Thick},
	{ThickAltCentred, Thick, ThickAlt, ThickCentred},
	{Truss, Truss, Truss, Truss},
	{TubesInverted, TubesInverted, TubesInverted, TubesInverted},
	{BoxedCoated, BoxedCoated, BoxedCoated, BoxedCoated},
}

// Rotate returns the place as seen from a piece facing dir.
func (p Place) Rotate(dir uint8) Place {
	return placeRotated[p][dir&3]
}

// Rotate returns the support style used by a piece facing dir. Styles with
// an asymmetric cross section alternate between their variants.
func (t MetalType) Rotate(dir uint8) MetalType {
	return typeRotated[t][dir&3]
}

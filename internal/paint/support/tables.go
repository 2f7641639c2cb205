package support

import "coasterpaint/internal/paint"

// metalSupportSkip is the stride between the fallback rows of crossbeamSegments.
const metalSupportSkip = 9 * 4 * 2

var segmentPositions = [9]paint.CoordsXY{
	{4, 4},
	{28, 4},
	{4, 28},
	{28, 28},
	{16, 16},
	{16, 4},
	{4, 16},
	{28, 16},
	{16, 28},
}

// crossbeamSegments lists, for every segment and rotation, the neighbouring
// segment a blocked support shifts to and the crossbeam bridging to it.
// Four fallback rows are tried in turn.
var crossbeamSegments = [...]uint8{
	5, 2, 5, 2, 5, 2, 5, 2,
	7, 1, 7, 1, 7, 1, 7, 1,
	6, 3, 6, 3, 6, 3, 6, 3,
	8, 0, 8, 0, 8, 0, 8, 0,
	5, 3, 6, 0, 8, 1, 7, 2,
	1, 2, 1, 2, 1, 2, 1, 2,
	0, 3, 0, 3, 0, 3, 0, 3,
	3, 1, 3, 1, 3, 1, 3, 1,
	2, 0, 2, 0, 2, 0, 2, 0,

	6, 1, 6, 1, 6, 1, 6, 1,
	5, 0, 5, 0, 5, 0, 5, 0,
	8, 2, 8, 2, 8, 2, 8, 2,
	7, 3, 7, 3, 7, 3, 7, 3,
	6, 0, 8, 1, 7, 2, 5, 3,
	0, 0, 0, 0, 0, 0, 0, 0,
	2, 1, 2, 1, 2, 1, 2, 1,
	1, 3, 1, 3, 1, 3, 1, 3,
	3, 2, 3, 2, 3, 2, 3, 2,

	1, 6, 1, 6, 1, 6, 1, 6,
	3, 5, 3, 5, 3, 5, 3, 5,
	0, 7, 0, 7, 0, 7, 0, 7,
	2, 4, 2, 4, 2, 4, 2, 4,
	8, 1, 7, 2, 5, 3, 6, 0,
	4, 1, 4, 1, 4, 1, 4, 1,
	4, 2, 4, 2, 4, 2, 4, 2,
	4, 0, 4, 0, 4, 0, 4, 0,
	4, 3, 4, 3, 4, 3, 4, 3,

	2, 5, 2, 5, 2, 5, 2, 5,
	0, 4, 0, 4, 0, 4, 0, 4,
	3, 6, 3, 6, 3, 6, 3, 6,
	1, 7, 1, 7, 1, 7, 1, 7,
	7, 2, 5, 3, 6, 0, 8, 1,
	8, 5, 8, 5, 8, 5, 8, 5,
	7, 6, 7, 6, 7, 6, 7, 6,
	6, 4, 6, 4, 6, 4, 6, 4,
	5, 7, 5, 7, 5, 7, 5, 7,
}

var crossbeamOffsets = [8]paint.CoordsXY{
	{-15, -1},
	{0, -2},
	{-2, -1},
	{-1, -15},
	{-26, -1},
	{0, -2},
	{-2, -1},
	{-1, -26},
}

var crossbeamLengths = [8]paint.CoordsXY{
	{18, 3},
	{3, 18},
	{18, 3},
	{3, 18},
	{32, 3},
	{3, 32},
	{32, 3},
	{3, 32},
}

var crossbeamImages = [NumMetalTypes][8]uint32{
	Tubes:           {3370, 3371, 3370, 3371, 3372, 3373, 3372, 3373},
	Fork:            {3374, 3375, 3374, 3375, 3376, 3377, 3376, 3377},
	ForkAlt:         {3374, 3375, 3374, 3375, 3376, 3377, 3376, 3377},
	Boxed:           {3370, 3371, 3370, 3371, 3372, 3373, 3372, 3373},
	Stick:           {3374, 3375, 3374, 3375, 3376, 3377, 3376, 3377},
	StickAlt:        {3374, 3375, 3374, 3375, 3376, 3377, 3376, 3377},
	ThickCentred:    {3378, 3383, 3378, 3383, 3380, 3385, 3380, 3385},
	Thick:           {3378, 3383, 3378, 3383, 3380, 3385, 3380, 3385},
	ThickAlt:        {3382, 3379, 3382, 3379, 3384, 3381, 3384, 3381},
	ThickAltCentred: {3382, 3379, 3382, 3379, 3384, 3381, 3384, 3381},
	Truss:           {3378, 3379, 3378, 3379, 3380, 3381, 3380, 3381},
	TubesInverted:   {3386, 3387, 3386, 3387, 3388, 3389, 3388, 3389},
	BoxedCoated:     {3370, 3371, 3370, 3371, 3372, 3373, 3372, 3373},
}

// crossbeamDrop is how far below the track a crossbeam hangs.
var crossbeamDrop = [NumMetalTypes]int32{6, 3, 3, 6, 3, 3, 6, 6, 6, 6, 4, 3, 6}

type images struct {
	base  uint32
	beamA uint32
	beamB uint32
}

var basesAndBeams = [NumMetalTypes]images{
	Tubes:           {3243, 3209, 3226},
	Fork:            {3279, 3262, 3262},
	ForkAlt:         {3298, 3262, 3262},
	Boxed:           {3334, 3317, 3317},
	Stick:           {0, 3658, 3658},
	StickAlt:        {0, 3658, 3658},
	ThickCentred:    {0, 3141, 3141},
	Thick:           {0, 3158, 3158},
	ThickAlt:        {0, 3175, 3175},
	ThickAltCentred: {0, 3192, 3192},
	Truss:           {0, 3124, 3124},
	TubesInverted:   {3243, 3209, 3226},
	BoxedCoated:     {3334, 3353, 3353},
}

// slopeImageOffsets picks the base plate sprite matching the surface slope.
var slopeImageOffsets = [32]uint32{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0,
	0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 16, 0, 17, 18, 0,
}

package bm

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/paint/support"
	"coasterpaint/internal/track"
)

const (
	segTop    = paint.SegmentTop
	segLeft   = paint.SegmentLeft
	segRight  = paint.SegmentRight
	segBottom = paint.SegmentBottom
	segCentre = paint.SegmentCentre
	segTL     = paint.SegmentTopLeft
	segTR     = paint.SegmentTopRight
	segBL     = paint.SegmentBottomLeft
	segBR     = paint.SegmentBottomRight
)

const (
	flat       = paint.TunnelFlat
	slopeStart = paint.TunnelSlopeStart
	slopeEnd   = paint.TunnelSlopeEnd
	flatTo25   = paint.TunnelFlatTo25Deg
)

var segs = paint.SegmentsOf

var (
	flatTiles       = straight(0, 0, flat, 0, flat, 32)
	up25Tiles       = straight(8, -8, slopeStart, 8, slopeEnd, 56)
	up60Tiles       = straight(32, -8, slopeStart, 56, slopeEnd, 104)
	flatToUp25Tiles = straight(3, 0, flat, 0, slopeEnd, 48)
	up25ToUp60Tiles = straight(12, -8, slopeStart, 24, slopeEnd, 72)
	up60ToUp25Tiles = straight(20, -8, slopeStart, 24, slopeEnd, 72)
	up25ToFlatTiles = straight(6, -8, flat, 8, flatTo25, 40)
)

var quarterTurn5Tiles = []tileSpec{
	{supports: sup(centre(0)), tunnels: tun(entry(0, flat)), segments: segs(segTop, segCentre, segTR, segBL), general: 32},
	{general: 32},
	{segments: segs(segTop, segLeft, segCentre, segTL, segTR, segBL), general: 32},
	{segments: segs(segRight, segCentre, segTR, segBR), general: 32},
	{general: 32},
	{segments: segs(segLeft, segBottom, segCentre, segTL, segBL, segBR), general: 32},
	{supports: sup(centre(0)), tunnels: turnExit(track.DirNE, track.DirSE, 0, flat), segments: segs(segBottom, segCentre, segTL, segBR), general: 32},
}

var leftQuarterTurn5Up25Tiles = []tileSpec{
	{supports: sup(centre(8)), tunnels: tun(entry(-8, slopeStart)), segments: segs(segTop, segCentre, segTR, segBL), general: 72},
	{general: 72},
	{segments: segs(segTop, segLeft, segCentre, segTL, segTR, segBL), general: 72},
	{segments: segs(segRight, segCentre, segTR, segBR), general: 64},
	{general: 72},
	{segments: segs(segLeft, segBottom, segCentre, segTL, segBL, segBR), general: 72},
	{supports: sup(centre(8)), tunnels: turnExit(track.DirNE, track.DirSE, 8, slopeEnd), segments: segs(segBottom, segCentre, segTL, segBR), general: 72},
}

var rightQuarterTurn5Up25Tiles = []tileSpec{
	{supports: sup(centre(8)), tunnels: tun(entry(-8, slopeStart)), segments: segs(segRight, segCentre, segTR, segBL), general: 72},
	{general: 72},
	{segments: segs(segRight, segBottom, segCentre, segTR, segBL, segBR), general: 72},
	{segments: segs(segTop, segCentre, segTL, segTR), general: 64},
	{general: 72},
	{segments: segs(segLeft, segBottom, segCentre, segTL, segBL, segBR), general: 72},
	{supports: sup(centre(8)), tunnels: turnExit(track.DirSW, track.DirNW, 8, slopeEnd), segments: segs(segLeft, segCentre, segTL, segBR), general: 72},
}

var sBendLeftTiles = []tileSpec{
	{supports: sup(centre(0)), tunnels: tun(entry(0, flat)), segments: segs(segTop, segCentre, segTR, segBL), general: 32},
	{
		supports: sup(
			supportSpec{dirs: dirs(track.DirSW), place: support.TopLeftSide},
			supportSpec{dirs: dirs(track.DirNW), place: support.TopRightSide, special: 1},
		),
		segments: segs(segTop, segLeft, segCentre, segTL, segTR, segBL),
		general:  32,
	},
	{
		supports: sup(
			supportSpec{dirs: dirs(track.DirNE), place: support.TopLeftSide},
			supportSpec{dirs: dirs(track.DirSE), place: support.TopRightSide, special: 1},
		),
		segments: segs(segRight, segBottom, segCentre, segTR, segBL, segBR),
		general:  32,
	},
	{supports: sup(centre(0)), tunnels: tun(exit(0, flat)), segments: segs(segBottom, segCentre, segTR, segBL), general: 32},
}

var sBendRightTiles = []tileSpec{
	{supports: sup(centre(0)), tunnels: tun(entry(0, flat)), segments: segs(segRight, segCentre, segTR, segBL), general: 32},
	{
		supports: sup(
			supportSpec{dirs: dirs(track.DirSW), place: support.BottomRightSide},
			supportSpec{dirs: dirs(track.DirNW), place: support.BottomLeftSide},
		),
		segments: segs(segRight, segBottom, segCentre, segTR, segBL, segBR),
		general:  32,
	},
	{
		supports: sup(
			supportSpec{dirs: dirs(track.DirNE), place: support.BottomRightSide},
			supportSpec{dirs: dirs(track.DirSE), place: support.BottomLeftSide},
		),
		segments: segs(segTop, segLeft, segCentre, segTL, segTR, segBL),
		general:  32,
	},
	{supports: sup(centre(0)), tunnels: tun(exit(0, flat)), segments: segs(segLeft, segCentre, segTR, segBL), general: 32},
}

func verticalLoop(rise, fall [track.NumDirections]int32, segments [10]paint.Segments, order stepOrder) []tileSpec {
	generals := [10]int32{56, 72, 168, 48, 48, 48, 48, 168, 72, 56}
	tiles := make([]tileSpec, len(generals))
	for seq := range tiles {
		tiles[seq] = tileSpec{segments: segments[seq], emptySegments: order == orderSegmentsLast, general: generals[seq], order: order}
	}
	tiles[0].supports = sup(centre(8))
	tiles[0].tunnels = tun(entry(-8, slopeStart))
	tiles[1].supports = centreByDir(rise)
	tiles[8].supports = centreByDir(fall)
	tiles[9].supports = sup(centre(8))
	tiles[9].tunnels = tun(exit(-8, slopeStart))
	return tiles
}

var leftVerticalLoopTiles = verticalLoop(
	[4]int32{20, 15, 16, 16},
	[4]int32{16, 16, 20, 15},
	[10]paint.Segments{
		segs(segTop, segLeft, segCentre, segTL, segTR, segBL),
		segs(segTop, segLeft, segCentre, segTL, segTR, segBL),
		segs(segLeft, segCentre, segTL, segBL),
		segs(segTop, segLeft, segCentre, segTL, segTR, segBL),
		0,
		0,
		segs(segRight, segBottom, segCentre, segTR, segBL, segBR),
		segs(segRight, segCentre, segTR, segBR),
		segs(segRight, segBottom, segCentre, segTR, segBL, segBR),
		segs(segRight, segBottom, segCentre, segTR, segBL, segBR),
	},
	orderNormal,
)

var rightVerticalLoopTiles = verticalLoop(
	[4]int32{16, 16, 15, 20},
	[4]int32{15, 20, 16, 16},
	[10]paint.Segments{
		segs(segRight, segBottom, segCentre, segTR, segBL, segBR),
		segs(segRight, segBottom, segCentre, segTR, segBL, segBR),
		segs(segBottom, segCentre, segBL, segBR),
		segs(segRight, segBottom, segCentre, segTR, segBL, segBR),
		0,
		0,
		segs(segTop, segLeft, segCentre, segTL, segTR, segBL),
		segs(segTop, segCentre, segTL, segTR),
		segs(segTop, segLeft, segCentre, segTL, segTR, segBL),
		segs(segTop, segLeft, segCentre, segTL, segTR, segBL),
	},
	orderSegmentsLast,
)

var quarterTurn3Tiles = []tileSpec{
	{supports: sup(centre(0)), tunnels: tun(entry(0, flat)), segments: segs(segTop, segCentre, segTR, segBL), general: 32},
	{general: 32},
	{segments: segs(segLeft, segCentre, segTL, segBL), general: 32},
	{supports: sup(centre(0)), tunnels: turnExit(track.DirNE, track.DirSE, 0, flat), segments: segs(segBottom, segCentre, segTL, segBR), general: 32},
}

var leftQuarterTurn3Up25Tiles = []tileSpec{
	{supports: sup(centre(8)), tunnels: tun(entry(-8, slopeStart)), segments: segs(segTop, segCentre, segTR, segBL), general: 72},
	{general: 56},
	{general: 56},
	{supports: sup(centre(8)), tunnels: turnExit(track.DirNE, track.DirSE, 8, slopeEnd), segments: segs(segBottom, segCentre, segTL, segBR), general: 72},
}

var rightQuarterTurn3Up25Tiles = []tileSpec{
	{supports: sup(centre(8)), tunnels: tun(entry(-8, slopeStart)), segments: segs(segRight, segCentre, segTR, segBL), general: 72},
	{general: 56},
	{general: 56},
	{supports: centreByDir([4]int32{8, 8, 10, 8}), tunnels: turnExit(track.DirSW, track.DirNW, 8, slopeEnd), segments: segs(segLeft, segCentre, segTL, segBR), general: 72},
}

var leftHelixSmallTiles = []tileSpec{
	{supports: sup(centre(2)), tunnels: tun(entry(0, flat)), segments: segs(segTop, segCentre, segTL, segTR, segBL), general: 32},
	{general: 32},
	{segments: segs(segLeft, segCentre, segTL, segBL), general: 32},
	{supports: sup(centre(6)), tunnels: turnExit(track.DirNE, track.DirSE, 8, flat), segments: segs(segBottom, segCentre, segTL, segBL, segBR), general: 32},
	{supports: sup(centre(2)), tunnels: turnExit(track.DirSW, track.DirNW, 0, flat), segments: segs(segLeft, segCentre, segTL, segBL, segBR), general: 32},
	{general: 32},
	{segments: segs(segBottom, segCentre, segBL, segBR), general: 32},
	{supports: sup(centre(6)), tunnels: tun(entry(8, flat)), segments: segs(segRight, segCentre, segTR, segBL, segBR), general: 32},
}

var rightHelixSmallTiles = []tileSpec{
	{supports: sup(centre(2)), tunnels: tun(entry(0, flat)), segments: segs(segRight, segCentre, segTR, segBL, segBR), general: 32},
	{general: 32},
	{segments: segs(segBottom, segCentre, segBL, segBR), general: 32},
	{supports: sup(centre(6)), tunnels: turnExit(track.DirSW, track.DirNW, 8, flat), segments: segs(segLeft, segCentre, segTL, segBL, segBR), general: 32},
	{supports: sup(centre(2)), tunnels: turnExit(track.DirNE, track.DirSE, 0, flat), segments: segs(segBottom, segCentre, segTL, segBL, segBR), general: 32},
	{general: 32},
	{segments: segs(segLeft, segCentre, segTL, segBL), general: 32},
	{supports: sup(centre(6)), tunnels: tun(entry(8, flat)), segments: segs(segTop, segCentre, segTL, segTR, segBL), general: 32},
}

var leftHelixLargeTiles = []tileSpec{
	{supports: sup(centre(1)), tunnels: tun(entry(0, flat)), segments: segs(segTop, segCentre, segTL, segTR, segBL), general: 32},
	{general: 32},
	{segments: segs(segTop, segLeft, segCentre, segTL, segTR, segBL), general: 32},
	{segments: segs(segRight, segCentre, segTR, segBR), general: 32},
	{general: 32},
	{segments: segs(segLeft, segBottom, segCentre, segTL, segBL, segBR), general: 32},
	{supports: sup(centre(7)), tunnels: turnExit(track.DirNE, track.DirSE, 8, flat), segments: segs(segBottom, segCentre, segTL, segBL, segBR), general: 32},
	{supports: sup(centre(1)), tunnels: turnExit(track.DirSW, track.DirNW, 0, flat), segments: segs(segLeft, segCentre, segTL, segBL, segBR), general: 32},
	{general: 32},
	{segments: segs(segLeft, segBottom, segCentre, segTL, segBL, segBR), general: 32},
	{segments: segs(segTop, segCentre, segTL, segTR), general: 32},
	{general: 32},
	{segments: segs(segRight, segBottom, segCentre, segTR, segBL, segBR), general: 32},
	{supports: sup(centre(7)), tunnels: tun(entry(8, flat)), segments: segs(segRight, segCentre, segTR, segBL, segBR), general: 32},
}

var rightHelixLargeTiles = []tileSpec{
	{supports: sup(centre(1)), tunnels: tun(entry(0, flat)), segments: segs(segRight, segCentre, segTR, segBL, segBR), general: 32},
	{general: 32},
	{segments: segs(segRight, segBottom, segCentre, segTR, segBL, segBR), general: 32},
	{segments: segs(segTop, segCentre, segTL, segTR), general: 32},
	{general: 32},
	{segments: segs(segLeft, segBottom, segCentre, segTL, segBL, segBR), general: 32},
	{supports: sup(centre(7)), tunnels: turnExit(track.DirSW, track.DirNW, 8, flat), segments: segs(segLeft, segCentre, segTL, segBL, segBR), general: 32},
	{supports: sup(centre(1)), tunnels: turnExit(track.DirNE, track.DirSE, 0, flat), segments: segs(segBottom, segCentre, segTL, segBL, segBR), general: 32},
	{general: 32},
	{segments: segs(segLeft, segBottom, segCentre, segTL, segBL, segBR), general: 32},
	{segments: segs(segRight, segCentre, segTR, segBR), general: 32},
	{general: 32},
	{segments: segs(segTop, segLeft, segCentre, segTL, segTR, segBL), general: 32},
	{supports: sup(centre(7)), tunnels: tun(entry(8, flat)), segments: segs(segTop, segCentre, segTL, segTR, segBL), general: 32},
}

// The steep one tile turns climb from the start edge to the end edge of the
// same tile, so their tunnels depend on which edges face the viewer.
var (
	quarterTurn1Up60Start = tunnelSpec{dz: -8, sub: slopeStart}
	quarterTurn1Up60End   = tunnelSpec{dz: 56, sub: slopeEnd}
)

// edgeTunnel pins a tunnel to one edge for one direction.
type edgeTunnel struct {
	d    track.Direction
	side tunnelSide
	t    tunnelSpec
}

func quarterTurn1Tunnels(edges ...edgeTunnel) []tunnelSpec {
	out := make([]tunnelSpec, 0, len(edges))
	for _, e := range edges {
		t := e.t
		t.dirs = dirs(e.d)
		t.side = e.side
		out = append(out, t)
	}
	return out
}

var leftQuarterTurn1Up60Tiles = []tileSpec{{
	tunnels: quarterTurn1Tunnels(
		edgeTunnel{track.DirSW, sideLeft, quarterTurn1Up60Start},
		edgeTunnel{track.DirNE, sideRight, quarterTurn1Up60End},
		edgeTunnel{track.DirSE, sideRight, quarterTurn1Up60Start},
		edgeTunnel{track.DirSE, sideLeft, quarterTurn1Up60End},
	),
	segments: paint.SegmentsAll,
	general:  104,
}}

var rightQuarterTurn1Up60Tiles = []tileSpec{{
	tunnels: quarterTurn1Tunnels(
		edgeTunnel{track.DirNW, sideLeft, quarterTurn1Up60End},
		edgeTunnel{track.DirSE, sideRight, quarterTurn1Up60Start},
		edgeTunnel{track.DirSW, sideRight, quarterTurn1Up60End},
		edgeTunnel{track.DirSW, sideLeft, quarterTurn1Up60Start},
	),
	segments: paint.SegmentsAll,
	general:  104,
}}

var quarterTurn1Up90Tiles = []tileSpec{
	{vertical: 96, segments: segs(segCentre, segTR, segBL), general: 96},
	{},
}

var onRidePhotoTiles = []tileSpec{{
	tunnels:  tun(entry(0, flat), exit(0, flat)),
	segments: paint.SegmentsAll,
	general:  48,
}}

var stationTiles = []tileSpec{{
	segments: paint.SegmentsAll,
	general:  32,
}}

func eighthToDiag(corners [track.NumDirections]support.Place, segments [5]paint.Segments) []tileSpec {
	tiles := make([]tileSpec, len(segments))
	for seq := range tiles {
		tiles[seq] = tileSpec{segments: segments[seq], general: 32}
	}
	tiles[0].supports = sup(centre(0))
	tiles[0].tunnels = tun(entry(0, flat))
	tiles[4].supports = placedByDir(corners, [4]int32{})
	return tiles
}

var leftEighthToDiagTiles = eighthToDiag(
	[4]support.Place{support.BottomCorner, support.LeftCorner, support.TopCorner, support.RightCorner},
	[5]paint.Segments{
		paint.StraightFlat,
		segs(segTop, segLeft, segCentre, segTL, segTR, segBL),
		segs(segRight, segBottom, segCentre, segTR, segBR),
		segs(segLeft, segCentre, segTL, segBL),
		segs(segBottom, segCentre, segTL, segTR, segBL, segBR),
	},
)

var rightEighthToDiagTiles = eighthToDiag(
	[4]support.Place{support.LeftCorner, support.TopCorner, support.RightCorner, support.BottomCorner},
	[5]paint.Segments{
		paint.StraightFlat,
		segs(segRight, segBottom, segCentre, segTR, segBL, segBR),
		segs(segTop, segLeft, segCentre, segTL, segTR),
		segs(segBottom, segCentre, segBL, segBR),
		segs(segLeft, segCentre, segTL, segTR, segBL, segBR),
	},
)

var flatToUp60LongBaseTiles = []tileSpec{
	{supports: sup(checkered(3)), tunnels: tun(entry(0, flat)), segments: paint.StraightFlat, general: 48},
	{supports: sup(checkered(9)), segments: paint.StraightFlat, general: 48},
	{supports: sup(checkered(10)), segments: paint.StraightFlat, general: 64},
	{supports: sup(checkered(19)), tunnels: tun(exit(24, slopeEnd)), segments: paint.StraightFlat, general: 80},
}

var up60ToFlatLongBaseTiles = []tileSpec{
	{supports: sup(checkered(24)), tunnels: tun(entry(0, slopeStart)), segments: paint.StraightFlat, general: 80},
	{supports: sup(checkered(18)), segments: paint.StraightFlat, general: 80},
	{supports: sup(checkered(13)), segments: paint.StraightFlat, general: 56},
	{supports: sup(checkered(5)), tunnels: tun(exit(8, flatTo25)), segments: paint.StraightFlat, general: 40},
}

var flatToUp60Tiles = []tileSpec{{
	supports: sup(
		centre(3).on(dirs(track.DirSW, track.DirSE)),
		centre(0).at(4).on(dirs(track.DirNW, track.DirNE)),
	),
	tunnels:  tun(entry(0, flat), exit(24, slopeEnd)),
	segments: paint.StraightFlat,
	general:  64,
}}

var up60ToFlatTiles = straight(16, -8, slopeStart, 24, flat, 72)

// The holding brake levels out at the crest and dips towards the drop on its far edge.
var brakeForDropTiles = []tileSpec{{
	supports: sup(centre(0)),
	tunnels:  tun(entry(0, flat), exit(24, slopeEnd)),
	segments: paint.StraightFlat,
	general:  56,
}}

func bankToQuarterTurn3Up25(first, last paint.Segments, right, left track.Direction) []tileSpec {
	return []tileSpec{
		{supports: sup(centre(3)), tunnels: tun(entry(0, flat)), segments: first, general: 64},
		{general: 48},
		{general: 48},
		{supports: sup(centre(8).at(-6)), tunnels: turnExit(right, left, 0, slopeEnd), segments: last, general: 64},
	}
}

var (
	leftBankToQuarterTurn3Up25Tiles = bankToQuarterTurn3Up25(
		segs(segTop, segCentre, segTR, segBL), segs(segBottom, segCentre, segTL, segBR), track.DirNE, track.DirSE)
	rightBankToQuarterTurn3Up25Tiles = bankToQuarterTurn3Up25(
		segs(segRight, segCentre, segTR, segBL), segs(segLeft, segCentre, segTL, segBR), track.DirSW, track.DirNW)
)

var up90Tiles = []tileSpec{
	{vertical: 32, segments: segs(segCentre, segTR, segBL), general: 32},
	{},
}

var up60ToUp90Tiles = []tileSpec{
	{tunnels: tun(entry(-8, slopeStart)), vertical: 56, segments: segs(segCentre, segTR, segBL), general: 56},
	{},
}

var up90ToUp60Tiles = []tileSpec{
	{tunnels: tun(exit(48, slopeEnd)), segments: segs(segCentre, segTR, segBL), general: 80},
}

var down60ToDown90Tiles = []tileSpec{
	{tunnels: tun(entry(48, slopeEnd)), segments: segs(segCentre, segTR, segBL), general: 80},
	{},
}

var halfLoopUpTiles = []tileSpec{
	{supports: sup(centre(8)), tunnels: tun(entry(-8, slopeStart)), segments: segs(segCentre, segTR, segBL), general: 56},
	{supports: centreByDir([4]int32{20, 15, 16, 16}), segments: paint.SegmentsAll, general: 72},
	{segments: segs(segLeft, segBottom, segCentre, segTL, segBL, segBR), general: 168},
	{tunnels: tun(entry(0, flat)), segments: segs(segCentre, segTR, segBL), general: 48},
}

var leftCorkscrewUpTiles = []tileSpec{
	{supports: sup(centre(0)), tunnels: tun(entry(0, flat)), segments: segs(segTop, segCentre, segTL, segTR, segBL), general: 48, order: orderSegmentsFirst},
	{segments: paint.SegmentsAll, general: 72},
	{supports: sup(centre(0).at(35)), tunnels: turnExit(track.DirNE, track.DirSE, 8, flat), segments: segs(segLeft, segCentre, segTL, segBL, segBR), general: 48, order: orderSegmentsFirst},
}

var rightCorkscrewUpTiles = []tileSpec{
	{supports: sup(centre(0)), tunnels: tun(entry(0, flat)), segments: segs(segRight, segCentre, segTR, segBL, segBR), general: 48},
	{segments: paint.SegmentsAll, general: 72},
	{supports: sup(centre(0).at(35)), tunnels: turnExit(track.DirSW, track.DirNW, 8, flat), segments: segs(segLeft, segCentre, segTL, segBL, segBR), general: 48, order: orderSegmentsFirst},
}

func barrelRoll(corners [track.NumDirections]support.Place, segments [3]paint.Segments) []tileSpec {
	end := exit(0, flat)
	end.inverted = true
	return []tileSpec{
		{supports: placedByDir(corners, [4]int32{2, 2, 2, 2}), tunnels: tun(entry(0, flat)), segments: segments[0], general: 32},
		{segments: segments[1], general: 48},
		{tunnels: tun(end), segments: segments[2], general: 48},
	}
}

var (
	leftBarrelRollTiles = barrelRoll(
		[4]support.Place{support.RightCorner, support.BottomCorner, support.LeftCorner, support.TopCorner},
		[3]paint.Segments{
			segs(segRight, segCentre, segTR, segBL, segBR),
			segs(segRight, segBottom, segCentre, segTR, segBL, segBR),
			segs(segBottom, segCentre, segTR, segBL, segBR),
		})
	rightBarrelRollTiles = barrelRoll(
		[4]support.Place{support.TopCorner, support.RightCorner, support.BottomCorner, support.LeftCorner},
		[3]paint.Segments{
			segs(segTop, segCentre, segTL, segTR, segBL),
			segs(segTop, segLeft, segCentre, segTL, segTR, segBL),
			segs(segLeft, segCentre, segTL, segTR, segBL),
		})
)

var poweredLiftTiles = []tileSpec{{
	supports: sup(centre(8)),
	tunnels:  tun(entry(-8, slopeStart), exit(8, slopeEnd)),
	segments: paint.StraightFlat,
	general:  56,
}}

func largeHalfLoop(sides [track.NumDirections]support.Place, specials [track.NumDirections]int32, rise, top, fall paint.Segments) []tileSpec {
	low := segs(segCentre, segTR, segBL)
	return []tileSpec{
		{supports: sup(centre(8)), tunnels: tun(entry(-8, slopeStart)), segments: low, general: 56},
		{supports: sup(centre(9)), segments: low, general: 72},
		{segments: rise, general: 88},
		{supports: placedByDir(sides, specials), segments: rise, general: 224},
		{segments: top, general: 128},
		{segments: fall, general: 224},
		{tunnels: tun(entry(0, flat)), segments: fall, general: 40},
	}
}

var (
	leftLargeHalfLoopTiles = largeHalfLoop(
		[4]support.Place{support.TopLeftSide, support.TopRightSide, support.BottomRightSide, support.BottomLeftSide},
		[4]int32{20, 22, 20, 20},
		segs(segTop, segLeft, segCentre, segTL, segTR, segBL),
		segs(segBottom, segCentre, segBL, segBR),
		segs(segRight, segBottom, segCentre, segTR, segBL, segBR),
	)
	rightLargeHalfLoopTiles = largeHalfLoop(
		[4]support.Place{support.BottomRightSide, support.BottomLeftSide, support.TopLeftSide, support.TopRightSide},
		[4]int32{20, 20, 22, 20},
		segs(segRight, segBottom, segCentre, segTR, segBL, segBR),
		segs(segLeft, segCentre, segTL, segBL),
		segs(segTop, segLeft, segCentre, segTL, segTR, segBL),
	)
)

var quarterLoopTiles = []tileSpec{
	{segments: segs(segCentre, segTL, segBR), general: 88},
	{segments: segs(segCentre, segTL, segBR), general: 64},
	{tunnels: tun(entry(16, flat)), segments: segs(segCentre, segTL, segBR), general: 48},
}

// tileTables lists the pieces painted from their own sprites. Station and
// on-ride photo tiles add their furniture on top of the table entry.
var tileTables = map[track.Type][]tileSpec{
	track.Flat:                                  flatTiles,
	track.EndStation:                            stationTiles,
	track.BeginStation:                          stationTiles,
	track.MiddleStation:                         stationTiles,
	track.Up25:                                  up25Tiles,
	track.Up60:                                  up60Tiles,
	track.FlatToUp25:                            flatToUp25Tiles,
	track.Up25ToUp60:                            up25ToUp60Tiles,
	track.Up60ToUp25:                            up60ToUp25Tiles,
	track.Up25ToFlat:                            up25ToFlatTiles,
	track.LeftQuarterTurn5Tiles:                 quarterTurn5Tiles,
	track.FlatToLeftBank:                        flatTiles,
	track.FlatToRightBank:                       flatTiles,
	track.BankedLeftQuarterTurn5Tiles:           quarterTurn5Tiles,
	track.LeftBankToUp25:                        flatToUp25Tiles,
	track.RightBankToUp25:                       flatToUp25Tiles,
	track.Up25ToLeftBank:                        up25ToFlatTiles,
	track.Up25ToRightBank:                       up25ToFlatTiles,
	track.LeftBank:                              flatTiles,
	track.LeftQuarterTurn5TilesUp25:             leftQuarterTurn5Up25Tiles,
	track.RightQuarterTurn5TilesUp25:            rightQuarterTurn5Up25Tiles,
	track.SBendLeft:                             sBendLeftTiles,
	track.SBendRight:                            sBendRightTiles,
	track.LeftVerticalLoop:                      leftVerticalLoopTiles,
	track.RightVerticalLoop:                     rightVerticalLoopTiles,
	track.LeftQuarterTurn3Tiles:                 quarterTurn3Tiles,
	track.LeftBankedQuarterTurn3Tiles:           quarterTurn3Tiles,
	track.LeftQuarterTurn3TilesUp25:             leftQuarterTurn3Up25Tiles,
	track.RightQuarterTurn3TilesUp25:            rightQuarterTurn3Up25Tiles,
	track.LeftHalfBankedHelixUpSmall:            leftHelixSmallTiles,
	track.RightHalfBankedHelixUpSmall:           rightHelixSmallTiles,
	track.LeftHalfBankedHelixUpLarge:            leftHelixLargeTiles,
	track.RightHalfBankedHelixUpLarge:           rightHelixLargeTiles,
	track.LeftQuarterTurn1TileUp60:              leftQuarterTurn1Up60Tiles,
	track.RightQuarterTurn1TileUp60:             rightQuarterTurn1Up60Tiles,
	track.Brakes:                                flatTiles,
	track.Up25LeftBanked:                        up25Tiles,
	track.Up25RightBanked:                       up25Tiles,
	track.OnRidePhoto:                           onRidePhotoTiles,
	track.Up90:                                  up90Tiles,
	track.Up60ToUp90:                            up60ToUp90Tiles,
	track.Up90ToUp60:                            up90ToUp60Tiles,
	track.Down60ToDown90:                        down60ToDown90Tiles,
	track.LeftEighthToDiag:                      leftEighthToDiagTiles,
	track.RightEighthToDiag:                     rightEighthToDiagTiles,
	track.LeftEighthBankToDiag:                  leftEighthToDiagTiles,
	track.RightEighthBankToDiag:                 rightEighthToDiagTiles,
	track.DiagFlat:                              diagonal(supportA, 0, 32),
	track.DiagUp25:                              diagonal(supportB, 8, 56),
	track.DiagUp60:                              diagonal(supportB, 36, 104),
	track.DiagFlatToUp25:                        diagonal(supportB, 0, 48),
	track.DiagUp25ToUp60:                        diagonal(supportB, 16, 72),
	track.DiagUp60ToUp25:                        diagonal(supportB, 21, 72),
	track.DiagUp25ToFlat:                        diagonal(supportB, 4, 56),
	track.DiagFlatToLeftBank:                    diagonal(supportA, 0, 32),
	track.DiagFlatToRightBank:                   diagonal(supportA, 0, 32),
	track.DiagLeftBankToUp25:                    diagonal(supportB, 0, 48),
	track.DiagRightBankToUp25:                   diagonal(supportB, 0, 48),
	track.DiagUp25ToLeftBank:                    diagonal(supportB, 4, 56),
	track.DiagUp25ToRightBank:                   diagonal(supportB, 4, 56),
	track.DiagLeftBank:                          diagonal(supportA, 0, 32),
	track.LeftBankToLeftQuarterTurn3TilesUp25:   leftBankToQuarterTurn3Up25Tiles,
	track.RightBankToRightQuarterTurn3TilesUp25: rightBankToQuarterTurn3Up25Tiles,
	track.BlockBrakes:                           flatTiles,
	track.LeftBankedQuarterTurn3TileUp25:        leftQuarterTurn3Up25Tiles,
	track.RightBankedQuarterTurn3TileUp25:       rightQuarterTurn3Up25Tiles,
	track.LeftBankedQuarterTurn5TileUp25:        leftQuarterTurn5Up25Tiles,
	track.RightBankedQuarterTurn5TileUp25:       rightQuarterTurn5Up25Tiles,
	track.Up25ToLeftBankedUp25:                  up25Tiles,
	track.Up25ToRightBankedUp25:                 up25Tiles,
	track.LeftBankedUp25ToUp25:                  up25Tiles,
	track.RightBankedUp25ToUp25:                 up25Tiles,
	track.LeftBankedFlatToLeftBankedUp25:        flatToUp25Tiles,
	track.RightBankedFlatToRightBankedUp25:      flatToUp25Tiles,
	track.LeftBankedUp25ToLeftBankedFlat:        up25ToFlatTiles,
	track.RightBankedUp25ToRightBankedFlat:      up25ToFlatTiles,
	track.FlatToLeftBankedUp25:                  flatToUp25Tiles,
	track.FlatToRightBankedUp25:                 flatToUp25Tiles,
	track.LeftBankedUp25ToFlat:                  up25ToFlatTiles,
	track.RightBankedUp25ToFlat:                 up25ToFlatTiles,
	track.LeftQuarterTurn1TileUp90:              quarterTurn1Up90Tiles,
	track.RightQuarterTurn1TileUp90:             quarterTurn1Up90Tiles,
	track.FlatToUp60:                            flatToUp60Tiles,
	track.Up60ToFlat:                            up60ToFlatTiles,
	track.BrakeForDrop:                          brakeForDropTiles,
	track.DiagFlatToUp60:                        diagonal(supportB, 7, 64),
	track.DiagUp60ToFlat:                        diagonal(supportB, 20, 72),
	track.HalfLoopUp:                            halfLoopUpTiles,
	track.LeftCorkscrewUp:                       leftCorkscrewUpTiles,
	track.RightCorkscrewUp:                      rightCorkscrewUpTiles,
	track.FlatToUp60LongBase:                    flatToUp60LongBaseTiles,
	track.Up60ToFlatLongBase:                    up60ToFlatLongBaseTiles,
	track.LeftBarrelRollUpToDown:                leftBarrelRollTiles,
	track.RightBarrelRollUpToDown:               rightBarrelRollTiles,
	track.PoweredLift:                           poweredLiftTiles,
	track.LeftLargeHalfLoopUp:                   leftLargeHalfLoopTiles,
	track.RightLargeHalfLoopUp:                  rightLargeHalfLoopTiles,
	track.Up90ToInvertedFlatQuarterLoop:         quarterLoopTiles,
	track.Booster:                               flatTiles,
}

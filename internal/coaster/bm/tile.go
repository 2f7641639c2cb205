package bm

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/paint/support"
	"coasterpaint/internal/track"
)

// dirMask selects the directions a support or tunnel applies to.
type dirMask uint8

const allDirs dirMask = 0xF

func dirs(ds ...track.Direction) dirMask {
	var m dirMask
	for _, d := range ds {
		m |= 1 << (d & 3)
	}
	return m
}

func (m dirMask) has(d track.Direction) bool {
	return m&(1<<(d&3)) != 0
}

type supportKind uint8

const (
	supportA supportKind = iota
	supportB
)

// supportSpec is one metal support column of a tile.
type supportSpec struct {
	dirs    dirMask
	kind    supportKind
	place   support.Place
	rotated bool
	special int32
	dz      int32
	// checker limits the column to tiles of the support checkerboard.
	checker bool
}

func centre(special int32) supportSpec {
	return supportSpec{dirs: allDirs, place: support.Centre, rotated: true, special: special}
}

func checkered(special int32) supportSpec {
	sp := centre(special)
	sp.checker = true
	return sp
}

func (sp supportSpec) at(dz int32) supportSpec {
	sp.dz = dz
	return sp
}

func (sp supportSpec) on(m dirMask) supportSpec {
	sp.dirs = m
	return sp
}

func (sp supportSpec) b() supportSpec {
	sp.kind = supportB
	return sp
}

// centreByDir is a centre column whose special height depends on the direction.
func centreByDir(specials [track.NumDirections]int32) []supportSpec {
	out := make([]supportSpec, 0, track.NumDirections)
	for d, special := range specials {
		out = append(out, centre(special).on(dirs(track.Direction(d))))
	}
	return out
}

// placedByDir puts a column at a fixed place of the tile for each direction.
func placedByDir(places [track.NumDirections]support.Place, specials [track.NumDirections]int32) []supportSpec {
	out := make([]supportSpec, 0, track.NumDirections)
	for d := range places {
		out = append(out, supportSpec{dirs: dirs(track.Direction(d)), place: places[d], special: specials[d]})
	}
	return out
}

func (sp supportSpec) paint(s *paint.Session, dir track.Direction, height int32, st support.MetalType) {
	if !sp.dirs.has(dir) {
		return
	}
	if sp.checker && !paint.ShouldPaintSupports(s.MapPosition) {
		return
	}
	h := height + sp.dz
	switch {
	case sp.rotated && sp.kind == supportB:
		support.MetalBRotated(s, st, sp.place, uint8(dir), sp.special, h, s.SupportColours)
	case sp.rotated:
		support.MetalARotated(s, st, sp.place, uint8(dir), sp.special, h, s.SupportColours)
	case sp.kind == supportB:
		support.MetalB(s, st, sp.place, sp.special, h, s.SupportColours)
	default:
		support.MetalA(s, st, sp.place, sp.special, h, s.SupportColours)
	}
}

type tunnelSide uint8

const (
	sideRotated tunnelSide = iota
	sideLeft
	sideRight
)

// tunnelSpec is a tunnel pushed at one edge of a tile.
type tunnelSpec struct {
	dirs     dirMask
	side     tunnelSide
	dz       int32
	sub      paint.TunnelSubType
	inverted bool
}

// entry is the tunnel at the start edge of a straight piece.
func entry(dz int32, sub paint.TunnelSubType) tunnelSpec {
	return tunnelSpec{dirs: dirs(track.DirSW, track.DirSE), dz: dz, sub: sub}
}

// exit is the tunnel at the end edge of a straight piece.
func exit(dz int32, sub paint.TunnelSubType) tunnelSpec {
	return tunnelSpec{dirs: dirs(track.DirNW, track.DirNE), dz: dz, sub: sub}
}

// turnExit is the tunnel at the last tile of a turn: a right-edge tunnel for
// one direction and a left-edge one for another.
func turnExit(right, left track.Direction, dz int32, sub paint.TunnelSubType) []tunnelSpec {
	return []tunnelSpec{
		{dirs: dirs(right), side: sideRight, dz: dz, sub: sub},
		{dirs: dirs(left), side: sideLeft, dz: dz, sub: sub},
	}
}

func (ts tunnelSpec) paint(s *paint.Session, dir track.Direction, height int32) {
	if !ts.dirs.has(dir) {
		return
	}
	group := paint.TunnelGroupSquare
	if ts.inverted {
		group = paint.TunnelGroupInvertedSquare
	}
	h := height + ts.dz
	switch ts.side {
	case sideLeft:
		s.PushTunnelLeft(h, group, ts.sub)
	case sideRight:
		s.PushTunnelRight(h, group, ts.sub)
	default:
		s.PushTunnelRotated(uint8(dir), h, group, ts.sub)
	}
}

// stepOrder is the order a tile applies its supports, tunnels and heights in.
// Supports look at the segment heights, so a tile that blocks its segments
// first paints different columns.
type stepOrder uint8

const (
	orderNormal stepOrder = iota
	orderSegmentsFirst
	orderSegmentsLast
)

// tileSpec describes everything but the sprites of one tile of a piece.
// Heights are relative to the element; segments are given for direction 0.
type tileSpec struct {
	supports []supportSpec
	tunnels  []tunnelSpec
	// vertical is the vertical tunnel height, 0 for none.
	vertical int32
	segments paint.Segments
	// emptySegments sets the segment heights even when no segment is listed.
	emptySegments bool
	// general is the general support clearance, 0 to leave it alone.
	general int32
	order   stepOrder
}

func (t *tileSpec) paintSegments(s *paint.Session, dir track.Direction) {
	if t.segments == 0 && !t.emptySegments {
		return
	}
	s.SetSegmentSupportHeight(paint.RotateSegments(t.segments, uint8(dir)), paint.HeightBlocked, 0)
}

func (t *tileSpec) paintGeneral(s *paint.Session, height int32) {
	if t.general != 0 {
		s.SetGeneralSupportHeight(height + t.general)
	}
}

func (t *tileSpec) paint(s *paint.Session, dir track.Direction, height int32, st support.MetalType) {
	if t.order == orderSegmentsFirst {
		t.paintSegments(s, dir)
	}
	for _, sp := range t.supports {
		sp.paint(s, dir, height, st)
	}
	for _, ts := range t.tunnels {
		ts.paint(s, dir, height)
	}
	if t.vertical != 0 {
		s.SetVerticalTunnel(height + t.vertical)
	}
	switch t.order {
	case orderNormal:
		t.paintSegments(s, dir)
		t.paintGeneral(s, height)
	case orderSegmentsFirst:
		t.paintGeneral(s, height)
	case orderSegmentsLast:
		t.paintGeneral(s, height)
		t.paintSegments(s, dir)
	}
}

func sup(sps ...supportSpec) []supportSpec { return sps }

func tun(ts ...tunnelSpec) []tunnelSpec { return ts }

// straight is a single tile piece on the checkerboard with a tunnel at both ends.
func straight(special, startDz int32, startSub paint.TunnelSubType, endDz int32, endSub paint.TunnelSubType, general int32) []tileSpec {
	return []tileSpec{{
		supports: sup(checkered(special)),
		tunnels:  tun(entry(startDz, startSub), exit(endDz, endSub)),
		segments: paint.StraightFlat,
		general:  general,
	}}
}

// diagonal is a four tile diagonal piece. Only the last tile carries a support.
func diagonal(kind supportKind, special, general int32) []tileSpec {
	tiles := make([]tileSpec, 4)
	for seq := range tiles {
		tiles[seq] = tileSpec{segments: paint.DiagStraightFlat[seq], general: general}
	}
	sp := supportSpec{dirs: allDirs, kind: kind, place: support.LeftCorner, rotated: true, special: special}
	tiles[3].supports = sup(sp)
	return tiles
}

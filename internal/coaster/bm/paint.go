// Package bm paints the track pieces of the Bolliger & Mabillard coaster
// style: the track sprites, the metal supports underneath, the tunnels at
// the tile edges and the support clearances the pieces leave.
package bm

import (
	"sync"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/paint/support"
	"coasterpaint/internal/paint/trackutil"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

// PaintFunc paints one tile of a track piece. seq is the tile of the piece,
// dir the piece direction relative to the viewport and height the base
// height of the element. st is the metal support style of the ride.
type PaintFunc func(s *paint.Session, r *ride.Ride, seq uint8, dir track.Direction, height int32, el track.Element, st support.MetalType)

var catalog = sync.OnceValue(MustLoadCatalog)

// brakeVariant lists the pieces whose second sprite set shows closed brakes
// rather than a chain lift.
var brakeVariant = map[track.Type]bool{
	track.EndStation:  true,
	track.Brakes:      true,
	track.BlockBrakes: true,
}

func spriteVariant(t track.Type, el track.Element) int {
	if brakeVariant[t] {
		if el.BrakeClosed {
			return 1
		}
		return 0
	}
	if el.HasChain {
		return 1
	}
	return 0
}

// drawSprites adds the catalog layers of piece t for one tile.
func drawSprites(s *paint.Session, t track.Type, seq uint8, dir track.Direction, height int32, el track.Element) {
	p := catalog().Piece(t)
	if p == nil {
		paint.Logger().Warn("no sprites for piece", "type", t.String())
		return
	}
	for _, l := range p.Layers(spriteVariant(t, el), dir, seq) {
		offset := l.Offset
		offset.Z += height
		s.AddImageAsParent(s.TrackColours.WithIndex(l.Image), offset, l.BoundBox.Raise(height))
	}
}

func tilePainter(t track.Type, tiles []tileSpec) PaintFunc {
	return func(s *paint.Session, r *ride.Ride, seq uint8, dir track.Direction, height int32, el track.Element, st support.MetalType) {
		if int(seq) >= len(tiles) {
			return
		}
		drawSprites(s, t, seq, dir, height, el)
		tiles[seq].paint(s, dir, height, st)
	}
}

func stationPainter(t track.Type, tiles []tileSpec) PaintFunc {
	return func(s *paint.Session, r *ride.Ride, seq uint8, dir track.Direction, height int32, el track.Element, st support.MetalType) {
		drawSprites(s, t, 0, dir, height, el)
		if trackutil.DrawStation(s, r, dir, height, el, trackutil.StationBaseB, 0) {
			support.DrawSupportsSideBySide(s, uint8(dir), height, s.SupportColours, st, 0)
		} else if paint.ShouldPaintSupports(s.MapPosition) {
			support.MetalARotated(s, st, support.Centre, uint8(dir), 0, height, s.SupportColours)
		}
		trackutil.DrawStationTunnel(s, dir, height)
		tiles[0].paint(s, dir, height, st)
	}
}

func onRidePhotoPainter(t track.Type, tiles []tileSpec) PaintFunc {
	return func(s *paint.Session, r *ride.Ride, seq uint8, dir track.Direction, height int32, el track.Element, st support.MetalType) {
		s.AddImageAsParentRotated(uint8(dir), r.MiscColours(el).WithIndex(trackutil.SprStationBaseD),
			paint.CoordsXYZ{Z: height},
			paint.BoundBoxXYZ{Offset: paint.CoordsXYZ{Z: height}, Length: paint.CoordsXYZ{X: 32, Y: 32, Z: 1}})
		support.DrawSupportsSideBySide(s, uint8(dir), height, s.SupportColours, st, 0)
		drawSprites(s, t, 0, dir, height, el)
		trackutil.OnRidePhotoPaint(s, r, dir, height+3, el)
		tiles[0].paint(s, dir, height, st)
	}
}

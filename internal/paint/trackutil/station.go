// Package trackutil paints the station and on-ride photo furniture shared
// by track styles.
package trackutil

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

// StationBase is the plate drawn under station track.
type StationBase uint8

const (
	StationBaseNone StationBase = iota
	StationBaseA
	StationBaseB
	StationBaseC
)

var stationBaseImages = [...][2]uint32{
	StationBaseA: {sprStationBaseASWNE, sprStationBaseANWSE},
	StationBaseB: {sprStationBaseBSWNE, sprStationBaseBNWSE},
	StationBaseC: {sprStationBaseCSWNE, sprStationBaseCNWSE},
}

const (
	platformHeight = 5
	fenceHeight    = 7
)

// DrawStation paints the base plate, platforms and fences of a station tile.
// offset raises the platforms for styles whose track sits higher. It reports
// false when the ride has no platforms, in which case nothing is drawn.
func DrawStation(s *paint.Session, r *ride.Ride, dir track.Direction, height int32, el track.Element, base StationBase, offset int32) bool {
	if r.StationStyle == ride.StationPlatformless {
		return false
	}
	if base != StationBaseNone {
		img := r.MiscColours(el).WithIndex(stationBaseImages[base][dir&1])
		s.AddImageAsParentRotated(uint8(dir), img,
			paint.CoordsXYZ{Z: height - 2},
			paint.BoundBoxXYZ{Offset: paint.CoordsXYZ{X: 0, Y: 2, Z: height}, Length: paint.CoordsXYZ{X: 32, Y: 28, Z: 3}})
	}
	drawPlatforms(s, r, dir, height, el, platformHeight+offset, fenceHeight+offset)
	return true
}

func box(s *paint.Session, img paint.ImageId, x, y, lx, ly, lz, z int32) {
	s.AddImageAsParentLength(img, paint.CoordsXYZ{X: x, Y: y, Z: z}, paint.CoordsXYZ{X: lx, Y: ly, Z: lz})
}

func drawPlatforms(s *paint.Session, r *ride.Ride, dir track.Direction, height int32, el track.Element, offsetA, offsetB int32) {
	colours := s.SupportColours
	pos := s.MapPosition
	rot := s.CurrentRotation
	isEnd := el.Type == track.EndStation
	isBegin := el.Type == track.BeginStation

	pick := func(fenced bool, a, b uint32) uint32 {
		if fenced {
			return a
		}
		return b
	}

	if !dir.Odd() {
		fenced := r.HasFence(ride.EdgeNW, pos, el, rot)
		var img uint32
		switch {
		case isEnd && dir == 0 && el.GreenLight:
			img = pick(fenced, sprStationPlatformFencedEndGreenSWNE, sprStationPlatformEndGreenLightSWNE)
		case isEnd && dir == 0:
			img = pick(fenced, sprStationPlatformFencedEndRedLightSWNE, sprStationPlatformEndRedLightSWNE)
		case isBegin && dir == 2:
			img = pick(fenced, sprStationPlatformBeginFencedSWNE, sprStationPlatformBeginSWNE)
		default:
			img = pick(fenced, sprStationPlatformFencedSWNE, sprStationPlatformSWNE)
		}
		box(s, colours.WithIndex(img), 0, 0, 32, 8, 1, height+offsetA)

		switch {
		case isEnd && dir == 0:
			img = pick(el.GreenLight, sprStationPlatformEndGreenLightSWNE, sprStationPlatformEndRedLightSWNE)
		case isBegin && dir == 2:
			img = sprStationPlatformBeginSWNE
		default:
			img = sprStationPlatformSWNE
		}
		box(s, colours.WithIndex(img), 0, 24, 32, 8, 1, height+offsetA)

		switch {
		case r.HasFence(ride.EdgeSE, pos, el, rot):
			switch {
			case isBegin && dir == 0:
				img = sprStationBeginAngleFenceSWNE
			case isEnd && dir == 2:
				img = sprStationLightBackAngleFencedNESW
			default:
				img = sprStationFenceSWNE
			}
			box(s, colours.WithIndex(img), 0, 31, 32, 1, 7, height+offsetB)
		case isBegin && dir == 0:
			box(s, colours.WithIndex(sprStationFenceSmallNWSE), 31, 23, 1, 8, 7, height+offsetB)
		case isEnd && dir == 2:
			box(s, colours.WithIndex(sprStationLightBackNESW), 31, 23, 1, 8, 7, height+offsetB)
		}

		switch {
		case isBegin && dir == 0:
			box(s, colours.WithIndex(sprStationFenceSmallNWSE), 31, 0, 1, 8, 7, height+offsetB)
		case isEnd && dir == 2:
			box(s, colours.WithIndex(sprStationLightBackNESW), 31, 0, 1, 8, 7, height+offsetB)
		}
		return
	}

	fenced := r.HasFence(ride.EdgeNE, pos, el, rot)
	var img uint32
	switch {
	case isEnd && dir == 3 && el.GreenLight:
		img = pick(fenced, sprStationPlatformFencedEndGreenNWSE, sprStationPlatformEndGreenLightNWSE)
	case isEnd && dir == 3:
		img = pick(fenced, sprStationPlatformFencedEndRedLightNWSE, sprStationPlatformEndRedLightNWSE)
	case isBegin && dir == 1:
		img = pick(fenced, sprStationPlatformBeginFencedNWSE, sprStationPlatformBeginNWSE)
	default:
		img = pick(fenced, sprStationPlatformFencedNWSE, sprStationPlatformNWSE)
	}
	box(s, colours.WithIndex(img), 0, 0, 8, 32, 1, height+offsetA)

	switch {
	case isEnd && dir == 3:
		img = pick(el.GreenLight, sprStationPlatformEndGreenLightNWSE, sprStationPlatformEndRedLightNWSE)
	case isBegin && dir == 1:
		img = sprStationPlatformBeginNWSE
	default:
		img = sprStationPlatformNWSE
	}
	box(s, colours.WithIndex(img), 24, 0, 8, 32, 1, height+offsetA)

	switch {
	case r.HasFence(ride.EdgeSW, pos, el, rot):
		switch {
		case isBegin && dir == 3:
			img = sprStationBeginAngleFenceNWSE
		case isEnd && dir == 1:
			img = sprStationLightBackAngleFencedNWSE
		default:
			img = sprStationFenceNWSE
		}
		box(s, colours.WithIndex(img), 31, 0, 1, 32, 7, height+offsetB)
	case isBegin && dir == 3:
		box(s, colours.WithIndex(sprStationFenceSmallSWNE), 23, 31, 8, 1, 7, height+offsetB)
	case isEnd && dir == 1:
		box(s, colours.WithIndex(sprStationLightBackNWSE), 23, 31, 8, 1, 7, height+offsetB)
	}

	switch {
	case isBegin && dir == 3:
		box(s, colours.WithIndex(sprStationFenceSmallSWNE), 0, 31, 8, 1, 7, height+offsetB)
	case isEnd && dir == 1:
		box(s, colours.WithIndex(sprStationLightBackNWSE), 0, 31, 8, 1, 7, height+offsetB)
	}
}

// DrawStationTunnel pushes the square tunnel stations use at their open edge.
func DrawStationTunnel(s *paint.Session, dir track.Direction, height int32) {
	if dir.Odd() {
		s.PushTunnelRight(height, paint.TunnelGroupSquare, paint.TunnelFlat)
		return
	}
	s.PushTunnelLeft(height, paint.TunnelGroupSquare, paint.TunnelFlat)
}

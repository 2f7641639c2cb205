package bm

import (
	"fmt"
	"sort"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/paint/support"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

var painters = buildPainters()

func buildPainters() map[track.Type]PaintFunc {
	out := make(map[track.Type]PaintFunc, len(tileTables)+len(delegations))
	for t, tiles := range tileTables {
		switch t {
		case track.EndStation, track.BeginStation, track.MiddleStation:
			out[t] = stationPainter(t, tiles)
		case track.OnRidePhoto:
			out[t] = onRidePhotoPainter(t, tiles)
		default:
			out[t] = tilePainter(t, tiles)
		}
	}
	for t, d := range delegations {
		target, ok := out[d.Target]
		if !ok {
			panic(fmt.Sprintf("bm: %s delegates to unpainted piece %s", t, d.Target))
		}
		out[t] = delegatedPainter(d, target)
	}
	return out
}

func delegatedPainter(d Delegation, target PaintFunc) PaintFunc {
	return func(s *paint.Session, r *ride.Ride, seq uint8, dir track.Direction, height int32, el track.Element, st support.MetalType) {
		seq, dir, ok := d.Apply(seq, dir)
		if !ok {
			return
		}
		target(s, r, seq, dir, height, el, st)
	}
}

// GetTrackPaintFunction returns the painter of piece t, or nil when the
// style has no such piece.
func GetTrackPaintFunction(t track.Type) PaintFunc {
	return painters[t]
}

// Types lists the pieces the style paints, in enumeration order.
func Types() []track.Type {
	out := make([]track.Type, 0, len(painters))
	for t := range painters {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SequenceCount returns the number of tiles of piece t, or 0 when the style
// has no such piece.
func SequenceCount(t track.Type) int {
	if tiles, ok := tileTables[t]; ok {
		return len(tiles)
	}
	d, ok := delegations[t]
	if !ok {
		return 0
	}
	if d.Seq != nil && d.Half == 0 {
		return len(d.Seq)
	}
	return len(tileTables[d.Target])
}

// RidePaintFunc is a PaintFunc bound to the support style of a ride.
type RidePaintFunc func(s *paint.Session, r *ride.Ride, seq uint8, dir track.Direction, height int32, el track.Element)

// Bind returns the painter of t for a ride on st supports, or nil when the
// style has no such piece.
func Bind(t track.Type, st support.MetalType) RidePaintFunc {
	fn := GetTrackPaintFunction(t)
	if fn == nil {
		return nil
	}
	return func(s *paint.Session, r *ride.Ride, seq uint8, dir track.Direction, height int32, el track.Element) {
		fn(s, r, seq, dir, height, el, st)
	}
}

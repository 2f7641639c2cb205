// Package twister is the Twister Roller Coaster: B&M track on tubular supports.
package twister

import (
	"coasterpaint/internal/coaster/bm"
	"coasterpaint/internal/paint/support"
	"coasterpaint/internal/track"
)

// SupportType is the metal support style of the ride.
const SupportType = support.Tubes

// GetTrackPaintFunction returns the painter of piece t, or nil when the ride
// cannot build it.
func GetTrackPaintFunction(t track.Type) bm.RidePaintFunc {
	return bm.Bind(t, SupportType)
}

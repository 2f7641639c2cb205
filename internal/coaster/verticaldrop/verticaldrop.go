// Package verticaldrop is the Vertical Drop Roller Coaster. It shares the
// B&M track and stands on boxed supports.
package verticaldrop

import (
	"coasterpaint/internal/coaster/bm"
	"coasterpaint/internal/paint/support"
	"coasterpaint/internal/track"
)

const SupportType = support.Boxed

func GetTrackPaintFunction(t track.Type) bm.RidePaintFunc {
	return bm.Bind(t, SupportType)
}

// Package coaster looks up the rides painted with the B&M track style.
package coaster

import (
	"sort"

	"coasterpaint/internal/coaster/bm"
	"coasterpaint/internal/coaster/twister"
	"coasterpaint/internal/coaster/verticaldrop"
	"coasterpaint/internal/paint"
	"coasterpaint/internal/paint/support"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

// Style is a ride type together with its track painter.
type Style struct {
	Name     string
	Supports support.MetalType
	Painter  func(track.Type) bm.RidePaintFunc
}

var styles = map[string]Style{
	"twister":      {Name: "twister", Supports: twister.SupportType, Painter: twister.GetTrackPaintFunction},
	"verticaldrop": {Name: "verticaldrop", Supports: verticaldrop.SupportType, Painter: verticaldrop.GetTrackPaintFunction},
}

// Lookup returns the style registered under name.
func Lookup(name string) (Style, bool) {
	s, ok := styles[name]
	return s, ok
}

// Names lists the registered styles in alphabetical order.
func Names() []string {
	out := make([]string, 0, len(styles))
	for n := range styles {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Tile is one tile of a placed piece.
type Tile struct {
	Type     track.Type
	Dir      track.Direction
	Seq      uint8
	Height   int32
	Position paint.CoordsXY
	// Rotation is the viewport rotation the tile is seen from.
	Rotation uint8
	Chain    bool
	Brake    bool
}

// Paint paints tile for r on a fresh session and returns the recorded calls.
// Pieces the style does not have paint nothing.
func (s Style) Paint(r *ride.Ride, tile Tile) []paint.Call {
	fn := s.Painter(tile.Type)
	if fn == nil {
		return nil
	}
	sess := paint.NewSession()
	sess.MapPosition = tile.Position
	sess.CurrentRotation = tile.Rotation & 3
	el := track.NewElement(tile.Type, tile.Dir, tile.Seq, tile.Height)
	el.HasChain = tile.Chain
	el.BrakeClosed = tile.Brake
	r.Apply(sess, el)
	fn(sess, r, tile.Seq, tile.Dir, tile.Height, el)
	return sess.Calls()
}

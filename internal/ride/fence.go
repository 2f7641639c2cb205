package ride

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

// Edge is a side of a map tile.
type Edge uint8

const (
	EdgeNE Edge = iota
	EdgeSE
	EdgeSW
	EdgeNW
)

var (
	edgeOffsetsA = [4]TileCoords{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	edgeOffsetsB = [4]TileCoords{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
)

// HasFence reports whether the station edge of the tile at pos needs a fence.
// Edges facing the station entrance or exit are left open.
func (r *Ride) HasFence(edge Edge, pos paint.CoordsXY, el track.Element, rotation uint8) bool {
	var off TileCoords
	switch edge {
	case EdgeNE:
		off = edgeOffsetsA[rotation&3]
	case EdgeSE:
		off = edgeOffsetsB[(rotation+2)&3]
	case EdgeSW:
		off = edgeOffsetsA[(rotation+2)&3]
	case EdgeNW:
		off = edgeOffsetsB[rotation&3]
	}
	tile := TileCoords{X: pos.X/paint.TileSize + off.X, Y: pos.Y/paint.TileSize + off.Y}

	st := r.StationAt(el.StationIndex)
	if st == nil {
		return true
	}
	if st.Entrance != nil && *st.Entrance == tile {
		return false
	}
	if st.Exit != nil && *st.Exit == tile {
		return false
	}
	return true
}

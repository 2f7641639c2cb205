package paint

// TunnelGroup selects the tunnel sprite family a track style uses.
type TunnelGroup uint8

const (
	TunnelGroupStandard TunnelGroup = iota
	TunnelGroupSquare
	TunnelGroupInverted
	TunnelGroupInvertedSquare
)

// TunnelSubType is the shape of the tunnel entrance at a tile edge.
type TunnelSubType uint8

const (
	TunnelFlat TunnelSubType = iota
	TunnelSlopeStart
	TunnelSlopeEnd
	TunnelFlatTo25Deg
	TunnelTall
)

// Tunnel is a tunnel marker pushed for one edge of the tile.
type Tunnel struct {
	Height  uint8         `json:"height"`
	Group   TunnelGroup   `json:"group"`
	SubType TunnelSubType `json:"sub_type"`
}

func (g TunnelGroup) String() string {
	switch g {
	case TunnelGroupStandard:
		return "standard"
	case TunnelGroupSquare:
		return "square"
	case TunnelGroupInverted:
		return "inverted"
	case TunnelGroupInvertedSquare:
		return "inverted-square"
	}
	return "unknown"
}

func (t TunnelSubType) String() string {
	switch t {
	case TunnelFlat:
		return "flat"
	case TunnelSlopeStart:
		return "slope-start"
	case TunnelSlopeEnd:
		return "slope-end"
	case TunnelFlatTo25Deg:
		return "flat-to-25"
	case TunnelTall:
		return "tall"
	}
	return "unknown"
}

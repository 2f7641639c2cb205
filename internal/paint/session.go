package paint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ViewFlags are viewport options that change how supports are drawn.
type ViewFlags uint32

const (
	ViewHideSupports ViewFlags = 1 << iota
	ViewInvisibleSupports
)

// SessionFlags track the progress of painting a tile.
type SessionFlags uint8

const (
	// PassedSurface is set once the land surface below the track has been painted.
	// Supports are only drawn above a painted surface.
	PassedSurface SessionFlags = 1 << iota
)

// DefaultGeneralSupportHeight is the clearance most pieces leave above themselves.
const DefaultGeneralSupportHeight = 32

// CallKind identifies what a recorded call did.
type CallKind string

const (
	CallImage          CallKind = "image"
	CallTunnelLeft     CallKind = "tunnel-left"
	CallTunnelRight    CallKind = "tunnel-right"
	CallVerticalTunnel CallKind = "vertical-tunnel"
	CallSegmentHeight  CallKind = "segment-height"
	CallGeneralHeight  CallKind = "general-height"
)

// Draw is an image added to the paint list.
type Draw struct {
	Image    ImageId     `json:"image"`
	Offset   CoordsXYZ   `json:"offset"`
	BoundBox BoundBoxXYZ `json:"bound_box"`
	Child    bool        `json:"child,omitempty"`
}

// Call is one recorded interaction with the session, in the order it happened.
type Call struct {
	Kind     CallKind `json:"kind"`
	Draw     *Draw    `json:"draw,omitempty"`
	Tunnel   *Tunnel  `json:"tunnel,omitempty"`
	Height   int32    `json:"height,omitempty"`
	Segments Segments `json:"segments,omitempty"`
	Slope    uint8    `json:"slope,omitempty"`
}

func (c Call) String() string {
	switch {
	case c.Draw != nil:
		d := c.Draw
		return fmt.Sprintf("%s img=%d/%d/%d/%d t=%d child=%t off=%d,%d,%d bb=%d,%d,%d+%d,%d,%d",
			c.Kind, d.Image.Index, d.Image.Primary, d.Image.Secondary, d.Image.Tertiary, d.Image.Transparency, d.Child,
			d.Offset.X, d.Offset.Y, d.Offset.Z,
			d.BoundBox.Offset.X, d.BoundBox.Offset.Y, d.BoundBox.Offset.Z,
			d.BoundBox.Length.X, d.BoundBox.Length.Y, d.BoundBox.Length.Z)
	case c.Tunnel != nil:
		return fmt.Sprintf("%s h=%d %s/%s", c.Kind, c.Tunnel.Height, c.Tunnel.Group, c.Tunnel.SubType)
	case c.Kind == CallSegmentHeight:
		return fmt.Sprintf("%s segs=%03x h=%d slope=%d", c.Kind, uint16(c.Segments), c.Height, c.Slope)
	default:
		return fmt.Sprintf("%s h=%d", c.Kind, c.Height)
	}
}

// Session is the paint context of a single tile. Painters add images and
// update the support and tunnel state of the tile through it; every such
// call is recorded.
type Session struct {
	MapPosition     CoordsXY
	CurrentRotation uint8
	TrackColours    ImageId
	SupportColours  ImageId
	ViewFlags       ViewFlags
	Flags           SessionFlags

	SupportSegments [NumSegments]SupportHeight
	Support         SupportHeight

	LeftTunnels          []Tunnel
	RightTunnels         []Tunnel
	VerticalTunnelHeight uint8

	calls []Call
}

// NewSession returns a session for a tile whose flat surface lies at height 0.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	s.SetSurface(0, 0)
	return s
}

// Reset clears the tile state and the recorded calls.
func (s *Session) Reset() {
	for i := range s.SupportSegments {
		s.SupportSegments[i] = SupportHeight{Height: 0, Slope: SlopeAboveTrackOrScenery}
	}
	s.Support = SupportHeight{Height: 0, Slope: SlopeAboveTrackOrScenery}
	s.LeftTunnels = s.LeftTunnels[:0]
	s.RightTunnels = s.RightTunnels[:0]
	s.VerticalTunnelHeight = 0
	s.Flags = 0
	s.calls = s.calls[:0]
}

// SetSurface records the land surface of the tile. It is what supports stand on.
func (s *Session) SetSurface(height uint16, slope uint8) {
	for i := range s.SupportSegments {
		s.SupportSegments[i] = SupportHeight{Height: height, Slope: slope}
	}
	s.Support = SupportHeight{Height: height, Slope: slope}
	s.Flags |= PassedSurface
}

func (s *Session) record(c Call) {
	s.calls = append(s.calls, c)
}

// AddImageAsParent adds an image with its own bounding box.
func (s *Session) AddImageAsParent(img ImageId, offset CoordsXYZ, bb BoundBoxXYZ) {
	s.record(Call{Kind: CallImage, Draw: &Draw{Image: img, Offset: offset, BoundBox: bb}})
}

// AddImageAsParentLength adds an image whose bounding box starts at the image offset.
func (s *Session) AddImageAsParentLength(img ImageId, offset, length CoordsXYZ) {
	s.AddImageAsParent(img, offset, BoundBoxXYZ{Offset: offset, Length: length})
}

// AddImageAsChild attaches an image to the previously added parent.
func (s *Session) AddImageAsChild(img ImageId, offset CoordsXYZ, bb BoundBoxXYZ) {
	s.record(Call{Kind: CallImage, Draw: &Draw{Image: img, Offset: offset, BoundBox: bb, Child: true}})
}

// AddImageAsParentRotated adds an image whose offset and box are given for
// even directions; odd directions swap x and y.
func (s *Session) AddImageAsParentRotated(dir uint8, img ImageId, offset CoordsXYZ, bb BoundBoxXYZ) {
	if dir&1 != 0 {
		offset = offset.SwapXY()
		bb = bb.SwapXY()
	}
	s.AddImageAsParent(img, offset, bb)
}

// AddImageAsChildRotated is the child form of AddImageAsParentRotated.
func (s *Session) AddImageAsChildRotated(dir uint8, img ImageId, offset CoordsXYZ, bb BoundBoxXYZ) {
	if dir&1 != 0 {
		offset = offset.SwapXY()
		bb = bb.SwapXY()
	}
	s.AddImageAsChild(img, offset, bb)
}

// PushTunnelLeft adds a tunnel on the left (south-west facing) edge.
func (s *Session) PushTunnelLeft(height int32, group TunnelGroup, sub TunnelSubType) {
	t := Tunnel{Height: uint8(height / 16), Group: group, SubType: sub}
	s.LeftTunnels = append(s.LeftTunnels, t)
	s.record(Call{Kind: CallTunnelLeft, Tunnel: &t})
}

// PushTunnelRight adds a tunnel on the right (south-east facing) edge.
func (s *Session) PushTunnelRight(height int32, group TunnelGroup, sub TunnelSubType) {
	t := Tunnel{Height: uint8(height / 16), Group: group, SubType: sub}
	s.RightTunnels = append(s.RightTunnels, t)
	s.record(Call{Kind: CallTunnelRight, Tunnel: &t})
}

// PushTunnelRotated pushes a left tunnel for even directions and a right tunnel for odd ones.
func (s *Session) PushTunnelRotated(dir uint8, height int32, group TunnelGroup, sub TunnelSubType) {
	if dir&1 != 0 {
		s.PushTunnelRight(height, group, sub)
		return
	}
	s.PushTunnelLeft(height, group, sub)
}

// SetVerticalTunnel marks the height where a vertical piece passes through the surface.
func (s *Session) SetVerticalTunnel(height int32) {
	s.VerticalTunnelHeight = uint8(height / 16)
	s.record(Call{Kind: CallVerticalTunnel, Height: height})
}

// SetSegmentSupportHeight sets the support height of each listed segment.
// The slope is left alone when the segments are blocked.
func (s *Session) SetSegmentSupportHeight(segs Segments, height uint16, slope uint8) {
	for seg := Segment(0); seg < NumSegments; seg++ {
		if !segs.Has(seg) {
			continue
		}
		s.SupportSegments[seg].Height = height
		if height != HeightBlocked {
			s.SupportSegments[seg].Slope = slope
		}
	}
	s.record(Call{Kind: CallSegmentHeight, Segments: segs, Height: int32(height), Slope: slope})
}

// SetGeneralSupportHeight raises the general support height of the tile. Lower values are ignored.
func (s *Session) SetGeneralSupportHeight(height int32) {
	s.record(Call{Kind: CallGeneralHeight, Height: height})
	if int32(s.Support.Height) >= height {
		return
	}
	s.Support.Height = uint16(height)
	s.Support.Slope = SlopeAboveTrackOrScenery
}

// Calls returns the calls recorded since the last Reset.
func (s *Session) Calls() []Call {
	return s.calls
}

// Digest returns a stable hash of the recorded calls.
func (s *Session) Digest() string {
	return DigestCalls(s.calls)
}

// DigestCalls hashes a call list the same way Session.Digest does.
func DigestCalls(calls []Call) string {
	h := sha256.New()
	for _, c := range calls {
		fmt.Fprintln(h, c.String())
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ShouldPaintSupports reports whether straight pieces on this tile carry a
// support. Supports are placed on a checkerboard of two-tile blocks.
func ShouldPaintSupports(pos CoordsXY) bool {
	return pos.X&TileSize == pos.Y&TileSize
}

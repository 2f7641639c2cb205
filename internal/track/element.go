package track

// ColourScheme selects which of the ride's colour sets a piece is painted with.
type ColourScheme uint8

const (
	ColourSchemeMain ColourScheme = iota
	ColourSchemeAdditional1
	ColourSchemeAdditional2
	ColourSchemeAdditional3
)

// Element is a placed track piece as seen by the painter.
type Element struct {
	Type         Type
	Direction    Direction
	Sequence     uint8
	BaseHeight   int32
	HasChain     bool
	BrakeClosed  bool
	Ghost        bool
	Highlighted  bool
	StationIndex uint8
	ColourScheme ColourScheme
	// GreenLight is set on the end station tile while the block ahead is clear.
	GreenLight bool
	// TakingPhoto is set while an on-ride photo camera flashes.
	TakingPhoto bool
}

// NewElement returns an element of type t at the given direction and sequence.
func NewElement(t Type, dir Direction, seq uint8, height int32) Element {
	return Element{Type: t, Direction: dir, Sequence: seq, BaseHeight: height}
}

// IsStation reports whether the piece is one of the station platform pieces.
func (e Element) IsStation() bool {
	switch e.Type {
	case EndStation, BeginStation, MiddleStation:
		return true
	}
	return false
}

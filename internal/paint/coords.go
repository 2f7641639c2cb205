package paint

// CoordsXY is a position inside or across tiles, in world units (32 per tile).
type CoordsXY struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// CoordsXYZ is a world position with height.
type CoordsXYZ struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

// Add returns the component-wise sum of c and o.
func (c CoordsXYZ) Add(o CoordsXYZ) CoordsXYZ {
	return CoordsXYZ{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// SwapXY returns c with its x and y components exchanged.
func (c CoordsXYZ) SwapXY() CoordsXYZ {
	return CoordsXYZ{c.Y, c.X, c.Z}
}

// BoundBoxXYZ is the sorting box of a painted image.
type BoundBoxXYZ struct {
	Offset CoordsXYZ `json:"offset"`
	Length CoordsXYZ `json:"length"`
}

// SwapXY mirrors the box across the tile diagonal.
func (b BoundBoxXYZ) SwapXY() BoundBoxXYZ {
	return BoundBoxXYZ{Offset: b.Offset.SwapXY(), Length: b.Length.SwapXY()}
}

// Raise returns the box moved up by z.
func (b BoundBoxXYZ) Raise(z int32) BoundBoxXYZ {
	b.Offset.Z += z
	return b
}

// TileSize is the edge length of one map tile in world units.
const TileSize = 32

package track

// Direction is one of the four orthogonal orientations of a track piece.
// 0 faces south-west (the x axis), increasing values turn clockwise.
type Direction uint8

const (
	DirSW Direction = iota
	DirNW
	DirNE
	DirSE
)

// NumDirections is the number of orthogonal directions.
const NumDirections = 4

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return (d + 2) & 3
}

// Next returns the direction rotated one quarter clockwise.
func (d Direction) Next() Direction {
	return (d + 1) & 3
}

// Prev returns the direction rotated one quarter anticlockwise.
func (d Direction) Prev() Direction {
	return (d - 1) & 3
}

// FlipX mirrors the direction across the x axis. Right-handed pieces share
// their bounding boxes with the left-handed piece painted in the mirrored direction.
func (d Direction) FlipX() Direction {
	return (3 - d) & 3
}

// Odd reports whether the direction runs along the y axis.
func (d Direction) Odd() bool {
	return d&1 != 0
}

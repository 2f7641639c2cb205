package viewer

import (
	"coasterpaint/internal/collision"
	"coasterpaint/internal/paint"
)

// Point is a screen position in pixels.
type Point struct {
	X, Y float64
}

// Projector maps world units onto the 2:1 isometric screen. At a scale of 1
// a tile is 64 pixels wide and one height unit is one pixel.
type Projector struct {
	Scale   float64
	OriginX float64
	OriginY float64
}

func (p Projector) Project(x, y, z float64) Point {
	return Point{
		X: p.OriginX + (x-y)*p.Scale,
		Y: p.OriginY + (x+y)*p.Scale/2 - z*p.Scale,
	}
}

// TileCorners returns the ground diamond of the tile whose north corner is
// at base, in the order north, east, south, west.
func (p Projector) TileCorners(base paint.CoordsXY, z int32) [4]Point {
	x, y, h := float64(base.X), float64(base.Y), float64(z)
	const size = paint.TileSize
	return [4]Point{
		p.Project(x, y, h),
		p.Project(x+size, y, h),
		p.Project(x+size, y+size, h),
		p.Project(x, y+size, h),
	}
}

// boxEdges lists the corner pairs of the twelve edges of a box. Corner i has
// bit 0 set for the far x side, bit 1 for far y and bit 2 for the top.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BoxEdges returns the screen segments of a bounding box on the tile at base.
func (p Projector) BoxEdges(base paint.CoordsXY, bb paint.BoundBoxXYZ) [12][2]Point {
	var corners [8]Point
	for i := range corners {
		x := float64(base.X + bb.Offset.X)
		y := float64(base.Y + bb.Offset.Y)
		z := float64(bb.Offset.Z)
		if i&1 != 0 {
			x += float64(bb.Length.X)
		}
		if i&2 != 0 {
			y += float64(bb.Length.Y)
		}
		if i&4 != 0 {
			z += float64(bb.Length.Z)
		}
		corners[i] = p.Project(x, y, z)
	}

	var edges [12][2]Point
	for i, e := range boxEdges {
		edges[i] = [2]Point{corners[e[0]], corners[e[1]]}
	}
	return edges
}

// ScreenBox returns the screen rectangle enclosing the edges of a box.
func ScreenBox(edges [12][2]Point) *collision.BoundingBox {
	points := make([]collision.Point, 0, len(edges)*2)
	for _, e := range edges {
		points = append(points, collision.Point{X: e[0].X, Y: e[0].Y}, collision.Point{X: e[1].X, Y: e[1].Y})
	}
	return collision.BoundsOf(points)
}

// Depth orders boxes back to front: larger depths are nearer the viewer.
func Depth(base paint.CoordsXY, bb paint.BoundBoxXYZ) float64 {
	x := float64(base.X+bb.Offset.X) + float64(bb.Length.X)/2
	y := float64(base.Y+bb.Offset.Y) + float64(bb.Length.Y)/2
	z := float64(bb.Offset.Z) + float64(bb.Length.Z)/2
	return x + y + z
}

// rotateXY turns a tile position of a size×size map by quarter turns.
func rotateXY(x, y int32, rotation uint8, size int32) (int32, int32) {
	switch rotation & 3 {
	case 1:
		return y, size - 1 - x
	case 2:
		return size - 1 - x, size - 1 - y
	case 3:
		return size - 1 - y, x
	}
	return x, y
}

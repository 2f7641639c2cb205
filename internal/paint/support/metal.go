package support

import "coasterpaint/internal/paint"

func floor16(v int32) int32 {
	return v &^ 15
}

// supportColours returns the image template supports are drawn with, and
// false when supports are hidden entirely.
func supportColours(s *paint.Session, colours paint.ImageId) (paint.ImageId, bool) {
	if s.Flags&paint.PassedSurface == 0 {
		return colours, false
	}
	if s.ViewFlags&paint.ViewHideSupports != 0 {
		if s.ViewFlags&paint.ViewInvisibleSupports != 0 {
			return colours, false
		}
		colours = paint.ImageId{}.WithTransparency(paint.FilterDarken1)
	}
	return colours, true
}

// crossbeam finds a neighbouring segment the support can drop to when its
// own segment is occupied below the track. It returns the crossbeam index,
// the segment reached, and false if every neighbour is occupied too.
func crossbeam(s *paint.Session, segment uint8, height int32) (beam, target uint8, ok bool) {
	base := int(s.CurrentRotation&3) * 2
	for try := 0; try < 4; try++ {
		target = crossbeamSegments[base+int(segment)*8]
		if height > int32(s.SupportSegments[target].Height) {
			return crossbeamSegments[base+int(segment)*8+1], target, true
		}
		base += metalSupportSkip
	}
	return 0, 0, false
}

// MetalA paints a metal support column from the ground up to height below
// the given place. A positive special extends the column above height by
// that amount, a negative one starts the extension one unit lower.
// It reports whether a support was drawn.
func MetalA(s *paint.Session, t MetalType, place Place, special, height int32, colours paint.ImageId) bool {
	colours, ok := supportColours(s, colours)
	if !ok {
		return false
	}

	segs := &s.SupportSegments
	segment := uint8(place)
	originalHeight := height
	clearance := paint.HeightBlocked

	if height < int32(segs[segment].Height) {
		clearance = uint16(height)
		height -= crossbeamDrop[t]
		if height < 0 {
			return false
		}
		beam, target, found := crossbeam(s, segment, height)
		if !found {
			return false
		}
		pos := segmentPositions[segment]
		offset := paint.CoordsXYZ{
			X: pos.X + crossbeamOffsets[beam].X,
			Y: pos.Y + crossbeamOffsets[beam].Y,
			Z: height,
		}
		length := paint.CoordsXYZ{X: crossbeamLengths[beam].X, Y: crossbeamLengths[beam].Y, Z: 1}
		s.AddImageAsParentLength(colours.WithIndex(crossbeamImages[t][beam]), offset, length)
		segment = target
	}

	top := height
	pos := segmentPositions[segment]
	ground := segs[segment]
	if ground.Slope&paint.SlopeAboveTrackOrScenery != 0 || height-int32(ground.Height) < 6 || basesAndBeams[t].base == 0 {
		height = int32(ground.Height)
	} else {
		img := basesAndBeams[t].base + slopeImageOffsets[ground.Slope&paint.SlopeMask]
		s.AddImageAsParentLength(colours.WithIndex(img),
			paint.CoordsXYZ{X: pos.X, Y: pos.Y, Z: int32(ground.Height)}, paint.CoordsXYZ{Z: 5})
		height = int32(ground.Height) + 6
	}

	// Bring the column up to the next multiple of 16.
	filler := min(floor16(height+16), top) - height
	if filler > 0 {
		s.AddImageAsParentLength(colours.WithIndex(basesAndBeams[t].beamA+uint32(filler-1)),
			paint.CoordsXYZ{X: pos.X, Y: pos.Y, Z: height}, paint.CoordsXYZ{Z: filler - 1})
	}
	height += filler

	for count := 0; ; count++ {
		if count >= 4 {
			count = 0
		}
		beamLength := min(height+16, top) - height
		if beamLength <= 0 {
			break
		}
		img := basesAndBeams[t].beamA + uint32(beamLength-1)
		if count == 3 && beamLength == 16 {
			img++
		}
		s.AddImageAsParentLength(colours.WithIndex(img),
			paint.CoordsXYZ{X: pos.X, Y: pos.Y, Z: height}, paint.CoordsXYZ{Z: beamLength - 1})
		height += beamLength
	}

	segs[segment].Height = clearance
	segs[segment].Slope = paint.SlopeAboveTrackOrScenery

	if special == 0 {
		return true
	}
	height = originalHeight
	if special < 0 {
		special = -special
		height--
	}
	pos = segmentPositions[place]
	bb := paint.BoundBoxXYZ{Offset: paint.CoordsXYZ{X: pos.X, Y: pos.Y, Z: height}}
	end := height + special
	for {
		beamLength := min(height+16, end) - height
		if beamLength <= 0 {
			break
		}
		img := basesAndBeams[t].beamB + uint32(beamLength-1)
		s.AddImageAsParent(colours.WithIndex(img), paint.CoordsXYZ{X: pos.X, Y: pos.Y, Z: height}, bb)
		height += beamLength
	}
	return true
}

// MetalB paints the lighter support variant used under tight curves. Unlike
// MetalA the column never moves to a neighbouring segment; a crossbeam is
// drawn towards it instead. It reports true when the support could not be
// placed.
func MetalB(s *paint.Session, t MetalType, place Place, special, height int32, colours paint.ImageId) bool {
	colours, ok := supportColours(s, colours)
	if !ok {
		return false
	}

	segs := &s.SupportSegments
	segment := uint8(place)
	pos := segmentPositions[segment]
	clearance := paint.HeightBlocked
	baseHeight := height

	if height < int32(segs[segment].Height) {
		clearance = uint16(height)
		baseHeight -= crossbeamDrop[t]
		if baseHeight < 0 {
			return false
		}
		beam, _, found := crossbeam(s, segment, baseHeight)
		if !found || beam >= 4 {
			return true
		}
		offset := paint.CoordsXYZ{
			X: pos.X + crossbeamOffsets[beam].X,
			Y: pos.Y + crossbeamOffsets[beam].Y,
			Z: baseHeight,
		}
		length := paint.CoordsXYZ{X: crossbeamLengths[beam].X, Y: crossbeamLengths[beam].Y, Z: 1}
		s.AddImageAsParentLength(colours.WithIndex(crossbeamImages[t][beam]), offset, length)
	}

	top := baseHeight
	ground := segs[segment]
	if ground.Slope&paint.SlopeAboveTrackOrScenery != 0 || baseHeight-int32(ground.Height) < 6 || basesAndBeams[t].beamA == 0 {
		baseHeight = int32(ground.Height)
	} else {
		img := basesAndBeams[t].base + slopeImageOffsets[ground.Slope&paint.SlopeMask]
		s.AddImageAsParentLength(colours.WithIndex(img),
			paint.CoordsXYZ{X: pos.X, Y: pos.Y, Z: int32(ground.Height)}, paint.CoordsXYZ{Z: 5})
		baseHeight = int32(ground.Height) + 6
	}

	filler := min(floor16(baseHeight+16), top) - baseHeight
	if filler > 0 {
		s.AddImageAsParentLength(colours.WithIndex(basesAndBeams[t].beamA+uint32(filler-1)),
			paint.CoordsXYZ{X: pos.X, Y: pos.Y, Z: baseHeight}, paint.CoordsXYZ{Z: filler - 1})
	}
	baseHeight += filler

	for i := 1; ; i++ {
		beamLength := min(baseHeight+16, top) - baseHeight
		if beamLength <= 0 {
			break
		}
		img := basesAndBeams[t].beamA + uint32(beamLength-1)
		// Every fourth full-length run uses the riveted sprite.
		if i%4 == 0 && beamLength == 16 {
			img++
		}
		s.AddImageAsParentLength(colours.WithIndex(img),
			paint.CoordsXYZ{X: pos.X, Y: pos.Y, Z: baseHeight}, paint.CoordsXYZ{Z: beamLength - 1})
		baseHeight += beamLength
	}

	segs[segment].Height = clearance
	segs[segment].Slope = paint.SlopeAboveTrackOrScenery

	if special != 0 {
		baseHeight = height
		end := height + special
		bb := paint.BoundBoxXYZ{Offset: paint.CoordsXYZ{X: pos.X, Y: pos.Y, Z: height}}
		for {
			beamLength := min(baseHeight+16, end) - baseHeight
			if beamLength <= 0 {
				break
			}
			img := basesAndBeams[t].beamA + uint32(beamLength-1)
			s.AddImageAsParent(colours.WithIndex(img), paint.CoordsXYZ{X: pos.X, Y: pos.Y, Z: baseHeight}, bb)
			baseHeight += beamLength
		}
	}
	return false
}

// MetalARotated rotates the style and the place to the piece direction before painting.
func MetalARotated(s *paint.Session, t MetalType, place Place, dir uint8, special, height int32, colours paint.ImageId) bool {
	return MetalA(s, t.Rotate(dir), place.Rotate(dir), special, height, colours)
}

// MetalBRotated is the MetalB form of MetalARotated.
func MetalBRotated(s *paint.Session, t MetalType, place Place, dir uint8, special, height int32, colours paint.ImageId) bool {
	return MetalB(s, t.Rotate(dir), place.Rotate(dir), special, height, colours)
}

// DrawSupportsSideBySide places two supports along the sides of a piece,
// as under station platforms.
func DrawSupportsSideBySide(s *paint.Session, dir uint8, height int32, colours paint.ImageId, t MetalType, special int32) {
	t = t.Rotate(dir)
	if dir&1 != 0 {
		MetalA(s, t, TopRightSide, special, height, colours)
		MetalA(s, t, BottomLeftSide, special, height, colours)
		return
	}
	MetalA(s, t, TopLeftSide, special, height, colours)
	MetalA(s, t, BottomRightSide, special, height, colours)
}

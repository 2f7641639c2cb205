package bm

import "coasterpaint/internal/track"

// Delegation paints a piece with the painter of another piece. The mirrored
// and descending pieces of the style reuse the sprites and supports of
// their ascending or left-handed counterpart.
type Delegation struct {
	Target track.Type
	// Turn is added to the direction, in quarter turns.
	Turn uint8
	// Seq maps the sequence before painting. nil keeps it; a negative entry
	// paints nothing for that tile.
	Seq []int8
	// Half splits helices into two halves painted with the same tiles. Tiles
	// from Half on are moved back by Half and turned by HalfTurn first.
	Half     uint8
	HalfTurn uint8
}

// Apply returns the tile and direction of the target piece that paints
// (seq, dir), and false when the tile paints nothing.
func (d Delegation) Apply(seq uint8, dir track.Direction) (uint8, track.Direction, bool) {
	if d.Half != 0 && seq >= d.Half {
		seq -= d.Half
		dir += track.Direction(d.HalfTurn)
	}
	if d.Seq != nil {
		if int(seq) >= len(d.Seq) || d.Seq[seq] < 0 {
			return 0, 0, false
		}
		seq = uint8(d.Seq[seq])
	}
	return seq, (dir + track.Direction(d.Turn)) & 3, true
}

var (
	mapQuarterTurn5  = []int8{6, 4, 5, 3, 1, 2, 0}
	mapQuarterTurn3  = []int8{3, 1, 2, 0}
	mapEighthToOrtho = []int8{4, 2, 3, 1, 0}
	reverse3         = []int8{2, 1, 0}
	reverse4         = []int8{3, 2, 1, 0}
	reverse7         = []int8{6, 5, 4, 3, 2, 1, 0}
)

func reversed(target track.Type) Delegation {
	return Delegation{Target: target, Turn: 2}
}

// backwards runs a four tile piece from its other end.
func backwards(target track.Type) Delegation {
	return Delegation{Target: target, Turn: 2, Seq: reverse4}
}

var delegations = map[track.Type]Delegation{
	track.Down25:         reversed(track.Up25),
	track.Down60:         reversed(track.Up60),
	track.FlatToDown25:   reversed(track.Up25ToFlat),
	track.Down25ToDown60: reversed(track.Up60ToUp25),
	track.Down60ToDown25: reversed(track.Up25ToUp60),
	track.Down25ToFlat:   reversed(track.FlatToUp25),

	track.RightQuarterTurn5Tiles:       {Target: track.LeftQuarterTurn5Tiles, Turn: 3, Seq: mapQuarterTurn5},
	track.LeftBankToFlat:               reversed(track.FlatToRightBank),
	track.RightBankToFlat:              reversed(track.FlatToLeftBank),
	track.BankedRightQuarterTurn5Tiles: {Target: track.BankedLeftQuarterTurn5Tiles, Turn: 3, Seq: mapQuarterTurn5},
	track.LeftBankToDown25:             reversed(track.Up25ToRightBank),
	track.RightBankToDown25:            reversed(track.Up25ToLeftBank),
	track.Down25ToLeftBank:             reversed(track.RightBankToUp25),
	track.Down25ToRightBank:            reversed(track.LeftBankToUp25),
	track.RightBank:                    reversed(track.LeftBank),

	track.LeftQuarterTurn5TilesDown25:  {Target: track.RightQuarterTurn5TilesUp25, Turn: 1, Seq: mapQuarterTurn5},
	track.RightQuarterTurn5TilesDown25: {Target: track.LeftQuarterTurn5TilesUp25, Turn: 3, Seq: mapQuarterTurn5},

	track.RightQuarterTurn3Tiles:       {Target: track.LeftQuarterTurn3Tiles, Turn: 3, Seq: mapQuarterTurn3},
	track.RightBankedQuarterTurn3Tiles: {Target: track.LeftBankedQuarterTurn3Tiles, Turn: 3, Seq: mapQuarterTurn3},
	track.LeftQuarterTurn3TilesDown25:  {Target: track.RightQuarterTurn3TilesUp25, Turn: 1, Seq: mapQuarterTurn3},
	track.RightQuarterTurn3TilesDown25: {Target: track.LeftQuarterTurn3TilesUp25, Turn: 3, Seq: mapQuarterTurn3},

	track.LeftHalfBankedHelixDownSmall:  {Target: track.RightHalfBankedHelixUpSmall, Turn: 1, Seq: mapQuarterTurn3, Half: 4, HalfTurn: 3},
	track.RightHalfBankedHelixDownSmall: {Target: track.LeftHalfBankedHelixUpSmall, Turn: 3, Seq: mapQuarterTurn3, Half: 4, HalfTurn: 1},
	track.LeftHalfBankedHelixDownLarge:  {Target: track.RightHalfBankedHelixUpLarge, Turn: 1, Seq: mapQuarterTurn5, Half: 7, HalfTurn: 3},
	track.RightHalfBankedHelixDownLarge: {Target: track.LeftHalfBankedHelixUpLarge, Turn: 3, Seq: mapQuarterTurn5, Half: 7, HalfTurn: 1},

	track.LeftQuarterTurn1TileDown60:  {Target: track.RightQuarterTurn1TileUp60, Turn: 1},
	track.RightQuarterTurn1TileDown60: {Target: track.LeftQuarterTurn1TileUp60, Turn: 3},

	track.Down25LeftBanked:  reversed(track.Up25RightBanked),
	track.Down25RightBanked: reversed(track.Up25LeftBanked),

	track.Down90:         reversed(track.Up90),
	track.Down90ToDown60: {Target: track.Up60ToUp90, Turn: 2, Seq: []int8{0}},

	track.LeftEighthToOrthogonal:      {Target: track.RightEighthToDiag, Turn: 2, Seq: mapEighthToOrtho},
	track.RightEighthToOrthogonal:     {Target: track.LeftEighthToDiag, Turn: 3, Seq: mapEighthToOrtho},
	track.LeftEighthBankToOrthogonal:  {Target: track.RightEighthBankToDiag, Turn: 2, Seq: mapEighthToOrtho},
	track.RightEighthBankToOrthogonal: {Target: track.LeftEighthBankToDiag, Turn: 3, Seq: mapEighthToOrtho},

	track.DiagDown25:            backwards(track.DiagUp25),
	track.DiagDown60:            backwards(track.DiagUp60),
	track.DiagFlatToDown25:      backwards(track.DiagUp25ToFlat),
	track.DiagDown25ToDown60:    backwards(track.DiagUp60ToUp25),
	track.DiagDown60ToDown25:    backwards(track.DiagUp25ToUp60),
	track.DiagDown25ToFlat:      backwards(track.DiagFlatToUp25),
	track.DiagLeftBankToFlat:    backwards(track.DiagFlatToRightBank),
	track.DiagRightBankToFlat:   backwards(track.DiagFlatToLeftBank),
	track.DiagLeftBankToDown25:  backwards(track.DiagUp25ToRightBank),
	track.DiagRightBankToDown25: backwards(track.DiagUp25ToLeftBank),
	track.DiagDown25ToLeftBank:  backwards(track.DiagRightBankToUp25),
	track.DiagDown25ToRightBank: backwards(track.DiagLeftBankToUp25),
	track.DiagRightBank:         backwards(track.DiagLeftBank),
	track.DiagFlatToDown60:      backwards(track.DiagUp60ToFlat),
	track.DiagDown60ToFlat:      backwards(track.DiagFlatToUp60),

	track.LeftQuarterTurn3TilesDown25ToLeftBank:   {Target: track.RightBankToRightQuarterTurn3TilesUp25, Turn: 1, Seq: mapQuarterTurn3},
	track.RightQuarterTurn3TilesDown25ToRightBank: {Target: track.LeftBankToLeftQuarterTurn3TilesUp25, Turn: 3, Seq: mapQuarterTurn3},

	track.LeftBankedQuarterTurn3TileDown25:  {Target: track.RightBankedQuarterTurn3TileUp25, Turn: 1, Seq: mapQuarterTurn3},
	track.RightBankedQuarterTurn3TileDown25: {Target: track.LeftBankedQuarterTurn3TileUp25, Turn: 3, Seq: mapQuarterTurn3},
	track.LeftBankedQuarterTurn5TileDown25:  {Target: track.RightBankedQuarterTurn5TileUp25, Turn: 1, Seq: mapQuarterTurn5},
	track.RightBankedQuarterTurn5TileDown25: {Target: track.LeftBankedQuarterTurn5TileUp25, Turn: 3, Seq: mapQuarterTurn5},

	track.Down25ToLeftBankedDown25:           reversed(track.RightBankedUp25ToUp25),
	track.Down25ToRightBankedDown25:          reversed(track.LeftBankedUp25ToUp25),
	track.LeftBankedDown25ToDown25:           reversed(track.Up25ToRightBankedUp25),
	track.RightBankedDown25ToDown25:          reversed(track.Up25ToLeftBankedUp25),
	track.LeftBankedFlatToLeftBankedDown25:   reversed(track.RightBankedUp25ToRightBankedFlat),
	track.RightBankedFlatToRightBankedDown25: reversed(track.LeftBankedUp25ToLeftBankedFlat),
	track.LeftBankedDown25ToLeftBankedFlat:   reversed(track.RightBankedFlatToRightBankedUp25),
	track.RightBankedDown25ToRightBankedFlat: reversed(track.LeftBankedFlatToLeftBankedUp25),
	track.FlatToLeftBankedDown25:             reversed(track.RightBankedUp25ToFlat),
	track.FlatToRightBankedDown25:            reversed(track.LeftBankedUp25ToFlat),
	track.LeftBankedDown25ToFlat:             reversed(track.FlatToRightBankedUp25),
	track.RightBankedDown25ToFlat:            reversed(track.FlatToLeftBankedUp25),

	track.LeftQuarterTurn1TileDown90:  {Target: track.RightQuarterTurn1TileUp90, Turn: 1},
	track.RightQuarterTurn1TileDown90: {Target: track.LeftQuarterTurn1TileUp90, Turn: 3},

	track.FlatToDown60: reversed(track.Up60ToFlat),
	track.Down60ToFlat: reversed(track.FlatToUp60),

	track.HalfLoopDown:       {Target: track.HalfLoopUp, Seq: reverse4},
	track.LeftCorkscrewDown:  {Target: track.RightCorkscrewUp, Turn: 1, Seq: reverse3},
	track.RightCorkscrewDown: {Target: track.LeftCorkscrewUp, Turn: 3, Seq: reverse3},

	track.FlatToDown60LongBase: backwards(track.Up60ToFlatLongBase),
	track.Down60ToFlatLongBase: backwards(track.FlatToUp60LongBase),

	track.LeftBarrelRollDownToUp:  {Target: track.LeftBarrelRollUpToDown, Turn: 2, Seq: reverse3},
	track.RightBarrelRollDownToUp: {Target: track.RightBarrelRollUpToDown, Turn: 2, Seq: reverse3},

	track.LeftLargeHalfLoopDown:  {Target: track.LeftLargeHalfLoopUp, Seq: reverse7},
	track.RightLargeHalfLoopDown: {Target: track.RightLargeHalfLoopUp, Seq: reverse7},

	track.InvertedFlatToDown90QuarterLoop: {Target: track.Up90ToInvertedFlatQuarterLoop, Seq: reverse3},
}

// Transform returns how t is painted through another piece, and false for
// pieces that have their own sprites or are not part of the style.
func Transform(t track.Type) (Delegation, bool) {
	d, ok := delegations[t]
	return d, ok
}

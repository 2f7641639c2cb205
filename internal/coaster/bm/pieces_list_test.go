package bm

import "coasterpaint/internal/track"

// bmPieces is every piece the style can build.
var bmPieces = []track.Type{
	track.Flat,
	track.EndStation,
	track.BeginStation,
	track.MiddleStation,
	track.Up25,
	track.Up60,
	track.FlatToUp25,
	track.Up25ToUp60,
	track.Up60ToUp25,
	track.Up25ToFlat,
	track.Down25,
	track.Down60,
	track.FlatToDown25,
	track.Down25ToDown60,
	track.Down60ToDown25,
	track.Down25ToFlat,
	track.LeftQuarterTurn5Tiles,
	track.RightQuarterTurn5Tiles,
	track.FlatToLeftBank,
	track.FlatToRightBank,
	track.LeftBankToFlat,
	track.RightBankToFlat,
	track.BankedLeftQuarterTurn5Tiles,
	track.BankedRightQuarterTurn5Tiles,
	track.LeftBankToUp25,
	track.RightBankToUp25,
	track.Up25ToLeftBank,
	track.Up25ToRightBank,
	track.LeftBankToDown25,
	track.RightBankToDown25,
	track.Down25ToLeftBank,
	track.Down25ToRightBank,
	track.LeftBank,
	track.RightBank,
	track.LeftQuarterTurn5TilesUp25,
	track.RightQuarterTurn5TilesUp25,
	track.LeftQuarterTurn5TilesDown25,
	track.RightQuarterTurn5TilesDown25,
	track.SBendLeft,
	track.SBendRight,
	track.LeftVerticalLoop,
	track.RightVerticalLoop,
	track.LeftQuarterTurn3Tiles,
	track.RightQuarterTurn3Tiles,
	track.LeftBankedQuarterTurn3Tiles,
	track.RightBankedQuarterTurn3Tiles,
	track.LeftQuarterTurn3TilesUp25,
	track.RightQuarterTurn3TilesUp25,
	track.LeftQuarterTurn3TilesDown25,
	track.RightQuarterTurn3TilesDown25,
	track.LeftHalfBankedHelixUpSmall,
	track.RightHalfBankedHelixUpSmall,
	track.LeftHalfBankedHelixDownSmall,
	track.RightHalfBankedHelixDownSmall,
	track.LeftHalfBankedHelixUpLarge,
	track.RightHalfBankedHelixUpLarge,
	track.LeftHalfBankedHelixDownLarge,
	track.RightHalfBankedHelixDownLarge,
	track.LeftQuarterTurn1TileUp60,
	track.RightQuarterTurn1TileUp60,
	track.LeftQuarterTurn1TileDown60,
	track.RightQuarterTurn1TileDown60,
	track.Brakes,
	track.Up25LeftBanked,
	track.Up25RightBanked,
	track.OnRidePhoto,
	track.Down25LeftBanked,
	track.Down25RightBanked,
	track.Up90,
	track.Down90,
	track.Up60ToUp90,
	track.Down90ToDown60,
	track.Up90ToUp60,
	track.Down60ToDown90,
	track.LeftEighthToDiag,
	track.RightEighthToDiag,
	track.LeftEighthToOrthogonal,
	track.RightEighthToOrthogonal,
	track.LeftEighthBankToDiag,
	track.RightEighthBankToDiag,
	track.LeftEighthBankToOrthogonal,
	track.RightEighthBankToOrthogonal,
	track.DiagFlat,
	track.DiagUp25,
	track.DiagUp60,
	track.DiagFlatToUp25,
	track.DiagUp25ToUp60,
	track.DiagUp60ToUp25,
	track.DiagUp25ToFlat,
	track.DiagDown25,
	track.DiagDown60,
	track.DiagFlatToDown25,
	track.DiagDown25ToDown60,
	track.DiagDown60ToDown25,
	track.DiagDown25ToFlat,
	track.DiagFlatToLeftBank,
	track.DiagFlatToRightBank,
	track.DiagLeftBankToFlat,
	track.DiagRightBankToFlat,
	track.DiagLeftBankToUp25,
	track.DiagRightBankToUp25,
	track.DiagUp25ToLeftBank,
	track.DiagUp25ToRightBank,
	track.DiagLeftBankToDown25,
	track.DiagRightBankToDown25,
	track.DiagDown25ToLeftBank,
	track.DiagDown25ToRightBank,
	track.DiagLeftBank,
	track.DiagRightBank,
	track.LeftBankToLeftQuarterTurn3TilesUp25,
	track.RightBankToRightQuarterTurn3TilesUp25,
	track.LeftQuarterTurn3TilesDown25ToLeftBank,
	track.RightQuarterTurn3TilesDown25ToRightBank,
	track.BlockBrakes,
	track.LeftBankedQuarterTurn3TileUp25,
	track.RightBankedQuarterTurn3TileUp25,
	track.LeftBankedQuarterTurn3TileDown25,
	track.RightBankedQuarterTurn3TileDown25,
	track.LeftBankedQuarterTurn5TileUp25,
	track.RightBankedQuarterTurn5TileUp25,
	track.LeftBankedQuarterTurn5TileDown25,
	track.RightBankedQuarterTurn5TileDown25,
	track.Up25ToLeftBankedUp25,
	track.Up25ToRightBankedUp25,
	track.LeftBankedUp25ToUp25,
	track.RightBankedUp25ToUp25,
	track.Down25ToLeftBankedDown25,
	track.Down25ToRightBankedDown25,
	track.LeftBankedDown25ToDown25,
	track.RightBankedDown25ToDown25,
	track.LeftBankedFlatToLeftBankedUp25,
	track.RightBankedFlatToRightBankedUp25,
	track.LeftBankedUp25ToLeftBankedFlat,
	track.RightBankedUp25ToRightBankedFlat,
	track.LeftBankedFlatToLeftBankedDown25,
	track.RightBankedFlatToRightBankedDown25,
	track.LeftBankedDown25ToLeftBankedFlat,
	track.RightBankedDown25ToRightBankedFlat,
	track.FlatToLeftBankedUp25,
	track.FlatToRightBankedUp25,
	track.LeftBankedUp25ToFlat,
	track.RightBankedUp25ToFlat,
	track.FlatToLeftBankedDown25,
	track.FlatToRightBankedDown25,
	track.LeftBankedDown25ToFlat,
	track.RightBankedDown25ToFlat,
	track.LeftQuarterTurn1TileUp90,
	track.RightQuarterTurn1TileUp90,
	track.LeftQuarterTurn1TileDown90,
	track.RightQuarterTurn1TileDown90,
	track.FlatToUp60,
	track.Up60ToFlat,
	track.FlatToDown60,
	track.Down60ToFlat,
	track.BrakeForDrop,
	track.DiagFlatToUp60,
	track.DiagUp60ToFlat,
	track.DiagFlatToDown60,
	track.DiagDown60ToFlat,
	track.HalfLoopUp,
	track.HalfLoopDown,
	track.LeftCorkscrewUp,
	track.RightCorkscrewUp,
	track.LeftCorkscrewDown,
	track.RightCorkscrewDown,
	track.FlatToUp60LongBase,
	track.Up60ToFlatLongBase,
	track.Down60ToFlatLongBase,
	track.FlatToDown60LongBase,
	track.LeftBarrelRollUpToDown,
	track.RightBarrelRollUpToDown,
	track.LeftBarrelRollDownToUp,
	track.RightBarrelRollDownToUp,
	track.PoweredLift,
	track.LeftLargeHalfLoopUp,
	track.RightLargeHalfLoopUp,
	track.RightLargeHalfLoopDown,
	track.LeftLargeHalfLoopDown,
	track.Up90ToInvertedFlatQuarterLoop,
	track.InvertedFlatToDown90QuarterLoop,
	track.Booster,
}

package track

// Type identifies a track piece. The values follow the order of the game's track element
// table, so they can be stored and compared as plain integers.
type Type uint16

const (
	Flat Type = iota
	EndStation
	BeginStation
	MiddleStation
	Up25
	Up60
	FlatToUp25
	Up25ToUp60
	Up60ToUp25
	Up25ToFlat
	Down25
	Down60
	FlatToDown25
	Down25ToDown60
	Down60ToDown25
	Down25ToFlat
	LeftQuarterTurn5Tiles
	RightQuarterTurn5Tiles
	FlatToLeftBank
	FlatToRightBank
	LeftBankToFlat
	RightBankToFlat
	BankedLeftQuarterTurn5Tiles
	BankedRightQuarterTurn5Tiles
	LeftBankToUp25
	RightBankToUp25
	Up25ToLeftBank
	Up25ToRightBank
	LeftBankToDown25
	RightBankToDown25
	Down25ToLeftBank
	Down25ToRightBank
	LeftBank
	RightBank
	LeftQuarterTurn5TilesUp25
	RightQuarterTurn5TilesUp25
	LeftQuarterTurn5TilesDown25
	RightQuarterTurn5TilesDown25
	SBendLeft
	SBendRight
	LeftVerticalLoop
	RightVerticalLoop
	LeftQuarterTurn3Tiles
	RightQuarterTurn3Tiles
	LeftBankedQuarterTurn3Tiles
	RightBankedQuarterTurn3Tiles
	LeftQuarterTurn3TilesUp25
	RightQuarterTurn3TilesUp25
	LeftQuarterTurn3TilesDown25
	RightQuarterTurn3TilesDown25
	LeftQuarterTurn1Tile
	RightQuarterTurn1Tile
	LeftTwistDownToUp
	RightTwistDownToUp
	LeftTwistUpToDown
	RightTwistUpToDown
	HalfLoopUp
	HalfLoopDown
	LeftCorkscrewUp
	RightCorkscrewUp
	LeftCorkscrewDown
	RightCorkscrewDown
	FlatToUp60
	Up60ToFlat
	FlatToDown60
	Down60ToFlat
	TowerBase
	TowerSection
	FlatCovered
	Up25Covered
	Up60Covered
	FlatToUp25Covered
	Up25ToUp60Covered
	Up60ToUp25Covered
	Up25ToFlatCovered
	Down25Covered
	Down60Covered
	FlatToDown25Covered
	Down25ToDown60Covered
	Down60ToDown25Covered
	Down25ToFlatCovered
	LeftQuarterTurn5TilesCovered
	RightQuarterTurn5TilesCovered
	SBendLeftCovered
	SBendRightCovered
	LeftQuarterTurn3TilesCovered
	RightQuarterTurn3TilesCovered
	LeftHalfBankedHelixUpSmall
	RightHalfBankedHelixUpSmall
	LeftHalfBankedHelixDownSmall
	RightHalfBankedHelixDownSmall
	LeftHalfBankedHelixUpLarge
	RightHalfBankedHelixUpLarge
	LeftHalfBankedHelixDownLarge
	RightHalfBankedHelixDownLarge
	LeftQuarterTurn1TileUp60
	RightQuarterTurn1TileUp60
	LeftQuarterTurn1TileDown60
	RightQuarterTurn1TileDown60
	Brakes
	Booster
	Maze
	LeftQuarterBankedHelixLargeUp
	RightQuarterBankedHelixLargeUp
	LeftQuarterBankedHelixLargeDown
	RightQuarterBankedHelixLargeDown
	LeftQuarterHelixLargeUp
	RightQuarterHelixLargeUp
	LeftQuarterHelixLargeDown
	RightQuarterHelixLargeDown
	Up25LeftBanked
	Up25RightBanked
	Waterfall
	Rapids
	OnRidePhoto
	Down25LeftBanked
	Down25RightBanked
	Watersplash
	FlatToUp60LongBase
	Up60ToFlatLongBase
	Whirlpool
	Down60ToFlatLongBase
	FlatToDown60LongBase
	CableLiftHill
	ReverseFreefallSlope
	ReverseFreefallVertical
	Up90
	Down90
	Up60ToUp90
	Down90ToDown60
	Up90ToUp60
	Down60ToDown90
	BrakeForDrop
	LeftEighthToDiag
	RightEighthToDiag
	LeftEighthToOrthogonal
	RightEighthToOrthogonal
	LeftEighthBankToDiag
	RightEighthBankToDiag
	LeftEighthBankToOrthogonal
	RightEighthBankToOrthogonal
	DiagFlat
	DiagUp25
	DiagUp60
	DiagFlatToUp25
	DiagUp25ToUp60
	DiagUp60ToUp25
	DiagUp25ToFlat
	DiagDown25
	DiagDown60
	DiagFlatToDown25
	DiagDown25ToDown60
	DiagDown60ToDown25
	DiagDown25ToFlat
	DiagFlatToUp60
	DiagUp60ToFlat
	DiagFlatToDown60
	DiagDown60ToFlat
	DiagFlatToLeftBank
	DiagFlatToRightBank
	DiagLeftBankToFlat
	DiagRightBankToFlat
	DiagLeftBankToUp25
	DiagRightBankToUp25
	DiagUp25ToLeftBank
	DiagUp25ToRightBank
	DiagLeftBankToDown25
	DiagRightBankToDown25
	DiagDown25ToLeftBank
	DiagDown25ToRightBank
	DiagLeftBank
	DiagRightBank
	LogFlumeReverser
	SpinningTunnel
	LeftBarrelRollUpToDown
	RightBarrelRollUpToDown
	LeftBarrelRollDownToUp
	RightBarrelRollDownToUp
	LeftBankToLeftQuarterTurn3TilesUp25
	RightBankToRightQuarterTurn3TilesUp25
	LeftQuarterTurn3TilesDown25ToLeftBank
	RightQuarterTurn3TilesDown25ToRightBank
	PoweredLift
	LeftLargeHalfLoopUp
	RightLargeHalfLoopUp
	LeftLargeHalfLoopDown
	RightLargeHalfLoopDown
	LeftFlyerTwistUp
	RightFlyerTwistUp
	LeftFlyerTwistDown
	RightFlyerTwistDown
	FlyerHalfLoopUninvertedUp
	FlyerHalfLoopInvertedDown
	LeftFlyerCorkscrewUp
	RightFlyerCorkscrewUp
	LeftFlyerCorkscrewDown
	RightFlyerCorkscrewDown
	HeartLineTransferUp
	HeartLineTransferDown
	LeftHeartLineRoll
	RightHeartLineRoll
	MinigolfHoleA
	MinigolfHoleB
	MinigolfHoleC
	MinigolfHoleD
	MinigolfHoleE
	MultiDimInvertedFlatToDown90QuarterLoop
	Up90ToInvertedFlatQuarterLoop
	InvertedFlatToDown90QuarterLoop
	LeftCurvedLiftHill
	RightCurvedLiftHill
	LeftReverser
	RightReverser
	AirThrustTopCap
	AirThrustVerticalDown
	AirThrustVerticalDownToLevel
	BlockBrakes
	LeftBankedQuarterTurn3TileUp25
	RightBankedQuarterTurn3TileUp25
	LeftBankedQuarterTurn3TileDown25
	RightBankedQuarterTurn3TileDown25
	LeftBankedQuarterTurn5TileUp25
	RightBankedQuarterTurn5TileUp25
	LeftBankedQuarterTurn5TileDown25
	RightBankedQuarterTurn5TileDown25
	Up25ToLeftBankedUp25
	Up25ToRightBankedUp25
	LeftBankedUp25ToUp25
	RightBankedUp25ToUp25
	Down25ToLeftBankedDown25
	Down25ToRightBankedDown25
	LeftBankedDown25ToDown25
	RightBankedDown25ToDown25
	LeftBankedFlatToLeftBankedUp25
	RightBankedFlatToRightBankedUp25
	LeftBankedUp25ToLeftBankedFlat
	RightBankedUp25ToRightBankedFlat
	LeftBankedFlatToLeftBankedDown25
	RightBankedFlatToRightBankedDown25
	LeftBankedDown25ToLeftBankedFlat
	RightBankedDown25ToRightBankedFlat
	FlatToLeftBankedUp25
	FlatToRightBankedUp25
	LeftBankedUp25ToFlat
	RightBankedUp25ToFlat
	FlatToLeftBankedDown25
	FlatToRightBankedDown25
	LeftBankedDown25ToFlat
	RightBankedDown25ToFlat
	LeftQuarterTurn1TileUp90
	RightQuarterTurn1TileUp90
	LeftQuarterTurn1TileDown90
	RightQuarterTurn1TileDown90
	MultiDimUp90ToInvertedFlatQuarterLoop
	MultiDimFlatToDown90QuarterLoop
	MultiDimInvertedUp90ToFlatQuarterLoop
	RotationControlToggle
	FlatTrack1x4A
	FlatTrack2x2
	FlatTrack4x4
	FlatTrack2x4
	FlatTrack1x5
	FlatTrack1x1A
	FlatTrack1x4B
	FlatTrack1x1B
	FlatTrack1x4C
	FlatTrack3x3
	LeftLargeCorkscrewUp
	RightLargeCorkscrewUp
	LeftLargeCorkscrewDown
	RightLargeCorkscrewDown
	LeftMediumHalfLoopUp
	RightMediumHalfLoopUp
	LeftMediumHalfLoopDown
	RightMediumHalfLoopDown
	LeftZeroGRollUp
	RightZeroGRollUp
	LeftZeroGRollDown
	RightZeroGRollDown
	LeftLargeZeroGRollUp
	RightLargeZeroGRollUp
	LeftLargeZeroGRollDown
	RightLargeZeroGRollDown
	LeftFlyerLargeHalfLoopUninvertedUp
	RightFlyerLargeHalfLoopUninvertedUp
	LeftFlyerLargeHalfLoopInvertedDown
	RightFlyerLargeHalfLoopInvertedDown
	LeftFlyerLargeHalfLoopInvertedUp
	RightFlyerLargeHalfLoopInvertedUp
	LeftFlyerLargeHalfLoopUninvertedDown
	RightFlyerLargeHalfLoopUninvertedDown
	FlyerHalfLoopInvertedUp
	FlyerHalfLoopUninvertedDown
	LeftEighthToDiagUp25
	RightEighthToDiagUp25
	LeftEighthToDiagDown25
	RightEighthToDiagDown25
	LeftEighthToOrthogonalUp25
	RightEighthToOrthogonalUp25
	LeftEighthToOrthogonalDown25
	RightEighthToOrthogonalDown25
	DiagUp25ToLeftBankedUp25
	DiagUp25ToRightBankedUp25
	DiagLeftBankedUp25ToUp25
	DiagRightBankedUp25ToUp25
	DiagDown25ToLeftBankedDown25
	DiagDown25ToRightBankedDown25
	DiagLeftBankedDown25ToDown25
	DiagRightBankedDown25ToDown25
	DiagLeftBankedFlatToLeftBankedUp25
	DiagRightBankedFlatToRightBankedUp25
	DiagLeftBankedUp25ToLeftBankedFlat
	DiagRightBankedUp25ToRightBankedFlat
	DiagLeftBankedFlatToLeftBankedDown25
	DiagRightBankedFlatToRightBankedDown25
	DiagLeftBankedDown25ToLeftBankedFlat
	DiagRightBankedDown25ToRightBankedFlat
	DiagFlatToLeftBankedUp25
	DiagFlatToRightBankedUp25
	DiagLeftBankedUp25ToFlat
	DiagRightBankedUp25ToFlat
	DiagFlatToLeftBankedDown25
	DiagFlatToRightBankedDown25
	DiagLeftBankedDown25ToFlat
	DiagRightBankedDown25ToFlat
	DiagUp25LeftBanked
	DiagUp25RightBanked
	DiagDown25LeftBanked
	DiagDown25RightBanked
	LeftEighthBankToDiagUp25
	RightEighthBankToDiagUp25
	LeftEighthBankToDiagDown25
	RightEighthBankToDiagDown25
	LeftEighthBankToOrthogonalUp25
	RightEighthBankToOrthogonalUp25
	LeftEighthBankToOrthogonalDown25
	RightEighthBankToOrthogonalDown25
	DiagBrakes
	DiagBlockBrakes
	Down25Brakes
	DiagBooster
	DiagFlatToUp60LongBase
	DiagUp60ToFlatLongBase
	DiagFlatToDown60LongBase
	DiagDown60ToFlatLongBase
	LeftEighthDiveLoopUpToOrthogonal
	RightEighthDiveLoopUpToOrthogonal
	LeftEighthDiveLoopDownToDiag
	RightEighthDiveLoopDownToDiag
	DiagDown25Brakes

	// TypeCount is the number of track piece types.
	TypeCount int = iota
)

var typeNames = [...]string{
	Flat: "Flat",
	EndStation: "EndStation",
	BeginStation: "BeginStation",
	MiddleStation: "MiddleStation",
	Up25: "Up25",
	Up60: "Up60",
	FlatToUp25: "FlatToUp25",
	Up25ToUp60: "Up25ToUp60",
	Up60ToUp25: "Up60ToUp25",
	Up25ToFlat: "Up25ToFlat",
	Down25: "Down25",
	Down60: "Down60",
	FlatToDown25: "FlatToDown25",
	Down25ToDown60: "Down25ToDown60",
	Down60ToDown25: "Down60ToDown25",
	Down25ToFlat: "Down25ToFlat",
	LeftQuarterTurn5Tiles: "LeftQuarterTurn5Tiles",
	RightQuarterTurn5Tiles: "RightQuarterTurn5Tiles",
	FlatToLeftBank: "FlatToLeftBank",
	FlatToRightBank: "FlatToRightBank",
	LeftBankToFlat: "LeftBankToFlat",
	RightBankToFlat: "RightBankToFlat",
	BankedLeftQuarterTurn5Tiles: "BankedLeftQuarterTurn5Tiles",
	BankedRightQuarterTurn5Tiles: "BankedRightQuarterTurn5Tiles",
	LeftBankToUp25: "LeftBankToUp25",
	RightBankToUp25: "RightBankToUp25",
	Up25ToLeftBank: "Up25ToLeftBank",
	Up25ToRightBank: "Up25ToRightBank",
	LeftBankToDown25: "LeftBankToDown25",
	RightBankToDown25: "RightBankToDown25",
	Down25ToLeftBank: "Down25ToLeftBank",
	Down25ToRightBank: "Down25ToRightBank",
	LeftBank: "LeftBank",
	RightBank: "RightBank",
	LeftQuarterTurn5TilesUp25: "LeftQuarterTurn5TilesUp25",
	RightQuarterTurn5TilesUp25: "RightQuarterTurn5TilesUp25",
	LeftQuarterTurn5TilesDown25: "LeftQuarterTurn5TilesDown25",
	RightQuarterTurn5TilesDown25: "RightQuarterTurn5TilesDown25",
	SBendLeft: "SBendLeft",
	SBendRight: "SBendRight",
	LeftVerticalLoop: "LeftVerticalLoop",
	RightVerticalLoop: "RightVerticalLoop",
	LeftQuarterTurn3Tiles: "LeftQuarterTurn3Tiles",
	RightQuarterTurn3Tiles: "RightQuarterTurn3Tiles",
	LeftBankedQuarterTurn3Tiles: "LeftBankedQuarterTurn3Tiles",
	RightBankedQuarterTurn3Tiles: "RightBankedQuarterTurn3Tiles",
	LeftQuarterTurn3TilesUp25: "LeftQuarterTurn3TilesUp25",
	RightQuarterTurn3TilesUp25: "RightQuarterTurn3TilesUp25",
	LeftQuarterTurn3TilesDown25: "LeftQuarterTurn3TilesDown25",
	RightQuarterTurn3TilesDown25: "RightQuarterTurn3TilesDown25",
	LeftQuarterTurn1Tile: "LeftQuarterTurn1Tile",
	RightQuarterTurn1Tile: "RightQuarterTurn1Tile",
	LeftTwistDownToUp: "LeftTwistDownToUp",
	RightTwistDownToUp: "RightTwistDownToUp",
	LeftTwistUpToDown: "LeftTwistUpToDown",
	RightTwistUpToDown: "RightTwistUpToDown",
	HalfLoopUp: "HalfLoopUp",
	HalfLoopDown: "HalfLoopDown",
	LeftCorkscrewUp: "LeftCorkscrewUp",
	RightCorkscrewUp: "RightCorkscrewUp",
	LeftCorkscrewDown: "LeftCorkscrewDown",
	RightCorkscrewDown: "RightCorkscrewDown",
	FlatToUp60: "FlatToUp60",
	Up60ToFlat: "Up60ToFlat",
	FlatToDown60: "FlatToDown60",
	Down60ToFlat: "Down60ToFlat",
	TowerBase: "TowerBase",
	TowerSection: "TowerSection",
	FlatCovered: "FlatCovered",
	Up25Covered: "Up25Covered",
	Up60Covered: "Up60Covered",
	FlatToUp25Covered: "FlatToUp25Covered",
	Up25ToUp60Covered: "Up25ToUp60Covered",
	Up60ToUp25Covered: "Up60ToUp25Covered",
	Up25ToFlatCovered: "Up25ToFlatCovered",
	Down25Covered: "Down25Covered",
	Down60Covered: "Down60Covered",
	FlatToDown25Covered: "FlatToDown25Covered",
	Down25ToDown60Covered: "Down25ToDown60Covered",
	Down60ToDown25Covered: "Down60ToDown25Covered",
	Down25ToFlatCovered: "Down25ToFlatCovered",
	LeftQuarterTurn5TilesCovered: "LeftQuarterTurn5TilesCovered",
	RightQuarterTurn5TilesCovered: "RightQuarterTurn5TilesCovered",
	SBendLeftCovered: "SBendLeftCovered",
	SBendRightCovered: "SBendRightCovered",
	LeftQuarterTurn3TilesCovered: "LeftQuarterTurn3TilesCovered",
	RightQuarterTurn3TilesCovered: "RightQuarterTurn3TilesCovered",
	LeftHalfBankedHelixUpSmall: "LeftHalfBankedHelixUpSmall",
	RightHalfBankedHelixUpSmall: "RightHalfBankedHelixUpSmall",
	LeftHalfBankedHelixDownSmall: "LeftHalfBankedHelixDownSmall",
	RightHalfBankedHelixDownSmall: "RightHalfBankedHelixDownSmall",
	LeftHalfBankedHelixUpLarge: "LeftHalfBankedHelixUpLarge",
	RightHalfBankedHelixUpLarge: "RightHalfBankedHelixUpLarge",
	LeftHalfBankedHelixDownLarge: "LeftHalfBankedHelixDownLarge",
	RightHalfBankedHelixDownLarge: "RightHalfBankedHelixDownLarge",
	LeftQuarterTurn1TileUp60: "LeftQuarterTurn1TileUp60",
	RightQuarterTurn1TileUp60: "RightQuarterTurn1TileUp60",
	LeftQuarterTurn1TileDown60: "LeftQuarterTurn1TileDown60",
	RightQuarterTurn1TileDown60: "RightQuarterTurn1TileDown60",
	Brakes: "Brakes",
	Booster: "Booster",
	Maze: "Maze",
	LeftQuarterBankedHelixLargeUp: "LeftQuarterBankedHelixLargeUp",
	RightQuarterBankedHelixLargeUp: "RightQuarterBankedHelixLargeUp",
	LeftQuarterBankedHelixLargeDown: "LeftQuarterBankedHelixLargeDown",
	RightQuarterBankedHelixLargeDown: "RightQuarterBankedHelixLargeDown",
	LeftQuarterHelixLargeUp: "LeftQuarterHelixLargeUp",
	RightQuarterHelixLargeUp: "RightQuarterHelixLargeUp",
	LeftQuarterHelixLargeDown: "LeftQuarterHelixLargeDown",
	RightQuarterHelixLargeDown: "RightQuarterHelixLargeDown",
	Up25LeftBanked: "Up25LeftBanked",
	Up25RightBanked: "Up25RightBanked",
	Waterfall: "Waterfall",
	Rapids: "Rapids",
	OnRidePhoto: "OnRidePhoto",
	Down25LeftBanked: "Down25LeftBanked",
	Down25RightBanked: "Down25RightBanked",
	Watersplash: "Watersplash",
	FlatToUp60LongBase: "FlatToUp60LongBase",
	Up60ToFlatLongBase: "Up60ToFlatLongBase",
	Whirlpool: "Whirlpool",
	Down60ToFlatLongBase: "Down60ToFlatLongBase",
	FlatToDown60LongBase: "FlatToDown60LongBase",
	CableLiftHill: "CableLiftHill",
	ReverseFreefallSlope: "ReverseFreefallSlope",
	ReverseFreefallVertical: "ReverseFreefallVertical",
	Up90: "Up90",
	Down90: "Down90",
	Up60ToUp90: "Up60ToUp90",
	Down90ToDown60: "Down90ToDown60",
	Up90ToUp60: "Up90ToUp60",
	Down60ToDown90: "Down60ToDown90",
	BrakeForDrop: "BrakeForDrop",
	LeftEighthToDiag: "LeftEighthToDiag",
	RightEighthToDiag: "RightEighthToDiag",
	LeftEighthToOrthogonal: "LeftEighthToOrthogonal",
	RightEighthToOrthogonal: "RightEighthToOrthogonal",
	LeftEighthBankToDiag: "LeftEighthBankToDiag",
	RightEighthBankToDiag: "RightEighthBankToDiag",
	LeftEighthBankToOrthogonal: "LeftEighthBankToOrthogonal",
	RightEighthBankToOrthogonal: "RightEighthBankToOrthogonal",
	DiagFlat: "DiagFlat",
	DiagUp25: "DiagUp25",
	DiagUp60: "DiagUp60",
	DiagFlatToUp25: "DiagFlatToUp25",
	DiagUp25ToUp60: "DiagUp25ToUp60",
	DiagUp60ToUp25: "DiagUp60ToUp25",
	DiagUp25ToFlat: "DiagUp25ToFlat",
	DiagDown25: "DiagDown25",
	DiagDown60: "DiagDown60",
	DiagFlatToDown25: "DiagFlatToDown25",
	DiagDown25ToDown60: "DiagDown25ToDown60",
	DiagDown60ToDown25: "DiagDown60ToDown25",
	DiagDown25ToFlat: "DiagDown25ToFlat",
	DiagFlatToUp60: "DiagFlatToUp60",
	DiagUp60ToFlat: "DiagUp60ToFlat",
	DiagFlatToDown60: "DiagFlatToDown60",
	DiagDown60ToFlat: "DiagDown60ToFlat",
	DiagFlatToLeftBank: "DiagFlatToLeftBank",
	DiagFlatToRightBank: "DiagFlatToRightBank",
	DiagLeftBankToFlat: "DiagLeftBankToFlat",
	DiagRightBankToFlat: "DiagRightBankToFlat",
	DiagLeftBankToUp25: "DiagLeftBankToUp25",
	DiagRightBankToUp25: "DiagRightBankToUp25",
	DiagUp25ToLeftBank: "DiagUp25ToLeftBank",
	DiagUp25ToRightBank: "DiagUp25ToRightBank",
	DiagLeftBankToDown25: "DiagLeftBankToDown25",
	DiagRightBankToDown25: "DiagRightBankToDown25",
	DiagDown25ToLeftBank: "DiagDown25ToLeftBank",
	DiagDown25ToRightBank: "DiagDown25ToRightBank",
	DiagLeftBank: "DiagLeftBank",
	DiagRightBank: "DiagRightBank",
	LogFlumeReverser: "LogFlumeReverser",
	SpinningTunnel: "SpinningTunnel",
	LeftBarrelRollUpToDown: "LeftBarrelRollUpToDown",
	RightBarrelRollUpToDown: "RightBarrelRollUpToDown",
	LeftBarrelRollDownToUp: "LeftBarrelRollDownToUp",
	RightBarrelRollDownToUp: "RightBarrelRollDownToUp",
	LeftBankToLeftQuarterTurn3TilesUp25: "LeftBankToLeftQuarterTurn3TilesUp25",
	RightBankToRightQuarterTurn3TilesUp25: "RightBankToRightQuarterTurn3TilesUp25",
	LeftQuarterTurn3TilesDown25ToLeftBank: "LeftQuarterTurn3TilesDown25ToLeftBank",
	RightQuarterTurn3TilesDown25ToRightBank: "RightQuarterTurn3TilesDown25ToRightBank",
	PoweredLift: "PoweredLift",
	LeftLargeHalfLoopUp: "LeftLargeHalfLoopUp",
	RightLargeHalfLoopUp: "RightLargeHalfLoopUp",
	LeftLargeHalfLoopDown: "LeftLargeHalfLoopDown",
	RightLargeHalfLoopDown: "RightLargeHalfLoopDown",
	LeftFlyerTwistUp: "LeftFlyerTwistUp",
	RightFlyerTwistUp: "RightFlyerTwistUp",
	LeftFlyerTwistDown: "LeftFlyerTwistDown",
	RightFlyerTwistDown: "RightFlyerTwistDown",
	FlyerHalfLoopUninvertedUp: "FlyerHalfLoopUninvertedUp",
	FlyerHalfLoopInvertedDown: "FlyerHalfLoopInvertedDown",
	LeftFlyerCorkscrewUp: "LeftFlyerCorkscrewUp",
	RightFlyerCorkscrewUp: "RightFlyerCorkscrewUp",
	LeftFlyerCorkscrewDown: "LeftFlyerCorkscrewDown",
	RightFlyerCorkscrewDown: "RightFlyerCorkscrewDown",
	HeartLineTransferUp: "HeartLineTransferUp",
	HeartLineTransferDown: "HeartLineTransferDown",
	LeftHeartLineRoll: "LeftHeartLineRoll",
	RightHeartLineRoll: "RightHeartLineRoll",
	MinigolfHoleA: "MinigolfHoleA",
	MinigolfHoleB: "MinigolfHoleB",
	MinigolfHoleC: "MinigolfHoleC",
	MinigolfHoleD: "MinigolfHoleD",
	MinigolfHoleE: "MinigolfHoleE",
	MultiDimInvertedFlatToDown90QuarterLoop: "MultiDimInvertedFlatToDown90QuarterLoop",
	Up90ToInvertedFlatQuarterLoop: "Up90ToInvertedFlatQuarterLoop",
	InvertedFlatToDown90QuarterLoop: "InvertedFlatToDown90QuarterLoop",
	LeftCurvedLiftHill: "LeftCurvedLiftHill",
	RightCurvedLiftHill: "RightCurvedLiftHill",
	LeftReverser: "LeftReverser",
	RightReverser: "RightReverser",
	AirThrustTopCap: "AirThrustTopCap",
	AirThrustVerticalDown: "AirThrustVerticalDown",
	AirThrustVerticalDownToLevel: "AirThrustVerticalDownToLevel",
	BlockBrakes: "BlockBrakes",
	LeftBankedQuarterTurn3TileUp25: "LeftBankedQuarterTurn3TileUp25",
	RightBankedQuarterTurn3TileUp25: "RightBankedQuarterTurn3TileUp25",
	LeftBankedQuarterTurn3TileDown25: "LeftBankedQuarterTurn3TileDown25",
	RightBankedQuarterTurn3TileDown25: "RightBankedQuarterTurn3TileDown25",
	LeftBankedQuarterTurn5TileUp25: "LeftBankedQuarterTurn5TileUp25",
	RightBankedQuarterTurn5TileUp25: "RightBankedQuarterTurn5TileUp25",
	LeftBankedQuarterTurn5TileDown25: "LeftBankedQuarterTurn5TileDown25",
	RightBankedQuarterTurn5TileDown25: "RightBankedQuarterTurn5TileDown25",
	Up25ToLeftBankedUp25: "Up25ToLeftBankedUp25",
	Up25ToRightBankedUp25: "Up25ToRightBankedUp25",
	LeftBankedUp25ToUp25: "LeftBankedUp25ToUp25",
	RightBankedUp25ToUp25: "RightBankedUp25ToUp25",
	Down25ToLeftBankedDown25: "Down25ToLeftBankedDown25",
	Down25ToRightBankedDown25: "Down25ToRightBankedDown25",
	LeftBankedDown25ToDown25: "LeftBankedDown25ToDown25",
	RightBankedDown25ToDown25: "RightBankedDown25ToDown25",
	LeftBankedFlatToLeftBankedUp25: "LeftBankedFlatToLeftBankedUp25",
	RightBankedFlatToRightBankedUp25: "RightBankedFlatToRightBankedUp25",
	LeftBankedUp25ToLeftBankedFlat: "LeftBankedUp25ToLeftBankedFlat",
	RightBankedUp25ToRightBankedFlat: "RightBankedUp25ToRightBankedFlat",
	LeftBankedFlatToLeftBankedDown25: "LeftBankedFlatToLeftBankedDown25",
	RightBankedFlatToRightBankedDown25: "RightBankedFlatToRightBankedDown25",
	LeftBankedDown25ToLeftBankedFlat: "LeftBankedDown25ToLeftBankedFlat",
	RightBankedDown25ToRightBankedFlat: "RightBankedDown25ToRightBankedFlat",
	FlatToLeftBankedUp25: "FlatToLeftBankedUp25",
	FlatToRightBankedUp25: "FlatToRightBankedUp25",
	LeftBankedUp25ToFlat: "LeftBankedUp25ToFlat",
	RightBankedUp25ToFlat: "RightBankedUp25ToFlat",
	FlatToLeftBankedDown25: "FlatToLeftBankedDown25",
	FlatToRightBankedDown25: "FlatToRightBankedDown25",
	LeftBankedDown25ToFlat: "LeftBankedDown25ToFlat",
	RightBankedDown25ToFlat: "RightBankedDown25ToFlat",
	LeftQuarterTurn1TileUp90: "LeftQuarterTurn1TileUp90",
	RightQuarterTurn1TileUp90: "RightQuarterTurn1TileUp90",
	LeftQuarterTurn1TileDown90: "LeftQuarterTurn1TileDown90",
	RightQuarterTurn1TileDown90: "RightQuarterTurn1TileDown90",
	MultiDimUp90ToInvertedFlatQuarterLoop: "MultiDimUp90ToInvertedFlatQuarterLoop",
	MultiDimFlatToDown90QuarterLoop: "MultiDimFlatToDown90QuarterLoop",
	MultiDimInvertedUp90ToFlatQuarterLoop: "MultiDimInvertedUp90ToFlatQuarterLoop",
	RotationControlToggle: "RotationControlToggle",
	FlatTrack1x4A: "FlatTrack1x4A",
	FlatTrack2x2: "FlatTrack2x2",
	FlatTrack4x4: "FlatTrack4x4",
	FlatTrack2x4: "FlatTrack2x4",
	FlatTrack1x5: "FlatTrack1x5",
	FlatTrack1x1A: "FlatTrack1x1A",
	FlatTrack1x4B: "FlatTrack1x4B",
	FlatTrack1x1B: "FlatTrack1x1B",
	FlatTrack1x4C: "FlatTrack1x4C",
	FlatTrack3x3: "FlatTrack3x3",
	LeftLargeCorkscrewUp: "LeftLargeCorkscrewUp",
	RightLargeCorkscrewUp: "RightLargeCorkscrewUp",
	LeftLargeCorkscrewDown: "LeftLargeCorkscrewDown",
	RightLargeCorkscrewDown: "RightLargeCorkscrewDown",
	LeftMediumHalfLoopUp: "LeftMediumHalfLoopUp",
	RightMediumHalfLoopUp: "RightMediumHalfLoopUp",
	LeftMediumHalfLoopDown: "LeftMediumHalfLoopDown",
	RightMediumHalfLoopDown: "RightMediumHalfLoopDown",
	LeftZeroGRollUp: "LeftZeroGRollUp",
	RightZeroGRollUp: "RightZeroGRollUp",
	LeftZeroGRollDown: "LeftZeroGRollDown",
	RightZeroGRollDown: "RightZeroGRollDown",
	LeftLargeZeroGRollUp: "LeftLargeZeroGRollUp",
	RightLargeZeroGRollUp: "RightLargeZeroGRollUp",
	LeftLargeZeroGRollDown: "LeftLargeZeroGRollDown",
	RightLargeZeroGRollDown: "RightLargeZeroGRollDown",
	LeftFlyerLargeHalfLoopUninvertedUp: "LeftFlyerLargeHalfLoopUninvertedUp",
	RightFlyerLargeHalfLoopUninvertedUp: "RightFlyerLargeHalfLoopUninvertedUp",
	LeftFlyerLargeHalfLoopInvertedDown: "LeftFlyerLargeHalfLoopInvertedDown",
	RightFlyerLargeHalfLoopInvertedDown: "RightFlyerLargeHalfLoopInvertedDown",
	LeftFlyerLargeHalfLoopInvertedUp: "LeftFlyerLargeHalfLoopInvertedUp",
	RightFlyerLargeHalfLoopInvertedUp: "RightFlyerLargeHalfLoopInvertedUp",
	LeftFlyerLargeHalfLoopUninvertedDown: "LeftFlyerLargeHalfLoopUninvertedDown",
	RightFlyerLargeHalfLoopUninvertedDown: "RightFlyerLargeHalfLoopUninvertedDown",
	FlyerHalfLoopInvertedUp: "FlyerHalfLoopInvertedUp",
	FlyerHalfLoopUninvertedDown: "FlyerHalfLoopUninvertedDown",
	LeftEighthToDiagUp25: "LeftEighthToDiagUp25",
	RightEighthToDiagUp25: "RightEighthToDiagUp25",
	LeftEighthToDiagDown25: "LeftEighthToDiagDown25",
	RightEighthToDiagDown25: "RightEighthToDiagDown25",
	LeftEighthToOrthogonalUp25: "LeftEighthToOrthogonalUp25",
	RightEighthToOrthogonalUp25: "RightEighthToOrthogonalUp25",
	LeftEighthToOrthogonalDown25: "LeftEighthToOrthogonalDown25",
	RightEighthToOrthogonalDown25: "RightEighthToOrthogonalDown25",
	DiagUp25ToLeftBankedUp25: "DiagUp25ToLeftBankedUp25",
	DiagUp25ToRightBankedUp25: "DiagUp25ToRightBankedUp25",
	DiagLeftBankedUp25ToUp25: "DiagLeftBankedUp25ToUp25",
	DiagRightBankedUp25ToUp25: "DiagRightBankedUp25ToUp25",
	DiagDown25ToLeftBankedDown25: "DiagDown25ToLeftBankedDown25",
	DiagDown25ToRightBankedDown25: "DiagDown25ToRightBankedDown25",
	DiagLeftBankedDown25ToDown25: "DiagLeftBankedDown25ToDown25",
	DiagRightBankedDown25ToDown25: "DiagRightBankedDown25ToDown25",
	DiagLeftBankedFlatToLeftBankedUp25: "DiagLeftBankedFlatToLeftBankedUp25",
	DiagRightBankedFlatToRightBankedUp25: "DiagRightBankedFlatToRightBankedUp25",
	DiagLeftBankedUp25ToLeftBankedFlat: "DiagLeftBankedUp25ToLeftBankedFlat",
	DiagRightBankedUp25ToRightBankedFlat: "DiagRightBankedUp25ToRightBankedFlat",
	DiagLeftBankedFlatToLeftBankedDown25: "DiagLeftBankedFlatToLeftBankedDown25",
	DiagRightBankedFlatToRightBankedDown25: "DiagRightBankedFlatToRightBankedDown25",
	DiagLeftBankedDown25ToLeftBankedFlat: "DiagLeftBankedDown25ToLeftBankedFlat",
	DiagRightBankedDown25ToRightBankedFlat: "DiagRightBankedDown25ToRightBankedFlat",
	DiagFlatToLeftBankedUp25: "DiagFlatToLeftBankedUp25",
	DiagFlatToRightBankedUp25: "DiagFlatToRightBankedUp25",
	DiagLeftBankedUp25ToFlat: "DiagLeftBankedUp25ToFlat",
	DiagRightBankedUp25ToFlat: "DiagRightBankedUp25ToFlat",
	DiagFlatToLeftBankedDown25: "DiagFlatToLeftBankedDown25",
	DiagFlatToRightBankedDown25: "DiagFlatToRightBankedDown25",
	DiagLeftBankedDown25ToFlat: "DiagLeftBankedDown25ToFlat",
	DiagRightBankedDown25ToFlat: "DiagRightBankedDown25ToFlat",
	DiagUp25LeftBanked: "DiagUp25LeftBanked",
	DiagUp25RightBanked: "DiagUp25RightBanked",
	DiagDown25LeftBanked: "DiagDown25LeftBanked",
	DiagDown25RightBanked: "DiagDown25RightBanked",
	LeftEighthBankToDiagUp25: "LeftEighthBankToDiagUp25",
	RightEighthBankToDiagUp25: "RightEighthBankToDiagUp25",
	LeftEighthBankToDiagDown25: "LeftEighthBankToDiagDown25",
	RightEighthBankToDiagDown25: "RightEighthBankToDiagDown25",
	LeftEighthBankToOrthogonalUp25: "LeftEighthBankToOrthogonalUp25",
	RightEighthBankToOrthogonalUp25: "RightEighthBankToOrthogonalUp25",
	LeftEighthBankToOrthogonalDown25: "LeftEighthBankToOrthogonalDown25",
	RightEighthBankToOrthogonalDown25: "RightEighthBankToOrthogonalDown25",
	DiagBrakes: "DiagBrakes",
	DiagBlockBrakes: "DiagBlockBrakes",
	Down25Brakes: "Down25Brakes",
	DiagBooster: "DiagBooster",
	DiagFlatToUp60LongBase: "DiagFlatToUp60LongBase",
	DiagUp60ToFlatLongBase: "DiagUp60ToFlatLongBase",
	DiagFlatToDown60LongBase: "DiagFlatToDown60LongBase",
	DiagDown60ToFlatLongBase: "DiagDown60ToFlatLongBase",
	LeftEighthDiveLoopUpToOrthogonal: "LeftEighthDiveLoopUpToOrthogonal",
	RightEighthDiveLoopUpToOrthogonal: "RightEighthDiveLoopUpToOrthogonal",
	LeftEighthDiveLoopDownToDiag: "LeftEighthDiveLoopDownToDiag",
	RightEighthDiveLoopDownToDiag: "RightEighthDiveLoopDownToDiag",
	DiagDown25Brakes: "DiagDown25Brakes",
}

// String returns the name of the track piece type.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for i, n := range typeNames {
		m[n] = Type(i)
	}
	return m
}()

// ParseType looks up a track piece type by name.
func ParseType(name string) (Type, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// Valid reports whether t is a known track piece type.
func (t Type) Valid() bool {
	return int(t) < TypeCount
}

package trackutil

// Station and on-ride photo sprites of the base graphics.
const (
	sprStationPlatformSWNE                  = 22362
	sprStationPlatformNWSE                  = 22363
	sprStationPlatformFencedSWNE            = 22364
	sprStationPlatformFencedNWSE            = 22365
	sprStationPlatformBeginFencedSWNE       = 22366
	sprStationPlatformBeginFencedNWSE       = 22367
	sprStationPlatformBeginSWNE             = 22368
	sprStationPlatformBeginNWSE             = 22369
	sprStationFenceSWNE                     = 22370
	sprStationFenceNWSE                     = 22371
	sprStationBeginAngleFenceSWNE           = 22372
	sprStationBeginAngleFenceNWSE           = 22373
	sprStationFenceSmallNWSE                = 22374
	sprStationFenceSmallSWNE                = 22375
	sprStationPlatformFencedEndRedLightSWNE = 22380
	sprStationPlatformFencedEndRedLightNWSE = 22381
	sprStationPlatformFencedEndGreenSWNE    = 22382
	sprStationPlatformFencedEndGreenNWSE    = 22383
	sprStationLightBackNESW                 = 22384
	sprStationLightBackNWSE                 = 22385
	sprStationLightBackAngleFencedNESW      = 22386
	sprStationLightBackAngleFencedNWSE      = 22387
	sprStationPlatformEndRedLightSWNE       = 22388
	sprStationPlatformEndRedLightNWSE       = 22389
	sprStationPlatformEndGreenLightSWNE     = 22390
	sprStationPlatformEndGreenLightNWSE     = 22391

	sprStationBaseASWNE = 22426
	sprStationBaseANWSE = 22427
	sprStationBaseBSWNE = 22428
	sprStationBaseBNWSE = 22429
	sprStationBaseCSWNE = 22430
	sprStationBaseCNWSE = 22431
	// SprStationBaseD is a borderless metal plate, also laid under on-ride photo sections.
	SprStationBaseD = 22432

	sprOnRidePhotoCameraN      = 25615
	sprOnRidePhotoCameraE      = 25616
	sprOnRidePhotoCameraS      = 25617
	sprOnRidePhotoCameraW      = 25618
	sprOnRidePhotoCameraFlashN = 25619
	sprOnRidePhotoCameraFlashE = 25620
	sprOnRidePhotoCameraFlashS = 25621
	sprOnRidePhotoCameraFlashW = 25622
	sprOnRidePhotoSignSWNE     = 25623
	sprOnRidePhotoSignNWSE     = 25624
	sprOnRidePhotoSignNESW     = 25625
	sprOnRidePhotoSignSENW     = 25626
)

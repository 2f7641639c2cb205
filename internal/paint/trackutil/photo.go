package trackutil

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

var photoImages = [4][3]uint32{
	{sprOnRidePhotoSignSWNE, sprOnRidePhotoCameraS, sprOnRidePhotoCameraFlashS},
	{sprOnRidePhotoSignNWSE, sprOnRidePhotoCameraW, sprOnRidePhotoCameraFlashW},
	{sprOnRidePhotoSignNESW, sprOnRidePhotoCameraN, sprOnRidePhotoCameraFlashN},
	{sprOnRidePhotoSignSENW, sprOnRidePhotoCameraE, sprOnRidePhotoCameraFlashE},
}

// Positions of the two signs and the camera, per direction.
var photoPositions = [4][3]paint.CoordsXY{
	{{26, 0}, {26, 31}, {6, 0}},
	{{0, 6}, {31, 6}, {0, 26}},
	{{6, 0}, {6, 31}, {26, 31}},
	{{0, 26}, {31, 26}, {31, 6}},
}

// OnRidePhotoPaint draws the photo signs either side of the track and the
// camera, flashing while a photo is taken.
func OnRidePhotoPaint(s *paint.Session, r *ride.Ride, dir track.Direction, height int32, el track.Element) {
	colours := r.MiscColours(el)
	camera := photoImages[dir][1]
	if el.TakingPhoto {
		camera = photoImages[dir][2]
	}
	images := [3]uint32{photoImages[dir][0], photoImages[dir][0], camera}
	for i, p := range photoPositions[dir] {
		box(s, colours.WithIndex(images[i]), p.X, p.Y, 1, 1, 19, height)
	}
}

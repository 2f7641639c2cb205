// Package ride holds the ride level data track painters read: colours and
// station layout.
package ride

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

// TrackColour is one of a ride's colour schemes.
type TrackColour struct {
	Main       uint8 `yaml:"main"`
	Additional uint8 `yaml:"additional"`
	Supports   uint8 `yaml:"supports"`
}

// TileCoords addresses a map tile.
type TileCoords struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
}

// Station is one station of a ride with the tiles of its entrance and exit.
type Station struct {
	Start    TileCoords  `yaml:"start"`
	Entrance *TileCoords `yaml:"entrance"`
	Exit     *TileCoords `yaml:"exit"`
}

// StationStyle selects how station platforms are drawn.
type StationStyle uint8

const (
	// StationPlain draws the platforms and fences with a base plate under the track.
	StationPlain StationStyle = iota
	// StationPlatformless paints only the track. Station supports fall back to a single column.
	StationPlatformless
)

// Ride is the painter's view of a ride.
type Ride struct {
	Name         string         `yaml:"name"`
	Colours      [4]TrackColour `yaml:"colours"`
	MiscColour   uint8          `yaml:"misc_colour"`
	StationStyle StationStyle   `yaml:"station_style"`
	Stations     []Station      `yaml:"stations"`
}

// New returns a ride with a single colour scheme applied to all four slots.
func New(name string, c TrackColour) *Ride {
	r := &Ride{Name: name}
	for i := range r.Colours {
		r.Colours[i] = c
	}
	return r
}

func elementTransparency(el track.Element) paint.FilterPalette {
	switch {
	case el.Ghost:
		return paint.FilterGhost
	case el.Highlighted:
		return paint.FilterHighlight
	}
	return paint.FilterNone
}

func withElementState(img paint.ImageId, el track.Element) paint.ImageId {
	if f := elementTransparency(el); f != paint.FilterNone {
		return img.WithTransparency(f)
	}
	return img
}

// TrackColours is the image template track sprites of el are drawn with.
func (r *Ride) TrackColours(el track.Element) paint.ImageId {
	c := r.Colours[el.ColourScheme&3]
	return withElementState(paint.NewImageId(0, c.Main, c.Additional), el)
}

// SupportColours is the image template supports of el are drawn with.
func (r *Ride) SupportColours(el track.Element) paint.ImageId {
	c := r.Colours[el.ColourScheme&3]
	return withElementState(paint.NewImageId(0, c.Supports, 0), el)
}

// MiscColours is used for station furniture and the on-ride photo camera.
func (r *Ride) MiscColours(el track.Element) paint.ImageId {
	return withElementState(paint.NewImageId(0, r.MiscColour, 0), el)
}

// Apply sets the session colours for painting el.
func (r *Ride) Apply(s *paint.Session, el track.Element) {
	s.TrackColours = r.TrackColours(el)
	s.SupportColours = r.SupportColours(el)
}

// StationAt returns the station with the given index, or nil.
func (r *Ride) StationAt(index uint8) *Station {
	if int(index) >= len(r.Stations) {
		return nil
	}
	return &r.Stations[index]
}

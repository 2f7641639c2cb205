package paint

// FilterPalette selects a transparency remap applied when an image is drawn.
type FilterPalette uint8

const (
	FilterNone FilterPalette = iota
	FilterGhost
	FilterHighlight
	FilterDarken1
)

// ImageId is a sprite index together with the colours it is remapped with.
type ImageId struct {
	Index        uint32        `json:"index"`
	Primary      uint8         `json:"primary,omitempty"`
	Secondary    uint8         `json:"secondary,omitempty"`
	Tertiary     uint8         `json:"tertiary,omitempty"`
	Transparency FilterPalette `json:"transparency,omitempty"`
}

// NewImageId returns an image with the given primary and secondary colours.
func NewImageId(index uint32, primary, secondary uint8) ImageId {
	return ImageId{Index: index, Primary: primary, Secondary: secondary}
}

// WithIndex keeps the colours and replaces the sprite index.
func (i ImageId) WithIndex(index uint32) ImageId {
	i.Index = index
	return i
}

// WithTransparency keeps the index and drops the colour remap in favour of a palette filter.
func (i ImageId) WithTransparency(p FilterPalette) ImageId {
	return ImageId{Index: i.Index, Transparency: p}
}

// IsRemap reports whether the image carries a colour remap.
func (i ImageId) IsRemap() bool {
	return i.Transparency == FilterNone
}

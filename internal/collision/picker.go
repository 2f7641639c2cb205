// Package collision hit-tests the screen rectangles of painted images so the
// viewer can tell which image lies under the cursor.
package collision

// Target is one image drawn on screen.
type Target struct {
	BoundingBox *BoundingBox
	// Depth orders overlapping targets; higher is drawn later, so nearer.
	Depth float64
	Tile  int // index of the painted tile
	Call  int // index of the call within the tile
}

// Picker collects the targets of one frame.
type Picker struct {
	targets []Target
}

// NewPicker creates an empty picker
func NewPicker() *Picker {
	return &Picker{}
}

// Register adds a target. Boxes that are nil are ignored.
func (p *Picker) Register(t Target) {
	if t.BoundingBox == nil {
		return
	}
	p.targets = append(p.targets, t)
}

// Clear drops all targets, keeping the storage for the next frame.
func (p *Picker) Clear() {
	p.targets = p.targets[:0]
}

// Len returns the number of registered targets.
func (p *Picker) Len() int {
	return len(p.targets)
}

// Pick returns the nearest target containing point. Among targets of equal
// depth the one registered last wins.
func (p *Picker) Pick(point Point) (Target, bool) {
	best := -1
	for i, t := range p.targets {
		if !t.BoundingBox.Contains(point) {
			continue
		}
		if best < 0 || t.Depth >= p.targets[best].Depth {
			best = i
		}
	}
	if best < 0 {
		return Target{}, false
	}
	return p.targets[best], true
}

// Overlapping returns the targets whose boxes intersect box, in registration order.
func (p *Picker) Overlapping(box *BoundingBox) []Target {
	var out []Target
	for _, t := range p.targets {
		if t.BoundingBox.Intersects(box) {
			out = append(out, t)
		}
	}
	return out
}

package bm

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed sprites.yaml
var spritesYAML []byte

//go:embed sprites.schema.json
var spritesSchema string

// Layer is one sprite of a piece tile, positioned relative to the element height.
type Layer struct {
	Image    uint32
	Offset   paint.CoordsXYZ
	BoundBox paint.BoundBoxXYZ
}

// Piece holds the layers of a piece type indexed by variant, direction and sequence.
type Piece struct {
	Sequences int
	Variants  int
	layers    [][track.NumDirections][][]Layer
}

// Layers returns the sprites drawn for one tile. A variant the piece lacks
// falls back to the plain one.
func (p *Piece) Layers(variant int, dir track.Direction, seq uint8) []Layer {
	if variant >= p.Variants {
		variant = 0
	}
	if int(seq) >= p.Sequences {
		return nil
	}
	return p.layers[variant][dir&3][seq]
}

// Catalog maps piece types to their sprite tables.
type Catalog struct {
	pieces map[track.Type]*Piece
}

type spriteDoc struct {
	Symbols map[string]uint32   `yaml:"symbols"`
	Pieces  map[string]pieceDoc `yaml:"pieces"`
}

type pieceDoc struct {
	Sequences int        `yaml:"sequences"`
	Variants  int        `yaml:"variants"`
	Sprites   []layerDoc `yaml:"sprites"`
}

type layerDoc struct {
	V      int       `yaml:"v"`
	D      int       `yaml:"d"`
	S      int       `yaml:"s"`
	L      int       `yaml:"l"`
	Image  yaml.Node `yaml:"image"`
	Offset [3]int32  `yaml:"offset"`
	BBox   [6]int32  `yaml:"bbox"`
}

var catalogSchema = jsonschema.MustCompileString("sprites.schema.json", spritesSchema)

func validateDocument(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse sprite catalog: %w", err)
	}
	// Round trip through JSON so the validator sees the types it expects.
	buf, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode sprite catalog: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode sprite catalog: %w", err)
	}
	if err := catalogSchema.Validate(doc); err != nil {
		return fmt.Errorf("validate sprite catalog: %w", err)
	}
	return nil
}

// LoadCatalog parses and validates a sprite catalog document.
func LoadCatalog(data []byte) (*Catalog, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}
	var doc spriteDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse sprite catalog: %w", err)
	}

	c := &Catalog{pieces: make(map[track.Type]*Piece, len(doc.Pieces))}
	for name, pd := range doc.Pieces {
		t, ok := track.ParseType(name)
		if !ok {
			return nil, fmt.Errorf("sprite catalog: unknown piece %q", name)
		}
		p := &Piece{Sequences: pd.Sequences, Variants: pd.Variants}
		p.layers = make([][track.NumDirections][][]Layer, pd.Variants)
		for v := range p.layers {
			for d := range p.layers[v] {
				p.layers[v][d] = make([][]Layer, pd.Sequences)
			}
		}
		// Layers are kept in document order after sorting by their layer index.
		sprites := append([]layerDoc(nil), pd.Sprites...)
		sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].L < sprites[j].L })
		for _, ld := range sprites {
			if ld.V >= pd.Variants || ld.S >= pd.Sequences {
				return nil, fmt.Errorf("sprite catalog: %s: layer v%d s%d out of range", name, ld.V, ld.S)
			}
			img, err := resolveImage(&ld.Image, doc.Symbols)
			if err != nil {
				return nil, fmt.Errorf("sprite catalog: %s: %w", name, err)
			}
			layer := Layer{
				Image:  img,
				Offset: paint.CoordsXYZ{X: ld.Offset[0], Y: ld.Offset[1], Z: ld.Offset[2]},
				BoundBox: paint.BoundBoxXYZ{
					Offset: paint.CoordsXYZ{X: ld.BBox[0], Y: ld.BBox[1], Z: ld.BBox[2]},
					Length: paint.CoordsXYZ{X: ld.BBox[3], Y: ld.BBox[4], Z: ld.BBox[5]},
				},
			}
			cell := &p.layers[ld.V][ld.D][ld.S]
			*cell = append(*cell, layer)
		}
		c.pieces[t] = p
	}
	paint.Logger().Debug("sprite catalog loaded", "pieces", len(c.pieces), "symbols", len(doc.Symbols))
	return c, nil
}

func resolveImage(n *yaml.Node, symbols map[string]uint32) (uint32, error) {
	var index uint32
	if err := n.Decode(&index); err == nil {
		return index, nil
	}
	idx, ok := symbols[n.Value]
	if !ok {
		return 0, fmt.Errorf("unknown image symbol %q", n.Value)
	}
	return idx, nil
}

// MustLoadCatalog loads the built-in catalog, panicking if it is malformed.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog(spritesYAML)
	if err != nil {
		panic("Failed to load sprite catalog: " + err.Error())
	}
	return c
}

// Piece returns the sprite table of t, or nil if the catalog has none.
func (c *Catalog) Piece(t track.Type) *Piece {
	return c.pieces[t]
}

// Types lists the piece types of the catalog in enumeration order.
func (c *Catalog) Types() []track.Type {
	out := make([]track.Type, 0, len(c.pieces))
	for t := range c.pieces {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

package bm

import (
	"strings"
	"testing"

	"coasterpaint/internal/track"
)

func TestBuiltinCatalogCoversPaintedPieces(t *testing.T) {
	c := MustLoadCatalog()
	for typ, tiles := range tileTables {
		p := c.Piece(typ)
		if p == nil {
			t.Errorf("%s: no sprites in catalog", typ)
			continue
		}
		if p.Sequences != len(tiles) {
			t.Errorf("%s: catalog has %d tiles, painter has %d", typ, p.Sequences, len(tiles))
		}
	}
	if got, want := len(c.Types()), len(tileTables); got != want {
		t.Errorf("Expected %d catalog pieces, got %d", want, got)
	}
}

func TestCatalogLayersFallBackToPlainVariant(t *testing.T) {
	p := MustLoadCatalog().Piece(track.LeftBank)
	plain := p.Layers(0, track.DirSW, 0)
	if len(plain) == 0 {
		t.Fatal("Expected LeftBank to have sprites")
	}
	chain := p.Layers(1, track.DirSW, 0)
	if len(chain) != len(plain) || chain[0].Image != plain[0].Image {
		t.Errorf("Expected missing variant to use the plain sprites, got %+v", chain)
	}
	if got := p.Layers(0, track.DirSW, 5); got != nil {
		t.Errorf("Expected no layers past the last tile, got %+v", got)
	}
}

func TestCatalogResolvesSymbols(t *testing.T) {
	doc := `symbols:
  SPR_TEST: 4242
pieces:
  Booster:
    sequences: 1
    variants: 1
    sprites:
      - {v: 0, d: 0, s: 0, l: 1, image: 7, offset: [0, 0, 0], bbox: [0, 0, 0, 1, 1, 1]}
      - {v: 0, d: 0, s: 0, l: 0, image: SPR_TEST, offset: [1, 2, 3], bbox: [0, 6, 0, 32, 20, 3]}
`
	c, err := LoadCatalog([]byte(doc))
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	layers := c.Piece(track.Booster).Layers(0, track.DirSW, 0)
	if len(layers) != 2 {
		t.Fatalf("Expected 2 layers, got %d", len(layers))
	}
	if layers[0].Image != 4242 || layers[1].Image != 7 {
		t.Errorf("Expected layers sorted by index with symbol resolved, got %d, %d", layers[0].Image, layers[1].Image)
	}
	if layers[0].Offset.Z != 3 || layers[0].BoundBox.Length.X != 32 {
		t.Errorf("Unexpected geometry %+v", layers[0])
	}
}

func TestCatalogRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "schema",
			doc:  "pieces:\n  Flat:\n    sequences: 0\n    variants: 1\n    sprites: []\n",
			want: "validate",
		},
		{
			name: "unknown piece",
			doc:  "pieces:\n  Teacup:\n    sequences: 1\n    variants: 1\n    sprites:\n      - {v: 0, d: 0, s: 0, l: 0, image: 1, offset: [0, 0, 0], bbox: [0, 0, 0, 1, 1, 1]}\n",
			want: "unknown piece",
		},
		{
			name: "unknown symbol",
			doc:  "pieces:\n  Flat:\n    sequences: 1\n    variants: 1\n    sprites:\n      - {v: 0, d: 0, s: 0, l: 0, image: SPR_NOPE, offset: [0, 0, 0], bbox: [0, 0, 0, 1, 1, 1]}\n",
			want: "SPR_NOPE",
		},
		{
			name: "tile out of range",
			doc:  "pieces:\n  Flat:\n    sequences: 1\n    variants: 1\n    sprites:\n      - {v: 0, d: 0, s: 2, l: 0, image: 1, offset: [0, 0, 0], bbox: [0, 0, 0, 1, 1, 1]}\n",
			want: "out of range",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog([]byte(tt.doc))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

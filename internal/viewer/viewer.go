// Package viewer is an ebiten window that paints track pieces and draws what
// the painters recorded: image bounding boxes, sprite placeholders and tunnels.
package viewer

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"coasterpaint/internal/coaster"
	"coasterpaint/internal/collision"
	"coasterpaint/internal/config"
	"coasterpaint/internal/graphics"
	"coasterpaint/internal/mathutil"
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/threading"
	"coasterpaint/internal/threading/rendering"
	"coasterpaint/internal/track"
)

const (
	sidebarWidth = 300
	padding      = 16
	lineHeight   = 16
	// alertInterval is how many frames pass between performance checks.
	alertInterval = 300
)

const (
	tabInfo = iota
	tabLegend
)

var (
	backgroundColor = color.RGBA{15, 15, 22, 255}
	panelColor      = color.RGBA{20, 20, 35, 255}
	borderColor     = color.RGBA{70, 70, 90, 255}
	groundColor     = colornames.Darkslategray
	tunnelColor     = colornames.Yellow
	hoverColor      = colornames.White
)

// Viewer implements ebiten.Game.
type Viewer struct {
	cfg   *config.Config
	style coaster.Style
	ride  *ride.Ride

	pages       []page
	pageIndex   int
	rotation    uint8
	sidebarTab  int
	showBoxes   bool
	showSprites bool

	components *threading.Components
	sprites    *graphics.SpriteManager
	painted    []rendering.PaintedTile
	dirty      bool

	picker *collision.Picker
	cursor collision.Point
	hover  *collision.Target
	// overlaps counts the other images whose boxes meet the hovered one.
	overlaps int
	frames   int
}

// New builds a viewer for style from cfg.
func New(cfg *config.Config, style coaster.Style, spriteDir string) (*Viewer, error) {
	pages, err := buildPages(cfg)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("style %s has no pieces", style.Name)
	}
	return &Viewer{
		cfg:         cfg,
		style:       style,
		ride:        ride.New(style.Name, cfg.Paint.Colours),
		pages:       pages,
		showBoxes:   true,
		showSprites: cfg.Viewer.ShowLabels,
		components:  threading.NewComponents(cfg),
		sprites:     graphics.NewSpriteManager(spriteDir),
		picker:      collision.NewPicker(),
		dirty:       true,
	}, nil
}

// Close stops the viewer's workers.
func (v *Viewer) Close() {
	v.components.Shutdown()
}

func (v *Viewer) currentPage() page {
	return v.pages[v.pageIndex]
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.sidebarTab = (v.sidebarTab + 1) % 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		v.showBoxes = !v.showBoxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		v.showSprites = !v.showSprites
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.rotation = (v.rotation + 1) & 3
		v.dirty = true
	}

	step := 0
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight), inpututil.IsKeyJustPressed(ebiten.KeyD):
		step = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft), inpututil.IsKeyJustPressed(ebiten.KeyA):
		step = -1
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		step = 10
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		step = -10
	}
	if step != 0 {
		v.pageIndex = (v.pageIndex + step%len(v.pages) + len(v.pages)) % len(v.pages)
		v.dirty = true
	}

	cx, cy := ebiten.CursorPosition()
	v.cursor = collision.Point{X: float64(cx), Y: float64(cy)}

	if v.dirty {
		v.repaint(context.Background())
	}

	v.frames++
	if v.frames%alertInterval == 0 {
		v.components.SyncMetrics()
		for _, alert := range v.components.PerformanceMonitor.CheckPerformanceAlerts() {
			paint.Logger().Warn(alert.Message, "type", alert.Type, "value", alert.Value)
		}
	}
	return nil
}

// tileKeys turns the tiles of the current page into cache keys. Positions
// are world units; the viewport rotation turns each piece with it.
func (v *Viewer) tileKeys() []rendering.TileKey {
	p := v.currentPage()
	keys := make([]rendering.TileKey, len(p.Tiles))
	for i, tile := range p.Tiles {
		keys[i] = rendering.TileKey{
			Ride:     v.style.Name,
			Type:     tile.Type,
			Dir:      (tile.Dir + track.Direction(v.rotation)) & 3,
			Seq:      tile.Seq,
			Height:   tile.Height,
			Chain:    tile.Chain,
			Rotation: v.rotation,
			Position: paint.CoordsXY{X: tile.Position.X * paint.TileSize, Y: tile.Position.Y * paint.TileSize},
		}
	}
	return keys
}

func (v *Viewer) paintKey(key rendering.TileKey) []paint.Call {
	return v.style.Paint(v.ride, coaster.Tile{
		Type:     key.Type,
		Dir:      key.Dir,
		Seq:      key.Seq,
		Height:   key.Height,
		Position: key.Position,
		Rotation: key.Rotation,
		Chain:    key.Chain,
	})
}

func (v *Viewer) repaint(ctx context.Context) {
	timer := v.components.PerformanceMonitor.StartPaint()
	v.painted = v.components.Painter.PaintTiles(ctx, v.tileKeys(), v.paintKey)
	calls := 0
	for _, pt := range v.painted {
		calls += len(pt.Calls)
	}
	timer.EndPaint(len(v.painted), calls)
	v.components.SyncMetrics()
	v.hover = nil
	v.dirty = false
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	frameTimer := v.components.PerformanceMonitor.StartFrame()
	defer frameTimer.EndFrame()

	screen.Fill(backgroundColor)

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2
	sidebarX := padding + mapAreaW + padding

	v.drawMapPanel(screen, padding, padding, mapAreaW, mapAreaH)
	v.drawSidebar(screen, sidebarX, padding, sidebarWidth, mapAreaH)
}

func (v *Viewer) Layout(_, _ int) (int, int) {
	return v.cfg.GetScreenWidth(), v.cfg.GetScreenHeight()
}

// projector fits the current page into the map panel.
func (v *Viewer) projector(x, y, w, h int) Projector {
	size := float64(v.currentPage().Size * paint.TileSize)
	scale := v.cfg.GetHeightScale()
	if size > 0 {
		scale = min(scale, float64(w)/(2*size), float64(h)/(size+float64(v.cfg.GetPaintHeight())*2))
	}
	return Projector{
		Scale:   scale,
		OriginX: float64(x) + float64(w)/2,
		OriginY: float64(y) + float64(v.cfg.GetPaintHeight())*scale*2 + padding*2,
	}
}

func (v *Viewer) drawMapPanel(screen *ebiten.Image, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, panelColor)
	drawRectBorder(screen, x, y, w, h, 2, borderColor)

	p := v.currentPage()
	proj := v.projector(x, y, w, h)
	batch := v.components.Sprites

	v.picker.Clear()
	for i, pt := range v.painted {
		base := v.tileBase(pt)
		strokeDiamond(screen, proj.TileCorners(base, 0), groundColor)

		for j, c := range pt.Calls {
			switch {
			case c.Draw != nil:
				edges := proj.BoxEdges(base, c.Draw.BoundBox)
				depth := Depth(base, c.Draw.BoundBox)
				v.picker.Register(collision.Target{BoundingBox: ScreenBox(edges), Depth: depth, Tile: i, Call: j})
				if v.showBoxes {
					clr := graphics.PlaceholderColor(c.Draw.Image)
					for _, e := range edges {
						strokeSegment(screen, e[0], e[1], 1, clr)
					}
				}
				if v.showSprites {
					at := proj.Project(float64(base.X+c.Draw.Offset.X), float64(base.Y+c.Draw.Offset.Y), float64(c.Draw.Offset.Z))
					batch.Add(rendering.SpriteJob{
						Image: v.sprites.GetSprite(c.Draw.Image),
						X:     at.X,
						Y:     at.Y,
						Scale: min(1, proj.Scale),
						Depth: depth,
					})
				}
			case c.Kind == paint.CallTunnelLeft:
				mid := proj.Project(float64(base.X)+paint.TileSize/2, float64(base.Y+paint.TileSize), tunnelZ(c.Tunnel))
				drawMarker(screen, mid, 4, tunnelColor)
			case c.Kind == paint.CallTunnelRight:
				mid := proj.Project(float64(base.X+paint.TileSize), float64(base.Y)+paint.TileSize/2, tunnelZ(c.Tunnel))
				drawMarker(screen, mid, 4, tunnelColor)
			}
		}
	}
	batch.RenderAll(screen)

	v.hover = nil
	if t, ok := v.picker.Pick(v.cursor); ok {
		v.hover = &t
		v.overlaps = len(v.picker.Overlapping(t.BoundingBox)) - 1
		pt := v.painted[t.Tile]
		for _, e := range proj.BoxEdges(v.tileBase(pt), pt.Calls[t.Call].Draw.BoundBox) {
			strokeSegment(screen, e[0], e[1], 2, hoverColor)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s (%d/%d)", p.Name, v.pageIndex+1, len(v.pages)), x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Left/Right to switch pieces, R to rotate, Esc to quit", x+12, y+24)
}

// tileBase is the world position of a painted tile's north corner in the rotated view.
func (v *Viewer) tileBase(pt rendering.PaintedTile) paint.CoordsXY {
	tx, ty := rotateXY(pt.Key.Position.X/paint.TileSize, pt.Key.Position.Y/paint.TileSize, v.rotation, v.currentPage().Size)
	return paint.CoordsXY{X: tx * paint.TileSize, Y: ty * paint.TileSize}
}

func (v *Viewer) drawSidebar(screen *ebiten.Image, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, borderColor)

	tabHeight := 24
	v.drawSidebarTabs(screen, x, y, w, tabHeight)
	row := y + tabHeight + 12

	lines := v.infoLines()
	if v.sidebarTab == tabLegend {
		lines = legendLines()
	}
	shown := mathutil.IntClamp((h-tabHeight-12)/lineHeight, 0, len(lines))
	for _, line := range lines[:shown] {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += lineHeight
	}
}

func (v *Viewer) drawSidebarTabs(screen *ebiten.Image, x, y, w, h int) {
	tabW := w / 2
	infoColor := color.RGBA{40, 40, 55, 255}
	legendColor := infoColor
	if v.sidebarTab == tabInfo {
		infoColor = color.RGBA{70, 70, 95, 255}
	} else {
		legendColor = color.RGBA{70, 70, 95, 255}
	}
	drawFilledRect(screen, x, y, tabW, h, infoColor)
	drawFilledRect(screen, x+tabW, y, w-tabW, h, legendColor)
	drawRectBorder(screen, x, y, w, h, 2, borderColor)
	ebitenutil.DebugPrintAt(screen, "Info (Tab)", x+10, y+6)
	ebitenutil.DebugPrintAt(screen, "Legend (Tab)", x+tabW+10, y+6)
}

func (v *Viewer) infoLines() []string {
	counts := countCalls(v.painted)
	metrics := v.components.PerformanceMonitor.GetCurrentMetrics()
	lines := []string{
		fmt.Sprintf("Ride: %s (%s supports)", v.style.Name, v.style.Supports),
		fmt.Sprintf("Piece: %s", v.currentPage().Name),
		fmt.Sprintf("Rotation: %d", v.rotation),
		fmt.Sprintf("Tiles: %d", len(v.painted)),
		fmt.Sprintf("Images: %d", counts[paint.CallImage]),
		fmt.Sprintf("Tunnels: %d", counts[paint.CallTunnelLeft]+counts[paint.CallTunnelRight]),
		fmt.Sprintf("Segment heights: %d", counts[paint.CallSegmentHeight]),
		fmt.Sprintf("General heights: %d", counts[paint.CallGeneralHeight]),
		"",
		fmt.Sprintf("FPS: %.1f", metrics.FramesPerSecond),
		fmt.Sprintf("Paint: %s", metrics.PaintTime),
		fmt.Sprintf("Cache hit rate: %.0f%%", metrics.CacheHitRate*100),
		fmt.Sprintf("Workers: %d", metrics.Workers),
	}
	return append(lines, hoverLines(v.painted, v.hover, v.overlaps)...)
}

// hoverLines describes the image under the cursor and how many other images
// it overlaps on screen.
func hoverLines(tiles []rendering.PaintedTile, hover *collision.Target, overlaps int) []string {
	if hover == nil || hover.Tile >= len(tiles) || hover.Call >= len(tiles[hover.Tile].Calls) {
		return nil
	}
	pt := tiles[hover.Tile]
	d := pt.Calls[hover.Call].Draw
	if d == nil {
		return nil
	}
	return []string{
		"",
		fmt.Sprintf("Hover: %s seq %d dir %d", pt.Key.Type, pt.Key.Seq, pt.Key.Dir),
		fmt.Sprintf("Image: %d (call %d)", d.Image.Index, hover.Call),
		fmt.Sprintf("Offset: %d,%d,%d", d.Offset.X, d.Offset.Y, d.Offset.Z),
		fmt.Sprintf("Box: %d,%d,%d +%d,%d,%d",
			d.BoundBox.Offset.X, d.BoundBox.Offset.Y, d.BoundBox.Offset.Z,
			d.BoundBox.Length.X, d.BoundBox.Length.Y, d.BoundBox.Length.Z),
		fmt.Sprintf("Overlaps: %d images", overlaps),
	}
}

func legendLines() []string {
	return []string{
		"Keys",
		"----",
		"Left/Right, A/D: previous/next piece",
		"PageUp/PageDown: skip 10 pieces",
		"R: rotate view",
		"B: toggle bounding boxes",
		"L: toggle sprite labels",
		"Tab: switch sidebar tab",
		"",
		"Markers",
		"-------",
		"Boxes: image bounds, coloured by remap",
		"Yellow squares: tunnels",
		"Grey diamonds: painted tiles",
		"White box: image under the cursor",
	}
}

// tunnelZ is the world height of a tunnel, which is stored in steps of 16.
func tunnelZ(t *paint.Tunnel) float64 {
	return float64(t.Height) * 16
}

// countCalls tallies the recorded calls of all tiles by kind.
func countCalls(tiles []rendering.PaintedTile) map[paint.CallKind]int {
	counts := make(map[paint.CallKind]int)
	for _, pt := range tiles {
		for _, c := range pt.Calls {
			counts[c.Kind]++
		}
	}
	return counts
}

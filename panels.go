package main

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"

	"scene-viewer/canvas"
	"scene-viewer/depth"
	"scene-viewer/layout"
	"scene-viewer/ui"
)

// PanelsView browses camera image folders and shows the selected image next
// to its detection and depth overlays.
type PanelsView struct {
	game    *Game
	cameras []CameraDir
	tabs    []*ui.Button
	active  int
	files   []string
	scroll  int

	selected  string
	original  *canvas.Fitted
	detection *canvas.Fitted
	depthMap  *canvas.Fitted
	distance  float64 // metres under the depth map centre, 0 if unknown
}

func NewPanelsView(g *Game, cameras []CameraDir) *PanelsView {
	p := &PanelsView{game: g, cameras: cameras}
	for i, c := range cameras {
		p.tabs = append(p.tabs, &ui.Button{
			Label:   c.Name,
			W:       TabWidth,
			H:       TabHeight,
			OnClick: func() { p.SetTab(i) },
		})
	}
	return p
}

func (p *PanelsView) panels() layout.Panels {
	return layout.AnalyzerPanels(p.game.getScreenSize())
}

// listRect is the scrolling region of the image list.
func (p *PanelsView) listRect() layout.Rect {
	list := p.panels().List
	return layout.Rect{
		X: list.X + ListInsetX,
		Y: list.Y + ListTop,
		W: list.W - 2*ListInsetX,
		H: list.H - ListTop - ListBottom,
	}
}

// rowRect is the on-screen rectangle of list row i at the current scroll.
func (p *PanelsView) rowRect(i int) layout.Rect {
	lr := p.listRect()
	return layout.Rect{X: lr.X + RowIndent, Y: lr.Y + i*RowStep - p.scroll, W: RowWidth, H: RowHeight}
}

// rowAt returns the list row under the cursor, or -1.
func (p *PanelsView) rowAt(mx, my int) int {
	if !p.listRect().Contains(mx, my) {
		return -1
	}
	for i := range p.files {
		if p.rowRect(i).Contains(mx, my) {
			return i
		}
	}
	return -1
}

func (p *PanelsView) maxScroll() int {
	return layout.MaxScroll(len(p.files), RowStep, p.listRect().H)
}

func (p *PanelsView) Scroll(dy int) {
	p.scroll = layout.ClampScroll(p.scroll+dy, p.maxScroll())
}

// SetTab switches camera, wrapping around. The folder is rescanned only
// while the panels are showing.
func (p *PanelsView) SetTab(i int) {
	if len(p.cameras) == 0 {
		p.active = 0
		return
	}
	i %= len(p.cameras)
	if i < 0 {
		i += len(p.cameras)
	}
	p.active = i
	if p.game.mode == ModePanels {
		p.Refresh()
	}
}

// Refresh rescans the active camera folder.
func (p *PanelsView) Refresh() {
	p.scroll = 0
	p.files = nil
	if len(p.cameras) == 0 {
		p.game.ui.Status.SetError("No camera folders configured.")
		return
	}
	cam := p.cameras[p.active]
	files, err := ListImages(cam.Dir)
	if err != nil {
		log.WithError(err).WithField("camera", cam.Name).Warn("cannot list images")
		p.game.ui.Status.SetError(fmt.Sprintf("Error scanning %s: %v", cam.Name, err))
		return
	}
	p.files = files
	p.game.ui.Status.Set(fmt.Sprintf("Found %d images in %s.", len(files), cam.Name))
}

// Select loads an image and its overlays.
func (p *PanelsView) Select(path string) {
	name := filepath.Base(path)
	img, err := LoadImage(path)
	if err != nil {
		log.WithError(err).Warn("cannot load image")
		p.game.ui.Status.SetError(fmt.Sprintf("Error loading %s: %v", name, err))
		return
	}
	p.selected = path
	p.original = canvas.NewFitted(img)
	p.detection = p.loadCompanion(path, DetectionSuffix)
	p.depthMap = p.loadCompanion(path, DepthSuffix)

	p.distance = 0
	if p.depthMap != nil {
		if d, err := depth.RegionDistance(p.depthMap.Source, centreRegion(p.depthMap.Source.Bounds()), p.game.settings.DepthScale); err == nil {
			p.distance = d
		}
	}
	p.game.ui.Status.Set("Processed " + name)
}

func (p *PanelsView) loadCompanion(path, suffix string) *canvas.Fitted {
	cp := CompanionPath(path, suffix)
	if cp == "" {
		return nil
	}
	img, err := LoadImage(cp)
	if err != nil {
		log.WithError(err).WithField("file", cp).Warn("cannot load overlay")
		return nil
	}
	return canvas.NewFitted(img)
}

// centreRegion is the middle 1/DepthSample of b on each axis.
func centreRegion(b image.Rectangle) image.Rectangle {
	w, h := b.Dx()/DepthSample, b.Dy()/DepthSample
	c := b.Min.Add(image.Pt(b.Dx()/2, b.Dy()/2))
	return image.Rect(c.X-w/2, c.Y-h/2, c.X+w/2+1, c.Y+h/2+1)
}

func (p *PanelsView) placeTabs() {
	list := p.panels().List
	for i, t := range p.tabs {
		t.X = float32(list.X + ListInsetX + i*(TabWidth+TabGap))
		t.Y = float32(list.Y)
	}
}

func (p *PanelsView) Update() {
	p.placeTabs()
	mx, my := ebiten.CursorPosition()
	for _, t := range p.tabs {
		t.Hovered = t.IsMouseOver(mx, my)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	for _, t := range p.tabs {
		if t.IsMouseOver(mx, my) {
			t.OnClick()
			return
		}
	}
	if i := p.rowAt(mx, my); i >= 0 {
		p.Select(p.files[i])
	}
}

func (p *PanelsView) Draw(screen *ebiten.Image) {
	pl := p.panels()
	face := p.game.getFontFace()

	fillRect(screen, pl.List, ColorPanel)
	p.placeTabs()
	for _, t := range p.tabs {
		t.Draw(screen, p.game.getFontFace, DrawTextLines)
	}
	p.drawList(screen)

	depthTitle := "Depth Map"
	if p.distance > 0 {
		depthTitle = fmt.Sprintf("Depth Map (%.2f m at centre)", p.distance)
	}
	p.drawPanel(screen, pl.Original, "Original Image", p.original)
	p.drawPanel(screen, pl.Detection, "Detections", p.detection)
	p.drawPanel(screen, pl.Depth, depthTitle, p.depthMap)

	if face == nil {
		return
	}
	if p.selected != "" {
		DrawTextLines(screen, face, filepath.Base(p.selected), pl.Original.X+10, pl.Original.Y+pl.Original.H-20, ColorText)
	}
}

func (p *PanelsView) drawList(screen *ebiten.Image) {
	lr := p.listRect()
	clip := screen.SubImage(lr.Bounds()).(*ebiten.Image)
	mx, my := ebiten.CursorPosition()
	hovered := p.rowAt(mx, my)

	for i, f := range p.files {
		r := p.rowRect(i)
		if r.Y+r.H < lr.Y || r.Y > lr.Y+lr.H {
			continue
		}
		clr := ColorRow
		if f == p.selected {
			clr = ColorRowSelected
		} else if i == hovered {
			clr = ColorRowHover
		}
		fillRect(clip, r, clr)
		vector.StrokeRect(clip, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, ColorRowBorder, false)
		DrawTextLines(clip, p.game.getFontFace(), filepath.Base(f), r.X+10, r.Y+8, ColorLabel)
	}

	// Scroll hints
	if max := p.maxScroll(); max > 0 {
		cx := float32(lr.X + lr.W - 20)
		if p.scroll > 0 {
			chevron(screen, cx, float32(lr.Y+5), true)
		}
		if p.scroll < max {
			chevron(screen, cx, float32(lr.Y+lr.H-5), false)
		}
	}
}

func (p *PanelsView) drawPanel(screen *ebiten.Image, panel layout.Rect, title string, img *canvas.Fitted) {
	fillRect(screen, panel, ColorPanel)
	DrawTextLines(screen, p.game.getFontFace(), title, panel.X+10, panel.Y+5, ColorText)
	if img == nil {
		return
	}

	s := p.game.settings.Fit
	margin := layout.Margin{X: layout.ContentInset + s.MarginX, Y: layout.ContentInset + s.MarginY}
	fit, err := layout.Fit(canvas.SizeOf(img.Source), panel.BelowTitle(layout.TitleHeight), margin, s.Policy())
	if err != nil {
		log.WithError(err).WithField("panel", title).Debug("image does not fit")
		return
	}
	canvas.DrawFitted(screen, img.Image(fit), fit)
}

func fillRect(screen *ebiten.Image, r layout.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// chevron draws a small scroll hint pointing up or down.
func chevron(screen *ebiten.Image, cx, y float32, up bool) {
	dy := float32(8)
	if !up {
		dy = -8
	}
	vector.StrokeLine(screen, cx-8, y+dy, cx, y, 2, ColorRowBorder, true)
	vector.StrokeLine(screen, cx, y, cx+8, y+dy, 2, ColorRowBorder, true)
}

package main

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"scene-viewer/canvas"
	"scene-viewer/engine"
	"scene-viewer/input"
	"scene-viewer/layout"
	"scene-viewer/projection"
	"scene-viewer/scene"
	"scene-viewer/ui"
)

type Game struct {
	settings     Settings
	screenWidth  int
	screenHeight int

	params     projection.Params
	showLabels bool
	mode       string

	scenes     []scene.File
	background *canvas.Fitted

	// Sub-systems
	input  *input.InputSystem
	ui     *ui.UISystem
	panels *PanelsView
	face   font.Face

	sliderScaleX, sliderScaleY   *ui.Slider
	sliderOffsetX, sliderOffsetY *ui.Slider

	screenshotRequested bool
}

// NewGame builds the viewer. background may be nil.
func NewGame(s Settings, scenes []scene.File, background image.Image) *Game {
	g := &Game{
		settings:     s,
		screenWidth:  s.WindowWidth,
		screenHeight: s.WindowHeight,
		showLabels:   true,
		mode:         s.Mode,
		scenes:       scenes,
		face:         LoadUIFont(s.Font, 16),
	}
	if background != nil {
		g.background = canvas.NewFitted(background)
	}

	g.input = input.NewInputSystem(g)
	g.ui = ui.NewUISystem(g.getFontFace, g.getScreenSize, DrawTextLines)
	g.ui.Title = ControlsTitle
	g.ui.AddButton(&ui.Button{Label: "Reset", W: 70, H: 30, OnClick: g.ResetView})
	g.ui.AddButton(&ui.Button{Label: "Mode", W: 70, H: 30, OnClick: g.toggleMode})
	g.addSliders()
	g.panels = NewPanelsView(g, s.Cameras)

	g.applyMode()
	g.ResetView()
	return g
}

func (g *Game) addSliders() {
	g.sliderScaleX = &ui.Slider{Label: "Scale X", Min: SliderScaleMin, Max: SliderScaleMax,
		OnChange: func(v float64) { g.params.ScaleX = v }}
	g.sliderScaleY = &ui.Slider{Label: "Scale Y", Min: SliderScaleMin, Max: SliderScaleMax,
		OnChange: func(v float64) { g.params.ScaleY = v }}
	g.sliderOffsetX = &ui.Slider{Label: "X Offset", Min: SliderOffsetMin, Max: SliderOffsetMax,
		OnChange: func(v float64) { g.params.OffsetX = v }}
	g.sliderOffsetY = &ui.Slider{Label: "Y Offset", Min: SliderOffsetMin, Max: SliderOffsetMax,
		OnChange: func(v float64) { g.params.OffsetY = v }}

	for _, s := range []*ui.Slider{g.sliderScaleX, g.sliderScaleY, g.sliderOffsetX, g.sliderOffsetY} {
		g.ui.AddSlider(s)
	}
}

// setParams replaces the view, keeping it inside the slider ranges, and moves
// the sliders to match.
func (g *Game) setParams(p projection.Params) {
	p = p.Clamp()
	p.ScaleX = clampTo(p.ScaleX, SliderScaleMin, SliderScaleMax)
	p.ScaleY = clampTo(p.ScaleY, SliderScaleMin, SliderScaleMax)
	p.OffsetX = clampTo(p.OffsetX, SliderOffsetMin, SliderOffsetMax)
	p.OffsetY = clampTo(p.OffsetY, SliderOffsetMin, SliderOffsetMax)
	g.params = p
	g.sliderScaleX.SetValue(g.params.ScaleX)
	g.sliderScaleY.SetValue(g.params.ScaleY)
	g.sliderOffsetX.SetValue(g.params.OffsetX)
	g.sliderOffsetY.SetValue(g.params.OffsetY)
}

// defaultView resolves the configured reset view: a starlark preset, then a
// fixed default_view, then the world origin centred on the background or, with
// none, the map area.
func (g *Game) defaultView() projection.View {
	if g.settings.ViewPreset != "" {
		v, err := engine.LoadView(g.settings.ViewPreset, g.screenWidth, g.screenHeight)
		if err == nil {
			return v
		}
		log.WithError(err).Warn("view preset failed, using default view")
		g.ui.Status.SetError(err.Error())
	}
	if g.settings.DefaultView != nil {
		return projection.View{Name: "default_view", Params: g.settings.DefaultView.Params()}
	}
	// Offsets are measured from mapOrigin, so centre within the same box.
	w, h := g.mapArea().W, g.mapArea().H
	if fit, ok := g.backgroundFit(); ok {
		w, h = fit.W, fit.H
	}
	return projection.View{
		Name: "centered",
		Params: projection.Params{
			ScaleX:  DefaultScale,
			ScaleY:  DefaultScale,
			OffsetX: float64(w) / 2,
			OffsetY: float64(h) / 2,
		},
	}
}

func clampTo(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func (g *Game) mapArea() layout.Rect {
	return layout.Rect{X: 0, Y: 0, W: g.screenWidth, H: g.ui.ControlTop()}
}

func (g *Game) toggleMode() {
	if g.mode == ModeMap {
		g.mode = ModePanels
	} else {
		g.mode = ModeMap
	}
	g.applyMode()
}

func (g *Game) applyMode() {
	g.ui.ShowControls = g.mode == ModeMap
	if g.mode == ModeMap {
		g.ui.StatusArea = nil
		g.ui.Status.Set(fmt.Sprintf("Showing %d scene files", len(g.scenes)))
	} else {
		g.ui.StatusArea = func() image.Rectangle { return g.panels.panels().Status.Bounds() }
		g.panels.Refresh()
	}
}

func (g *Game) getFontFace() font.Face {
	return g.face
}

func (g *Game) getScreenSize() (int, int) {
	return g.screenWidth, g.screenHeight
}

func (g *Game) Update() error {
	// Delegate to sub-systems
	g.ui.Update()
	g.input.Update()
	if g.mode == ModePanels {
		g.panels.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	if g.mode == ModeMap {
		g.drawMap(screen)
	} else {
		g.panels.Draw(screen)
	}
	g.ui.Draw(screen)
	if log.IsLevelEnabled(log.DebugLevel) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), 10, 10)
	}

	// --- Save Screenshot ---
	if g.screenshotRequested {
		g.screenshotRequested = false
		if err := SaveScreenshot(screen, g.settings.Screenshot); err != nil {
			log.WithError(err).Error("screenshot failed")
			g.ui.Status.SetError(err.Error())
		} else {
			log.WithField("file", g.settings.Screenshot).Info("screenshot saved")
			g.ui.Status.Set("Screenshot saved as " + g.settings.Screenshot)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// --- input.Host ---

func (g *Game) IsMouseOver(mx, my int) bool {
	if g.ui.IsMouseOver(mx, my) {
		return true
	}
	// Panels mode has nothing to pan.
	return g.mode == ModePanels
}

func (g *Game) OverList(mx, my int) bool {
	return g.mode == ModePanels && g.panels.listRect().Contains(mx, my)
}

func (g *Game) ApplyPan(dx, dy float64) {
	if g.mode != ModeMap {
		return
	}
	g.setParams(g.params.Pan(dx, dy))
}

func (g *Game) ApplyZoom(factor, sx, sy float64) {
	if g.mode != ModeMap {
		return
	}
	g.setParams(g.params.ZoomAbout(factor, sx, sy, g.mapOrigin(), SliderScaleMin, SliderScaleMax))
}

func (g *Game) ScrollList(dy int) {
	if g.mode == ModePanels {
		g.panels.Scroll(dy)
	}
}

func (g *Game) ResetView() {
	v := g.defaultView()
	g.setParams(projection.Reset(v))
	log.WithFields(log.Fields{"view": v.Name, "params": fmt.Sprintf("%+v", g.params)}).Debug("view reset")
}

func (g *Game) ToggleLabels() {
	g.showLabels = !g.showLabels
}

func (g *Game) NextTab() {
	if g.mode == ModePanels {
		g.panels.SetTab(g.panels.active + 1)
	}
}

func (g *Game) RequestScreenshot() {
	g.screenshotRequested = true
}

func (g *Game) SaveState() error {
	if err := SaveState(g, g.settings.StateFile); err != nil {
		log.WithError(err).Error("save state failed")
		g.ui.Status.SetError(err.Error())
		return err
	}
	g.ui.Status.Set("State saved to " + g.settings.StateFile)
	return nil
}

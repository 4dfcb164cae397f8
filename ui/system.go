package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Control panel geometry.
const (
	ControlPanelHeight = 200
	SliderLeft         = 50
	SliderWidth        = 300
	SliderColumnGap    = 120
	SliderRowGap       = 60
	StatusBarHeight    = 20
)

type UISystem struct {
	buttons       []*Button
	sliders       []*Slider
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

	// ShowControls draws the slider panel along the bottom.
	ShowControls bool
	Title        string
	Status       *StatusBar

	// StatusArea places the status bar; nil means a full-width strip along the bottom.
	StatusArea func() image.Rectangle
}

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) *UISystem {
	return &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Status:        &StatusBar{},
	}
}

// AddButton adds a button anchored to the top-right corner, right to left.
func (ui *UISystem) AddButton(b *Button) {
	ui.buttons = append(ui.buttons, b)
	ui.updatePositions()
}

// AddSlider adds a slider to the control panel, two per row.
func (ui *UISystem) AddSlider(s *Slider) {
	ui.sliders = append(ui.sliders, s)
	ui.updatePositions()
}

func (ui *UISystem) updatePositions() {
	w, h := ui.getScreenSize()

	x := float32(w) - 10
	for _, b := range ui.buttons {
		x -= b.W
		b.X = x
		b.Y = 10
		x -= 10
	}

	top := float32(h - ControlPanelHeight)
	for i, s := range ui.sliders {
		col, row := i%2, i/2
		s.X = SliderLeft + float32(col)*(SliderWidth+SliderColumnGap)
		s.Y = top + 70 + float32(row)*SliderRowGap
		s.W = SliderWidth
	}
}

// ControlTop is the y where the control panel starts, or the window height when hidden.
func (ui *UISystem) ControlTop() int {
	_, h := ui.getScreenSize()
	if !ui.ShowControls {
		return h - StatusBarHeight
	}
	return h - ControlPanelHeight
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	ui.updatePositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	if ui.ShowControls && my >= ui.ControlTop() {
		return true
	}
	for _, s := range ui.sliders {
		if s.Grabbed() {
			return true
		}
	}
	return false
}

// Update handles clicks and slider drags. It returns true when a slider moved.
func (ui *UISystem) Update() bool {
	ui.updatePositions()
	mx, my := ebiten.CursorPosition()

	for _, b := range ui.buttons {
		b.Hovered = b.IsMouseOver(mx, my)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for _, b := range ui.buttons {
			if b.IsMouseOver(mx, my) {
				if b.OnClick != nil {
					b.OnClick()
				}
				return false
			}
		}
	}

	if !ui.ShowControls {
		return false
	}
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	changed := false
	for _, s := range ui.sliders {
		if s.Update(mx, my, pressed, justPressed) {
			changed = true
		}
	}
	return changed
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.updatePositions()
	w, h := ui.getScreenSize()

	if ui.ShowControls {
		top := float32(h - ControlPanelHeight)
		vector.DrawFilledRect(screen, 0, top, float32(w), ControlPanelHeight, color.RGBA{40, 40, 40, 255}, false)
		if face := ui.face(); face != nil && ui.Title != "" {
			ui.drawText(screen, face, ui.Title, SliderLeft, int(top)+10, color.RGBA{200, 200, 200, 255})
		}
		for _, s := range ui.sliders {
			s.Draw(screen, ui.getFontFace, ui.drawText)
		}
	}

	for _, b := range ui.buttons {
		b.Draw(screen, ui.getFontFace, ui.drawText)
	}
	r := ui.statusRect(w, h)
	ui.Status.Draw(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), ui.getFontFace, ui.drawText)
}

func (ui *UISystem) statusRect(w, h int) image.Rectangle {
	if ui.StatusArea != nil {
		return ui.StatusArea()
	}
	return image.Rect(0, h-StatusBarHeight, w, h)
}

func (ui *UISystem) face() font.Face {
	if ui.getFontFace == nil || ui.drawText == nil {
		return nil
	}
	return ui.getFontFace()
}

package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ZoomStep is the scale change per wheel notch.
const ZoomStep = 0.1

// ScrollStep is the list scroll distance per wheel notch or key press.
const ScrollStep = 20

// Host defines the callbacks the input system needs from the viewer.
type Host interface {
	IsMouseOver(mx, my int) bool
	OverList(mx, my int) bool
	ApplyPan(dx, dy float64)
	ApplyZoom(factor, sx, sy float64)
	ScrollList(dy int)
	ResetView()
	ToggleLabels()
	NextTab()
	RequestScreenshot()
	SaveState() error
}

type InputSystem struct {
	host Host
	pan  Panner
}

func NewInputSystem(h Host) *InputSystem {
	return &InputSystem{host: h}
}

func (is *InputSystem) Update() {
	mx, my := ebiten.CursorPosition()
	overUI := is.host.IsMouseOver(mx, my)

	is.handleControlKeys()
	is.handleWheel(mx, my)
	is.handlePanning(mx, my, overUI)
}

func (is *InputSystem) handleControlKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		is.host.RequestScreenshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		is.host.ToggleLabels()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		is.host.ResetView()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		is.host.NextTab()
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		_ = is.host.SaveState()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		is.host.ScrollList(ScrollStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		is.host.ScrollList(-ScrollStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		is.host.ScrollList(10 * ScrollStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		is.host.ScrollList(-10 * ScrollStep)
	}
}

func (is *InputSystem) handleWheel(mx, my int) {
	_, dy := ebiten.Wheel()

	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		dy += 0.1
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		dy -= 0.1
	}
	if dy == 0 {
		return
	}

	if is.host.OverList(mx, my) {
		is.host.ScrollList(int(-dy * ScrollStep))
		return
	}
	is.host.ApplyZoom(ZoomFactor(dy), float64(mx), float64(my))
}

// ZoomFactor converts wheel notches into a multiplicative scale change.
func ZoomFactor(notches float64) float64 {
	return math.Pow(1+ZoomStep, notches)
}

func (is *InputSystem) handlePanning(mx, my int, overUI bool) {
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
		(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !overUI)

	if dx, dy, ok := is.pan.Step(mx, my, held); ok {
		is.host.ApplyPan(dx, dy)
	}
}

// Panner turns a held button and cursor positions into drag deltas.
type Panner struct {
	active     bool
	lastMouseX int
	lastMouseY int
}

// Step records the cursor for this frame and returns the movement since the
// previous frame while the button stays held.
func (p *Panner) Step(mx, my int, held bool) (dx, dy float64, moved bool) {
	if !held {
		p.active = false
		return 0, 0, false
	}
	if !p.active {
		p.active = true
		p.lastMouseX, p.lastMouseY = mx, my
		return 0, 0, false
	}

	dx = float64(mx - p.lastMouseX)
	dy = float64(my - p.lastMouseY)
	p.lastMouseX, p.lastMouseY = mx, my
	return dx, dy, dx != 0 || dy != 0
}

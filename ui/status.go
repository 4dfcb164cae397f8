package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// StatusBar shows one line of status along the bottom of the window.
// Errors are drawn in amber until the next message replaces them.
type StatusBar struct {
	Message string
	IsError bool
}

func (s *StatusBar) Set(msg string) {
	s.Message = msg
	s.IsError = false
}

func (s *StatusBar) SetError(msg string) {
	s.Message = msg
	s.IsError = true
}

func (s *StatusBar) Draw(screen *ebiten.Image, x, y, w, h float32, getFace func() font.Face, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) {
	if s == nil {
		return
	}
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{60, 60, 60, 255}, false)
	if s.Message == "" || getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	clr := color.Color(color.RGBA{220, 220, 220, 255})
	if s.IsError {
		clr = color.RGBA{255, 200, 50, 255}
	}
	drawText(screen, face, s.Message, int(x)+10, int(y)+2, clr)
}

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const KnobRadius = 10

// Slider edits a value in [Min, Max] by dragging a knob along a horizontal track.
type Slider struct {
	Label    string
	Min, Max float64
	Value    float64
	X, Y     float32 // left end of the track
	W        float32
	OnChange func(v float64)

	grabbed bool
}

// KnobX is the screen x of the knob for the current value.
func (s *Slider) KnobX() float32 {
	span := s.Max - s.Min
	if span == 0 {
		return s.X
	}
	return s.X + float32((s.Value-s.Min)/span)*s.W
}

// ValueAt maps a screen x onto the slider range, clamped to the track ends.
func (s *Slider) ValueAt(mx float32) float64 {
	if s.W <= 0 {
		return s.Min
	}
	if mx < s.X {
		mx = s.X
	} else if mx > s.X+s.W {
		mx = s.X + s.W
	}
	return s.Min + float64((mx-s.X)/s.W)*(s.Max-s.Min)
}

// SetValue sets the value, clamped to the range, without firing OnChange.
func (s *Slider) SetValue(v float64) {
	if v < s.Min {
		v = s.Min
	} else if v > s.Max {
		v = s.Max
	}
	s.Value = v
}

// IsMouseOver reports whether (mx, my) is on the track or knob.
func (s *Slider) IsMouseOver(mx, my int) bool {
	return float32(mx) >= s.X-KnobRadius && float32(mx) <= s.X+s.W+KnobRadius &&
		float32(my) >= s.Y-KnobRadius && float32(my) <= s.Y+KnobRadius
}

// Grabbed reports whether the knob is being dragged.
func (s *Slider) Grabbed() bool {
	return s.grabbed
}

// Update feeds the mouse state; it returns true when the value changed.
func (s *Slider) Update(mx, my int, pressed, justPressed bool) bool {
	if justPressed && s.IsMouseOver(mx, my) {
		s.grabbed = true
	}
	if !pressed {
		s.grabbed = false
		return false
	}
	if !s.grabbed {
		return false
	}

	v := s.ValueAt(float32(mx))
	if v == s.Value {
		return false
	}
	s.Value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
	return true
}

func (s *Slider) Draw(screen *ebiten.Image, getFace func() font.Face, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) {
	trackColor := color.RGBA{200, 200, 200, 255}
	vector.StrokeLine(screen, s.X, s.Y, s.X+s.W, s.Y, 3, trackColor, false)
	vector.DrawFilledCircle(screen, s.KnobX(), s.Y, KnobRadius, trackColor, true)

	if getFace == nil || drawText == nil {
		return
	}
	if face := getFace(); face != nil {
		drawText(screen, face, fmt.Sprintf("%s: %.2f", s.Label, s.Value), int(s.X), int(s.Y)-30, trackColor)
	}
}

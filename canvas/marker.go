package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"scene-viewer/projection"
)

// Marker drawing sizes in pixels.
const (
	MarkerRadius  = 6
	HeadingLength = 24
	WingLength    = 8
	LabelOffsetX  = 8
	LabelOffsetY  = -8
)

// DrawMarker draws an entity dot and, when the point has one, its heading arrow.
func DrawMarker(screen *ebiten.Image, p projection.WorldPoint, at projection.ScreenPoint, clr color.Color) {
	if p.Heading != nil {
		DrawHeading(screen, at, *p.Heading, clr)
	}
	vector.DrawFilledCircle(screen, float32(at.X), float32(at.Y), MarkerRadius, clr, true)
}

// DrawHeading draws a direction line from at with an arrowhead at its tip.
func DrawHeading(screen *ebiten.Image, at projection.ScreenPoint, headingDeg float64, clr color.Color) {
	end := projection.HeadingEndpoint(at, headingDeg, HeadingLength)
	left, right := projection.ArrowWings(end, headingDeg, WingLength)

	line(screen, at, end, clr)
	line(screen, end, left, clr)
	line(screen, end, right, clr)
}

// LabelPosition is where a marker's text label starts.
func LabelPosition(at projection.ScreenPoint) (int, int) {
	return at.X + LabelOffsetX, at.Y + LabelOffsetY
}

func line(screen *ebiten.Image, a, b projection.ScreenPoint, clr color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, clr, true)
}

package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"scene-viewer/layout"
	"scene-viewer/projection"
)

// maxGridLines bounds the grid when zoomed far out.
const maxGridLines = 400

// DrawBackgroundGrid renders world grid lines every gridSize units inside the
// viewport, plus a cross at the world origin.
func DrawBackgroundGrid(screen *ebiten.Image, params projection.Params, viewport layout.Rect, gridSize float64, gridColor, originCross color.Color) {
	params = params.Clamp()
	origin := projection.Origin{X: float64(viewport.X), Y: float64(viewport.Y)}
	vx0, vy0 := float32(viewport.X), float32(viewport.Y)
	vx1, vy1 := float32(viewport.X+viewport.W), float32(viewport.Y+viewport.H)

	// Screen y grows down, world y grows up: top-left is (min x, max y).
	left, top := projection.ToWorld(float64(viewport.X), float64(viewport.Y), params, origin)
	right, bottom := projection.ToWorld(float64(viewport.X+viewport.W), float64(viewport.Y+viewport.H), params, origin)

	if (right-left)/gridSize < maxGridLines {
		for wx := math.Floor(left/gridSize) * gridSize; wx <= right; wx += gridSize {
			sx, _ := projection.ToScreen(wx, 0, params, origin)
			vector.StrokeLine(screen, float32(sx), vy0, float32(sx), vy1, 1, gridColor, false)
		}
	}
	if (top-bottom)/gridSize < maxGridLines {
		for wy := math.Floor(bottom/gridSize) * gridSize; wy <= top; wy += gridSize {
			_, sy := projection.ToScreen(0, wy, params, origin)
			vector.StrokeLine(screen, vx0, float32(sy), vx1, float32(sy), 1, gridColor, false)
		}
	}

	ox, oy := projection.ToScreen(0, 0, params, origin)
	vector.StrokeLine(screen, float32(ox-15), float32(oy), float32(ox+15), float32(oy), 2, originCross, false)
	vector.StrokeLine(screen, float32(ox), float32(oy-15), float32(ox), float32(oy+15), 2, originCross, false)
}

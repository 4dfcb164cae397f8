package projection

import (
	"math"

	"github.com/pkg/errors"
)

// MinScale is the smallest scale a Params is clamped to.
const MinScale = 1e-6

// ErrInvalidScale is returned by Validate for zero, negative or non-finite scales.
var ErrInvalidScale = errors.New("projection: scale must be positive and finite")

// Params maps world units to pixels. The host owns and mutates it.
type Params struct {
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
}

// WorldPoint is an entity position in scene coordinates.
// Heading is in degrees; nil means no heading indicator is drawn.
type WorldPoint struct {
	ID      string
	X, Y    float64
	Heading *float64
}

// ScreenPoint is a pixel position.
type ScreenPoint struct {
	X, Y int
}

// Origin is the top-left pixel of the viewport the points are drawn into.
type Origin struct {
	X, Y float64
}

// Validate reports whether both scales are usable.
func (p Params) Validate() error {
	if !validScale(p.ScaleX) || !validScale(p.ScaleY) {
		return errors.Wrapf(ErrInvalidScale, "scale (%g, %g)", p.ScaleX, p.ScaleY)
	}
	return nil
}

// Clamp returns p with unusable scales raised to MinScale.
func (p Params) Clamp() Params {
	if !validScale(p.ScaleX) {
		p.ScaleX = MinScale
	}
	if !validScale(p.ScaleY) {
		p.ScaleY = MinScale
	}
	return p
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}

// Project maps a world point into the viewport. World Y grows upwards on screen.
func Project(p WorldPoint, params Params, origin Origin) ScreenPoint {
	sx, sy := ToScreen(p.X, p.Y, params, origin)
	return ScreenPoint{X: int(math.Round(sx)), Y: int(math.Round(sy))}
}

// ToScreen is Project without rounding, for drawing lines and grids.
func ToScreen(wx, wy float64, params Params, origin Origin) (float64, float64) {
	sx := origin.X + params.OffsetX + wx*params.ScaleX
	sy := origin.Y + params.OffsetY - wy*params.ScaleY
	return sx, sy
}

// ToWorld inverts ToScreen. params must be clamped.
func ToWorld(sx, sy float64, params Params, origin Origin) (float64, float64) {
	wx := (sx - origin.X - params.OffsetX) / params.ScaleX
	wy := (origin.Y + params.OffsetY - sy) / params.ScaleY
	return wx, wy
}

// Pan shifts the view by a drag delta in pixels.
func (p Params) Pan(dx, dy float64) Params {
	p.OffsetX += dx
	p.OffsetY += dy
	return p
}

// ZoomAbout multiplies both scales by factor while keeping the world point
// under the screen position (sx, sy) fixed.
func (p Params) ZoomAbout(factor, sx, sy float64, origin Origin, minScale, maxScale float64) Params {
	p = p.Clamp()
	wx, wy := ToWorld(sx, sy, p, origin)

	p.ScaleX = clampRange(p.ScaleX*factor, minScale, maxScale)
	p.ScaleY = clampRange(p.ScaleY*factor, minScale, maxScale)

	p.OffsetX = sx - origin.X - wx*p.ScaleX
	p.OffsetY = sy - origin.Y + wy*p.ScaleY
	return p
}

func clampRange(v, lo, hi float64) float64 {
	if lo > 0 && v < lo {
		return lo
	}
	if hi > 0 && v > hi {
		return hi
	}
	return v
}

package layout

import (
	"image"
	"math"

	"github.com/pkg/errors"
)

var (
	ErrInvalidSourceSize = errors.New("layout: source size must be positive")
	ErrDegenerateTarget  = errors.New("layout: target too small for margin")
)

// Size is a raster size in pixels.
type Size struct {
	W, H int
}

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Margin is reserved on both sides of each axis before fitting.
type Margin struct {
	X, Y int
}

// FitResult is where and how large to draw a raster.
type FitResult struct {
	X, Y, W, H int
	Scale      float64
}

// Policy controls whether Fit may scale a raster above its native size.
type Policy struct {
	AllowUpscale bool
}

// DefaultPolicy fills the available space, upscaling small rasters.
var DefaultPolicy = Policy{AllowUpscale: true}

// Fit computes the largest aspect-preserving size of src inside target
// (less margin) and the top-left position that centers it.
func Fit(src Size, target Rect, margin Margin, policy Policy) (FitResult, error) {
	if src.W <= 0 || src.H <= 0 {
		return FitResult{}, errors.Wrapf(ErrInvalidSourceSize, "%dx%d", src.W, src.H)
	}
	contentW := target.W - 2*margin.X
	contentH := target.H - 2*margin.Y
	if contentW <= 0 || contentH <= 0 {
		return FitResult{}, errors.Wrapf(ErrDegenerateTarget, "content %dx%d", contentW, contentH)
	}

	scale := math.Min(float64(contentW)/float64(src.W), float64(contentH)/float64(src.H))
	if !policy.AllowUpscale && scale > 1 {
		scale = 1
	}

	w := int(math.Floor(float64(src.W) * scale))
	h := int(math.Floor(float64(src.H) * scale))
	return FitResult{
		X:     target.X + margin.X + (contentW-w)/2,
		Y:     target.Y + margin.Y + (contentH-h)/2,
		W:     w,
		H:     h,
		Scale: scale,
	}, nil
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bounds converts r to an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

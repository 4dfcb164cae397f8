package canvas

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"

	"scene-viewer/layout"
)

// SizeOf returns the pixel size of img.
func SizeOf(img image.Image) layout.Size {
	b := img.Bounds()
	return layout.Size{W: b.Dx(), H: b.Dy()}
}

// ScaleToFit resamples img to the fitted size. Used when the panel size
// changes so the GPU blit draws at native resolution.
func ScaleToFit(img image.Image, fit layout.FitResult) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, fit.W, fit.H))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// DrawFitted draws img so that it covers the fitted rectangle.
func DrawFitted(screen, img *ebiten.Image, fit layout.FitResult) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(fit.W)/float64(b.Dx()), float64(fit.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(fit.X), float64(fit.Y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// Fitted caches a source image together with a copy resampled for the last fit.
type Fitted struct {
	Source image.Image

	fit    layout.FitResult
	scaled *ebiten.Image
}

func NewFitted(src image.Image) *Fitted {
	return &Fitted{Source: src}
}

// Image returns an ebiten image sized for fit, resampling only when the fit changed.
func (f *Fitted) Image(fit layout.FitResult) *ebiten.Image {
	if fit.W <= 0 || fit.H <= 0 {
		return nil
	}
	if f.scaled != nil && f.fit.W == fit.W && f.fit.H == fit.H {
		return f.scaled
	}
	if f.scaled != nil {
		f.scaled.Deallocate()
	}
	f.fit = fit
	f.scaled = ebiten.NewImageFromImage(ScaleToFit(f.Source, fit))
	return f.scaled
}

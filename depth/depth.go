// Package depth turns a depth map region into an approximate distance.
package depth

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// DefaultScale converts a mean 8-bit depth intensity into metres for the demo scenes.
const DefaultScale = 0.05

// ErrEmptyRegion is returned when the region does not overlap the image.
var ErrEmptyRegion = errors.New("depth: region is empty")

// RegionMean averages the gray intensity of img inside r, clipped to the image bounds.
// 16-bit maps keep their full range; everything else is read as 8-bit gray.
func RegionMean(img image.Image, r image.Rectangle) (float64, error) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return 0, ErrEmptyRegion
	}

	values := make([]float64, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			values = append(values, intensity(img, x, y))
		}
	}
	return stat.Mean(values, nil), nil
}

func intensity(img image.Image, x, y int) float64 {
	switch m := img.(type) {
	case *image.Gray:
		return float64(m.GrayAt(x, y).Y)
	case *image.Gray16:
		return float64(m.Gray16At(x, y).Y)
	}
	return float64(color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
}

// Distance scales a mean depth value to a distance.
func Distance(mean, scale float64) float64 {
	return mean * scale
}

// RegionDistance is RegionMean followed by Distance.
func RegionDistance(img image.Image, r image.Rectangle, scale float64) (float64, error) {
	mean, err := RegionMean(img, r)
	if err != nil {
		return 0, err
	}
	return Distance(mean, scale), nil
}

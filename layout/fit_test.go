package layout

import (
	"errors"
	"math"
	"testing"
)

func TestFitScenario(t *testing.T) {
	got, err := Fit(Size{W: 800, H: 600}, Rect{W: 400, H: 400}, Margin{}, DefaultPolicy)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	want := FitResult{X: 0, Y: 50, W: 400, H: 300, Scale: 0.5}
	if got != want {
		t.Errorf("Fit = %+v, want %+v", got, want)
	}
}

func TestFitWithMarginAndOffset(t *testing.T) {
	// 200x100 into a 300x200 content box at (15, 30): scale 1.5 -> 300x150.
	got, err := Fit(Size{W: 200, H: 100}, Rect{X: 10, Y: 25, W: 310, H: 210}, Margin{X: 5, Y: 5}, DefaultPolicy)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	want := FitResult{X: 15, Y: 55, W: 300, H: 150, Scale: 1.5}
	if got != want {
		t.Errorf("Fit = %+v, want %+v", got, want)
	}
}

func TestFitNoUpscale(t *testing.T) {
	got, err := Fit(Size{W: 100, H: 50}, Rect{W: 400, H: 400}, Margin{}, Policy{AllowUpscale: false})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	want := FitResult{X: 150, Y: 175, W: 100, H: 50, Scale: 1}
	if got != want {
		t.Errorf("Fit = %+v, want %+v", got, want)
	}

	// Downscaling is unaffected by the policy.
	got, err = Fit(Size{W: 800, H: 600}, Rect{W: 400, H: 400}, Margin{}, Policy{AllowUpscale: false})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if got.W != 400 || got.H != 300 {
		t.Errorf("Fit = %+v, want 400x300", got)
	}
}

func TestFitErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    Size
		target Rect
		margin Margin
		want   error
	}{
		{"zero width", Size{W: 0, H: 10}, Rect{W: 100, H: 100}, Margin{}, ErrInvalidSourceSize},
		{"negative height", Size{W: 10, H: -1}, Rect{W: 100, H: 100}, Margin{}, ErrInvalidSourceSize},
		{"empty target", Size{W: 10, H: 10}, Rect{W: 0, H: 100}, Margin{}, ErrDegenerateTarget},
		{"margin eats width", Size{W: 10, H: 10}, Rect{W: 20, H: 100}, Margin{X: 10}, ErrDegenerateTarget},
		{"margin eats height", Size{W: 10, H: 10}, Rect{W: 100, H: 30}, Margin{Y: 20}, ErrDegenerateTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.src, tt.target, tt.margin, DefaultPolicy)
			if !errors.Is(err, tt.want) {
				t.Errorf("Fit error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFitProperties(t *testing.T) {
	sources := []Size{{800, 600}, {600, 800}, {1920, 1080}, {37, 91}, {1, 1}, {640, 640}, {3000, 17}}
	targets := []Rect{{0, 0, 400, 400}, {360, 10, 510, 385}, {5, 7, 1021, 333}, {0, 0, 97, 1300}}
	margins := []Margin{{0, 0}, {5, 5}, {10, 30}}

	for _, src := range sources {
		for _, target := range targets {
			for _, m := range margins {
				for _, policy := range []Policy{DefaultPolicy, {AllowUpscale: false}} {
					checkFit(t, src, target, m, policy)
				}
			}
		}
	}
}

func checkFit(t *testing.T, src Size, target Rect, m Margin, policy Policy) {
	t.Helper()
	got, err := Fit(src, target, m, policy)
	if err != nil {
		t.Fatalf("Fit(%v, %v, %v): %v", src, target, m, err)
	}
	contentW := target.W - 2*m.X
	contentH := target.H - 2*m.Y

	if got.W > contentW || got.H > contentH {
		t.Errorf("Fit(%v, %v, %v) = %+v exceeds content %dx%d", src, target, m, got, contentW, contentH)
	}

	// Aspect ratio within one pixel of flooring in either dimension.
	if got.W > 0 && got.H > 0 {
		if math.Abs(float64(got.W)-float64(src.W)*got.Scale) >= 1 ||
			math.Abs(float64(got.H)-float64(src.H)*got.Scale) >= 1 {
			t.Errorf("Fit(%v, %v) = %+v does not follow scale", src, target, got)
		}
	}

	left := got.X - target.X - m.X
	right := contentW - got.W - left
	if d := right - left; d < 0 || d > 1 {
		t.Errorf("Fit(%v, %v) = %+v horizontal margins %d/%d", src, target, got, left, right)
	}
	top := got.Y - target.Y - m.Y
	bottom := contentH - got.H - top
	if d := bottom - top; d < 0 || d > 1 {
		t.Errorf("Fit(%v, %v) = %+v vertical margins %d/%d", src, target, got, top, bottom)
	}

	again, _ := Fit(src, target, m, policy)
	if again != got {
		t.Errorf("Fit is not deterministic: %+v then %+v", got, again)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 5}
	if !r.Contains(10, 10) || !r.Contains(29, 14) {
		t.Error("expected corners inside")
	}
	if r.Contains(30, 10) || r.Contains(10, 15) || r.Contains(9, 12) {
		t.Error("expected outside points to be rejected")
	}
}

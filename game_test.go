package main

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"scene-viewer/projection"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	s := DefaultSettings()
	s.Font = filepath.Join(t.TempDir(), "missing.ttf")
	s.Cameras = []CameraDir{{Name: "A", Dir: t.TempDir()}, {Name: "B", Dir: t.TempDir()}}
	return NewGame(s, nil, nil)
}

func TestNewGameCentersWorldOrigin(t *testing.T) {
	g := newTestGame(t)

	// Map area is the window above the 200px control panel.
	want := projection.Params{ScaleX: DefaultScale, ScaleY: DefaultScale, OffsetX: 700, OffsetY: 300}
	if g.params != want {
		t.Errorf("params = %+v, want %+v", g.params, want)
	}
	if g.sliderOffsetX.Value != 700 || g.sliderScaleY.Value != DefaultScale {
		t.Errorf("sliders not synced: offset_x=%v scale_y=%v", g.sliderOffsetX.Value, g.sliderScaleY.Value)
	}
}

func TestApplyPanAndReset(t *testing.T) {
	g := newTestGame(t)
	start := g.params

	g.ApplyPan(10, -5)
	if g.params.OffsetX != start.OffsetX+10 || g.params.OffsetY != start.OffsetY-5 {
		t.Errorf("after pan params = %+v", g.params)
	}
	if g.sliderOffsetX.Value != g.params.OffsetX {
		t.Errorf("slider offset_x = %v, want %v", g.sliderOffsetX.Value, g.params.OffsetX)
	}

	g.ResetView()
	if g.params != start {
		t.Errorf("after reset params = %+v, want %+v", g.params, start)
	}
}

func TestApplyZoomKeepsCursorPoint(t *testing.T) {
	g := newTestGame(t)
	origin := g.mapOrigin()

	wx, wy := projection.ToWorld(900, 400, g.params, origin)
	g.ApplyZoom(2, 900, 400)
	if g.params.ScaleX != 2*DefaultScale {
		t.Errorf("scale_x = %v, want %v", g.params.ScaleX, 2*DefaultScale)
	}
	ax, ay := projection.ToWorld(900, 400, g.params, origin)
	if math.Abs(ax-wx) > 1e-9 || math.Abs(ay-wy) > 1e-9 {
		t.Errorf("world under cursor moved: (%v, %v) -> (%v, %v)", wx, wy, ax, ay)
	}
}

func TestPanelsModeIgnoresViewInput(t *testing.T) {
	g := newTestGame(t)
	start := g.params

	g.toggleMode()
	if g.mode != ModePanels || g.ui.ShowControls {
		t.Fatalf("mode = %q, controls = %v", g.mode, g.ui.ShowControls)
	}
	g.ApplyPan(50, 50)
	g.ApplyZoom(3, 10, 10)
	if g.params != start {
		t.Errorf("params changed in panels mode: %+v", g.params)
	}
	if !g.IsMouseOver(500, 500) {
		t.Error("panels mode should block panning")
	}
}

func TestMapAreaFollowsControls(t *testing.T) {
	g := newTestGame(t)
	if h := g.mapArea().H; h != 600 {
		t.Errorf("map height with controls = %d, want 600", h)
	}
	g.toggleMode()
	if h := g.mapArea().H; h != 780 {
		t.Errorf("map height without controls = %d, want 780", h)
	}
}

func TestDefaultViewPrecedence(t *testing.T) {
	g := newTestGame(t)

	g.settings.DefaultView = &ParamsState{ScaleX: 2, ScaleY: 3, OffsetX: 4, OffsetY: 5}
	if v := g.defaultView(); v.Name != "default_view" || v.Params.ScaleY != 3 {
		t.Errorf("default_view = %+v", v)
	}

	preset := filepath.Join(t.TempDir(), "view.star")
	if err := os.WriteFile(preset, []byte("scale = 8.0\noffset_x = screen_width // 4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	g.settings.ViewPreset = preset
	v := g.defaultView()
	if v.Params.ScaleX != 8 || v.Params.OffsetX != 350 {
		t.Errorf("preset view = %+v", v.Params)
	}

	// A broken preset falls back to default_view and reports the error.
	g.settings.ViewPreset = filepath.Join(t.TempDir(), "missing.star")
	if v := g.defaultView(); v.Name != "default_view" {
		t.Errorf("fallback view = %q", v.Name)
	}
	if !g.ui.Status.IsError {
		t.Error("status should show the preset error")
	}
}

func TestSetParamsStaysInSliderRange(t *testing.T) {
	tests := []struct {
		name string
		in   projection.Params
		want projection.Params
	}{
		{"zero scale", projection.Params{ScaleX: 0, ScaleY: -1, OffsetX: 1, OffsetY: 2},
			projection.Params{ScaleX: SliderScaleMin, ScaleY: SliderScaleMin, OffsetX: 1, OffsetY: 2}},
		{"tiny saved scale", projection.Params{ScaleX: 0.01, ScaleY: 500, OffsetX: 0, OffsetY: 0},
			projection.Params{ScaleX: SliderScaleMin, ScaleY: SliderScaleMax, OffsetX: 0, OffsetY: 0}},
		{"panned too far", projection.Params{ScaleX: 2, ScaleY: 2, OffsetX: 20000, OffsetY: -5000},
			projection.Params{ScaleX: 2, ScaleY: 2, OffsetX: SliderOffsetMax, OffsetY: SliderOffsetMin}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.setParams(tt.in)
			if g.params != tt.want {
				t.Errorf("params = %+v, want %+v", g.params, tt.want)
			}
			sliders := []struct {
				got, want float64
			}{
				{g.sliderScaleX.Value, g.params.ScaleX},
				{g.sliderScaleY.Value, g.params.ScaleY},
				{g.sliderOffsetX.Value, g.params.OffsetX},
				{g.sliderOffsetY.Value, g.params.OffsetY},
			}
			for i, s := range sliders {
				if s.got != s.want {
					t.Errorf("slider %d = %v, drawn value %v", i, s.got, s.want)
				}
			}
		})
	}
}

func TestCenteredViewUsesBackground(t *testing.T) {
	tests := []struct {
		name string
		bg   image.Image
	}{
		{"no background", nil},
		{"wide background", image.NewGray(image.Rect(0, 0, 100, 50))},
		{"tall background", image.NewGray(image.Rect(0, 0, 50, 100))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			s.Font = filepath.Join(t.TempDir(), "missing.ttf")
			g := NewGame(s, nil, tt.bg)

			// The world origin lands in the middle of the 1400x600 map area.
			got := projection.Project(projection.WorldPoint{}, g.params, g.mapOrigin())
			if want := (projection.ScreenPoint{X: 700, Y: 300}); got != want {
				t.Errorf("origin at %+v, want %+v", got, want)
			}
		})
	}
}

func TestStatusStripFollowsMode(t *testing.T) {
	g := newTestGame(t)
	if g.ui.StatusArea != nil {
		t.Error("map mode should use the default status strip")
	}
	g.toggleMode()
	if g.ui.StatusArea == nil {
		t.Fatal("panels mode should place the status strip")
	}
	if got, want := g.ui.StatusArea(), image.Rect(10, 770, 1390, 790); got != want {
		t.Errorf("status strip = %v, want %v", got, want)
	}
}

func TestMarkerLabel(t *testing.T) {
	h := 90.0
	tests := []struct {
		p    projection.WorldPoint
		want string
	}{
		{projection.WorldPoint{ID: "car", X: 1.3, Y: -3}, "car (1.3, -3.0)"},
		{projection.WorldPoint{ID: "ped", X: 0, Y: 10, Heading: &h}, "ped (0.0, 10.0) 90°"},
	}
	for _, tt := range tests {
		if got := markerLabel(tt.p); got != tt.want {
			t.Errorf("markerLabel(%+v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

package main

import "image/color"

const (
	// --- Window ---
	DefaultWindowWidth  = 1400
	DefaultWindowHeight = 800
	WindowTitle         = "Scene Viewer"

	// --- Modes ---
	ModeMap    = "map"
	ModePanels = "panels"

	// --- View ---
	DefaultScale    = 5.0 // pixels per world unit when nothing is configured
	SliderScaleMin  = 0.1
	SliderScaleMax  = 100.0
	SliderOffsetMin = -2000.0
	SliderOffsetMax = 10000.0
	GridSize        = 10.0 // world units

	// --- Panels ---
	TabWidth    = 150
	TabHeight   = 30
	TabGap      = 10
	RowWidth    = 280
	RowHeight   = 30
	RowStep     = 35
	ListTop     = 40 // below the tabs, relative to the list panel
	ListInsetX  = 10
	ListBottom  = 20
	RowIndent   = 20
	DepthSample = 4 // centre 1/DepthSample of the depth map is averaged

	// --- Files ---
	DefaultSettingsFile = "viewer.yaml"
	DefaultStateFile    = "state.yaml"
	DefaultScreenshot   = "screenshot.png"
	DefaultFontFile     = "fonts/Roboto-Regular.ttf"
	DetectionSuffix     = "_det"
	DepthSuffix         = "_depth"

	ControlsTitle = "Adjustment Controls (SPACE labels, R reset, drag to pan, wheel to zoom)"
)

var (
	// --- Colors ---
	ColorBackground  = color.RGBA{30, 30, 30, 255}
	ColorPanel       = color.RGBA{50, 50, 50, 255}
	ColorText        = color.RGBA{220, 220, 220, 255}
	ColorLabel       = color.RGBA{255, 255, 255, 255}
	ColorGrid        = color.RGBA{255, 255, 255, 20}
	ColorOriginCross = color.RGBA{255, 100, 100, 150}
	ColorRow         = color.RGBA{100, 100, 100, 255}
	ColorRowHover    = color.RGBA{150, 150, 150, 255}
	ColorRowSelected = color.RGBA{0, 120, 255, 255}
	ColorRowBorder   = color.RGBA{200, 200, 200, 255}

	// Marker palette, indexed by scene.ColorIndex.
	Palette = []color.Color{
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{0, 0, 255, 255},
		color.RGBA{255, 255, 0, 255},
		color.RGBA{255, 0, 255, 255},
		color.RGBA{0, 255, 255, 255},
	}
)

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"scene-viewer/depth"
	"scene-viewer/layout"
	"scene-viewer/projection"
)

type ParamsState struct {
	ScaleX  float64 `yaml:"scale_x"`
	ScaleY  float64 `yaml:"scale_y"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

func (p ParamsState) Params() projection.Params {
	return projection.Params{ScaleX: p.ScaleX, ScaleY: p.ScaleY, OffsetX: p.OffsetX, OffsetY: p.OffsetY}
}

func paramsState(p projection.Params) ParamsState {
	return ParamsState{ScaleX: p.ScaleX, ScaleY: p.ScaleY, OffsetX: p.OffsetX, OffsetY: p.OffsetY}
}

type CameraDir struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

type FitSettings struct {
	AllowUpscale bool `yaml:"allow_upscale"`
	MarginX      int  `yaml:"margin_x"`
	MarginY      int  `yaml:"margin_y"`
}

func (f FitSettings) Policy() layout.Policy {
	return layout.Policy{AllowUpscale: f.AllowUpscale}
}

func (f FitSettings) Margin() layout.Margin {
	return layout.Margin{X: f.MarginX, Y: f.MarginY}
}

// Settings is the viewer configuration file.
type Settings struct {
	Mode         string       `yaml:"mode"`
	LogLevel     string       `yaml:"log_level"`
	SceneDir     string       `yaml:"scene_dir"`
	Background   string       `yaml:"background"`
	Cameras      []CameraDir  `yaml:"cameras"`
	DefaultView  *ParamsState `yaml:"default_view"`
	ViewPreset   string       `yaml:"view_preset"`
	Fit          FitSettings  `yaml:"fit"`
	StateFile    string       `yaml:"state_file"`
	Screenshot   string       `yaml:"screenshot"`
	Font         string       `yaml:"font"`
	WindowWidth  int          `yaml:"window_width"`
	WindowHeight int          `yaml:"window_height"`
	DepthScale   float64      `yaml:"depth_scale"`
}

// Flags are command line overrides; zero values leave the file setting alone.
type Flags struct {
	Mode       string
	LogLevel   string
	SceneDir   string
	Background string
	ViewPreset string
	StateFile  string
}

func DefaultSettings() Settings {
	return Settings{
		Mode:     ModeMap,
		LogLevel: "info",
		SceneDir: "./data/input",
		Cameras: []CameraDir{
			{Name: "Camera A", Dir: "./data/CameraA"},
			{Name: "Camera B", Dir: "./data/CameraB"},
		},
		Fit:          FitSettings{AllowUpscale: true},
		StateFile:    DefaultStateFile,
		Screenshot:   DefaultScreenshot,
		Font:         DefaultFontFile,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		DepthScale:   depth.DefaultScale,
	}
}

// LoadSettings reads a yaml settings file over the defaults.
// A missing file is not an error.
func LoadSettings(filename string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, errors.Wrapf(err, "read settings %s", filename)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "parse settings %s", filename)
	}
	return s, s.validate()
}

func (s Settings) validate() error {
	if s.Mode != ModeMap && s.Mode != ModePanels {
		return errors.Errorf("unknown mode %q", s.Mode)
	}
	if s.DefaultView != nil {
		if err := s.DefaultView.Params().Validate(); err != nil {
			return errors.Wrap(err, "default_view")
		}
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return errors.Errorf("window size %dx%d", s.WindowWidth, s.WindowHeight)
	}
	return nil
}

// Apply overrides file settings with non-empty flags.
func (s *Settings) Apply(f Flags) error {
	if f.Mode != "" {
		s.Mode = f.Mode
	}
	if f.LogLevel != "" {
		s.LogLevel = f.LogLevel
	}
	if f.SceneDir != "" {
		s.SceneDir = f.SceneDir
	}
	if f.Background != "" {
		s.Background = f.Background
	}
	if f.ViewPreset != "" {
		s.ViewPreset = f.ViewPreset
	}
	if f.StateFile != "" {
		s.StateFile = f.StateFile
	}
	return s.validate()
}

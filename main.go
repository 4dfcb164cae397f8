package main

import (
	"flag"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"scene-viewer/scene"
)

func main() {
	configFile := flag.String("config", DefaultSettingsFile, "settings file")
	var f Flags
	flag.StringVar(&f.Mode, "mode", "", "start mode: map or panels")
	flag.StringVar(&f.LogLevel, "log-level", "", "log level")
	flag.StringVar(&f.SceneDir, "scenes", "", "directory of scene json files")
	flag.StringVar(&f.Background, "background", "", "background image for the map")
	flag.StringVar(&f.ViewPreset, "preset", "", "starlark view preset")
	flag.StringVar(&f.StateFile, "state", "", "state file")
	flag.Parse()

	s, err := LoadSettings(*configFile)
	if err != nil {
		log.WithError(err).Fatal("bad settings")
	}
	if err := s.Apply(f); err != nil {
		log.WithError(err).Fatal("bad flags")
	}
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("bad log level")
	}
	log.SetLevel(level)

	scenes, err := scene.LoadDir(s.SceneDir)
	if err != nil && s.Mode == ModeMap {
		log.WithError(err).WithField("dir", s.SceneDir).Warn("no scenes loaded")
	}

	var background image.Image
	if s.Background != "" {
		if background, err = LoadImage(s.Background); err != nil {
			log.WithError(err).Warn("background not loaded, drawing grid")
			background = nil
		}
	}

	g := NewGame(s, scenes, background)
	if _, err := os.Stat(s.StateFile); err == nil {
		if err := LoadState(g, s.StateFile); err != nil {
			log.WithError(err).Warn("state not restored")
		}
	}

	ebiten.SetWindowSize(s.WindowWidth, s.WindowHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type ViewState struct {
	Params     ParamsState `yaml:"params"`
	ShowLabels bool        `yaml:"show_labels"`
	Mode       string      `yaml:"mode"`
	Camera     int         `yaml:"camera"`
}

type AppState struct {
	View ViewState `yaml:"view"`
}

func SaveState(g *Game, filename string) error {
	state := AppState{
		View: ViewState{
			Params:     paramsState(g.params),
			ShowLabels: g.showLabels,
			Mode:       g.mode,
			Camera:     g.panels.active,
		},
	}

	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "save state")
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	err = enc.Encode(&state)
	if err != nil {
		return errors.Wrap(err, "encode state")
	}
	return enc.Close()
}

func LoadState(g *Game, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "load state")
	}

	var state AppState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return errors.Wrapf(err, "parse state %s", filename)
	}

	g.setParams(state.View.Params.Params())
	g.showLabels = state.View.ShowLabels

	// Migration: states saved before modes existed open the map.
	if state.View.Mode == ModeMap || state.View.Mode == ModePanels {
		g.mode = state.View.Mode
	} else {
		log.WithField("mode", state.View.Mode).Warn("unknown mode in saved state, keeping current")
	}
	g.panels.SetTab(state.View.Camera)
	g.applyMode()
	return nil
}

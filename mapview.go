package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"scene-viewer/canvas"
	"scene-viewer/layout"
	"scene-viewer/projection"
	"scene-viewer/scene"
)

// backgroundFit places the background image inside the map area.
func (g *Game) backgroundFit() (layout.FitResult, bool) {
	if g.background == nil {
		return layout.FitResult{}, false
	}
	fit, err := layout.Fit(canvas.SizeOf(g.background.Source), g.mapArea(), g.settings.Fit.Margin(), g.settings.Fit.Policy())
	if err != nil {
		log.WithError(err).Debug("background does not fit")
		return layout.FitResult{}, false
	}
	return fit, true
}

// mapOrigin is the pixel the projection offsets are measured from: the
// background's top-left corner, or the map area's when there is none.
func (g *Game) mapOrigin() projection.Origin {
	if fit, ok := g.backgroundFit(); ok {
		return projection.Origin{X: float64(fit.X), Y: float64(fit.Y)}
	}
	area := g.mapArea()
	return projection.Origin{X: float64(area.X), Y: float64(area.Y)}
}

func (g *Game) drawMap(screen *ebiten.Image) {
	area := g.mapArea()
	view := screen.SubImage(area.Bounds()).(*ebiten.Image)

	if fit, ok := g.backgroundFit(); ok {
		canvas.DrawFitted(view, g.background.Image(fit), fit)
	} else {
		canvas.DrawBackgroundGrid(view, g.params, area, GridSize, ColorGrid, ColorOriginCross)
	}

	origin := g.mapOrigin()
	for _, f := range g.scenes {
		g.drawScene(view, f, origin)
	}

	if g.ui.ShowControls {
		top := g.ui.ControlTop()
		DrawTextLines(screen, g.face, fmt.Sprintf("Scale: %.2f x %.2f   Offset: (%.1f, %.1f)",
			g.params.ScaleX, g.params.ScaleY, g.params.OffsetX, g.params.OffsetY), 50, top+35, ColorText)
	}
}

func (g *Game) drawScene(screen *ebiten.Image, f scene.File, origin projection.Origin) {
	for _, p := range f.Points() {
		at := projection.Project(p, g.params, origin)
		clr := Palette[scene.ColorIndex(f.Name, p.ID, len(Palette))]
		canvas.DrawMarker(screen, p, at, clr)

		if g.showLabels {
			lx, ly := canvas.LabelPosition(at)
			DrawTextLines(screen, g.face, markerLabel(p), lx, ly, ColorLabel)
		}
	}
}

func markerLabel(p projection.WorldPoint) string {
	label := fmt.Sprintf("%s (%.1f, %.1f)", p.ID, p.X, p.Y)
	if p.Heading != nil {
		label += fmt.Sprintf(" %.0f°", *p.Heading)
	}
	return label
}

package engine

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"

	"scene-viewer/projection"
)

// EvalView runs a view preset script. The script sees screen_width and
// screen_height and may set scale (both axes), scale_x, scale_y, offset_x
// and offset_y. Unset values come from projection.DefaultView.
func EvalView(name, script string, screenW, screenH int) (projection.View, error) {
	thread := &starlark.Thread{Name: name, Print: func(_ *starlark.Thread, msg string) {
		log.WithField("script", name).Info(msg)
	}}
	predeclared := starlark.StringDict{
		"screen_width":  starlark.MakeInt(screenW),
		"screen_height": starlark.MakeInt(screenH),
	}

	globals, err := starlark.ExecFile(thread, name, script, predeclared)
	if err != nil {
		return projection.View{}, errors.Wrapf(err, "view preset %s", name)
	}

	p := projection.DefaultView.Params
	fields := []struct {
		key  string
		dsts []*float64
	}{
		{"scale", []*float64{&p.ScaleX, &p.ScaleY}},
		{"scale_x", []*float64{&p.ScaleX}},
		{"scale_y", []*float64{&p.ScaleY}},
		{"offset_x", []*float64{&p.OffsetX}},
		{"offset_y", []*float64{&p.OffsetY}},
	}
	for _, f := range fields {
		v, ok, err := number(globals, f.key)
		if err != nil {
			return projection.View{}, errors.Wrapf(err, "view preset %s", name)
		}
		if !ok {
			continue
		}
		for _, d := range f.dsts {
			*d = v
		}
	}

	if err := p.Validate(); err != nil {
		return projection.View{}, errors.Wrapf(err, "view preset %s", name)
	}
	return projection.View{Name: name, Params: p}, nil
}

// LoadView reads and evaluates a preset script from disk.
func LoadView(path string, screenW, screenH int) (projection.View, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return projection.View{}, errors.Wrapf(err, "read view preset %s", path)
	}
	return EvalView(path, string(data), screenW, screenH)
}

// number reads a numeric global. Unset names report ok=false; other types are errors.
func number(globals starlark.StringDict, key string) (float64, bool, error) {
	v, ok := globals[key]
	if !ok {
		return 0, false, nil
	}
	f, ok := starlark.AsFloat(v)
	if !ok {
		return 0, false, errors.Errorf("%s must be a number, got %s", key, v.Type())
	}
	return f, true, nil
}

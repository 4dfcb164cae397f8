package projection

// View is a named default view the host can snap back to.
type View struct {
	Name   string
	Params Params
}

// DefaultView is used when the configuration does not name one.
var DefaultView = View{
	Name:   "identity",
	Params: Params{ScaleX: 1, ScaleY: 1},
}

// Reset returns the params of the given view, clamped.
func Reset(v View) Params {
	return v.Params.Clamp()
}

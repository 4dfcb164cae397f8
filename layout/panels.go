package layout

// Analyzer panel geometry.
const (
	PanelGap       = 10
	ListPanelWidth = 340
	StatusHeight   = 20
	TitleHeight    = 25
	ContentInset   = 5
)

// Panels splits the window into the image list on the left, two image panels
// on top, a wide panel below them and a status strip.
type Panels struct {
	List      Rect
	Original  Rect
	Detection Rect
	Depth     Rect
	Status    Rect
}

// AnalyzerPanels lays out a window of the given size.
func AnalyzerPanels(screenW, screenH int) Panels {
	left := PanelGap + ListPanelWidth + PanelGap
	rightW := screenW - left - 2*PanelGap
	halfW := rightW / 2
	halfH := (screenH - 3*PanelGap) / 2

	return Panels{
		List:      Rect{X: PanelGap, Y: PanelGap, W: ListPanelWidth, H: screenH - 2*PanelGap},
		Original:  Rect{X: left, Y: PanelGap, W: halfW, H: halfH},
		Detection: Rect{X: left + halfW + PanelGap, Y: PanelGap, W: halfW, H: halfH},
		Depth:     Rect{X: left, Y: 2*PanelGap + halfH, W: rightW, H: halfH},
		Status:    Rect{X: PanelGap, Y: screenH - 3*PanelGap, W: screenW - 2*PanelGap, H: StatusHeight},
	}
}

// BelowTitle drops the title strip from the top of r.
func (r Rect) BelowTitle(title int) Rect {
	return Rect{X: r.X, Y: r.Y + title, W: r.W, H: r.H - title}
}

// MaxScroll is how far a list of n rows can scroll inside a view of height viewH.
func MaxScroll(n, rowHeight, viewH int) int {
	if over := n*rowHeight - viewH; over > 0 {
		return over
	}
	return 0
}

// ClampScroll keeps a scroll offset within [0, max].
func ClampScroll(offset, max int) int {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

package layout

// TargetKind tells what a click landed on.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetButton
	TargetModeToggle
	TargetThemeToggle
)

type Target struct {
	Kind  TargetKind
	Token string
}

// Pad is the complete calculator panel.
type Pad struct {
	ModeToggle  Rect
	ThemeToggle Rect
	Display     Rect
	Standard    []Cell
	Scientific  []Cell

	origin  [2]float64
	metrics Metrics
}

// NewPad places the panel with its top-left corner at (x, y).
func NewPad(x, y float64, m Metrics, standard, scientific []string, span func(string) int) Pad {
	inner := x + m.Padding
	top := y + m.Padding
	width := m.Width()

	p := Pad{origin: [2]float64{x, y}, metrics: m}
	p.ModeToggle = Rect{X: inner, Y: top, W: width * 0.45, H: m.HeaderHeight}
	p.ThemeToggle = Rect{X: inner + width - m.HeaderHeight, Y: top, W: m.HeaderHeight, H: m.HeaderHeight}
	p.Display = Rect{X: inner, Y: p.ModeToggle.Bottom() + m.SectionGap, W: width, H: m.DisplayHeight}

	p.Standard = Grid(standard, inner, p.Display.Bottom()+m.SectionGap, m, span)
	p.Scientific = Grid(scientific, inner, Bounds(p.Standard).Bottom()+m.SectionGap, m, span)
	return p
}

// Panel returns the panel background rect for the given mode.
func (p Pad) Panel(scientific bool) Rect {
	last := Bounds(p.Standard)
	if scientific && len(p.Scientific) > 0 {
		last = Bounds(p.Scientific)
	}
	return Rect{
		X: p.origin[0],
		Y: p.origin[1],
		W: p.metrics.Width() + 2*p.metrics.Padding,
		H: last.Bottom() + p.metrics.Padding - p.origin[1],
	}
}

// Hit resolves a cursor position. Scientific buttons only respond while
// scientific mode is on.
func (p Pad) Hit(x, y float64, scientific bool) Target {
	switch {
	case p.ModeToggle.Contains(x, y):
		return Target{Kind: TargetModeToggle}
	case p.ThemeToggle.Contains(x, y):
		return Target{Kind: TargetThemeToggle}
	}
	if tok, ok := Hit(p.Standard, x, y); ok {
		return Target{Kind: TargetButton, Token: tok}
	}
	if scientific {
		if tok, ok := Hit(p.Scientific, x, y); ok {
			return Target{Kind: TargetButton, Token: tok}
		}
	}
	return Target{}
}

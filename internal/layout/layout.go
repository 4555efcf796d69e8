// Package layout computes where the calculator's header toggles, display
// and buttons sit inside the window and maps cursor positions back to them.
package layout

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Bottom returns the y coordinate just below the rect.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Cell is one button of a grid.
type Cell struct {
	Token string
	Rect  Rect
}

// Metrics describes the sizes used to build a Pad.
type Metrics struct {
	Padding       float64
	Columns       int
	CellWidth     float64
	CellHeight    float64
	Gap           float64
	HeaderHeight  float64
	DisplayHeight float64
	// SectionGap separates header, display and the two grids.
	SectionGap float64
}

// Width is the width of a full grid row.
func (m Metrics) Width() float64 {
	return float64(m.Columns)*m.CellWidth + float64(m.Columns-1)*m.Gap
}

// Grid lays tokens out left to right in rows of m.Columns cells starting at
// (x, y). span reports how many cells a token occupies; a token that does
// not fit on the current row starts a new one.
func Grid(tokens []string, x, y float64, m Metrics, span func(string) int) []Cell {
	cells := make([]Cell, 0, len(tokens))
	col, row := 0, 0
	for _, tok := range tokens {
		n := 1
		if span != nil {
			n = span(tok)
		}
		if n > m.Columns {
			n = m.Columns
		}
		if col+n > m.Columns {
			col = 0
			row++
		}
		cells = append(cells, Cell{
			Token: tok,
			Rect: Rect{
				X: x + float64(col)*(m.CellWidth+m.Gap),
				Y: y + float64(row)*(m.CellHeight+m.Gap),
				W: float64(n)*m.CellWidth + float64(n-1)*m.Gap,
				H: m.CellHeight,
			},
		})
		col += n
	}
	return cells
}

// Bounds returns the smallest rect containing all cells.
func Bounds(cells []Cell) Rect {
	if len(cells) == 0 {
		return Rect{}
	}
	minX, minY := cells[0].Rect.X, cells[0].Rect.Y
	maxX, maxY := cells[0].Rect.X+cells[0].Rect.W, cells[0].Rect.Bottom()
	for _, c := range cells[1:] {
		minX = min(minX, c.Rect.X)
		minY = min(minY, c.Rect.Y)
		maxX = max(maxX, c.Rect.X+c.Rect.W)
		maxY = max(maxY, c.Rect.Bottom())
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Hit returns the token of the cell under (x, y).
func Hit(cells []Cell, x, y float64) (string, bool) {
	for _, c := range cells {
		if c.Rect.Contains(x, y) {
			return c.Token, true
		}
	}
	return "", false
}

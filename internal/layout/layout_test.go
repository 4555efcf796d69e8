package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMetrics = Metrics{
	Padding:       20,
	Columns:       4,
	CellWidth:     60,
	CellHeight:    50,
	Gap:           10,
	HeaderHeight:  30,
	DisplayHeight: 80,
	SectionGap:    16,
}

var (
	standard   = []string{"C", "±", "%", "÷", "7", "8", "9", "×", "4", "5", "6", "-", "1", "2", "3", "+", "0", ".", "="}
	scientific = []string{"sin", "cos", "tan", "log", "ln", "^", "(", ")", "π", "e", "√", "x²", "x³", "x!"}
)

func span(tok string) int {
	if tok == "=" {
		return 2
	}
	return 1
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 5}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(30, 15))
	assert.False(t, r.Contains(9.9, 12))
	assert.False(t, r.Contains(20, 15.1))
	assert.Equal(t, 15.0, r.Bottom())
}

func TestGrid(t *testing.T) {
	cells := Grid(standard, 20, 162, testMetrics, span)
	require.Len(t, cells, len(standard))

	assert.Equal(t, Cell{Token: "C", Rect: Rect{X: 20, Y: 162, W: 60, H: 50}}, cells[0])
	assert.Equal(t, Cell{Token: "÷", Rect: Rect{X: 230, Y: 162, W: 60, H: 50}}, cells[3])
	assert.Equal(t, Cell{Token: "0", Rect: Rect{X: 20, Y: 402, W: 60, H: 50}}, cells[16])
	assert.Equal(t, Cell{Token: "=", Rect: Rect{X: 160, Y: 402, W: 130, H: 50}}, cells[18])

	assert.Equal(t, Rect{X: 20, Y: 162, W: 270, H: 290}, Bounds(cells))
	assert.Equal(t, Rect{}, Bounds(nil))
}

func TestGridWrapsWideCells(t *testing.T) {
	cells := Grid([]string{"1", "2", "3", "="}, 0, 0, testMetrics, span)
	require.Len(t, cells, 4)
	assert.Equal(t, Rect{X: 0, Y: 60, W: 130, H: 50}, cells[3].Rect)
}

func TestHit(t *testing.T) {
	cells := Grid(standard, 20, 162, testMetrics, span)

	tok, ok := Hit(cells, 225, 427)
	assert.True(t, ok)
	assert.Equal(t, "=", tok)

	_, ok = Hit(cells, 85, 170)
	assert.False(t, ok, "gap between buttons")
}

func TestPad(t *testing.T) {
	p := NewPad(0, 0, testMetrics, standard, scientific, span)

	assert.Equal(t, Rect{X: 20, Y: 20, W: 121.5, H: 30}, p.ModeToggle)
	assert.Equal(t, Rect{X: 260, Y: 20, W: 30, H: 30}, p.ThemeToggle)
	assert.Equal(t, Rect{X: 20, Y: 66, W: 270, H: 80}, p.Display)
	assert.Equal(t, Rect{X: 20, Y: 468, W: 60, H: 50}, p.Scientific[0].Rect)
	assert.Equal(t, Rect{X: 90, Y: 648, W: 60, H: 50}, p.Scientific[13].Rect)

	assert.Equal(t, Rect{X: 0, Y: 0, W: 310, H: 472}, p.Panel(false))
	assert.Equal(t, Rect{X: 0, Y: 0, W: 310, H: 718}, p.Panel(true))
}

func TestPadHit(t *testing.T) {
	p := NewPad(0, 0, testMetrics, standard, scientific, span)

	tests := []struct {
		name       string
		x, y       float64
		scientific bool
		expected   Target
	}{
		{name: "Mode toggle", x: 30, y: 30, expected: Target{Kind: TargetModeToggle}},
		{name: "Theme toggle", x: 275, y: 35, expected: Target{Kind: TargetThemeToggle}},
		{name: "Digit", x: 50, y: 250, expected: Target{Kind: TargetButton, Token: "7"}},
		{name: "Display is inert", x: 100, y: 100, expected: Target{}},
		{name: "Hidden scientific row", x: 50, y: 493, expected: Target{}},
		{name: "Visible scientific row", x: 50, y: 493, scientific: true, expected: Target{Kind: TargetButton, Token: "sin"}},
		{name: "Outside panel", x: 500, y: 500, scientific: true, expected: Target{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.Hit(tt.x, tt.y, tt.scientific))
		})
	}
}

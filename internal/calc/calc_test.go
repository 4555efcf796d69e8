package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendToken(t *testing.T) {
	tokens := []string{"0", "7", ".", "+", "×", "(", "sin", "3.141592653589793"}

	for _, tok := range tokens {
		assert.Equal(t, tok, AppendToken("0", tok), "zero display is replaced by %q", tok)
		assert.Equal(t, tok, AppendToken("Error", tok), "error display is replaced by %q", tok)
	}

	for _, d := range []string{"1", "12+", "-", "NaN", "0.5", "00", "Infinity"} {
		for _, tok := range tokens {
			assert.Equal(t, d+tok, AppendToken(d, tok))
		}
	}
}

func TestPress(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expected string
	}{
		{name: "Initial digit replaces zero", tokens: []string{"5"}, expected: "5"},
		{name: "Digits accumulate", tokens: []string{"1", "2", ".", "5"}, expected: "12.5"},
		{name: "Addition", tokens: []string{"2", "+", "2", "="}, expected: "4"},
		{name: "Multiplication glyph", tokens: []string{"5", "×", "3", "="}, expected: "15"},
		{name: "Division by zero", tokens: []string{"1", "0", "÷", "0", "="}, expected: "Infinity"},
		{name: "Dangling operator", tokens: []string{"2", "+", "="}, expected: "Error"},
		{name: "Digit after error replaces it", tokens: []string{"2", "+", "=", "7"}, expected: "7"},
		{name: "Negate", tokens: []string{"5", "±"}, expected: "-5"},
		{name: "Negate zero", tokens: []string{"±"}, expected: "0"},
		{name: "Negate parses leading number only", tokens: []string{"5", "+", "3", "±"}, expected: "-5"},
		{name: "Percent", tokens: []string{"5", "0", "%"}, expected: "0.5"},
		{name: "Factorial", tokens: []string{"4", "x!"}, expected: "24"},
		{name: "Factorial of zero", tokens: []string{"x!"}, expected: "1"},
		{name: "Factorial truncates", tokens: []string{"4", ".", "7", "x!"}, expected: "24"},
		{name: "Factorial of negative", tokens: []string{"-", "3", "x!"}, expected: "NaN"},
		{name: "Factorial overflow", tokens: []string{"1", "7", "1", "x!"}, expected: "Infinity"},
		{name: "Square root of negative", tokens: []string{"-", "1", "√"}, expected: "NaN"},
		{name: "Square root", tokens: []string{"8", "1", "√"}, expected: "9"},
		{name: "Square", tokens: []string{"3", "x²"}, expected: "9"},
		{name: "Cube", tokens: []string{"2", "x³"}, expected: "8"},
		{name: "Square of text", tokens: []string{"(", "x²"}, expected: "NaN"},
		{name: "Pi replaces zero", tokens: []string{"π"}, expected: "3.141592653589793"},
		{name: "Pi appends", tokens: []string{"2", "×", "π"}, expected: "2×3.141592653589793"},
		{name: "Euler", tokens: []string{"e"}, expected: "2.718281828459045"},
		{name: "Pi evaluates", tokens: []string{"2", "×", "π", "="}, expected: "6.283185307179586"},
		{name: "Power", tokens: []string{"2", "^", "1", "0", "="}, expected: "1024"},
		{name: "Power is right-associative", tokens: []string{"2", "^", "3", "^", "2", "="}, expected: "512"},
		{name: "Power of negated number", tokens: []string{"5", "±", "^", "2", "="}, expected: "-25"},
		{name: "Small result feeds back", tokens: []string{"1", "÷", "1", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "=", "+", "1", "="}, expected: "1.000000000001"},
		{name: "Large result feeds back", tokens: []string{"1", "0", "0", "0", "0", "0", "0", "0", "x³", "×", "2", "="}, expected: "2e+21"},
		{name: "Infinity feeds back", tokens: []string{"1", "7", "1", "x!", "+", "1", "="}, expected: "Infinity"},
		{name: "NaN feeds back", tokens: []string{"(", "x²", "+", "1", "="}, expected: "NaN"},
		{name: "Parentheses", tokens: []string{"(", "1", "+", "2", ")", "×", "3", "="}, expected: "9"},
		{name: "Logarithm", tokens: []string{"log", "(", "1", "0", "0", ")", "="}, expected: "2"},
		{name: "Natural logarithm", tokens: []string{"ln", "(", "1", ")", "="}, expected: "0"},
		{name: "Sine", tokens: []string{"sin", "(", "0", ")", "="}, expected: "0"},
		{name: "Unbalanced parenthesis", tokens: []string{"(", "2", "="}, expected: "Error"},
		{name: "Result continues", tokens: []string{"2", "+", "2", "=", "+", "1", "="}, expected: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			assert.Equal(t, tt.expected, c.PressAll(tt.tokens...))
			assert.Equal(t, tt.tokens[len(tt.tokens)-1], c.LastToken())
		})
	}
}

func TestClearIsIdempotent(t *testing.T) {
	states := [][]string{
		{},
		{"7"},
		{"2", "+"},
		{"2", "+", "="},
		{"-", "1", "√"},
		{"1", "÷", "0", "="},
		{"C"},
	}

	for _, tokens := range states {
		c := New()
		c.PressAll(tokens...)
		assert.Equal(t, "0", c.Press("C"))
		assert.Equal(t, "0", c.Press("C"))
	}
}

func TestPressIgnoresEmptyToken(t *testing.T) {
	c := New()
	assert.Equal(t, "0", c.Press(""))
	assert.Equal(t, "", c.LastToken())
	assert.Equal(t, "7", c.PressAll("7", ""))
}

func TestModes(t *testing.T) {
	var seen []bool
	c := New(WithDarkTheme(true), WithThemeHook(func(dark bool) { seen = append(seen, dark) }))

	assert.False(t, c.Scientific())
	assert.True(t, c.ToggleScientific())
	c.SetScientific(false)
	assert.False(t, c.Scientific())

	assert.True(t, c.Dark())
	assert.False(t, c.ToggleTheme())
	assert.True(t, c.ToggleTheme())
	assert.Equal(t, []bool{false, true}, seen)

	// Modes never touch the display.
	assert.Equal(t, "0", c.Display())
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, 1.0, Factorial(0))
	assert.Equal(t, 1.0, Factorial(1))
	assert.Equal(t, 120.0, Factorial(5))
	assert.Equal(t, 3628800.0, Factorial(10))
	assert.True(t, math.IsInf(Factorial(171), 1))
	assert.True(t, math.IsNaN(Factorial(-1)))
	assert.True(t, math.IsNaN(Factorial(2.5)))
	assert.True(t, math.IsNaN(Factorial(math.NaN())))
}

func TestSpecialTokens(t *testing.T) {
	for _, tok := range []string{"C", "±", "%", "=", "π", "e", "√", "x²", "x³", "x!"} {
		assert.True(t, IsSpecial(tok), tok)
	}
	for _, tok := range []string{"7", ".", "+", "×", "÷", "(", "sin", "^"} {
		assert.False(t, IsSpecial(tok), tok)
	}
	assert.Equal(t, 2, Span("="))
	assert.Equal(t, 1, Span("0"))
}

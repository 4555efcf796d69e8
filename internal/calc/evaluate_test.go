package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEvaluator struct {
	got   string
	value float64
	err   error
	panic bool
}

func (s *stubEvaluator) Evaluate(expr string) (float64, error) {
	s.got = expr
	if s.panic {
		panic("boom")
	}
	return s.value, s.err
}

func TestEvaluate(t *testing.T) {
	ev := NewExpressionEvaluator()
	tests := []struct {
		name     string
		display  string
		expected string
		wantErr  bool
	}{
		{name: "Sum", display: "2+2", expected: "4"},
		{name: "Multiply glyph", display: "5×3", expected: "15"},
		{name: "Divide glyph", display: "9÷4", expected: "2.25"},
		{name: "Every glyph replaced", display: "2×3×4÷2", expected: "12"},
		{name: "Division by zero", display: "10÷0", expected: "Infinity"},
		{name: "Zero by zero", display: "0÷0", expected: "NaN"},
		{name: "Precedence", display: "2+3×4", expected: "14"},
		{name: "Power", display: "3^2", expected: "9"},
		{name: "Power is right-associative", display: "2^3^2", expected: "512"},
		{name: "Power binds tighter than negation", display: "-2^2", expected: "-4"},
		{name: "Negative exponent", display: "2^-1", expected: "0.5"},
		{name: "Parenthesized negative base", display: "(-2)^2", expected: "4"},
		{name: "Double star power", display: "2**3", expected: "8"},
		{name: "Negative operand", display: "2×-3", expected: "-6"},
		{name: "Small exponent literal", display: "1e-12+1", expected: "1.000000000001"},
		{name: "Large exponent literal", display: "1e+21×2", expected: "2e+21"},
		{name: "Infinity operand", display: "Infinity+1", expected: "Infinity"},
		{name: "Negative infinity operand", display: "-Infinity×2", expected: "-Infinity"},
		{name: "NaN operand", display: "NaN+1", expected: "NaN"},
		{name: "Float rounding", display: "0.1+0.2", expected: "0.30000000000000004"},
		{name: "Negative result", display: "3-5", expected: "-2"},
		{name: "Square root function", display: "sqrt(16)", expected: "4"},
		{name: "Trailing operator", display: "2+", wantErr: true},
		{name: "Empty", display: "", wantErr: true},
		{name: "Unknown name", display: "abc", wantErr: true},
		{name: "Error marker", display: "Error", wantErr: true},
		{name: "Wrong arity", display: "sin(1, 2)", wantErr: true},
		{name: "Exponent without digits", display: "2e", wantErr: true},
		{name: "Unknown function", display: "foo(1)", wantErr: true},
		{name: "Adjacent numbers", display: "1..2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Evaluate(ev, tt.display)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ErrorDisplay, out)
				assert.ErrorIs(t, err, ErrEvaluation)

				var evalErr *EvalError
				require.True(t, errors.As(err, &evalErr))
				assert.Equal(t, tt.display, evalErr.Expression)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestParseExpression(t *testing.T) {
	functions := map[string]bool{"sin": true}
	tests := []struct {
		name     string
		expr     string
		expected string
		wantErr  bool
	}{
		{name: "Right-associative power", expr: "2^3^2", expected: "(2 ** (3 ** 2))"},
		{name: "Double star is power", expr: "2**3**2", expected: "(2 ** (3 ** 2))"},
		{name: "Negation outside power", expr: "-2^2", expected: "(-(2 ** 2))"},
		{name: "Negative exponent", expr: "2^-1", expected: "(2 ** (-1))"},
		{name: "Precedence", expr: "1+2*3-4/2", expected: "((1 + (2 * 3)) - (4 / 2))"},
		{name: "Unary plus dropped", expr: "+4", expected: "4"},
		{name: "Exponent literal", expr: "1e-12+1", expected: "(0.000000000001 + 1)"},
		{name: "Exponent literal with plus", expr: "1e+21", expected: "1000000000000000000000"},
		{name: "Infinity and NaN", expr: "-Infinity*NaN", expected: "((-Infinity) * NaN)"},
		{name: "Function call", expr: "sin(1, 2)", expected: "sin(1, 2)"},
		{name: "Missing paren", expr: "(2", wantErr: true},
		{name: "Extra paren", expr: "2)", wantErr: true},
		{name: "Adjacent numbers", expr: "2 3", wantErr: true},
		{name: "Unknown function", expr: "cos(1)", wantErr: true},
		{name: "Function without parens", expr: "sin 1", wantErr: true},
		{name: "Bad character", expr: "2$3", wantErr: true},
		{name: "Lone dot", expr: ".", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parseExpression(tt.expr, functions)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tree.String())
		})
	}
}

func TestEvaluateSubstitutesOperators(t *testing.T) {
	stub := &stubEvaluator{value: 1}

	_, err := Evaluate(stub, "1×2÷3^4")
	require.NoError(t, err)
	assert.Equal(t, "1*2/3**4", stub.got)
}

func TestEvaluateWrapsCollaboratorFailures(t *testing.T) {
	cause := errors.New("bad input")
	out, err := Evaluate(&stubEvaluator{err: cause}, "1+")
	assert.Equal(t, "Error", out)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrEvaluation)

	out, err = Evaluate(&stubEvaluator{panic: true}, "1")
	assert.Equal(t, "Error", out)
	assert.ErrorIs(t, err, ErrEvaluation)
	assert.Contains(t, err.Error(), "boom")
}

func TestCalculatorHidesEvaluationErrors(t *testing.T) {
	c := New(WithEvaluator(&stubEvaluator{panic: true}))
	c.PressAll("1", "+", "1")

	assert.NotPanics(t, func() { c.Press("=") })
	assert.Equal(t, "Error", c.Display())
	assert.Equal(t, "4", c.Press("4"))
}

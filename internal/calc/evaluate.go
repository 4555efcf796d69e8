package calc

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"
)

// ErrEvaluation is wrapped by every EvalError.
var ErrEvaluation = errors.New("cannot evaluate expression")

// EvalError reports an expression that could not be evaluated.
type EvalError struct {
	Expression string
	Err        error
}

func (e *EvalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %q", ErrEvaluation, e.Expression)
	}
	return fmt.Sprintf("%v: %q: %v", ErrEvaluation, e.Expression, e.Err)
}

func (e *EvalError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrEvaluation}
	}
	return []error{ErrEvaluation, e.Err}
}

// Evaluator computes the value of an infix arithmetic expression using
// + - * / ** and parentheses. Operands are written the way FormatNumber
// writes them, Infinity and NaN included.
type Evaluator interface {
	Evaluate(expr string) (float64, error)
}

// displayOperators maps glyphs shown on the buttons to evaluator syntax.
var displayOperators = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"^", "**",
)

// Evaluate runs the display string through ev and returns the new display.
// On failure the display is ErrorDisplay and the error is an *EvalError.
func Evaluate(ev Evaluator, display string) (out string, err error) {
	expr := displayOperators.Replace(display)
	defer func() {
		if r := recover(); r != nil {
			out, err = ErrorDisplay, &EvalError{Expression: display, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	v, err := ev.Evaluate(expr)
	if err != nil {
		return ErrorDisplay, &EvalError{Expression: display, Err: err}
	}
	return FormatNumber(v), nil
}

// ExpressionEvaluator evaluates expressions with govaluate, extended with
// the scientific functions the button pad can type. Expressions are first
// normalized by parseExpression, which fixes operator precedence and
// reads exponent literals govaluate's lexer rejects.
type ExpressionEvaluator struct {
	functions map[string]govaluate.ExpressionFunction
	names     map[string]bool
}

func NewExpressionEvaluator() *ExpressionEvaluator {
	functions := map[string]govaluate.ExpressionFunction{
		"sin":  unary("sin", math.Sin),
		"cos":  unary("cos", math.Cos),
		"tan":  unary("tan", math.Tan),
		"log":  unary("log", math.Log10),
		"ln":   unary("ln", math.Log),
		"sqrt": unary("sqrt", math.Sqrt),
	}
	names := make(map[string]bool, len(functions))
	for name := range functions {
		names[name] = true
	}
	return &ExpressionEvaluator{functions: functions, names: names}
}

func (e *ExpressionEvaluator) Evaluate(expr string) (float64, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, errors.New("empty expression")
	}
	tree, err := parseExpression(expr, e.names)
	if err != nil {
		return 0, err
	}
	compiled, err := govaluate.NewEvaluableExpressionWithFunctions(tree.String(), e.functions)
	if err != nil {
		return 0, err
	}
	result, err := compiled.Evaluate(map[string]interface{}{
		infinityParam: math.Inf(1),
		nanParam:      math.NaN(),
	})
	if err != nil {
		return 0, err
	}
	f, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("result %v is not a number", result)
	}
	return f, nil
}

func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%s expects a number, got %v", name, args[0])
		}
		return fn(x), nil
	}
}

// Package calc holds the calculator's display state machine and the
// evaluation of the accumulated expression.
package calc

import (
	"log/slog"
	"math"
)

const (
	// InitialDisplay is shown on start and after a clear.
	InitialDisplay = "0"
	// ErrorDisplay replaces the display when an expression cannot be evaluated.
	ErrorDisplay = "Error"
)

// Calculator owns the display string and the mode flags of one calculator
// instance. It is not safe for concurrent use.
type Calculator struct {
	display    string
	lastToken  string
	scientific bool
	dark       bool

	eval          Evaluator
	log           *slog.Logger
	onThemeChange func(dark bool)
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithEvaluator replaces the default govaluate-backed evaluator.
func WithEvaluator(ev Evaluator) Option {
	return func(c *Calculator) { c.eval = ev }
}

// WithLogger sets the logger used for press and evaluation tracing.
func WithLogger(log *slog.Logger) Option {
	return func(c *Calculator) { c.log = log }
}

// WithScientific sets the initial scientific mode.
func WithScientific(on bool) Option {
	return func(c *Calculator) { c.scientific = on }
}

// WithDarkTheme sets the initial theme.
func WithDarkTheme(dark bool) Option {
	return func(c *Calculator) { c.dark = dark }
}

// WithThemeHook registers fn to be called whenever the theme flips.
func WithThemeHook(fn func(dark bool)) Option {
	return func(c *Calculator) { c.onThemeChange = fn }
}

func New(opts ...Option) *Calculator {
	c := &Calculator{display: InitialDisplay}
	for _, opt := range opts {
		opt(c)
	}
	if c.eval == nil {
		c.eval = NewExpressionEvaluator()
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// Display is the current on-screen text.
func (c *Calculator) Display() string { return c.display }

// LastToken is the most recently pressed button, used for highlighting.
func (c *Calculator) LastToken() string { return c.lastToken }

func (c *Calculator) Scientific() bool { return c.scientific }

func (c *Calculator) Dark() bool { return c.dark }

// SetScientific shows or hides the scientific rows.
func (c *Calculator) SetScientific(on bool) { c.scientific = on }

// ToggleScientific flips scientific mode and returns the new value.
func (c *Calculator) ToggleScientific() bool {
	c.scientific = !c.scientific
	return c.scientific
}

// ToggleTheme flips the theme, notifies the hook and returns the new value.
func (c *Calculator) ToggleTheme() bool {
	c.dark = !c.dark
	if c.onThemeChange != nil {
		c.onThemeChange(c.dark)
	}
	return c.dark
}

// AppendToken returns the display after typing token. A display showing
// the initial zero or an error is replaced rather than extended.
func AppendToken(display, token string) string {
	if display == InitialDisplay || display == ErrorDisplay {
		return token
	}
	return display + token
}

// Press applies one button token and returns the resulting display. An
// empty token is ignored so the display never becomes empty.
func (c *Calculator) Press(token string) string {
	if token == "" {
		return c.display
	}
	before := c.display
	switch token {
	case "C":
		c.display = InitialDisplay
	case "±":
		c.display = FormatNumber(ParseFloat(c.display) * -1)
	case "%":
		c.display = FormatNumber(ParseFloat(c.display) / 100)
	case "=":
		c.display = c.evaluate()
	case "π":
		c.display = AppendToken(c.display, FormatNumber(math.Pi))
	case "e":
		c.display = AppendToken(c.display, FormatNumber(math.E))
	case "√":
		c.display = FormatNumber(math.Sqrt(ParseFloat(c.display)))
	case "x²":
		c.display = FormatNumber(math.Pow(ParseFloat(c.display), 2))
	case "x³":
		c.display = FormatNumber(math.Pow(ParseFloat(c.display), 3))
	case "x!":
		c.display = FormatNumber(Factorial(ParseInt(c.display)))
	default:
		c.display = AppendToken(c.display, token)
	}
	c.lastToken = token
	c.log.Debug("Button pressed", "token", token, "special", IsSpecial(token), "before", before, "display", c.display)
	return c.display
}

// PressAll applies tokens in order and returns the final display.
func (c *Calculator) PressAll(tokens ...string) string {
	for _, t := range tokens {
		c.Press(t)
	}
	return c.display
}

func (c *Calculator) evaluate() string {
	out, err := Evaluate(c.eval, c.display)
	if err != nil {
		c.log.Debug("Evaluation failed", "expression", c.display, "error", err)
	}
	return out
}

// Factorial computes n! recursively. It is defined for non-negative
// integers only; anything else yields NaN. Values above 170 overflow to +Inf.
func Factorial(n float64) float64 {
	switch {
	case math.IsNaN(n), n < 0, n != math.Trunc(n):
		return math.NaN()
	case n > 170:
		return math.Inf(1)
	case n == 0 || n == 1:
		return 1
	}
	return n * Factorial(n-1)
}

package calc

// StandardButtons is the always visible pad, row by row with four columns.
// "=" takes the last two cells.
var StandardButtons = []string{
	"C", "±", "%", "÷",
	"7", "8", "9", "×",
	"4", "5", "6", "-",
	"1", "2", "3", "+",
	"0", ".", "=",
}

// ScientificButtons is shown below the standard pad in scientific mode.
var ScientificButtons = []string{
	"sin", "cos", "tan", "log",
	"ln", "^", "(", ")",
	"π", "e", "√", "x²",
	"x³", "x!",
}

var specialTokens = map[string]bool{
	"C": true, "±": true, "%": true, "=": true,
	"π": true, "e": true, "√": true,
	"x²": true, "x³": true, "x!": true,
}

// IsSpecial reports whether token transforms the display directly instead
// of being appended to it.
func IsSpecial(token string) bool { return specialTokens[token] }

// Span returns how many grid cells the button occupies.
func Span(token string) int {
	if token == "=" {
		return 2
	}
	return 1
}

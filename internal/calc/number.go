package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseFloat converts the longest numeric prefix of s to a float. Leading
// whitespace, a sign, a fraction, an exponent and the word "Infinity" are
// accepted. Input without a numeric prefix yields NaN.
func ParseFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}
	end := i

	// Exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	// Range errors still carry the correctly rounded value (±Inf or 0).
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil && !isRangeErr(err) {
		return math.NaN()
	}
	return v
}

// ParseInt converts the longest signed decimal integer prefix of s. Input
// without one yields NaN.
func ParseInt(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !isRangeErr(err) {
		return math.NaN()
	}
	return v
}

// FormatNumber renders f the way the display shows numbers: the shortest
// string that round-trips, switching to exponent form for magnitudes of at
// least 1e21 or below 1e-6.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		if exp == "" {
			exp = "0"
		}
		return mant + "e" + sign + exp
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isRangeErr(err error) bool { return errors.Is(err, strconv.ErrRange) }

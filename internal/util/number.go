package util

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	leadingDecimal = regexp.MustCompile(`^[+-]?(Infinity|(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?)`)
	wholeDecimal   = regexp.MustCompile(`^[+-]?(Infinity|(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?)$`)
	radixLiteral   = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// ToNumber converts form text the way a browser's Number() does: surrounding
// whitespace is ignored, empty text is 0, decimal and 0x/0o/0b literals are
// accepted, and anything else is NaN.
func ToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if radixLiteral.MatchString(s) {
		base := 16
		switch s[1] {
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		n, err := strconv.ParseUint(s[2:], base, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}

	if !wholeDecimal.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return math.NaN()
	}
	return f
}

// ParseLeadingFloat converts form text the way parseFloat() does: leading
// whitespace is skipped and the longest decimal prefix is used. Text with no
// such prefix is NaN.
func ParseLeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	prefix := leadingDecimal.FindString(s)
	if prefix == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !isRangeErr(err) {
		return math.NaN()
	}
	return f
}

// FormatNumber renders a float the way it would print in the browser:
// integers without a decimal point, exponent form outside [1e-6, 1e21).
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
	if abs < 1e-6 || abs >= 1e21 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// isRangeErr reports an overflow; ParseFloat still returns ±Inf then, which
// matches the browser.
func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

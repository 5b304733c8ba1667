package geom

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseCSSFloat parses the numeric prefix of a computed style value.
// Units and trailing text are ignored ("10px" is 10); a value without a
// numeric prefix ("auto", "") is NaN.
func ParseCSSFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, isJSSpace)
	n := numericPrefix(s)
	if n == 0 {
		return math.NaN()
	}
	prefix := s[:n]
	switch strings.TrimLeft(prefix, "+-") {
	case "Infinity":
		if prefix[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	// Overflow returns ±Inf alongside ErrRange, which is the wanted value.
	v, _ := strconv.ParseFloat(prefix, 64)
	return v
}

// isJSSpace reports whether r is skipped before a number: the Zs category,
// line terminators, tab, VT, FF and the BOM. U+0085 is not included.
func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// numericPrefix returns the byte length of the longest decimal literal at the start of s.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return i + len("Infinity")
	}

	intDigits := countDigits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if d := countDigits(s[j:]); d > 0 {
			i = j + d
		}
	}
	return i
}

// countDigits returns the number of leading ASCII digits in s.
func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

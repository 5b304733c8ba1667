package geom

import (
	"math"
	"testing"
)

// TestParseCSSFloat_Prefixes verifies the numeric prefix of a value is used.
func TestParseCSSFloat_Prefixes(t *testing.T) {
	cases := map[string]float64{
		"10px":      10,
		"0":         0,
		"-8px":      -8,
		"+3px":      3,
		"  12.5em":  12.5,
		".5rem":     0.5,
		"5.":        5,
		"1.5e2px":   150,
		"2E-1":      0.2,
		"1e":        1,
		"1e+px":     1,
		"7.25.1":    7.25,
		"0x10":      0,
		"\t\n42":    42,
		"100%":      100,
		"3px 4px":   3,
		"-.75":      -0.75,
		"00012":     12,
		"1_000":     1,
		"1.5e2.5px": 150,
	}
	for in, want := range cases {
		if got := ParseCSSFloat(in); got != want {
			t.Fatalf("ParseCSSFloat(%q): expected %v, got %v", in, want, got)
		}
	}
}

// TestParseCSSFloat_NaN verifies values without a numeric prefix are NaN.
func TestParseCSSFloat_NaN(t *testing.T) {
	for _, in := range []string{"", "auto", "px10", ".", "-", "+.", "e5", "none", "inherit"} {
		if got := ParseCSSFloat(in); !math.IsNaN(got) {
			t.Fatalf("ParseCSSFloat(%q): expected NaN, got %v", in, got)
		}
	}
}

// TestParseCSSFloat_Infinity verifies the Infinity literal and overflow.
func TestParseCSSFloat_Infinity(t *testing.T) {
	if got := ParseCSSFloat("Infinitypx"); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf, got %v", got)
	}
	if got := ParseCSSFloat("-Infinity"); !math.IsInf(got, -1) {
		t.Fatalf("expected -Inf, got %v", got)
	}
	if got := ParseCSSFloat("1e999px"); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf on overflow, got %v", got)
	}
	if got := ParseCSSFloat("infinity"); !math.IsNaN(got) {
		t.Fatalf("expected NaN for lowercase infinity, got %v", got)
	}
}

// TestParseCSSFloat_LeadingWhitespace verifies only JS whitespace is skipped.
func TestParseCSSFloat_LeadingWhitespace(t *testing.T) {
	cases := map[string]float64{
		"\u00a010":    10,
		"\u200312":    12,
		"\u202810":    10,
		"\u202910":    10,
		"\uFEFF7":     7,
		"\v\f\t\r\n3": 3,
	}
	for in, want := range cases {
		if got := ParseCSSFloat(in); got != want {
			t.Fatalf("ParseCSSFloat(%q): expected %v, got %v", in, want, got)
		}
	}
	for _, in := range []string{"\u008510", "\u180e10", "\u200b10"} {
		if got := ParseCSSFloat(in); !math.IsNaN(got) {
			t.Fatalf("ParseCSSFloat(%q): expected NaN, got %v", in, got)
		}
	}
}

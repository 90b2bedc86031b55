package access

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// WCAG contrast thresholds per conformance level and text size.
const (
	RatioAANormal  = 4.5
	RatioAALarge   = 3.0
	RatioAAANormal = 7.0
	RatioAAALarge  = 4.5
)

// Luminance returns the relative luminance of a color. This is the
// simplified weighted sum over the sRGB channels, without the full
// gamma linearization step.
func Luminance(c colorful.Color) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// ContrastRatio returns the contrast ratio between two colors, in
// the range [1, 21], independent of argument order.
func ContrastRatio(a, b colorful.Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ContrastRatioHex parses two hex color strings (e.g. "#1e1e2e") and
// returns their contrast ratio.
func ContrastRatioHex(a, b string) (float64, error) {
	ca, err := colorful.Hex(a)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", a, err)
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", b, err)
	}
	return ContrastRatio(ca, cb), nil
}

// MeetsAA reports whether ratio satisfies WCAG AA for the given text
// size category.
func MeetsAA(ratio float64, largeText bool) bool {
	if largeText {
		return ratio >= RatioAALarge
	}
	return ratio >= RatioAANormal
}

// MeetsAAA reports whether ratio satisfies WCAG AAA for the given
// text size category.
func MeetsAAA(ratio float64, largeText bool) bool {
	if largeText {
		return ratio >= RatioAAALarge
	}
	return ratio >= RatioAAANormal
}

package colour

import (
	"fmt"
	"math"
)

// roundChannel rounds a channel value to the nearest integer, clamped to the
// displayable [0, 255] range.
func roundChannel(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
// Channels are rounded to the nearest integer first.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", roundChannel(c.R), roundChannel(c.G), roundChannel(c.B))
}

// ToHSL converts the colour to HSL space.
// Returns hue in degrees [0, 360), saturation and lightness in [0, 1].
// When two channels tie for the maximum, the red, green, blue case order
// decides which hue branch runs, so conversions are reproducible.
func (c RGB) ToHSL() HSL {
	r := c.R / 255.0
	g := c.G / 255.0
	b := c.B / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	// Achromatic (grey).
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSL{H: h, S: s, L: l}
}

// Luminance calculates the relative luminance of the colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func (c RGB) Luminance() float64 {
	r := gammaExpand(c.R / 255.0)
	g := gammaExpand(c.G / 255.0)
	b := gammaExpand(c.B / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaExpand linearises an sRGB colour component.
func gammaExpand(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

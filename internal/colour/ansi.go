package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured preview block for a colour.
// Width specifies how many characters wide the block should be.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix,
		roundChannel(c.R), roundChannel(c.G), roundChannel(c.B), ansiSuffix)

	return bg + strings.Repeat(" ", width) + ansiReset
}

// FormatWithPreview formats a colour with its preview block and hex code.
func FormatWithPreview(c RGB, width int) string {
	return fmt.Sprintf("%s %s", Preview(c, width), c.Hex())
}

// SpectrumStrip renders the colours as a single ANSI strip of the given
// total width, each colour's share proportional to its population. Every
// colour gets at least one cell, so the strip can exceed the requested
// width when it holds more colours than cells.
func SpectrumStrip(colors []PaletteColor, width int) string {
	if len(colors) == 0 || width <= 0 {
		return ""
	}

	total := 0
	for _, c := range colors {
		total += c.Population
	}
	if total == 0 {
		return ""
	}

	var sb strings.Builder
	remaining := width
	for i, c := range colors {
		cells := width * c.Population / total
		if cells < 1 {
			cells = 1
		}
		// Last colour absorbs the rounding remainder.
		if i == len(colors)-1 && remaining > cells {
			cells = remaining
		}
		remaining -= cells
		sb.WriteString(Preview(c.RGB, cells))
	}
	return sb.String()
}

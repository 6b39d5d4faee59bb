package colour

import (
	"errors"
	"slices"
)

// ErrEmptyPalette is returned when classification is asked to build a
// palette from zero clusters, which happens for empty or fully transparent
// input.
var ErrEmptyPalette = errors.New("no colours available to build a palette")

// Classify assigns semantic roles to a ranked colour sequence as produced by
// Quantizer.Quantize. The first (highest-population) entry becomes the
// dominant colour; the remaining roles are each selected independently over
// the full candidate set.
func Classify(colors []PaletteColor) (*Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}

	p := &Palette{AllColors: slices.Clone(colors)}
	all := p.AllColors
	p.Dominant = &all[0]

	// Guard the divisor: population is normally >= 1 for every candidate.
	domPop := p.Dominant.Population
	if domPop == 0 {
		domPop = 1
	}

	// Vibrant keeps the eligible candidate with the strictly highest
	// saturation score, weighted by population share. First seen wins ties.
	var vibrant *PaletteColor
	var bestScore float64
	for i := range all {
		c := &all[i]
		if c.HSL.S <= 0.3 || c.HSL.S > 1 || c.HSL.L <= 0.3 || c.HSL.L >= 0.8 {
			continue
		}
		popRatio := float64(c.Population) / float64(domPop)
		score := c.HSL.S * (1 + popRatio*0.5)
		if vibrant == nil || score > bestScore {
			vibrant = c
			bestScore = score
		}
	}
	switch {
	case vibrant != nil:
	case p.Dominant.IsVibrant:
		vibrant = p.Dominant
	case len(all) > 1:
		vibrant = &all[1]
	default:
		vibrant = p.Dominant
	}
	p.Vibrant = vibrant

	p.DarkVibrant = mostPopulous(all, func(c *PaletteColor) bool {
		return c.HSL.L < 0.4 && c.HSL.S > 0.2
	})
	p.LightVibrant = mostPopulous(all, func(c *PaletteColor) bool {
		return c.HSL.L > 0.7 && c.HSL.S > 0.2
	})
	p.Muted = mostPopulous(all, func(c *PaletteColor) bool {
		return c.HSL.S < 0.3 && c.HSL.L > 0.2 && c.HSL.L < 0.8
	})

	return p, nil
}

// mostPopulous returns the first-seen candidate with the greatest population
// among those the predicate accepts, or nil when none qualify.
func mostPopulous(all []PaletteColor, eligible func(*PaletteColor) bool) *PaletteColor {
	var best *PaletteColor
	for i := range all {
		c := &all[i]
		if !eligible(c) {
			continue
		}
		if best == nil || c.Population > best.Population {
			best = c
		}
	}
	return best
}

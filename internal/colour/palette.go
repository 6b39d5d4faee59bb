// Package colour implements palette extraction from raw pixel data: colour
// space conversion, bounded k-means quantisation, and semantic role
// classification.
package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RGB is a colour in RGB space. Components are nominally in [0, 255] but may
// be fractional while a value is still an unrounded k-means centroid.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// String returns the colour as a string in the format "rgb(r, g, b)" with
// channels rounded to integers.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", roundChannel(c.R), roundChannel(c.G), roundChannel(c.B))
}

// HSL is a colour in HSL space: hue in degrees [0, 360), saturation and
// lightness in [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// PaletteColor is one ranked colour cluster produced by the quantiser.
type PaletteColor struct {
	RGB        RGB     `json:"rgb"`
	HSL        HSL     `json:"hsl"`
	Hex        string  `json:"hex"`
	Population int     `json:"population"`
	Score      float64 `json:"score"`
	IsVibrant  bool    `json:"is_vibrant"`
	IsDark     bool    `json:"is_dark"`
	IsLight    bool    `json:"is_light"`
}

// Palette is the classified output of the extraction pipeline. Dominant is
// always set; the other role pointers may be nil when no colour qualified.
// Role pointers alias entries of AllColors rather than holding copies, so a
// returned palette must be treated as read-only.
type Palette struct {
	Dominant     *PaletteColor  `json:"dominant"`
	Vibrant      *PaletteColor  `json:"vibrant"`
	Muted        *PaletteColor  `json:"muted"`
	DarkVibrant  *PaletteColor  `json:"dark_vibrant"`
	LightVibrant *PaletteColor  `json:"light_vibrant"`
	AllColors    []PaletteColor `json:"all_colors"`
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.AllColors)
}

// ToJSON converts the palette to indented JSON. Unassigned roles serialise
// as null.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// Role names in display order.
const (
	RoleDominant     = "dominant"
	RoleVibrant      = "vibrant"
	RoleMuted        = "muted"
	RoleDarkVibrant  = "dark-vibrant"
	RoleLightVibrant = "light-vibrant"
)

// NamedRole pairs a role name with its assigned colour, which is nil when no
// colour qualified for the role.
type NamedRole struct {
	Name   string
	Colour *PaletteColor
}

// Roles returns the palette's role assignments in display order.
func (p *Palette) Roles() []NamedRole {
	return []NamedRole{
		{RoleDominant, p.Dominant},
		{RoleVibrant, p.Vibrant},
		{RoleMuted, p.Muted},
		{RoleDarkVibrant, p.DarkVibrant},
		{RoleLightVibrant, p.LightVibrant},
	}
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	if p.Len() == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d colours:\n", p.Len())
	for _, role := range p.Roles() {
		if role.Colour == nil {
			fmt.Fprintf(&sb, "  %-14s (none)\n", role.Name)
			continue
		}
		fmt.Fprintf(&sb, "  %-14s %s (%s, population %d)\n",
			role.Name, role.Colour.Hex, role.Colour.RGB.String(), role.Colour.Population)
	}
	return sb.String()
}

package tmpfmt

import "strings"

// Colors used by the demo compositions, as RRGGBB without '#'.
const (
	Black  = "000000"
	Blue   = "3498db"
	Green  = "2ecc71"
	Red    = "e74c3c"
	Purple = "9b59b6"
	White  = "ffffff"
	Yellow = "f1c40f"
)

// Palette maps color names to RRGGBB values.
type Palette map[string]string

// DefaultPalette returns a fresh copy of the built-in named colors.
func DefaultPalette() Palette {
	return Palette{
		"black":  Black,
		"blue":   Blue,
		"green":  Green,
		"red":    Red,
		"purple": Purple,
		"white":  White,
		"yellow": Yellow,
	}
}

// Merge returns a palette with the entries of other layered over p.
// Names are case-insensitive; values lose a leading '#'.
func (p Palette) Merge(other map[string]string) Palette {
	out := make(Palette, len(p)+len(other))
	for name, hex := range p {
		out[strings.ToLower(name)] = strings.TrimPrefix(hex, "#")
	}
	for name, hex := range other {
		out[strings.ToLower(name)] = strings.TrimPrefix(hex, "#")
	}
	return out
}

// Resolve turns a color name or hex value into the RRGGBB form the
// builder expects. Unknown names are returned unchanged (minus any '#').
func (p Palette) Resolve(color string) string {
	color = strings.TrimSpace(color)
	if hex, ok := p[strings.ToLower(color)]; ok {
		return hex
	}
	return strings.TrimPrefix(color, "#")
}

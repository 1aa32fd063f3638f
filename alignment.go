package tmpfmt

import (
	"fmt"
	"strings"
)

// Alignment is the horizontal alignment applied by Builder.Align.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	AlignJustified
)

// DefaultAlignment is used for any value outside the enumeration.
const DefaultAlignment = AlignLeft

// String returns the tag token for a. Unknown values render as the
// DefaultAlignment token.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignJustified:
		return "justified"
	default:
		return DefaultAlignment.String()
	}
}

// ParseAlignment maps a tag token (case-insensitive, surrounding space
// ignored) back to an Alignment.
func ParseAlignment(value string) (Alignment, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignCenter, nil
	case "justified", "justify":
		return AlignJustified, nil
	default:
		return DefaultAlignment, fmt.Errorf("invalid alignment %q (use left, right, center, or justified)", value)
	}
}

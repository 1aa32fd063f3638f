package tmpfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteResolve(t *testing.T) {
	p := DefaultPalette().Merge(map[string]string{"Brand": "#112233", "red": "ff0000"})

	assert.Equal(t, "112233", p.Resolve("brand"))
	assert.Equal(t, "ff0000", p.Resolve("RED"))
	assert.Equal(t, Blue, p.Resolve("blue"))
	assert.Equal(t, "abcdef", p.Resolve("#abcdef"))
	assert.Equal(t, "unknown", p.Resolve("unknown"))

	// Merge does not modify the receiver.
	assert.Equal(t, Red, DefaultPalette().Resolve("red"))
}

func TestValidateColor(t *testing.T) {
	assert.NoError(t, ValidateColor("a1B2c3"))
	assert.NoError(t, ValidateColor("a1B2c380"))
	assert.ErrorIs(t, ValidateColor("#a1b2c3"), ErrInvalidColor)
	assert.ErrorIs(t, ValidateColor("12345g"), ErrInvalidColor)
	assert.ErrorIs(t, ValidateColor(""), ErrInvalidColor)
}

// Tests for the wrap flag-to-fragment mapping.
// Focus: canonical style order regardless of which flags are set.
package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandover/tmpfmt/internal/compose"
)

func renderWrap(t *testing.T, text string, w WrapOptions) string {
	t.Helper()
	frag, err := w.fragment(text)
	require.NoError(t, err)
	cfg := Config{}
	markup, err := renderDocument(&compose.Document{Fragments: []compose.Fragment{frag}}, cfg)
	require.NoError(t, err)
	return markup
}

func TestWrapFragment_CanonicalOrder(t *testing.T) {
	got := renderWrap(t, "Game Over", WrapOptions{
		Opacity:    0.5,
		SetOpacity: true,
		Color:      "red",
		Bold:       true,
		Uppercase:  true,
		Size:       40,
		SetSize:    true,
	})
	assert.Equal(t, "<alpha=#7F><color=#e74c3c><size=40><b>GAME OVER</b></size></color><alpha=#FF>", got)
}

func TestWrapFragment_SpriteAfterStyling(t *testing.T) {
	got := renderWrap(t, "hp", WrapOptions{Italic: true, Sprite: 3, SetSprite: true})
	assert.Equal(t, "<i>hp</i><sprite=3>", got)
}

func TestWrapFragment_ZeroValuesNeedExplicitFlags(t *testing.T) {
	assert.Equal(t, "plain", renderWrap(t, "plain", WrapOptions{}))
	assert.Equal(t, "<size=0>z</size>", renderWrap(t, "z", WrapOptions{SetSize: true}))
	assert.Equal(t, "<rotate=0>r</rotate>", renderWrap(t, "r", WrapOptions{SetRotate: true}))
}

func TestWrapFragment_Gradient(t *testing.T) {
	got := renderWrap(t, "fade", WrapOptions{Gradient: "blue, white", Align: "center"})
	assert.Equal(t, "<align=center><gradient=#3498db,#ffffff>fade</gradient></align>", got)

	_, err := WrapOptions{Gradient: "blue"}.fragment("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage:")
}

func TestWrapText_JoinsArgs(t *testing.T) {
	text, err := wrapText([]string{"Game", "Over"}, WrapOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Game Over", text)

	_, err = wrapText([]string{"x"}, WrapOptions{Stdin: true})
	require.Error(t, err)
}

package compose

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentJSON(t *testing.T) {
	input := `{"separator":"\n","fragments":[[{"text":"Here "},{"color":"red"}],[{"sprite":1}]]}`
	doc, verr := ParseDocument([]byte(input), FormatAuto)
	require.Nil(t, verr)
	assert.Equal(t, "\n", doc.Separator)
	require.Len(t, doc.Fragments, 2)
	assert.Equal(t, Fragment{Text("Here "), Color("red")}, doc.Fragments[0])
	assert.Equal(t, Fragment{Sprite(1)}, doc.Fragments[1])
}

func TestParseDocumentBareList(t *testing.T) {
	doc, verr := ParseDocument([]byte(`[[{"text":"x"},{"bold":true}]]`), FormatJSON)
	require.Nil(t, verr)
	assert.Equal(t, []Fragment{{Text("x"), Bold()}}, doc.Fragments)

	doc, verr = ParseDocument([]byte("- - text: x\n  - italic: true\n"), FormatAuto)
	require.Nil(t, verr)
	assert.Equal(t, []Fragment{{Text("x"), Italic()}}, doc.Fragments)
}

func TestParseDocumentYAML(t *testing.T) {
	input := `
separator: " "
fragments:
  - - text: Decreasing
    - opacity: 0.5
  - - text: Rotated
    - rotate: 30
  - - text: Fade
    - gradient: {from: red, to: blue, angle: 45}
`
	doc, verr := ParseDocument([]byte(input), FormatYAML)
	require.Nil(t, verr)
	assert.Equal(t, " ", doc.Separator)
	assert.Equal(t, []Fragment{
		{Text("Decreasing"), Opacity(0.5)},
		{Text("Rotated"), Rotate(30)},
		{Text("Fade"), Gradient("red", "blue", 45)},
	}, doc.Fragments)
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"empty", "   ", FormatAuto},
		{"bad json", `{"fragments":`, FormatAuto},
		{"bad yaml", "fragments: [", FormatYAML},
		{"wrong type", `{"fragments":[[{"size":"big"}]]}`, FormatJSON},
		{"markdown is not a document", "# hi", FormatMarkdown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, verr := ParseDocument([]byte(tt.input), tt.format)
			assert.Nil(t, doc)
			require.NotNil(t, verr)
			assert.Equal(t, "parse_error", verr.Error)

			var buf bytes.Buffer
			require.NoError(t, verr.WriteJSON(&buf))
			assert.Contains(t, buf.String(), `"error":"parse_error"`)
		})
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"":         FormatAuto,
		"JSON":     FormatJSON,
		"yml":      FormatYAML,
		" md ":     FormatMarkdown,
		"markdown": FormatMarkdown,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
	_, err := ParseFormat("toml")
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("doc.JSON"))
	assert.Equal(t, FormatYAML, FormatFromPath("a/b.yml"))
	assert.Equal(t, FormatMarkdown, FormatFromPath("README.md"))
	assert.Equal(t, FormatAuto, FormatFromPath("-"))
}

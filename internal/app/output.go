// JSON output shapes for --json mode.
package app

import (
	"encoding/json"
	"io"
)

type renderOutput struct {
	Markup string `json:"markup"`
	Out    string `json:"out,omitempty"`
}

type galleryItem struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Markup string `json:"markup"`
}

type versionOutput struct {
	Version string `json:"version"`
}

// writeJSON encodes v without HTML escaping so tags stay readable.
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

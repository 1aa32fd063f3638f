// Purpose: Turn command input into a validated-ready document.
// Exports: none (package-private helpers).
// Role: Shared by render, preview and watch.
// Invariants: Markdown input never goes through the JSON/YAML decoder.
package app

import (
	"errors"

	"github.com/sandover/tmpfmt/internal/compose"
)

// documentError carries a structured validation error through plain
// error returns so commands can print it as JSON.
type documentError struct {
	verr *compose.ValidationError
}

func (e *documentError) Error() string {
	return e.verr.GoError().Error()
}

// ValidationDetails returns the structured error behind err, if any.
func ValidationDetails(err error) (*compose.ValidationError, bool) {
	var de *documentError
	if !errors.As(err, &de) {
		return nil, false
	}
	return de.verr, true
}

func loadDocument(path string, format compose.Format, cfg Config) (*compose.Document, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	if format == compose.FormatAuto && path != "" && path != "-" {
		format = compose.FormatFromPath(path)
	}
	if format == compose.FormatMarkdown {
		return compose.FromMarkdown(data, cfg.markdownOptions()), nil
	}
	doc, verr := compose.ParseDocument(data, format)
	if verr != nil {
		return nil, &documentError{verr: verr}
	}
	return doc, nil
}

func renderDocument(doc *compose.Document, cfg Config) (string, error) {
	markup, verr := compose.Render(doc, cfg.renderOptions())
	if verr != nil {
		return "", &documentError{verr: verr}
	}
	return markup, nil
}

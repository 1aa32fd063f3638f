// Document validation with structured errors.
//
// Errors are reported per op path so callers piping documents in can fix
// them without guessing:
//
//	{"error":"validation_failed","message":"invalid document","invalid":{"fragments[0][1]":"sets bold, text; use one field per op"}}
package compose

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sandover/tmpfmt"
)

// ValidationError is a structured error for document parsing and validation.
type ValidationError struct {
	Error   string            `json:"error"`             // "validation_failed" or "parse_error"
	Message string            `json:"message"`           // human-readable summary
	Missing []string          `json:"missing,omitempty"` // list of missing required fields
	Invalid map[string]string `json:"invalid,omitempty"` // op path -> reason
}

// GoError flattens the validation error into a plain error.
func (e *ValidationError) GoError() error {
	parts := []string{e.Message}

	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing required: %s", strings.Join(e.Missing, ", ")))
	}

	paths := make([]string, 0, len(e.Invalid))
	for path := range e.Invalid {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		parts = append(parts, fmt.Sprintf("%s: %s", path, e.Invalid[path]))
	}

	return fmt.Errorf("%s", strings.Join(parts, "; "))
}

// WriteJSON writes the validation error as JSON to the given writer.
func (e *ValidationError) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(e)
}

func parseError(format string, args ...any) *ValidationError {
	return &ValidationError{
		Error:   "parse_error",
		Message: fmt.Sprintf(format, args...),
	}
}

// Validate checks the document shape. With strict set, every fragment is
// also dry-run through a strict builder so bad colors, sizes and the like
// are reported before anything is emitted.
func (d *Document) Validate(opts RenderOptions) *ValidationError {
	var missing []string
	invalid := make(map[string]string)

	if len(d.Fragments) == 0 {
		missing = append(missing, "fragments")
	}

	for i, frag := range d.Fragments {
		if len(frag) == 0 {
			invalid[fragmentPath(i)] = "empty fragment"
			continue
		}
		for j, op := range frag {
			path := opPath(i, j)
			switch fields := op.fields(); len(fields) {
			case 0:
				invalid[path] = "empty op"
				continue
			case 1:
			default:
				invalid[path] = fmt.Sprintf("sets %s; use one field per op", strings.Join(fields, ", "))
				continue
			}
			if op.Align != nil {
				if _, err := tmpfmt.ParseAlignment(*op.Align); err != nil {
					invalid[path] = err.Error()
				}
			}
			if op.Gradient != nil && (op.Gradient.From == "" || op.Gradient.To == "") {
				invalid[path] = "gradient needs from and to"
			}
		}
	}

	if opts.Strict && len(invalid) == 0 {
		b := tmpfmt.New(tmpfmt.WithStrict())
		palette := opts.palette()
		for i, frag := range d.Fragments {
			for j, op := range frag {
				applyOp(b, op, palette)
				if err := b.Err(); err != nil {
					invalid[opPath(i, j)] = err.Error()
					break
				}
			}
			b.Clear()
		}
	}

	if len(missing) == 0 && len(invalid) == 0 {
		return nil
	}
	return &ValidationError{
		Error:   "validation_failed",
		Message: "invalid document",
		Missing: missing,
		Invalid: invalid,
	}
}

func fragmentPath(i int) string {
	return fmt.Sprintf("fragments[%d]", i)
}

func opPath(i, j int) string {
	return fmt.Sprintf("fragments[%d][%d]", i, j)
}

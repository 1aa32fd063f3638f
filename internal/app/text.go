// Purpose: Render help/quickstart text for the terminal.
// Exports: UsageText, QuickstartText.
// Role: Documentation rendering for CLI output.
// Invariants: Marker substitution is deterministic and idempotent.
// Notes: Embedded text must cover every command and flag.
package app

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGreen = "\x1b[32m"
	ansiCyan  = "\x1b[36m"
)

//go:embed help.txt
var helpTextRaw string

//go:embed quickstart.md
var quickstartMarkdown string

// UsageText returns the help text, colorized if color is true.
func UsageText(color bool) string {
	return applyMarkers(helpTextRaw, color)
}

// QuickstartText returns the quickstart guide. With color it is rendered
// through glamour; without it, or if rendering fails, the raw Markdown is
// returned.
func QuickstartText(color bool, width int) string {
	raw := strings.TrimSuffix(quickstartMarkdown, "\n")
	if !color {
		return raw
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return raw
	}
	out, err := r.Render(quickstartMarkdown)
	if err != nil {
		return raw
	}
	return strings.TrimSuffix(out, "\n")
}

// applyMarkers replaces {{MARKER}} tokens with ANSI codes or strips them.
func applyMarkers(text string, color bool) string {
	replacements := []struct {
		marker  string
		colored string
		plain   string
	}{
		{"{{BOLD}}", ansiBold, ""},
		{"{{CYAN}}", ansiCyan, ""},
		{"{{DIM}}", ansiDim, ""},
		{"{{GREEN}}", ansiGreen, ""},
		{"{{RESET}}", ansiReset, ""},
		{"{{HEADER}}", ansiBold + ansiCyan, ""},
		{"{{CMD}}", "  " + ansiGreen + "$" + ansiReset + " ", "  $ "},
		{"{{COMMENT}}", "    " + ansiDim + "# ", "    # "},
	}

	for _, r := range replacements {
		if color {
			text = strings.ReplaceAll(text, r.marker, r.colored)
		} else {
			text = strings.ReplaceAll(text, r.marker, r.plain)
		}
	}

	return strings.TrimSuffix(text, "\n")
}

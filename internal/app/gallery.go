// Purpose: Built-in demo compositions and the `examples` command.
// Exports: RunExamples.
// Role: Shows what each style produces without writing a document.
// Invariants: Gallery order is the file order; output is deterministic.
package app

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/sandover/tmpfmt/internal/compose"
)

//go:embed gallery.yaml
var galleryYAML []byte

type galleryEntry struct {
	Name     string           `yaml:"name"`
	Title    string           `yaml:"title"`
	Document compose.Document `yaml:"document"`
}

func loadGallery() ([]galleryEntry, error) {
	var entries []galleryEntry
	if err := yaml.Unmarshal(galleryYAML, &entries); err != nil {
		return nil, fmt.Errorf("gallery: %w", err)
	}
	return entries, nil
}

// renderGallery renders the named entry, or all entries when name is empty.
func renderGallery(name string, cfg Config) ([]galleryItem, error) {
	entries, err := loadGallery()
	if err != nil {
		return nil, err
	}
	var items []galleryItem
	for i := range entries {
		e := &entries[i]
		if name != "" && e.Name != name {
			continue
		}
		markup, err := renderDocument(&e.Document, cfg)
		if err != nil {
			return nil, fmt.Errorf("gallery %s: %w", e.Name, err)
		}
		items = append(items, galleryItem{Name: e.Name, Title: e.Title, Markup: markup})
	}
	if name != "" && len(items) == 0 {
		return nil, fmt.Errorf("usage: unknown example %q (have %s)", name, strings.Join(galleryNames(entries), ", "))
	}
	return items, nil
}

func galleryNames(entries []galleryEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func RunExamples(name string, opts GlobalOptions) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	items, err := renderGallery(name, cfg)
	if err != nil {
		return err
	}
	if opts.Quiet {
		return nil
	}
	if opts.JSON {
		return writeJSON(os.Stdout, items)
	}
	// A single example prints raw so it can be piped into a text asset.
	if name != "" {
		fmt.Println(items[0].Markup)
		return nil
	}
	fmt.Print(formatGalleryTable(items, terminalWidth(100)))
	return nil
}

// formatGalleryTable lays out name and markup columns, one line per
// example. Newlines in markup are shown as \n to keep rows single-line.
func formatGalleryTable(items []galleryItem, width int) string {
	nameWidth := 0
	for _, it := range items {
		nameWidth = max(nameWidth, runewidth.StringWidth(it.Name))
	}
	var sb strings.Builder
	for _, it := range items {
		markup := strings.ReplaceAll(it.Markup, "\n", `\n`)
		sb.WriteString(runewidth.FillRight(it.Name, nameWidth))
		sb.WriteString("  ")
		sb.WriteString(truncateToWidth(markup, width-nameWidth-2))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// truncateToWidth cuts s to maxWidth display columns, ending in an
// ellipsis when anything was dropped.
func truncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

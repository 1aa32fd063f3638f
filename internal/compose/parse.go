// Purpose: Decode fragment documents from JSON or YAML bytes.
// Exports: Format, ParseFormat, FormatFromPath, ParseDocument.
// Role: Input boundary for CLI files, stdin and HTTP bodies.
// Invariants: A bare top-level list is shorthand for {fragments: [...]}.
// Notes: Markdown is a Format here but is converted by FromMarkdown.
package compose

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatAuto     Format = "auto"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

func ParseFormat(value string) (Format, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid format %s (use auto, json, yaml, or markdown)", value)
	}
}

// FormatFromPath guesses the format from a file extension, falling back
// to FormatAuto.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatAuto
	}
}

// ParseDocument decodes a JSON or YAML document. FormatAuto treats input
// starting with '{' or '[' as JSON and anything else as YAML.
func ParseDocument(data []byte, format Format) (*Document, *ValidationError) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, parseError("no input: provide a document")
	}

	if format == FormatAuto {
		format = FormatYAML
		if trimmed[0] == '{' || trimmed[0] == '[' {
			format = FormatJSON
		}
	}

	var doc Document
	switch format {
	case FormatJSON:
		if trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &doc.Fragments); err != nil {
				return nil, parseError("invalid JSON: %v", err)
			}
			return &doc, nil
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, parseError("invalid JSON: %v", err)
		}
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(trimmed, &node); err != nil {
			return nil, parseError("invalid YAML: %v", err)
		}
		target := any(&doc)
		if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
			target = &doc.Fragments
		}
		if err := node.Decode(target); err != nil {
			return nil, parseError("invalid YAML: %v", err)
		}
	default:
		return nil, parseError("unsupported document format %s", format)
	}
	return &doc, nil
}

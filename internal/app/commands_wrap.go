// Purpose: Style a single fragment from command-line flags.
// Exports: WrapOptions, RunWrap.
// Role: Quick path for one-off strings without writing a document.
// Invariants: Styles apply in a fixed order regardless of flag order;
// opacity is always last because its reset tag does not nest.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sandover/tmpfmt/internal/compose"
)

type WrapOptions struct {
	Stdin         bool
	Uppercase     bool
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Font          string
	Size          int
	Color         string
	Gradient      string // FROM,TO
	Rotate        float32
	Align         string
	Opacity       float32
	Sprite        int

	// Set* record which optional numeric flags were given.
	SetSize    bool
	SetRotate  bool
	SetOpacity bool
	SetSprite  bool
}

func RunWrap(args []string, wopts WrapOptions, opts GlobalOptions) error {
	text, err := wrapText(args, wopts)
	if err != nil {
		return err
	}
	frag, err := wopts.fragment(text)
	if err != nil {
		return err
	}
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	markup, err := renderDocument(&compose.Document{Fragments: []compose.Fragment{frag}}, cfg)
	if err != nil {
		return err
	}
	return emitMarkup(markup, RenderOptions{}, opts)
}

func wrapText(args []string, wopts WrapOptions) (string, error) {
	if wopts.Stdin {
		if len(args) > 0 {
			return "", errors.New("usage: text arguments and --stdin are mutually exclusive")
		}
		if !stdinIsPiped() {
			return "", nil
		}
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(string(b), "\n"), nil
	}
	return strings.Join(args, " "), nil
}

// fragment turns flags into ops in canonical order.
func (w WrapOptions) fragment(text string) (compose.Fragment, error) {
	frag := compose.Fragment{compose.Text(text)}
	add := func(set bool, op compose.Op) {
		if set {
			frag = append(frag, op)
		}
	}
	add(w.Uppercase, compose.Uppercase())
	add(w.Bold, compose.Bold())
	add(w.Italic, compose.Italic())
	add(w.Underline, compose.Underline())
	add(w.Strikethrough, compose.Strikethrough())
	add(w.Font != "", compose.Font(w.Font))
	add(w.SetSize, compose.Size(w.Size))
	add(w.Color != "", compose.Color(w.Color))
	if w.Gradient != "" {
		from, to, ok := strings.Cut(w.Gradient, ",")
		if !ok || strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return nil, fmt.Errorf("usage: --gradient takes FROM,TO (got %q)", w.Gradient)
		}
		frag = append(frag, compose.Gradient(strings.TrimSpace(from), strings.TrimSpace(to), 0))
	}
	add(w.SetRotate, compose.Rotate(w.Rotate))
	add(w.Align != "", compose.Align(w.Align))
	add(w.SetOpacity, compose.Opacity(w.Opacity))
	add(w.SetSprite, compose.Sprite(w.Sprite))
	return frag, nil
}

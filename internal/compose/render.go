package compose

import (
	"strings"

	"github.com/sandover/tmpfmt"
)

// RenderOptions controls how documents become markup.
type RenderOptions struct {
	// Palette resolves color names; nil means tmpfmt.DefaultPalette.
	Palette tmpfmt.Palette
	// Strict validates builder arguments before rendering.
	Strict bool
}

func (o RenderOptions) palette() tmpfmt.Palette {
	if o.Palette == nil {
		return tmpfmt.DefaultPalette()
	}
	return o.Palette
}

// Render validates doc and renders it to markup. Each fragment runs on the
// same builder and is drained with Flush before the next one starts.
func Render(doc *Document, opts RenderOptions) (string, *ValidationError) {
	if verr := doc.Validate(opts); verr != nil {
		return "", verr
	}

	palette := opts.palette()
	b := tmpfmt.New()
	var out strings.Builder
	for i, frag := range doc.Fragments {
		if i > 0 {
			out.WriteString(doc.Separator)
		}
		for _, op := range frag {
			applyOp(b, op, palette)
		}
		out.WriteString(b.Flush())
	}
	return out.String(), nil
}

// applyOp runs one step against b. Ops are assumed to be validated; a
// disabled toggle (bold: false) is a no-op.
func applyOp(b *tmpfmt.Builder, op Op, palette tmpfmt.Palette) {
	switch {
	case op.Text != nil:
		b.AppendText(*op.Text)
	case op.Newline != nil:
		if *op.Newline {
			b.AppendText("\n")
		}
	case op.Bold != nil:
		if *op.Bold {
			b.Bold()
		}
	case op.Italic != nil:
		if *op.Italic {
			b.Italicize()
		}
	case op.Underline != nil:
		if *op.Underline {
			b.Underline()
		}
	case op.Strikethrough != nil:
		if *op.Strikethrough {
			b.Strikethrough()
		}
	case op.Color != nil:
		b.SetColor(palette.Resolve(*op.Color))
	case op.Size != nil:
		b.SetSize(*op.Size)
	case op.Font != nil:
		b.SetFont(*op.Font)
	case op.Sprite != nil:
		b.InsertSprite(*op.Sprite)
	case op.Opacity != nil:
		b.SetOpacity(*op.Opacity)
	case op.Align != nil:
		alignment, _ := tmpfmt.ParseAlignment(*op.Align)
		b.Align(alignment)
	case op.Gradient != nil:
		g := op.Gradient
		b.Gradient(palette.Resolve(g.From), palette.Resolve(g.To), g.Angle)
	case op.Rotate != nil:
		b.Rotate(*op.Rotate)
	case op.Uppercase != nil:
		if *op.Uppercase {
			b.Uppercase()
		}
	}
}

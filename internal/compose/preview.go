// Purpose: Approximate a document on a terminal.
// Exports: PreviewOptions, Preview.
// Role: Lets humans eyeball documents without the target renderer.
// Invariants: Works from document ops only; never parses produced markup.
// Notes: Size, font, align and rotate have no terminal equivalent and are dropped.
package compose

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/sandover/tmpfmt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// faintBelow is the opacity under which preview text renders faint.
const faintBelow = 0.5

type PreviewOptions struct {
	Palette tmpfmt.Palette
	// Color enables ANSI styling; without it the preview is plain text.
	Color bool
}

// segment is a run of text with the styles that wrapped it so far.
type segment struct {
	text      string
	sprite    bool
	bold      bool
	italic    bool
	underline bool
	strike    bool
	faint     bool
	fg        string
	gradient  *[2]string
}

// Preview renders doc for a terminal. Wrapping ops apply to every segment
// accumulated in the fragment, mirroring how the builder wraps its buffer;
// the innermost color wins, as in the target renderer.
func Preview(doc *Document, opts PreviewOptions) string {
	palette := RenderOptions{Palette: opts.Palette}.palette()
	var r *lipgloss.Renderer
	if opts.Color {
		r = lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.TrueColor)
	}

	var out strings.Builder
	for i, frag := range doc.Fragments {
		if i > 0 {
			out.WriteString(doc.Separator)
		}
		for _, seg := range previewFragment(frag, palette) {
			out.WriteString(seg.render(r))
		}
	}
	return out.String()
}

func previewFragment(frag Fragment, palette tmpfmt.Palette) []segment {
	var segs []segment
	each := func(fn func(s *segment)) {
		for i := range segs {
			fn(&segs[i])
		}
	}
	for _, op := range frag {
		switch {
		case op.Text != nil:
			segs = append(segs, segment{text: *op.Text})
		case op.Newline != nil && *op.Newline:
			segs = append(segs, segment{text: "\n"})
		case op.Sprite != nil:
			segs = append(segs, segment{text: fmt.Sprintf("[sprite %d]", *op.Sprite), sprite: true})
		case op.Bold != nil && *op.Bold:
			each(func(s *segment) { s.bold = true })
		case op.Italic != nil && *op.Italic:
			each(func(s *segment) { s.italic = true })
		case op.Underline != nil && *op.Underline:
			each(func(s *segment) { s.underline = true })
		case op.Strikethrough != nil && *op.Strikethrough:
			each(func(s *segment) { s.strike = true })
		case op.Color != nil:
			hex := palette.Resolve(*op.Color)
			each(func(s *segment) {
				if s.fg == "" && s.gradient == nil {
					s.fg = hex
				}
			})
		case op.Gradient != nil:
			g := [2]string{palette.Resolve(op.Gradient.From), palette.Resolve(op.Gradient.To)}
			each(func(s *segment) {
				if s.fg == "" && s.gradient == nil {
					s.gradient = &g
				}
			})
		case op.Opacity != nil:
			faint := *op.Opacity < faintBelow
			each(func(s *segment) { s.faint = s.faint || faint })
		case op.Uppercase != nil && *op.Uppercase:
			upper := cases.Upper(language.Und)
			each(func(s *segment) {
				if !s.sprite {
					s.text = upper.String(s.text)
				}
			})
		}
	}
	return segs
}

func (s segment) render(r *lipgloss.Renderer) string {
	if r == nil {
		return s.text
	}
	style := r.NewStyle().
		Bold(s.bold).
		Italic(s.italic).
		Underline(s.underline).
		Strikethrough(s.strike).
		Faint(s.faint || s.sprite)

	// lipgloss pads multi-line input to a block, so style line by line.
	lines := strings.Split(s.text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		switch {
		case s.gradient != nil:
			lines[i] = renderGradient(style, line, s.gradient[0], s.gradient[1])
		case s.fg != "":
			if c, ok := parseHex(s.fg); ok {
				lines[i] = style.Foreground(lipgloss.Color(c.Hex())).Render(line)
			} else {
				lines[i] = style.Render(line)
			}
		default:
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// renderGradient blends from -> to across the runes of line in Lab space.
func renderGradient(style lipgloss.Style, line, from, to string) string {
	start, ok1 := parseHex(from)
	end, ok2 := parseHex(to)
	if !ok1 || !ok2 {
		return style.Render(line)
	}
	runes := []rune(line)
	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := start.BlendLab(end, t).Clamped()
		b.WriteString(style.Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// parseHex reads RRGGBB or RRGGBBAA (alpha ignored) without '#'.
func parseHex(hex string) (colorful.Color, bool) {
	if tmpfmt.ValidateColor(hex) != nil {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex("#" + hex[:6])
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

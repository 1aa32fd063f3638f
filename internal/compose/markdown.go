package compose

import (
	"strconv"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// MarkdownOptions tunes the Markdown to document conversion.
type MarkdownOptions struct {
	// CodeFont is applied to code spans and blocks; empty leaves code unstyled.
	CodeFont string
	// HeadingSizes[n-1] is the size of a level n heading; missing levels
	// are only bolded.
	HeadingSizes []int
	// Bullet prefixes list items.
	Bullet string
}

func DefaultMarkdownOptions() MarkdownOptions {
	return MarkdownOptions{
		CodeFont:     "LiberationMono SDF",
		HeadingSizes: []int{48, 36, 28, 24, 20, 18},
		Bullet:       "• ",
	}
}

// FromMarkdown converts CommonMark (plus ~~strikethrough~~) into a document.
// Every text run becomes one fragment wrapped by its inline ancestors,
// innermost first; block ends emit a newline fragment.
func FromMarkdown(src []byte, opts MarkdownOptions) *Document {
	md := goldmark.New(goldmark.WithExtensions(extension.Strikethrough))
	root := md.Parser().Parse(text.NewReader(src))

	c := &mdConverter{src: src, opts: opts, doc: &Document{}}
	c.blocks(root)
	return c.doc
}

type mdConverter struct {
	src  []byte
	opts MarkdownOptions
	doc  *Document
}

func (c *mdConverter) blocks(parent gmast.Node) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *gmast.Heading:
			wrappers := []Op{Bold()}
			if node.Level-1 < len(c.opts.HeadingSizes) {
				wrappers = append(wrappers, Size(c.opts.HeadingSizes[node.Level-1]))
			}
			c.inlines(node, wrappers)
			c.newline()
		case *gmast.Paragraph, *gmast.TextBlock:
			c.inlines(node, nil)
			c.newline()
		case *gmast.List:
			c.list(node)
		case *gmast.FencedCodeBlock, *gmast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				c.emit(string(seg.Value(c.src)), c.codeWrappers(nil))
			}
		case *gmast.ThematicBreak, *gmast.HTMLBlock:
		default:
			c.blocks(node)
		}
	}
}

// list prefixes items with the bullet, or with their number for ordered
// lists ("3. ", "4) ").
func (c *mdConverter) list(l *gmast.List) {
	n := l.Start
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		prefix := c.opts.Bullet
		if l.IsOrdered() {
			prefix = strconv.Itoa(n) + string(l.Marker) + " "
			n++
		}
		c.emit(prefix, nil)
		c.blocks(item)
	}
}

func (c *mdConverter) inlines(parent gmast.Node, wrappers []Op) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *gmast.Text:
			s := string(unescape(node.Segment.Value(c.src)))
			switch {
			case node.HardLineBreak():
				s += "\n"
			case node.SoftLineBreak():
				s += " "
			}
			c.emit(s, wrappers)
		case *gmast.String:
			c.emit(string(node.Value), wrappers)
		case *gmast.Emphasis:
			op := Italic()
			if node.Level >= 2 {
				op = Bold()
			}
			c.inlines(node, prepend(op, wrappers))
		case *extast.Strikethrough:
			c.inlines(node, prepend(Strikethrough(), wrappers))
		case *gmast.CodeSpan:
			c.codeSpan(node, c.codeWrappers(wrappers))
		case *gmast.Link:
			c.inlines(node, prepend(Underline(), wrappers))
		case *gmast.AutoLink:
			c.emit(string(unescape(node.URL(c.src))), prepend(Underline(), wrappers))
		case *gmast.RawHTML:
		default:
			c.inlines(node, wrappers)
		}
	}
}

// codeSpan emits code text verbatim; escapes and entities are literal
// inside code.
func (c *mdConverter) codeSpan(node *gmast.CodeSpan, wrappers []Op) {
	for n := node.FirstChild(); n != nil; n = n.NextSibling() {
		switch t := n.(type) {
		case *gmast.Text:
			c.emit(string(t.Segment.Value(c.src)), wrappers)
		case *gmast.String:
			c.emit(string(t.Value), wrappers)
		}
	}
}

// unescape resolves backslash escapes and entity references the way
// CommonMark renderers do for text.
func unescape(v []byte) []byte {
	return util.UnescapePunctuations(util.ResolveEntityNames(util.ResolveNumericReferences(v)))
}

func (c *mdConverter) codeWrappers(wrappers []Op) []Op {
	if c.opts.CodeFont == "" {
		return wrappers
	}
	return prepend(Font(c.opts.CodeFont), wrappers)
}

func (c *mdConverter) emit(s string, wrappers []Op) {
	if s == "" {
		return
	}
	frag := make(Fragment, 0, len(wrappers)+1)
	frag = append(frag, Text(s))
	frag = append(frag, wrappers...)
	c.doc.Fragments = append(c.doc.Fragments, frag)
}

func (c *mdConverter) newline() {
	c.doc.Fragments = append(c.doc.Fragments, Fragment{Newline()})
}

func prepend(op Op, ops []Op) []Op {
	out := make([]Op, 0, len(ops)+1)
	out = append(out, op)
	return append(out, ops...)
}

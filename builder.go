// Purpose: Fluent builder that wraps accumulated text in rich-text tags.
// Exports: Builder, New, Option, WithStrict.
// Role: Core of the module; every other package renders through it.
// Invariants: Paired tags are prepended/appended together, so the last
// applied style is always the outermost pair.
// Notes: A Builder is single-owner; callers serialize concurrent access.
package tmpfmt

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Builder accumulates text and wraps it with markup tags.
// The zero value is an empty, non-strict builder ready to use.
type Builder struct {
	buf    []byte
	strict bool
	err    error
}

// Option configures a Builder.
type Option func(*Builder)

// WithStrict makes the builder validate its inputs. An invalid call leaves
// the buffer untouched and records the first error, see Err.
func WithStrict() Option {
	return func(b *Builder) {
		b.strict = true
	}
}

// New returns an empty builder.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AppendText appends text to the end of the buffer without wrapping it.
func (b *Builder) AppendText(text string) *Builder {
	b.buf = append(b.buf, text...)
	return b
}

// Bold wraps the buffer in <b>.
func (b *Builder) Bold() *Builder {
	return b.wrap("b")
}

// Italicize wraps the buffer in <i>.
func (b *Builder) Italicize() *Builder {
	return b.wrap("i")
}

// Underline wraps the buffer in <u>.
func (b *Builder) Underline() *Builder {
	return b.wrap("u")
}

// Strikethrough wraps the buffer in <s>.
func (b *Builder) Strikethrough() *Builder {
	return b.wrap("s")
}

// SetColor wraps the buffer in <color=#hex>. hex is given without the
// leading '#'.
func (b *Builder) SetColor(hex string) *Builder {
	if b.strict && b.fail(validateColor(hex)) {
		return b
	}
	return b.wrap("color", "#"+hex)
}

// SetSize wraps the buffer in <size=n>.
func (b *Builder) SetSize(size int) *Builder {
	if b.strict && b.fail(validateSize(size)) {
		return b
	}
	return b.wrap("size", strconv.Itoa(size))
}

// SetFont wraps the buffer in <font=name>, where name is a font asset.
func (b *Builder) SetFont(name string) *Builder {
	if b.strict && b.fail(validateFont(name)) {
		return b
	}
	return b.wrap("font", name)
}

// InsertSprite appends the singleton <sprite=index>.
func (b *Builder) InsertSprite(index int) *Builder {
	if b.strict && b.fail(validateSprite(index)) {
		return b
	}
	b.buf = append(b.buf, "<sprite="...)
	b.buf = strconv.AppendInt(b.buf, int64(index), 10)
	b.buf = append(b.buf, '>')
	return b
}

// SetOpacity prefixes the buffer with <alpha=#VV> and appends the
// singleton reset <alpha=#FF>. VV is opacity*255 truncated to an integer.
//
// The reset is not a closing tag, so opacity does not nest: apply it as
// the last styling step of a chain.
func (b *Builder) SetOpacity(opacity float32) *Builder {
	if b.strict && b.fail(validateOpacity(opacity)) {
		return b
	}
	b.surround(opacityTag(opacity), opacityReset)
	return b
}

// Align wraps the buffer in <align=...>. Values outside the Alignment
// enumeration align left.
func (b *Builder) Align(alignment Alignment) *Builder {
	return b.wrap("align", alignment.String())
}

// Gradient wraps the buffer in <gradient=#from,#to>. The angle is
// accepted for call compatibility and not emitted.
func (b *Builder) Gradient(from, to string, angle float32) *Builder {
	if b.strict && b.fail(validateColor(from), validateColor(to), validateAngle(angle)) {
		return b
	}
	return b.wrap("gradient", "#"+from+",#"+to)
}

// Rotate wraps the buffer in <rotate=angle>, angle in degrees.
func (b *Builder) Rotate(angle float32) *Builder {
	if b.strict && b.fail(validateAngle(angle)) {
		return b
	}
	return b.wrap("rotate", formatFloat(angle))
}

// Uppercase upper-cases the whole buffer, independent of any locale.
// Tags already in the buffer are upper-cased as well (<b> becomes <B>),
// so call it before applying styles.
func (b *Builder) Uppercase() *Builder {
	b.buf = cases.Upper(language.Und).Bytes(b.buf)
	return b
}

// String returns the buffer content.
func (b *Builder) String() string {
	return string(b.buf)
}

// Len returns the buffer length in bytes.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Clear discards the buffer and any recorded error.
func (b *Builder) Clear() *Builder {
	b.buf = b.buf[:0]
	b.err = nil
	return b
}

// Flush returns the buffer content and clears the builder, leaving it
// ready for the next fragment. Check Err before flushing in strict mode.
func (b *Builder) Flush() string {
	s := string(b.buf)
	b.Clear()
	return s
}

// Err returns the first validation error recorded since the last Clear or
// Flush. It is always nil for non-strict builders.
func (b *Builder) Err() error {
	return b.err
}

// wrap surrounds the buffer with <name> or <name=value> and </name>.
func (b *Builder) wrap(name string, value ...string) *Builder {
	open := "<" + name
	if len(value) > 0 {
		open += "=" + value[0]
	}
	b.surround(open+">", "</"+name+">")
	return b
}

func (b *Builder) surround(prefix, suffix string) {
	out := make([]byte, 0, len(prefix)+len(b.buf)+len(suffix))
	out = append(out, prefix...)
	out = append(out, b.buf...)
	out = append(out, suffix...)
	b.buf = out
}

// fail records the first non-nil error and reports whether there was one.
func (b *Builder) fail(errs ...error) bool {
	for _, err := range errs {
		if err == nil {
			continue
		}
		if b.err == nil {
			b.err = err
		}
		return true
	}
	return false
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

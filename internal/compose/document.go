// Purpose: Fragment documents: styled text described as data instead of code.
// Exports: Document, Fragment, Op, GradientOp.
// Role: Shared input model for render, preview, the HTTP service and the gallery.
// Invariants: An Op sets exactly one field; ops apply in order.
// Notes: JSON and YAML share field names.
package compose

import (
	"sort"
)

// Document is a sequence of independently styled fragments.
type Document struct {
	// Separator is written between rendered fragments.
	Separator string     `json:"separator,omitempty" yaml:"separator,omitempty"`
	Fragments []Fragment `json:"fragments" yaml:"fragments"`
}

// Fragment is an ordered list of builder steps. Rendering drains the
// builder after the last step, so styles never leak across fragments.
type Fragment []Op

// Op is a single builder step. Exactly one field must be set.
type Op struct {
	Text          *string     `json:"text,omitempty" yaml:"text,omitempty"`
	Newline       *bool       `json:"newline,omitempty" yaml:"newline,omitempty"`
	Bold          *bool       `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic        *bool       `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline     *bool       `json:"underline,omitempty" yaml:"underline,omitempty"`
	Strikethrough *bool       `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty"`
	Color         *string     `json:"color,omitempty" yaml:"color,omitempty"` // palette name or hex
	Size          *int        `json:"size,omitempty" yaml:"size,omitempty"`
	Font          *string     `json:"font,omitempty" yaml:"font,omitempty"`
	Sprite        *int        `json:"sprite,omitempty" yaml:"sprite,omitempty"`
	Opacity       *float32    `json:"opacity,omitempty" yaml:"opacity,omitempty"` // 0.0 - 1.0
	Align         *string     `json:"align,omitempty" yaml:"align,omitempty"`     // left|right|center|justified
	Gradient      *GradientOp `json:"gradient,omitempty" yaml:"gradient,omitempty"`
	Rotate        *float32    `json:"rotate,omitempty" yaml:"rotate,omitempty"` // degrees
	Uppercase     *bool       `json:"uppercase,omitempty" yaml:"uppercase,omitempty"`
}

// GradientOp holds the arguments of a gradient step.
type GradientOp struct {
	From  string  `json:"from" yaml:"from"`
	To    string  `json:"to" yaml:"to"`
	Angle float32 `json:"angle,omitempty" yaml:"angle,omitempty"`
}

// fields returns the names of the fields set on op, sorted.
func (op Op) fields() []string {
	var names []string
	add := func(set bool, name string) {
		if set {
			names = append(names, name)
		}
	}
	add(op.Text != nil, "text")
	add(op.Newline != nil, "newline")
	add(op.Bold != nil, "bold")
	add(op.Italic != nil, "italic")
	add(op.Underline != nil, "underline")
	add(op.Strikethrough != nil, "strikethrough")
	add(op.Color != nil, "color")
	add(op.Size != nil, "size")
	add(op.Font != nil, "font")
	add(op.Sprite != nil, "sprite")
	add(op.Opacity != nil, "opacity")
	add(op.Align != nil, "align")
	add(op.Gradient != nil, "gradient")
	add(op.Rotate != nil, "rotate")
	add(op.Uppercase != nil, "uppercase")
	sort.Strings(names)
	return names
}

// Constructors for building documents in code.

func Text(s string) Op { return Op{Text: &s} }
func Newline() Op { return Op{Newline: ptr(true)} }
func Bold() Op { return Op{Bold: ptr(true)} }
func Italic() Op { return Op{Italic: ptr(true)} }
func Underline() Op { return Op{Underline: ptr(true)} }
func Strikethrough() Op { return Op{Strikethrough: ptr(true)} }
func Color(c string) Op { return Op{Color: &c} }
func Size(n int) Op { return Op{Size: &n} }
func Font(name string) Op { return Op{Font: &name} }
func Sprite(i int) Op { return Op{Sprite: &i} }
func Opacity(o float32) Op { return Op{Opacity: &o} }
func Align(a string) Op { return Op{Align: &a} }
func Rotate(angle float32) Op { return Op{Rotate: &angle} }
func Uppercase() Op { return Op{Uppercase: ptr(true)} }
func Gradient(from, to string, angle float32) Op {
	return Op{Gradient: &GradientOp{From: from, To: to, Angle: angle}}
}

func ptr[T any](v T) *T {
	return &v
}

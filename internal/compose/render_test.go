package compose

import (
	"testing"

	"github.com/sandover/tmpfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMatchesBuilderChains(t *testing.T) {
	doc := &Document{Fragments: []Fragment{
		{Text("Example Title\n"), Bold(), Underline(), Size(85), Color("red")},
		{Text("Subject: "), Opacity(0.5), Text("Example Subject\n"), Italic(), Size(45)},
		{Sprite(2)},
	}}

	b := tmpfmt.New()
	want := b.AppendText("Example Title\n").Bold().Underline().SetSize(85).SetColor(tmpfmt.Red).Flush() +
		b.AppendText("Subject: ").SetOpacity(0.5).AppendText("Example Subject\n").Italicize().SetSize(45).Flush() +
		b.InsertSprite(2).Flush()

	got, verr := Render(doc, RenderOptions{})
	require.Nil(t, verr)
	assert.Equal(t, want, got)
}

func TestRenderStylesDoNotLeakAcrossFragments(t *testing.T) {
	doc := &Document{Separator: " ", Fragments: []Fragment{
		{Text("a"), Bold()},
		{Text("b")},
	}}
	got, verr := Render(doc, RenderOptions{})
	require.Nil(t, verr)
	assert.Equal(t, "<b>a</b> b", got)
}

func TestRenderAllOps(t *testing.T) {
	doc := &Document{Fragments: []Fragment{
		{
			Text("go"), Uppercase(), Newline(), Strikethrough(), Italic(),
			Font("Mono"), Gradient("black", "#ffffff", 90), Rotate(-12.5), Align("justified"),
		},
	}}
	got, verr := Render(doc, RenderOptions{})
	require.Nil(t, verr)
	assert.Equal(t, "<align=justified><rotate=-12.5><gradient=#000000,#ffffff><font=Mono><i><s>GO\n</s></i></font></gradient></rotate></align>", got)
}

func TestRenderDisabledToggleIsNoop(t *testing.T) {
	off := false
	doc := &Document{Fragments: []Fragment{{Text("x"), {Bold: &off}}}}
	got, verr := Render(doc, RenderOptions{})
	require.Nil(t, verr)
	assert.Equal(t, "x", got)
}

func TestRenderUsesPalette(t *testing.T) {
	doc := &Document{Fragments: []Fragment{{Text("x"), Color("brand")}}}
	palette := tmpfmt.DefaultPalette().Merge(map[string]string{"brand": "#123456"})
	got, verr := Render(doc, RenderOptions{Palette: palette})
	require.Nil(t, verr)
	assert.Equal(t, "<color=#123456>x</color>", got)
}

func TestValidate(t *testing.T) {
	size := 4
	text := "x"
	tests := []struct {
		name        string
		doc         Document
		strict      bool
		wantMissing []string
		wantInvalid map[string]string
	}{
		{
			name:        "no fragments",
			doc:         Document{},
			wantMissing: []string{"fragments"},
		},
		{
			name:        "empty fragment",
			doc:         Document{Fragments: []Fragment{{}}},
			wantInvalid: map[string]string{"fragments[0]": "empty fragment"},
		},
		{
			name:        "empty op",
			doc:         Document{Fragments: []Fragment{{Text("x"), {}}}},
			wantInvalid: map[string]string{"fragments[0][1]": "empty op"},
		},
		{
			name:        "two fields",
			doc:         Document{Fragments: []Fragment{{{Text: &text, Size: &size}}}},
			wantInvalid: map[string]string{"fragments[0][0]": "sets size, text; use one field per op"},
		},
		{
			name:        "bad alignment",
			doc:         Document{Fragments: []Fragment{{Text("x"), Align("middle")}}},
			wantInvalid: map[string]string{"fragments[0][1]": `invalid alignment "middle" (use left, right, center, or justified)`},
		},
		{
			name:        "gradient without end",
			doc:         Document{Fragments: []Fragment{{Text("x"), Gradient("red", "", 0)}}},
			wantInvalid: map[string]string{"fragments[0][1]": "gradient needs from and to"},
		},
		{
			name:        "strict bad color",
			doc:         Document{Fragments: []Fragment{{Text("x")}, {Text("y"), Bold(), Color("mauve")}}},
			strict:      true,
			wantInvalid: map[string]string{"fragments[1][2]": `invalid color: "mauve" (want RRGGBB or RRGGBBAA)`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := tt.doc.Validate(RenderOptions{Strict: tt.strict})
			require.NotNil(t, verr)
			assert.Equal(t, "validation_failed", verr.Error)
			assert.Equal(t, tt.wantMissing, verr.Missing)
			if tt.wantInvalid == nil {
				assert.Empty(t, verr.Invalid)
			} else {
				assert.Equal(t, tt.wantInvalid, verr.Invalid)
			}
		})
	}
}

func TestValidateStrictAcceptsNamedColors(t *testing.T) {
	doc := Document{Fragments: []Fragment{{Text("x"), Color("Red"), Size(10), Opacity(0.2)}}}
	assert.Nil(t, doc.Validate(RenderOptions{Strict: true}))
}

func TestNonStrictRenderPassesBadValuesThrough(t *testing.T) {
	doc := &Document{Fragments: []Fragment{{Text("x"), Color("mauve"), Size(-1)}}}
	got, verr := Render(doc, RenderOptions{})
	require.Nil(t, verr)
	assert.Equal(t, "<size=-1><color=#mauve>x</color></size>", got)
}

func TestValidationErrorGoError(t *testing.T) {
	verr := &ValidationError{
		Error:   "validation_failed",
		Message: "invalid document",
		Missing: []string{"fragments"},
		Invalid: map[string]string{"fragments[1][0]": "empty op", "fragments[0][0]": "empty op"},
	}
	assert.EqualError(t, verr.GoError(),
		"invalid document; missing required: fragments; fragments[0][0]: empty op; fragments[1][0]: empty op")
}

// Package tmpfmt builds rich-text strings in the TextMeshPro tag dialect.
//
// A Builder accumulates text and wraps everything accumulated so far in
// style tags. Each call wraps the previous result, so the most recent
// style becomes the outermost tag pair:
//
//	tmpfmt.New().AppendText("x").Bold().Italicize().String()
//	// <i><b>x</b></i>
//
// Composite strings are built by draining the builder with Flush after
// each independently styled fragment:
//
//	var sb strings.Builder
//	b := tmpfmt.New()
//	sb.WriteString(b.AppendText("Bold ").Bold().Flush())
//	sb.WriteString(b.AppendText("red").SetColor(tmpfmt.Red).Flush())
//
// Inputs are not validated unless the builder is created WithStrict.
package tmpfmt

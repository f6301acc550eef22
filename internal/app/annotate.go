package app

import (
	"unicode/utf8"

	"github.com/five82/sollog/internal/importance"
	"github.com/five82/sollog/internal/logline"
	"github.com/five82/sollog/internal/ui"
)

// Outcome reports what Annotate did with a line.
type Outcome int

const (
	// Annotated lines matched the runtime log pattern and were colored.
	Annotated Outcome = iota
	// PassedThrough lines did not match and are returned unchanged.
	PassedThrough
	// InvalidUTF8 lines are returned unchanged without being parsed.
	InvalidUTF8
)

// Annotator parses, classifies and renders single log lines.
type Annotator struct {
	renderer *ui.Renderer
}

// NewAnnotator returns an Annotator drawing with r.
func NewAnnotator(r *ui.Renderer) *Annotator {
	return &Annotator{renderer: r}
}

// Annotate returns the colored form of text, or text itself when it is not a
// runtime log line.
func (a *Annotator) Annotate(text string) (string, Outcome) {
	if !utf8.ValidString(text) {
		return text, InvalidUTF8
	}
	f, ok := logline.Parse(text)
	if !ok {
		return text, PassedThrough
	}
	imp := importance.ClassifyFields(f)
	return a.renderer.Render(imp, f.Level, f.Message()), Annotated
}

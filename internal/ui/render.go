package ui

import (
	"io"

	"github.com/five82/sollog/internal/config"
	"github.com/five82/sollog/internal/importance"
)

// Renderer turns a classified line into colored terminal text.
type Renderer struct {
	styles Styles
}

// NewRenderer returns a Renderer using palette p. Output is destined for w;
// color is emitted regardless of what w is.
func NewRenderer(w io.Writer, p config.Palette) *Renderer {
	return &Renderer{styles: newStyles(newRenderer(w), p)}
}

// Styles returns the styles the renderer draws with.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Render returns "<level> <message>" with the level colored by level and the
// message styled by importance. Unknown levels are written uncolored.
func (r *Renderer) Render(imp importance.Importance, level, message string) string {
	tag := level
	if style, ok := r.styles.LevelStyle(level); ok {
		tag = style.Render(level)
	}
	return tag + " " + r.styles.MessageStyle(imp).Render(message)
}

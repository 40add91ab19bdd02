// Package markdown renders skill documents to styled terminal text.
// Input is treated as untrusted text: it is only ever laid out, never executed.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const minWidth = 20

// Renderer wraps a glamour renderer and rebuilds it when the width changes.
type Renderer struct {
	style    string
	wordWrap bool
	width    int
	tr       *glamour.TermRenderer
}

// New creates a renderer. style is "auto" or one of glamour's standard
// styles; wordWrap false leaves long lines to the viewport.
func New(style string, wordWrap bool) *Renderer {
	r := &Renderer{style: style, wordWrap: wordWrap}
	r.SetWidth(80)
	return r
}

// SetWidth rebuilds the renderer for a new content width.
func (r *Renderer) SetWidth(width int) {
	if width < minWidth {
		width = minWidth
	}
	if width == r.width && r.tr != nil {
		return
	}
	r.width = width

	wrap := 0
	if r.wordWrap {
		wrap = width - 2
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	if r.style == "" || r.style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(r.style))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err == nil {
		r.tr = tr
	}
}

// Width is the content width documents are currently laid out for.
func (r *Renderer) Width() int { return r.width }

// Render converts markdown to styled output, falling back to the raw text
// when rendering fails.
func (r *Renderer) Render(md string) string {
	if r == nil || r.tr == nil {
		return md
	}
	out, err := r.tr.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

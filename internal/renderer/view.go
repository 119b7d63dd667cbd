package renderer

import (
	"github.com/dshills/linestorm/internal/layout"
	"github.com/dshills/linestorm/internal/renderer/highlight"
)

// Position is a location in screen cells.
type Position struct {
	X, Y int
}

// Line is one visible buffer line.
type Line struct {
	// Number is the zero-based buffer row.
	Number int

	// Text is the line content, truncated to the text area width.
	Text string

	// Spans classify Text when the panel is highlighted.
	Spans []highlight.Span
}

// View is everything a backend needs to paint one panel.
type View struct {
	Name  string
	Frame layout.Frame
	Lines []Line

	// Cursor is the cursor in screen cells.
	Cursor Position

	// Active is set for the focused panel.
	Active bool

	// Status is set for the status line panels.
	Status bool

	LineNumbers bool
	Highlight   bool

	// Gutter is the width of the line number column, zero when hidden.
	Gutter int
}

// TextWidth returns the width left for text after the gutter.
func (v View) TextWidth() int {
	return max(v.Frame.Width-v.Gutter, 0)
}

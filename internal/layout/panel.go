package layout

import (
	"strconv"

	"github.com/dshills/linestorm/internal/engine/cursor"
	"github.com/dshills/linestorm/internal/engine/registry"
)

// Panel is a viewport onto one buffer.
// It holds the buffer's id, never the buffer itself.
type Panel struct {
	Cursor   cursor.Cursor
	BufferID registry.BufferID

	// Path is the file the panel's buffer was loaded from or last saved to.
	Path string

	// LineNumbers shows a line number gutter.
	LineNumbers bool

	// Highlight enables syntax highlighting.
	Highlight bool
}

// NewPanel creates a panel viewing id with the cursor at the origin.
func NewPanel(id registry.BufferID) *Panel {
	return &Panel{BufferID: id}
}

// GutterWidth returns the line number column width for a buffer with
// total lines: the digits of the largest number plus one space.
func GutterWidth(total int) int {
	return len(strconv.Itoa(max(total, 1))) + 1
}

// Gutter returns the width of the panel's line number column in a frame
// frameWidth cells wide. It is zero when line numbers are off or the
// column would leave no room for text.
func (p *Panel) Gutter(frameWidth, bufferHeight int) int {
	if !p.LineNumbers {
		return 0
	}
	g := GutterWidth(bufferHeight)
	if g >= frameWidth {
		return 0
	}
	return g
}

// TextWidth returns the cells left for text after the gutter.
func (p *Panel) TextWidth(frameWidth, bufferHeight int) int {
	return max(frameWidth-p.Gutter(frameWidth, bufferHeight), 0)
}

// FixCursorPos clamps the cursor column into the text area, [0,
// TextWidth-1], and its row into [0, bufferHeight-1]. It must be called
// after a resize, after any edit that changes the buffer height, and
// after any layout change that changes the panel's frame width.
func (p *Panel) FixCursorPos(frameWidth, bufferHeight int) {
	p.Cursor = p.Cursor.Clamp(p.TextWidth(frameWidth, bufferHeight), bufferHeight)
}

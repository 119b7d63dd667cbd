package renderer

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/linestorm/internal/editor"
	"github.com/dshills/linestorm/internal/engine/buffer"
	"github.com/dshills/linestorm/internal/engine/cursor"
	"github.com/dshills/linestorm/internal/layout"
	"github.com/dshills/linestorm/internal/renderer/highlight"
)

// Composer builds views from editor state.
type Composer struct {
	// Highlighter returns the classifier for a file path, or nil for
	// none. A nil Highlighter disables highlighting.
	Highlighter func(path string) highlight.Classifier
}

// Compose builds views without highlighting.
func Compose(st *editor.State) []View {
	var c Composer
	return c.Compose(st)
}

// Compose returns one view per panel in layout order.
func (c *Composer) Compose(st *editor.State) []View {
	var views []View
	reg := st.Registry()
	current := st.CurrentName()

	layout.Walk(st.Root(), st.Frame(), func(p *layout.Panel, name string, f layout.Frame) {
		buf := reg.MustGet(p.BufferID)

		v := View{
			Name:        name,
			Frame:       f,
			Active:      name == current,
			Status:      editor.IsStatusPanel(name),
			LineNumbers: p.LineNumbers,
			Highlight:   p.Highlight,
		}
		v.Gutter = p.Gutter(f.Width, buf.Height())

		var cls highlight.Classifier
		if p.Highlight && c.Highlighter != nil {
			cls = c.Highlighter(p.Path)
		}

		top := TopLine(p.Cursor.Y, f.Height, buf.Height())
		width := v.TextWidth()
		for row := top; row < buf.Height() && row-top < f.Height; row++ {
			text := runewidth.Truncate(buf.LineAt(row), width, "")
			line := Line{Number: row, Text: text}
			if cls != nil {
				line.Spans = cls.Classify(text)
			}
			v.Lines = append(v.Lines, line)
		}

		v.Cursor = cursorPosition(buf, p.Cursor, f, v.Gutter, top)
		views = append(views, v)
	})
	return views
}

// TopLine returns the first buffer row shown in a frame of height rows
// for a cursor on row y of a buffer with total lines.
func TopLine(y, height, total int) int {
	switch {
	case y < height/2:
		return 0
	case y+height/2 > total:
		return max(total-height, 0)
	default:
		return y - height/2
	}
}

// cursorPosition converts a buffer cursor into screen cells. The column
// is measured in display width and never passes the end of the line.
func cursorPosition(buf *buffer.Buffer, c cursor.Cursor, f layout.Frame, gutter, top int) Position {
	var col int
	if c.Y < buf.Height() {
		runes := []rune(buf.LineAt(c.Y))
		x := min(max(c.X, 0), len(runes))
		col = runewidth.StringWidth(string(runes[:x]))
	}

	pos := Position{
		X: f.X + gutter + col,
		Y: f.Y + c.Y - top,
	}
	if f.Width > 0 {
		pos.X = min(pos.X, f.X+f.Width-1)
	}
	if f.Height > 0 {
		pos.Y = min(max(pos.Y, f.Y), f.Y+f.Height-1)
	}
	return pos
}

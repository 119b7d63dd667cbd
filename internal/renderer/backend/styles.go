package backend

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/linestorm/internal/renderer/highlight"
)

// Styles controls how views are painted.
type Styles struct {
	// Theme colours highlighted spans.
	Theme *highlight.Theme

	// Modes styles the mode cell by mode name.
	Modes map[string]tcell.Style

	// Message styles the message panel.
	Message tcell.Style

	// Gutter styles line numbers.
	Gutter tcell.Style
}

// DefaultStyles returns the built-in styles: white on blue for command
// mode and white on green for edit mode.
func DefaultStyles() Styles {
	return Styles{
		Theme: highlight.DefaultTheme(),
		Modes: map[string]tcell.Style{
			"Cmd":  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
			"Edit": tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen).Bold(true),
		},
		Message: tcell.StyleDefault,
		Gutter:  tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// spanStyle returns base coloured for cat.
func (s Styles) spanStyle(base tcell.Style, cat highlight.Category) tcell.Style {
	if s.Theme == nil {
		return base
	}
	c, ok := s.Theme.Color(cat)
	if !ok {
		return base
	}
	return base.Foreground(toTcell(c))
}

// toTcell converts a colourful colour to a tcell true colour.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

package highlight

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme maps categories to foreground colours.
type Theme struct {
	colors map[Category]colorful.Color
}

// defaultColors is the palette used for categories a theme leaves unset.
var defaultColors = map[Category]string{
	Keyword:  "#5f87ff",
	Comment:  "#808080",
	String:   "#5faf5f",
	Number:   "#5faf5f",
	Type:     "#d75f5f",
	Operator: "#5f87ff",
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() *Theme {
	t, err := NewTheme(nil)
	if err != nil {
		panic("default theme: " + err.Error())
	}
	return t
}

// NewTheme builds a theme from "#rrggbb" colours keyed by category.
// Categories missing from hex keep their default colour; an empty value
// also keeps the default.
func NewTheme(hex map[Category]string) (*Theme, error) {
	t := &Theme{colors: make(map[Category]colorful.Color, len(defaultColors))}
	for cat, def := range defaultColors {
		s := def
		if v := hex[cat]; v != "" {
			s = v
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", cat, err)
		}
		t.colors[cat] = c
	}
	return t, nil
}

// Color returns the colour for c. It reports false for None.
func (t *Theme) Color(c Category) (colorful.Color, bool) {
	col, ok := t.colors[c]
	return col, ok
}

// Hex returns the colour for c as "#rrggbb", or "" for None.
func (t *Theme) Hex(c Category) string {
	col, ok := t.colors[c]
	if !ok {
		return ""
	}
	return col.Hex()
}

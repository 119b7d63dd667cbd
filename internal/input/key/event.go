package key

import (
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is an unmodified printable character.
// Shift alone does not count as a modifier for characters.
func (e Event) IsChar() bool {
	return e.IsRune() && !e.IsModified() && (unicode.IsPrint(e.Rune) || e.Rune == '\t')
}

// IsModified returns true if Ctrl, Alt or Meta is held.
func (e Event) IsModified() bool {
	return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
}

// String returns Vim-style notation: "a", "<CR>", "<C-s>".
func (e Event) String() string {
	if e.IsRune() && !e.IsModified() {
		switch e.Rune {
		case '<':
			return "<lt>"
		case ' ':
			return "<Space>"
		}
		return string(e.Rune)
	}

	var name string
	switch e.Key {
	case KeyRune:
		name = string(unicode.ToLower(e.Rune))
	case KeyEnter:
		name = "CR"
	case KeyBackspace:
		name = "BS"
	case KeyEscape:
		name = "Esc"
	case KeyDelete:
		name = "Del"
	default:
		name = e.Key.String()
	}

	mods := e.Modifiers
	if e.Key == KeyRune {
		mods &^= ModShift
	}
	if mods == ModNone {
		return "<" + name + ">"
	}
	return "<" + mods.String() + "-" + name + ">"
}

package key

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is used for character keys. The character is in Event.Rune.
	KeyRune

	KeyEnter
	KeyBackspace
	KeyEscape
	KeyTab
	KeyDelete

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyOther stands for any key the editor does not distinguish.
	KeyOther
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyEscape:
		return "Escape"
	case KeyTab:
		return "Tab"
	case KeyDelete:
		return "Delete"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyOther:
		return "Other"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// KeyFromName returns the key for a notation name such as "cr" or "esc".
// The lookup ignores case. It returns KeyNone for unknown names.
func KeyFromName(name string) Key {
	switch strings.ToLower(name) {
	case "cr", "enter", "return":
		return KeyEnter
	case "bs", "backspace":
		return KeyBackspace
	case "esc", "escape":
		return KeyEscape
	case "tab":
		return KeyTab
	case "del", "delete":
		return KeyDelete
	case "up":
		return KeyUp
	case "down":
		return KeyDown
	case "left":
		return KeyLeft
	case "right":
		return KeyRight
	default:
		return KeyNone
	}
}

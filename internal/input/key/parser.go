package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// ParseKeys parses a key string into events.
//
// Plain characters stand for themselves. Bracketed names stand for special
// keys or escaped characters:
//   - <CR>, <Enter>, <Return>, <Esc>, <BS>, <Tab>, <Del>, <Up> ...
//   - <Space>, <lt> (for '<'), <gt>, <Bar>, <Bslash>
//   - <C-x>, <A-x>, <M-x>, <S-Tab> modifier prefixes
func ParseKeys(spec string) ([]Event, error) {
	var events []Event
	runes := []rune(spec)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '<' {
			events = append(events, NewRuneEvent(r, ModNone))
			continue
		}

		end := -1
		for j := i + 1; j < len(runes); j++ {
			if runes[j] == '>' {
				end = j
				break
			}
		}
		if end < 0 {
			return nil, fmt.Errorf("%w at %d", ErrUnmatchedBracket, i)
		}
		inner := string(runes[i+1 : end])
		ev, err := parseBracketed(inner)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
		i = end
	}

	return events, nil
}

// parseBracketed parses the text between '<' and '>'.
func parseBracketed(inner string) (Event, error) {
	if inner == "" {
		return Event{}, fmt.Errorf("%w: <>", ErrInvalidSpec)
	}

	parts := strings.Split(inner, "-")
	var mods Modifier
	name := parts[len(parts)-1]
	if name == "" && len(parts) > 1 {
		// <C--> names the '-' key.
		name = "-"
		parts = parts[:len(parts)-1]
	}
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "m", "d":
			mods = mods.With(ModMeta)
		case "s":
			mods = mods.With(ModShift)
		case "":
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q in <%s>", ErrInvalidSpec, p, inner)
		}
	}

	switch strings.ToLower(name) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	case "bar":
		return NewRuneEvent('|', mods), nil
	case "bslash":
		return NewRuneEvent('\\', mods), nil
	}

	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	if rs := []rune(name); len(rs) == 1 {
		return NewRuneEvent(rs[0], mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key <%s>", ErrInvalidSpec, inner)
}

// MustParseKeys parses a key string and panics on error.
// Use only for known-valid specs in initialization code and tests.
func MustParseKeys(spec string) []Event {
	events, err := ParseKeys(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return events
}

// FormatKeys formats events back into key notation.
func FormatKeys(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(e.String())
	}
	return sb.String()
}

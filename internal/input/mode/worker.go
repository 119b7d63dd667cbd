package mode

import (
	"fmt"

	"github.com/dshills/linestorm/internal/editor"
	"github.com/dshills/linestorm/internal/engine/cursor"
	"github.com/dshills/linestorm/internal/input/key"
)

// Kind enumerates the modes.
type Kind uint8

const (
	// KindCommand reads and runs command lines.
	KindCommand Kind = iota

	// KindEdit inserts text into the focused buffer.
	KindEdit
)

// String returns the short mode name shown on the status line.
func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "Cmd"
	case KindEdit:
		return "Edit"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Worker is the active mode together with its private state.
// Only command mode carries state: the partially typed command line.
type Worker struct {
	kind  Kind
	input []rune
}

// NewCommand returns a command mode worker with an empty command line.
func NewCommand() *Worker {
	return &Worker{kind: KindCommand, input: make([]rune, 0, 32)}
}

// NewEdit returns an edit mode worker.
func NewEdit() *Worker {
	return &Worker{kind: KindEdit}
}

// Kind returns the worker's mode.
func (w *Worker) Kind() Kind {
	return w.kind
}

// Name returns the mode name shown on the status line.
func (w *Worker) Name() string {
	return w.kind.String()
}

// Input returns the command line typed so far.
func (w *Worker) Input() string {
	return string(w.input)
}

// Update interprets ev against st. It returns the worker to switch to, or
// nil to stay in the current mode.
func (w *Worker) Update(st *editor.State, ev key.Event) *Worker {
	switch w.kind {
	case KindCommand:
		return w.updateCommand(st, ev)
	case KindEdit:
		return w.updateEdit(st, ev)
	default:
		panic(fmt.Sprintf("internal error: unknown mode %v", w.kind))
	}
}

// shortcuts move the cursor as soon as they are the whole command line.
var shortcuts = map[string]cursor.Direction{
	"i": cursor.Up,
	"j": cursor.Left,
	"k": cursor.Down,
	"l": cursor.Right,
}

func (w *Worker) updateCommand(st *editor.State, ev key.Event) *Worker {
	switch {
	case ev.Key == key.KeyEnter:
		line := string(w.input)
		w.input = w.input[:0]
		return Execute(st, line)

	case ev.Key == key.KeyBackspace:
		if len(w.input) > 0 {
			w.input = w.input[:len(w.input)-1]
		}
		st.SetMessage(string(w.input))

	case ev.IsChar():
		w.input = append(w.input, ev.Rune)
		st.SetMessage(string(w.input))
		if dir, ok := shortcuts[string(w.input)]; ok {
			st.MoveCursor(dir, 1)
			w.input = w.input[:0]
		}
	}
	return nil
}

func (w *Worker) updateEdit(st *editor.State, ev key.Event) *Worker {
	switch {
	case ev.Key == key.KeyEscape:
		return NewCommand()
	case ev.Key == key.KeyEnter:
		st.InsertLine()
	case ev.Key == key.KeyBackspace:
		st.EraseAtCursor()
	case ev.IsChar():
		st.InsertRune(ev.Rune)
	}
	return nil
}

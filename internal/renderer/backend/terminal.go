package backend

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/linestorm/internal/editor"
	"github.com/dshills/linestorm/internal/input/key"
	"github.com/dshills/linestorm/internal/renderer"
	"github.com/dshills/linestorm/internal/renderer/highlight"
)

// Terminal paints views with tcell.
type Terminal struct {
	screen tcell.Screen
	styles Styles
	mu     sync.Mutex
}

// NewTerminal creates a terminal backend on the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a terminal backend on an existing screen, such as
// a tcell simulation screen.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, styles: DefaultStyles()}
}

// Init takes over the terminal.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the terminal size in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// SetStyles replaces the paint styles.
func (t *Terminal) SetStyles(s Styles) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.styles = s
}

// Styles returns the paint styles.
func (t *Terminal) Styles() Styles {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.styles
}

// PollEvent blocks until the next event. It returns EventClosed once the
// screen has been shut down, and EventNone for events linestorm ignores.
func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventClosed}
	}
	return convertEvent(ev)
}

// PostInterrupt wakes PollEvent with an EventInterrupt carrying data.
// It is safe to call from any goroutine.
func (t *Terminal) PostInterrupt(data any) error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(data))
}

// Draw paints views and places the cursor on the active one.
func (t *Terminal) Draw(views []renderer.View) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	cursorShown := false
	for _, v := range views {
		t.drawView(v)
		if v.Active && v.Frame.Area() > 0 {
			t.screen.ShowCursor(v.Cursor.X, v.Cursor.Y)
			cursorShown = true
		}
	}
	if !cursorShown {
		t.screen.HideCursor()
	}
	t.screen.Show()
}

func (t *Terminal) drawView(v renderer.View) {
	base := tcell.StyleDefault
	if v.Status {
		base = t.statusStyle(v)
		t.fill(v, base)
	}

	right := v.Frame.X + v.Frame.Width
	for i, line := range v.Lines {
		if i >= v.Frame.Height {
			break
		}
		y := v.Frame.Y + i
		if v.Gutter > 0 {
			num := fmt.Sprintf("%*d ", v.Gutter-1, line.Number+1)
			t.putText(v.Frame.X, y, v.Frame.X+v.Gutter, num, nil, t.styles.Gutter)
		}
		t.putText(v.Frame.X+v.Gutter, y, right, line.Text, line.Spans, base)
	}
}

// statusStyle picks the style of a status panel.
func (t *Terminal) statusStyle(v renderer.View) tcell.Style {
	if v.Name == editor.ModePanel && len(v.Lines) > 0 {
		if s, ok := t.styles.Modes[v.Lines[0].Text]; ok {
			return s
		}
	}
	return t.styles.Message
}

func (t *Terminal) fill(v renderer.View, style tcell.Style) {
	for y := v.Frame.Y; y < v.Frame.Y+v.Frame.Height; y++ {
		for x := v.Frame.X; x < v.Frame.X+v.Frame.Width; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// putText paints text from column x, stopping before right. Runes are
// advanced by their display width.
func (t *Terminal) putText(x, y, right int, text string, spans []highlight.Span, base tcell.Style) {
	si := 0
	for i, r := range []rune(text) {
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		if x+w > right {
			return
		}

		for si < len(spans) && spans[si].End <= i {
			si++
		}
		style := base
		if si < len(spans) && spans[si].Start <= i {
			style = t.styles.spanStyle(base, spans[si].Category)
		}

		t.screen.SetContent(x, y, r, nil, style)
		x += w
	}
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: convertKey(e)}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts a tcell key event to a key.Event. Named keys are
// checked before control keys since tcell reports Enter, Tab and
// Backspace with control key codes.
func convertKey(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	switch {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods)
	case k == tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case k == tcell.KeyBackspace, k == tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case k == tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case k == tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case k == tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case k == tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case k == tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case k == tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case k == tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods.With(key.ModCtrl))
	default:
		return key.NewSpecialEvent(key.KeyOther, mods)
	}
}

// convertMod converts tcell modifier mask to key.Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

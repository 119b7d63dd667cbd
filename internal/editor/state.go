package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/linestorm/internal/engine/buffer"
	"github.com/dshills/linestorm/internal/engine/cursor"
	"github.com/dshills/linestorm/internal/engine/registry"
	"github.com/dshills/linestorm/internal/layout"
)

// Status panel names and geometry.
const (
	ModePanel    = "__status_mode__"
	MessagePanel = "__status_msg__"

	// ModeWidth is the width of the mode name cell on the status line.
	ModeWidth = 6

	// StatusHeight is the height of the status line.
	StatusHeight = 1

	// ScratchName names the body panel of a state built from text.
	ScratchName = "*scratch*"
)

// Errors returned by State operations.
var (
	ErrNoPath           = errors.New("buffer has no file name")
	ErrInvalidThickness = errors.New("split thickness out of range")
	ErrNoScripting      = errors.New("scripting is not available")
)

// ScriptRunner runs a script against the editor.
type ScriptRunner interface {
	RunFile(path string) error
}

// Options controls the display flags of panels created by FromFile and
// FromText.
type Options struct {
	LineNumbers bool
	Highlight   bool
}

// State is the whole editor: buffers, layout, focus and status.
// State is not safe for concurrent use; the event loop owns it.
type State struct {
	reg     *registry.Registry
	root    *layout.Node
	current string
	screen  layout.Screen

	message string
	quit    bool
	scripts ScriptRunner
}

// New creates a state over an existing registry and layout with current
// focused. Every panel in root takes a reference to its buffer.
// New panics if a panel's buffer is missing from reg or current is not a
// panel in root.
func New(reg *registry.Registry, root *layout.Node, current string, screen layout.Screen) *State {
	s := &State{
		reg:     reg,
		root:    root,
		current: current,
		screen:  screen,
	}
	layout.Walk(root, layout.Frame{}, func(p *layout.Panel, name string, _ layout.Frame) {
		if err := reg.Retain(p.BufferID); err != nil {
			panic(fmt.Sprintf("internal error: panel %q: %v", name, err))
		}
	})
	// Fail early on a bad focus.
	s.CurrentPanel()
	return s
}

// FromFile loads path and builds the default layout around it: the body
// panel named after the file above the status line.
func FromFile(path string, screen layout.Screen, opts Options) (*State, error) {
	buf, err := buffer.FromFile(path)
	if err != nil {
		return nil, err
	}
	return FromBuffer(buf, path, path, screen, opts), nil
}

// FromText builds the default layout around an in-memory buffer with no
// file name.
func FromText(text string, screen layout.Screen, opts Options) *State {
	return FromBuffer(buffer.FromText(text), ScratchName, "", screen, opts)
}

// FromBuffer builds the default layout around buf. The body panel is
// named name and remembers path for Save.
func FromBuffer(buf *buffer.Buffer, name, path string, screen layout.Screen, opts Options) *State {
	reg := registry.New()

	body := layout.NewPanel(reg.Create(buf))
	body.Path = path
	body.LineNumbers = opts.LineNumbers
	body.Highlight = opts.Highlight

	mode := layout.NewPanel(reg.Create(buffer.New()))
	msg := layout.NewPanel(reg.Create(buffer.New()))

	root := layout.NewSplit(layout.Down, StatusHeight,
		layout.NewSplit(layout.Left, ModeWidth,
			layout.NewLeaf(ModePanel, mode),
			layout.NewLeaf(MessagePanel, msg)),
		layout.NewLeaf(name, body))

	return New(reg, root, name, screen)
}

// IsStatusPanel reports whether name is one of the status line panels.
func IsStatusPanel(name string) bool {
	return name == ModePanel || name == MessagePanel
}

// Registry returns the buffer registry.
func (s *State) Registry() *registry.Registry {
	return s.reg
}

// Root returns the layout tree.
func (s *State) Root() *layout.Node {
	return s.root
}

// Frame returns the frame of the whole screen.
func (s *State) Frame() layout.Frame {
	return layout.ScreenFrame(s.screen)
}

// CurrentName returns the name of the focused panel.
func (s *State) CurrentName() string {
	return s.current
}

// CurrentPanel returns the focused panel.
func (s *State) CurrentPanel() *layout.Panel {
	p, _ := s.CurrentPanelWithFrame()
	return p
}

// CurrentPanelWithFrame returns the focused panel with its screen frame.
func (s *State) CurrentPanelWithFrame() (*layout.Panel, layout.Frame) {
	p, f, ok := layout.Lookup(s.root, s.Frame(), s.current)
	if !ok {
		panic(fmt.Sprintf("internal error: current panel %q not in layout", s.current))
	}
	return p, f
}

// CurrentBuffer returns the focused panel's buffer.
func (s *State) CurrentBuffer() *buffer.Buffer {
	return s.reg.MustGet(s.CurrentPanel().BufferID)
}

// Cursor returns the focused panel's cursor.
func (s *State) Cursor() cursor.Cursor {
	return s.CurrentPanel().Cursor
}

// MoveCursor moves the focused cursor distance cells in dir, bounded by
// the panel's text width and the buffer height.
func (s *State) MoveCursor(dir cursor.Direction, distance int) {
	p, f := s.CurrentPanelWithFrame()
	h := s.reg.MustGet(p.BufferID).Height()
	p.Cursor = p.Cursor.Go(dir, distance, cursor.Bounds{Width: p.TextWidth(f.Width, h), Height: h})
}

// InsertRune inserts ch at the cursor and advances the cursor one column.
func (s *State) InsertRune(ch rune) {
	p := s.CurrentPanel()
	s.reg.MustGet(p.BufferID).InsertAtCursor(ch, p.Cursor)
	p.Cursor.X++
}

// InsertLine breaks the line at the cursor and moves the cursor to the
// start of the new line.
func (s *State) InsertLine() {
	p := s.CurrentPanel()
	s.reg.MustGet(p.BufferID).InsertLineAtCursor(p.Cursor)
	p.Cursor = cursor.Cursor{X: 0, Y: p.Cursor.Y + 1}
}

// EraseAtCursor erases the character under the cursor and retreats the
// cursor one column. It reports whether a character was erased.
func (s *State) EraseAtCursor() bool {
	p := s.CurrentPanel()
	erased := s.reg.MustGet(p.BufferID).EraseAtCursor(p.Cursor)
	p.Cursor.X = max(p.Cursor.X-1, 0)
	return erased
}

// SaveAs writes the focused buffer to path. On success the panel
// remembers path for Save.
func (s *State) SaveAs(path string) error {
	p := s.CurrentPanel()
	if err := s.reg.MustGet(p.BufferID).SaveAs(path); err != nil {
		return err
	}
	p.Path = path
	return nil
}

// Save writes the focused buffer to the file it was loaded from.
func (s *State) Save() error {
	p := s.CurrentPanel()
	if p.Path == "" {
		return ErrNoPath
	}
	return s.SaveAs(p.Path)
}

// SetMessage sets the status message.
func (s *State) SetMessage(msg string) {
	s.message = msg
	s.replaceStatus(MessagePanel, msg)
}

// Message returns the status message.
func (s *State) Message() string {
	return s.message
}

// SetModeName shows name in the mode cell of the status line.
func (s *State) SetModeName(name string) {
	s.replaceStatus(ModePanel, name)
}

// ModeName returns the text of the mode cell.
func (s *State) ModeName() string {
	p, _, ok := layout.Lookup(s.root, s.Frame(), ModePanel)
	if !ok {
		return ""
	}
	return s.reg.MustGet(p.BufferID).Text()
}

// replaceStatus replaces the content of a status panel's buffer. Layouts
// without that panel ignore the update.
func (s *State) replaceStatus(name, text string) {
	p, _, ok := layout.Lookup(s.root, s.Frame(), name)
	if !ok {
		return
	}
	// A status buffer is a single line.
	text = strings.ReplaceAll(text, "\n", " ")
	s.reg.MustGet(p.BufferID).Replace(text)
	p.Cursor = cursor.Cursor{}
}

// Quit asks the event loop to stop.
func (s *State) Quit() {
	s.quit = true
}

// IsQuit reports whether Quit was called.
func (s *State) IsQuit() bool {
	return s.quit
}

// ClampCursor fixes the focused cursor against its frame and buffer.
func (s *State) ClampCursor() {
	p, f := s.CurrentPanelWithFrame()
	p.FixCursorPos(f.Width, s.reg.MustGet(p.BufferID).Height())
}

// ClampAll fixes every panel's cursor against its frame and buffer.
// Call it after a resize or a layout change.
func (s *State) ClampAll() {
	layout.Walk(s.root, s.Frame(), func(p *layout.Panel, _ string, f layout.Frame) {
		p.FixCursorPos(f.Width, s.reg.MustGet(p.BufferID).Height())
	})
}

// SetLineNumbers shows or hides the focused panel's line numbers.
func (s *State) SetLineNumbers(on bool) {
	s.CurrentPanel().LineNumbers = on
	s.ClampCursor()
}

// SetHighlight enables or disables the focused panel's highlighting.
func (s *State) SetHighlight(on bool) {
	s.CurrentPanel().Highlight = on
}

// SetScriptRunner installs the runner used by RunScript.
func (s *State) SetScriptRunner(r ScriptRunner) {
	s.scripts = r
}

// RunScript runs the script at path.
func (s *State) RunScript(path string) error {
	if s.scripts == nil {
		return ErrNoScripting
	}
	return s.scripts.RunFile(path)
}

package lua

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/linestorm/internal/editor"
	"github.com/dshills/linestorm/internal/engine/cursor"
	"github.com/dshills/linestorm/internal/input/key"
	"github.com/dshills/linestorm/internal/input/mode"
)

// Host runs scripts against one editor state and mode manager.
// It satisfies editor.ScriptRunner.
type Host struct {
	state   *State
	editor  *editor.State
	modes   *mode.Manager
	running bool
}

// NewHost creates a host bound to st and modes, and installs itself as
// st's script runner.
func NewHost(st *editor.State, modes *mode.Manager, opts ...StateOption) *Host {
	h := &Host{
		state:  NewState(opts...),
		editor: st,
		modes:  modes,
	}
	h.state.RegisterModule("editor", map[string]lua.LGFunction{
		"message": h.luaMessage,
		"cursor":  h.luaCursor,
		"move":    h.luaMove,
		"line":    h.luaLine,
		"height":  h.luaHeight,
		"path":    h.luaPath,
		"insert":  h.luaInsert,
		"newline": h.luaNewline,
		"erase":   h.luaErase,
		"exec":    h.luaExec,
		"feed":    h.luaFeed,
		"mode":    h.luaMode,
	})
	h.state.RegisterFunc("print", h.luaPrint)
	st.SetScriptRunner(h)
	return h
}

// RunFile runs the script at path.
func (h *Host) RunFile(path string) error {
	return h.run(func() error { return h.state.DoFile(path) })
}

// RunString runs a chunk of Lua source.
func (h *Host) RunString(code string) error {
	return h.run(func() error { return h.state.DoString(code) })
}

func (h *Host) run(fn func() error) error {
	if h.running {
		return ErrNestedScript
	}
	h.running = true
	defer func() { h.running = false }()
	return fn()
}

// Close releases the Lua state.
func (h *Host) Close() error {
	return h.state.Close()
}

func (h *Host) luaMessage(L *lua.LState) int {
	if L.GetTop() >= 1 {
		h.editor.SetMessage(L.CheckString(1))
		return 0
	}
	L.Push(lua.LString(h.editor.Message()))
	return 1
}

func (h *Host) luaPrint(L *lua.LState) int {
	parts := make([]string, L.GetTop())
	for i := range parts {
		parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	h.editor.SetMessage(strings.Join(parts, " "))
	return 0
}

func (h *Host) luaCursor(L *lua.LState) int {
	c := h.editor.Cursor()
	L.Push(lua.LNumber(c.X))
	L.Push(lua.LNumber(c.Y))
	return 2
}

func (h *Host) luaMove(L *lua.LState) int {
	dir, err := cursor.ParseDirection(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	n := L.OptInt(2, 1)
	if n < 0 {
		L.ArgError(2, "distance must not be negative")
		return 0
	}
	h.editor.MoveCursor(dir, n)
	return 0
}

func (h *Host) luaLine(L *lua.LState) int {
	buf := h.editor.CurrentBuffer()
	row := L.OptInt(1, h.editor.Cursor().Y)
	if row < 0 || row >= buf.Height() {
		L.ArgError(1, fmt.Sprintf("row %d not in [0, %d)", row, buf.Height()))
		return 0
	}
	L.Push(lua.LString(buf.LineAt(row)))
	return 1
}

func (h *Host) luaHeight(L *lua.LState) int {
	L.Push(lua.LNumber(h.editor.CurrentBuffer().Height()))
	return 1
}

func (h *Host) luaPath(L *lua.LState) int {
	L.Push(lua.LString(h.editor.CurrentPanel().Path))
	return 1
}

func (h *Host) luaInsert(L *lua.LState) int {
	for _, r := range L.CheckString(1) {
		switch r {
		case '\n':
			h.editor.InsertLine()
		case '\r':
		default:
			h.editor.InsertRune(r)
		}
	}
	return 0
}

func (h *Host) luaNewline(L *lua.LState) int {
	h.editor.InsertLine()
	return 0
}

func (h *Host) luaErase(L *lua.LState) int {
	L.Push(lua.LBool(h.editor.EraseAtCursor()))
	return 1
}

func (h *Host) luaExec(L *lua.LState) int {
	if next := mode.Execute(h.editor, L.CheckString(1)); next != nil {
		h.modes.Switch(next)
	}
	return 0
}

func (h *Host) luaFeed(L *lua.LState) int {
	events, err := key.ParseKeys(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	h.modes.Feed(h.editor, events)
	return 0
}

func (h *Host) luaMode(L *lua.LState) int {
	L.Push(lua.LString(h.modes.CurrentName()))
	return 1
}

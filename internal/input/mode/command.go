package mode

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/dshills/linestorm/internal/editor"
	"github.com/dshills/linestorm/internal/engine/cursor"
)

// errUsage marks a command invoked with malformed arguments.
var errUsage = errors.New("usage")

// command is one entry of the command table.
type command struct {
	// minArgs and maxArgs bound the argument count.
	minArgs, maxArgs int

	// usage is shown when the arguments cannot be parsed.
	usage string

	run func(st *editor.State, args []string) (*Worker, error)
}

var commands = map[string]command{
	"go":      {2, 2, "go <direction> <distance>", runGo},
	"edit":    {0, 0, "edit", runEdit},
	"save-as": {1, 1, "save-as <path>", runSaveAs},
	"save":    {0, 0, "save", runSave},
	"quit":    {0, 0, "quit", runQuit},
	"enable":  {1, 1, "enable linenum|highlight", runToggle(true)},
	"disable": {1, 1, "disable linenum|highlight", runToggle(false)},
	"split":   {2, 3, "split <direction> <thickness> [path]", runSplit},
	"close":   {0, 0, "close", runClose},
	"next":    {0, 0, "next", runNext},
	"source":  {1, 1, "source <script.lua>", runSource},
}

// Commands returns the sorted names of all commands.
func Commands() []string {
	return slices.Sorted(maps.Keys(commands))
}

// Execute runs one command line against st. Problems are reported through
// the status message and never mutate the buffer or cursor. It returns the
// worker to switch to, or nil.
//
// A leading ':' on the command name is accepted.
func Execute(st *editor.State, line string) *Worker {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.TrimPrefix(fields[0], ":"), fields[1:]

	cmd, ok := commands[name]
	if !ok {
		st.SetMessage(strings.TrimSpace("unknown command: " + name + " " + strings.Join(args, " ")))
		return nil
	}
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		st.SetMessage(fmt.Sprintf("invalid args for command %s: %q", name, args))
		return nil
	}

	next, err := cmd.run(st, args)
	switch {
	case errors.Is(err, errUsage):
		st.SetMessage("usage: " + cmd.usage)
	case err != nil:
		st.SetMessage(fmt.Sprintf("%s: %v", name, err))
	}
	return next
}

func runGo(st *editor.State, args []string) (*Worker, error) {
	dir, err := cursor.ParseDirection(args[0])
	if err != nil {
		return nil, errUsage
	}
	distance, err := strconv.Atoi(args[1])
	if err != nil || distance < 0 {
		return nil, errUsage
	}
	st.MoveCursor(dir, distance)
	st.SetMessage("")
	return nil, nil
}

func runEdit(st *editor.State, _ []string) (*Worker, error) {
	st.SetMessage("")
	return NewEdit(), nil
}

func runSaveAs(st *editor.State, args []string) (*Worker, error) {
	if err := st.SaveAs(args[0]); err != nil {
		return nil, err
	}
	st.SetMessage("wrote " + args[0])
	return nil, nil
}

func runSave(st *editor.State, _ []string) (*Worker, error) {
	if err := st.Save(); err != nil {
		return nil, err
	}
	st.SetMessage("wrote " + st.CurrentPanel().Path)
	return nil, nil
}

func runQuit(st *editor.State, _ []string) (*Worker, error) {
	st.Quit()
	return nil, nil
}

func runToggle(on bool) func(*editor.State, []string) (*Worker, error) {
	return func(st *editor.State, args []string) (*Worker, error) {
		switch args[0] {
		case "linenum":
			st.SetLineNumbers(on)
		case "highlight":
			st.SetHighlight(on)
		default:
			return nil, errUsage
		}
		st.SetMessage("")
		return nil, nil
	}
}

func runSplit(st *editor.State, args []string) (*Worker, error) {
	dir, err := cursor.ParseDirection(args[0])
	if err != nil {
		return nil, errUsage
	}
	thickness, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, errUsage
	}
	var path string
	if len(args) == 3 {
		path = args[2]
	}
	if _, err := st.SplitCurrent(dir, thickness, path); err != nil {
		return nil, err
	}
	st.SetMessage("")
	return nil, nil
}

func runClose(st *editor.State, _ []string) (*Worker, error) {
	if err := st.CloseCurrent(); err != nil {
		return nil, err
	}
	st.SetMessage("")
	return nil, nil
}

func runNext(st *editor.State, _ []string) (*Worker, error) {
	st.FocusNext()
	st.SetMessage("")
	return nil, nil
}

func runSource(st *editor.State, args []string) (*Worker, error) {
	st.SetMessage("")
	if err := st.RunScript(args[0]); err != nil {
		return nil, err
	}
	return nil, nil
}

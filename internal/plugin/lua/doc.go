// Package lua runs editor scripts with gopher-lua.
//
// A Host owns one sandboxed Lua state and exposes the editor through a
// global "editor" table:
//
//	editor.message([text])      get or set the status message
//	editor.cursor()             cursor x, y
//	editor.move(dir, n)         move the cursor (up, down, left, right)
//	editor.line([row])          text of a line, the cursor row by default
//	editor.height()             number of lines in the focused buffer
//	editor.path()               file path of the focused panel
//	editor.insert(text)         insert text at the cursor, "\n" breaks lines
//	editor.newline()            break the line at the cursor
//	editor.erase()              erase under the cursor, reports success
//	editor.exec(line)           run a command line such as "go down 3"
//	editor.feed(keys)           feed keys in angle-bracket notation
//	editor.mode()               current mode name
//
// print writes its arguments, separated by spaces, to the status message.
//
// The io, os, debug and package libraries are not opened, and dofile,
// loadfile and load are removed. Each run is bounded by a timeout.
//
// A Host is not safe for concurrent use. Scripts run on the event loop.
package lua

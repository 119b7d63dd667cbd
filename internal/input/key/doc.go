// Package key provides key event types for the input system.
//
// The editor gives meaning to only four kinds of input: character keys,
// Enter, Backspace and Escape. Every other key is still representable so
// that backends can report it, but modes ignore it.
//
// # Key Notation
//
// ParseKeys reads a Vim-style key string such as "go up 3<CR>" or
// "edit<CR>abc<Esc>": plain characters stand for themselves and names in
// angle brackets stand for special keys (<CR>, <Esc>, <BS>, <Tab>, <lt>).
package key

// Package editor aggregates the buffer registry, the layout tree and the
// focused panel into one State.
//
// Every mutation an input mode can make goes through a State method:
// cursor movement, character and line insertion, erasing, saving, status
// messages, panel splits and focus changes. Methods that find the
// current panel's buffer missing from the registry panic, since that can
// only happen through a programming error.
//
// The status line is two panels at the bottom of the screen: a narrow
// one showing the mode name and a wide one showing the last message.
// Both are ordinary registry buffers whose content is replaced when the
// mode or message changes.
package editor

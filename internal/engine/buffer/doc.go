// Package buffer provides the piece-table text buffer used by the editor.
//
// A Buffer keeps the text it was loaded with as an immutable backing
// sequence of characters and describes every logical line as an ordered list
// of pieces:
//
//   - Original pieces reference a span of the backing sequence.
//   - Added pieces own text typed after the buffer was loaded.
//
// Concatenating a line's pieces in order yields the line's current text, and
// joining all lines with a single newline yields the whole buffer. Edits never
// touch the backing sequence; they only rebuild the piece list of the line
// being edited.
//
// Basic usage:
//
//	buf := buffer.FromText("hello\nworld")
//	buf.InsertAtCursor('!', cursor.Cursor{X: 5, Y: 0})     // "hello!"
//	buf.InsertLineAtCursor(cursor.Cursor{X: 6, Y: 0})      // "hello!", "", "world"
//	buf.EraseAtCursor(cursor.Cursor{X: 0, Y: 2})           // "orld"
//
// Coordinates:
//
// Rows and columns are zero-based. Columns count characters (runes), not
// bytes. Column arguments larger than the line width are clamped to the
// width; a row outside the buffer is an internal invariant violation and
// panics.
//
// Thread Safety:
//
// A Buffer is not safe for concurrent use. The editor mutates buffers from a
// single goroutine.
package buffer

// Package cursor provides the viewport-local cursor used by panels.
//
// A Cursor is a plain (X, Y) value: X is a zero-based column measured in
// characters and Y is a zero-based row. Movement is bounded: Go never moves a
// cursor below zero and never past the limits described by Bounds.
//
// Basic usage:
//
//	c := cursor.Cursor{X: 4, Y: 10}
//	c = c.Go(cursor.Up, 3, cursor.Bounds{Width: 80, Height: 40}) // (4, 7)
//
// The cursor does not know about buffers or frames. Callers that mutate a
// buffer or resize a frame are responsible for re-clamping every cursor that
// refers to them.
package cursor

// Package layout describes how panels partition the screen.
//
// A layout is a binary tree. Leaves hold a named Panel; split nodes divide
// their frame between two children along one axis. The first child of a
// split receives Thickness cells on the side named by the split's
// Direction and the second child receives the rest:
//
//	Split(Down, 1, status, body)   status is the bottom row, body the rest
//	Split(Left, 6, mode, message)  mode is the leftmost 6 columns
//
// Frames are never stored. Every query recomputes them from the root frame,
// so a terminal resize is picked up on the next traversal.
package layout

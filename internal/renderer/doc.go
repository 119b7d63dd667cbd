// Package renderer turns editor state into views ready for painting.
//
// Compose walks the layout tree and produces one View per panel: its
// screen frame, the buffer lines that fit in it, the cursor position in
// screen cells and the display flags. Painting the views is the job of a
// backend; see package backend.
//
// The visible window is chosen around the cursor row: the top line stays
// at zero until the cursor passes the middle of the frame, then follows
// the cursor so that it stays centered, and stops once the last buffer
// line reaches the bottom of the frame.
//
// Usage:
//
//	c := renderer.Composer{Highlighter: pick}
//	for _, v := range c.Compose(state) {
//		paint(v)
//	}
package renderer

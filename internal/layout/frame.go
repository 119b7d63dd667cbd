package layout

import (
	"errors"
	"fmt"

	"github.com/dshills/linestorm/internal/engine/cursor"
)

// ErrDegenerateSplit is returned when a split thickness does not fit the
// frame being split.
var ErrDegenerateSplit = errors.New("split thickness out of range")

// Direction names the side of a frame a split's first child occupies.
type Direction = cursor.Direction

// Split directions.
const (
	Up    = cursor.Up
	Down  = cursor.Down
	Left  = cursor.Left
	Right = cursor.Right
)

// Frame is a screen rectangle in cells.
type Frame struct {
	X, Y          int
	Width, Height int
}

// String returns a string representation of the frame.
func (f Frame) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", f.X, f.Y, f.Width, f.Height)
}

// Contains reports whether the cell (x, y) lies inside the frame.
func (f Frame) Contains(x, y int) bool {
	return x >= f.X && x < f.X+f.Width && y >= f.Y && y < f.Y+f.Height
}

// Area returns the number of cells in the frame.
func (f Frame) Area() int {
	if f.Width <= 0 || f.Height <= 0 {
		return 0
	}
	return f.Width * f.Height
}

// extent returns the frame size along the axis dir splits.
func (f Frame) extent(dir Direction) int {
	if dir == Left || dir == Right {
		return f.Width
	}
	return f.Height
}

// Split partitions the frame. The first frame is thickness cells thick on
// the dir side; the second frame is the remainder.
//
// A thickness outside [0, extent] returns ErrDegenerateSplit. The frames
// returned alongside the error are computed from the thickness clamped into
// range, so callers may still draw something sensible.
func (f Frame) Split(dir Direction, thickness int) (Frame, Frame, error) {
	var err error
	if ext := f.extent(dir); thickness < 0 || thickness > ext {
		err = fmt.Errorf("%w: %d not in [0, %d] for %v split of %v", ErrDegenerateSplit, thickness, ext, dir, f)
		thickness = max(0, min(thickness, ext))
	}

	first, second := f.split(dir, thickness)
	return first, second, err
}

func (f Frame) split(dir Direction, t int) (Frame, Frame) {
	switch dir {
	case Up:
		return Frame{X: f.X, Y: f.Y, Width: f.Width, Height: t},
			Frame{X: f.X, Y: f.Y + t, Width: f.Width, Height: f.Height - t}
	case Down:
		return Frame{X: f.X, Y: f.Y + f.Height - t, Width: f.Width, Height: t},
			Frame{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height - t}
	case Left:
		return Frame{X: f.X, Y: f.Y, Width: t, Height: f.Height},
			Frame{X: f.X + t, Y: f.Y, Width: f.Width - t, Height: f.Height}
	default: // Right
		return Frame{X: f.X + f.Width - t, Y: f.Y, Width: t, Height: f.Height},
			Frame{X: f.X, Y: f.Y, Width: f.Width - t, Height: f.Height}
	}
}

// Screen reports the terminal size in cells.
type Screen interface {
	Size() (width, height int)
}

// ScreenFrame returns the frame covering the whole screen.
func ScreenFrame(s Screen) Frame {
	w, h := s.Size()
	return Frame{Width: max(w, 0), Height: max(h, 0)}
}

// FixedScreen is a Screen with a constant size.
type FixedScreen struct {
	Width, Height int
}

// Size returns the fixed dimensions.
func (s FixedScreen) Size() (int, int) {
	return s.Width, s.Height
}

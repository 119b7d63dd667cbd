package cursor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned by ParseDirection for unrecognised input.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction is one of the four screen directions.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction name, ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// Bounds limits cursor movement.
// Width is the number of addressable columns, Height the number of rows.
type Bounds struct {
	Width  int
	Height int
}

// Cursor is a zero-based (column, row) position.
// Cursor is a value type; all methods return a new Cursor.
type Cursor struct {
	X int
	Y int
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Go moves the cursor distance cells in dir, stopping at the bounds.
func (c Cursor) Go(dir Direction, distance int, b Bounds) Cursor {
	if distance < 0 {
		distance = 0
	}
	// Moves saturate at the bounds so huge distances cannot overflow.
	switch dir {
	case Up:
		c.Y -= min(distance, max(c.Y, 0))
	case Down:
		c.Y += min(distance, max(b.Height-1-c.Y, 0))
	case Left:
		c.X -= min(distance, max(c.X, 0))
	case Right:
		c.X += min(distance, max(b.Width-1-c.X, 0))
	}
	return c.Clamp(b.Width, b.Height)
}

// Clamp returns the cursor limited to [0, width-1] x [0, height-1].
// A non-positive width or height pins the corresponding axis to zero.
func (c Cursor) Clamp(width, height int) Cursor {
	c.X = clamp(c.X, 0, width-1)
	c.Y = clamp(c.Y, 0, height-1)
	return c
}

// clamp limits v to [lo, hi]; when hi < lo the result is lo.
func clamp(v, lo, hi int) int {
	if v >= hi {
		v = hi
	}
	if v <= lo {
		v = lo
	}
	return v
}

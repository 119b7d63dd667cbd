// Package backend paints renderer views on a terminal and reads terminal
// input as key events.
package backend

import (
	"github.com/dshills/linestorm/internal/input/key"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt

	// EventClosed is returned by PollEvent after Shutdown.
	EventClosed
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	case EventInterrupt:
		return "interrupt"
	case EventClosed:
		return "closed"
	default:
		return "none"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key holds the key for EventKey.
	Key key.Event

	// Width and Height hold the new size for EventResize.
	Width, Height int

	// Data holds the payload of an EventInterrupt.
	Data any
}

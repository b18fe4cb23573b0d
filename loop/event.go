package loop

import "fmt"

// EventKind identifies an event.
type EventKind int

const (
	EventRedraw EventKind = iota
	EventResize
	EventClose
	EventAboutToWait
)

func (k EventKind) String() string {
	switch k {
	case EventRedraw:
		return "Redraw"
	case EventResize:
		return "Resize"
	case EventClose:
		return "Close"
	case EventAboutToWait:
		return "AboutToWait"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is an input to the loop. Width and Height are set for
// EventResize only.
type Event struct {
	Kind          EventKind
	Width, Height int
}

// Redraw, Close and AboutToWait are the argument-free events.
var (
	Redraw      = Event{Kind: EventRedraw}
	Close       = Event{Kind: EventClose}
	AboutToWait = Event{Kind: EventAboutToWait}
)

// Resize returns a resize event.
func Resize(w, h int) Event {
	return Event{Kind: EventResize, Width: w, Height: h}
}

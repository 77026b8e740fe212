package session

import (
	"fmt"

	"github.com/philipparndt/meshpath/pkg/topology"
)

// State of an interactive path session.
type State int

const (
	// Idle waits for the next click.
	Idle State = iota
	// Pressed holds the button down on a control point that has not moved yet.
	Pressed
	// Dragging moves the pressed control point with the pointer.
	Dragging
	// Menu shows the options popover; only option changes, Menu, Confirm and Cancel are handled.
	Menu
	// Finished means the path was applied to the mesh.
	Finished
	// Cancelled means the session ended without edits.
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Pressed:
		return "Pressed"
	case Dragging:
		return "Dragging"
	case Menu:
		return "Menu"
	case Finished:
		return "Finished"
	case Cancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether the session is over.
func (s State) Terminal() bool { return s == Finished || s == Cancelled }

// EventKind is a device-independent user action.
type EventKind int

const (
	Press EventKind = iota
	Move
	Release
	Remove
	Reverse
	ToggleGap
	Undo
	Redo
	Confirm
	Cancel
	OpenMenu
)

var eventNames = [...]string{
	Press:     "press",
	Move:      "move",
	Release:   "release",
	Remove:    "remove",
	Reverse:   "reverse",
	ToggleGap: "gap",
	Undo:      "undo",
	Redo:      "redo",
	Confirm:   "confirm",
	Cancel:    "cancel",
	OpenMenu:  "menu",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one user action. Pointer events (Press, Move, Remove) carry the
// picked element; Hit is false when the pointer is over empty space.
type Event struct {
	Kind    EventKind
	Element topology.ElementRef
	Hit     bool
}

// PressOn is a button press over e.
func PressOn(e topology.ElementRef) Event { return Event{Kind: Press, Element: e, Hit: true} }

// MoveTo is a pointer move over e.
func MoveTo(e topology.ElementRef) Event { return Event{Kind: Move, Element: e, Hit: true} }

// RemoveOn is a modifier press over e.
func RemoveOn(e topology.ElementRef) Event { return Event{Kind: Remove, Element: e, Hit: true} }

// Key is a non-pointer event.
func Key(kind EventKind) Event { return Event{Kind: kind} }

func (ev Event) String() string {
	switch ev.Kind {
	case Press, Move, Remove:
		if !ev.Hit {
			return ev.Kind.String() + " <miss>"
		}
		return ev.Kind.String() + " " + ev.Element.String()
	}
	return ev.Kind.String()
}

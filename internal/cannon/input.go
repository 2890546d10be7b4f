package cannon

import "fmt"

// EventKind classifies an InputEvent.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointerDown
	EventPointerUp
	EventQuit // window close or terminal interrupt
)

func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "key_down"
	case EventKeyUp:
		return "key_up"
	case EventPointerDown:
		return "pointer_down"
	case EventPointerUp:
		return "pointer_up"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Key is the backend-independent key vocabulary the game reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeySpace:
		return "space"
	default:
		return "other"
	}
}

// InputEvent is one entry of the non-blocking input queue a frontend drains
// each tick. X and Y are arena coordinates and only meaningful for pointer
// events.
type InputEvent struct {
	Kind EventKind
	Key  Key
	X, Y int
}

func (e InputEvent) String() string {
	switch e.Kind {
	case EventKeyDown, EventKeyUp:
		return fmt.Sprintf("%s %s", e.Kind, e.Key)
	case EventPointerDown, EventPointerUp:
		return fmt.Sprintf("%s (%d,%d)", e.Kind, e.X, e.Y)
	default:
		return e.Kind.String()
	}
}

// KeyDownEvent is shorthand for a key-down event.
func KeyDownEvent(k Key) InputEvent { return InputEvent{Kind: EventKeyDown, Key: k} }

// KeyUpEvent is shorthand for a key-up event.
func KeyUpEvent(k Key) InputEvent { return InputEvent{Kind: EventKeyUp, Key: k} }

// PointerDown is shorthand for a primary-button press at (x,y).
func PointerDown(x, y int) InputEvent { return InputEvent{Kind: EventPointerDown, X: x, Y: y} }

// Quit is shorthand for the window-close event.
func Quit() InputEvent { return InputEvent{Kind: EventQuit} }

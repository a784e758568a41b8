package dock

import "dockspace/internal/geom"

// Event is the closed union of normalized input events the engine routes.
// The host converts its own event types (terminal, GUI toolkit) into these.
type Event interface {
	isEvent()
}

// PointerAction distinguishes press, movement, and release.
type PointerAction uint8

const (
	PointerMove PointerAction = iota
	PointerPress
	PointerRelease
)

// PointerButton identifies which button (if any) an event carries.
type PointerButton uint8

const (
	ButtonNone PointerButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
	ButtonWheelUp
	ButtonWheelDown
)

// PointerEvent is a normalized mouse event in root-rect cell coordinates.
type PointerEvent struct {
	Pos    geom.Point
	Action PointerAction
	Button PointerButton
	Shift  bool
	Alt    bool
	Ctrl   bool
}

func (PointerEvent) isEvent() {}

// KeyEvent is a normalized key press, using Bubble Tea key naming
// ("enter", "esc", "ctrl+c", single runes as themselves).
type KeyEvent struct {
	Key string
}

func (KeyEvent) isEvent() {}

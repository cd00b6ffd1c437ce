package input

import (
	"time"

	"github.com/lixenwraith/floorplan/core"
)

// Button identifies a pointer button
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Modifiers holds modifier key state at event time
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool
}

// PointerAction discriminates pointer events
type PointerAction uint8

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
)

// PointerEvent is a mouse-style event in client coordinates
type PointerEvent struct {
	Action  PointerAction
	Button  Button
	ClientX float64
	ClientY float64
	Mod     Modifiers
	Time    time.Time
}

// WheelEvent is a scroll event; positive DeltaY scrolls down
type WheelEvent struct {
	ClientX float64
	ClientY float64
	DeltaY  float64
	Mod     Modifiers
	Time    time.Time
}

// TouchAction discriminates touch events
type TouchAction uint8

const (
	TouchStart TouchAction = iota
	TouchMove
	TouchEnd
	TouchCancel
)

// Touch is one contact point
type Touch struct {
	ID      int
	ClientX float64
	ClientY float64
}

// TouchEvent carries the contacts still on the surface after the action
type TouchEvent struct {
	Action  TouchAction
	Touches []Touch
	Time    time.Time
}

// KeyAction discriminates keyboard events
type KeyAction uint8

const (
	KeyDown KeyAction = iota
	KeyUp
)

// KeyEvent is a normalized key press or release
// Key is a printable character or a name such as "Delete", "Escape", "Enter", " "
type KeyEvent struct {
	Action KeyAction
	Key    string
	Mod    Modifiers
}

// Surface reports the on-screen rectangle of the editing area
// Client coordinates are made local by subtracting the rectangle's minimum corner
type Surface interface {
	Origin() core.Point
}

// FixedSurface is a Surface at a constant origin
type FixedSurface core.Point

// Origin implements Surface
func (s FixedSurface) Origin() core.Point {
	return core.Point(s)
}

package input

import (
	"github.com/lixenwraith/floorplan/core"
)

// GestureType discriminates abstract edit events
type GestureType uint8

const (
	GestureNone GestureType = iota
	GestureSelect
	GestureHover
	GestureDragStart
	GestureDrag
	GestureDragEnd
	GestureRotateStart
	GestureRotate
	GestureRotateEnd
	GestureResizeStart
	GestureResize
	GestureResizeEnd
	GesturePinch
)

var gestureNames = [...]string{
	GestureNone:        "none",
	GestureSelect:      "select",
	GestureHover:       "hover",
	GestureDragStart:   "dragStart",
	GestureDrag:        "drag",
	GestureDragEnd:     "dragEnd",
	GestureRotateStart: "rotateStart",
	GestureRotate:      "rotate",
	GestureRotateEnd:   "rotateEnd",
	GestureResizeStart: "resizeStart",
	GestureResize:      "resize",
	GestureResizeEnd:   "resizeEnd",
	GesturePinch:       "pinch",
}

func (g GestureType) String() string {
	if int(g) < len(gestureNames) {
		return gestureNames[g]
	}
	return "unknown"
}

// Gesture is a device-agnostic edit event in surface-local coordinates
//
// Field use by type:
//   - Select, Hover: Point, Taps (select only)
//   - Drag*, Resize*, Rotate*: Point, Start, Delta since previous event, Total since Start
//   - Rotate*: Angle is the direction of Total in degrees
//   - Pinch: Center, Scale and Rotation since the gesture began, ScaleDelta and RotationDelta since previous
type Gesture struct {
	Type  GestureType
	Point core.Point
	Start core.Point
	Delta core.Point
	Total core.Point
	Angle float64

	Center        core.Point
	Scale         float64
	ScaleDelta    float64
	Rotation      float64
	RotationDelta float64

	Taps int
	Mod  Modifiers
}

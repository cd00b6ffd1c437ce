package event

import (
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
)

// RoomPayload references the room an event is about
type RoomPayload struct {
	Room *entity.Room
}

// RoomFocusPayload carries selection or hover state
// Room nil means cleared; Point is set only when a vertex is focused
type RoomFocusPayload struct {
	Room  *entity.Room
	Point *core.Point
}

// PreviewPayload carries transient outline points, never persisted
type PreviewPayload struct {
	Points []core.Point
}

// DoorPayload references the door an event is about
type DoorPayload struct {
	Door *entity.Door
}

// DoorFocusPayload carries selection or hover state; Door nil means cleared
type DoorFocusPayload struct {
	Door *entity.Door
}

// DoorPreviewPayload carries a candidate door, never persisted
type DoorPreviewPayload struct {
	Door *entity.Door
}

// ValidationErrorPayload mirrors one validation.Error
type ValidationErrorPayload struct {
	Field    string
	Message  string
	Code     string
	Severity string
}

// ModeChangedPayload carries the previous and new interaction mode
type ModeChangedPayload struct {
	Previous core.Mode
	Current  core.Mode
}

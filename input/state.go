package input

import (
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
)

// Activity is the single active input sequence
// Exactly one value at a time, so the gesture flags cannot overlap
type Activity uint8

const (
	ActivityIdle     Activity = iota
	ActivityDragging          // Primary down outside draw mode
	ActivityResizing          // Shift + primary down in select mode
	ActivityRotating          // Secondary down in select mode
	ActivityDrawing           // Primary down in draw mode
	ActivityPinching          // Two touches on the surface
)

// State is the transient interaction state, written only by Manager
type State struct {
	Mode     core.Mode
	Activity Activity

	// Nil outside an active sequence
	StartPoint   *core.Point
	CurrentPoint *core.Point

	// Mirrored from manager events
	SelectedRoom  *entity.Room
	SelectedPoint *core.Point
	SelectedDoor  *entity.Door
	HoveredRoom   *entity.Room
	HoveredDoor   *entity.Door
}

func (s State) IsDragging() bool { return s.Activity == ActivityDragging }
func (s State) IsResizing() bool { return s.Activity == ActivityResizing }
func (s State) IsRotating() bool { return s.Activity == ActivityRotating }
func (s State) IsDrawing() bool  { return s.Activity == ActivityDrawing }
func (s State) IsPinching() bool { return s.Activity == ActivityPinching }

// Package render defines the contract between the editor core and anything that draws the plan
package render

import (
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
)

// Consumer receives the collections and focus state to draw
// Slices are owned by the consumer after the call
type Consumer interface {
	SetRooms(rooms []*entity.Room)
	SetDoors(doors []*entity.Door)
	SetSelectedRoom(room *entity.Room, point *core.Point)
	SetSelectedDoor(door *entity.Door)
	SetPreviewPoints(points []core.Point)
}

// HoverAware is optionally implemented to receive hover highlights
type HoverAware interface {
	SetHoveredRoom(room *entity.Room, point *core.Point)
	SetHoveredDoor(door *entity.Door)
}

// DoorPreviewAware is optionally implemented to draw the door placement candidate
type DoorPreviewAware interface {
	SetPreviewDoor(door *entity.Door)
}

// RoomSource lists rooms in draw order
type RoomSource interface {
	Rooms() []*entity.Room
}

// DoorSource lists doors in draw order
type DoorSource interface {
	Doors() []*entity.Door
}

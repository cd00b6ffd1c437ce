package render

import (
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/event"
)

// Bridge forwards manager events to a Consumer
// Collection events re-read the whole collection from the source
type Bridge struct {
	rooms    RoomSource
	doors    DoorSource
	consumer Consumer

	unsubscribe []func()
}

// NewBridge subscribes consumer to bus and pushes the current state once
func NewBridge(bus *event.Bus, rooms RoomSource, doors DoorSource, consumer Consumer) *Bridge {
	b := &Bridge{rooms: rooms, doors: doors, consumer: consumer}

	for _, t := range []event.Type{event.EventRoomAdded, event.EventRoomUpdated, event.EventRoomRemoved} {
		b.unsubscribe = append(b.unsubscribe, bus.Subscribe(t, func(event.Event) { b.pushRooms() }))
	}
	for _, t := range []event.Type{event.EventDoorAdded, event.EventDoorUpdated, event.EventDoorRemoved} {
		b.unsubscribe = append(b.unsubscribe, bus.Subscribe(t, func(event.Event) { b.pushDoors() }))
	}
	b.unsubscribe = append(b.unsubscribe,
		event.On(bus, event.EventRoomSelectionChanged, func(p event.RoomFocusPayload) {
			consumer.SetSelectedRoom(p.Room, p.Point)
		}),
		event.On(bus, event.EventDoorSelectionChanged, func(p event.DoorFocusPayload) {
			consumer.SetSelectedDoor(p.Door)
		}),
		event.On(bus, event.EventRoomPreviewChanged, func(p event.PreviewPayload) {
			consumer.SetPreviewPoints(core.ClonePoints(p.Points))
		}),
		event.OnSignal(bus, event.EventRoomPreviewCleared, func() {
			consumer.SetPreviewPoints(nil)
		}),
	)

	if ha, ok := consumer.(HoverAware); ok {
		b.unsubscribe = append(b.unsubscribe,
			event.On(bus, event.EventRoomHoverChanged, func(p event.RoomFocusPayload) {
				ha.SetHoveredRoom(p.Room, p.Point)
			}),
			event.On(bus, event.EventDoorHoverChanged, func(p event.DoorFocusPayload) {
				ha.SetHoveredDoor(p.Door)
			}),
		)
	}
	if dp, ok := consumer.(DoorPreviewAware); ok {
		b.unsubscribe = append(b.unsubscribe,
			event.On(bus, event.EventDoorPreviewChanged, func(p event.DoorPreviewPayload) {
				dp.SetPreviewDoor(p.Door)
			}),
			event.OnSignal(bus, event.EventDoorPreviewCleared, func() {
				dp.SetPreviewDoor(nil)
			}),
		)
	}

	b.pushRooms()
	b.pushDoors()
	return b
}

func (b *Bridge) pushRooms() {
	b.consumer.SetRooms(append([]*entity.Room(nil), b.rooms.Rooms()...))
}

func (b *Bridge) pushDoors() {
	b.consumer.SetDoors(append([]*entity.Door(nil), b.doors.Doors()...))
}

// Close unsubscribes from the bus
func (b *Bridge) Close() {
	for _, fn := range b.unsubscribe {
		fn()
	}
	b.unsubscribe = nil
}

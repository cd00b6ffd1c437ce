package event

// Type identifies a change notification topic
type Type int

const (
	// === Room Event ===

	// EventRoomAdded signals a validated room was inserted
	// Trigger: Rooms.CreateRoom, document import
	// Consumer: render bridge, audio | Payload: RoomPayload
	EventRoomAdded Type = iota + 1

	// EventRoomUpdated signals a committed room mutation
	// Trigger: Rooms update/move/rotate/scale/vertex edits
	// Consumer: render bridge | Payload: RoomPayload
	EventRoomUpdated

	// EventRoomRemoved signals a room left the collection
	// Trigger: Rooms.DeleteRoom
	// Consumer: render bridge, handlers holding weak references | Payload: RoomPayload
	EventRoomRemoved

	// EventRoomSelectionChanged signals the selected room or vertex changed
	// Trigger: Rooms selection setters, delete of the selected room
	// Consumer: input.Manager state mirror, render bridge | Payload: RoomFocusPayload
	EventRoomSelectionChanged

	// EventRoomHoverChanged signals the hovered room or vertex changed
	// Trigger: Rooms hover setters
	// Consumer: input.Manager state mirror, render bridge | Payload: RoomFocusPayload
	EventRoomHoverChanged

	// EventRoomPreviewChanged broadcasts transient in-progress outline points
	// Trigger: RoomHandler while drawing
	// Consumer: render bridge | Payload: PreviewPayload
	EventRoomPreviewChanged

	// EventRoomPreviewCleared retracts the in-progress outline
	// Trigger: Rooms.ClearPreview
	// Consumer: render bridge | Payload: nil
	EventRoomPreviewCleared

	// === Door Event ===

	// EventDoorAdded signals a validated door was inserted
	// Trigger: Doors.CreateDoor, document import
	// Consumer: render bridge, audio | Payload: DoorPayload
	EventDoorAdded Type = iota + 100

	// EventDoorUpdated signals a committed door mutation
	// Trigger: Doors update/move/rotate/resize/swing
	// Consumer: render bridge | Payload: DoorPayload
	EventDoorUpdated

	// EventDoorRemoved signals a door left the collection
	// Trigger: Doors.DeleteDoor
	// Consumer: render bridge | Payload: DoorPayload
	EventDoorRemoved

	// EventDoorSelectionChanged signals the selected door changed
	// Trigger: Doors selection setters, delete of the selected door
	// Consumer: input.Manager state mirror, render bridge | Payload: DoorFocusPayload
	EventDoorSelectionChanged

	// EventDoorHoverChanged signals the hovered door changed
	// Trigger: Doors hover setters
	// Consumer: input.Manager state mirror | Payload: DoorFocusPayload
	EventDoorHoverChanged

	// EventDoorPreviewChanged broadcasts a candidate door placement
	// Trigger: DoorHandler hover in door mode
	// Consumer: render bridge | Payload: DoorPreviewPayload
	EventDoorPreviewChanged

	// EventDoorPreviewCleared retracts the candidate door
	// Trigger: Doors.ClearPreview
	// Consumer: render bridge | Payload: nil
	EventDoorPreviewCleared

	// === Validation Event ===

	// EventValidationError carries one failed rule
	// Trigger: validation.Validator, once per error in a failing Result
	// Consumer: status line, audio, API | Payload: ValidationErrorPayload
	EventValidationError Type = iota + 200

	// === Interaction Event ===

	// EventModeChanged signals an interaction mode switch
	// Trigger: input.Manager.SetMode
	// Consumer: status line, render bridge | Payload: ModeChangedPayload
	EventModeChanged Type = iota + 300
)

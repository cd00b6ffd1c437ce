package event

import (
	"fmt"
	"reflect"
)

type registration struct {
	name    string
	payload reflect.Type // nil for payload-less events
}

var registry = make(map[Type]registration)

// register maps an event type to its name and payload type
// payloadInstance is a zero value of the payload struct, or nil for no payload
func register(name string, t Type, payloadInstance any) {
	reg := registration{name: name}
	if payloadInstance != nil {
		reg.payload = reflect.TypeOf(payloadInstance)
	}
	registry[t] = reg
}

func init() {
	register("roomAdded", EventRoomAdded, RoomPayload{})
	register("roomUpdated", EventRoomUpdated, RoomPayload{})
	register("roomRemoved", EventRoomRemoved, RoomPayload{})
	register("roomSelectionChanged", EventRoomSelectionChanged, RoomFocusPayload{})
	register("roomHoverChanged", EventRoomHoverChanged, RoomFocusPayload{})
	register("roomPreviewChanged", EventRoomPreviewChanged, PreviewPayload{})
	register("roomPreviewCleared", EventRoomPreviewCleared, nil)

	register("doorAdded", EventDoorAdded, DoorPayload{})
	register("doorUpdated", EventDoorUpdated, DoorPayload{})
	register("doorRemoved", EventDoorRemoved, DoorPayload{})
	register("doorSelectionChanged", EventDoorSelectionChanged, DoorFocusPayload{})
	register("doorHoverChanged", EventDoorHoverChanged, DoorFocusPayload{})
	register("doorPreviewChanged", EventDoorPreviewChanged, DoorPreviewPayload{})
	register("doorPreviewCleared", EventDoorPreviewCleared, nil)

	register("validationError", EventValidationError, ValidationErrorPayload{})

	register("modeChanged", EventModeChanged, ModeChangedPayload{})
}

// String returns the registered topic name
func (t Type) String() string {
	if reg, ok := registry[t]; ok {
		return reg.name
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// Lookup resolves a topic name to its Type
func Lookup(name string) (Type, bool) {
	for t, reg := range registry {
		if reg.name == name {
			return t, true
		}
	}
	return 0, false
}

// Types returns every registered type
func Types() []Type {
	out := make([]Type, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	return out
}

// checkPayload returns an error if payload does not match the registered payload type
func checkPayload(t Type, payload any) error {
	reg, ok := registry[t]
	if !ok {
		return fmt.Errorf("event %d is not registered", int(t))
	}
	if reg.payload == nil {
		if payload != nil {
			return fmt.Errorf("event %s takes no payload, got %T", reg.name, payload)
		}
		return nil
	}
	if got := reflect.TypeOf(payload); got != reg.payload {
		return fmt.Errorf("event %s expects %s payload, got %v", reg.name, reg.payload, got)
	}
	return nil
}

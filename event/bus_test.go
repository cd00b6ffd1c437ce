package event

import (
	"strings"
	"testing"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
)

func TestEveryTypeHasName(t *testing.T) {
	for _, typ := range Types() {
		name := typ.String()
		if strings.HasPrefix(name, "event(") {
			t.Errorf("type %d has no registered name", int(typ))
		}
		back, ok := Lookup(name)
		if !ok || back != typ {
			t.Errorf("Lookup(%q) = %v,%v want %v", name, back, ok, typ)
		}
	}
}

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	b := NewBus()
	var order []int
	b.Subscribe(EventRoomAdded, func(Event) { order = append(order, 1) })
	b.Subscribe(EventRoomAdded, func(Event) { order = append(order, 2) })
	b.SubscribeAll(func(Event) { order = append(order, 3) })

	b.Emit(EventRoomAdded, RoomPayload{Room: entity.NewRoom("", nil)})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("delivery order = %v, want [1 2 3]", order)
	}
}

func TestBusTypedListener(t *testing.T) {
	b := NewBus()
	var got core.Mode
	On(b, EventModeChanged, func(p ModeChangedPayload) { got = p.Current })

	b.Emit(EventModeChanged, ModeChangedPayload{Previous: core.ModeSelect, Current: core.ModeDoor})
	if got != core.ModeDoor {
		t.Errorf("typed listener got %v, want door", got)
	}
}

func TestBusCancel(t *testing.T) {
	b := NewBus()
	count := 0
	cancel := OnSignal(b, EventRoomPreviewCleared, func() { count++ })

	b.Emit(EventRoomPreviewCleared, nil)
	cancel()
	b.Emit(EventRoomPreviewCleared, nil)

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if b.HandlerCount(EventRoomPreviewCleared) != 0 {
		t.Error("listener not removed")
	}
}

func TestBusSubscribeDuringDispatch(t *testing.T) {
	b := NewBus()
	late := 0
	b.Subscribe(EventDoorPreviewCleared, func(Event) {
		b.Subscribe(EventDoorPreviewCleared, func(Event) { late++ })
	})

	b.Emit(EventDoorPreviewCleared, nil)
	if late != 0 {
		t.Errorf("listener added during dispatch ran in the same emit")
	}
	b.Emit(EventDoorPreviewCleared, nil)
	if late != 1 {
		t.Errorf("late = %d, want 1", late)
	}
}

func TestBusSequenceIncreases(t *testing.T) {
	b := NewBus()
	var seqs []uint64
	b.SubscribeAll(func(ev Event) { seqs = append(seqs, ev.Seq) })
	b.Emit(EventRoomPreviewCleared, nil)
	b.Emit(EventDoorPreviewCleared, nil)
	if len(seqs) != 2 || seqs[1] <= seqs[0] {
		t.Errorf("sequence = %v", seqs)
	}
}

func TestBusPanicsOnPayloadMismatch(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		payload any
	}{
		{"wrong struct", EventRoomAdded, DoorPayload{}},
		{"pointer instead of value", EventRoomAdded, &RoomPayload{}},
		{"payload on signal", EventRoomPreviewCleared, RoomPayload{}},
		{"missing payload", EventDoorAdded, nil},
		{"unregistered", Type(9999), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic")
				}
			}()
			NewBus().Emit(tt.typ, tt.payload)
		})
	}
}

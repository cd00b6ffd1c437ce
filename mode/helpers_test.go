package mode

import (
	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/input"
	"github.com/lixenwraith/floorplan/manager"
	"github.com/lixenwraith/floorplan/validation"
)

type harness struct {
	bus    *event.Bus
	input  *input.Manager
	rooms  *manager.Rooms
	doors  *manager.Doors
	room   *RoomHandler
	door   *DoorHandler
	counts map[event.Type]int
}

func newHarness() *harness {
	cfg := config.Default()
	bus := event.NewBus()
	v := validation.NewValidator(cfg.Validation, bus)
	h := &harness{
		bus:    bus,
		input:  input.NewManager(bus, cfg.Input),
		rooms:  manager.NewRooms(v, bus, cfg.Grid.Size),
		doors:  manager.NewDoors(v, bus, cfg.Door),
		counts: make(map[event.Type]int),
	}
	bus.SubscribeAll(func(ev event.Event) { h.counts[ev.Type]++ })
	h.room = NewRoomHandler(h.rooms, cfg)
	h.door = NewDoorHandler(h.doors, h.rooms)
	h.input.Register(h.room)
	h.input.Register(h.door)
	h.input.Register(NewSwitcher(h.input))
	return h
}

func (h *harness) resetCounts() {
	clear(h.counts)
}

func (h *harness) press(btn input.Button, x, y float64) {
	h.input.HandlePointer(input.PointerEvent{Action: input.PointerDown, Button: btn, ClientX: x, ClientY: y})
}

func (h *harness) move(x, y float64) {
	h.input.HandlePointer(input.PointerEvent{Action: input.PointerMove, ClientX: x, ClientY: y})
}

func (h *harness) release(x, y float64) {
	h.input.HandlePointer(input.PointerEvent{Action: input.PointerUp, ClientX: x, ClientY: y})
}

func (h *harness) click(x, y float64) {
	h.press(input.ButtonPrimary, x, y)
	h.release(x, y)
}

func (h *harness) key(k string) {
	h.input.HandleKey(input.KeyEvent{Action: input.KeyDown, Key: k})
	h.input.HandleKey(input.KeyEvent{Action: input.KeyUp, Key: k})
}

func square(x, y, side float64) []core.Point {
	return []core.Point{
		core.Pt(x, y),
		core.Pt(x+side, y),
		core.Pt(x+side, y+side),
		core.Pt(x, y+side),
	}
}

func near(a, b core.Point) bool {
	const eps = 1e-6
	d := a.Sub(b)
	return d.X < eps && d.X > -eps && d.Y < eps && d.Y > -eps
}

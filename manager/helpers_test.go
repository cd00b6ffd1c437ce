package manager

import (
	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/validation"
)

// recorder captures every event emitted on a bus
type recorder struct {
	events []event.Event
}

func (r *recorder) count(t event.Type) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = nil
}

type fixture struct {
	bus   *event.Bus
	rec   *recorder
	rooms *Rooms
	doors *Doors
}

func newFixture() *fixture {
	cfg := config.Default()
	bus := event.NewBus()
	rec := &recorder{}
	bus.SubscribeAll(func(ev event.Event) { rec.events = append(rec.events, ev) })
	v := validation.NewValidator(cfg.Validation, bus)
	return &fixture{
		bus:   bus,
		rec:   rec,
		rooms: NewRooms(v, bus, cfg.Grid.Size),
		doors: NewDoors(v, bus, cfg.Door),
	}
}

func square(x, y, side float64) []core.Point {
	return []core.Point{
		core.Pt(x, y),
		core.Pt(x+side, y),
		core.Pt(x+side, y+side),
		core.Pt(x, y+side),
	}
}

func near(a, b float64) bool {
	const eps = 1e-6
	d := a - b
	return d < eps && d > -eps
}

package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/manager"
	"github.com/lixenwraith/floorplan/validation"
)

// countingConsumer records how often each setter ran
type countingConsumer struct {
	rooms, doors, previews int
	lastRooms              []*entity.Room
	selected               *entity.Room
	selectedDoor           *entity.Door
	preview                []core.Point
}

func (c *countingConsumer) SetRooms(r []*entity.Room) { c.rooms++; c.lastRooms = r }
func (c *countingConsumer) SetDoors([]*entity.Door)   { c.doors++ }
func (c *countingConsumer) SetSelectedRoom(r *entity.Room, _ *core.Point) {
	c.selected = r
}
func (c *countingConsumer) SetSelectedDoor(d *entity.Door) { c.selectedDoor = d }
func (c *countingConsumer) SetPreviewPoints(p []core.Point) {
	c.previews++
	c.preview = p
}

func newManagers() (*event.Bus, *manager.Rooms, *manager.Doors) {
	cfg := config.Default()
	bus := event.NewBus()
	v := validation.NewValidator(cfg.Validation, bus)
	return bus, manager.NewRooms(v, bus, cfg.Grid.Size), manager.NewDoors(v, bus, cfg.Door)
}

func square(x, y, side float64) []core.Point {
	return []core.Point{core.Pt(x, y), core.Pt(x+side, y), core.Pt(x+side, y+side), core.Pt(x, y+side)}
}

func TestBridge(t *testing.T) {
	bus, rooms, doors := newManagers()
	c := &countingConsumer{}
	b := NewBridge(bus, rooms, doors, c)

	if c.rooms != 1 || c.doors != 1 {
		t.Fatalf("initial push = %d/%d, want 1/1", c.rooms, c.doors)
	}

	room, _ := rooms.CreateRoom("a", square(0, 0, 100))
	_ = rooms.MoveRoom(room, core.Pt(10, 0))
	rooms.SelectRoom(room)
	rooms.SetPreview(square(0, 0, 10))
	rooms.ClearPreview()
	_, _ = doors.CreateDoor(room, core.Pt(60, 0), 0)

	if c.rooms != 3 {
		t.Errorf("SetRooms calls = %d, want 3", c.rooms)
	}
	if len(c.lastRooms) != 1 || c.lastRooms[0] != room {
		t.Errorf("last rooms = %v", c.lastRooms)
	}
	if c.selected != room {
		t.Errorf("selection not forwarded")
	}
	if c.previews != 2 || c.preview != nil {
		t.Errorf("previews = %d, last %v", c.previews, c.preview)
	}
	if c.doors != 2 {
		t.Errorf("SetDoors calls = %d, want 2", c.doors)
	}

	b.Close()
	_ = rooms.DeleteRoom(room)
	if c.rooms != 3 {
		t.Errorf("closed bridge still forwards")
	}
}

func TestBridgeOptionalCapabilities(t *testing.T) {
	bus, rooms, doors := newManagers()
	s := NewSnapshot()
	NewBridge(bus, rooms, doors, s)

	room, _ := rooms.CreateRoom("a", square(0, 0, 100))
	rooms.SetHover(room, nil)
	doors.SetPreview(doors.NewCandidate(core.Pt(50, 0), 0))

	if s.hoveredRoom != room {
		t.Errorf("hover not forwarded to HoverAware consumer")
	}
	if s.previewDoor == nil {
		t.Errorf("door preview not forwarded")
	}
	doors.ClearPreview()
	if s.previewDoor != nil {
		t.Errorf("door preview not cleared")
	}
}

func TestSnapshotSVG(t *testing.T) {
	bus, rooms, doors := newManagers()
	s := NewSnapshot()
	NewBridge(bus, rooms, doors, s)

	room, _ := rooms.CreateRoom("Kitchen & Co", square(100, 100, 200))
	door, _ := doors.CreateDoor(room, core.Pt(200, 100), 0)
	rooms.SelectRoom(room)

	svg := s.SVG()
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="240" height="245"`,
		`id="room-` + room.ID + `"`,
		`class="room selected"`,
		`id="door-` + door.ID + `"`,
		`Kitchen &amp; Co`,
		// The door reaches 5 units below the wall, shifting the room down
		`points="20,25 220,25 220,225 20,225"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("svg not terminated")
	}
}

func TestSnapshotEmpty(t *testing.T) {
	s := NewSnapshot()
	svg := s.SVG()
	if !strings.Contains(svg, `width="40" height="40"`) {
		t.Errorf("empty plan svg = %s", svg)
	}
}

func TestSnapshotPNG(t *testing.T) {
	bus, rooms, doors := newManagers()
	s := NewSnapshot()
	NewBridge(bus, rooms, doors, s)
	if _, err := rooms.CreateRoom("a", square(0, 0, 100)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := s.PNG(&buf); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 140 || b.Dy() != 140 {
		t.Fatalf("size = %v, want 140x140", b)
	}

	bg := s.Image().RGBAAt(5, 5)
	inside := s.Image().RGBAAt(70, 70)
	if bg == inside {
		t.Errorf("room interior not filled: %v", inside)
	}
	if bg.R != ColorBackground.R || bg.G != ColorBackground.G || bg.B != ColorBackground.B {
		t.Errorf("background = %v", bg)
	}
}

func TestSnapshotScalesLargePlans(t *testing.T) {
	bus, rooms, doors := newManagers()
	s := NewSnapshot()
	NewBridge(bus, rooms, doors, s)
	if _, err := rooms.CreateRoom("big", square(0, 0, 10000)); err != nil {
		t.Fatal(err)
	}
	b := s.Image().Bounds()
	if b.Dx() > 2048 || b.Dy() > 2048 {
		t.Errorf("image %v exceeds max side", b)
	}
}

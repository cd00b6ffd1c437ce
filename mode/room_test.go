package mode

import (
	"testing"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/input"
)

func TestDrawRoom(t *testing.T) {
	h := newHarness()
	h.input.SetMode(core.ModeDraw)

	h.click(0, 0)
	h.click(102, 3) // snaps to (100,0)
	h.move(98, 97)

	preview := h.rooms.Preview()
	want := []core.Point{core.Pt(0, 0), core.Pt(100, 0), core.Pt(100, 100), core.Pt(0, 100)}
	if len(preview) != 4 {
		t.Fatalf("preview = %v, want rectangle", preview)
	}
	for i := range want {
		if preview[i] != want[i] {
			t.Errorf("preview[%d] = %v, want %v", i, preview[i], want[i])
		}
	}

	h.click(100, 100)
	if got := h.room.Drawing(); len(got) != 3 {
		t.Fatalf("drawing = %v", got)
	}
	h.click(0, 100)

	if h.rooms.Len() != 1 {
		t.Fatalf("rooms = %d, want 1", h.rooms.Len())
	}
	r := h.rooms.Rooms()[0]
	if r.Area() != 10000 || r.Name != "Room 1" {
		t.Errorf("room = %s area %g", r.Name, r.Area())
	}
	if len(h.room.Drawing()) != 0 || h.rooms.Preview() != nil {
		t.Errorf("drawing state not cleared")
	}
}

func TestDrawRoomRejected(t *testing.T) {
	h := newHarness()
	h.input.SetMode(core.ModeDraw)
	for _, x := range []float64{0, 100, 200, 300} {
		h.click(x, 0)
	}
	if h.rooms.Len() != 0 {
		t.Errorf("collinear room created")
	}
	if h.counts[event.EventValidationError] == 0 {
		t.Errorf("no validationError for collinear room")
	}
	if len(h.room.Drawing()) != 0 {
		t.Errorf("drawing not reset after rejection")
	}
}

func TestModeSwitchClearsDrawing(t *testing.T) {
	h := newHarness()
	h.key("2")
	if h.input.Mode() != core.ModeDraw {
		t.Fatalf("mode = %s", h.input.Mode())
	}
	h.click(0, 0)
	h.click(100, 0)
	h.key("1")
	if len(h.room.Drawing()) != 0 {
		t.Errorf("drawing survived mode switch")
	}
	if h.rooms.Preview() != nil {
		t.Errorf("preview survived mode switch")
	}
}

func TestDragVertex(t *testing.T) {
	h := newHarness()
	room, _ := h.rooms.CreateRoom("a", square(0, 0, 100))

	h.press(input.ButtonPrimary, 98, 101)
	if _, pt := h.rooms.Selected(); pt == nil || *pt != core.Pt(100, 100) {
		t.Fatalf("vertex not selected: %v", pt)
	}
	h.move(148, 121)
	h.release(148, 121)

	if room.Points[2] != core.Pt(150, 120) {
		t.Errorf("vertex = %v, want (150,120)", room.Points[2])
	}
	if room.Points[0] != core.Pt(0, 0) {
		t.Errorf("other vertices moved")
	}
}

func TestDragVertexRejected(t *testing.T) {
	h := newHarness()
	room, _ := h.rooms.CreateRoom("a", square(0, 0, 100))

	h.press(input.ButtonPrimary, 100, 100)
	h.move(-50, 50)
	h.move(150, 150)
	h.release(150, 150)

	// The crossing position is skipped, the later valid one applies
	if room.Points[2] != core.Pt(150, 150) {
		t.Errorf("vertex = %v, want (150,150)", room.Points[2])
	}
}

func TestDragRoom(t *testing.T) {
	h := newHarness()
	room, _ := h.rooms.CreateRoom("a", square(0, 0, 100))

	h.press(input.ButtonPrimary, 50, 50)
	h.move(60, 70)
	h.move(70, 70)
	h.release(70, 70)

	want := square(20, 20, 100)
	for i := range want {
		if room.Points[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, room.Points[i], want[i])
		}
	}
	if sel, _ := h.rooms.Selected(); sel != room {
		t.Errorf("room not selected after drag")
	}
}

func TestClickEmptyClearsSelection(t *testing.T) {
	h := newHarness()
	room, _ := h.rooms.CreateRoom("a", square(0, 0, 100))
	h.rooms.SelectRoom(room)
	h.click(500, 500)
	if sel, _ := h.rooms.Selected(); sel != nil {
		t.Errorf("selection survived click on empty space")
	}
}

func TestRoomKeys(t *testing.T) {
	h := newHarness()
	room, _ := h.rooms.CreateRoom("a", square(0, 0, 100))
	h.rooms.SelectRoom(room)

	h.key("r")
	if !near(room.Points[0], core.Pt(100, 0)) || room.Area() < 9999.999 {
		t.Errorf("after r: points %v area %g", room.Points, room.Area())
	}

	h.move(50, -3)
	h.key("a")
	if len(room.Points) != 5 {
		t.Fatalf("a did not insert a vertex: %v", room.Points)
	}

	p := room.Points[1]
	h.rooms.SetSelection(room, &p)
	h.key("x")
	if len(room.Points) != 4 {
		t.Errorf("x with vertex selected: %d points", len(room.Points))
	}

	h.key("Escape")
	if sel, _ := h.rooms.Selected(); sel != nil {
		t.Errorf("Escape kept selection")
	}

	h.rooms.SelectRoom(room)
	h.key("x")
	if h.rooms.Len() != 0 {
		t.Errorf("x did not remove the room")
	}
}

func TestDeleteKeyOnlyClearsSelection(t *testing.T) {
	for _, k := range []string{"Delete", "Backspace"} {
		t.Run(k, func(t *testing.T) {
			h := newHarness()
			room, _ := h.rooms.CreateRoom("a", square(0, 0, 100))

			p := room.Points[1]
			h.rooms.SetSelection(room, &p)
			h.key(k)
			if len(room.Points) != 4 {
				t.Errorf("%s removed a vertex: %d points", k, len(room.Points))
			}
			if sel, pt := h.rooms.Selected(); sel != nil || pt != nil {
				t.Errorf("%s kept selection", k)
			}

			h.rooms.SelectRoom(room)
			h.key(k)
			if h.rooms.Len() != 1 {
				t.Errorf("%s destroyed the room: %d rooms left", k, h.rooms.Len())
			}
			if sel, _ := h.rooms.Selected(); sel != nil {
				t.Errorf("%s kept room selection", k)
			}
		})
	}
}

func TestDeleteKeyClearsDrawing(t *testing.T) {
	h := newHarness()
	h.input.SetMode(core.ModeDraw)
	h.click(10, 10)
	h.click(110, 10)
	if len(h.room.Drawing()) != 2 {
		t.Fatalf("drawing = %v", h.room.Drawing())
	}
	h.key("Delete")
	if len(h.room.Drawing()) != 0 {
		t.Errorf("Delete kept drawing points: %v", h.room.Drawing())
	}
}

func TestResizeRoom(t *testing.T) {
	h := newHarness()
	room, _ := h.rooms.CreateRoom("a", square(0, 0, 100))
	h.rooms.SelectRoom(room)

	// Shift-drag from 25 to 50 units away from the center doubles the room
	h.input.HandlePointer(input.PointerEvent{Action: input.PointerDown, ClientX: 75, ClientY: 50, Mod: input.Modifiers{Shift: true}})
	h.move(100, 50)
	h.release(100, 50)
	if a := room.Area(); a < 39999.999 || a > 40000.001 {
		t.Errorf("area = %g, want 40000", a)
	}
}

func TestPinchScalesRoom(t *testing.T) {
	h := newHarness()
	room, _ := h.rooms.CreateRoom("a", square(0, 0, 100))
	h.rooms.SelectRoom(room)
	h.input.HandleTouch(input.TouchEvent{Action: input.TouchStart, Touches: []input.Touch{{ClientX: 25, ClientY: 50}, {ClientX: 75, ClientY: 50}}})
	h.input.HandleTouch(input.TouchEvent{Action: input.TouchMove, Touches: []input.Touch{{ClientX: 0, ClientY: 50}, {ClientX: 100, ClientY: 50}}})
	if a := room.Area(); a < 39999.999 || a > 40000.001 {
		t.Errorf("area = %g, want 40000", a)
	}
}

func TestHoverRoom(t *testing.T) {
	h := newHarness()
	room, _ := h.rooms.CreateRoom("a", square(0, 0, 100))
	h.move(50, 50)
	if hov, pt := h.rooms.Hovered(); hov != room || pt != nil {
		t.Errorf("hover = %v %v", hov, pt)
	}
	h.move(1, 1)
	if _, pt := h.rooms.Hovered(); pt == nil || *pt != core.Pt(0, 0) {
		t.Errorf("vertex hover = %v", pt)
	}
	h.move(300, 300)
	if hov, _ := h.rooms.Hovered(); hov != nil {
		t.Errorf("hover kept outside room")
	}
}

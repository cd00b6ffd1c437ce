package mode

import (
	"math"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/input"
	"github.com/lixenwraith/floorplan/manager"
	"github.com/lixenwraith/floorplan/parameter"
)

// DoorHandler places doors in door mode and edits them in select mode
// A door hit in select mode takes the selection away from rooms
type DoorHandler struct {
	doors *manager.Doors
	rooms *manager.Rooms

	mode   core.Mode
	active *entity.Door // door under drag, rotate or resize

	keys map[string]keyFunc
}

// NewDoorHandler creates a handler bound to doors, placing against rooms
func NewDoorHandler(doors *manager.Doors, rooms *manager.Rooms) *DoorHandler {
	h := &DoorHandler{
		doors: doors,
		rooms: rooms,
		mode:  core.ModeSelect,
	}
	h.keys = map[string]keyFunc{
		"Escape":    h.cancel,
		"Delete":    h.cancel,
		"Backspace": h.cancel,
		"x":         h.deleteSelection,
		"r":         h.rotateSelection,
		" ":         h.toggleSwing,
	}
	return h
}

// SetMode drops the placement preview and any active edit
func (h *DoorHandler) SetMode(m core.Mode) {
	if m == h.mode {
		return
	}
	h.doors.ClearPreview()
	h.active = nil
	h.mode = m
}

// HandleGesture implements input.Handler
func (h *DoorHandler) HandleGesture(g input.Gesture) {
	switch h.mode {
	case core.ModeDoor:
		switch g.Type {
		// Mouse presses arrive as dragStart, touch taps as select
		case input.GestureSelect, input.GestureDragStart:
			h.place(g.Point)
		case input.GestureHover:
			h.previewAt(g.Point)
		}
	case core.ModeSelect:
		h.handleSelect(g)
	}
}

func (h *DoorHandler) handleSelect(g input.Gesture) {
	switch g.Type {
	case input.GestureSelect:
		h.pick(g.Point)
	case input.GestureDragStart, input.GestureRotateStart, input.GestureResizeStart:
		h.active = h.pick(g.Point)
	case input.GestureDrag, input.GestureDragEnd:
		if d := h.editing(); d != nil && g.Delta != (core.Point{}) {
			report("move door", h.doors.MoveDoor(d, g.Delta))
		}
	case input.GestureRotateEnd:
		h.rotateTo(g)
	case input.GestureResizeEnd:
		h.resizeTo(g)
	case input.GestureHover:
		h.doors.SetHover(h.doors.FindDoorAtPoint(g.Point))
	}
	switch g.Type {
	case input.GestureDragEnd, input.GestureRotateEnd, input.GestureResizeEnd:
		h.active = nil
	}
}

// HandleKey implements input.Handler
func (h *DoorHandler) HandleKey(ev input.KeyEvent) {
	if ev.Action != input.KeyDown || !plain(ev.Mod) {
		return
	}
	if fn, ok := h.keys[ev.Key]; ok {
		fn()
	}
}

// === Door mode ===

// wallAnchor snaps p onto the nearest wall of the room containing p
// The angle follows that wall, rounded to the nearest accepted rotation
func (h *DoorHandler) wallAnchor(p core.Point) (*entity.Room, core.Point, float64, bool) {
	room := h.rooms.FindRoomAtPoint(p)
	if room == nil {
		return nil, core.Point{}, 0, false
	}
	ce, ok := room.FindClosestEdge(p)
	if !ok {
		return nil, core.Point{}, 0, false
	}
	angle := core.SnapDegrees(ce.Edge.B.Sub(ce.Edge.A).Angle(), parameter.RotationStep)
	// A door reads the same at 180 degrees; keep wall doors at 0 or 90
	angle = math.Mod(angle, 180)
	return room, ce.Projected, angle, true
}

func (h *DoorHandler) place(p core.Point) {
	room, pos, angle, ok := h.wallAnchor(p)
	if !ok {
		return
	}
	if _, err := h.doors.CreateDoor(room, pos, angle); err != nil {
		report("create door", err)
		return
	}
	h.doors.ClearPreview()
}

func (h *DoorHandler) previewAt(p core.Point) {
	_, pos, angle, ok := h.wallAnchor(p)
	if !ok {
		h.doors.ClearPreview()
		return
	}
	h.doors.SetPreview(h.doors.NewCandidate(pos, angle))
}

// === Select mode ===

func (h *DoorHandler) pick(p core.Point) *entity.Door {
	door := h.doors.FindDoorAtPoint(p)
	h.doors.SelectDoor(door)
	if door != nil {
		h.rooms.ClearSelection()
	}
	return door
}

// editing returns the active door if it is still selected
func (h *DoorHandler) editing() *entity.Door {
	if h.active == nil || h.doors.Selected() != h.active {
		h.active = nil
		return nil
	}
	return h.active
}

// rotateTo turns the door by the sweep of the pointer around its anchor, snapped to 90 degrees
func (h *DoorHandler) rotateTo(g input.Gesture) {
	d := h.editing()
	if d == nil || g.Start == d.Position || g.Point == d.Position {
		return
	}
	sweep := core.ShortestDelta(g.Start.Sub(d.Position).Angle(), g.Point.Sub(d.Position).Angle())
	target := core.SnapDegrees(d.Angle()+sweep, parameter.RotationStep)
	if target == d.Angle() {
		return
	}
	report("rotate door", h.doors.RotateDoor(d, target))
}

// resizeTo grows the door by the pointer travel in its local frame, mirrored about the anchor
func (h *DoorHandler) resizeTo(g input.Gesture) {
	d := h.editing()
	if d == nil || g.Total == (core.Point{}) {
		return
	}
	start := d.ToLocal(g.Start)
	travel := d.ToLocal(g.Point).Sub(start)
	w := d.Width + 2*travel.X*sign(start.X)
	hgt := d.Height + 2*travel.Y*sign(start.Y)
	report("resize door", h.doors.ResizeDoor(d, w, hgt))
}

func (h *DoorHandler) rotateSelection() {
	if h.mode != core.ModeSelect {
		return
	}
	if d := h.doors.Selected(); d != nil {
		report("rotate door", h.doors.RotateDoor(d, d.Angle()+parameter.KeyRotateDegrees))
	}
}

func (h *DoorHandler) toggleSwing() {
	if h.mode != core.ModeSelect {
		return
	}
	if d := h.doors.Selected(); d != nil {
		report("toggle swing", h.doors.ToggleSwing(d))
	}
}

func (h *DoorHandler) deleteSelection() {
	if h.mode != core.ModeSelect {
		return
	}
	if d := h.doors.Selected(); d != nil {
		report("delete door", h.doors.DeleteDoor(d))
	}
}

func (h *DoorHandler) cancel() {
	h.active = nil
	h.doors.ClearSelection()
	h.doors.ClearPreview()
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

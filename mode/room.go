package mode

import (
	"fmt"
	"log"

	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/input"
	"github.com/lixenwraith/floorplan/manager"
	"github.com/lixenwraith/floorplan/parameter"
)

// RoomHandler draws rooms in draw mode and edits them in select mode
type RoomHandler struct {
	rooms     *manager.Rooms
	threshold float64
	snap      bool

	mode    core.Mode
	drawing []core.Point
	pointer core.Point // last known pointer position

	// Active edit, nil when idle
	active      *entity.Room
	vertexStart *core.Point // vertex position when a vertex drag began
	pivot       core.Point

	keys map[string]keyFunc
}

// NewRoomHandler creates a handler bound to rooms
func NewRoomHandler(rooms *manager.Rooms, cfg *config.Config) *RoomHandler {
	h := &RoomHandler{
		rooms:     rooms,
		threshold: cfg.Input.PointHitThreshold,
		snap:      cfg.Grid.Snap,
		mode:      core.ModeSelect,
	}
	h.keys = map[string]keyFunc{
		"Escape":    h.cancel,
		"Delete":    h.cancel,
		"Backspace": h.cancel,
		"x":         h.deleteSelection,
		"r":         h.rotateSelection,
		"a":         h.insertVertex,
	}
	return h
}

// SetMode drops in-progress drawing and previews when the mode changes
func (h *RoomHandler) SetMode(m core.Mode) {
	if m == h.mode {
		return
	}
	h.resetDrawing()
	h.active = nil
	h.vertexStart = nil
	h.mode = m
}

// Drawing returns the points placed so far in draw mode
func (h *RoomHandler) Drawing() []core.Point {
	return core.ClonePoints(h.drawing)
}

// HandleGesture implements input.Handler
func (h *RoomHandler) HandleGesture(g input.Gesture) {
	switch h.mode {
	case core.ModeDraw:
		switch g.Type {
		case input.GestureSelect:
			h.addDrawPoint(g.Point)
		case input.GestureHover:
			h.pointer = g.Point
			h.updatePreview(g.Point)
		}
	case core.ModeSelect:
		h.handleSelect(g)
	}
}

func (h *RoomHandler) handleSelect(g input.Gesture) {
	switch g.Type {
	case input.GestureSelect:
		h.pick(g.Point)
	case input.GestureDragStart, input.GestureRotateStart, input.GestureResizeStart:
		h.pick(g.Point)
		h.beginEdit()
	case input.GestureDrag, input.GestureDragEnd:
		h.drag(g)
	case input.GestureRotate, input.GestureRotateEnd:
		h.rotate(g)
	case input.GestureResize, input.GestureResizeEnd:
		h.resize(g)
	case input.GesturePinch:
		h.pinch(g)
	case input.GestureHover:
		h.pointer = g.Point
		h.hover(g.Point)
	}
	switch g.Type {
	case input.GestureDragEnd, input.GestureRotateEnd, input.GestureResizeEnd:
		h.active = nil
		h.vertexStart = nil
	}
}

// HandleKey implements input.Handler
func (h *RoomHandler) HandleKey(ev input.KeyEvent) {
	if ev.Action != input.KeyDown || !plain(ev.Mod) {
		return
	}
	if fn, ok := h.keys[ev.Key]; ok {
		fn()
	}
}

// === Select mode ===

// pick selects a vertex if one is in reach, else the room under p, else nothing
func (h *RoomHandler) pick(p core.Point) {
	h.pointer = p
	if room, pt, ok := h.rooms.FindPointAtPosition(p, h.threshold); ok {
		h.rooms.SetSelection(room, &pt)
		return
	}
	if room := h.rooms.FindRoomAtPoint(p); room != nil {
		h.rooms.SelectRoom(room)
		return
	}
	h.rooms.ClearSelection()
}

func (h *RoomHandler) beginEdit() {
	room, pt := h.rooms.Selected()
	h.active = room
	h.vertexStart = pt
	if room != nil {
		h.pivot = room.Center()
	}
}

// editing returns the room under edit if it is still selected
// Another handler may have taken the selection since the gesture began
func (h *RoomHandler) editing() *entity.Room {
	if h.active == nil {
		return nil
	}
	if room, _ := h.rooms.Selected(); room != h.active {
		h.active = nil
		return nil
	}
	return h.active
}

func (h *RoomHandler) drag(g input.Gesture) {
	room := h.editing()
	if room == nil {
		return
	}
	if h.vertexStart != nil {
		_, cur := h.rooms.Selected()
		if cur == nil {
			return
		}
		target := h.vertexStart.Add(g.Total)
		if target == *cur {
			return
		}
		report("move point", h.rooms.MovePoint(room, *cur, target))
		return
	}
	if g.Delta == (core.Point{}) {
		return
	}
	report("move room", h.rooms.MoveRoom(room, g.Delta))
}

func (h *RoomHandler) rotate(g input.Gesture) {
	room := h.editing()
	if room == nil || g.Delta == (core.Point{}) {
		return
	}
	prev := g.Point.Sub(g.Delta)
	if prev == h.pivot || g.Point == h.pivot {
		return
	}
	deg := core.ShortestDelta(prev.Sub(h.pivot).Angle(), g.Point.Sub(h.pivot).Angle())
	if deg == 0 {
		return
	}
	report("rotate room", h.rooms.RotateRoom(room, deg))
}

func (h *RoomHandler) resize(g input.Gesture) {
	room := h.editing()
	if room == nil || g.Delta == (core.Point{}) {
		return
	}
	before := g.Point.Sub(g.Delta).Distance(h.pivot)
	after := g.Point.Distance(h.pivot)
	if before == 0 || after == 0 {
		return
	}
	report("scale room", h.rooms.ScaleRoom(room, after/before))
}

func (h *RoomHandler) pinch(g input.Gesture) {
	room, _ := h.rooms.Selected()
	if room == nil {
		return
	}
	if g.ScaleDelta > 0 && g.ScaleDelta != 1 {
		report("scale room", h.rooms.ScaleRoom(room, g.ScaleDelta))
	}
	if g.RotationDelta != 0 {
		report("rotate room", h.rooms.RotateRoom(room, g.RotationDelta))
	}
}

func (h *RoomHandler) hover(p core.Point) {
	if room, pt, ok := h.rooms.FindPointAtPosition(p, h.threshold); ok {
		h.rooms.SetHover(room, &pt)
		return
	}
	h.rooms.SetHover(h.rooms.FindRoomAtPoint(p), nil)
}

func (h *RoomHandler) rotateSelection() {
	if h.mode != core.ModeSelect {
		return
	}
	if room, _ := h.rooms.Selected(); room != nil {
		report("rotate room", h.rooms.RotateRoom(room, parameter.KeyRotateDegrees))
	}
}

// deleteSelection removes the selected vertex, or the whole room when no vertex is selected
func (h *RoomHandler) deleteSelection() {
	switch h.mode {
	case core.ModeDraw:
		h.resetDrawing()
	case core.ModeSelect:
		room, pt := h.rooms.Selected()
		if room == nil {
			return
		}
		if pt != nil {
			report("remove point", h.rooms.RemovePoint(room, *pt))
			return
		}
		report("delete room", h.rooms.DeleteRoom(room))
	}
}

// insertVertex splits the wall of the selected room nearest the pointer at its midpoint
func (h *RoomHandler) insertVertex() {
	if h.mode != core.ModeSelect {
		return
	}
	room, _ := h.rooms.Selected()
	if room == nil {
		return
	}
	ce, ok := room.FindClosestEdge(h.pointer)
	if !ok {
		return
	}
	report("add point", h.rooms.AddPoint(room, ce.Edge.Index, ce.Edge.A.Midpoint(ce.Edge.B)))
}

func (h *RoomHandler) cancel() {
	h.resetDrawing()
	h.active = nil
	h.vertexStart = nil
	h.rooms.ClearSelection()
}

// === Draw mode ===

func (h *RoomHandler) addDrawPoint(p core.Point) {
	if h.snap {
		p = h.rooms.SnapToGrid(p)
	}
	h.drawing = append(h.drawing, p)
	if len(h.drawing) < parameter.DrawRoomPoints {
		h.updatePreview(p)
		return
	}

	points := h.drawing
	h.resetDrawing()
	name := fmt.Sprintf("Room %d", h.rooms.Len()+1)
	room, err := h.rooms.CreateRoom(name, points)
	if err != nil {
		report("create room", err)
		return
	}
	log.Printf("[MODE] drew %s", room.Name)
}

// updatePreview completes the drawn points into a rectangle through the pointer
func (h *RoomHandler) updatePreview(pointer core.Point) {
	if h.snap {
		pointer = h.rooms.SnapToGrid(pointer)
	}
	d := h.drawing
	switch len(d) {
	case 0:
		return
	case 1:
		h.rooms.SetPreview([]core.Point{d[0], pointer})
	case 2:
		h.rooms.SetPreview([]core.Point{d[0], d[1], pointer, d[0].Add(pointer.Sub(d[1]))})
	default:
		h.rooms.SetPreview([]core.Point{d[0], d[1], d[2], d[0].Add(d[2].Sub(d[1]))})
	}
}

func (h *RoomHandler) resetDrawing() {
	h.drawing = nil
	h.rooms.ClearPreview()
}

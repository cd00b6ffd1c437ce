package manager

import (
	"fmt"
	"log"
	"math"
	"slices"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/validation"
)

// Rooms is the authoritative room collection
// Single owner: only its methods mutate the map, no locking
type Rooms struct {
	validator *validation.Validator
	bus       *event.Bus
	gridSize  float64

	rooms map[string]*entity.Room
	order []string // insertion order

	selected      *entity.Room
	selectedPoint *core.Point
	hovered       *entity.Room
	hoveredPoint  *core.Point
	preview       []core.Point
}

// NewRooms creates an empty collection
func NewRooms(validator *validation.Validator, bus *event.Bus, gridSize float64) *Rooms {
	return &Rooms{
		validator: validator,
		bus:       bus,
		gridSize:  gridSize,
		rooms:     make(map[string]*entity.Room),
	}
}

// === Collection ===

// CreateRoom validates points as a new room and inserts it
// Returns nil and a *RejectedError if validation fails
func (m *Rooms) CreateRoom(name string, points []core.Point) (*entity.Room, error) {
	room := entity.NewRoom(name, points)
	if res := m.validator.ValidateRoom(room); !res.IsValid {
		log.Printf("[ROOMS] create rejected: %s", res)
		return nil, rejected("create room", res)
	}
	m.insert(room)
	return room, nil
}

// AddRoom inserts an existing room keeping its id
// Only the shape is checked: a room restored from a saved plan may be under the minimum area
func (m *Rooms) AddRoom(room *entity.Room) error {
	if _, exists := m.rooms[room.ID]; exists {
		return fmt.Errorf("room %s: %w", room.ID, ErrDuplicateID)
	}
	if res := m.validator.ValidateRoomShape(room); !res.IsValid {
		return rejected("add room", res)
	}
	m.insert(room)
	return nil
}

func (m *Rooms) insert(room *entity.Room) {
	m.rooms[room.ID] = room
	m.order = append(m.order, room.ID)
	log.Printf("[ROOMS] added %s (%d points, area %.1f)", room.ID, len(room.Points), room.Area())
	m.bus.Emit(event.EventRoomAdded, event.RoomPayload{Room: room})
}

// Room returns the room with id
func (m *Rooms) Room(id string) (*entity.Room, bool) {
	r, ok := m.rooms[id]
	return r, ok
}

// Rooms returns all rooms in insertion order
func (m *Rooms) Rooms() []*entity.Room {
	out := make([]*entity.Room, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.rooms[id])
	}
	return out
}

// Len returns the number of rooms
func (m *Rooms) Len() int {
	return len(m.rooms)
}

// lookup resolves the stored instance for room
func (m *Rooms) lookup(room *entity.Room) (*entity.Room, error) {
	if room == nil {
		return nil, fmt.Errorf("nil room: %w", ErrRoomNotFound)
	}
	stored, ok := m.rooms[room.ID]
	if !ok {
		return nil, fmt.Errorf("room %s: %w", room.ID, ErrRoomNotFound)
	}
	return stored, nil
}

// UpdateRoom replaces the stored room having the same id with room
func (m *Rooms) UpdateRoom(room *entity.Room) error {
	old, err := m.lookup(room)
	if err != nil {
		return err
	}
	if res := m.validator.ValidateRoom(room); !res.IsValid {
		return rejected("update room", res)
	}
	m.rooms[room.ID] = room
	if m.selected == old {
		m.selected = room
	}
	if m.hovered == old {
		m.hovered = room
	}
	m.dropStalePoints(room)
	m.bus.Emit(event.EventRoomUpdated, event.RoomPayload{Room: room})
	return nil
}

// === Validation-gated transforms ===

// commit validates candidate points on a temporary room and applies them if valid
// mapRef re-targets vertex selection/hover that sit on this room
func (m *Rooms) commit(op string, room *entity.Room, candidate []core.Point, mapRef func(core.Point) core.Point) error {
	stored, err := m.lookup(room)
	if err != nil {
		return err
	}
	temp := &entity.Room{ID: stored.ID, Name: stored.Name, Points: candidate}
	if res := m.validator.ValidateRoom(temp); !res.IsValid {
		log.Printf("[ROOMS] %s rejected for %s: %s", op, stored.ID, res)
		return rejected(op, res)
	}
	stored.SetPoints(candidate)
	m.remapPoints(stored, mapRef)
	m.bus.Emit(event.EventRoomUpdated, event.RoomPayload{Room: stored})
	return nil
}

// MoveRoom translates every vertex by delta
func (m *Rooms) MoveRoom(room *entity.Room, delta core.Point) error {
	stored, err := m.lookup(room)
	if err != nil {
		return err
	}
	shift := func(p core.Point) core.Point { return p.Add(delta) }
	return m.commit("move room", stored, mapPoints(stored.Points, shift), shift)
}

// RotateRoom rotates every vertex about the room's mean center by degrees
func (m *Rooms) RotateRoom(room *entity.Room, degrees float64) error {
	stored, err := m.lookup(room)
	if err != nil {
		return err
	}
	center := stored.Center()
	rot := func(p core.Point) core.Point { return p.RotateAround(center, degrees) }
	return m.commit("rotate room", stored, mapPoints(stored.Points, rot), rot)
}

// ScaleRoom scales every vertex about the room's mean center by factor
func (m *Rooms) ScaleRoom(room *entity.Room, factor float64) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("scale factor %g: %w", factor, ErrInvalidArgument)
	}
	stored, err := m.lookup(room)
	if err != nil {
		return err
	}
	center := stored.Center()
	sc := func(p core.Point) core.Point { return p.ScaleAround(center, factor) }
	return m.commit("scale room", stored, mapPoints(stored.Points, sc), sc)
}

// MovePoint moves one vertex, validated with the point-move rule only
func (m *Rooms) MovePoint(room *entity.Room, oldPoint, newPoint core.Point) error {
	stored, err := m.lookup(room)
	if err != nil {
		return err
	}
	if res := m.validator.ValidatePointMove(stored, oldPoint, newPoint); !res.IsValid {
		log.Printf("[ROOMS] move point rejected for %s: %s", stored.ID, res)
		return rejected("move point", res)
	}
	stored.ReplacePoint(oldPoint, newPoint)
	m.remapPoints(stored, func(p core.Point) core.Point {
		if p == oldPoint {
			return newPoint
		}
		return p
	})
	m.bus.Emit(event.EventRoomUpdated, event.RoomPayload{Room: stored})
	return nil
}

// AddPoint inserts p after the vertex at index
func (m *Rooms) AddPoint(room *entity.Room, index int, p core.Point) error {
	stored, err := m.lookup(room)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(stored.Points) {
		return fmt.Errorf("vertex index %d out of range [0,%d): %w", index, len(stored.Points), ErrInvalidArgument)
	}
	candidate := slices.Insert(core.ClonePoints(stored.Points), index+1, p)
	return m.commit("add point", stored, candidate, nil)
}

// RemovePoint deletes the vertex exactly equal to p
func (m *Rooms) RemovePoint(room *entity.Room, p core.Point) error {
	stored, err := m.lookup(room)
	if err != nil {
		return err
	}
	idx := stored.IndexOf(p)
	if idx < 0 {
		// Identity move reports POINT_NOT_FOUND through the validator
		return rejected("remove point", m.validator.ValidatePointMove(stored, p, p))
	}
	candidate := slices.Delete(core.ClonePoints(stored.Points), idx, idx+1)
	return m.commit("remove point", stored, candidate, nil)
}

// DeleteRoom removes room, clearing selection and hover that referenced it
func (m *Rooms) DeleteRoom(room *entity.Room) error {
	stored, err := m.lookup(room)
	if err != nil {
		return err
	}
	delete(m.rooms, stored.ID)
	m.order = slices.DeleteFunc(m.order, func(id string) bool { return id == stored.ID })
	if m.selected == stored {
		m.SetSelection(nil, nil)
	}
	if m.hovered == stored {
		m.SetHover(nil, nil)
	}
	log.Printf("[ROOMS] removed %s", stored.ID)
	m.bus.Emit(event.EventRoomRemoved, event.RoomPayload{Room: stored})
	return nil
}

// Clear deletes every room
func (m *Rooms) Clear() {
	for _, r := range m.Rooms() {
		_ = m.DeleteRoom(r)
	}
}

// === Selection & hover ===

// SetSelection selects room and optionally one of its vertices
// Setting the current value again is a no-op without an event
func (m *Rooms) SetSelection(room *entity.Room, point *core.Point) {
	if m.selected == room && samePoint(m.selectedPoint, point) {
		return
	}
	m.selected = room
	m.selectedPoint = copyPoint(point)
	m.bus.Emit(event.EventRoomSelectionChanged, event.RoomFocusPayload{Room: room, Point: copyPoint(point)})
}

// SelectRoom selects room without a vertex
func (m *Rooms) SelectRoom(room *entity.Room) {
	m.SetSelection(room, nil)
}

// ClearSelection deselects any room and vertex
func (m *Rooms) ClearSelection() {
	m.SetSelection(nil, nil)
}

// Selected returns the selected room and vertex
func (m *Rooms) Selected() (*entity.Room, *core.Point) {
	return m.selected, copyPoint(m.selectedPoint)
}

// SetHover marks room and optionally a vertex as hovered, set-if-changed
func (m *Rooms) SetHover(room *entity.Room, point *core.Point) {
	if m.hovered == room && samePoint(m.hoveredPoint, point) {
		return
	}
	m.hovered = room
	m.hoveredPoint = copyPoint(point)
	m.bus.Emit(event.EventRoomHoverChanged, event.RoomFocusPayload{Room: room, Point: copyPoint(point)})
}

// Hovered returns the hovered room and vertex
func (m *Rooms) Hovered() (*entity.Room, *core.Point) {
	return m.hovered, copyPoint(m.hoveredPoint)
}

// remapPoints re-targets vertex refs on room after a committed transform
func (m *Rooms) remapPoints(room *entity.Room, fn func(core.Point) core.Point) {
	if fn != nil {
		if m.selected == room && m.selectedPoint != nil {
			p := fn(*m.selectedPoint)
			m.SetSelection(room, &p)
		}
		if m.hovered == room && m.hoveredPoint != nil {
			p := fn(*m.hoveredPoint)
			m.SetHover(room, &p)
		}
	}
	m.dropStalePoints(room)
}

// dropStalePoints clears vertex refs that no longer match a vertex of room
func (m *Rooms) dropStalePoints(room *entity.Room) {
	if m.selected == room && m.selectedPoint != nil && room.IndexOf(*m.selectedPoint) < 0 {
		m.SetSelection(room, nil)
	}
	if m.hovered == room && m.hoveredPoint != nil && room.IndexOf(*m.hoveredPoint) < 0 {
		m.SetHover(room, nil)
	}
}

// === Preview ===

// SetPreview broadcasts transient outline points
func (m *Rooms) SetPreview(points []core.Point) {
	m.preview = core.ClonePoints(points)
	m.bus.Emit(event.EventRoomPreviewChanged, event.PreviewPayload{Points: core.ClonePoints(points)})
}

// ClearPreview retracts the outline; no-op when none is shown
func (m *Rooms) ClearPreview() {
	if m.preview == nil {
		return
	}
	m.preview = nil
	m.bus.Emit(event.EventRoomPreviewCleared, nil)
}

// Preview returns the current outline points, nil when none
func (m *Rooms) Preview() []core.Point {
	return core.ClonePoints(m.preview)
}

// === Queries ===

// FindRoomAtPoint returns the most recently added room containing p
func (m *Rooms) FindRoomAtPoint(p core.Point) *entity.Room {
	for i := len(m.order) - 1; i >= 0; i-- {
		if r := m.rooms[m.order[i]]; r.ContainsPoint(p) {
			return r
		}
	}
	return nil
}

// FindPointAtPosition returns the vertex nearest to p within threshold across all rooms
func (m *Rooms) FindPointAtPosition(p core.Point, threshold float64) (*entity.Room, core.Point, bool) {
	var (
		bestRoom  *entity.Room
		bestPoint core.Point
		bestDist  = math.Inf(1)
	)
	for _, r := range m.Rooms() {
		q, ok := r.FindClosestPoint(p, threshold)
		if !ok {
			continue
		}
		if d := q.Distance(p); d < bestDist {
			bestRoom, bestPoint, bestDist = r, q, d
		}
	}
	return bestRoom, bestPoint, bestRoom != nil
}

// FindRoomPointAtPoint returns the vertex of room nearest to p within threshold
func (m *Rooms) FindRoomPointAtPoint(room *entity.Room, p core.Point, threshold float64) (core.Point, bool) {
	stored, err := m.lookup(room)
	if err != nil {
		return core.Point{}, false
	}
	return stored.FindClosestPoint(p, threshold)
}

// SnapToGrid rounds p to the nearest grid intersection
func (m *Rooms) SnapToGrid(p core.Point) core.Point {
	if m.gridSize <= 0 {
		return p
	}
	return core.Point{
		X: math.Round(p.X/m.gridSize) * m.gridSize,
		Y: math.Round(p.Y/m.gridSize) * m.gridSize,
	}
}

// GridSize returns the snapping step
func (m *Rooms) GridSize() float64 {
	return m.gridSize
}

func mapPoints(pts []core.Point, fn func(core.Point) core.Point) []core.Point {
	out := make([]core.Point, len(pts))
	for i, p := range pts {
		out[i] = fn(p)
	}
	return out
}

func samePoint(a, b *core.Point) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func copyPoint(p *core.Point) *core.Point {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

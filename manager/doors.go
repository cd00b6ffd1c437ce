package manager

import (
	"fmt"
	"log"
	"slices"

	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/validation"
)

// Doors is the authoritative door collection
// Wall placement is checked on create and UpdateDoor only; MoveDoor applies raw deltas
type Doors struct {
	validator *validation.Validator
	bus       *event.Bus
	defaults  config.Door

	doors map[string]*entity.Door
	order []string

	selected *entity.Door
	hovered  *entity.Door
	preview  *entity.Door
}

// NewDoors creates an empty collection using defaults for new doors
func NewDoors(validator *validation.Validator, bus *event.Bus, defaults config.Door) *Doors {
	return &Doors{
		validator: validator,
		bus:       bus,
		defaults:  defaults,
		doors:     make(map[string]*entity.Door),
	}
}

// === Collection ===

// NewCandidate builds an unsaved door with the default size and swing
func (m *Doors) NewCandidate(position core.Point, angle float64) *entity.Door {
	return entity.NewDoor(position, angle, m.defaults.Width, m.defaults.Height, m.defaults.SwingAngle, entity.SwingLeft)
}

// CreateDoor validates a default-sized door at position against room's walls and inserts it
// Returns nil and a *RejectedError if the door is off-wall, mis-rotated or mis-sized
func (m *Doors) CreateDoor(room *entity.Room, position core.Point, angle float64) (*entity.Door, error) {
	if room == nil {
		return nil, fmt.Errorf("create door: nil room: %w", ErrRoomNotFound)
	}
	door := m.NewCandidate(position, angle)
	if res := m.validator.ValidateDoor(door, room); !res.IsValid {
		log.Printf("[DOORS] create rejected: %s", res)
		return nil, rejected("create door", res)
	}
	m.insert(door)
	return door, nil
}

// AddDoor inserts an existing door keeping its id
// Rotation and size are checked; the wall is not, matching what MoveDoor can leave behind
func (m *Doors) AddDoor(door *entity.Door) error {
	if _, exists := m.doors[door.ID]; exists {
		return fmt.Errorf("door %s: %w", door.ID, ErrDuplicateID)
	}
	if res := m.validator.ValidateDoorShape(door); !res.IsValid {
		return rejected("add door", res)
	}
	m.insert(door)
	return nil
}

func (m *Doors) insert(door *entity.Door) {
	m.doors[door.ID] = door
	m.order = append(m.order, door.ID)
	log.Printf("[DOORS] added %s at (%.1f, %.1f) angle %.0f", door.ID, door.Position.X, door.Position.Y, door.Angle())
	m.bus.Emit(event.EventDoorAdded, event.DoorPayload{Door: door})
}

// Door returns the door with id
func (m *Doors) Door(id string) (*entity.Door, bool) {
	d, ok := m.doors[id]
	return d, ok
}

// Doors returns all doors in insertion order
func (m *Doors) Doors() []*entity.Door {
	out := make([]*entity.Door, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.doors[id])
	}
	return out
}

// Len returns the number of doors
func (m *Doors) Len() int {
	return len(m.doors)
}

func (m *Doors) lookup(door *entity.Door) (*entity.Door, error) {
	if door == nil {
		return nil, fmt.Errorf("nil door: %w", ErrDoorNotFound)
	}
	stored, ok := m.doors[door.ID]
	if !ok {
		return nil, fmt.Errorf("door %s: %w", door.ID, ErrDoorNotFound)
	}
	return stored, nil
}

// UpdateDoor replaces the stored door having the same id after re-validating against room
func (m *Doors) UpdateDoor(door *entity.Door, room *entity.Room) error {
	old, err := m.lookup(door)
	if err != nil {
		return err
	}
	if room == nil {
		return fmt.Errorf("update door %s: nil room: %w", door.ID, ErrRoomNotFound)
	}
	if res := m.validator.ValidateDoor(door, room); !res.IsValid {
		return rejected("update door", res)
	}
	m.doors[door.ID] = door
	if m.selected == old {
		m.selected = door
	}
	if m.hovered == old {
		m.hovered = door
	}
	m.bus.Emit(event.EventDoorUpdated, event.DoorPayload{Door: door})
	return nil
}

// === Mutations ===

// MoveDoor translates the door by delta without wall re-validation
func (m *Doors) MoveDoor(door *entity.Door, delta core.Point) error {
	stored, err := m.lookup(door)
	if err != nil {
		return err
	}
	stored.Position = stored.Position.Add(delta)
	m.bus.Emit(event.EventDoorUpdated, event.DoorPayload{Door: stored})
	return nil
}

// RotateDoor sets the door angle to angle if it is a 90-degree increment
func (m *Doors) RotateDoor(door *entity.Door, angle float64) error {
	stored, err := m.lookup(door)
	if err != nil {
		return err
	}
	temp := stored.Clone()
	temp.SetAngle(angle)
	if res := m.validator.ValidateDoorRotation(temp, angle); !res.IsValid {
		log.Printf("[DOORS] rotate rejected for %s: %s", stored.ID, res)
		return rejected("rotate door", res)
	}
	// Snap away the tolerated epsilon so stored angles stay exact
	stored.SetAngle(core.SnapDegrees(angle, 90))
	m.bus.Emit(event.EventDoorUpdated, event.DoorPayload{Door: stored})
	return nil
}

// ResizeDoor sets width and height if both lie within bounds
func (m *Doors) ResizeDoor(door *entity.Door, width, height float64) error {
	stored, err := m.lookup(door)
	if err != nil {
		return err
	}
	temp := stored.Clone()
	temp.Width, temp.Height = width, height
	if res := m.validator.ValidateDoorSize(temp, width, height); !res.IsValid {
		log.Printf("[DOORS] resize rejected for %s: %s", stored.ID, res)
		return rejected("resize door", res)
	}
	stored.Width, stored.Height = temp.Width, temp.Height
	m.bus.Emit(event.EventDoorUpdated, event.DoorPayload{Door: stored})
	return nil
}

// ToggleSwing flips the swing direction
func (m *Doors) ToggleSwing(door *entity.Door) error {
	stored, err := m.lookup(door)
	if err != nil {
		return err
	}
	stored.SwingDirection = stored.SwingDirection.Toggle()
	m.bus.Emit(event.EventDoorUpdated, event.DoorPayload{Door: stored})
	return nil
}

// DeleteDoor removes door, clearing selection and hover that referenced it
func (m *Doors) DeleteDoor(door *entity.Door) error {
	stored, err := m.lookup(door)
	if err != nil {
		return err
	}
	delete(m.doors, stored.ID)
	m.order = slices.DeleteFunc(m.order, func(id string) bool { return id == stored.ID })
	if m.selected == stored {
		m.SelectDoor(nil)
	}
	if m.hovered == stored {
		m.SetHover(nil)
	}
	log.Printf("[DOORS] removed %s", stored.ID)
	m.bus.Emit(event.EventDoorRemoved, event.DoorPayload{Door: stored})
	return nil
}

// Clear deletes every door
func (m *Doors) Clear() {
	for _, d := range m.Doors() {
		_ = m.DeleteDoor(d)
	}
}

// === Selection & hover ===

// SelectDoor selects door; nil clears. Re-selecting the current door is a no-op
func (m *Doors) SelectDoor(door *entity.Door) {
	if m.selected == door {
		return
	}
	m.selected = door
	m.bus.Emit(event.EventDoorSelectionChanged, event.DoorFocusPayload{Door: door})
}

// ClearSelection deselects any door
func (m *Doors) ClearSelection() {
	m.SelectDoor(nil)
}

// Selected returns the selected door
func (m *Doors) Selected() *entity.Door {
	return m.selected
}

// SetHover marks door as hovered, set-if-changed
func (m *Doors) SetHover(door *entity.Door) {
	if m.hovered == door {
		return
	}
	m.hovered = door
	m.bus.Emit(event.EventDoorHoverChanged, event.DoorFocusPayload{Door: door})
}

// Hovered returns the hovered door
func (m *Doors) Hovered() *entity.Door {
	return m.hovered
}

// === Preview ===

// SetPreview broadcasts a candidate door that is not part of the collection
func (m *Doors) SetPreview(door *entity.Door) {
	m.preview = door
	m.bus.Emit(event.EventDoorPreviewChanged, event.DoorPreviewPayload{Door: door})
}

// ClearPreview retracts the candidate; no-op when none is shown
func (m *Doors) ClearPreview() {
	if m.preview == nil {
		return
	}
	m.preview = nil
	m.bus.Emit(event.EventDoorPreviewCleared, nil)
}

// Preview returns the candidate door, nil when none
func (m *Doors) Preview() *entity.Door {
	return m.preview
}

// === Queries ===

// FindDoorAtPoint returns the most recently added door whose rectangle contains p
func (m *Doors) FindDoorAtPoint(p core.Point) *entity.Door {
	for i := len(m.order) - 1; i >= 0; i-- {
		if d := m.doors[m.order[i]]; d.ContainsPoint(p) {
			return d
		}
	}
	return nil
}

// Defaults returns the size and swing used for new doors
func (m *Doors) Defaults() config.Door {
	return m.defaults
}

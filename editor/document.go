package editor

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/manager"
	"github.com/lixenwraith/floorplan/validation"
)

// Document is the JSON shape of a whole plan
type Document struct {
	Rooms []entity.RoomRecord `json:"rooms"`
	Doors []entity.DoorRecord `json:"doors"`
}

// Export snapshots every room and door in insertion order
func (e *Editor) Export() Document {
	doc := Document{
		Rooms: make([]entity.RoomRecord, 0, e.Rooms.Len()),
		Doors: make([]entity.DoorRecord, 0, e.Doors.Len()),
	}
	for _, r := range e.Rooms.Rooms() {
		doc.Rooms = append(doc.Rooms, r.Record())
	}
	for _, d := range e.Doors.Doors() {
		doc.Doors = append(doc.Doors, d.Record())
	}
	return doc
}

// Import replaces the plan with doc
// Every room and door is checked before anything is replaced; on error the plan is unchanged
// The checks are the ones every stored entity satisfies, so anything Export wrote reads back:
// rooms need 3 vertices and non-intersecting walls, doors a valid rotation and size.
// Area and door-on-wall are creation rules that later edits may leave behind
func (e *Editor) Import(doc Document) error {
	// Silent validator: the real insert below reports through the bus
	check := validation.NewValidator(e.Config.Validation, nil)

	seen := make(map[string]bool)
	rooms := make([]*entity.Room, 0, len(doc.Rooms))
	for _, rec := range doc.Rooms {
		if rec.ID == "" || seen[rec.ID] {
			return fmt.Errorf("import room %q: %w", rec.ID, manager.ErrDuplicateID)
		}
		seen[rec.ID] = true
		r := entity.RoomFromRecord(rec)
		if res := check.ValidateRoomShape(r); !res.IsValid {
			return &manager.RejectedError{Op: "import room " + rec.ID, Result: res}
		}
		rooms = append(rooms, r)
	}

	doors := make([]*entity.Door, 0, len(doc.Doors))
	for _, rec := range doc.Doors {
		if rec.ID == "" || seen[rec.ID] {
			return fmt.Errorf("import door %q: %w", rec.ID, manager.ErrDuplicateID)
		}
		seen[rec.ID] = true
		d, err := entity.DoorFromRecord(rec)
		if err != nil {
			return fmt.Errorf("import: %w: %w", manager.ErrInvalidArgument, err)
		}
		if res := check.ValidateDoorShape(d); !res.IsValid {
			return &manager.RejectedError{Op: "import door " + rec.ID, Result: res}
		}
		doors = append(doors, d)
	}

	e.Clear()
	for _, r := range rooms {
		if err := e.Rooms.AddRoom(r); err != nil {
			return err
		}
	}
	for _, d := range doors {
		if err := e.Doors.AddDoor(d); err != nil {
			return err
		}
	}
	log.Printf("[EDITOR] imported %d rooms, %d doors", len(rooms), len(doors))
	return nil
}

// HostRoom returns the stored room whose wall is nearest to the door anchor
func (e *Editor) HostRoom(d *entity.Door) *entity.Room {
	return nearestRoom(e.Rooms.Rooms(), d)
}

func nearestRoom(rooms []*entity.Room, d *entity.Door) *entity.Room {
	var (
		best     *entity.Room
		bestDist = math.Inf(1)
	)
	for _, r := range rooms {
		ce, ok := r.FindClosestEdge(d.Position)
		if ok && ce.Distance < bestDist {
			best, bestDist = r, ce.Distance
		}
	}
	return best
}

// WriteJSON encodes the plan to w
func (e *Editor) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e.Export())
}

// ReadJSON decodes a plan from r and imports it
func (e *Editor) ReadJSON(r io.Reader) error {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("decode plan: %w", err)
	}
	return e.Import(doc)
}

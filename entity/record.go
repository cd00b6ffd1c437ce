package entity

import (
	"encoding/json"
	"fmt"

	"github.com/lixenwraith/floorplan/core"
)

// RoomRecord is the persisted shape of a Room
type RoomRecord struct {
	ID     string       `json:"id"`
	Name   string       `json:"name,omitempty"`
	Points []core.Point `json:"points"`
}

// DoorRecord is the persisted shape of a Door
type DoorRecord struct {
	ID             string     `json:"id"`
	Position       core.Point `json:"position"`
	Angle          float64    `json:"angle"`
	Width          float64    `json:"width"`
	Height         float64    `json:"height"`
	SwingAngle     float64    `json:"swingAngle"`
	SwingDirection string     `json:"swingDirection"`
}

// Record returns the persisted shape of r
func (r *Room) Record() RoomRecord {
	pts := core.ClonePoints(r.Points)
	if pts == nil {
		pts = []core.Point{}
	}
	return RoomRecord{ID: r.ID, Name: r.Name, Points: pts}
}

// RoomFromRecord rebuilds a room keeping the recorded id
func RoomFromRecord(rec RoomRecord) *Room {
	return &Room{ID: rec.ID, Name: rec.Name, Points: core.ClonePoints(rec.Points)}
}

// MarshalJSON encodes the room as a RoomRecord
func (r *Room) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Record())
}

// UnmarshalJSON decodes a RoomRecord into r
func (r *Room) UnmarshalJSON(data []byte) error {
	var rec RoomRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*r = *RoomFromRecord(rec)
	return nil
}

// Record returns the persisted shape of d
func (d *Door) Record() DoorRecord {
	return DoorRecord{
		ID:             d.ID,
		Position:       d.Position,
		Angle:          d.angle,
		Width:          d.Width,
		Height:         d.Height,
		SwingAngle:     d.SwingAngle,
		SwingDirection: d.SwingDirection.String(),
	}
}

// DoorFromRecord rebuilds a door keeping the recorded id
func DoorFromRecord(rec DoorRecord) (*Door, error) {
	swing, err := ParseSwing(rec.SwingDirection)
	if err != nil {
		return nil, fmt.Errorf("door %s: %w", rec.ID, err)
	}
	d := &Door{
		ID:             rec.ID,
		Position:       rec.Position,
		Width:          rec.Width,
		Height:         rec.Height,
		SwingAngle:     rec.SwingAngle,
		SwingDirection: swing,
	}
	d.SetAngle(rec.Angle)
	return d, nil
}

// MarshalJSON encodes the door as a DoorRecord
func (d *Door) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Record())
}

// UnmarshalJSON decodes a DoorRecord into d
func (d *Door) UnmarshalJSON(data []byte) error {
	var rec DoorRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	decoded, err := DoorFromRecord(rec)
	if err != nil {
		return err
	}
	*d = *decoded
	return nil
}

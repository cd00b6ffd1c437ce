package entity

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/lixenwraith/floorplan/core"
)

// Swing is the side a door leaf opens toward
type Swing uint8

const (
	SwingLeft Swing = iota
	SwingRight
)

// String returns the wire name of the swing direction
func (s Swing) String() string {
	if s == SwingRight {
		return "right"
	}
	return "left"
}

// ParseSwing resolves a wire name to a Swing
func ParseSwing(s string) (Swing, error) {
	switch s {
	case "left":
		return SwingLeft, nil
	case "right":
		return SwingRight, nil
	}
	return SwingLeft, fmt.Errorf("unknown swing direction %q", s)
}

// Toggle returns the opposite swing
func (s Swing) Toggle() Swing {
	if s == SwingLeft {
		return SwingRight
	}
	return SwingLeft
}

// Door is a rotatable rectangle anchored to a point expected to lie on a wall
// Width runs along the local x axis, Height along local y, both centered on Position
// Swing fields are cosmetic and do not affect hit testing
type Door struct {
	ID             string
	Position       core.Point
	angle          float64
	Width          float64
	Height         float64
	SwingAngle     float64
	SwingDirection Swing
}

// NewDoor creates a door with a fresh id and normalized angle
func NewDoor(position core.Point, angle, width, height, swingAngle float64, swing Swing) *Door {
	d := &Door{
		ID:             uuid.NewString(),
		Position:       position,
		Width:          width,
		Height:         height,
		SwingAngle:     swingAngle,
		SwingDirection: swing,
	}
	d.SetAngle(angle)
	return d
}

// Angle returns the wall-alignment rotation in degrees within [0,360)
func (d *Door) Angle() float64 {
	return d.angle
}

// SetAngle stores deg normalized into [0,360)
func (d *Door) SetAngle(deg float64) {
	d.angle = core.NormalizeDegrees(deg)
}

// axis returns the unit vector of the rotated local x axis
func (d *Door) axis() core.Point {
	rad := d.angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return core.Point{X: cos, Y: sin}
}

// Endpoints returns the two ends of the door along its width
func (d *Door) Endpoints() (core.Point, core.Point) {
	half := d.axis().Scale(d.Width / 2)
	return d.Position.Sub(half), d.Position.Add(half)
}

// Corners returns the four rectangle corners in winding order
func (d *Door) Corners() []core.Point {
	ax := d.axis()
	ay := core.Point{X: -ax.Y, Y: ax.X}
	hx := ax.Scale(d.Width / 2)
	hy := ay.Scale(d.Height / 2)
	return []core.Point{
		d.Position.Sub(hx).Sub(hy),
		d.Position.Add(hx).Sub(hy),
		d.Position.Add(hx).Add(hy),
		d.Position.Sub(hx).Add(hy),
	}
}

// ToLocal maps p into the door frame: origin at Position, x along the door width
func (d *Door) ToLocal(p core.Point) core.Point {
	return p.Sub(d.Position).RotateAround(core.Point{}, -d.angle)
}

// ContainsPoint tests p against the width x height rectangle in the door's local frame
func (d *Door) ContainsPoint(p core.Point) bool {
	l := d.ToLocal(p)
	return math.Abs(l.X) <= d.Width/2 && math.Abs(l.Y) <= d.Height/2
}

// Clone returns a deep copy that keeps the id
func (d *Door) Clone() *Door {
	c := *d
	return &c
}

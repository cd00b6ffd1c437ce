package validation

import (
	"fmt"
	"math"

	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/parameter"
)

// Validator evaluates room and door rules
// Stateless apart from its bounds; safe to share between managers
type Validator struct {
	bounds config.Validation
	bus    *event.Bus
}

// NewValidator creates a validator reporting failures on bus
// bus may be nil, in which case no events are emitted
func NewValidator(bounds config.Validation, bus *event.Bus) *Validator {
	return &Validator{bounds: bounds, bus: bus}
}

// Bounds returns the active validation bounds
func (v *Validator) Bounds() config.Validation {
	return v.bounds
}

// ValidateRoom checks vertex count, minimum area and self-intersection
// Fewer than 3 vertices short-circuits the remaining checks
func (v *Validator) ValidateRoom(room *entity.Room) Result {
	res := Valid()
	if len(room.Points) < parameter.MinRoomPoints {
		res.add("points", CodeRoomMinPoints,
			fmt.Sprintf("Room must have at least %d points, got %d", parameter.MinRoomPoints, len(room.Points)))
		return v.report(res)
	}
	if area := room.Area(); area < v.bounds.MinRoomArea {
		res.add("area", CodeRoomMinArea,
			fmt.Sprintf("Room area %.2f is below the minimum of %.2f", area, v.bounds.MinRoomArea))
	}
	if hasSelfIntersection(room.Points) {
		res.add("points", CodeRoomIntersectingEdges, "Room walls must not intersect")
	}
	return v.report(res)
}

// ValidateRoomShape checks vertex count and self-intersection without the area rule
// Vertex moves only re-check intersection, so a stored room may sit under the minimum area
func (v *Validator) ValidateRoomShape(room *entity.Room) Result {
	res := Valid()
	if len(room.Points) < parameter.MinRoomPoints {
		res.add("points", CodeRoomMinPoints,
			fmt.Sprintf("Room must have at least %d points, got %d", parameter.MinRoomPoints, len(room.Points)))
		return v.report(res)
	}
	if hasSelfIntersection(room.Points) {
		res.add("points", CodeRoomIntersectingEdges, "Room walls must not intersect")
	}
	return v.report(res)
}

// ValidatePointMove checks that oldPoint exists exactly and that moving it keeps walls from intersecting
// Area and vertex count are not re-checked
func (v *Validator) ValidatePointMove(room *entity.Room, oldPoint, newPoint core.Point) Result {
	res := Valid()
	idx := room.IndexOf(oldPoint)
	if idx < 0 {
		res.add("point", CodePointNotFound,
			fmt.Sprintf("Point (%g, %g) not found in room", oldPoint.X, oldPoint.Y))
		return v.report(res)
	}
	candidate := core.ClonePoints(room.Points)
	candidate[idx] = newPoint
	if hasSelfIntersection(candidate) {
		res.add("point", CodePointMoveIntersection, "Moving this point would make walls intersect")
	}
	return v.report(res)
}

// ValidateDoorPosition checks the door anchor lies within the snap threshold of a wall
func (v *Validator) ValidateDoorPosition(door *entity.Door, room *entity.Room) Result {
	res := Valid()
	d, ok := distanceToWalls(door.Position, room)
	if !ok || d > v.bounds.WallSnapThreshold {
		res.add("position", CodeDoorNotOnWall, "Door must be placed on a wall")
	}
	return v.report(res)
}

// ValidateDoorRotation accepts only 90-degree increments within the rotation epsilon
// The tolerance applies on both sides of a multiple, so 89.95 passes with the default 0.1
func (v *Validator) ValidateDoorRotation(door *entity.Door, angle float64) Result {
	res := Valid()
	rem := math.Mod(math.Abs(angle), parameter.RotationStep)
	// Distance to the nearest multiple, from either side
	off := math.Min(rem, parameter.RotationStep-rem)
	if off > v.bounds.RotationEpsilon {
		res.add("angle", CodeDoorInvalidRotation,
			fmt.Sprintf("Door rotation must be in 90-degree increments, got %g", angle))
	}
	return v.report(res)
}

// ValidateDoorSize checks width and height independently; both may fail
func (v *Validator) ValidateDoorSize(door *entity.Door, width, height float64) Result {
	res := Valid()
	b := v.bounds
	if width < b.MinDoorWidth || width > b.MaxDoorWidth {
		res.add("width", CodeDoorInvalidWidth,
			fmt.Sprintf("Door width must be between %g and %g, got %g", b.MinDoorWidth, b.MaxDoorWidth, width))
	}
	if height < b.MinDoorHeight || height > b.MaxDoorHeight {
		res.add("height", CodeDoorInvalidHeight,
			fmt.Sprintf("Door height must be between %g and %g, got %g", b.MinDoorHeight, b.MaxDoorHeight, height))
	}
	return v.report(res)
}

// ValidateDoor runs position, rotation and size checks and merges the results
func (v *Validator) ValidateDoor(door *entity.Door, room *entity.Room) Result {
	return merge(
		v.ValidateDoorPosition(door, room),
		v.ValidateDoorRotation(door, door.Angle()),
		v.ValidateDoorSize(door, door.Width, door.Height),
	)
}

// ValidateDoorShape runs rotation and size checks only
// Raw moves skip the wall check, so a stored door may sit off every wall
func (v *Validator) ValidateDoorShape(door *entity.Door) Result {
	return merge(
		v.ValidateDoorRotation(door, door.Angle()),
		v.ValidateDoorSize(door, door.Width, door.Height),
	)
}

func merge(results ...Result) Result {
	merged := Valid()
	for _, r := range results {
		if !r.IsValid {
			merged.IsValid = false
			merged.Errors = append(merged.Errors, r.Errors...)
		}
	}
	return merged
}

// report emits one validationError per error and returns res unchanged
func (v *Validator) report(res Result) Result {
	if v.bus == nil {
		return res
	}
	for _, e := range res.Errors {
		v.bus.Emit(event.EventValidationError, e.payload())
	}
	return res
}

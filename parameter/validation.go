package parameter

// Room geometry bounds
const (
	// MinRoomPoints is the vertex count below which a room is invalid
	MinRoomPoints = 3

	// MinRoomArea is the smallest accepted room area in square plan units
	MinRoomArea = 100.0
)

// Door placement and size bounds
const (
	// WallSnapThreshold is the max perpendicular distance from a door anchor to a wall
	WallSnapThreshold = 10.0

	// RotationEpsilon is the tolerance in degrees for the 90-degree rotation rule
	RotationEpsilon = 0.1

	// RotationStep is the only accepted door rotation increment
	RotationStep = 90.0

	MinDoorWidth  = 30.0
	MaxDoorWidth  = 200.0
	MinDoorHeight = 5.0
	MaxDoorHeight = 50.0
)

// Door defaults for newly placed doors
const (
	DefaultDoorWidth      = 80.0
	DefaultDoorHeight     = 10.0
	DefaultDoorSwingAngle = 90.0
)

// Grid
const (
	// GridSize is the snapping step in plan units
	GridSize = 10.0

	// GridSnapEnabled toggles snapping of drawn vertices
	GridSnapEnabled = true
)

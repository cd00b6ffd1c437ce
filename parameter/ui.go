package parameter

// Terminal view
const (
	// TerminalCellUnits is the number of plan units per terminal column
	TerminalCellUnits = 10.0

	// TerminalAspect compensates for cells being roughly twice as tall as wide
	TerminalAspect = 2.0

	// StatusLines reserved at the bottom of the terminal view
	StatusLines = 1
)

// Mode indicator text
const (
	ModeTextSelect = " SELECT "
	ModeTextDraw   = "  DRAW  "
	ModeTextDoor   = "  DOOR  "
)

// Snapshot export
const (
	// SnapshotMargin is the padding in pixels around exported images
	SnapshotMargin = 20.0

	// SnapshotMaxSide caps the longest side of an exported PNG
	SnapshotMaxSide = 2048
)

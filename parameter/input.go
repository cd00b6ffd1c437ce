package parameter

import "time"

// Pointer hit testing
const (
	// PointHitThreshold is the max distance for a pointer to grab a room vertex
	PointHitThreshold = 10.0
)

// Touch gesture timing
const (
	// TapMaxDuration is the longest touch that still counts as a tap
	TapMaxDuration = 200 * time.Millisecond

	// DoubleTapWindow is the max gap between tap end and next tap
	DoubleTapWindow = 300 * time.Millisecond
)

// Wheel pinch synthesis: scale = 1 - deltaY*WheelPinchFactor
const WheelPinchFactor = 0.01

// DrawRoomPoints is the number of clicks that completes a drawn room
const DrawRoomPoints = 4

// KeyRotateDegrees is the rotation applied by the rotate key
const KeyRotateDegrees = 90.0

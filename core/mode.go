package core

import "fmt"

// Mode is the high-level interaction intent
// Persists across gestures; gates which gestures produce which edits
type Mode uint8

const (
	ModeSelect Mode = iota
	ModeDraw
	ModeDoor
)

// Modes lists every mode in cycle order
var Modes = []Mode{ModeSelect, ModeDraw, ModeDoor}

// String returns the wire name of the mode
func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeDraw:
		return "draw"
	case ModeDoor:
		return "door"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode resolves a wire name to a Mode
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == s {
			return m, nil
		}
	}
	return ModeSelect, fmt.Errorf("unknown mode %q", s)
}

package mode

import (
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/input"
)

// ModeSetter is the mode owner the switcher drives, normally *input.Manager
type ModeSetter interface {
	SetMode(m core.Mode)
}

// Switcher maps number and letter keys to modes
type Switcher struct {
	input.NopHandler
	target ModeSetter
	keys   map[string]core.Mode
}

// NewSwitcher creates a switcher driving target
func NewSwitcher(target ModeSetter) *Switcher {
	return &Switcher{
		target: target,
		keys: map[string]core.Mode{
			"1": core.ModeSelect,
			"2": core.ModeDraw,
			"3": core.ModeDoor,
			"s": core.ModeSelect,
			"d": core.ModeDraw,
			"o": core.ModeDoor,
		},
	}
}

// HandleKey implements input.Handler
func (s *Switcher) HandleKey(ev input.KeyEvent) {
	if ev.Action != input.KeyDown || !plain(ev.Mod) {
		return
	}
	if m, ok := s.keys[ev.Key]; ok {
		s.target.SetMode(m)
	}
}

package input

import "github.com/lixenwraith/floorplan/core"

// Handler receives every gesture and key event, filtering by its own mode tracking
type Handler interface {
	HandleGesture(g Gesture)
	HandleKey(ev KeyEvent)
}

// ModeAware handlers are told about mode changes so they can drop per-mode transient state
// Checked once at Register
type ModeAware interface {
	SetMode(m core.Mode)
}

// NopHandler implements Handler with no-ops for embedding
type NopHandler struct{}

func (NopHandler) HandleGesture(Gesture) {}
func (NopHandler) HandleKey(KeyEvent)    {}

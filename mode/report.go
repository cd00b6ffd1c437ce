// Package mode holds the mode-aware interaction handlers that turn gestures into manager calls
package mode

import (
	"errors"
	"log"

	"github.com/lixenwraith/floorplan/input"
	"github.com/lixenwraith/floorplan/manager"
)

// keyFunc handles one key press
type keyFunc func()

// report logs a failed edit
// Rejections are also visible as validationError events
func report(op string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, manager.ErrRejected) {
		log.Printf("[MODE] %s: %v", op, err)
		return
	}
	log.Printf("[MODE] %s failed: %v", op, err)
}

// plain reports a key press without command modifiers
func plain(mod input.Modifiers) bool {
	return !mod.Ctrl && !mod.Alt && !mod.Meta
}

// Package editor wires the validator, managers, interaction manager and handlers into one editing session
package editor

import (
	"errors"
	"log"

	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/input"
	"github.com/lixenwraith/floorplan/manager"
	"github.com/lixenwraith/floorplan/mode"
	"github.com/lixenwraith/floorplan/validation"
)

// ErrUndoUnsupported is returned by Undo and Redo
var ErrUndoUnsupported = errors.New("undo/redo not supported")

// Editor is one floor plan editing session
// Single-threaded: callers that share an Editor across goroutines serialize access
type Editor struct {
	Config    *config.Config
	Bus       *event.Bus
	Validator *validation.Validator
	Rooms     *manager.Rooms
	Doors     *manager.Doors
	Input     *input.Manager

	RoomHandler *mode.RoomHandler
	DoorHandler *mode.DoorHandler
	Switcher    *mode.Switcher
}

// New builds a session from cfg; nil cfg uses the defaults
// Handlers register rooms first, then doors, then the mode switcher
func New(cfg *config.Config) *Editor {
	if cfg == nil {
		cfg = config.Default()
	}
	bus := event.NewBus()
	v := validation.NewValidator(cfg.Validation, bus)
	e := &Editor{
		Config:    cfg,
		Bus:       bus,
		Validator: v,
		Rooms:     manager.NewRooms(v, bus, cfg.Grid.Size),
		Doors:     manager.NewDoors(v, bus, cfg.Door),
		Input:     input.NewManager(bus, cfg.Input),
	}
	e.RoomHandler = mode.NewRoomHandler(e.Rooms, cfg)
	e.DoorHandler = mode.NewDoorHandler(e.Doors, e.Rooms)
	e.Switcher = mode.NewSwitcher(e.Input)
	e.Input.Register(e.RoomHandler)
	e.Input.Register(e.DoorHandler)
	e.Input.Register(e.Switcher)
	log.Printf("[EDITOR] session ready (grid %g, snap %v)", cfg.Grid.Size, cfg.Grid.Snap)
	return e
}

// Clear removes every door and room
func (e *Editor) Clear() {
	e.Doors.Clear()
	e.Rooms.Clear()
	e.Rooms.ClearPreview()
	e.Doors.ClearPreview()
}

// Close detaches the interaction manager from the bus
func (e *Editor) Close() {
	e.Input.Close()
}

// Undo is not implemented
func (e *Editor) Undo() error {
	return ErrUndoUnsupported
}

// Redo is not implemented
func (e *Editor) Redo() error {
	return ErrUndoUnsupported
}

package api

import (
	"github.com/gofiber/fiber/v3"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/manager"
)

type createDoorRequest struct {
	RoomID   string     `json:"roomId"`
	Position core.Point `json:"position"`
	Angle    float64    `json:"angle"`
}

type rotateDoorRequest struct {
	Angle float64 `json:"angle"`
}

type resizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s *Server) door(c fiber.Ctx) (*entity.Door, error) {
	d, ok := s.editor.Doors.Door(c.Params("id"))
	if !ok {
		return nil, manager.ErrDoorNotFound
	}
	return d, nil
}

func (s *Server) listDoors(c fiber.Ctx) error {
	doors := s.editor.Doors.Doors()
	out := make([]entity.DoorRecord, 0, len(doors))
	for _, d := range doors {
		out = append(out, d.Record())
	}
	return c.JSON(out)
}

// createDoor places a door on the named room, or on the room with the nearest wall
func (s *Server) createDoor(c fiber.Ctx) error {
	var req createDoorRequest
	if err := decode(c, &req); err != nil {
		return fail(c, "create door", err)
	}

	var host *entity.Room
	if req.RoomID != "" {
		host, _ = s.editor.Rooms.Room(req.RoomID)
	} else {
		host = s.editor.HostRoom(s.editor.Doors.NewCandidate(req.Position, req.Angle))
	}

	d, err := s.editor.Doors.CreateDoor(host, req.Position, req.Angle)
	if err != nil {
		return fail(c, "create door", err)
	}
	return c.Status(fiber.StatusCreated).JSON(d.Record())
}

func (s *Server) getDoor(c fiber.Ctx) error {
	d, err := s.door(c)
	if err != nil {
		return fail(c, "get door", err)
	}
	return c.JSON(d.Record())
}

func (s *Server) deleteDoor(c fiber.Ctx) error {
	d, err := s.door(c)
	if err == nil {
		err = s.editor.Doors.DeleteDoor(d)
	}
	if err != nil {
		return fail(c, "delete door", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// editDoor decodes req, applies fn to the addressed door and returns the result
func editDoor[T any](s *Server, c fiber.Ctx, op string, fn func(d *entity.Door, req T) error) error {
	d, err := s.door(c)
	if err != nil {
		return fail(c, op, err)
	}
	var req T
	if err := decode(c, &req); err != nil {
		return fail(c, op, err)
	}
	if err := fn(d, req); err != nil {
		return fail(c, op, err)
	}
	return c.JSON(d.Record())
}

func (s *Server) moveDoor(c fiber.Ctx) error {
	return editDoor(s, c, "move door", func(d *entity.Door, req moveRequest) error {
		return s.editor.Doors.MoveDoor(d, core.Pt(req.DX, req.DY))
	})
}

func (s *Server) rotateDoor(c fiber.Ctx) error {
	return editDoor(s, c, "rotate door", func(d *entity.Door, req rotateDoorRequest) error {
		return s.editor.Doors.RotateDoor(d, req.Angle)
	})
}

func (s *Server) resizeDoor(c fiber.Ctx) error {
	return editDoor(s, c, "resize door", func(d *entity.Door, req resizeRequest) error {
		return s.editor.Doors.ResizeDoor(d, req.Width, req.Height)
	})
}

func (s *Server) toggleSwing(c fiber.Ctx) error {
	d, err := s.door(c)
	if err == nil {
		err = s.editor.Doors.ToggleSwing(d)
	}
	if err != nil {
		return fail(c, "toggle swing", err)
	}
	return c.JSON(d.Record())
}

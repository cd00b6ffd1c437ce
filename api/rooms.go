package api

import (
	"github.com/gofiber/fiber/v3"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/manager"
)

type roomResponse struct {
	entity.RoomRecord
	Area      float64    `json:"area"`
	Perimeter float64    `json:"perimeter"`
	Center    core.Point `json:"center"`
}

func roomView(r *entity.Room) roomResponse {
	return roomResponse{
		RoomRecord: r.Record(),
		Area:       r.Area(),
		Perimeter:  r.Perimeter(),
		Center:     r.Center(),
	}
}

type createRoomRequest struct {
	Name   string       `json:"name"`
	Points []core.Point `json:"points"`
}

type moveRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

type rotateRoomRequest struct {
	Degrees float64 `json:"degrees"`
}

type scaleRequest struct {
	Factor float64 `json:"factor"`
}

func (s *Server) room(c fiber.Ctx) (*entity.Room, error) {
	r, ok := s.editor.Rooms.Room(c.Params("id"))
	if !ok {
		return nil, manager.ErrRoomNotFound
	}
	return r, nil
}

func (s *Server) listRooms(c fiber.Ctx) error {
	rooms := s.editor.Rooms.Rooms()
	out := make([]roomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomView(r))
	}
	return c.JSON(out)
}

func (s *Server) createRoom(c fiber.Ctx) error {
	var req createRoomRequest
	if err := decode(c, &req); err != nil {
		return fail(c, "create room", err)
	}
	r, err := s.editor.Rooms.CreateRoom(req.Name, req.Points)
	if err != nil {
		return fail(c, "create room", err)
	}
	return c.Status(fiber.StatusCreated).JSON(roomView(r))
}

func (s *Server) getRoom(c fiber.Ctx) error {
	r, err := s.room(c)
	if err != nil {
		return fail(c, "get room", err)
	}
	return c.JSON(roomView(r))
}

func (s *Server) deleteRoom(c fiber.Ctx) error {
	r, err := s.room(c)
	if err == nil {
		err = s.editor.Rooms.DeleteRoom(r)
	}
	if err != nil {
		return fail(c, "delete room", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// editRoom decodes req, applies fn to the addressed room and returns the result
func editRoom[T any](s *Server, c fiber.Ctx, op string, fn func(r *entity.Room, req T) error) error {
	r, err := s.room(c)
	if err != nil {
		return fail(c, op, err)
	}
	var req T
	if err := decode(c, &req); err != nil {
		return fail(c, op, err)
	}
	if err := fn(r, req); err != nil {
		return fail(c, op, err)
	}
	return c.JSON(roomView(r))
}

func (s *Server) moveRoom(c fiber.Ctx) error {
	return editRoom(s, c, "move room", func(r *entity.Room, req moveRequest) error {
		return s.editor.Rooms.MoveRoom(r, core.Pt(req.DX, req.DY))
	})
}

func (s *Server) rotateRoom(c fiber.Ctx) error {
	return editRoom(s, c, "rotate room", func(r *entity.Room, req rotateRoomRequest) error {
		return s.editor.Rooms.RotateRoom(r, req.Degrees)
	})
}

func (s *Server) scaleRoom(c fiber.Ctx) error {
	return editRoom(s, c, "scale room", func(r *entity.Room, req scaleRequest) error {
		return s.editor.Rooms.ScaleRoom(r, req.Factor)
	})
}

package api

import (
	"bytes"

	"github.com/gofiber/fiber/v3"

	"github.com/lixenwraith/floorplan/editor"
)

func (s *Server) getPlan(c fiber.Ctx) error {
	return c.JSON(s.editor.Export())
}

// putPlan replaces the whole plan; a rejected document leaves the plan unchanged
func (s *Server) putPlan(c fiber.Ctx) error {
	var doc editor.Document
	if err := decode(c, &doc); err != nil {
		return fail(c, "put plan", err)
	}
	if err := s.editor.Import(doc); err != nil {
		return fail(c, "put plan", err)
	}
	return c.JSON(s.editor.Stats())
}

func (s *Server) clearPlan(c fiber.Ctx) error {
	s.editor.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) getStats(c fiber.Ctx) error {
	return c.JSON(s.editor.Stats())
}

func (s *Server) getSVG(c fiber.Ctx) error {
	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(s.snapshot.SVG())
}

func (s *Server) getPNG(c fiber.Ctx) error {
	var buf bytes.Buffer
	if err := s.snapshot.PNG(&buf); err != nil {
		return fail(c, "png", err)
	}
	c.Set("Content-Type", "image/png")
	return c.Send(buf.Bytes())
}

// getStatus reports event counters plus plan gauges sampled at request time
func (s *Server) getStatus(c fiber.Ctx) error {
	st := s.editor.Stats()
	s.metrics.Gauges.Get("plan.rooms").Set(float64(st.Rooms))
	s.metrics.Gauges.Get("plan.doors").Set(float64(st.Doors))
	s.metrics.Gauges.Get("plan.area").Set(st.TotalArea)
	s.metrics.Gauges.Get("plan.perimeter").Set(st.TotalPerimeter)
	return c.JSON(s.metrics.Snapshot())
}

// Package api exposes an editor session over HTTP
package api

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/editor"
	"github.com/lixenwraith/floorplan/parameter"
	"github.com/lixenwraith/floorplan/render"
	"github.com/lixenwraith/floorplan/status"
)

// Server serializes HTTP requests onto one editor session
type Server struct {
	mu       sync.Mutex
	editor   *editor.Editor
	snapshot *render.Snapshot
	bridge   *render.Bridge
	metrics  *status.Registry
	app      *fiber.App
	port     string
}

// New builds the fiber app and routes for ed
func New(ed *editor.Editor, cfg config.API) *Server {
	s := &Server{
		editor:   ed,
		snapshot: render.NewSnapshot(),
		metrics:  status.NewRegistry(),
		port:     cfg.Port,
	}
	s.metrics.Attach(ed.Bus)
	s.bridge = render.NewBridge(ed.Bus, ed.Rooms, ed.Doors, s.snapshot)

	s.app = fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      parameter.APIAppName,
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	s.app.Use(recover.New())
	s.app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	s.app.Get("/status", s.locked(s.getStatus))

	// ============================================================
	// Plan Routes
	// ============================================================

	s.app.Get("/plan", s.locked(s.getPlan))
	s.app.Put("/plan", s.locked(s.putPlan))
	s.app.Delete("/plan", s.locked(s.clearPlan))
	s.app.Get("/plan/stats", s.locked(s.getStats))
	s.app.Get("/plan.svg", s.locked(s.getSVG))
	s.app.Get("/plan.png", s.locked(s.getPNG))

	// ============================================================
	// Room Routes
	// ============================================================

	s.app.Get("/rooms", s.locked(s.listRooms))
	s.app.Post("/rooms", s.locked(s.createRoom))
	s.app.Get("/rooms/:id", s.locked(s.getRoom))
	s.app.Delete("/rooms/:id", s.locked(s.deleteRoom))
	s.app.Post("/rooms/:id/move", s.locked(s.moveRoom))
	s.app.Post("/rooms/:id/rotate", s.locked(s.rotateRoom))
	s.app.Post("/rooms/:id/scale", s.locked(s.scaleRoom))

	// ============================================================
	// Door Routes
	// ============================================================

	s.app.Get("/doors", s.locked(s.listDoors))
	s.app.Post("/doors", s.locked(s.createDoor))
	s.app.Get("/doors/:id", s.locked(s.getDoor))
	s.app.Delete("/doors/:id", s.locked(s.deleteDoor))
	s.app.Post("/doors/:id/move", s.locked(s.moveDoor))
	s.app.Post("/doors/:id/rotate", s.locked(s.rotateDoor))
	s.app.Post("/doors/:id/resize", s.locked(s.resizeDoor))
	s.app.Post("/doors/:id/swing", s.locked(s.toggleSwing))
}

// locked runs h while holding the session lock
func (s *Server) locked(h fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		return h(c)
	}
}

// App returns the fiber app, for tests and embedding
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown
func (s *Server) Listen() error {
	addr := fmt.Sprintf(":%s", s.port)
	log.Printf("[API] listening on %s", addr)
	return s.app.Listen(addr)
}

// Shutdown stops the server and detaches from the editor
func (s *Server) Shutdown() error {
	err := s.app.Shutdown()
	s.mu.Lock()
	s.bridge.Close()
	s.metrics.Detach()
	s.mu.Unlock()
	return err
}

package render

import (
	"math"

	"seehuhn.de/go/geom/rect"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/parameter"
)

// Snapshot is a Consumer that keeps the latest plan state for export
// Entity pointers are read at export time, so export under the same lock as edits
type Snapshot struct {
	rooms []*entity.Room
	doors []*entity.Door

	selectedRoom  *entity.Room
	selectedPoint *core.Point
	selectedDoor  *entity.Door
	hoveredRoom   *entity.Room
	hoveredDoor   *entity.Door

	preview     []core.Point
	previewDoor *entity.Door

	margin float64
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{margin: parameter.SnapshotMargin}
}

func (s *Snapshot) SetRooms(rooms []*entity.Room) { s.rooms = rooms }
func (s *Snapshot) SetDoors(doors []*entity.Door) { s.doors = doors }

func (s *Snapshot) SetSelectedRoom(room *entity.Room, point *core.Point) {
	s.selectedRoom, s.selectedPoint = room, point
}

func (s *Snapshot) SetSelectedDoor(door *entity.Door)    { s.selectedDoor = door }
func (s *Snapshot) SetPreviewPoints(points []core.Point) { s.preview = points }
func (s *Snapshot) SetPreviewDoor(door *entity.Door)     { s.previewDoor = door }

func (s *Snapshot) SetHoveredRoom(room *entity.Room, _ *core.Point) { s.hoveredRoom = room }
func (s *Snapshot) SetHoveredDoor(door *entity.Door)                { s.hoveredDoor = door }

// Rooms returns the rooms last pushed
func (s *Snapshot) Rooms() []*entity.Room { return s.rooms }

// Doors returns the doors last pushed
func (s *Snapshot) Doors() []*entity.Door { return s.doors }

// Selection returns the selected room, vertex and door
func (s *Snapshot) Selection() (*entity.Room, *core.Point, *entity.Door) {
	return s.selectedRoom, s.selectedPoint, s.selectedDoor
}

// Hover returns the hovered room and door
func (s *Snapshot) Hover() (*entity.Room, *entity.Door) {
	return s.hoveredRoom, s.hoveredDoor
}

// Preview returns the in-progress outline and candidate door
func (s *Snapshot) Preview() ([]core.Point, *entity.Door) {
	return s.preview, s.previewDoor
}

// Bounds returns the extent of everything drawn, without margin
// An empty plan yields the zero rectangle
func (s *Snapshot) Bounds() rect.Rect {
	var (
		b     rect.Rect
		empty = true
	)
	add := func(p core.Point) {
		if empty {
			b = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
			empty = false
			return
		}
		b.LLx = math.Min(b.LLx, p.X)
		b.LLy = math.Min(b.LLy, p.Y)
		b.URx = math.Max(b.URx, p.X)
		b.URy = math.Max(b.URy, p.Y)
	}
	for _, r := range s.rooms {
		bb := r.BoundingBox()
		if len(r.Points) > 0 {
			add(core.Pt(bb.LLx, bb.LLy))
			add(core.Pt(bb.URx, bb.URy))
		}
	}
	for _, d := range s.doors {
		for _, c := range d.Corners() {
			add(c)
		}
	}
	for _, p := range s.preview {
		add(p)
	}
	if s.previewDoor != nil {
		for _, c := range s.previewDoor.Corners() {
			add(c)
		}
	}
	return b
}

// frame maps plan coordinates to output coordinates
type frame struct {
	origin core.Point // plan point drawn at (margin, margin)
	margin float64
	scale  float64
	width  float64
	height float64
}

func (s *Snapshot) frame(maxSide float64) frame {
	b := s.Bounds()
	w, h := b.URx-b.LLx, b.URy-b.LLy
	f := frame{
		origin: core.Pt(b.LLx, b.LLy),
		margin: s.margin,
		scale:  1,
	}
	if longest := math.Max(w, h) + 2*s.margin; maxSide > 0 && longest > maxSide {
		f.scale = (maxSide - 2*s.margin) / math.Max(w, h)
	}
	f.width = w*f.scale + 2*s.margin
	f.height = h*f.scale + 2*s.margin
	return f
}

func (f frame) apply(p core.Point) core.Point {
	return p.Sub(f.origin).Scale(f.scale).Add(core.Pt(f.margin, f.margin))
}

func (s *Snapshot) roomStroke(r *entity.Room) colorRole {
	switch r {
	case s.selectedRoom:
		return roleSelected
	case s.hoveredRoom:
		return roleHover
	}
	return roleNormal
}

func (s *Snapshot) doorStroke(d *entity.Door) colorRole {
	switch d {
	case s.selectedDoor:
		return roleSelected
	case s.hoveredDoor:
		return roleHover
	}
	return roleNormal
}

type colorRole uint8

const (
	roleNormal colorRole = iota
	roleSelected
	roleHover
)

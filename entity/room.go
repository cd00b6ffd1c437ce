// Package entity holds the plan geometry: room polygons and wall-anchored doors
// Both are plain values with on-demand derived quantities; nothing is cached
package entity

import (
	"math"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/rect"

	"github.com/lixenwraith/floorplan/core"
)

// Room is an ordered polygon
// Vertex order defines winding and is significant for area and edges
// A room may transiently hold fewer than 3 points during drawing; validity is checked by the validator
type Room struct {
	ID     string
	Name   string
	Points []core.Point
}

// Edge is a wall: the segment between two consecutive vertices
// Index is the position of A in the vertex list; B is the next vertex with wrap-around
type Edge struct {
	Index int
	A, B  core.Point
}

// NewRoom creates a room with a fresh process-unique id
func NewRoom(name string, points []core.Point) *Room {
	return &Room{
		ID:     uuid.NewString(),
		Name:   name,
		Points: core.ClonePoints(points),
	}
}

// SetPoints replaces the whole vertex list
func (r *Room) SetPoints(points []core.Point) {
	r.Points = core.ClonePoints(points)
}

// ReplacePoint swaps the first vertex exactly equal to old with p
// Returns false if no vertex matches
func (r *Room) ReplacePoint(old, p core.Point) bool {
	i := r.IndexOf(old)
	if i < 0 {
		return false
	}
	r.Points[i] = p
	return true
}

// IndexOf returns the index of the first vertex exactly equal to p, or -1
func (r *Room) IndexOf(p core.Point) int {
	for i, q := range r.Points {
		if q == p {
			return i
		}
	}
	return -1
}

// Edges returns all walls including the closing edge
func (r *Room) Edges() []Edge {
	n := len(r.Points)
	if n < 2 {
		return nil
	}
	edges := make([]Edge, n)
	for i := range n {
		edges[i] = Edge{Index: i, A: r.Points[i], B: r.Points[(i+1)%n]}
	}
	return edges
}

// Area returns the absolute shoelace area
func (r *Room) Area() float64 {
	n := len(r.Points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range n {
		a, b := r.Points[i], r.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// Perimeter returns the sum of edge lengths including the closing edge
func (r *Room) Perimeter() float64 {
	var sum float64
	for _, e := range r.Edges() {
		sum += e.A.Distance(e.B)
	}
	return sum
}

// Center returns the arithmetic mean of the vertices
// This is not the area-weighted centroid; rotate and scale pivot on this mean
func (r *Room) Center() core.Point {
	n := len(r.Points)
	if n == 0 {
		return core.Point{}
	}
	var c core.Point
	for _, p := range r.Points {
		c.X += p.X
		c.Y += p.Y
	}
	return c.Scale(1 / float64(n))
}

// BoundingBox returns the axis-aligned bounds of the vertices
// LLx/LLy hold the minimum coordinates, URx/URy the maximum
func (r *Room) BoundingBox() rect.Rect {
	if len(r.Points) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: r.Points[0].X, LLy: r.Points[0].Y,
		URx: r.Points[0].X, URy: r.Points[0].Y,
	}
	for _, p := range r.Points[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// ContainsPoint reports whether p is inside the polygon using even-odd ray casting
func (r *Room) ContainsPoint(p core.Point) bool {
	inside := false
	n := len(r.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := r.Points[i], r.Points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// FindClosestPoint returns the nearest vertex within threshold
func (r *Room) FindClosestPoint(p core.Point, threshold float64) (core.Point, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, q := range r.Points {
		d := q.Distance(p)
		if d <= threshold && d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return core.Point{}, false
	}
	return r.Points[best], true
}

// ClosestEdge is the result of an edge proximity query
type ClosestEdge struct {
	Edge      Edge
	Distance  float64
	Projected core.Point // nearest point on the edge
}

// FindClosestEdge returns the wall nearest to p by clamped projection distance
// ok is false when the room has fewer than two vertices
func (r *Room) FindClosestEdge(p core.Point) (ClosestEdge, bool) {
	edges := r.Edges()
	if len(edges) == 0 {
		return ClosestEdge{}, false
	}
	best := ClosestEdge{Distance: math.Inf(1)}
	for _, e := range edges {
		proj := ProjectOntoSegment(p, e.A, e.B)
		if d := p.Distance(proj); d < best.Distance {
			best = ClosestEdge{Edge: e, Distance: d, Projected: proj}
		}
	}
	return best, true
}

// Clone returns a deep copy with a new id
func (r *Room) Clone() *Room {
	return NewRoom(r.Name, r.Points)
}

// ProjectOntoSegment returns the point on segment ab nearest to p
// The projection parameter is clamped to [0,1]; a degenerate segment returns a
func ProjectOntoSegment(p, a, b core.Point) core.Point {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = max(0, min(1, t))
	return a.Add(ab.Scale(t))
}

// SegmentDistance returns the distance from p to segment ab
func SegmentDistance(p, a, b core.Point) float64 {
	return p.Distance(ProjectOntoSegment(p, a, b))
}

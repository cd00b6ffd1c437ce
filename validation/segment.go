package validation

import (
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
)

// SegmentsIntersect reports whether segments p1p2 and p3p4 cross strictly inside both
// Both parametric parameters must lie in the open interval (0,1)
// Parallel and collinear segments (zero determinant) never intersect
func SegmentsIntersect(p1, p2, p3, p4 core.Point) bool {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	det := d1.X*d2.Y - d1.Y*d2.X
	if det == 0 {
		return false
	}
	w := p3.Sub(p1)
	t := (w.X*d2.Y - w.Y*d2.X) / det
	u := (w.X*d1.Y - w.Y*d1.X) / det
	return t > 0 && t < 1 && u > 0 && u < 1
}

// hasSelfIntersection checks every non-adjacent edge pair of the closed polygon
func hasSelfIntersection(points []core.Point) bool {
	n := len(points)
	if n < 4 {
		return false
	}
	for i := range n {
		a1, a2 := points[i], points[(i+1)%n]
		for j := i + 2; j < n; j++ {
			// First and last edges share vertex 0
			if i == 0 && j == n-1 {
				continue
			}
			b1, b2 := points[j], points[(j+1)%n]
			if SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// distanceToWalls returns the smallest clamped-projection distance from p to any edge
// ok is false if the room has no edges
func distanceToWalls(p core.Point, room *entity.Room) (float64, bool) {
	ce, ok := room.FindClosestEdge(p)
	if !ok {
		return 0, false
	}
	return ce.Distance, true
}

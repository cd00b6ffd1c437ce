package core

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a position in plan space
// Value type, no identity
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromVec converts a geom vector into a Point
func FromVec(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Vec returns the point as a geom vector
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return FromVec(p.Vec().Add(q.Vec()))
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return FromVec(p.Vec().Sub(q.Vec()))
}

// Scale returns p*k
func (p Point) Scale(k float64) Point {
	return FromVec(p.Vec().Mul(k))
}

// Length returns the Euclidean norm of p treated as a vector
func (p Point) Length() float64 {
	return p.Vec().Length()
}

// Distance returns the Euclidean distance between p and q
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Dot returns the dot product of p and q
func (p Point) Dot(q Point) float64 {
	return p.Vec().Dot(q.Vec())
}

// RotateAround rotates p about center by degrees (counter-clockwise in a y-up frame)
func (p Point) RotateAround(center Point, degrees float64) Point {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	d := p.Sub(center)
	return Point{
		X: center.X + d.X*cos - d.Y*sin,
		Y: center.Y + d.X*sin + d.Y*cos,
	}
}

// ScaleAround scales p away from (factor > 1) or toward (factor < 1) center
func (p Point) ScaleAround(center Point, factor float64) Point {
	return center.Add(p.Sub(center).Scale(factor))
}

// Midpoint returns the point halfway between p and q
func (p Point) Midpoint(q Point) Point {
	return p.Add(q).Scale(0.5)
}

// Angle returns the direction of p treated as a vector, in degrees within (-180,180]
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X) * 180 / math.Pi
}

// ClonePoints returns an independent copy of pts
func ClonePoints(pts []Point) []Point {
	if pts == nil {
		return nil
	}
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}

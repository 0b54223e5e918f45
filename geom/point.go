// Package geom implements the 2D geometry primitives the mesh and search
// packages build on: points, orientation, reflection across a line, and
// the epsilon-aware equality/collinearity predicates the rest of the
// engine is built against.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Epsilon is the single absolute tolerance used for collinearity,
// dominance, and equality checks throughout the search engine. It must
// never be mixed with a relative tolerance.
const Epsilon = 1e-8

// Point is a location in the plane. Arithmetic delegates to gonum's r2.Vec
// so Point doubles as a displacement vector, matching how the reference
// implementation overloads point/vector operators.
type Point struct {
	X, Y float64
}

func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func fromVec(v r2.Vec) Point { return Point{X: v.X, Y: v.Y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return fromVec(p.vec().Add(q.vec())) }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return fromVec(p.vec().Sub(q.vec())) }

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point { return fromVec(p.vec().Scale(f)) }

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 { return p.vec().Dot(q.vec()) }

// Cross returns the 2D cross product p×q (the z-component of the 3D
// cross product of (p,0) and (q,0)).
func (p Point) Cross(q Point) float64 { return p.vec().Cross(q.vec()) }

// Norm returns the Euclidean length of p treated as a vector.
func (p Point) Norm() float64 { return r2.Norm(p.vec()) }

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 { return r2.Norm(p.vec().Sub(q.vec())) }

// Equal reports whether p and q are within Epsilon of each other on both
// axes.
func Equal(p, q Point) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon
}

// IsZero reports whether p is within Epsilon of the origin.
func (p Point) IsZero() bool {
	return math.Abs(p.X) < Epsilon && math.Abs(p.Y) < Epsilon
}

// Orientation classifies the turn a->b->c makes.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

// OrientationOf returns the orientation of the ordered triple (a,b,c)
// under the shared Epsilon.
func OrientationOf(a, b, c Point) Orientation {
	cross := b.Sub(a).Cross(c.Sub(a))
	switch {
	case cross > Epsilon:
		return CounterClockwise
	case cross < -Epsilon:
		return Clockwise
	default:
		return Collinear
	}
}

// IsCollinear reports whether a, b, c lie on a common line under Epsilon.
func IsCollinear(a, b, c Point) bool {
	return OrientationOf(a, b, c) == Collinear
}

// ReflectAcrossLine reflects p across the infinite line through a and b.
func ReflectAcrossLine(p, a, b Point) Point {
	d := b.Sub(a)
	norm2 := d.Dot(d)
	if norm2 < Epsilon*Epsilon {
		return p
	}
	ap := p.Sub(a)
	t := ap.Dot(d) / norm2
	proj := a.Add(d.Scale(t))
	return proj.Scale(2).Sub(p)
}

// AngleOf returns the angle of p (as a vector from the origin) in
// (-pi, pi], matching math.Atan2's convention.
func AngleOf(p Point) float64 { return math.Atan2(p.Y, p.X) }

// NormalizeAngle reduces a to the half-open interval [0, 2*pi).
func NormalizeAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// SegmentsIntersect reports whether segment p1p2 properly or improperly
// intersects segment p3p4.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	o1 := OrientationOf(p1, p2, p3)
	o2 := OrientationOf(p1, p2, p4)
	o3 := OrientationOf(p3, p4, p1)
	o4 := OrientationOf(p3, p4, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == Collinear && onSegment(p1, p3, p2) {
		return true
	}
	if o2 == Collinear && onSegment(p1, p4, p2) {
		return true
	}
	if o3 == Collinear && onSegment(p3, p1, p4) {
		return true
	}
	if o4 == Collinear && onSegment(p3, p2, p4) {
		return true
	}
	return false
}

// onSegment assumes a, b, c are collinear and reports whether b lies on
// segment a-c.
func onSegment(a, b, c Point) bool {
	return math.Min(a.X, c.X)-Epsilon <= b.X && b.X <= math.Max(a.X, c.X)+Epsilon &&
		math.Min(a.Y, c.Y)-Epsilon <= b.Y && b.Y <= math.Max(a.Y, c.Y)+Epsilon
}

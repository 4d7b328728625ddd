package geometry

import (
	"math/big"
)

// Line is an infinite line through a point with a non-zero direction.
type Line struct {
	p *Point
	v *Vector
}

// NewLine builds a line through p with direction v. A zero direction is a
// construction error: a "line" collapsing to a point is rejected, never
// silently accepted.
func NewLine(p *Point, v *Vector) (*Line, error) {
	if v.IsZero() {
		return nil, newZeroDirectionError("line")
	}
	return &Line{p: p, v: v}, nil
}

// NewLineThrough builds the line through two distinct points.
func NewLineThrough(p, q *Point) (*Line, error) {
	v := q.Sub(p)
	if v.IsZero() {
		return nil, newDegenerateError("line", "the two defining points coincide")
	}
	return &Line{p: p, v: v}, nil
}

// Point returns the line's base point.
func (l *Line) Point() *Point { return l.p }

// Direction returns the line's direction vector.
func (l *Line) Direction() *Vector { return l.v }

// PointAt resolves the absolute point at parameter t.
func (l *Line) PointAt(t *big.Rat) *Point {
	return NewPointFromVector(l.p.Vector().Add(l.v.Scale(t)))
}

// ContainsPoint reports exactly whether pt lies on the line.
func (l *Line) ContainsPoint(pt *Point) bool {
	return pt.Sub(l.p).Cross(l.v).IsZero()
}

// paramOf returns the parameter of pt, which must already lie on the line.
func (l *Line) paramOf(pt *Point) *big.Rat {
	w := pt.Sub(l.p)
	return new(big.Rat).Quo(w.Dot(l.v), l.v.MagnitudeSquared())
}

// IsParallelTo reports whether the two lines have parallel directions.
func (l *Line) IsParallelTo(o *Line) bool {
	return l.v.IsParallelTo(o.v)
}

// Coincides reports whether the two lines describe the same point set.
func (l *Line) Coincides(o *Line) bool {
	return l.IsParallelTo(o) && l.ContainsPoint(o.p)
}

// Kind implements Geometry.
func (l *Line) Kind() Kind { return KindLine }

// Bounds returns nil; a line is unbounded.
func (l *Line) Bounds() *AABB { return nil }

// Ray is the half-line from a base point along a non-zero direction,
// parametrically t in [0, +inf).
type Ray struct {
	line *Line
}

// NewRay builds a ray from p along v.
func NewRay(p *Point, v *Vector) (*Ray, error) {
	if v.IsZero() {
		return nil, newZeroDirectionError("ray")
	}
	return &Ray{line: &Line{p: p, v: v}}, nil
}

// Point returns the ray's base point.
func (r *Ray) Point() *Point { return r.line.p }

// Direction returns the ray's direction vector.
func (r *Ray) Direction() *Vector { return r.line.v }

// Line returns the infinite line containing the ray.
func (r *Ray) Line() *Line { return r.line }

// ContainsPoint reports whether pt lies on the ray, endpoint included.
func (r *Ray) ContainsPoint(pt *Point) bool {
	if !r.line.ContainsPoint(pt) {
		return false
	}
	return r.line.paramOf(pt).Sign() >= 0
}

// Kind implements Geometry.
func (r *Ray) Kind() Kind { return KindRay }

// Bounds returns nil; a ray is unbounded.
func (r *Ray) Bounds() *AABB { return nil }

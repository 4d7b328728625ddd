package geometry

import (
	"math/big"
)

// Plane is an infinite plane through a point with a non-zero normal. The
// normal's magnitude and sense carry no meaning for equality: two planes
// are equal iff they describe the same point set.
type Plane struct {
	point  *Point
	normal *Vector
}

// NewPlane builds a plane through p with normal n.
func NewPlane(p *Point, n *Vector) (*Plane, error) {
	if n.IsZero() {
		return nil, newZeroDirectionError("plane normal")
	}
	return &Plane{point: p, normal: n}, nil
}

// NewPlaneThrough builds the plane containing three non-collinear points,
// with normal (q-p) x (r-p).
func NewPlaneThrough(p, q, r *Point) (*Plane, error) {
	n := q.Sub(p).Cross(r.Sub(p))
	if n.IsZero() {
		return nil, newDegenerateError("plane", "defining points are collinear")
	}
	return &Plane{point: p, normal: n}, nil
}

// Point returns the plane's anchor point.
func (pl *Plane) Point() *Point { return pl.point }

// Normal returns the plane's normal vector.
func (pl *Plane) Normal() *Vector { return pl.normal }

// SignedDistanceNumerator returns dot(normal, pt - point): zero on the
// plane, positive on the normal side. Dividing by |normal|^2 gives the
// squared distance, but the sign alone decides sidedness exactly.
func (pl *Plane) SignedDistanceNumerator(pt *Point) *big.Rat {
	return pl.normal.Dot(pt.Sub(pl.point))
}

// Side returns the sign of pt relative to the plane: +1 on the normal
// side, -1 opposite, 0 on the plane.
func (pl *Plane) Side(pt *Point) int {
	return pl.SignedDistanceNumerator(pt).Sign()
}

// ContainsPoint reports exactly whether pt lies on the plane.
func (pl *Plane) ContainsPoint(pt *Point) bool {
	return pl.Side(pt) == 0
}

// IsParallelTo reports whether the two planes' normals are parallel.
func (pl *Plane) IsParallelTo(o *Plane) bool {
	return pl.normal.IsParallelTo(o.normal)
}

// Equal reports coplanarity: parallel normals and mutual containment.
// Normals of opposite sense or different magnitude still compare equal.
func (pl *Plane) Equal(o *Plane) bool {
	return pl.IsParallelTo(o) && pl.ContainsPoint(o.point)
}

// ContainsLine reports whether the whole line lies in the plane.
func (pl *Plane) ContainsLine(l *Line) bool {
	return pl.normal.Dot(l.Direction()).Sign() == 0 && pl.ContainsPoint(l.Point())
}

// Kind implements Geometry.
func (pl *Plane) Kind() Kind { return KindPlane }

// Bounds returns nil; a plane is unbounded.
func (pl *Plane) Bounds() *AABB { return nil }

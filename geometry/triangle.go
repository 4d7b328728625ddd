package geometry

import (
	"math/big"
	"sync"
)

// Triangle is a composite shape over three non-collinear points. Its plane
// and edge segments are memoized; both reference the triangle's own points,
// so they stay correct when a shared frame translates.
type Triangle struct {
	p, q, r *Point

	planeOnce sync.Once
	plane     *Plane

	edgesOnce sync.Once
	edges     [3]*LineSegment
}

// NewTriangle builds a triangle from three non-collinear points.
func NewTriangle(p, q, r *Point) (*Triangle, error) {
	if q.Sub(p).Cross(r.Sub(p)).IsZero() {
		return nil, newDegenerateError("triangle", "points are collinear")
	}
	return &Triangle{p: p, q: q, r: r}, nil
}

// P returns the first vertex; likewise Q and R.
func (t *Triangle) P() *Point { return t.p }

// Q returns the second vertex.
func (t *Triangle) Q() *Point { return t.q }

// R returns the third vertex.
func (t *Triangle) R() *Point { return t.r }

// Points returns the three vertices in construction order.
func (t *Triangle) Points() [3]*Point {
	return [3]*Point{t.p, t.q, t.r}
}

// Plane returns the plane containing the triangle, normal (q-p) x (r-p).
func (t *Triangle) Plane() *Plane {
	t.planeOnce.Do(func() {
		t.plane = &Plane{point: t.p, normal: t.q.Sub(t.p).Cross(t.r.Sub(t.p))}
	})
	return t.plane
}

// Edges returns the edge segments pq, qr, rp.
func (t *Triangle) Edges() [3]*LineSegment {
	t.edgesOnce.Do(func() {
		t.edges = [3]*LineSegment{
			{p: t.p, q: t.q},
			{p: t.q, q: t.r},
			{p: t.r, q: t.p},
		}
	})
	return t.edges
}

// AreaSquared returns the exact squared area, |(q-p) x (r-p)|^2 / 4.
func (t *Triangle) AreaSquared() *big.Rat {
	c := t.q.Sub(t.p).Cross(t.r.Sub(t.p))
	return new(big.Rat).Quo(c.MagnitudeSquared(), big.NewRat(4, 1))
}

// Centroid returns the absolute centroid.
func (t *Triangle) Centroid() *Point {
	sum := t.p.Vector().Add(t.q.Vector()).Add(t.r.Vector())
	return NewPointFromVector(sum.Scale(big.NewRat(1, 3)))
}

// ContainsPoint reports whether pt lies on the triangle, edges and
// vertices included. The point must be on the plane and on the inner side
// of (or exactly on) each edge.
func (t *Triangle) ContainsPoint(pt *Point) bool {
	pl := t.Plane()
	if !pl.ContainsPoint(pt) {
		return false
	}
	return t.containsCoplanarPoint(pt)
}

// containsCoplanarPoint runs only the edge half-plane tests; pt must
// already lie on the triangle's plane.
func (t *Triangle) containsCoplanarPoint(pt *Point) bool {
	n := t.Plane().normal
	verts := t.Points()
	for i := range verts {
		a, b := verts[i], verts[(i+1)%3]
		side := b.Sub(a).Cross(pt.Sub(a)).Dot(n)
		if side.Sign() < 0 {
			return false
		}
	}
	return true
}

// Kind implements Geometry.
func (t *Triangle) Kind() Kind { return KindTriangle }

// Bounds returns the triangle's bounding box, computed from the current
// vertex positions.
func (t *Triangle) Bounds() *AABB {
	b, _ := NewAABBFromPoints([]*Point{t.p, t.q, t.r})
	return b
}

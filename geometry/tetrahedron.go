package geometry

import (
	"math/big"
	"sync"
)

// Tetrahedron is a composite shape over four non-coplanar points with four
// triangular faces pqr, qsr, spr, psq. Construction reorders the first two
// vertices if needed so that each face's winding yields an outward-pointing
// normal.
type Tetrahedron struct {
	p, q, r, s *Point

	facesOnce sync.Once
	faces     [4]*Triangle
}

// NewTetrahedron builds a tetrahedron from four non-coplanar points.
func NewTetrahedron(p, q, r, s *Point) (*Tetrahedron, error) {
	d := q.Sub(p).Cross(r.Sub(p)).Dot(s.Sub(p))
	if d.Sign() == 0 {
		return nil, newDegenerateError("tetrahedron", "points are coplanar")
	}
	if d.Sign() > 0 {
		// s sits on the normal side of pqr; swap p and q so the face
		// windings below all point outward.
		p, q = q, p
	}
	return &Tetrahedron{p: p, q: q, r: r, s: s}, nil
}

// Points returns the four vertices.
func (t *Tetrahedron) Points() [4]*Point {
	return [4]*Point{t.p, t.q, t.r, t.s}
}

// Faces returns the four faces pqr, qsr, spr, psq with outward normals.
func (t *Tetrahedron) Faces() [4]*Triangle {
	t.facesOnce.Do(func() {
		t.faces = [4]*Triangle{
			{p: t.p, q: t.q, r: t.r},
			{p: t.q, q: t.s, r: t.r},
			{p: t.s, q: t.p, r: t.r},
			{p: t.p, q: t.s, r: t.q},
		}
	})
	return t.faces
}

// Volume returns the exact volume |det| / 6; no root extraction needed.
func (t *Tetrahedron) Volume() *big.Rat {
	d := t.q.Sub(t.p).Cross(t.r.Sub(t.p)).Dot(t.s.Sub(t.p))
	v := new(big.Rat).Quo(d, big.NewRat(6, 1))
	return v.Abs(v)
}

// ContainsPoint reports whether pt lies inside or on the tetrahedron: on
// the inner side of (or exactly on) every face plane.
func (t *Tetrahedron) ContainsPoint(pt *Point) bool {
	for _, f := range t.Faces() {
		if f.Plane().Side(pt) > 0 {
			return false
		}
	}
	return true
}

// Kind implements Geometry.
func (t *Tetrahedron) Kind() Kind { return KindTetrahedron }

// Bounds returns the bounding box over the current vertex positions.
func (t *Tetrahedron) Bounds() *AABB {
	b, _ := NewAABBFromPoints([]*Point{t.p, t.q, t.r, t.s})
	return b
}

package geometry

import (
	"math/big"
	"testing"

	"github.com/exactcad/geomkernel/prec"
)

var testCtx = prec.New(-9, prec.HalfEven)

func rt(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational literal: " + s)
	}
	return r
}

func pti(x, y, z int64) *Point {
	return NewPointFromInts(x, y, z)
}

func vci(x, y, z int64) *Vector {
	return NewVectorFromInts(x, y, z)
}

func mustSegment(t *testing.T, p, q *Point) *LineSegment {
	t.Helper()
	s, err := NewLineSegment(p, q)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func mustTriangle(t *testing.T, p, q, r *Point) *Triangle {
	t.Helper()
	tri, err := NewTriangle(p, q, r)
	if err != nil {
		t.Fatal(err)
	}
	return tri
}

func mustTetrahedron(t *testing.T, p, q, r, s *Point) *Tetrahedron {
	t.Helper()
	tet, err := NewTetrahedron(p, q, r, s)
	if err != nil {
		t.Fatal(err)
	}
	return tet
}

func mustLine(t *testing.T, p *Point, v *Vector) *Line {
	t.Helper()
	l, err := NewLine(p, v)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func mustPlane(t *testing.T, p *Point, n *Vector) *Plane {
	t.Helper()
	pl, err := NewPlane(p, n)
	if err != nil {
		t.Fatal(err)
	}
	return pl
}

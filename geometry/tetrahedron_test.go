package geometry

import (
	"testing"

	"go.viam.com/test"
)

func TestNewTetrahedronRejectsCoplanar(t *testing.T) {
	_, err := NewTetrahedron(pti(0, 0, 0), pti(1, 0, 0), pti(0, 1, 0), pti(1, 1, 0))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestTetrahedronVolume(t *testing.T) {
	// Unit corner tetrahedron: volume 1/6 regardless of vertex order.
	orders := [][4]*Point{
		{pti(0, 0, 0), pti(1, 0, 0), pti(0, 1, 0), pti(0, 0, 1)},
		{pti(1, 0, 0), pti(0, 0, 0), pti(0, 1, 0), pti(0, 0, 1)},
		{pti(0, 0, 1), pti(0, 1, 0), pti(1, 0, 0), pti(0, 0, 0)},
	}
	for _, o := range orders {
		tet := mustTetrahedron(t, o[0], o[1], o[2], o[3])
		test.That(t, tet.Volume().Cmp(rt("1/6")), test.ShouldEqual, 0)
	}
}

func TestTetrahedronFacesPointOutward(t *testing.T) {
	tet := mustTetrahedron(t, pti(0, 0, 0), pti(4, 0, 0), pti(0, 4, 0), pti(0, 0, 4))
	centroid := NewPoint(rt("1"), rt("1"), rt("1"))
	for _, f := range tet.Faces() {
		test.That(t, f.Plane().Side(centroid), test.ShouldEqual, -1)
	}
}

func TestTetrahedronContainsPoint(t *testing.T) {
	tet := mustTetrahedron(t, pti(0, 0, 0), pti(4, 0, 0), pti(0, 4, 0), pti(0, 0, 4))

	test.That(t, tet.ContainsPoint(pti(1, 1, 1)), test.ShouldBeTrue)
	// Vertices, edges, and faces count.
	test.That(t, tet.ContainsPoint(pti(0, 0, 0)), test.ShouldBeTrue)
	test.That(t, tet.ContainsPoint(pti(2, 0, 0)), test.ShouldBeTrue)
	test.That(t, tet.ContainsPoint(pti(1, 1, 2)), test.ShouldBeTrue)
	test.That(t, tet.ContainsPoint(pti(2, 2, 2)), test.ShouldBeFalse)
	test.That(t, tet.ContainsPoint(pti(-1, 1, 1)), test.ShouldBeFalse)
}

func TestTetrahedronBounds(t *testing.T) {
	tet := mustTetrahedron(t, pti(0, 0, 0), pti(4, 0, 0), pti(0, 4, 0), pti(0, 0, 4))
	b := tet.Bounds()
	for _, v := range tet.Points() {
		test.That(t, b.ContainsPoint(v), test.ShouldBeTrue)
	}
}

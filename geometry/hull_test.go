package geometry

import (
	"testing"

	"go.viam.com/test"
)

func hullHasPoint(h *Hull, p *Point) bool {
	for _, q := range h.Points() {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

func TestConvexHullThreePoints(t *testing.T) {
	pts := []*Point{pti(0, 0, 0), pti(4, 0, 0), pti(0, 4, 0)}
	h, err := ConvexHull(pts, vci(0, 0, 1))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(h.Points()), test.ShouldEqual, 3)
	test.That(t, h.IsTriangle(), test.ShouldBeTrue)
	test.That(t, h.IsRectangle(), test.ShouldBeFalse)
	for _, p := range pts {
		test.That(t, hullHasPoint(h, p), test.ShouldBeTrue)
	}
}

func TestConvexHullRectangle(t *testing.T) {
	corners := []*Point{pti(0, 0, 0), pti(4, 0, 0), pti(4, 2, 0), pti(0, 2, 0)}
	h, err := ConvexHull(corners, vci(0, 0, 1))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(h.Points()), test.ShouldEqual, 4)
	test.That(t, h.IsRectangle(), test.ShouldBeTrue)
	test.That(t, h.IsTriangle(), test.ShouldBeFalse)
	for _, p := range corners {
		test.That(t, hullHasPoint(h, p), test.ShouldBeTrue)
	}
}

func TestConvexHullDropsInteriorPoints(t *testing.T) {
	pts := []*Point{
		pti(0, 0, 0), pti(4, 0, 0), pti(4, 2, 0), pti(0, 2, 0),
		pti(2, 1, 0), pti(1, 1, 0),
	}
	h, err := ConvexHull(pts, vci(0, 0, 1))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(h.Points()), test.ShouldEqual, 4)
	test.That(t, h.IsRectangle(), test.ShouldBeTrue)
	test.That(t, hullHasPoint(h, pti(2, 1, 0)), test.ShouldBeFalse)
	test.That(t, hullHasPoint(h, pti(1, 1, 0)), test.ShouldBeFalse)
}

func TestConvexHullDropsEdgeInteriorPoints(t *testing.T) {
	// (2,0,0) sits on the hull boundary but is not a vertex.
	pts := []*Point{pti(0, 0, 0), pti(2, 0, 0), pti(4, 0, 0), pti(1, 1, 0)}
	h, err := ConvexHull(pts, vci(0, 0, 1))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, h.IsTriangle(), test.ShouldBeTrue)
	test.That(t, hullHasPoint(h, pti(2, 0, 0)), test.ShouldBeFalse)
	test.That(t, hullHasPoint(h, pti(0, 0, 0)), test.ShouldBeTrue)
	test.That(t, hullHasPoint(h, pti(4, 0, 0)), test.ShouldBeTrue)
	test.That(t, hullHasPoint(h, pti(1, 1, 0)), test.ShouldBeTrue)
}

func TestConvexHullDedupesInput(t *testing.T) {
	pts := []*Point{
		pti(0, 0, 0), pti(0, 0, 0), pti(3, 0, 0), pti(0, 3, 0), pti(3, 0, 0),
	}
	h, err := ConvexHull(pts, vci(0, 0, 1))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(h.Points()), test.ShouldEqual, 3)
}

func TestConvexHullPentagonWalkOrder(t *testing.T) {
	pts := []*Point{
		pti(0, 0, 0), pti(4, 0, 0), pti(5, 2, 0), pti(2, 4, 0), pti(-1, 2, 0),
	}
	h, err := ConvexHull(pts, vci(0, 0, 1))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(h.Points()), test.ShouldEqual, 5)

	// Consecutive boundary points always turn the same way: walking the
	// output, every cross product keeps one sign relative to the normal.
	walk := h.Points()
	n := len(walk)
	sign := 0
	for i := 0; i < n; i++ {
		a, b, c := walk[i], walk[(i+1)%n], walk[(i+2)%n]
		s := b.Sub(a).Cross(c.Sub(b)).Dot(vci(0, 0, 1)).Sign()
		if s == 0 {
			continue
		}
		if sign == 0 {
			sign = s
			continue
		}
		test.That(t, s, test.ShouldEqual, sign)
	}
}

func TestConvexHullErrors(t *testing.T) {
	_, err := ConvexHull(nil, vci(0, 0, 1))
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ConvexHull([]*Point{pti(0, 0, 0), pti(1, 0, 0)}, vci(0, 0, 1))
	test.That(t, err, test.ShouldNotBeNil)

	// Collinear sets have no area.
	_, err = ConvexHull([]*Point{pti(0, 0, 0), pti(1, 0, 0), pti(2, 0, 0), pti(3, 0, 0)}, vci(0, 0, 1))
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ConvexHull([]*Point{pti(0, 0, 0), pti(1, 0, 0), pti(0, 1, 0)}, ZeroVector())
	test.That(t, err, test.ShouldNotBeNil)
}

func TestConvexHullRationalCoordinates(t *testing.T) {
	half := NewPoint(rt("1/2"), rt("1/2"), rt("0"))
	pts := []*Point{pti(0, 0, 0), pti(1, 0, 0), pti(1, 1, 0), pti(0, 1, 0), half}
	h, err := ConvexHull(pts, vci(0, 0, 1))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(h.Points()), test.ShouldEqual, 4)
	test.That(t, hullHasPoint(h, half), test.ShouldBeFalse)
}

package geometry

import (
	"testing"

	"go.viam.com/test"
)

func TestAABBXFromPoints(t *testing.T) {
	pts := []*Point{pti(2, 0, 0), pti(2, 5, -1), pti(2, 3, 7)}
	b, err := NewAABBXFromPoints(pts)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b.X().Cmp(rt("2")), test.ShouldEqual, 0)
	test.That(t, b.YMin().Cmp(rt("0")), test.ShouldEqual, 0)
	test.That(t, b.YMax().Cmp(rt("5")), test.ShouldEqual, 0)
	test.That(t, b.ZMin().Cmp(rt("-1")), test.ShouldEqual, 0)
	test.That(t, b.ZMax().Cmp(rt("7")), test.ShouldEqual, 0)
	for _, p := range pts {
		test.That(t, b.ContainsPoint(p), test.ShouldBeTrue)
	}

	_, err = NewAABBXFromPoints([]*Point{pti(0, 0, 0), pti(1, 0, 0)})
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewAABBXFromPoints(nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestAABBXCornersAndSides(t *testing.T) {
	b, err := NewAABBX(rt("0"), rt("1"), rt("3"), rt("10"), rt("20"))
	test.That(t, err, test.ShouldBeNil)

	test.That(t, b.LL().Equal(pti(0, 1, 10)), test.ShouldBeTrue)
	test.That(t, b.LU().Equal(pti(0, 1, 20)), test.ShouldBeTrue)
	test.That(t, b.UU().Equal(pti(0, 3, 20)), test.ShouldBeTrue)
	test.That(t, b.UL().Equal(pti(0, 3, 10)), test.ShouldBeTrue)

	left := b.Left()
	test.That(t, left.Kind(), test.ShouldEqual, KindSegment)
	seg := left.(*LineSegment)
	test.That(t, seg.P().Y().Cmp(rt("1")), test.ShouldEqual, 0)
	test.That(t, seg.Q().Y().Cmp(rt("1")), test.ShouldEqual, 0)
}

func TestAABBXDegenerateSides(t *testing.T) {
	// Collapsed z extent: left/right faces are points, top/bottom are
	// still segments.
	b, err := NewAABBX(rt("0"), rt("0"), rt("4"), rt("5"), rt("5"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b.IsDegenerate(), test.ShouldBeTrue)
	test.That(t, b.Left().Kind(), test.ShouldEqual, KindPoint)
	test.That(t, b.Right().Kind(), test.ShouldEqual, KindPoint)
	test.That(t, b.Top().Kind(), test.ShouldEqual, KindSegment)
	test.That(t, b.Bottom().Kind(), test.ShouldEqual, KindSegment)
}

func TestAABBXPredicates(t *testing.T) {
	a, err := NewAABBX(rt("1"), rt("0"), rt("2"), rt("0"), rt("2"))
	test.That(t, err, test.ShouldBeNil)
	b, err := NewAABBX(rt("1"), rt("2"), rt("4"), rt("0"), rt("2"))
	test.That(t, err, test.ShouldBeNil)

	// Touching at y=2 counts as intersecting.
	test.That(t, a.Intersects(b), test.ShouldBeTrue)
	test.That(t, b.Intersects(a), test.ShouldBeTrue)
	test.That(t, a.IsBeyond(b), test.ShouldBeFalse)

	u, err := a.Union(b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, u.Contains(a), test.ShouldBeTrue)
	test.That(t, u.Contains(b), test.ShouldBeTrue)

	// Different planes cannot union.
	c, err := NewAABBX(rt("9"), rt("0"), rt("1"), rt("0"), rt("1"))
	test.That(t, err, test.ShouldBeNil)
	_, err = a.Union(c)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, a.IsBeyond(c), test.ShouldBeTrue)
}

func TestAABBYAccessorsIndependent(t *testing.T) {
	// Each accessor reads its own extent; no axis aliases another.
	b, err := NewAABBY(rt("7"), rt("1"), rt("2"), rt("3"), rt("4"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b.Y().Cmp(rt("7")), test.ShouldEqual, 0)
	test.That(t, b.XMin().Cmp(rt("1")), test.ShouldEqual, 0)
	test.That(t, b.XMax().Cmp(rt("2")), test.ShouldEqual, 0)
	test.That(t, b.ZMin().Cmp(rt("3")), test.ShouldEqual, 0)
	test.That(t, b.ZMax().Cmp(rt("4")), test.ShouldEqual, 0)

	test.That(t, b.LL().Equal(pti(1, 7, 3)), test.ShouldBeTrue)
	test.That(t, b.UU().Equal(pti(2, 7, 4)), test.ShouldBeTrue)
}

func TestAABBYFromPoints(t *testing.T) {
	b, err := NewAABBYFromPoints([]*Point{pti(0, 3, 0), pti(5, 3, 2)})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b.ContainsPoint(pti(2, 3, 1)), test.ShouldBeTrue)
	test.That(t, b.ContainsPoint(pti(2, 4, 1)), test.ShouldBeFalse)

	_, err = NewAABBYFromPoints([]*Point{pti(0, 3, 0), pti(5, 4, 2)})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestAABBZAccessorsIndependent(t *testing.T) {
	b, err := NewAABBZ(rt("-2"), rt("10"), rt("11"), rt("12"), rt("13"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b.Z().Cmp(rt("-2")), test.ShouldEqual, 0)
	test.That(t, b.XMin().Cmp(rt("10")), test.ShouldEqual, 0)
	test.That(t, b.XMax().Cmp(rt("11")), test.ShouldEqual, 0)
	test.That(t, b.YMin().Cmp(rt("12")), test.ShouldEqual, 0)
	test.That(t, b.YMax().Cmp(rt("13")), test.ShouldEqual, 0)
}

func TestAABBZSidesAndPlanes(t *testing.T) {
	b, err := NewAABBZ(rt("0"), rt("0"), rt("2"), rt("0"), rt("2"))
	test.That(t, err, test.ShouldBeNil)

	top := b.Top()
	test.That(t, top.Kind(), test.ShouldEqual, KindSegment)
	seg := top.(*LineSegment)
	test.That(t, seg.P().Y().Cmp(rt("2")), test.ShouldEqual, 0)

	test.That(t, b.TopPlane().ContainsPoint(pti(1, 2, 0)), test.ShouldBeTrue)
	test.That(t, b.BottomPlane().ContainsPoint(pti(1, 0, 0)), test.ShouldBeTrue)
	test.That(t, b.LeftPlane().ContainsPoint(pti(0, 1, 0)), test.ShouldBeTrue)
	test.That(t, b.RightPlane().ContainsPoint(pti(2, 1, 0)), test.ShouldBeTrue)
}

func TestProjectionTo3DRoundTrip(t *testing.T) {
	x, err := NewAABBX(rt("5"), rt("0"), rt("1"), rt("0"), rt("1"))
	test.That(t, err, test.ShouldBeNil)
	b3 := x.To3D()
	test.That(t, b3.XMin().Cmp(rt("5")), test.ShouldEqual, 0)
	test.That(t, b3.XMax().Cmp(rt("5")), test.ShouldEqual, 0)
	test.That(t, b3.IsDegenerate(), test.ShouldBeTrue)
}

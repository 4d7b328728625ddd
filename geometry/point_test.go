package geometry

import (
	"testing"

	"go.viam.com/test"
)

func TestPointEqualAcrossFrames(t *testing.T) {
	// Equality depends on resolved absolutes, not on the offset/rel split.
	f := NewFrame(vci(10, 0, 0))
	relative := f.Point(vci(-9, 2, 3))
	absolute := pti(1, 2, 3)
	test.That(t, relative.Equal(absolute), test.ShouldBeTrue)
	test.That(t, absolute.Equal(relative), test.ShouldBeTrue)
}

func TestFrameTranslateMovesAllPoints(t *testing.T) {
	f := NewFrame(nil)
	a := f.Point(vci(0, 0, 0))
	b := f.Point(vci(1, 0, 0))

	f.Translate(vci(0, 5, 0))

	test.That(t, a.Equal(pti(0, 5, 0)), test.ShouldBeTrue)
	test.That(t, b.Equal(pti(1, 5, 0)), test.ShouldBeTrue)
	// Relative vectors are untouched by the move.
	test.That(t, b.Rel().Equal(vci(1, 0, 0)), test.ShouldBeTrue)
}

func TestFrameTranslatePreservesShape(t *testing.T) {
	f := NewFrame(nil)
	p := f.PointAt(rt("0"), rt("0"), rt("0"))
	q := f.PointAt(rt("3"), rt("4"), rt("0"))
	s := mustSegment(t, p, q)

	before := s.LengthSquared()
	f.Translate(vci(100, -7, 55))
	after := s.LengthSquared()

	test.That(t, before.Cmp(after), test.ShouldEqual, 0)
	test.That(t, after.Cmp(rt("25")), test.ShouldEqual, 0)
}

func TestDistanceSquaredSymmetric(t *testing.T) {
	p := NewPoint(rt("1/3"), rt("0"), rt("-2"))
	q := pti(4, 5, 6)
	test.That(t, p.DistanceSquaredTo(q).Cmp(q.DistanceSquaredTo(p)), test.ShouldEqual, 0)
}

func TestDistanceToSelfIsExactZero(t *testing.T) {
	p := NewPoint(rt("22/7"), rt("1/3"), rt("0"))
	d, err := p.DistanceTo(p, testCtx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d.Sign(), test.ShouldEqual, 0)
}

func TestPointSub(t *testing.T) {
	f := NewFrame(vci(5, 5, 5))
	a := f.Point(vci(1, 0, 0))
	b := f.Point(vci(0, 2, 0))
	// Same-frame difference must not depend on the offset.
	test.That(t, a.Sub(b).Equal(vci(1, -2, 0)), test.ShouldBeTrue)

	c := pti(6, 5, 5)
	test.That(t, a.Sub(c).IsZero(), test.ShouldBeTrue)
}

func TestPointBounds(t *testing.T) {
	b := pti(2, 3, 4).Bounds()
	test.That(t, b.IsPoint(), test.ShouldBeTrue)
	test.That(t, b.ContainsPoint(pti(2, 3, 4)), test.ShouldBeTrue)
}

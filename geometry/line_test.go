package geometry

import (
	"testing"

	"go.viam.com/test"
)

func TestNewLineRejectsZeroDirection(t *testing.T) {
	_, err := NewLine(pti(0, 0, 0), ZeroVector())
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewLineThrough(pti(1, 2, 3), pti(1, 2, 3))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestLineContainsPoint(t *testing.T) {
	l := mustLine(t, pti(0, 0, 0), vci(1, 2, 3))
	test.That(t, l.ContainsPoint(pti(2, 4, 6)), test.ShouldBeTrue)
	test.That(t, l.ContainsPoint(pti(-1, -2, -3)), test.ShouldBeTrue)
	test.That(t, l.ContainsPoint(pti(1, 2, 4)), test.ShouldBeFalse)
}

func TestLinePointAt(t *testing.T) {
	l := mustLine(t, pti(1, 0, 0), vci(0, 2, 0))
	test.That(t, l.PointAt(rt("1/2")).Equal(pti(1, 1, 0)), test.ShouldBeTrue)
	test.That(t, l.PointAt(rt("-1")).Equal(pti(1, -2, 0)), test.ShouldBeTrue)
}

func TestLineCoincides(t *testing.T) {
	l1 := mustLine(t, pti(0, 0, 0), vci(1, 1, 1))
	l2 := mustLine(t, pti(5, 5, 5), vci(-2, -2, -2))
	test.That(t, l1.Coincides(l2), test.ShouldBeTrue)

	shifted := mustLine(t, pti(0, 1, 0), vci(1, 1, 1))
	test.That(t, l1.IsParallelTo(shifted), test.ShouldBeTrue)
	test.That(t, l1.Coincides(shifted), test.ShouldBeFalse)
}

func TestRayContainsPoint(t *testing.T) {
	r, err := NewRay(pti(1, 0, 0), vci(1, 0, 0))
	test.That(t, err, test.ShouldBeNil)
	// The base point itself is on the ray.
	test.That(t, r.ContainsPoint(pti(1, 0, 0)), test.ShouldBeTrue)
	test.That(t, r.ContainsPoint(pti(10, 0, 0)), test.ShouldBeTrue)
	test.That(t, r.ContainsPoint(pti(0, 0, 0)), test.ShouldBeFalse)
	test.That(t, r.ContainsPoint(pti(2, 1, 0)), test.ShouldBeFalse)
}

func TestUnboundedGeometriesHaveNoBounds(t *testing.T) {
	l := mustLine(t, pti(0, 0, 0), vci(1, 0, 0))
	test.That(t, l.Bounds(), test.ShouldBeNil)
	r, err := NewRay(pti(0, 0, 0), vci(1, 0, 0))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, r.Bounds(), test.ShouldBeNil)
}

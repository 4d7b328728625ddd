package geometry

import (
	"context"
	"math/big"
	"testing"

	"go.viam.com/test"
)

func TestAnyIntersects(t *testing.T) {
	ctx := context.Background()
	s := mustSegment(t, pti(0, 0, 0), pti(2, 0, 0))

	others := []Geometry{
		pti(50, 50, 50),
		mustSegment(t, pti(10, 0, 0), pti(11, 0, 0)),
		pti(1, 0, 0),
	}
	hit, err := AnyIntersects(ctx, s, others, testCtx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hit, test.ShouldBeTrue)

	misses := []Geometry{pti(50, 50, 50), pti(-3, 1, 0)}
	hit, err = AnyIntersects(ctx, s, misses, testCtx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hit, test.ShouldBeFalse)

	hit, err = AnyIntersects(ctx, s, nil, testCtx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hit, test.ShouldBeFalse)
}

func TestAllDistancesSquaredOrderStable(t *testing.T) {
	ctx := context.Background()
	p := pti(0, 0, 0)

	others := []Geometry{
		pti(3, 4, 0),
		pti(1, 0, 0),
		mustSegment(t, pti(0, 2, 0), pti(5, 2, 0)),
		p,
	}
	out, err := AllDistancesSquared(ctx, p, others, testCtx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(out), test.ShouldEqual, len(others))
	test.That(t, out[0].Cmp(rt("25")), test.ShouldEqual, 0)
	test.That(t, out[1].Cmp(rt("1")), test.ShouldEqual, 0)
	test.That(t, out[2].Cmp(rt("4")), test.ShouldEqual, 0)
	test.That(t, out[3].Sign(), test.ShouldEqual, 0)
}

func TestAllDistancesSquaredRangeSplit(t *testing.T) {
	// Enough candidates to split across several worker ranges, and a single
	// candidate where the groups clamp down to one; every slot must land at
	// its own index.
	ctx := context.Background()
	p := pti(0, 0, 0)

	for _, n := range []int{1, 100} {
		others := make([]Geometry, n)
		for i := range others {
			others[i] = pti(int64(i), 0, 0)
		}
		out, err := AllDistancesSquared(ctx, p, others, testCtx)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(out), test.ShouldEqual, n)
		for i, d2 := range out {
			want := big.NewRat(int64(i)*int64(i), 1)
			test.That(t, d2.Cmp(want), test.ShouldEqual, 0)
		}
	}

	out, err := AllDistancesSquared(ctx, p, nil, testCtx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(out), test.ShouldEqual, 0)
}

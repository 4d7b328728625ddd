package prec

import (
	"math/big"
	"testing"

	"go.viam.com/test"
)

func rat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational literal: " + s)
	}
	return r
}

func TestRound(t *testing.T) {
	cases := []struct {
		ctx      Context
		in, want string
	}{
		{New(-3, Floor), "1/3", "333/1000"},
		{New(-3, Ceil), "1/3", "334/1000"},
		{New(-3, HalfUp), "1/3", "333/1000"},
		{New(-3, Floor), "-1/3", "-334/1000"},
		{New(-3, Ceil), "-1/3", "-333/1000"},
		{New(-3, AwayFromZero), "-1/3", "-334/1000"},
		{New(0, HalfUp), "5/2", "3"},
		{New(0, HalfDown), "5/2", "2"},
		{New(0, HalfEven), "5/2", "2"},
		{New(0, HalfEven), "7/2", "4"},
		{New(0, HalfUp), "-5/2", "-3"},
		{New(0, HalfDown), "-5/2", "-2"},
		{New(2, Floor), "1234", "1200"},
		{New(2, Ceil), "1234", "1300"},
	}
	for _, c := range cases {
		got := c.ctx.Round(rat(c.in))
		test.That(t, got.Cmp(rat(c.want)), test.ShouldEqual, 0)
	}
}

func TestRoundIdempotent(t *testing.T) {
	ctx := New(-6, HalfEven)
	once := ctx.Round(rat("22/7"))
	twice := ctx.Round(once)
	test.That(t, once.Cmp(twice), test.ShouldEqual, 0)
}

func TestRoundOnGridPassesThrough(t *testing.T) {
	ctx := New(-2, Ceil)
	x := rat("125/100")
	test.That(t, ctx.Round(x).Cmp(x), test.ShouldEqual, 0)
}

func TestSqrtExact(t *testing.T) {
	ctx := New(-3, HalfUp)

	got, err := ctx.Sqrt(rat("9/4"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got.Cmp(rat("3/2")), test.ShouldEqual, 0)

	// Zero is exact; no rounding, no error.
	got, err = ctx.Sqrt(new(big.Rat))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got.Sign(), test.ShouldEqual, 0)
}

func TestSqrtApproximate(t *testing.T) {
	// sqrt(2) = 1.41421356...
	cases := []struct {
		ctx  Context
		want string
	}{
		{New(-3, Floor), "1414/1000"},
		{New(-3, Ceil), "1415/1000"},
		{New(-3, HalfUp), "1414/1000"},
		{New(-1, HalfUp), "14/10"},
		{New(0, HalfUp), "1"},
	}
	for _, c := range cases {
		got, err := c.ctx.Sqrt(rat("2"))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, got.Cmp(rat(c.want)), test.ShouldEqual, 0)
	}
}

func TestSqrtConvergence(t *testing.T) {
	// Finer contexts must never move the result by more than the coarser
	// context's grid step.
	coarse, err := New(-2, Floor).Sqrt(rat("5"))
	test.That(t, err, test.ShouldBeNil)
	fine, err := New(-9, Floor).Sqrt(rat("5"))
	test.That(t, err, test.ShouldBeNil)
	diff := new(big.Rat).Sub(fine, coarse)
	test.That(t, diff.Sign(), test.ShouldBeGreaterThanOrEqualTo, 0)
	test.That(t, diff.Cmp(rat("1/100")), test.ShouldEqual, -1)
}

func TestSqrtNegative(t *testing.T) {
	_, err := New(-3, Floor).Sqrt(rat("-1"))
	test.That(t, err, test.ShouldNotBeNil)
}

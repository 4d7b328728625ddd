// Package testutils holds construction helpers shared by the kernel's
// tests: rational literals and common geometry, failing the test on bad
// input instead of returning errors.
package testutils

import (
	"math/big"
	"testing"

	"github.com/exactcad/geomkernel/geometry"
)

// Rat parses a rational literal like "1/3" or "-2".
func Rat(tb testing.TB, s string) *big.Rat {
	tb.Helper()
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		tb.Fatalf("bad rational literal %q", s)
	}
	return r
}

// Vec builds a vector from rational literals.
func Vec(tb testing.TB, x, y, z string) *geometry.Vector {
	tb.Helper()
	return geometry.NewVector(Rat(tb, x), Rat(tb, y), Rat(tb, z))
}

// Point builds an absolute point from rational literals.
func Point(tb testing.TB, x, y, z string) *geometry.Point {
	tb.Helper()
	return geometry.NewPoint(Rat(tb, x), Rat(tb, y), Rat(tb, z))
}

// Segment builds a segment, failing on degenerate input.
func Segment(tb testing.TB, p, q *geometry.Point) *geometry.LineSegment {
	tb.Helper()
	s, err := geometry.NewLineSegment(p, q)
	if err != nil {
		tb.Fatal(err)
	}
	return s
}

// Triangle builds a triangle, failing on degenerate input.
func Triangle(tb testing.TB, p, q, r *geometry.Point) *geometry.Triangle {
	tb.Helper()
	tri, err := geometry.NewTriangle(p, q, r)
	if err != nil {
		tb.Fatal(err)
	}
	return tri
}

// FrameAt builds a frame offset by the given rational literals.
func FrameAt(tb testing.TB, x, y, z string) *geometry.Frame {
	tb.Helper()
	return geometry.NewFrame(Vec(tb, x, y, z))
}

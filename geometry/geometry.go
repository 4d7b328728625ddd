// Package geometry implements an exact-arithmetic 3D geometry kernel.
//
// Every coordinate is an arbitrary-precision rational (math/big.Rat) and
// every predicate is decided exactly; irrational values (lengths, certain
// intersection coordinates) are materialized only on output, rounded under
// a caller-supplied prec.Context. Comparisons prefer squared quantities,
// which stay rational, over rounded roots.
package geometry

import "math/big"

// Kind tags the primitive type of a Geometry for pairwise dispatch.
type Kind int

// The primitive kinds participating in intersection/distance dispatch.
const (
	KindPoint Kind = iota
	KindLine
	KindRay
	KindSegment
	KindPlane
	KindTriangle
	KindTetrahedron
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindRay:
		return "ray"
	case KindSegment:
		return "segment"
	case KindPlane:
		return "plane"
	case KindTriangle:
		return "triangle"
	case KindTetrahedron:
		return "tetrahedron"
	default:
		return "unknown"
	}
}

// Geometry is the capability surface shared by all primitives. Bounds
// returns nil for unbounded primitives (lines, rays, planes); bounded
// primitives return an axis-aligned box used to prune exact tests.
type Geometry interface {
	Kind() Kind
	Bounds() *AABB
}

var (
	ratZero = big.NewRat(0, 1)
	ratOne  = big.NewRat(1, 1)
	ratHalf = big.NewRat(1, 2)
)

// minRat and maxRat return the extreme of two rationals without copying.
func minRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func maxRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

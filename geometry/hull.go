package geometry

import (
	"math/big"
)

// Hull is the ordered boundary of a coplanar point set. The point list
// walks the boundary; interior points never appear.
type Hull struct {
	points []*Point
}

// Points returns the boundary points in walking order.
func (h *Hull) Points() []*Point {
	return h.points
}

// IsTriangle reports a three-point hull.
func (h *Hull) IsTriangle() bool {
	return len(h.points) == 3
}

// IsRectangle reports a four-point hull whose corners form a rectangle:
// one right angle plus the parallelogram completion pins down all four.
func (h *Hull) IsRectangle() bool {
	if len(h.points) != 4 {
		return false
	}
	p0, p1, p2, p3 := h.points[0], h.points[1], h.points[2], h.points[3]
	e01 := p1.Sub(p0)
	e03 := p3.Sub(p0)
	if e01.Dot(e03).Sign() != 0 {
		return false
	}
	return p2.Sub(p1).Equal(e03)
}

// ConvexHull computes the ordered convex boundary of a coplanar point set.
// The orientation normal fixes which side counts as "above" the recursive
// partition planes; it must not be parallel to the points' plane. At least
// three non-collinear points are required.
//
// Points falling exactly on a partition plane are discarded only when
// their projection parameter proves them interior; on-plane points beyond
// the partition segment stay candidates for both half-spaces. Silently
// dropping every on-plane point would lose legitimate boundary points in
// symmetric inputs.
func ConvexHull(points []*Point, normal *Vector) (*Hull, error) {
	if len(points) == 0 {
		return nil, newEmptyPointsError("convex hull")
	}
	if normal.IsZero() {
		return nil, newZeroDirectionError("convex hull orientation")
	}
	pts := dedupePoints(points)
	if len(pts) < 3 {
		return nil, newDegenerateError("convex hull", "fewer than three distinct points")
	}

	a, b := hullDiameter(pts)
	axis := b.Sub(a)
	if collinearSet(pts, a, axis) {
		return nil, newDegenerateError("convex hull", "points are collinear")
	}

	var above, below []*Point
	for _, p := range pts {
		if p.Equal(a) || p.Equal(b) {
			continue
		}
		side := axis.Cross(p.Sub(a)).Dot(normal).Sign()
		switch {
		case side > 0:
			above = append(above, p)
		case side < 0:
			below = append(below, p)
		default:
			// On the diameter line. Interior iff between the endpoints.
			t := new(big.Rat).Quo(p.Sub(a).Dot(axis), axis.MagnitudeSquared())
			if t.Sign() < 0 || t.Cmp(ratOne) > 0 {
				above = append(above, p)
				below = append(below, p)
			}
		}
	}

	out := []*Point{a}
	out = append(out, hullSide(a, b, above, normal)...)
	out = append(out, b)
	out = append(out, hullSide(b, a, below, normal)...)
	// An on-plane point kept in both half-spaces can surface twice.
	return &Hull{points: dedupePoints(out)}, nil
}

// dedupePoints drops exact coordinate duplicates, keeping first
// occurrences in order.
func dedupePoints(points []*Point) []*Point {
	var out []*Point
	for _, p := range points {
		dup := false
		for _, q := range out {
			if p.Equal(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

func collinearSet(pts []*Point, base *Point, axis *Vector) bool {
	for _, p := range pts {
		if !axis.Cross(p.Sub(base)).IsZero() {
			return false
		}
	}
	return true
}

// hullDiameter picks the initial diameter: per axis the extreme-coordinate
// point pair, then the pair among those with the greatest squared
// separation.
func hullDiameter(pts []*Point) (*Point, *Point) {
	coord := []func(*Point) *big.Rat{
		func(p *Point) *big.Rat { return p.X() },
		func(p *Point) *big.Rat { return p.Y() },
		func(p *Point) *big.Rat { return p.Z() },
	}
	var bestA, bestB *Point
	var bestSep *big.Rat
	for _, c := range coord {
		lo, hi := pts[0], pts[0]
		for _, p := range pts[1:] {
			if c(p).Cmp(c(lo)) < 0 {
				lo = p
			}
			if c(p).Cmp(c(hi)) > 0 {
				hi = p
			}
		}
		sep := lo.DistanceSquaredTo(hi)
		if bestSep == nil || sep.Cmp(bestSep) > 0 {
			bestA, bestB, bestSep = lo, hi, sep
		}
	}
	return bestA, bestB
}

// hullSide recursively expands the hull boundary strictly above the
// partition segment from a to b, returning the new boundary points in
// walking order from a toward b.
func hullSide(a, b *Point, candidates []*Point, normal *Vector) []*Point {
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return []*Point{candidates[0]}
	}

	axis := b.Sub(a)
	// Farthest point from the partition line; ties resolved by first hit.
	var apex *Point
	var bestNum *big.Rat
	for _, p := range candidates {
		num := axis.Cross(p.Sub(a)).MagnitudeSquared()
		if bestNum == nil || num.Cmp(bestNum) > 0 {
			apex, bestNum = p, num
		}
	}

	tri := &Triangle{p: a, q: b, r: apex}
	var left, right []*Point
	leftAxis := apex.Sub(a)
	rightAxis := b.Sub(apex)
	for _, p := range candidates {
		if p.Equal(apex) {
			continue
		}
		if tri.ContainsPoint(p) {
			// Interior to the hull triangle; discard.
			continue
		}
		if leftAxis.Cross(p.Sub(a)).Dot(normal).Sign() > 0 {
			left = append(left, p)
			continue
		}
		if rightAxis.Cross(p.Sub(apex)).Dot(normal).Sign() > 0 {
			right = append(right, p)
		}
	}

	out := hullSide(a, apex, left, normal)
	out = append(out, apex)
	out = append(out, hullSide(apex, b, right, normal)...)
	return out
}

package geometry

import (
	"math/big"

	"github.com/exactcad/geomkernel/prec"
)

type distanceFunc func(a, b Geometry) *big.Rat

// DistanceSquared computes the exact squared distance between two
// primitives. The result is a rational with no rounding applied, making it
// the reliable form for comparisons.
func DistanceSquared(a, b Geometry, ctx prec.Context) (*big.Rat, error) {
	if fn, ok := distanceSquaredFuncs[pairKey{a.Kind(), b.Kind()}]; ok {
		return fn(a, b), nil
	}
	if fn, ok := distanceSquaredFuncs[pairKey{b.Kind(), a.Kind()}]; ok {
		return fn(b, a), nil
	}
	return nil, NewUnsupportedError("distance", a.Kind(), b.Kind())
}

// Distance materializes the distance under ctx with a single root
// extraction. Touching or intersecting operands yield exactly zero with no
// root extracted.
func Distance(a, b Geometry, ctx prec.Context) (*big.Rat, error) {
	d2, err := DistanceSquared(a, b, ctx)
	if err != nil {
		return nil, err
	}
	if d2.Sign() == 0 {
		return new(big.Rat), nil
	}
	return ctx.Sqrt(d2)
}

var distanceSquaredFuncs = map[pairKey]distanceFunc{
	{KindPoint, KindPoint}:       distPointPoint,
	{KindPoint, KindLine}:        distPointLinear,
	{KindPoint, KindRay}:         distPointLinear,
	{KindPoint, KindSegment}:     distPointLinear,
	{KindPoint, KindPlane}:       distPointPlane,
	{KindPoint, KindTriangle}:    distPointTriangle,
	{KindPoint, KindTetrahedron}: distPointTetrahedron,

	{KindLine, KindLine}:       distLinearLinear,
	{KindLine, KindRay}:        distLinearLinear,
	{KindLine, KindSegment}:    distLinearLinear,
	{KindRay, KindRay}:         distLinearLinear,
	{KindRay, KindSegment}:     distLinearLinear,
	{KindSegment, KindSegment}: distLinearLinear,

	{KindLine, KindPlane}:    distLinearPlane,
	{KindRay, KindPlane}:     distLinearPlane,
	{KindSegment, KindPlane}: distLinearPlane,

	{KindLine, KindTriangle}:    distLinearTriangle,
	{KindRay, KindTriangle}:     distLinearTriangle,
	{KindSegment, KindTriangle}: distLinearTriangle,

	{KindLine, KindTetrahedron}:    distLinearTetrahedron,
	{KindRay, KindTetrahedron}:     distLinearTetrahedron,
	{KindSegment, KindTetrahedron}: distLinearTetrahedron,

	{KindPlane, KindPlane}:       distPlanePlane,
	{KindPlane, KindTriangle}:    distPlaneTriangle,
	{KindPlane, KindTetrahedron}: distPlaneTetrahedron,

	{KindTriangle, KindTriangle}:       distTriangleTriangle,
	{KindTriangle, KindTetrahedron}:    distTriangleTetrahedron,
	{KindTetrahedron, KindTetrahedron}: distTetrahedronTetrahedron,
}

func distPointPoint(a, b Geometry) *big.Rat {
	return a.(*Point).DistanceSquaredTo(b.(*Point))
}

// pointSpanDistSq projects the point onto the span's line, clamps the foot
// into the parameter interval, and measures to the clamped foot. The
// out-of-range projections collapse to endpoint distances.
func pointSpanDistSq(pt *Point, s span) *big.Rat {
	t := new(big.Rat).Quo(pt.Sub(s.base).Dot(s.dir), s.dir.MagnitudeSquared())
	return pt.DistanceSquaredTo(s.pointAt(s.clampParam(t)))
}

func distPointLinear(a, b Geometry) *big.Rat {
	s, _ := spanOf(b)
	return pointSpanDistSq(a.(*Point), s)
}

// pointPlaneDistSq is num^2 / |n|^2 for the signed distance numerator num.
func pointPlaneDistSq(pt *Point, pl *Plane) *big.Rat {
	num := pl.SignedDistanceNumerator(pt)
	sq := new(big.Rat).Mul(num, num)
	return sq.Quo(sq, pl.normal.MagnitudeSquared())
}

func distPointPlane(a, b Geometry) *big.Rat {
	return pointPlaneDistSq(a.(*Point), b.(*Plane))
}

// projectOntoPlane drops pt perpendicularly onto the plane.
func projectOntoPlane(pt *Point, pl *Plane) *Point {
	num := pl.SignedDistanceNumerator(pt)
	k := new(big.Rat).Quo(num, pl.normal.MagnitudeSquared())
	return NewPointFromVector(pt.Vector().Sub(pl.normal.Scale(k)))
}

func pointTriangleDistSq(pt *Point, tri *Triangle) *big.Rat {
	pl := tri.Plane()
	if foot := projectOntoPlane(pt, pl); tri.containsCoplanarPoint(foot) {
		return pointPlaneDistSq(pt, pl)
	}
	var best *big.Rat
	for _, e := range tri.Edges() {
		s, _ := spanOf(e)
		d := pointSpanDistSq(pt, s)
		if best == nil || d.Cmp(best) < 0 {
			best = d
		}
	}
	return best
}

func distPointTriangle(a, b Geometry) *big.Rat {
	return pointTriangleDistSq(a.(*Point), b.(*Triangle))
}

func pointTetrahedronDistSq(pt *Point, tet *Tetrahedron) *big.Rat {
	if tet.ContainsPoint(pt) {
		return new(big.Rat)
	}
	var best *big.Rat
	for _, f := range tet.Faces() {
		d := pointTriangleDistSq(pt, f)
		if best == nil || d.Cmp(best) < 0 {
			best = d
		}
	}
	return best
}

func distPointTetrahedron(a, b Geometry) *big.Rat {
	return pointTetrahedronDistSq(a.(*Point), b.(*Tetrahedron))
}

// spanSpanDistSq finds the shortest squared distance between two spans:
// the interior critical point when it is feasible, otherwise the best of
// the endpoint-versus-span candidates. Two full parallel lines have no
// endpoints and fall back to the constant perpendicular distance.
func spanSpanDistSq(s1, s2 span) *big.Rat {
	d1, d2 := s1.dir, s2.dir
	w := s2.base.Sub(s1.base)
	aa := d1.MagnitudeSquared()
	bb := d1.Dot(d2)
	cc := d2.MagnitudeSquared()
	dd := d1.Dot(w)
	ee := d2.Dot(w)
	den := new(big.Rat).Sub(new(big.Rat).Mul(bb, bb), new(big.Rat).Mul(aa, cc))

	var best *big.Rat
	consider := func(d *big.Rat) {
		if best == nil || d.Cmp(best) < 0 {
			best = d
		}
	}

	if den.Sign() != 0 {
		t := new(big.Rat).Quo(new(big.Rat).Sub(new(big.Rat).Mul(bb, ee), new(big.Rat).Mul(cc, dd)), den)
		u := new(big.Rat).Quo(new(big.Rat).Sub(new(big.Rat).Mul(aa, ee), new(big.Rat).Mul(bb, dd)), den)
		if s1.contains(t) && s2.contains(u) {
			diff := w.Neg().Add(d1.Scale(t)).Sub(d2.Scale(u))
			consider(diff.MagnitudeSquared())
		}
	}
	for _, t := range s1.finiteBounds() {
		consider(pointSpanDistSq(s1.pointAt(t), s2))
	}
	for _, u := range s2.finiteBounds() {
		consider(pointSpanDistSq(s2.pointAt(u), s1))
	}
	if best == nil {
		// Parallel lines with no endpoints anywhere.
		return pointSpanDistSq(s2.base, s1)
	}
	return best
}

func distLinearLinear(a, b Geometry) *big.Rat {
	s1, _ := spanOf(a)
	s2, _ := spanOf(b)
	return spanSpanDistSq(s1, s2)
}

func spanPlaneDistSq(s span, pl *Plane) *big.Rat {
	denom := pl.normal.Dot(s.dir)
	if denom.Sign() == 0 {
		return pointPlaneDistSq(s.base, pl)
	}
	num := pl.normal.Dot(pl.point.Sub(s.base))
	t := new(big.Rat).Quo(num, denom)
	if s.contains(t) {
		return new(big.Rat)
	}
	return pointPlaneDistSq(s.pointAt(s.clampParam(t)), pl)
}

func distLinearPlane(a, b Geometry) *big.Rat {
	s, _ := spanOf(a)
	return spanPlaneDistSq(s, b.(*Plane))
}

func spanTriangleDistSq(s span, tri *Triangle) *big.Rat {
	if intersectSpanTriangle(s, tri) != nil {
		return new(big.Rat)
	}
	pl := tri.Plane()
	var best *big.Rat
	consider := func(d *big.Rat) {
		if best == nil || d.Cmp(best) < 0 {
			best = d
		}
	}
	if pl.normal.Dot(s.dir).Sign() == 0 {
		// Parallel to the face: if the perpendicular projection lands
		// inside the triangle the gap itself is the answer.
		shadow := span{base: projectOntoPlane(s.base, pl), dir: s.dir, lo: s.lo, hi: s.hi}
		if clipSpanToTriangle(shadow, tri) != nil {
			consider(pointPlaneDistSq(s.base, pl))
		}
	}
	for _, t := range s.finiteBounds() {
		consider(pointTriangleDistSq(s.pointAt(t), tri))
	}
	for _, e := range tri.Edges() {
		es, _ := spanOf(e)
		consider(spanSpanDistSq(s, es))
	}
	return best
}

func distLinearTriangle(a, b Geometry) *big.Rat {
	s, _ := spanOf(a)
	return spanTriangleDistSq(s, b.(*Triangle))
}

func spanTetrahedronDistSq(s span, tet *Tetrahedron) *big.Rat {
	if intersectSpanTetrahedron(s, tet) != nil {
		return new(big.Rat)
	}
	var best *big.Rat
	for _, f := range tet.Faces() {
		d := spanTriangleDistSq(s, f)
		if best == nil || d.Cmp(best) < 0 {
			best = d
		}
	}
	return best
}

func distLinearTetrahedron(a, b Geometry) *big.Rat {
	s, _ := spanOf(a)
	return spanTetrahedronDistSq(s, b.(*Tetrahedron))
}

func distPlanePlane(a, b Geometry) *big.Rat {
	pa, pb := a.(*Plane), b.(*Plane)
	if pa.IsParallelTo(pb) {
		return pointPlaneDistSq(pb.point, pa)
	}
	return new(big.Rat)
}

func distPlaneTriangle(a, b Geometry) *big.Rat {
	pl, tri := a.(*Plane), b.(*Triangle)
	var best *big.Rat
	neg, pos := false, false
	for _, v := range tri.Points() {
		switch pl.Side(v) {
		case -1:
			neg = true
		case 1:
			pos = true
		}
		d := pointPlaneDistSq(v, pl)
		if best == nil || d.Cmp(best) < 0 {
			best = d
		}
	}
	if neg && pos {
		return new(big.Rat)
	}
	return best
}

func distPlaneTetrahedron(a, b Geometry) *big.Rat {
	pl, tet := a.(*Plane), b.(*Tetrahedron)
	var best *big.Rat
	neg, pos := false, false
	for _, v := range tet.Points() {
		switch pl.Side(v) {
		case -1:
			neg = true
		case 1:
			pos = true
		}
		d := pointPlaneDistSq(v, pl)
		if best == nil || d.Cmp(best) < 0 {
			best = d
		}
	}
	if neg && pos {
		return new(big.Rat)
	}
	return best
}

func triangleTriangleDistSq(ta, tb *Triangle) *big.Rat {
	if triangleTriangleIntersect(ta, tb) {
		return new(big.Rat)
	}
	var best *big.Rat
	consider := func(d *big.Rat) {
		if best == nil || d.Cmp(best) < 0 {
			best = d
		}
	}
	for _, ea := range ta.Edges() {
		sa, _ := spanOf(ea)
		for _, eb := range tb.Edges() {
			sb, _ := spanOf(eb)
			consider(spanSpanDistSq(sa, sb))
		}
	}
	for _, v := range ta.Points() {
		consider(pointTriangleDistSq(v, tb))
	}
	for _, v := range tb.Points() {
		consider(pointTriangleDistSq(v, ta))
	}
	return best
}

func distTriangleTriangle(a, b Geometry) *big.Rat {
	return triangleTriangleDistSq(a.(*Triangle), b.(*Triangle))
}

func distTriangleTetrahedron(a, b Geometry) *big.Rat {
	tri, tet := a.(*Triangle), b.(*Tetrahedron)
	if triangleTetrahedronIntersect(tri, tet) {
		return new(big.Rat)
	}
	var best *big.Rat
	for _, f := range tet.Faces() {
		d := triangleTriangleDistSq(tri, f)
		if best == nil || d.Cmp(best) < 0 {
			best = d
		}
	}
	return best
}

func distTetrahedronTetrahedron(a, b Geometry) *big.Rat {
	ta, tb := a.(*Tetrahedron), b.(*Tetrahedron)
	if tetrahedronTetrahedronIntersect(ta, tb) {
		return new(big.Rat)
	}
	var best *big.Rat
	for _, fa := range ta.Faces() {
		for _, fb := range tb.Faces() {
			d := triangleTriangleDistSq(fa, fb)
			if best == nil || d.Cmp(best) < 0 {
				best = d
			}
		}
	}
	return best
}

package geometry

import "math/big"

// span is the shared internal representation of the three linear
// primitives: a base point, a non-zero direction, and a rational parameter
// interval. A nil bound is unbounded on that side, so a Line is (nil,nil),
// a Ray is (0,nil) and a LineSegment is (0,1). Implementing the pairwise
// algorithms once over spans keeps the (kind,kind) dispatch table free of
// copy-pasted near-duplicates.
type span struct {
	base *Point
	dir  *Vector
	lo   *big.Rat // nil: unbounded below
	hi   *big.Rat // nil: unbounded above
}

// spanOf views a linear geometry as a span. ok is false for non-linear
// kinds.
func spanOf(g Geometry) (span, bool) {
	switch v := g.(type) {
	case *Line:
		return span{base: v.p, dir: v.v}, true
	case *Ray:
		return span{base: v.line.p, dir: v.line.v, lo: ratZero}, true
	case *LineSegment:
		return span{base: v.p, dir: v.Direction(), lo: ratZero, hi: ratOne}, true
	default:
		return span{}, false
	}
}

func (s span) pointAt(t *big.Rat) *Point {
	return NewPointFromVector(s.base.Vector().Add(s.dir.Scale(t)))
}

// paramOf returns the parameter of pt, which must lie on the span's line.
func (s span) paramOf(pt *Point) *big.Rat {
	return new(big.Rat).Quo(pt.Sub(s.base).Dot(s.dir), s.dir.MagnitudeSquared())
}

// contains reports whether t lies inside the parameter interval.
func (s span) contains(t *big.Rat) bool {
	if s.lo != nil && t.Cmp(s.lo) < 0 {
		return false
	}
	if s.hi != nil && t.Cmp(s.hi) > 0 {
		return false
	}
	return true
}

// clampParam snaps t into the interval.
func (s span) clampParam(t *big.Rat) *big.Rat {
	if s.lo != nil && t.Cmp(s.lo) < 0 {
		return s.lo
	}
	if s.hi != nil && t.Cmp(s.hi) > 0 {
		return s.hi
	}
	return t
}

// finiteBounds returns the parameters of the span's real endpoints.
func (s span) finiteBounds() []*big.Rat {
	var out []*big.Rat
	if s.lo != nil {
		out = append(out, s.lo)
	}
	if s.hi != nil {
		out = append(out, s.hi)
	}
	return out
}

// empty reports an inverted interval.
func (s span) empty() bool {
	return s.lo != nil && s.hi != nil && s.lo.Cmp(s.hi) > 0
}

// materialize converts a non-empty span back into a concrete geometry: a
// line, ray, point, or segment depending on which bounds remain.
func (s span) materialize() Geometry {
	switch {
	case s.lo == nil && s.hi == nil:
		return &Line{p: s.base, v: s.dir}
	case s.lo != nil && s.hi == nil:
		return &Ray{line: &Line{p: s.pointAt(s.lo), v: s.dir}}
	case s.lo == nil:
		return &Ray{line: &Line{p: s.pointAt(s.hi), v: s.dir.Neg()}}
	case s.lo.Cmp(s.hi) == 0:
		return s.pointAt(s.lo)
	default:
		return &LineSegment{p: s.pointAt(s.lo), q: s.pointAt(s.hi)}
	}
}

// clipBelow tightens the interval to t >= bound.
func (s *span) clipBelow(bound *big.Rat) {
	if s.lo == nil || bound.Cmp(s.lo) > 0 {
		s.lo = bound
	}
}

// clipAbove tightens the interval to t <= bound.
func (s *span) clipAbove(bound *big.Rat) {
	if s.hi == nil || bound.Cmp(s.hi) < 0 {
		s.hi = bound
	}
}

// clipHalfPlane restricts the span to points where f(t) = f0 + t*g >= 0.
// It reports false when the whole span is excluded outright.
func (s *span) clipHalfPlane(f0, g *big.Rat) bool {
	if g.Sign() == 0 {
		return f0.Sign() >= 0
	}
	bound := new(big.Rat).Quo(new(big.Rat).Neg(f0), g)
	if g.Sign() > 0 {
		s.clipBelow(bound)
	} else {
		s.clipAbove(bound)
	}
	return true
}

// intersectSpans intersects two collinear-or-not spans.
//
// Collinear spans yield their overlap interval expressed in a's
// parameterization; parallel distinct or skew spans yield nothing; spans
// whose lines properly cross yield the crossing point when it lies inside
// both intervals.
func intersectSpans(a, b span) Geometry {
	c := a.dir.Cross(b.dir)
	w := b.base.Sub(a.base)
	if c.IsZero() {
		// Parallel. Coincident only if the offset is also parallel.
		if !w.Cross(a.dir).IsZero() {
			return nil
		}
		out := a
		mlo, mhi := b.mappedBounds(a)
		if mlo != nil {
			out.clipBelow(mlo)
		}
		if mhi != nil {
			out.clipAbove(mhi)
		}
		if out.empty() {
			return nil
		}
		return out.materialize()
	}
	if w.Dot(c).Sign() != 0 {
		return nil // skew lines
	}
	cc := c.MagnitudeSquared()
	t := new(big.Rat).Quo(w.Cross(b.dir).Dot(c), cc)
	u := new(big.Rat).Quo(w.Cross(a.dir).Dot(c), cc)
	if !a.contains(t) || !b.contains(u) {
		return nil
	}
	return a.pointAt(t)
}

// mappedBounds expresses b's interval bounds in a's parameter space,
// assuming the spans are collinear. Direction sense may flip the bounds.
func (b span) mappedBounds(a span) (lo, hi *big.Rat) {
	forward := a.dir.Dot(b.dir).Sign() > 0
	var fromLo, fromHi *big.Rat
	if b.lo != nil {
		fromLo = a.paramOf(b.pointAt(b.lo))
	}
	if b.hi != nil {
		fromHi = a.paramOf(b.pointAt(b.hi))
	}
	if forward {
		return fromLo, fromHi
	}
	return fromHi, fromLo
}

// intersectSpanPlane intersects a span with a plane: the whole span when it
// lies in the plane, a point when it properly crosses inside its interval,
// otherwise nothing.
func intersectSpanPlane(s span, pl *Plane) Geometry {
	denom := pl.normal.Dot(s.dir)
	num := pl.normal.Dot(pl.point.Sub(s.base))
	if denom.Sign() == 0 {
		if num.Sign() == 0 {
			return s.materialize()
		}
		return nil
	}
	t := new(big.Rat).Quo(num, denom)
	if !s.contains(t) {
		return nil
	}
	return s.pointAt(t)
}

// clipSpanToTriangle restricts a span already coplanar with the triangle
// to the triangle's interior, returning the surviving sub-span or nil.
func clipSpanToTriangle(s span, tri *Triangle) Geometry {
	n := tri.Plane().normal
	verts := tri.Points()
	out := s
	for i := range verts {
		a, b := verts[i], verts[(i+1)%3]
		inward := n.Cross(b.Sub(a))
		f0 := s.base.Sub(a).Dot(inward)
		g := s.dir.Dot(inward)
		if !out.clipHalfPlane(f0, g) {
			return nil
		}
	}
	if out.empty() {
		return nil
	}
	return out.materialize()
}

// intersectSpanTriangle handles the crossing, coplanar, and disjoint
// cases.
func intersectSpanTriangle(s span, tri *Triangle) Geometry {
	pl := tri.Plane()
	denom := pl.normal.Dot(s.dir)
	num := pl.normal.Dot(pl.point.Sub(s.base))
	if denom.Sign() != 0 {
		t := new(big.Rat).Quo(num, denom)
		if !s.contains(t) {
			return nil
		}
		pt := s.pointAt(t)
		if !tri.containsCoplanarPoint(pt) {
			return nil
		}
		return pt
	}
	if num.Sign() != 0 {
		return nil
	}
	return clipSpanToTriangle(s, tri)
}

// intersectSpanTetrahedron clips the span by the four face half-spaces.
func intersectSpanTetrahedron(s span, tet *Tetrahedron) Geometry {
	out := s
	for _, f := range tet.Faces() {
		pl := f.Plane()
		// Inside means the signed distance numerator is <= 0, so the
		// half-plane constraint is -num >= 0.
		f0 := new(big.Rat).Neg(pl.normal.Dot(s.base.Sub(pl.point)))
		g := new(big.Rat).Neg(pl.normal.Dot(s.dir))
		if !out.clipHalfPlane(f0, g) {
			return nil
		}
	}
	if out.empty() {
		return nil
	}
	return out.materialize()
}

package geometry

import (
	"math/big"

	"github.com/exactcad/geomkernel/prec"
)

// pairKey indexes the dispatch tables by operand kinds.
type pairKey struct {
	a, b Kind
}

type (
	intersectionFunc func(a, b Geometry, ctx prec.Context) (Geometry, error)
	intersectsFunc   func(a, b Geometry, ctx prec.Context) (bool, error)
)

// Intersection computes the exact intersection geometry of two primitives.
// A nil result with a nil error means the operands do not intersect.
// Combinations whose intersection geometry has no implemented algorithm
// return an error matching ErrUnsupported; that is never conflated with
// "no intersection".
func Intersection(a, b Geometry, ctx prec.Context) (Geometry, error) {
	if fn, ok := intersectionFuncs[pairKey{a.Kind(), b.Kind()}]; ok {
		return fn(a, b, ctx)
	}
	if fn, ok := intersectionFuncs[pairKey{b.Kind(), a.Kind()}]; ok {
		return fn(b, a, ctx)
	}
	return nil, NewUnsupportedError("intersection", a.Kind(), b.Kind())
}

// Intersects reports whether two primitives share at least one point.
// Bounding boxes are consulted first so separated operands never reach the
// exact arithmetic. Pairs whose intersection geometry is unsupported still
// answer here through dedicated boolean tests.
func Intersects(a, b Geometry, ctx prec.Context) (bool, error) {
	if ba, bb := a.Bounds(), b.Bounds(); ba != nil && bb != nil && !ba.Intersects(bb) {
		return false, nil
	}
	if fn, ok := intersectsFuncs[pairKey{a.Kind(), b.Kind()}]; ok {
		return fn(a, b, ctx)
	}
	if fn, ok := intersectsFuncs[pairKey{b.Kind(), a.Kind()}]; ok {
		return fn(b, a, ctx)
	}
	g, err := Intersection(a, b, ctx)
	if err != nil {
		return false, err
	}
	return g != nil, nil
}

// intersectionFuncs covers every pair with an implemented intersection
// geometry. Lookup is attempted in both operand orders, so each unordered
// pair appears once.
var intersectionFuncs = map[pairKey]intersectionFunc{
	{KindPoint, KindPoint}:       adaptII(intersectPointPoint),
	{KindPoint, KindLine}:        adaptII(intersectPointLinear),
	{KindPoint, KindRay}:         adaptII(intersectPointLinear),
	{KindPoint, KindSegment}:     adaptII(intersectPointLinear),
	{KindPoint, KindPlane}:       adaptII(intersectPointPlane),
	{KindPoint, KindTriangle}:    adaptII(intersectPointTriangle),
	{KindPoint, KindTetrahedron}: adaptII(intersectPointTetrahedron),

	{KindLine, KindLine}:       adaptII(intersectLinearLinear),
	{KindLine, KindRay}:        adaptII(intersectLinearLinear),
	{KindLine, KindSegment}:    adaptII(intersectLinearLinear),
	{KindRay, KindRay}:         adaptII(intersectLinearLinear),
	{KindRay, KindSegment}:     adaptII(intersectLinearLinear),
	{KindSegment, KindSegment}: adaptII(intersectLinearLinear),

	{KindLine, KindPlane}:    adaptII(intersectLinearPlane),
	{KindRay, KindPlane}:     adaptII(intersectLinearPlane),
	{KindSegment, KindPlane}: adaptII(intersectLinearPlane),

	{KindLine, KindTriangle}:    adaptII(intersectLinearTriangle),
	{KindRay, KindTriangle}:     adaptII(intersectLinearTriangle),
	{KindSegment, KindTriangle}: adaptII(intersectLinearTriangle),

	{KindLine, KindTetrahedron}:    adaptII(intersectLinearTetrahedron),
	{KindRay, KindTetrahedron}:     adaptII(intersectLinearTetrahedron),
	{KindSegment, KindTetrahedron}: adaptII(intersectLinearTetrahedron),

	{KindPlane, KindPlane}:    adaptII(intersectPlanePlane),
	{KindPlane, KindTriangle}: adaptII(intersectPlaneTriangle),

	{KindTriangle, KindTriangle}: intersectTriangleTriangle,

	// Plane, triangle and tetrahedron cross-sections of tetrahedra are
	// polygons the kernel has no primitive for; their intersection
	// geometry is a declared gap surfaced as ErrUnsupported.
	{KindPlane, KindTetrahedron}:       unsupportedIntersection,
	{KindTriangle, KindTetrahedron}:    unsupportedIntersection,
	{KindTetrahedron, KindTetrahedron}: unsupportedIntersection,
}

// intersectsFuncs holds boolean tests for the pairs whose intersection
// geometry is unsupported, plus cheaper boolean paths where one exists.
var intersectsFuncs = map[pairKey]intersectsFunc{
	{KindTriangle, KindTriangle}:       adaptBB(triangleTriangleIntersect),
	{KindPlane, KindTetrahedron}:       adaptBB(planeTetrahedronIntersect),
	{KindTriangle, KindTetrahedron}:    adaptBB(triangleTetrahedronIntersect),
	{KindTetrahedron, KindTetrahedron}: adaptBB(tetrahedronTetrahedronIntersect),
}

func unsupportedIntersection(a, b Geometry, _ prec.Context) (Geometry, error) {
	return nil, NewUnsupportedError("intersection", a.Kind(), b.Kind())
}

// adaptII lifts a concrete implementation into the table signature.
func adaptII(fn func(a, b Geometry) Geometry) intersectionFunc {
	return func(a, b Geometry, _ prec.Context) (Geometry, error) {
		return fn(a, b), nil
	}
}

func adaptBB(fn func(a, b Geometry) bool) intersectsFunc {
	return func(a, b Geometry, _ prec.Context) (bool, error) {
		return fn(a, b), nil
	}
}

func intersectPointPoint(a, b Geometry) Geometry {
	pa, pb := a.(*Point), b.(*Point)
	if pa.Equal(pb) {
		return pa
	}
	return nil
}

func intersectPointLinear(a, b Geometry) Geometry {
	pt := a.(*Point)
	s, _ := spanOf(b)
	if !s.base.Equal(pt) {
		l := Line{p: s.base, v: s.dir}
		if !l.ContainsPoint(pt) {
			return nil
		}
	}
	if !s.contains(s.paramOf(pt)) {
		return nil
	}
	return pt
}

func intersectPointPlane(a, b Geometry) Geometry {
	pt, pl := a.(*Point), b.(*Plane)
	if pl.ContainsPoint(pt) {
		return pt
	}
	return nil
}

func intersectPointTriangle(a, b Geometry) Geometry {
	pt, tri := a.(*Point), b.(*Triangle)
	if tri.ContainsPoint(pt) {
		return pt
	}
	return nil
}

func intersectPointTetrahedron(a, b Geometry) Geometry {
	pt, tet := a.(*Point), b.(*Tetrahedron)
	if tet.ContainsPoint(pt) {
		return pt
	}
	return nil
}

// intersectLinearLinear covers every line/ray/segment pairing. For
// collinear segments this resolves the overlap topologies: the result is
// one of the operands, a sub-segment, a single touching point, or nothing.
// Endpoint coincidence favors the degenerate point result over a failure.
func intersectLinearLinear(a, b Geometry) Geometry {
	sa, _ := spanOf(a)
	sb, _ := spanOf(b)
	g := intersectSpans(sa, sb)
	return preferOperand(g, a, b)
}

// preferOperand swaps a freshly materialized result for an operand that
// describes the identical point set, keeping "intersection of a thing with
// itself is the thing" free of allocation surprises.
func preferOperand(g Geometry, a, b Geometry) Geometry {
	if g == nil {
		return nil
	}
	switch r := g.(type) {
	case *Line:
		if la, ok := a.(*Line); ok {
			return la
		}
		if lb, ok := b.(*Line); ok {
			return lb
		}
		return r
	case *LineSegment:
		if seg, ok := a.(*LineSegment); ok && sameSegment(r, seg) {
			return seg
		}
		if seg, ok := b.(*LineSegment); ok && sameSegment(r, seg) {
			return seg
		}
		return r
	default:
		return g
	}
}

// sameSegment reports identical endpoint sets regardless of orientation.
func sameSegment(a, b *LineSegment) bool {
	return (a.p.Equal(b.p) && a.q.Equal(b.q)) || (a.p.Equal(b.q) && a.q.Equal(b.p))
}

func intersectLinearPlane(a, b Geometry) Geometry {
	s, _ := spanOf(a)
	g := intersectSpanPlane(s, b.(*Plane))
	return preferOperand(g, a, b)
}

func intersectLinearTriangle(a, b Geometry) Geometry {
	s, _ := spanOf(a)
	return preferOperand(intersectSpanTriangle(s, b.(*Triangle)), a, b)
}

func intersectLinearTetrahedron(a, b Geometry) Geometry {
	s, _ := spanOf(a)
	return preferOperand(intersectSpanTetrahedron(s, b.(*Tetrahedron)), a, b)
}

func intersectPlanePlane(a, b Geometry) Geometry {
	pa, pb := a.(*Plane), b.(*Plane)
	if pa.IsParallelTo(pb) {
		if pa.ContainsPoint(pb.point) {
			return pa
		}
		return nil
	}
	return planePlaneLine(pa, pb)
}

// planePlaneLine returns the intersection line of two non-parallel planes.
// The anchor is found by walking from pa's anchor within pa toward pb.
func planePlaneLine(pa, pb *Plane) *Line {
	d := pa.normal.Cross(pb.normal)
	walk := pa.normal.Cross(d)
	// pb.normal . walk = -(|pa.normal x pb.normal|^2) / ... is non-zero
	// whenever the planes are not parallel.
	den := pb.normal.Dot(walk)
	num := pb.normal.Dot(pb.point.Sub(pa.point))
	s := new(big.Rat).Quo(num, den)
	anchor := NewPointFromVector(pa.point.Vector().Add(walk.Scale(s)))
	return &Line{p: anchor, v: d}
}

func intersectPlaneTriangle(a, b Geometry) Geometry {
	pl, tri := a.(*Plane), b.(*Triangle)
	tp := tri.Plane()
	if pl.IsParallelTo(tp) {
		if pl.ContainsPoint(tp.point) {
			return tri
		}
		return nil
	}
	l := planePlaneLine(pl, tp)
	s, _ := spanOf(l)
	return clipSpanToTriangle(s, tri)
}

// intersectTriangleTriangle computes the crossing segment (or touching
// point) of two non-coplanar triangles. The coplanar overlap region is a
// polygon the kernel cannot represent, so coplanar operands surface
// ErrUnsupported; Intersects still answers for them.
func intersectTriangleTriangle(a, b Geometry, _ prec.Context) (Geometry, error) {
	ta, tb := a.(*Triangle), b.(*Triangle)
	pa, pb := ta.Plane(), tb.Plane()
	if pa.IsParallelTo(pb) {
		if !pa.ContainsPoint(pb.point) {
			return nil, nil
		}
		return nil, NewUnsupportedError("coplanar intersection", a.Kind(), b.Kind())
	}
	return crossTriangleTriangle(ta, tb), nil
}

// crossTriangleTriangle computes the crossing geometry of two triangles
// whose planes properly intersect.
func crossTriangleTriangle(ta, tb *Triangle) Geometry {
	pa, pb := ta.Plane(), tb.Plane()
	l := planePlaneLine(pa, pb)
	s, _ := spanOf(l)
	ga := clipSpanToTriangle(s, ta)
	if ga == nil {
		return nil
	}
	sa, ok := spanOf(ga)
	if !ok {
		// Touching point; keep it only if it also lies on b.
		if pt := ga.(*Point); tb.containsCoplanarPoint(pt) {
			return pt
		}
		return nil
	}
	return clipSpanToTriangle(sa, tb)
}

// triangleTriangleIntersect answers the boolean for all triangle pairs,
// including the coplanar overlap the geometric form does not support.
func triangleTriangleIntersect(a, b Geometry) bool {
	ta, tb := a.(*Triangle), b.(*Triangle)
	pa, pb := ta.Plane(), tb.Plane()
	if pa.IsParallelTo(pb) && pa.ContainsPoint(pb.point) {
		// Coplanar: overlap iff an edge crosses or one contains the other.
		for _, e := range ta.Edges() {
			s, _ := spanOf(e)
			if intersectSpanTriangle(s, tb) != nil {
				return true
			}
		}
		return ta.ContainsPoint(tb.p) || tb.ContainsPoint(ta.p)
	}
	if pa.IsParallelTo(pb) {
		return false
	}
	return crossTriangleTriangle(ta, tb) != nil
}

func planeTetrahedronIntersect(a, b Geometry) bool {
	pl, tet := a.(*Plane), b.(*Tetrahedron)
	neg, pos := false, false
	for _, v := range tet.Points() {
		switch pl.Side(v) {
		case -1:
			neg = true
		case 0:
			return true
		case 1:
			pos = true
		}
	}
	return neg && pos
}

func triangleTetrahedronIntersect(a, b Geometry) bool {
	tri, tet := a.(*Triangle), b.(*Tetrahedron)
	for _, v := range tri.Points() {
		if tet.ContainsPoint(v) {
			return true
		}
	}
	for _, f := range tet.Faces() {
		if triangleTriangleIntersect(tri, f) {
			return true
		}
	}
	return false
}

func tetrahedronTetrahedronIntersect(a, b Geometry) bool {
	ta, tb := a.(*Tetrahedron), b.(*Tetrahedron)
	for _, v := range ta.Points() {
		if tb.ContainsPoint(v) {
			return true
		}
	}
	for _, v := range tb.Points() {
		if ta.ContainsPoint(v) {
			return true
		}
	}
	for _, fa := range ta.Faces() {
		for _, fb := range tb.Faces() {
			if triangleTriangleIntersect(fa, fb) {
				return true
			}
		}
	}
	return false
}

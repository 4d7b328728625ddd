package geometry

import (
	"math/big"
	"sync"

	"github.com/exactcad/geomkernel/prec"
)

// LineSegment is the part of a line between two distinct endpoints,
// parametrically t in [0,1] from P to Q. Squared length and bounds are
// memoized when they cannot change: length whenever both endpoints share a
// frame (translation cancels), bounds only for absolute endpoints.
type LineSegment struct {
	p, q *Point

	lenOnce sync.Once
	lenSq   *big.Rat

	boundsOnce sync.Once
	bounds     *AABB
}

// NewLineSegment builds the segment from p to q. Coincident endpoints are
// a construction error.
func NewLineSegment(p, q *Point) (*LineSegment, error) {
	if p.Equal(q) {
		return nil, newDegenerateError("line segment", "endpoints coincide")
	}
	return &LineSegment{p: p, q: q}, nil
}

// P returns the start endpoint (t=0).
func (s *LineSegment) P() *Point { return s.p }

// Q returns the end endpoint (t=1).
func (s *LineSegment) Q() *Point { return s.q }

// Direction returns the vector from P to Q.
func (s *LineSegment) Direction() *Vector {
	return s.q.Sub(s.p)
}

// Line returns the infinite line containing the segment.
func (s *LineSegment) Line() *Line {
	return &Line{p: s.p, v: s.Direction()}
}

// sameFrame reports whether both endpoints resolve through the same frame
// (or are both absolute), making frame translation cancel out of their
// difference.
func (s *LineSegment) sameFrame() bool {
	return s.p.frame == s.q.frame
}

// LengthSquared returns the exact squared length.
func (s *LineSegment) LengthSquared() *big.Rat {
	if !s.sameFrame() {
		return s.Direction().MagnitudeSquared()
	}
	s.lenOnce.Do(func() {
		s.lenSq = s.Direction().MagnitudeSquared()
	})
	return s.lenSq
}

// Length returns the length materialized under ctx.
func (s *LineSegment) Length(ctx prec.Context) (*big.Rat, error) {
	return ctx.Sqrt(s.LengthSquared())
}

// Midpoint returns the absolute midpoint of the segment.
func (s *LineSegment) Midpoint() *Point {
	return s.Line().PointAt(ratHalf)
}

// ContainsPoint reports whether pt lies on the segment, endpoints
// included.
func (s *LineSegment) ContainsPoint(pt *Point) bool {
	l := s.Line()
	if !l.ContainsPoint(pt) {
		return false
	}
	t := l.paramOf(pt)
	return t.Sign() >= 0 && t.Cmp(ratOne) <= 0
}

// Kind implements Geometry.
func (s *LineSegment) Kind() Kind { return KindSegment }

// Bounds returns the segment's axis-aligned bounding box. Boxes for
// frame-relative endpoints are computed fresh each call since a later
// Translate would invalidate a cache.
func (s *LineSegment) Bounds() *AABB {
	if s.p.frame != nil || s.q.frame != nil {
		b, _ := NewAABBFromPoints([]*Point{s.p, s.q})
		return b
	}
	s.boundsOnce.Do(func() {
		s.bounds, _ = NewAABBFromPoints([]*Point{s.p, s.q})
	})
	return s.bounds
}

func (s *LineSegment) String() string {
	return "segment[" + s.p.String() + " -> " + s.q.String() + "]"
}

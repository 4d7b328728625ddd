package geometry

import (
	"fmt"
	"math/big"

	"github.com/exactcad/geomkernel/prec"
)

// Point is a rational position, stored either absolutely or as a relative
// vector inside a Frame. Two points are equal iff their resolved absolute
// coordinates match exactly, regardless of how the frame/relative split
// differs.
type Point struct {
	frame *Frame // nil for absolute points
	rel   *Vector
}

// NewPoint builds an absolute point from rational coordinates.
func NewPoint(x, y, z *big.Rat) *Point {
	return &Point{rel: NewVector(x, y, z)}
}

// NewPointFromVector builds an absolute point at the tip of v.
func NewPointFromVector(v *Vector) *Point {
	return &Point{rel: v}
}

// NewPointFromInts is a convenience constructor for integer coordinates.
func NewPointFromInts(x, y, z int64) *Point {
	return &Point{rel: NewVectorFromInts(x, y, z)}
}

// Origin returns the absolute point at the global origin.
func Origin() *Point {
	return &Point{rel: ZeroVector()}
}

// Frame returns the owning frame, or nil for an absolute point.
func (p *Point) Frame() *Frame {
	return p.frame
}

// Rel returns the stored relative vector. For absolute points this is the
// absolute position itself.
func (p *Point) Rel() *Vector {
	return p.rel
}

// Vector resolves the absolute position as an offset vector from the
// global origin. Resolution happens at query time; absolute coordinates
// are never stored denormalized.
func (p *Point) Vector() *Vector {
	if p.frame == nil {
		return p.rel
	}
	return p.frame.offset.Add(p.rel)
}

// X returns the resolved absolute x coordinate; likewise Y and Z.
func (p *Point) X() *big.Rat { return p.Vector().X() }

// Y returns the resolved absolute y coordinate.
func (p *Point) Y() *big.Rat { return p.Vector().Y() }

// Z returns the resolved absolute z coordinate.
func (p *Point) Z() *big.Rat { return p.Vector().Z() }

// Sub returns the vector from o to p. When both points share a frame the
// offset cancels without being read.
func (p *Point) Sub(o *Point) *Vector {
	if p.frame != nil && p.frame == o.frame {
		return p.rel.Sub(o.rel)
	}
	return p.Vector().Sub(o.Vector())
}

// Add returns the absolute point at p translated by v.
func (p *Point) Add(v *Vector) *Point {
	return NewPointFromVector(p.Vector().Add(v))
}

// Equal compares resolved absolute coordinates exactly.
func (p *Point) Equal(o *Point) bool {
	return p.Sub(o).IsZero()
}

// DistanceSquaredTo returns the exact squared distance to o. This is the
// comparison-friendly form: it never rounds.
func (p *Point) DistanceSquaredTo(o *Point) *big.Rat {
	return p.Sub(o).MagnitudeSquared()
}

// DistanceTo returns the distance to o materialized under ctx. Coincident
// points yield exactly zero with no root extraction.
func (p *Point) DistanceTo(o *Point, ctx prec.Context) (*big.Rat, error) {
	d2 := p.DistanceSquaredTo(o)
	if d2.Sign() == 0 {
		return new(big.Rat), nil
	}
	return ctx.Sqrt(d2)
}

// Kind implements Geometry.
func (p *Point) Kind() Kind { return KindPoint }

// Bounds returns the degenerate box containing only p. Frame-relative
// points resolve their current position; the box does not track later
// translations.
func (p *Point) Bounds() *AABB {
	v := p.Vector()
	b, _ := NewAABB(v.X(), v.X(), v.Y(), v.Y(), v.Z(), v.Z())
	return b
}

func (p *Point) String() string {
	v := p.Vector()
	return fmt.Sprintf("point(%s, %s, %s)", v.X().RatString(), v.Y().RatString(), v.Z().RatString())
}

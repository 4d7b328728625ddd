package geometry

import (
	"fmt"
	"math/big"
	"sync"
)

// AABB is a 3D axis-aligned bounding box over rational extents. A box may
// be degenerate: an axis whose extents coincide collapses it to a plane,
// line, or point. Boxes are immutable once constructed; Union returns new
// boxes, and the memoized corner and face-plane fields are pure functions
// of the immutable extents.
//
// All boundary semantics are closed-interval: a point on a face is
// contained, and two boxes sharing only a face still intersect.
type AABB struct {
	xMin, xMax *big.Rat
	yMin, yMax *big.Rat
	zMin, zMax *big.Rat

	cornersOnce sync.Once
	corners     [8]*Point

	planesOnce sync.Once
	planes     [6]*Plane
}

// NewAABB builds a box from explicit extents. Every axis must satisfy
// min <= max.
func NewAABB(xMin, xMax, yMin, yMax, zMin, zMax *big.Rat) (*AABB, error) {
	if xMin.Cmp(xMax) > 0 || yMin.Cmp(yMax) > 0 || zMin.Cmp(zMax) > 0 {
		return nil, newDegenerateError("bounding box", "min extent exceeds max extent")
	}
	return &AABB{
		xMin: new(big.Rat).Set(xMin), xMax: new(big.Rat).Set(xMax),
		yMin: new(big.Rat).Set(yMin), yMax: new(big.Rat).Set(yMax),
		zMin: new(big.Rat).Set(zMin), zMax: new(big.Rat).Set(zMax),
	}, nil
}

// NewAABBFromPoints builds the minimal box containing every point. An
// empty collection is a construction error, not an empty box. Positions of
// frame-relative points are snapshotted at construction.
func NewAABBFromPoints(pts []*Point) (*AABB, error) {
	if len(pts) == 0 {
		return nil, newEmptyPointsError("bounding box")
	}
	first := pts[0].Vector()
	b := &AABB{
		xMin: new(big.Rat).Set(first.X()), xMax: new(big.Rat).Set(first.X()),
		yMin: new(big.Rat).Set(first.Y()), yMax: new(big.Rat).Set(first.Y()),
		zMin: new(big.Rat).Set(first.Z()), zMax: new(big.Rat).Set(first.Z()),
	}
	for _, p := range pts[1:] {
		v := p.Vector()
		growExtent(b.xMin, b.xMax, v.X())
		growExtent(b.yMin, b.yMax, v.Y())
		growExtent(b.zMin, b.zMax, v.Z())
	}
	return b, nil
}

// growExtent widens [lo,hi] in place to cover x.
func growExtent(lo, hi, x *big.Rat) {
	if x.Cmp(lo) < 0 {
		lo.Set(x)
	}
	if x.Cmp(hi) > 0 {
		hi.Set(x)
	}
}

// XMin returns the minimum x extent; the remaining accessors follow suit.
// Returned rationals are shared and must not be mutated.
func (b *AABB) XMin() *big.Rat { return b.xMin }

// XMax returns the maximum x extent.
func (b *AABB) XMax() *big.Rat { return b.xMax }

// YMin returns the minimum y extent.
func (b *AABB) YMin() *big.Rat { return b.yMin }

// YMax returns the maximum y extent.
func (b *AABB) YMax() *big.Rat { return b.yMax }

// ZMin returns the minimum z extent.
func (b *AABB) ZMin() *big.Rat { return b.zMin }

// ZMax returns the maximum z extent.
func (b *AABB) ZMax() *big.Rat { return b.zMax }

// Center returns the box's center point.
func (b *AABB) Center() *Point {
	cx := new(big.Rat).Add(b.xMin, b.xMax)
	cy := new(big.Rat).Add(b.yMin, b.yMax)
	cz := new(big.Rat).Add(b.zMin, b.zMax)
	return NewPoint(cx.Mul(cx, ratHalf), cy.Mul(cy, ratHalf), cz.Mul(cz, ratHalf))
}

// IsDegenerate reports whether any axis extent collapses to a single
// value, reducing the box to a plane, line, or point.
func (b *AABB) IsDegenerate() bool {
	return b.xMin.Cmp(b.xMax) == 0 || b.yMin.Cmp(b.yMax) == 0 || b.zMin.Cmp(b.zMax) == 0
}

// IsPoint reports whether all three axes collapse.
func (b *AABB) IsPoint() bool {
	return b.xMin.Cmp(b.xMax) == 0 && b.yMin.Cmp(b.yMax) == 0 && b.zMin.Cmp(b.zMax) == 0
}

// ContainsPoint reports closed-interval containment of a point.
func (b *AABB) ContainsPoint(p *Point) bool {
	v := p.Vector()
	return v.X().Cmp(b.xMin) >= 0 && v.X().Cmp(b.xMax) <= 0 &&
		v.Y().Cmp(b.yMin) >= 0 && v.Y().Cmp(b.yMax) <= 0 &&
		v.Z().Cmp(b.zMin) >= 0 && v.Z().Cmp(b.zMax) <= 0
}

// Contains reports whether o lies entirely within b, boundaries included.
func (b *AABB) Contains(o *AABB) bool {
	return b.xMin.Cmp(o.xMin) <= 0 && b.xMax.Cmp(o.xMax) >= 0 &&
		b.yMin.Cmp(o.yMin) <= 0 && b.yMax.Cmp(o.yMax) >= 0 &&
		b.zMin.Cmp(o.zMin) <= 0 && b.zMax.Cmp(o.zMax) >= 0
}

// IsBeyond reports whether the two boxes are strictly separated on some
// axis. Touching boxes, where one box's max equals the other's min, are
// not beyond: they count as intersecting.
func (b *AABB) IsBeyond(o *AABB) bool {
	return b.xMax.Cmp(o.xMin) < 0 || b.xMin.Cmp(o.xMax) > 0 ||
		b.yMax.Cmp(o.yMin) < 0 || b.yMin.Cmp(o.yMax) > 0 ||
		b.zMax.Cmp(o.zMin) < 0 || b.zMin.Cmp(o.zMax) > 0
}

// Intersects reports closed-interval overlap, evaluated symmetrically over
// IsBeyond so degenerate boxes cannot break the symmetry guarantee.
func (b *AABB) Intersects(o *AABB) bool {
	return !b.IsBeyond(o) || !o.IsBeyond(b)
}

// Union returns the minimal box covering both. When b already contains o,
// b itself is returned unchanged to avoid the allocation.
func (b *AABB) Union(o *AABB) *AABB {
	if b.Contains(o) {
		return b
	}
	return &AABB{
		xMin: new(big.Rat).Set(minRat(b.xMin, o.xMin)),
		xMax: new(big.Rat).Set(maxRat(b.xMax, o.xMax)),
		yMin: new(big.Rat).Set(minRat(b.yMin, o.yMin)),
		yMax: new(big.Rat).Set(maxRat(b.yMax, o.yMax)),
		zMin: new(big.Rat).Set(minRat(b.zMin, o.zMin)),
		zMax: new(big.Rat).Set(maxRat(b.zMax, o.zMax)),
	}
}

// Corners returns the eight corner points, ordered by (x, y, z) sign
// pattern from (min,min,min) to (max,max,max) with z varying fastest.
func (b *AABB) Corners() [8]*Point {
	b.cornersOnce.Do(func() {
		xs := [2]*big.Rat{b.xMin, b.xMax}
		ys := [2]*big.Rat{b.yMin, b.yMax}
		zs := [2]*big.Rat{b.zMin, b.zMax}
		i := 0
		for _, x := range xs {
			for _, y := range ys {
				for _, z := range zs {
					b.corners[i] = NewPoint(x, y, z)
					i++
				}
			}
		}
	})
	return b.corners
}

// FacePlanes returns the six face planes with outward normals, ordered
// -x, +x, -y, +y, -z, +z.
func (b *AABB) FacePlanes() [6]*Plane {
	b.planesOnce.Do(func() {
		center := b.Center().Vector()
		anchor := func(x, y, z *big.Rat) *Point { return NewPoint(x, y, z) }
		b.planes = [6]*Plane{
			{point: anchor(b.xMin, center.Y(), center.Z()), normal: NewVectorFromInts(-1, 0, 0)},
			{point: anchor(b.xMax, center.Y(), center.Z()), normal: NewVectorFromInts(1, 0, 0)},
			{point: anchor(center.X(), b.yMin, center.Z()), normal: NewVectorFromInts(0, -1, 0)},
			{point: anchor(center.X(), b.yMax, center.Z()), normal: NewVectorFromInts(0, 1, 0)},
			{point: anchor(center.X(), center.Y(), b.zMin), normal: NewVectorFromInts(0, 0, -1)},
			{point: anchor(center.X(), center.Y(), b.zMax), normal: NewVectorFromInts(0, 0, 1)},
		}
	})
	return b.planes
}

// FaceXMin returns the x-min face as an axis-locked 2D box; its own faces
// degrade to segments or points as the extents collapse. FaceXMax through
// FaceZMax follow the same pattern.
func (b *AABB) FaceXMin() *AABBX { return newAABBX(b.xMin, b.yMin, b.yMax, b.zMin, b.zMax) }

// FaceXMax returns the x-max face.
func (b *AABB) FaceXMax() *AABBX { return newAABBX(b.xMax, b.yMin, b.yMax, b.zMin, b.zMax) }

// FaceYMin returns the y-min face.
func (b *AABB) FaceYMin() *AABBY { return newAABBY(b.yMin, b.xMin, b.xMax, b.zMin, b.zMax) }

// FaceYMax returns the y-max face.
func (b *AABB) FaceYMax() *AABBY { return newAABBY(b.yMax, b.xMin, b.xMax, b.zMin, b.zMax) }

// FaceZMin returns the z-min face.
func (b *AABB) FaceZMin() *AABBZ { return newAABBZ(b.zMin, b.xMin, b.xMax, b.yMin, b.yMax) }

// FaceZMax returns the z-max face.
func (b *AABB) FaceZMax() *AABBZ { return newAABBZ(b.zMax, b.xMin, b.xMax, b.yMin, b.yMax) }

func (b *AABB) String() string {
	return fmt.Sprintf("aabb[x %s..%s, y %s..%s, z %s..%s]",
		b.xMin.RatString(), b.xMax.RatString(),
		b.yMin.RatString(), b.yMax.RatString(),
		b.zMin.RatString(), b.zMax.RatString())
}

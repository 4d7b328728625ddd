package geometry

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/pkg/errors"
)

// AABBY is an axis-aligned bounding box locked to a plane of constant y.
// Its horizontal axis is x (left/right) and its vertical axis is z
// (bottom/top). Every accessor is derived from its own stored extent;
// nothing is aliased between axes.
type AABBY struct {
	y          *big.Rat
	xMin, xMax *big.Rat
	zMin, zMax *big.Rat

	cornersOnce sync.Once
	ll, lu      *Point
	uu, ul      *Point

	sidesOnce sync.Once
	sides     [4]Geometry
}

func newAABBY(y, xMin, xMax, zMin, zMax *big.Rat) *AABBY {
	return &AABBY{
		y:    new(big.Rat).Set(y),
		xMin: new(big.Rat).Set(xMin), xMax: new(big.Rat).Set(xMax),
		zMin: new(big.Rat).Set(zMin), zMax: new(big.Rat).Set(zMax),
	}
}

// NewAABBY builds a y-locked box from explicit extents.
func NewAABBY(y, xMin, xMax, zMin, zMax *big.Rat) (*AABBY, error) {
	if xMin.Cmp(xMax) > 0 || zMin.Cmp(zMax) > 0 {
		return nil, newDegenerateError("y-locked bounding box", "min extent exceeds max extent")
	}
	return newAABBY(y, xMin, xMax, zMin, zMax), nil
}

// NewAABBYFromPoints builds the minimal y-locked box containing every
// point. All points must share the same y coordinate.
func NewAABBYFromPoints(pts []*Point) (*AABBY, error) {
	if len(pts) == 0 {
		return nil, newEmptyPointsError("y-locked bounding box")
	}
	first := pts[0].Vector()
	b := newAABBY(first.Y(), first.X(), first.X(), first.Z(), first.Z())
	for _, p := range pts[1:] {
		v := p.Vector()
		if v.Y().Cmp(b.y) != 0 {
			return nil, newDegenerateError("y-locked bounding box", "points do not share a y coordinate")
		}
		growExtent(b.xMin, b.xMax, v.X())
		growExtent(b.zMin, b.zMax, v.Z())
	}
	return b, nil
}

// Y returns the fixed y coordinate of the box's plane.
func (b *AABBY) Y() *big.Rat { return b.y }

// XMin returns the minimum x extent.
func (b *AABBY) XMin() *big.Rat { return b.xMin }

// XMax returns the maximum x extent.
func (b *AABBY) XMax() *big.Rat { return b.xMax }

// ZMin returns the minimum z extent.
func (b *AABBY) ZMin() *big.Rat { return b.zMin }

// ZMax returns the maximum z extent.
func (b *AABBY) ZMax() *big.Rat { return b.zMax }

func (b *AABBY) computeCorners() {
	b.ll = NewPoint(b.xMin, b.y, b.zMin)
	b.lu = NewPoint(b.xMin, b.y, b.zMax)
	b.uu = NewPoint(b.xMax, b.y, b.zMax)
	b.ul = NewPoint(b.xMax, b.y, b.zMin)
}

// LL returns the (xMin, zMin) corner; LU, UU, UL follow counterclockwise.
func (b *AABBY) LL() *Point { b.cornersOnce.Do(b.computeCorners); return b.ll }

// LU returns the (xMin, zMax) corner.
func (b *AABBY) LU() *Point { b.cornersOnce.Do(b.computeCorners); return b.lu }

// UU returns the (xMax, zMax) corner.
func (b *AABBY) UU() *Point { b.cornersOnce.Do(b.computeCorners); return b.uu }

// UL returns the (xMax, zMin) corner.
func (b *AABBY) UL() *Point { b.cornersOnce.Do(b.computeCorners); return b.ul }

// LeftPlane returns the x=xMin face plane with outward normal -x.
func (b *AABBY) LeftPlane() *Plane {
	return &Plane{point: NewPoint(b.xMin, b.y, b.zMin), normal: NewVectorFromInts(-1, 0, 0)}
}

// RightPlane returns the x=xMax face plane with outward normal +x.
func (b *AABBY) RightPlane() *Plane {
	return &Plane{point: NewPoint(b.xMax, b.y, b.zMin), normal: NewVectorFromInts(1, 0, 0)}
}

// BottomPlane returns the z=zMin face plane with outward normal -z.
func (b *AABBY) BottomPlane() *Plane {
	return &Plane{point: NewPoint(b.xMin, b.y, b.zMin), normal: NewVectorFromInts(0, 0, -1)}
}

// TopPlane returns the z=zMax face plane with outward normal +z.
func (b *AABBY) TopPlane() *Plane {
	return &Plane{point: NewPoint(b.xMin, b.y, b.zMax), normal: NewVectorFromInts(0, 0, 1)}
}

func (b *AABBY) computeSides() {
	b.cornersOnce.Do(b.computeCorners)
	b.sides = [4]Geometry{
		sideGeometry(b.ll, b.lu), // left
		sideGeometry(b.ul, b.uu), // right
		sideGeometry(b.ll, b.ul), // bottom
		sideGeometry(b.lu, b.uu), // top
	}
}

// Left returns the x=xMin edge: a segment, or a point when the z extent
// collapses.
func (b *AABBY) Left() Geometry { b.sidesOnce.Do(b.computeSides); return b.sides[0] }

// Right returns the x=xMax edge.
func (b *AABBY) Right() Geometry { b.sidesOnce.Do(b.computeSides); return b.sides[1] }

// Bottom returns the z=zMin edge: a segment, or a point when the x extent
// collapses.
func (b *AABBY) Bottom() Geometry { b.sidesOnce.Do(b.computeSides); return b.sides[2] }

// Top returns the z=zMax edge.
func (b *AABBY) Top() Geometry { b.sidesOnce.Do(b.computeSides); return b.sides[3] }

// IsDegenerate reports whether either in-plane extent collapses.
func (b *AABBY) IsDegenerate() bool {
	return b.xMin.Cmp(b.xMax) == 0 || b.zMin.Cmp(b.zMax) == 0
}

// ContainsPoint reports closed-interval containment; the point must lie
// exactly on the box's plane.
func (b *AABBY) ContainsPoint(p *Point) bool {
	v := p.Vector()
	return v.Y().Cmp(b.y) == 0 &&
		v.X().Cmp(b.xMin) >= 0 && v.X().Cmp(b.xMax) <= 0 &&
		v.Z().Cmp(b.zMin) >= 0 && v.Z().Cmp(b.zMax) <= 0
}

// Contains reports whether o lies entirely within b.
func (b *AABBY) Contains(o *AABBY) bool {
	return b.y.Cmp(o.y) == 0 &&
		b.xMin.Cmp(o.xMin) <= 0 && b.xMax.Cmp(o.xMax) >= 0 &&
		b.zMin.Cmp(o.zMin) <= 0 && b.zMax.Cmp(o.zMax) >= 0
}

// IsBeyond reports strict separation on either in-plane axis, or distinct
// planes.
func (b *AABBY) IsBeyond(o *AABBY) bool {
	if b.y.Cmp(o.y) != 0 {
		return true
	}
	return b.xMax.Cmp(o.xMin) < 0 || b.xMin.Cmp(o.xMax) > 0 ||
		b.zMax.Cmp(o.zMin) < 0 || b.zMin.Cmp(o.zMax) > 0
}

// Intersects reports closed-interval overlap within the shared plane.
func (b *AABBY) Intersects(o *AABBY) bool {
	return !b.IsBeyond(o) || !o.IsBeyond(b)
}

// Union returns the minimal box covering both, which must share a plane.
// When b already contains o, b itself is returned.
func (b *AABBY) Union(o *AABBY) (*AABBY, error) {
	if b.y.Cmp(o.y) != 0 {
		return nil, errors.Errorf("cannot union y-locked boxes in different planes (y=%s vs y=%s)",
			b.y.RatString(), o.y.RatString())
	}
	if b.Contains(o) {
		return b, nil
	}
	return newAABBY(b.y,
		minRat(b.xMin, o.xMin), maxRat(b.xMax, o.xMax),
		minRat(b.zMin, o.zMin), maxRat(b.zMax, o.zMax)), nil
}

// To3D widens the box into a degenerate 3D AABB in the y=const plane.
func (b *AABBY) To3D() *AABB {
	return &AABB{
		xMin: b.xMin, xMax: b.xMax,
		yMin: b.y, yMax: b.y,
		zMin: b.zMin, zMax: b.zMax,
	}
}

func (b *AABBY) String() string {
	return fmt.Sprintf("aabby[y=%s, x %s..%s, z %s..%s]",
		b.y.RatString(), b.xMin.RatString(), b.xMax.RatString(), b.zMin.RatString(), b.zMax.RatString())
}

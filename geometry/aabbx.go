package geometry

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/pkg/errors"
)

// AABBX is an axis-aligned bounding box locked to a plane of constant x.
// Its horizontal axis is y (left/right) and its vertical axis is z
// (bottom/top). Corners and face geometries are memoized lazily; a
// collapsed axis degrades the affected faces from segments to points.
type AABBX struct {
	x          *big.Rat
	yMin, yMax *big.Rat
	zMin, zMax *big.Rat

	cornersOnce sync.Once
	ll, lu      *Point
	uu, ul      *Point

	sidesOnce sync.Once
	sides     [4]Geometry
}

func newAABBX(x, yMin, yMax, zMin, zMax *big.Rat) *AABBX {
	return &AABBX{
		x:    new(big.Rat).Set(x),
		yMin: new(big.Rat).Set(yMin), yMax: new(big.Rat).Set(yMax),
		zMin: new(big.Rat).Set(zMin), zMax: new(big.Rat).Set(zMax),
	}
}

// NewAABBX builds an x-locked box from explicit extents.
func NewAABBX(x, yMin, yMax, zMin, zMax *big.Rat) (*AABBX, error) {
	if yMin.Cmp(yMax) > 0 || zMin.Cmp(zMax) > 0 {
		return nil, newDegenerateError("x-locked bounding box", "min extent exceeds max extent")
	}
	return newAABBX(x, yMin, yMax, zMin, zMax), nil
}

// NewAABBXFromPoints builds the minimal x-locked box containing every
// point. All points must share the same x coordinate.
func NewAABBXFromPoints(pts []*Point) (*AABBX, error) {
	if len(pts) == 0 {
		return nil, newEmptyPointsError("x-locked bounding box")
	}
	first := pts[0].Vector()
	b := newAABBX(first.X(), first.Y(), first.Y(), first.Z(), first.Z())
	for _, p := range pts[1:] {
		v := p.Vector()
		if v.X().Cmp(b.x) != 0 {
			return nil, newDegenerateError("x-locked bounding box", "points do not share an x coordinate")
		}
		growExtent(b.yMin, b.yMax, v.Y())
		growExtent(b.zMin, b.zMax, v.Z())
	}
	return b, nil
}

// X returns the fixed x coordinate of the box's plane.
func (b *AABBX) X() *big.Rat { return b.x }

// YMin returns the minimum y extent.
func (b *AABBX) YMin() *big.Rat { return b.yMin }

// YMax returns the maximum y extent.
func (b *AABBX) YMax() *big.Rat { return b.yMax }

// ZMin returns the minimum z extent.
func (b *AABBX) ZMin() *big.Rat { return b.zMin }

// ZMax returns the maximum z extent.
func (b *AABBX) ZMax() *big.Rat { return b.zMax }

// corner positions: ll=(yMin,zMin), lu=(yMin,zMax), uu=(yMax,zMax),
// ul=(yMax,zMin).
func (b *AABBX) computeCorners() {
	b.ll = NewPoint(b.x, b.yMin, b.zMin)
	b.lu = NewPoint(b.x, b.yMin, b.zMax)
	b.uu = NewPoint(b.x, b.yMax, b.zMax)
	b.ul = NewPoint(b.x, b.yMax, b.zMin)
}

// LL returns the (yMin, zMin) corner; LU, UU, UL follow counterclockwise.
func (b *AABBX) LL() *Point { b.cornersOnce.Do(b.computeCorners); return b.ll }

// LU returns the (yMin, zMax) corner.
func (b *AABBX) LU() *Point { b.cornersOnce.Do(b.computeCorners); return b.lu }

// UU returns the (yMax, zMax) corner.
func (b *AABBX) UU() *Point { b.cornersOnce.Do(b.computeCorners); return b.uu }

// UL returns the (yMax, zMin) corner.
func (b *AABBX) UL() *Point { b.cornersOnce.Do(b.computeCorners); return b.ul }

// LeftPlane returns the y=yMin face plane with outward normal -y.
func (b *AABBX) LeftPlane() *Plane {
	return &Plane{point: NewPoint(b.x, b.yMin, b.zMin), normal: NewVectorFromInts(0, -1, 0)}
}

// RightPlane returns the y=yMax face plane with outward normal +y.
func (b *AABBX) RightPlane() *Plane {
	return &Plane{point: NewPoint(b.x, b.yMax, b.zMin), normal: NewVectorFromInts(0, 1, 0)}
}

// BottomPlane returns the z=zMin face plane with outward normal -z.
func (b *AABBX) BottomPlane() *Plane {
	return &Plane{point: NewPoint(b.x, b.yMin, b.zMin), normal: NewVectorFromInts(0, 0, -1)}
}

// TopPlane returns the z=zMax face plane with outward normal +z.
func (b *AABBX) TopPlane() *Plane {
	return &Plane{point: NewPoint(b.x, b.yMin, b.zMax), normal: NewVectorFromInts(0, 0, 1)}
}

// sideGeometry builds the edge between two corners, degrading to a point
// when they coincide.
func sideGeometry(a, b *Point) Geometry {
	if a.Equal(b) {
		return a
	}
	return &LineSegment{p: a, q: b}
}

func (b *AABBX) computeSides() {
	b.cornersOnce.Do(b.computeCorners)
	b.sides = [4]Geometry{
		sideGeometry(b.ll, b.lu), // left
		sideGeometry(b.ul, b.uu), // right
		sideGeometry(b.ll, b.ul), // bottom
		sideGeometry(b.lu, b.uu), // top
	}
}

// Left returns the y=yMin edge: a segment, or a point when the z extent
// collapses.
func (b *AABBX) Left() Geometry { b.sidesOnce.Do(b.computeSides); return b.sides[0] }

// Right returns the y=yMax edge.
func (b *AABBX) Right() Geometry { b.sidesOnce.Do(b.computeSides); return b.sides[1] }

// Bottom returns the z=zMin edge: a segment, or a point when the y extent
// collapses.
func (b *AABBX) Bottom() Geometry { b.sidesOnce.Do(b.computeSides); return b.sides[2] }

// Top returns the z=zMax edge.
func (b *AABBX) Top() Geometry { b.sidesOnce.Do(b.computeSides); return b.sides[3] }

// IsDegenerate reports whether either in-plane extent collapses.
func (b *AABBX) IsDegenerate() bool {
	return b.yMin.Cmp(b.yMax) == 0 || b.zMin.Cmp(b.zMax) == 0
}

// ContainsPoint reports closed-interval containment; the point must lie
// exactly on the box's plane.
func (b *AABBX) ContainsPoint(p *Point) bool {
	v := p.Vector()
	return v.X().Cmp(b.x) == 0 &&
		v.Y().Cmp(b.yMin) >= 0 && v.Y().Cmp(b.yMax) <= 0 &&
		v.Z().Cmp(b.zMin) >= 0 && v.Z().Cmp(b.zMax) <= 0
}

// Contains reports whether o lies entirely within b. Boxes in different
// planes never contain each other.
func (b *AABBX) Contains(o *AABBX) bool {
	return b.x.Cmp(o.x) == 0 &&
		b.yMin.Cmp(o.yMin) <= 0 && b.yMax.Cmp(o.yMax) >= 0 &&
		b.zMin.Cmp(o.zMin) <= 0 && b.zMax.Cmp(o.zMax) >= 0
}

// IsBeyond reports strict separation on either in-plane axis, or distinct
// planes.
func (b *AABBX) IsBeyond(o *AABBX) bool {
	if b.x.Cmp(o.x) != 0 {
		return true
	}
	return b.yMax.Cmp(o.yMin) < 0 || b.yMin.Cmp(o.yMax) > 0 ||
		b.zMax.Cmp(o.zMin) < 0 || b.zMin.Cmp(o.zMax) > 0
}

// Intersects reports closed-interval overlap within the shared plane.
func (b *AABBX) Intersects(o *AABBX) bool {
	return !b.IsBeyond(o) || !o.IsBeyond(b)
}

// Union returns the minimal box covering both, which must share a plane.
// When b already contains o, b itself is returned.
func (b *AABBX) Union(o *AABBX) (*AABBX, error) {
	if b.x.Cmp(o.x) != 0 {
		return nil, errors.Errorf("cannot union x-locked boxes in different planes (x=%s vs x=%s)",
			b.x.RatString(), o.x.RatString())
	}
	if b.Contains(o) {
		return b, nil
	}
	return newAABBX(b.x,
		minRat(b.yMin, o.yMin), maxRat(b.yMax, o.yMax),
		minRat(b.zMin, o.zMin), maxRat(b.zMax, o.zMax)), nil
}

// To3D widens the box into a degenerate 3D AABB in the x=const plane.
func (b *AABBX) To3D() *AABB {
	return &AABB{
		xMin: b.x, xMax: b.x,
		yMin: b.yMin, yMax: b.yMax,
		zMin: b.zMin, zMax: b.zMax,
	}
}

func (b *AABBX) String() string {
	return fmt.Sprintf("aabbx[x=%s, y %s..%s, z %s..%s]",
		b.x.RatString(), b.yMin.RatString(), b.yMax.RatString(), b.zMin.RatString(), b.zMax.RatString())
}

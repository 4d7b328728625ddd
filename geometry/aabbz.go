package geometry

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/pkg/errors"
)

// AABBZ is an axis-aligned bounding box locked to a plane of constant z.
// Its horizontal axis is x (left/right) and its vertical axis is y
// (bottom/top).
type AABBZ struct {
	z          *big.Rat
	xMin, xMax *big.Rat
	yMin, yMax *big.Rat

	cornersOnce sync.Once
	ll, lu      *Point
	uu, ul      *Point

	sidesOnce sync.Once
	sides     [4]Geometry
}

func newAABBZ(z, xMin, xMax, yMin, yMax *big.Rat) *AABBZ {
	return &AABBZ{
		z:    new(big.Rat).Set(z),
		xMin: new(big.Rat).Set(xMin), xMax: new(big.Rat).Set(xMax),
		yMin: new(big.Rat).Set(yMin), yMax: new(big.Rat).Set(yMax),
	}
}

// NewAABBZ builds a z-locked box from explicit extents.
func NewAABBZ(z, xMin, xMax, yMin, yMax *big.Rat) (*AABBZ, error) {
	if xMin.Cmp(xMax) > 0 || yMin.Cmp(yMax) > 0 {
		return nil, newDegenerateError("z-locked bounding box", "min extent exceeds max extent")
	}
	return newAABBZ(z, xMin, xMax, yMin, yMax), nil
}

// NewAABBZFromPoints builds the minimal z-locked box containing every
// point. All points must share the same z coordinate.
func NewAABBZFromPoints(pts []*Point) (*AABBZ, error) {
	if len(pts) == 0 {
		return nil, newEmptyPointsError("z-locked bounding box")
	}
	first := pts[0].Vector()
	b := newAABBZ(first.Z(), first.X(), first.X(), first.Y(), first.Y())
	for _, p := range pts[1:] {
		v := p.Vector()
		if v.Z().Cmp(b.z) != 0 {
			return nil, newDegenerateError("z-locked bounding box", "points do not share a z coordinate")
		}
		growExtent(b.xMin, b.xMax, v.X())
		growExtent(b.yMin, b.yMax, v.Y())
	}
	return b, nil
}

// Z returns the fixed z coordinate of the box's plane.
func (b *AABBZ) Z() *big.Rat { return b.z }

// XMin returns the minimum x extent.
func (b *AABBZ) XMin() *big.Rat { return b.xMin }

// XMax returns the maximum x extent.
func (b *AABBZ) XMax() *big.Rat { return b.xMax }

// YMin returns the minimum y extent.
func (b *AABBZ) YMin() *big.Rat { return b.yMin }

// YMax returns the maximum y extent.
func (b *AABBZ) YMax() *big.Rat { return b.yMax }

func (b *AABBZ) computeCorners() {
	b.ll = NewPoint(b.xMin, b.yMin, b.z)
	b.lu = NewPoint(b.xMin, b.yMax, b.z)
	b.uu = NewPoint(b.xMax, b.yMax, b.z)
	b.ul = NewPoint(b.xMax, b.yMin, b.z)
}

// LL returns the (xMin, yMin) corner; LU, UU, UL follow counterclockwise.
func (b *AABBZ) LL() *Point { b.cornersOnce.Do(b.computeCorners); return b.ll }

// LU returns the (xMin, yMax) corner.
func (b *AABBZ) LU() *Point { b.cornersOnce.Do(b.computeCorners); return b.lu }

// UU returns the (xMax, yMax) corner.
func (b *AABBZ) UU() *Point { b.cornersOnce.Do(b.computeCorners); return b.uu }

// UL returns the (xMax, yMin) corner.
func (b *AABBZ) UL() *Point { b.cornersOnce.Do(b.computeCorners); return b.ul }

// LeftPlane returns the x=xMin face plane with outward normal -x.
func (b *AABBZ) LeftPlane() *Plane {
	return &Plane{point: NewPoint(b.xMin, b.yMin, b.z), normal: NewVectorFromInts(-1, 0, 0)}
}

// RightPlane returns the x=xMax face plane with outward normal +x.
func (b *AABBZ) RightPlane() *Plane {
	return &Plane{point: NewPoint(b.xMax, b.yMin, b.z), normal: NewVectorFromInts(1, 0, 0)}
}

// BottomPlane returns the y=yMin face plane with outward normal -y.
func (b *AABBZ) BottomPlane() *Plane {
	return &Plane{point: NewPoint(b.xMin, b.yMin, b.z), normal: NewVectorFromInts(0, -1, 0)}
}

// TopPlane returns the y=yMax face plane with outward normal +y.
func (b *AABBZ) TopPlane() *Plane {
	return &Plane{point: NewPoint(b.xMin, b.yMax, b.z), normal: NewVectorFromInts(0, 1, 0)}
}

func (b *AABBZ) computeSides() {
	b.cornersOnce.Do(b.computeCorners)
	b.sides = [4]Geometry{
		sideGeometry(b.ll, b.lu), // left
		sideGeometry(b.ul, b.uu), // right
		sideGeometry(b.ll, b.ul), // bottom
		sideGeometry(b.lu, b.uu), // top
	}
}

// Left returns the x=xMin edge: a segment, or a point when the y extent
// collapses.
func (b *AABBZ) Left() Geometry { b.sidesOnce.Do(b.computeSides); return b.sides[0] }

// Right returns the x=xMax edge.
func (b *AABBZ) Right() Geometry { b.sidesOnce.Do(b.computeSides); return b.sides[1] }

// Bottom returns the y=yMin edge: a segment, or a point when the x extent
// collapses.
func (b *AABBZ) Bottom() Geometry { b.sidesOnce.Do(b.computeSides); return b.sides[2] }

// Top returns the y=yMax edge.
func (b *AABBZ) Top() Geometry { b.sidesOnce.Do(b.computeSides); return b.sides[3] }

// IsDegenerate reports whether either in-plane extent collapses.
func (b *AABBZ) IsDegenerate() bool {
	return b.xMin.Cmp(b.xMax) == 0 || b.yMin.Cmp(b.yMax) == 0
}

// ContainsPoint reports closed-interval containment; the point must lie
// exactly on the box's plane.
func (b *AABBZ) ContainsPoint(p *Point) bool {
	v := p.Vector()
	return v.Z().Cmp(b.z) == 0 &&
		v.X().Cmp(b.xMin) >= 0 && v.X().Cmp(b.xMax) <= 0 &&
		v.Y().Cmp(b.yMin) >= 0 && v.Y().Cmp(b.yMax) <= 0
}

// Contains reports whether o lies entirely within b.
func (b *AABBZ) Contains(o *AABBZ) bool {
	return b.z.Cmp(o.z) == 0 &&
		b.xMin.Cmp(o.xMin) <= 0 && b.xMax.Cmp(o.xMax) >= 0 &&
		b.yMin.Cmp(o.yMin) <= 0 && b.yMax.Cmp(o.yMax) >= 0
}

// IsBeyond reports strict separation on either in-plane axis, or distinct
// planes.
func (b *AABBZ) IsBeyond(o *AABBZ) bool {
	if b.z.Cmp(o.z) != 0 {
		return true
	}
	return b.xMax.Cmp(o.xMin) < 0 || b.xMin.Cmp(o.xMax) > 0 ||
		b.yMax.Cmp(o.yMin) < 0 || b.yMin.Cmp(o.yMax) > 0
}

// Intersects reports closed-interval overlap within the shared plane.
func (b *AABBZ) Intersects(o *AABBZ) bool {
	return !b.IsBeyond(o) || !o.IsBeyond(b)
}

// Union returns the minimal box covering both, which must share a plane.
// When b already contains o, b itself is returned.
func (b *AABBZ) Union(o *AABBZ) (*AABBZ, error) {
	if b.z.Cmp(o.z) != 0 {
		return nil, errors.Errorf("cannot union z-locked boxes in different planes (z=%s vs z=%s)",
			b.z.RatString(), o.z.RatString())
	}
	if b.Contains(o) {
		return b, nil
	}
	return newAABBZ(b.z,
		minRat(b.xMin, o.xMin), maxRat(b.xMax, o.xMax),
		minRat(b.yMin, o.yMin), maxRat(b.yMax, o.yMax)), nil
}

// To3D widens the box into a degenerate 3D AABB in the z=const plane.
func (b *AABBZ) To3D() *AABB {
	return &AABB{
		xMin: b.xMin, xMax: b.xMax,
		yMin: b.yMin, yMax: b.yMax,
		zMin: b.z, zMax: b.z,
	}
}

func (b *AABBZ) String() string {
	return fmt.Sprintf("aabbz[z=%s, x %s..%s, y %s..%s]",
		b.z.RatString(), b.xMin.RatString(), b.xMax.RatString(), b.yMin.RatString(), b.yMax.RatString())
}

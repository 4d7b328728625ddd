package geometry

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/exactcad/geomkernel/prec"
)

// Vector is an immutable 3-component rational direction or offset. The
// squared magnitude is memoized; recomputation is a pure function of the
// immutable components, so concurrent first use is safe.
type Vector struct {
	x, y, z *big.Rat

	magOnce sync.Once
	magSq   *big.Rat
}

// zeroVec is the distinguished zero vector; constructors hand it out for
// all-zero components so identity checks against it are cheap.
var zeroVec = &Vector{x: ratZero, y: ratZero, z: ratZero}

// ZeroVector returns the shared zero vector.
func ZeroVector() *Vector {
	return zeroVec
}

// NewVector builds a vector from rational components. The components are
// copied, so callers may keep mutating their own big.Rat values.
func NewVector(x, y, z *big.Rat) *Vector {
	if x.Sign() == 0 && y.Sign() == 0 && z.Sign() == 0 {
		return zeroVec
	}
	return &Vector{
		x: new(big.Rat).Set(x),
		y: new(big.Rat).Set(y),
		z: new(big.Rat).Set(z),
	}
}

// NewVectorFromInts is a convenience constructor for integer components.
func NewVectorFromInts(x, y, z int64) *Vector {
	return NewVector(big.NewRat(x, 1), big.NewRat(y, 1), big.NewRat(z, 1))
}

// X returns the x component. The returned rational is shared and must not
// be mutated; the same holds for Y and Z.
func (v *Vector) X() *big.Rat { return v.x }

// Y returns the y component.
func (v *Vector) Y() *big.Rat { return v.y }

// Z returns the z component.
func (v *Vector) Z() *big.Rat { return v.z }

// IsZero reports whether all components are exactly zero.
func (v *Vector) IsZero() bool {
	return v == zeroVec || (v.x.Sign() == 0 && v.y.Sign() == 0 && v.z.Sign() == 0)
}

// Equal is exact component-wise comparison.
func (v *Vector) Equal(o *Vector) bool {
	return v.x.Cmp(o.x) == 0 && v.y.Cmp(o.y) == 0 && v.z.Cmp(o.z) == 0
}

// Add returns v + o.
func (v *Vector) Add(o *Vector) *Vector {
	return NewVector(
		new(big.Rat).Add(v.x, o.x),
		new(big.Rat).Add(v.y, o.y),
		new(big.Rat).Add(v.z, o.z),
	)
}

// Sub returns v - o.
func (v *Vector) Sub(o *Vector) *Vector {
	return NewVector(
		new(big.Rat).Sub(v.x, o.x),
		new(big.Rat).Sub(v.y, o.y),
		new(big.Rat).Sub(v.z, o.z),
	)
}

// Neg returns -v.
func (v *Vector) Neg() *Vector {
	return NewVector(
		new(big.Rat).Neg(v.x),
		new(big.Rat).Neg(v.y),
		new(big.Rat).Neg(v.z),
	)
}

// Scale returns v scaled by the rational factor k.
func (v *Vector) Scale(k *big.Rat) *Vector {
	return NewVector(
		new(big.Rat).Mul(v.x, k),
		new(big.Rat).Mul(v.y, k),
		new(big.Rat).Mul(v.z, k),
	)
}

// Dot returns the exact dot product.
func (v *Vector) Dot(o *Vector) *big.Rat {
	sum := new(big.Rat).Mul(v.x, o.x)
	sum.Add(sum, new(big.Rat).Mul(v.y, o.y))
	sum.Add(sum, new(big.Rat).Mul(v.z, o.z))
	return sum
}

// Cross returns the exact cross product v x o.
func (v *Vector) Cross(o *Vector) *Vector {
	cx := new(big.Rat).Sub(new(big.Rat).Mul(v.y, o.z), new(big.Rat).Mul(v.z, o.y))
	cy := new(big.Rat).Sub(new(big.Rat).Mul(v.z, o.x), new(big.Rat).Mul(v.x, o.z))
	cz := new(big.Rat).Sub(new(big.Rat).Mul(v.x, o.y), new(big.Rat).Mul(v.y, o.x))
	return NewVector(cx, cy, cz)
}

// IsParallelTo reports whether the cross product with o vanishes. The zero
// vector is parallel to everything.
func (v *Vector) IsParallelTo(o *Vector) bool {
	return v.Cross(o).IsZero()
}

// MagnitudeSquared returns the exact squared magnitude. The result is
// memoized and shared; callers must not mutate it.
func (v *Vector) MagnitudeSquared() *big.Rat {
	v.magOnce.Do(func() {
		v.magSq = v.Dot(v)
	})
	return v.magSq
}

// Magnitude returns the magnitude materialized under ctx. Perfect squares
// come back exact.
func (v *Vector) Magnitude(ctx prec.Context) (*big.Rat, error) {
	return ctx.Sqrt(v.MagnitudeSquared())
}

func (v *Vector) String() string {
	return fmt.Sprintf("vector(%s, %s, %s)", v.x.RatString(), v.y.RatString(), v.z.RatString())
}

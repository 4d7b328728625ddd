// Package prec provides precision contexts for queries whose results can be
// irrational. Computation elsewhere in the kernel stays in exact rational
// arithmetic; a Context describes how, and how finely, a value is finally
// materialized on the decimal grid.
package prec

import (
	"math/big"

	"github.com/pkg/errors"
)

// RoundingMode selects how a value falling between two grid points is
// resolved.
type RoundingMode int

// Supported rounding modes. Half modes differ only in tie handling.
const (
	Floor RoundingMode = iota
	Ceil
	HalfUp
	HalfDown
	HalfEven
	AwayFromZero
)

func (m RoundingMode) String() string {
	switch m {
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	case HalfUp:
		return "half-up"
	case HalfDown:
		return "half-down"
	case HalfEven:
		return "half-even"
	case AwayFromZero:
		return "away-from-zero"
	default:
		return "unknown"
	}
}

// Context is the calling convention threaded through every query that may
// need to materialize an irrational value. OOM is a decimal order of
// magnitude: OOM of -3 means results are accurate to one thousandth. Two
// contexts with different OOMs may yield non-identical but convergent
// results against the same geometry; this is a documented approximation,
// not a defect.
type Context struct {
	OOM  int
	Mode RoundingMode
}

// New returns a Context rounding to the 10^oom place under the given mode.
func New(oom int, mode RoundingMode) Context {
	return Context{OOM: oom, Mode: mode}
}

var (
	ratZero = big.NewRat(0, 1)
	ratOne  = big.NewRat(1, 1)
	intOne  = big.NewInt(1)
	intTwo  = big.NewInt(2)
	intTen  = big.NewInt(10)
)

// pow10 returns 10^e as an exact rational for any integer e.
func pow10(e int) *big.Rat {
	mag := new(big.Int).Exp(intTen, big.NewInt(int64(abs(e))), nil)
	if e >= 0 {
		return new(big.Rat).SetInt(mag)
	}
	return new(big.Rat).SetFrac(intOne, mag)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Round snaps x onto the grid of multiples of 10^OOM. Values already on the
// grid pass through unchanged, so Round is idempotent.
func (c Context) Round(x *big.Rat) *big.Rat {
	step := pow10(c.OOM)
	q := new(big.Rat).Quo(x, step)
	n, rem := floorDivide(q)
	if rem.Sign() == 0 {
		return new(big.Rat).Mul(new(big.Rat).SetInt(n), step)
	}
	up := false
	switch c.Mode {
	case Floor:
		// keep n
	case Ceil:
		up = true
	case AwayFromZero:
		up = x.Sign() > 0
	case HalfUp, HalfDown, HalfEven:
		half := big.NewRat(1, 2)
		switch rem.Cmp(half) {
		case 1:
			up = true
		case -1:
			// keep n
		default:
			up = c.breakTie(x, n)
		}
	}
	if up {
		n = new(big.Int).Add(n, intOne)
	}
	return new(big.Rat).Mul(new(big.Rat).SetInt(n), step)
}

// breakTie resolves an exact half remainder above floor value n.
func (c Context) breakTie(x *big.Rat, n *big.Int) bool {
	switch c.Mode {
	case HalfUp:
		// ties away from zero
		return x.Sign() >= 0
	case HalfDown:
		// ties toward zero
		return x.Sign() < 0
	case HalfEven:
		return n.Bit(0) == 1
	default:
		return false
	}
}

// floorDivide splits q into its floor n and remainder q-n in [0,1).
func floorDivide(q *big.Rat) (*big.Int, *big.Rat) {
	n := new(big.Int)
	rem := new(big.Int)
	n.DivMod(q.Num(), q.Denom(), rem)
	// DivMod is Euclidean with positive modulus, and Rat denominators are
	// always positive, so n is the floor.
	return n, new(big.Rat).SetFrac(rem, q.Denom())
}

// sqrtIntExact returns the integer square root of n and whether it is exact.
func sqrtIntExact(n *big.Int) (*big.Int, bool) {
	r := new(big.Int).Sqrt(n)
	sq := new(big.Int).Mul(r, r)
	return r, sq.Cmp(n) == 0
}

// Sqrt extracts the square root of a non-negative rational. Perfect rational
// squares come back exact with no rounding performed; anything else is
// materialized on the 10^OOM grid under the context's rounding mode.
func (c Context) Sqrt(x *big.Rat) (*big.Rat, error) {
	if x.Sign() < 0 {
		return nil, errors.Errorf("square root of negative value %s", x.RatString())
	}
	if x.Sign() == 0 {
		return new(big.Rat), nil
	}
	if rn, ok := sqrtIntExact(x.Num()); ok {
		if rd, ok := sqrtIntExact(x.Denom()); ok {
			return new(big.Rat).SetFrac(rn, rd), nil
		}
	}

	// Scale so one grid step becomes one integer unit: the answer is
	// round(sqrt(x / 10^(2*OOM))) grid steps.
	y := new(big.Rat).Quo(x, pow10(2*c.OOM))
	floorY := new(big.Int).Quo(y.Num(), y.Denom())
	n := new(big.Int).Sqrt(floorY)

	up := false
	switch c.Mode {
	case Floor:
		// keep n
	case Ceil, AwayFromZero:
		up = true // y is not a perfect square here, so sqrt(y) > n
	case HalfUp, HalfDown, HalfEven:
		// Compare y against (n + 1/2)^2 without leaving the rationals:
		// 4y vs (2n+1)^2.
		lhs := new(big.Rat).Mul(y, big.NewRat(4, 1))
		mid := new(big.Int).Add(new(big.Int).Mul(n, intTwo), intOne)
		rhs := new(big.Rat).SetInt(new(big.Int).Mul(mid, mid))
		switch lhs.Cmp(rhs) {
		case 1:
			up = true
		case -1:
			// keep n
		default:
			switch c.Mode {
			case HalfUp:
				up = true
			case HalfEven:
				up = n.Bit(0) == 1
			}
		}
	}
	if up {
		n = new(big.Int).Add(n, intOne)
	}
	return new(big.Rat).Mul(new(big.Rat).SetInt(n), pow10(c.OOM)), nil
}

// Float64 converts a rational to the nearest float64. This is the final
// lossy step; nothing in the kernel stores the result.
func (c Context) Float64(x *big.Rat) float64 {
	f, _ := c.Round(x).Float64()
	return f
}

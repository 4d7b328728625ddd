package geometry

import (
	"context"
	"math/big"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/exactcad/geomkernel/prec"
	"github.com/exactcad/geomkernel/utils"
)

// AnyIntersects reports whether g intersects at least one of the given
// geometries. The candidates are fanned out across workers; the primitives
// are read-only during the queries, so the only shared state is the OR
// reduction, which is commutative and needs no ordering guarantee.
func AnyIntersects(ctx context.Context, g Geometry, others []Geometry, pc prec.Context) (bool, error) {
	if len(others) == 0 {
		return false, nil
	}
	var hit atomic.Bool
	fs := make([]utils.SimpleFunc, 0, len(others))
	for _, other := range others {
		other := other
		fs = append(fs, func(ctx context.Context) error {
			if hit.Load() {
				return nil
			}
			ok, err := Intersects(g, other, pc)
			if err != nil {
				return err
			}
			if ok {
				hit.Store(true)
			}
			return nil
		})
	}
	if _, err := utils.RunInParallel(ctx, fs); err != nil {
		return false, err
	}
	return hit.Load(), nil
}

// AllDistancesSquared computes the exact squared distance from g to every
// candidate. The candidates are split into contiguous index ranges, one
// per worker, and results are written index-stable, so the output order
// matches the input order and the ranges never contend.
func AllDistancesSquared(ctx context.Context, g Geometry, others []Geometry, pc prec.Context) ([]*big.Rat, error) {
	out := make([]*big.Rat, len(others))
	errs := make([]error, len(others))
	err := utils.GroupWorkParallel(ctx, len(others), nil,
		func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
			return func(memberNum, workNum int) {
				out[workNum], errs[workNum] = DistanceSquared(g, others[workNum], pc)
			}, nil
		})
	if err != nil {
		return nil, err
	}
	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

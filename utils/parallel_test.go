package utils

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.viam.com/test"
	gutils "go.viam.com/utils"
)

func TestRunInParallel(t *testing.T) {
	wait100ms := func(ctx context.Context) error {
		gutils.SelectContextOrWait(ctx, 100*time.Millisecond)
		return nil
	}

	elapsed, err := RunInParallel(context.Background(), []SimpleFunc{wait100ms, wait100ms})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, elapsed, test.ShouldBeLessThan, 200*time.Millisecond)

	errFunc := func(ctx context.Context) error {
		return errors.New("bad")
	}
	_, err = RunInParallel(context.Background(), []SimpleFunc{errFunc})
	test.That(t, err, test.ShouldNotBeNil)

	panicFunc := func(ctx context.Context) error {
		panic("foo")
	}
	_, err = RunInParallel(context.Background(), []SimpleFunc{panicFunc})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestGroupWorkParallel(t *testing.T) {
	var total int64
	err := GroupWorkParallel(
		context.Background(),
		1000,
		func(numGroups int) {},
		func(groupNum, groupSize, from, to int) (MemberWorkFunc, GroupWorkDoneFunc) {
			return func(memberNum, workNum int) {
				atomic.AddInt64(&total, 1)
			}, nil
		},
	)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, total, test.ShouldEqual, int64(1000))
}

func TestGroupWorkParallelCoversEveryIndex(t *testing.T) {
	// Fewer items than workers: groups must clamp to the item count so no
	// range comes out empty. Ranges are disjoint, so plain writes suffice.
	for _, totalSize := range []int{1, 3, ParallelFactor, ParallelFactor*3 + 1} {
		hits := make([]int, totalSize)
		err := GroupWorkParallel(
			context.Background(),
			totalSize,
			func(numGroups int) {
				test.That(t, numGroups, test.ShouldBeLessThanOrEqualTo, totalSize)
			},
			func(groupNum, groupSize, from, to int) (MemberWorkFunc, GroupWorkDoneFunc) {
				return func(memberNum, workNum int) {
					hits[workNum]++
				}, nil
			},
		)
		test.That(t, err, test.ShouldBeNil)
		for _, h := range hits {
			test.That(t, h, test.ShouldEqual, 1)
		}
	}
}

func TestGroupWorkParallelEmpty(t *testing.T) {
	err := GroupWorkParallel(
		context.Background(),
		0,
		func(numGroups int) { t.Error("no groups expected") },
		func(groupNum, groupSize, from, to int) (MemberWorkFunc, GroupWorkDoneFunc) {
			t.Error("no work expected")
			return nil, nil
		},
	)
	test.That(t, err, test.ShouldBeNil)
}

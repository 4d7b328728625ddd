// Package utils holds small shared helpers for the kernel, chiefly the
// parallel fan-out used by batch geometry queries.
package utils

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.viam.com/utils"
)

// ParallelFactor controls the max level of parallelization. This might be
// useful to set in tests where too much parallelism actually slows tests
// down in aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor <= 0 {
		ParallelFactor = 1
	}
}

type (
	// BeforeGroupWorkFunc runs once with the number of groups before any
	// worker starts.
	BeforeGroupWorkFunc func(numGroups int)
	// MemberWorkFunc runs for one work item. memberNum is the item's
	// position within its group, workNum its global index.
	MemberWorkFunc func(memberNum, workNum int)
	// GroupWorkDoneFunc runs after a group finishes its range; useful for
	// per-group merge stages.
	GroupWorkDoneFunc func()
	// GroupWorkFunc maps a group onto its [from, to) index range and
	// returns the work to run over it. Either return may be nil.
	GroupWorkFunc func(groupNum, groupSize, from, to int) (MemberWorkFunc, GroupWorkDoneFunc)
)

// GroupWorkParallel splits totalSize work items into contiguous [from, to)
// index ranges, one per worker goroutine. Groups never outnumber the items,
// so every range is non-empty; the last range absorbs the remainder.
func GroupWorkParallel(ctx context.Context, totalSize int, before BeforeGroupWorkFunc, groupWork GroupWorkFunc) error {
	if totalSize <= 0 {
		return nil
	}
	numGroups := ParallelFactor
	if totalSize < numGroups {
		numGroups = totalSize
	}
	groupSize := totalSize / numGroups
	extra := totalSize % numGroups
	if before != nil {
		before(numGroups)
	}

	var wait sync.WaitGroup
	wait.Add(numGroups)
	for groupNum := 0; groupNum < numGroups; groupNum++ {
		groupNum := groupNum
		utils.PanicCapturingGo(func() {
			defer wait.Done()

			from := groupSize * groupNum
			to := from + groupSize
			if groupNum == numGroups-1 {
				to += extra
			}
			memberWork, groupWorkDone := groupWork(groupNum, to-from, from, to)
			if memberWork != nil {
				for memberNum, workNum := 0, from; workNum < to; memberNum, workNum = memberNum+1, workNum+1 {
					memberWork(memberNum, workNum)
				}
			}
			if groupWorkDone != nil {
				groupWorkDone()
			}
		})
	}
	wait.Wait()
	return nil
}

// SimpleFunc is for RunInParallel.
type SimpleFunc func(ctx context.Context) error

// RunInParallel runs all functions in parallel, return is elapsed time and an error.
func RunInParallel(ctx context.Context, fs []SimpleFunc) (time.Duration, error) {
	start := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	var bigError error
	var bigErrorMutex sync.Mutex
	storeError := func(err error) {
		bigErrorMutex.Lock()
		defer bigErrorMutex.Unlock()
		bigError = multierr.Combine(bigError, err)
	}

	helper := func(f SimpleFunc) {
		defer func() {
			if thePanic := recover(); thePanic != nil {
				storeError(fmt.Errorf("got panic running something in parallel: %v", thePanic))
				cancel()
			}
			wg.Done()
		}()
		if err := f(ctx); err != nil {
			storeError(err)
			cancel()
		}
	}

	for _, f := range fs {
		wg.Add(1)
		go helper(f)
	}

	wg.Wait()
	return time.Since(start), bigError
}

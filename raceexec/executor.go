package raceexec

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avifenesh/sortrace/engine"
	"github.com/avifenesh/sortrace/raceexec/pool"
)

// Executor runs batches of independent Jobs to completion, each on its own
// goroutine, capped at a fixed concurrency.
type Executor struct {
	slots pool.Pool
}

// New returns an Executor that runs at most concurrency jobs at once. A
// concurrency of 0 removes the cap (every job starts immediately).
func New(concurrency uint) *Executor {
	newSlot := func() interface{} { return struct{}{} }
	if concurrency == 0 {
		return &Executor{slots: pool.NewDynamic(newSlot)}
	}
	return &Executor{slots: pool.NewFixed(concurrency, newSlot)}
}

// Run executes every job, blocking until all have finished or ctx is
// canceled. Results are returned in the same order as jobs, not completion
// order, so callers can correlate a Result back to its Job by index without
// consulting JobID.
func (ex *Executor) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	var wg sync.WaitGroup

	for i, j := range jobs {
		if ctx.Err() != nil {
			results[i] = Result{JobID: j.ID, Err: ctx.Err()}
			continue
		}

		slot := ex.slots.Get() // blocks here once concurrency cap is reached
		wg.Add(1)
		go func(i int, j Job, slot interface{}) {
			defer wg.Done()
			defer ex.slots.Put(slot)
			results[i] = runJob(ctx, j)
		}(i, j, slot)
	}

	wg.Wait()
	return results
}

// Errors joins every non-nil Result.Err into a single error, or returns nil
// if every job succeeded.
func Errors(results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("job %d: %w", r.JobID, r.Err))
		}
	}
	return errors.Join(errs...)
}

func runJob(ctx context.Context, j Job) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			res = Result{JobID: j.ID, Err: fmt.Errorf("%w: %v", ErrJobPanicked, p)}
		}
	}()

	policy := j.NewPolicy()
	e, err := engine.New(j.InitialArray,
		engine.WithAlgorithms(j.Algorithms...),
		engine.WithPolicy(policy),
		engine.WithTotalBudget(j.TotalBudget),
	)
	if err != nil {
		return Result{JobID: j.ID, Err: err}
	}

	start := time.Now()
	var last engine.TickResult
	for !e.RaceComplete() {
		if ctx.Err() != nil {
			return Result{JobID: j.ID, Ticks: e.TickSeq(), Elapsed: time.Since(start), Err: ctx.Err()}
		}
		if j.MaxTicks > 0 && int(e.TickSeq()) >= j.MaxTicks {
			return Result{JobID: j.ID, Ticks: e.TickSeq(), Elapsed: time.Since(start), Err: ErrMaxTicksExceeded}
		}
		last, err = e.Tick()
		if err != nil {
			return Result{JobID: j.ID, Ticks: e.TickSeq(), Elapsed: time.Since(start), Err: err}
		}
	}

	return Result{JobID: j.ID, Ticks: e.TickSeq(), Elapsed: time.Since(start), Sorters: last.Sorters}
}
